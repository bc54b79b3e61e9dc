package main

import (
	"bytes"
	"encoding/json"
	"log/slog"
)

// checkResponse makes sure the body is an object holding a homeworks list.
// Entries are not looked at here, parseStatus judges the newest one.
func checkResponse(raw json.RawMessage) (*CheckedResponse, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return nil, &ShapeError{Reason: "response must be a JSON object"}
	}
	var top rawResponse
	if err := json.Unmarshal(trimmed, &top); err != nil {
		return nil, &ShapeError{Reason: "response must be a JSON object: " + err.Error()}
	}

	homeworksRaw, ok := top["homeworks"]
	if !ok {
		return nil, &ShapeError{Reason: `key "homeworks" is missing`}
	}
	homeworksRaw = bytes.TrimSpace(homeworksRaw)
	if len(homeworksRaw) == 0 || homeworksRaw[0] != '[' {
		return nil, &ShapeError{Reason: `value of "homeworks" must be a list`}
	}
	var entries []json.RawMessage
	if err := json.Unmarshal(homeworksRaw, &entries); err != nil {
		return nil, &ShapeError{Reason: `value of "homeworks" must be a list: ` + err.Error()}
	}

	checked := &CheckedResponse{Homeworks: entries}
	if dateRaw, ok := top["current_date"]; ok {
		var c Cursor
		if err := json.Unmarshal(dateRaw, &c); err != nil {
			slog.Warn("ignoring malformed current_date", slog.String("value", string(dateRaw)))
		} else {
			checked.CurrentDate = &c
		}
	}
	return checked, nil
}
