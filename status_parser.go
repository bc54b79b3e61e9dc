package main

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// stringField returns the named field if it is present and a JSON string.
func stringField(hw map[string]json.RawMessage, name string) (string, bool, error) {
	raw, ok := hw[name]
	if !ok {
		return "", false, nil
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return "", true, err
	}
	return s, true, nil
}

// parseStatus renders the notification for the newest homework.
// An empty entry means nothing changed and yields an empty message.
func parseStatus(entry json.RawMessage) (string, error) {
	if len(bytes.TrimSpace(entry)) == 0 {
		return "", nil
	}
	var hw map[string]json.RawMessage
	if err := json.Unmarshal(entry, &hw); err != nil {
		return "", &ShapeError{Reason: "homework entry must be a JSON object"}
	}

	name, ok, err := stringField(hw, "homework_name")
	if !ok || err != nil {
		return "", &MissingFieldError{Field: "homework_name"}
	}
	status, ok, err := stringField(hw, "status")
	if !ok {
		return "", &MissingFieldError{Field: "status"}
	}
	if err != nil {
		return "", &UnknownStatusError{Status: string(hw["status"])}
	}
	verdict, ok := homeworkVerdicts[status]
	if !ok {
		return "", &UnknownStatusError{Status: status}
	}
	return fmt.Sprintf(`Changed review status for "%s". %s`, name, verdict), nil
}
