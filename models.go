package main

import "encoding/json"

// CheckedResponse is an API response that passed the shape check.
// Homeworks keep the API order, newest first, and are left undecoded.
type CheckedResponse struct {
	Homeworks   []json.RawMessage
	CurrentDate *Cursor
}

// rawResponse is the top level of the API body before the shape check.
type rawResponse map[string]json.RawMessage
