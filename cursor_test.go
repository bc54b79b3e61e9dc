package main

import (
	"encoding/json"
	"testing"
	"time"
)

func TestCursorUnmarshalJSON(t *testing.T) {
	tests := []struct {
		in      string
		want    Cursor
		wantErr bool
	}{
		{in: `1700000100`, want: 1700000100},
		{in: `"1700000100"`, want: 1700000100},
		{in: `0`, want: 0},
		{in: `-5`, wantErr: true},
		{in: `17.5`, wantErr: true},
		{in: `"yesterday"`, wantErr: true},
		{in: `null`, wantErr: true},
		{in: `[1]`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			var c Cursor
			err := json.Unmarshal([]byte(tt.in), &c)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error, got cursor %v", c)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if c != tt.want {
				t.Errorf("cursor = %v, want %v", c, tt.want)
			}
		})
	}
}

func TestCursorFromTime(t *testing.T) {
	ts := time.Date(2023, 11, 14, 22, 13, 20, 500, time.UTC)
	c := CursorFromTime(ts)
	if c != 1700000000 {
		t.Errorf("CursorFromTime = %v", c)
	}
	if c.String() != "1700000000" {
		t.Errorf("String() = %q", c.String())
	}
}
