package main

import (
	"encoding/json"
	"fmt"
	"strconv"
	"time"
)

// Cursor is the from_date lower bound of the next fetch, in Unix seconds.
type Cursor int64

func CursorFromTime(t time.Time) Cursor {
	return Cursor(t.Unix())
}

func (c Cursor) String() string {
	return strconv.FormatInt(int64(c), 10)
}

// json unmarshalling, the API sends an integer but a numeric string is accepted too
func (c *Cursor) UnmarshalJSON(b []byte) error {
	var dat any
	if err := json.Unmarshal(b, &dat); err != nil {
		return err
	}
	switch v := dat.(type) {
	case float64:
		if v < 0 || v != float64(int64(v)) {
			return fmt.Errorf("invalid timestamp: %s", string(b))
		}
		*c = Cursor(int64(v))
	case string:
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("invalid timestamp: %s", string(b))
		}
		if n < 0 {
			return fmt.Errorf("invalid timestamp: %d", n)
		}
		*c = Cursor(n)
	default:
		return fmt.Errorf("invalid timestamp format type: %s", string(b))
	}
	return nil
}
