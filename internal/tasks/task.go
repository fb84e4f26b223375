package tasks

import "time"

// TimestampFormat is the layout for the created/updated fields:
// UTC at second precision with a literal Z suffix.
const TimestampFormat = "2006-01-02T15:04:05Z"

// Task is one persisted task record. The JSON field set is the on-disk
// contract; missing optional fields decode as unset and unknown fields
// are ignored.
type Task struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Done     bool   `json:"done"`
	Priority int    `json:"priority,omitempty"` // 1 (highest) to 3; 0 means unset
	Due      string `json:"due,omitempty"`      // "today", "tomorrow", or YYYY-MM-DD
	Created  string `json:"created"`
	Updated  string `json:"updated"`
}

// Timestamp formats t in the store's timestamp layout.
func Timestamp(t time.Time) string {
	return t.UTC().Format(TimestampFormat)
}
