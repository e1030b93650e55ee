// Package domain contains core concepts of the item list.
// Items are created once, read many times and deleted by id. There is no update path.
package domain

import (
	"time"
	"unicode/utf8"
)

// MaxTextLength is the maximum number of characters accepted for an item text.
const MaxTextLength = 100

// TimestampLayout is the storage format of created_at (UTC, second precision).
const TimestampLayout = "2006-01-02 15:04:05"

// Item is one entry of the list.
type Item struct {
	ID        int64
	Text      string
	CreatedAt time.Time
}

// Now returns the current UTC time truncated to the second.
func Now() time.Time {
	return time.Now().UTC().Truncate(time.Second)
}

func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(TimestampLayout)
}

// ParseTimestamp reads a stored created_at value back as UTC.
func ParseTimestamp(s string) (time.Time, error) {
	return time.ParseInLocation(TimestampLayout, s, time.UTC)
}

// TextLength counts characters, not bytes.
func TextLength(text string) int {
	return utf8.RuneCountInString(text)
}
