// Package timeparse parses the loosely formatted timestamps found in the
// analytics tables. Values arrive as RFC3339 strings, Postgres text
// timestamps, or bare dates depending on which system wrote the row.
package timeparse

import (
	"strings"
	"time"
)

var layouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05.999999999Z07:00",
	"2006-01-02 15:04:05.999999999Z07",
	"2006-01-02 15:04:05Z07:00",
	"2006-01-02 15:04:05Z07",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// Parse tries the known timestamp layouts in order. Layouts without a zone
// are interpreted as UTC, matching the store's default timezone.
func Parse(value string) (time.Time, bool) {
	s := strings.TrimSpace(value)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range layouts {
		if t, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
