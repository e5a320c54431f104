package textutil

import (
	"strconv"
	"strings"
	"time"
)

var escapeReplacer = strings.NewReplacer(
	"&amp;", "&",
	"&#39;", "'",
)

// DecodeEscapes replaces the small set of html entities the
// registration api leaves in text fields so stored descriptions
// stay human readable.
func DecodeEscapes(value string) string {
	if value == "" {
		return value
	}
	return escapeReplacer.Replace(value)
}

// ParseInt parses an integer, falling back to the given default
// instead of returning an error.
func ParseInt(value string, fallback int64) int64 {
	n, err := strconv.ParseInt(strings.TrimSpace(value), 10, 64)
	if err != nil {
		return fallback
	}
	return n
}

var dateLayouts = []string{
	"01/02/2006",
	"Jan 2, 2006",
	"2006-01-02",
}

// ParseDate parses the handful of date formats the upstream api
// has been observed to return.
func ParseDate(value string) (time.Time, error) {
	var lastErr error
	for _, layout := range dateLayouts {
		t, err := time.Parse(layout, value)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}
