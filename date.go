package mcp

import (
	"strings"
	"time"
)

// DateLayout is the wire format for dates accepted by the tools.
const DateLayout = "2006-01-02"

// Weekday returns the lowercase English weekday name for a date in
// YYYY-MM-DD format. Returns EINVALID if the date cannot be parsed.
func Weekday(date string) (string, error) {
	t, err := time.Parse(DateLayout, strings.TrimSpace(date))
	if err != nil {
		return "", Errorf(EINVALID, "invalid date %q, expected YYYY-MM-DD", date)
	}
	return strings.ToLower(t.Weekday().String()), nil
}
