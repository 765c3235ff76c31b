package timeutil

import "time"

// ISOLayout is the UTC millisecond timestamp format used in JSON payloads,
// matching what browser clients produce with Date.prototype.toISOString.
const ISOLayout = "2006-01-02T15:04:05.000Z"

// FormatISO formats t in UTC with millisecond precision.
func FormatISO(t time.Time) string {
	return t.UTC().Format(ISOLayout)
}

// ParseISO parses a timestamp produced by FormatISO.
func ParseISO(value string) (time.Time, error) {
	return time.Parse(ISOLayout, value)
}
