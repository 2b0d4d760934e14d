package utils

import (
	"fmt"
	"strings"
	"time"
)

// ServerTimeLayout is the wall-clock format the API uses for check-in times.
const ServerTimeLayout = "2006-01-02 15:04:05"

// FormatServerTime renders t in loc using ServerTimeLayout.
func FormatServerTime(t time.Time, loc *time.Location) string {
	return t.In(loc).Format(ServerTimeLayout)
}

// ParseServerTime accepts RFC 3339 or ServerTimeLayout in loc.
func ParseServerTime(raw string, loc *time.Location) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if t, err := time.Parse(time.RFC3339Nano, raw); err == nil {
		return t, nil
	}
	if t, err := time.ParseInLocation(ServerTimeLayout, raw, loc); err == nil {
		return t, nil
	}
	return time.Time{}, fmt.Errorf("unrecognized time %q", raw)
}
