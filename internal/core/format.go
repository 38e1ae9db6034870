package core

import (
	"fmt"
	"time"
)

// FormatTimestamp renders t as MM/DD/YYYY HH:MM, or MM/DD/YYYY H:MM AM/PM
// when use24Hour is false.
func FormatTimestamp(t time.Time, use24Hour bool) string {
	date := fmt.Sprintf("%02d/%02d/%d", int(t.Month()), t.Day(), t.Year())

	if use24Hour {
		return fmt.Sprintf("%s %02d:%02d", date, t.Hour(), t.Minute())
	}

	ampm := "AM"
	if t.Hour() >= 12 {
		ampm = "PM"
	}

	hour := t.Hour() % 12
	if hour == 0 {
		hour = 12
	}

	return fmt.Sprintf("%s %d:%02d %s", date, hour, t.Minute(), ampm)
}

// formatMillis formats a millisecond timestamp in loc.
func formatMillis(ms int64, use24Hour bool, loc *time.Location) string {
	if loc == nil {
		loc = time.Local
	}

	return FormatTimestamp(time.UnixMilli(ms).In(loc), use24Hour)
}
