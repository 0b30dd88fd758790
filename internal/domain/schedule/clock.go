package schedule

import (
	"fmt"
	"time"
)

// ParseClock parses an "HH:MM" time-of-day string into minutes since
// midnight.
func ParseClock(s string) (int, error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return 0, fmt.Errorf("invalid clock value %q: %w", s, err)
	}
	return t.Hour()*60 + t.Minute(), nil
}

// FormatClock renders minutes since midnight as "HH:MM".
func FormatClock(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// FormatDisplay renders minutes since midnight as a 12-hour label,
// e.g. "8:30 AM", the way the booking UI shows slot buttons.
func FormatDisplay(minutes int) string {
	t := time.Date(2000, time.January, 1, minutes/60, minutes%60, 0, 0, time.UTC)
	return t.Format("3:04 PM")
}

// MinutesOfDay returns the wall-clock time of t as minutes since midnight.
func MinutesOfDay(t time.Time) int {
	return t.Hour()*60 + t.Minute()
}
