package types

import (
	"fmt"
	"time"
)

// Month keys are "YYYY-MM" strings; they key commission records and the
// month-filtered summary views.

const monthKeyLayout = "2006-01"

// MonthKeyOf returns the month key for t in t's location.
func MonthKeyOf(t time.Time) string {
	return t.Format(monthKeyLayout)
}

// ParseMonthKey returns the first day of the keyed month at midnight UTC.
func ParseMonthKey(key string) (time.Time, error) {
	t, err := time.Parse(monthKeyLayout, key)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid month key %q: %w", key, err)
	}
	return t, nil
}

// ValidMonthKey reports whether key is a well-formed "YYYY-MM" string.
func ValidMonthKey(key string) bool {
	_, err := ParseMonthKey(key)
	return err == nil
}
