package booking

import (
	"fmt"
	"regexp"
	"time"
)

var datePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// FormatDate serializes t's calendar date components as the API expects.
// The components are taken as displayed in t's own location, never shifted
// through UTC. The date the user picked must be the date sent, regardless
// of the runtime's offset.
func FormatDate(t time.Time) string {
	year, month, day := t.Date()
	return fmt.Sprintf("%04d-%02d-%02d", year, int(month), day)
}

// ValidDate reports whether s is a real calendar date in YYYY-MM-DD form.
func ValidDate(s string) bool {
	if !datePattern.MatchString(s) {
		return false
	}
	_, err := time.Parse("2006-01-02", s)
	return err == nil
}

// IsPastDate compares the literal date against now's local calendar date.
// YYYY-MM-DD compares correctly as a string.
func IsPastDate(date string, now time.Time) bool {
	return date < FormatDate(now)
}
