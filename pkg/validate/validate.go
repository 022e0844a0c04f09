// Package validate holds the field-error map returned by entity mutation
// operations and the shared format checks used by the management services.
package validate

import (
	"regexp"
	"strings"
	"time"
)

// Errors maps a field name to a human-readable message. An empty map means
// the draft passed validation.
type Errors map[string]string

// Add records a message for a field. The first message for a field wins so
// that the most specific check reports.
func (e Errors) Add(field, msg string) {
	if _, ok := e[field]; !ok {
		e[field] = msg
	}
}

// Any reports whether any field failed.
func (e Errors) Any() bool { return len(e) > 0 }

var (
	phoneRe = regexp.MustCompile(`^\d{3}-\d{3}-\d{4}$`)
	emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	timeRe  = regexp.MustCompile(`^(0[1-9]|1[0-2]):[0-5][0-9] (AM|PM)$`)
)

// Phone reports whether s matches the NNN-NNN-NNNN contact phone format.
func Phone(s string) bool {
	return phoneRe.MatchString(strings.TrimSpace(s))
}

// Email reports whether s has the expected address shape.
func Email(s string) bool {
	return emailRe.MatchString(strings.TrimSpace(s))
}

// ClockTime reports whether s is a valid "HH:MM AM/PM" time with a
// zero-padded 01-12 hour. The meridiem is matched case-insensitively.
func ClockTime(s string) bool {
	return timeRe.MatchString(strings.ToUpper(strings.TrimSpace(s)))
}

// NormalizeClockTime trims s and uppercases the meridiem. Callers must
// check ClockTime first.
func NormalizeClockTime(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}

// DateLayout is the wire format for all entity dates.
const DateLayout = "2006-01-02"

// Date parses a YYYY-MM-DD date.
func Date(s string) (time.Time, bool) {
	t, err := time.Parse(DateLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// Today returns the current date in wire format.
func Today() string {
	return time.Now().Format(DateLayout)
}
