// Package duetime parses, combines and canonicalizes a task's due moment.
// The stored wire format is "YYYY-MM-DD" for all-day tasks and
// "YYYY-MM-DD h:mm AM/PM" for timed ones; these exact strings round-trip
// through the store and must be preserved.
package duetime

import (
	"fmt"
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

// TimeOfDay is an optional wall-clock component of a due moment.
type TimeOfDay struct {
	Hour   int // 0..23
	Minute int // 0..59
}

// ParseDate accepts "YYYY-MM-DD". Anything else yields ok=false, never an error.
func ParseDate(text string) (time.Time, bool) {
	s := strings.TrimSpace(text)
	if s == "" {
		return time.Time{}, false
	}
	parsed, err := time.Parse(dateLayout, s)
	if err != nil {
		return time.Time{}, false
	}
	return time.Date(parsed.Year(), parsed.Month(), parsed.Day(), 0, 0, 0, 0, time.Local), true
}

// ParseTime accepts 24-hour "HH:MM" or 12-hour "H:MM AM/PM" (case-insensitive,
// optional leading zero). Invalid input yields ok=false.
func ParseTime(text string) (TimeOfDay, bool) {
	s := strings.ToUpper(strings.TrimSpace(text))
	if s == "" {
		return TimeOfDay{}, false
	}
	for _, layout := range []string{"15:04", "3:04 PM", "3:04PM"} {
		if parsed, err := time.Parse(layout, s); err == nil {
			return TimeOfDay{Hour: parsed.Hour(), Minute: parsed.Minute()}, true
		}
	}
	return TimeOfDay{}, false
}

// Combine renders the canonical due string. The time component, when present,
// is always rendered 12-hour with uppercase AM/PM, even if it was parsed from
// 24-hour input.
func Combine(date time.Time, tod *TimeOfDay) string {
	ds := date.Format(dateLayout)
	if tod == nil {
		return ds
	}
	hour := tod.Hour % 12
	if hour == 0 {
		hour = 12
	}
	meridiem := "AM"
	if tod.Hour >= 12 {
		meridiem = "PM"
	}
	return fmt.Sprintf("%s %d:%02d %s", ds, hour, tod.Minute, meridiem)
}

// Split is the inverse of Combine. It tolerates a stored "T"-separated ISO
// form by treating it as a space separator, and tolerates trailing whitespace.
// A due string with an unparsable time still yields a date-only due moment;
// an unparsable date yields ok=false.
func Split(due string) (time.Time, *TimeOfDay, bool) {
	s := strings.TrimSpace(due)
	if s == "" {
		return time.Time{}, nil, false
	}
	s = strings.Replace(s, "T", " ", 1)

	datePart := s
	timePart := ""
	if idx := strings.IndexByte(s, ' '); idx >= 0 {
		datePart = s[:idx]
		timePart = strings.TrimSpace(s[idx+1:])
	}

	date, ok := ParseDate(datePart)
	if !ok {
		return time.Time{}, nil, false
	}
	if timePart == "" {
		return date, nil, true
	}
	tod, ok := ParseTime(timePart)
	if !ok {
		// malformed fragment dropped silently, the date still counts
		return date, nil, true
	}
	return date, &tod, true
}

// OrderableInstant maps a due string onto the instant used for ordering and
// overdue checks. Date-only values are treated as end of day (23:59) so a
// task due "today" is not already overdue at midnight. Empty or malformed
// input yields ok=false and is never counted as overdue.
func OrderableInstant(due string) (time.Time, bool) {
	date, tod, ok := Split(due)
	if !ok {
		return time.Time{}, false
	}
	if tod == nil {
		return time.Date(date.Year(), date.Month(), date.Day(), 23, 59, 0, 0, time.Local), true
	}
	return time.Date(date.Year(), date.Month(), date.Day(), tod.Hour, tod.Minute, 0, 0, time.Local), true
}

// Canonicalize re-renders an arbitrary accepted due string into its canonical
// form, or returns "" when no due moment can be extracted.
func Canonicalize(due string) string {
	date, tod, ok := Split(due)
	if !ok {
		return ""
	}
	return Combine(date, tod)
}
