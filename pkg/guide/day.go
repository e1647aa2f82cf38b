package guide

import (
	"fmt"
	"strings"
	"time"
)

// Weekday is the backend's day partition key: lowercase English day names.
// The week is Monday-first regardless of the display locale.
type Weekday string

const (
	Monday    Weekday = "monday"
	Tuesday   Weekday = "tuesday"
	Wednesday Weekday = "wednesday"
	Thursday  Weekday = "thursday"
	Friday    Weekday = "friday"
	Saturday  Weekday = "saturday"
	Sunday    Weekday = "sunday"
)

// Week lists the days Monday-first, matching the backend's generation order.
var Week = []Weekday{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}

// DayFor maps a wall-clock instant onto the backend's partition key. Every
// component that needs "today" goes through this one function with an
// explicit time, so merge and filtering stay testable with fixed clocks.
func DayFor(t time.Time) Weekday {
	switch t.Weekday() {
	case time.Monday:
		return Monday
	case time.Tuesday:
		return Tuesday
	case time.Wednesday:
		return Wednesday
	case time.Thursday:
		return Thursday
	case time.Friday:
		return Friday
	case time.Saturday:
		return Saturday
	default:
		return Sunday
	}
}

// ParseDay maps a user-supplied day name onto the partition key.
func ParseDay(s string) (Weekday, error) {
	d := Weekday(strings.ToLower(strings.TrimSpace(s)))
	for _, w := range Week {
		if d == w {
			return w, nil
		}
	}
	return "", fmt.Errorf("unknown day %q", s)
}

// Label returns a short uppercase label for selectors and tables.
func (d Weekday) Label() string {
	if d == "" {
		return ""
	}
	s := string(d)
	if len(s) > 3 {
		s = s[:3]
	}
	out := make([]byte, len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c >= 'a' && c <= 'z' {
			c -= 'a' - 'A'
		}
		out[i] = c
	}
	return string(out)
}
