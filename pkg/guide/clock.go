package guide

import (
	"fmt"
	"strconv"
	"strings"
)

// MinutesPerDay is the span of the time axis.
const MinutesPerDay = 24 * 60

// ParseClock converts an "HH:MM:SS" clock string into minutes since
// midnight. Seconds are optional and ignored. Anything else is an error;
// callers are expected to degrade rather than fail the whole grid.
func ParseClock(s string) (int, error) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) < 2 || len(parts) > 3 {
		return 0, fmt.Errorf("guide: malformed clock %q", s)
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, fmt.Errorf("guide: malformed clock %q", s)
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, fmt.Errorf("guide: malformed clock %q", s)
	}
	if h < 0 || h > 23 || m < 0 || m > 59 {
		return 0, fmt.Errorf("guide: clock out of range %q", s)
	}
	return h*60 + m, nil
}

// Span resolves a schedule's start/end clock strings into a start offset and
// a duration, both in minutes. End before start means the program crosses
// midnight, so a day is added before computing the duration. A malformed
// field yields a zero-duration span: degenerate, never negative, never an
// error.
func Span(start, end string) (startMin, duration int) {
	s, err := ParseClock(start)
	if err != nil {
		return 0, 0
	}
	e, err := ParseClock(end)
	if err != nil {
		return s, 0
	}
	if e < s {
		e += MinutesPerDay
	}
	return s, e - s
}
