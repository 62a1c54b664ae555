package utils

import (
	"fmt"
	"strings"
	"time"
)

// DateLayout is the wire format of trip dates.
const DateLayout = "2006-01-02"

func NowUnixSeconds() int64 { return time.Now().Unix() }

// FormatUnixRFC3339 renders epoch seconds in UTC; zero renders "".
func FormatUnixRFC3339(t int64) string {
	if t <= 0 {
		return ""
	}
	return time.Unix(t, 0).UTC().Format(time.RFC3339)
}

// ParseTripDate accepts "" as "not set".
func ParseTripDate(s string) (time.Time, bool, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false, nil
	}
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, false, fmt.Errorf("%w: date %q must be YYYY-MM-DD", ErrInvalidInput, s)
	}
	return t, true, nil
}

// TripDayCount counts both ends. It returns 0 when either date is missing
// or unparsable, or when end is before start.
func TripDayCount(start, end string) int {
	s, okS, errS := ParseTripDate(start)
	e, okE, errE := ParseTripDate(end)
	if errS != nil || errE != nil || !okS || !okE || e.Before(s) {
		return 0
	}
	return int(e.Sub(s).Hours()/24) + 1
}

// ValidateTripDates rejects an end date before the start date.
func ValidateTripDates(start, end string) error {
	s, okS, err := ParseTripDate(start)
	if err != nil {
		return err
	}
	e, okE, err := ParseTripDate(end)
	if err != nil {
		return err
	}
	if okS && okE && e.Before(s) {
		return fmt.Errorf("%w: end date is before start date", ErrInvalidInput)
	}
	return nil
}
