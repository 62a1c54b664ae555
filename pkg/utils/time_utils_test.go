package utils

import (
	"errors"
	"testing"
)

func TestTripDayCount(t *testing.T) {
	t.Parallel()

	tests := []struct {
		start, end string
		want       int
	}{
		{"2025-03-01", "2025-03-04", 4},
		{"2025-03-01", "2025-03-01", 1},
		{"2025-03-04", "2025-03-01", 0},
		{"", "2025-03-01", 0},
		{"March", "2025-03-01", 0},
	}
	for _, tt := range tests {
		if got := TripDayCount(tt.start, tt.end); got != tt.want {
			t.Errorf("TripDayCount(%q, %q) = %d, want %d", tt.start, tt.end, got, tt.want)
		}
	}
}

func TestValidateTripDates(t *testing.T) {
	t.Parallel()

	if err := ValidateTripDates("2025-03-01", "2025-03-04"); err != nil {
		t.Fatalf("valid range: %v", err)
	}
	if err := ValidateTripDates("", ""); err != nil {
		t.Fatalf("empty range: %v", err)
	}
	if err := ValidateTripDates("2025-03-04", "2025-03-01"); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("reversed range: %v", err)
	}
	if err := ValidateTripDates("03/01/2025", ""); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("bad format: %v", err)
	}
}

func TestFormatUnixRFC3339(t *testing.T) {
	t.Parallel()

	if got := FormatUnixRFC3339(0); got != "" {
		t.Fatalf("zero = %q", got)
	}
	if got := FormatUnixRFC3339(1700000000); got != "2023-11-14T22:13:20Z" {
		t.Fatalf("FormatUnixRFC3339() = %q", got)
	}
}
