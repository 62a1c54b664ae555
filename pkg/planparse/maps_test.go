package planparse

import "testing"

func TestMapsQuery(t *testing.T) {
	t.Parallel()

	tests := []struct {
		place, hint, want string
	}{
		{"Museum", "Paris", "Museum Paris"},
		{"Louvre", "Paris", "Louvre"},
		{"Paris", "Paris", "Paris"},
		{FallbackPlace, "Rome", "Rome"},
		{"", "", FallbackPlace},
		{"Old Town", "Prague", "Old Town"},
	}
	for _, tt := range tests {
		if got := MapsQuery(tt.place, tt.hint); got != tt.want {
			t.Errorf("MapsQuery(%q, %q) = %q, want %q", tt.place, tt.hint, got, tt.want)
		}
	}
}

func TestBuildGoogleMapsURLEncodesSpaces(t *testing.T) {
	t.Parallel()

	want := "https://www.google.com/maps/search/?api=1&query=Caf%C3%A9%20de%20Flore"
	if got := BuildGoogleMapsURL("Café de Flore", ""); got != want {
		t.Fatalf("BuildGoogleMapsURL() = %q, want %q", got, want)
	}
}

func TestBuildDirectionsURL(t *testing.T) {
	t.Parallel()

	if got := BuildDirectionsURL(nil, "Paris"); got != "" {
		t.Fatalf("no places: %q", got)
	}
	if got := BuildDirectionsURL([]string{"Louvre"}, ""); got != BuildGoogleMapsURL("Louvre", "") {
		t.Fatalf("one place: %q", got)
	}

	want := "https://www.google.com/maps/dir/?api=1&origin=Louvre&destination=Montmartre&waypoints=Orsay"
	if got := BuildDirectionsURL([]string{"Louvre", "Orsay", "Montmartre"}, ""); got != want {
		t.Fatalf("BuildDirectionsURL() = %q, want %q", got, want)
	}

	want = "https://www.google.com/maps/dir/?api=1&origin=Louvre&destination=Museum%20Paris"
	if got := BuildDirectionsURL([]string{"Louvre", "Museum"}, "Paris"); got != want {
		t.Fatalf("two places = %q, want %q", got, want)
	}
}
