package planparse

import (
	"net/url"
	"strings"
)

const (
	mapsSearchURL     = "https://www.google.com/maps/search/?api=1&query="
	mapsDirectionsURL = "https://www.google.com/maps/dir/?api=1"
)

// encodeComponent escapes s the way browsers' encodeURIComponent does for spaces.
func encodeComponent(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}

// MapsQuery is the search text for a place. A lone generic word such as
// "Museum" gets the destination hint appended, and the fallback placeholder
// is replaced by the hint.
func MapsQuery(place, destinationHint string) string {
	place = strings.TrimSpace(place)
	hint := strings.TrimSpace(destinationHint)

	if place == "" || place == FallbackPlace {
		if hint != "" {
			return hint
		}
		return FallbackPlace
	}
	if hint != "" && len(strings.Fields(place)) == 1 && IsGenericPlaceName(place) &&
		!strings.EqualFold(place, hint) {
		return place + " " + hint
	}
	return place
}

func BuildGoogleMapsURL(place, destinationHint string) string {
	return mapsSearchURL + encodeComponent(MapsQuery(place, destinationHint))
}

func BuildStreetViewURL(place, destinationHint string) string {
	return BuildGoogleMapsURL(place, destinationHint) + "&layer=c"
}

// BuildDirectionsURL routes through places in order. One place yields a
// search link; none yields "".
func BuildDirectionsURL(places []string, destinationHint string) string {
	switch len(places) {
	case 0:
		return ""
	case 1:
		return BuildGoogleMapsURL(places[0], destinationHint)
	}

	queries := make([]string, len(places))
	for i, p := range places {
		queries[i] = encodeComponent(MapsQuery(p, destinationHint))
	}

	var b strings.Builder
	b.WriteString(mapsDirectionsURL)
	b.WriteString("&origin=" + queries[0])
	b.WriteString("&destination=" + queries[len(queries)-1])
	if len(queries) > 2 {
		b.WriteString("&waypoints=" + strings.Join(queries[1:len(queries)-1], "%7C"))
	}
	return b.String()
}
