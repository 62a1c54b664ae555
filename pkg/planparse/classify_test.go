package planparse

import (
	"testing"
)

func TestClassifyPlace(t *testing.T) {
	t.Parallel()

	tests := []struct {
		place, sentence, want string
	}{
		{"Louvre Museum", "Lunch near the Louvre Museum.", CategoryCulturalSite},
		{"Shibuya", "Explore the Shibuya district at night.", CategoryLocalArea},
		{"Narita", "Arrive at Narita airport.", CategoryArrivalHub},
		{"Tsukiji", "Breakfast at the Tsukiji fish market.", CategoryFoodSpot},
		{"Le Marais", "Wander around.", CategoryAttraction},
		{"Hotel Okura", "", CategoryStay},
	}
	for _, tt := range tests {
		if got := ClassifyPlace(tt.place, tt.sentence); got != tt.want {
			t.Errorf("ClassifyPlace(%q, %q) = %q, want %q", tt.place, tt.sentence, got, tt.want)
		}
	}
}

func TestInferBestTimeAndDuration(t *testing.T) {
	t.Parallel()

	if got := InferBestTime("Watch the sunset from the pier.", CategoryNature); got != BestTimeEvening {
		t.Errorf("sunset best time = %q", got)
	}
	if got := InferBestTime("", CategoryCulturalSite); got != BestTimeMorning {
		t.Errorf("cultural default best time = %q", got)
	}
	if got := InferBestTime("Walk around.", CategoryAttraction); got != BestTimeAnytime {
		t.Errorf("attraction default best time = %q", got)
	}
	if got := InferDuration("A full day at Disneyland.", CategoryAttraction); got != "Full day" {
		t.Errorf("full day duration = %q", got)
	}
	if got := InferDuration("", CategoryFoodSpot); got != "1-1.5 hours" {
		t.Errorf("food default duration = %q", got)
	}
	if got := InferDuration("", "Unknown"); got != "1-2 hours" {
		t.Errorf("unknown category duration = %q", got)
	}
}

func TestFindBestSentence(t *testing.T) {
	t.Parallel()

	tests := []struct {
		place, text, want string
	}{
		{"Eiffel Tower", "Arrive in Paris. Visit the Eiffel Tower. Dinner nearby.", "Visit the Eiffel Tower."},
		{"Louvre Museum", "Morning coffee. Explore the Louvre.", "Explore the Louvre."},
		{"Kyoto", "Relax. Sleep.", "Relax."},
		{"Kyoto", "", ""},
	}
	for _, tt := range tests {
		if got := FindBestSentence(tt.place, tt.text); got != tt.want {
			t.Errorf("FindBestSentence(%q) = %q, want %q", tt.place, got, tt.want)
		}
	}
}

func TestBuildPlaceVisitDetails(t *testing.T) {
	t.Parallel()

	details := BuildPlaceVisitDetails("Arrive in Paris. Visit the Eiffel Tower.", []string{"Paris", "Eiffel Tower"}, "Paris")
	if len(details) != 2 {
		t.Fatalf("got %d details", len(details))
	}

	first := details[0]
	if first.Order != 1 || first.Category != CategoryArrivalHub || first.BestTime != BestTimeMorning {
		t.Fatalf("unexpected first detail: %#v", first)
	}
	if first.Summary != "Arrive in Paris." {
		t.Fatalf("first summary = %q", first.Summary)
	}

	second := details[1]
	if second.Order != 2 || second.Category != CategoryAttraction || second.Duration != "1-2 hours" {
		t.Fatalf("unexpected second detail: %#v", second)
	}
	if second.MapURL != "https://www.google.com/maps/search/?api=1&query=Eiffel%20Tower" {
		t.Fatalf("map url = %q", second.MapURL)
	}
	if second.StreetViewURL != second.MapURL+"&layer=c" {
		t.Fatalf("street view url = %q", second.StreetViewURL)
	}
	if second.Tip != TipForCategory(CategoryAttraction) {
		t.Fatalf("tip = %q", second.Tip)
	}
}

func TestBuildPlaceVisitDetailsEmptyText(t *testing.T) {
	t.Parallel()

	details := BuildPlaceVisitDetails("", []string{"Kyoto"}, "")
	if len(details) != 1 || details[0].Summary != "Stop at Kyoto." {
		t.Fatalf("unexpected details: %#v", details)
	}
}
