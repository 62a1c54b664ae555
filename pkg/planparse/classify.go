package planparse

import (
	"fmt"
	"regexp"
	"strings"
)

const (
	CategoryArrivalHub   = "Arrival Hub"
	CategoryStay         = "Stay"
	CategoryFoodSpot     = "Food Spot"
	CategoryCulturalSite = "Cultural Site"
	CategoryNature       = "Nature"
	CategoryLocalArea    = "Local Area"
	CategoryAttraction   = "Attraction"
)

const (
	BestTimeMorning   = "Morning"
	BestTimeAfternoon = "Afternoon"
	BestTimeEvening   = "Evening"
	BestTimeAnytime   = "Anytime"
)

type PlaceVisitDetail struct {
	Name          string `json:"name"`
	Category      string `json:"category"`
	BestTime      string `json:"bestTime"`
	Duration      string `json:"duration"`
	Summary       string `json:"summary"`
	Tip           string `json:"tip"`
	MapURL        string `json:"mapUrl"`
	StreetViewURL string `json:"streetViewUrl"`
	Order         int    `json:"order"`
}

// keywordRule routes text to value when any keyword phrase appears.
// Rule tables are evaluated top to bottom and the first match wins.
type keywordRule struct {
	value    string
	keywords []string
}

var categoryRules = []keywordRule{
	{CategoryArrivalHub, []string{"airport", "station", "terminal", "arrive", "arrival", "arrivals", "flight", "train", "ferry", "pier", "port", "harbour", "harbor"}},
	{CategoryStay, []string{"hotel", "hostel", "resort", "check in", "checkin", "stay", "accommodation", "inn", "lodge", "ryokan", "airbnb", "guesthouse"}},
	{CategoryFoodSpot, []string{"restaurant", "cafe", "café", "food", "eat", "dinner", "lunch", "breakfast", "brunch", "bistro", "bar", "pub", "street food", "cuisine", "tasting", "bakery", "winery"}},
	{CategoryCulturalSite, []string{"museum", "museums", "palace", "temple", "cathedral", "church", "castle", "shrine", "gallery", "monument", "historic", "fort", "basilica", "mosque", "pagoda", "abbey", "opera", "theatre", "theater"}},
	{CategoryNature, []string{"park", "garden", "gardens", "beach", "mountain", "lake", "river", "hike", "hiking", "falls", "waterfall", "forest", "island", "valley", "bay", "canyon", "cliffs", "volcano"}},
	{CategoryLocalArea, []string{"market", "district", "quarter", "street", "neighborhood", "neighbourhood", "old town", "square", "bazaar", "village", "promenade", "boulevard", "harbourfront"}},
}

var bestTimeRules = []keywordRule{
	{BestTimeMorning, []string{"sunrise", "morning", "breakfast", "dawn", "early"}},
	{BestTimeAfternoon, []string{"afternoon", "lunch", "noon", "midday"}},
	{BestTimeEvening, []string{"evening", "sunset", "dinner", "night", "nightlife", "dusk"}},
}

var categoryBestTime = map[string]string{
	CategoryArrivalHub:   BestTimeMorning,
	CategoryStay:         BestTimeEvening,
	CategoryFoodSpot:     BestTimeEvening,
	CategoryCulturalSite: BestTimeMorning,
	CategoryNature:       BestTimeMorning,
	CategoryLocalArea:    BestTimeAfternoon,
	CategoryAttraction:   BestTimeAnytime,
}

var durationRules = []keywordRule{
	{"Full day", []string{"full day", "all day", "whole day", "day trip"}},
	{"3-4 hours", []string{"half day", "half a day"}},
	{"30-60 minutes", []string{"quick", "brief", "short stop", "photo stop"}},
	{"Overnight", []string{"overnight"}},
}

var categoryDuration = map[string]string{
	CategoryArrivalHub:   "1-2 hours",
	CategoryStay:         "Overnight",
	CategoryFoodSpot:     "1-1.5 hours",
	CategoryCulturalSite: "2-3 hours",
	CategoryNature:       "2-4 hours",
	CategoryLocalArea:    "1-2 hours",
	CategoryAttraction:   "1-2 hours",
}

var categoryTips = map[string]string{
	CategoryArrivalHub:   "Keep tickets and ID at hand and leave buffer time for transfers.",
	CategoryStay:         "Confirm the check-in time; most places hold luggage if the room is not ready.",
	CategoryFoodSpot:     "Reserve ahead for peak hours or arrive just before the rush.",
	CategoryCulturalSite: "Book timed tickets online and check weekly closing days.",
	CategoryNature:       "Bring water and sun protection, and wear comfortable shoes.",
	CategoryLocalArea:    "Explore on foot and carry small change for street vendors.",
	CategoryAttraction:   "Go early or late in the day to avoid the biggest crowds.",
}

var sentencePattern = regexp.MustCompile(`[^.!?\n]+[.!?]*`)

func firstRule(rules []keywordRule, text string) (string, bool) {
	if strings.TrimSpace(text) == "" {
		return "", false
	}
	for _, r := range rules {
		if containsPhrase(text, r.keywords) {
			return r.value, true
		}
	}
	return "", false
}

// ClassifyPlace routes a place to a category. The place name is checked
// before its sentence so "Louvre Museum" stays cultural even in a lunch sentence.
func ClassifyPlace(place, sentence string) string {
	if c, ok := firstRule(categoryRules, place); ok {
		return c
	}
	if c, ok := firstRule(categoryRules, sentence); ok {
		return c
	}
	return CategoryAttraction
}

func InferBestTime(sentence, category string) string {
	if t, ok := firstRule(bestTimeRules, sentence); ok {
		return t
	}
	if t, ok := categoryBestTime[category]; ok {
		return t
	}
	return BestTimeAnytime
}

func InferDuration(sentence, category string) string {
	if d, ok := firstRule(durationRules, sentence); ok {
		return d
	}
	if d, ok := categoryDuration[category]; ok {
		return d
	}
	return categoryDuration[CategoryAttraction]
}

func TipForCategory(category string) string {
	if tip, ok := categoryTips[category]; ok {
		return tip
	}
	return categoryTips[CategoryAttraction]
}

func splitSentences(text string) []string {
	var out []string
	for _, s := range sentencePattern.FindAllString(normalizeNewlines(text), -1) {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// FindBestSentence picks the sentence of text that mentions place: one with
// every token of the name, else one with any token, else the first sentence.
func FindBestSentence(place, text string) string {
	sentences := splitSentences(plainText(text))
	if len(sentences) == 0 {
		return ""
	}

	var tokens []string
	for _, t := range words(place) {
		if _, connector := trailingConnectors[t]; connector || len(t) < 2 {
			continue
		}
		tokens = append(tokens, t)
	}
	if len(tokens) == 0 {
		return sentences[0]
	}

	partial := ""
	for _, s := range sentences {
		lower := strings.ToLower(s)
		hits := 0
		for _, t := range tokens {
			if strings.Contains(lower, t) {
				hits++
			}
		}
		if hits == len(tokens) {
			return s
		}
		if hits > 0 && partial == "" {
			partial = s
		}
	}
	if partial != "" {
		return partial
	}
	return sentences[0]
}

// BuildPlaceVisitDetails describes each place of a day in visiting order.
func BuildPlaceVisitDetails(dayText string, places []string, destinationHint string) []PlaceVisitDetail {
	details := make([]PlaceVisitDetail, 0, len(places))
	for i, place := range places {
		sentence := FindBestSentence(place, dayText)
		category := ClassifyPlace(place, sentence)
		summary := sentence
		if summary == "" {
			summary = fmt.Sprintf("Stop at %s.", place)
		}
		details = append(details, PlaceVisitDetail{
			Name:          place,
			Category:      category,
			BestTime:      InferBestTime(sentence, category),
			Duration:      InferDuration(sentence, category),
			Summary:       summary,
			Tip:           TipForCategory(category),
			MapURL:        BuildGoogleMapsURL(place, destinationHint),
			StreetViewURL: BuildStreetViewURL(place, destinationHint),
			Order:         i + 1,
		})
	}
	return details
}
