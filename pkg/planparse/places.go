package planparse

import (
	"regexp"
	"strings"
)

// FallbackPlace is returned when neither the text nor the caller offers a place.
const FallbackPlace = "Trip destination"

const (
	DefaultHintLimit  = 5
	dayPlaceLimit     = 4
	minCandidateChars = 2
)

const (
	titleWord  = `\p{Lu}[\p{L}'’\-]+`
	connectors = `(?:of|de|del|la|le|di|da|du|des|the|on)`
	// gap separates words on one line; phrases never cross a line break.
	gap = `[ \t]+`
	// titlePhrase is one or more capitalized words, optionally bridged by connectors.
	titlePhrase    = titleWord + `(?:` + gap + `(?:` + connectors + gap + `){0,2}` + titleWord + `)*`
	multiWordTitle = titleWord + `(?:` + gap + `(?:` + connectors + gap + `){0,2}` + titleWord + `)+`
	prepositions   = `(?i:in|at|to|visit|visiting|explore|exploring|from|near|around|towards?|into|via)`
)

var (
	prepositionPattern  = regexp.MustCompile(`\b` + prepositions + gap + `(?:the` + gap + `)?(` + titlePhrase + `)`)
	multiWordPattern    = regexp.MustCompile(multiWordTitle)
	titleRunPattern     = regexp.MustCompile(titlePhrase)
	alternativePattern  = regexp.MustCompile(`(` + titlePhrase + `)` + gap + `or` + gap + `(?:the` + gap + `)?(` + titlePhrase + `)`)
	candidateTrimChars  = " \t.,;:!?()[]{}\"'`’“”"
	markdownHeadingLine = regexp.MustCompile(`(?m)^\s*#{1,6}\s.*$`)
)

// genericTerms are words that never make a place on their own.
var genericTerms = toSet(
	"day", "days", "trip", "trips", "tour", "tours", "hotel", "hotels", "hostel", "resort",
	"museum", "museums", "city", "town", "park", "parks", "garden", "gardens", "beach",
	"market", "markets", "restaurant", "restaurants", "cafe", "street", "streets", "area",
	"center", "centre", "downtown", "morning", "afternoon", "evening", "night", "noon",
	"breakfast", "lunch", "dinner", "brunch", "arrival", "arrive", "departure", "depart",
	"check", "in", "out", "visit", "explore", "travel", "itinerary", "overview", "outline",
	"budget", "allocation", "flight", "flights", "airport", "station", "local", "food",
	"shopping", "free", "time", "rest", "relax", "walk", "walking", "return", "transfer",
	"tips", "tip", "total", "the", "a", "an", "of", "and", "or", "to", "at", "on", "for",
	"by", "with", "your", "this", "that", "option", "optional", "accommodation", "transport",
	"transportation", "activities", "activity", "sightseeing", "guided", "old", "new", "main",
	"central", "north", "south", "east", "west", "first", "last", "next", "spend", "head",
	"enjoy", "take", "start", "end", "then", "after", "before", "late", "early", "full",
	"half", "week", "weekend", "packing", "list", "notes", "summary", "highlights",
	"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday",
	"january", "february", "march", "april", "may", "june", "july", "august",
	"september", "october", "november", "december", "destination", "destinations",
	"metro", "bus", "taxi", "train", "subway", "tram", "ferry", "car",
)

// leadingFillers are dropped from the front of a candidate ("Visit the Louvre" -> "Louvre").
var leadingFillers = toSet(
	"visit", "visiting", "explore", "exploring", "arrive", "arriving", "head", "enjoy",
	"take", "then", "start", "spend", "check", "return", "depart", "discover", "see",
	"stroll", "walk", "relax", "have", "grab", "try", "experience", "continue", "morning",
	"choose", "pick", "opt", "consider", "either",
	"afternoon", "evening", "day", "after", "before", "finally", "next", "later", "also",
	"the", "a", "an", "in", "at", "to", "from", "optional", "option",
)

var trailingConnectors = toSet("of", "de", "del", "la", "le", "di", "da", "du", "des", "the", "on", "and", "or")

// trailingNoise are generic words that never end a place name ("Kyoto Highlights",
// "Tokyo Morning"). Words like "Museum" or "Park" stay: they belong to names.
var trailingNoise = toSet(
	"day", "days", "morning", "afternoon", "evening", "night", "noon", "tonight",
	"highlights", "overview", "itinerary", "outline", "summary", "notes", "tips", "tip",
	"trip", "tour", "weekend", "week", "arrival", "departure", "option", "optional",
	"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday",
)

func toSet(values ...string) map[string]struct{} {
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		set[v] = struct{}{}
	}
	return set
}

// IsGenericPlaceName reports whether name is made only of generic travel words.
func IsGenericPlaceName(name string) bool {
	tokens := words(name)
	if len(tokens) == 0 {
		return true
	}
	for _, t := range tokens {
		if _, ok := genericTerms[t]; !ok {
			return false
		}
	}
	return true
}

func cleanCandidate(raw string) string {
	s := collapseSpace(stripEmphasis(raw))
	s = strings.Trim(s, candidateTrimChars)
	parts := strings.Fields(s)

	for len(parts) > 0 {
		if _, ok := leadingFillers[strings.ToLower(strings.Trim(parts[0], candidateTrimChars))]; !ok {
			break
		}
		parts = parts[1:]
	}
	for len(parts) > 0 {
		last := strings.ToLower(strings.Trim(parts[len(parts)-1], candidateTrimChars))
		_, connector := trailingConnectors[last]
		_, noise := trailingNoise[last]
		if !connector && !noise {
			break
		}
		parts = parts[:len(parts)-1]
	}

	s = strings.Trim(strings.Join(parts, " "), candidateTrimChars)
	if len([]rune(s)) < minCandidateChars {
		return ""
	}
	return s
}

type candidateSet struct {
	seen  map[string]struct{}
	items []string
	limit int
}

func newCandidateSet(limit int) *candidateSet {
	return &candidateSet{seen: map[string]struct{}{}, limit: limit}
}

func (c *candidateSet) full() bool {
	return c.limit > 0 && len(c.items) >= c.limit
}

func (c *candidateSet) add(raw string) {
	if c.full() {
		return
	}
	name := cleanCandidate(raw)
	if name == "" || IsGenericPlaceName(name) {
		return
	}
	key := strings.ToLower(name)
	if _, dup := c.seen[key]; dup {
		return
	}
	c.seen[key] = struct{}{}
	c.items = append(c.items, name)
}

func (c *candidateSet) addGroups(pattern *regexp.Regexp, text string, groups ...int) {
	for _, m := range pattern.FindAllStringSubmatch(text, -1) {
		for _, g := range groups {
			if g < len(m) {
				c.add(m[g])
			}
		}
	}
}

// plainText strips markdown headings and emphasis so capitalization passes see prose only.
func plainText(text string) string {
	text = markdownHeadingLine.ReplaceAllString(normalizeNewlines(text), "")
	return stripEmphasis(text)
}

// ExtractDestinationHints collects likely place names: capitalized phrases
// after prepositions first, then bare multi-word Title-Case phrases.
// A non-positive limit uses DefaultHintLimit.
func ExtractDestinationHints(text string, limit int) []string {
	if limit <= 0 {
		limit = DefaultHintLimit
	}
	body := plainText(text)
	set := newCandidateSet(limit)
	set.addGroups(prepositionPattern, body, 1)
	set.addGroups(multiWordPattern, body, 0)
	if set.items == nil {
		return []string{}
	}
	return set.items
}

// ExtractPlacesFromTimelineText finds places in one day's text. It always
// returns at least one entry: the fallback list, or FallbackPlace.
func ExtractPlacesFromTimelineText(dayText string, fallbackPlaces []string) []string {
	body := strings.TrimSpace(plainText(dayText))
	if body != "" {
		set := newCandidateSet(dayPlaceLimit)
		set.addGroups(alternativePattern, body, 1, 2)
		set.addGroups(prepositionPattern, body, 1)
		set.addGroups(multiWordPattern, body, 0)
		if len(set.items) == 0 {
			for _, run := range titleRunPattern.FindAllString(body, -1) {
				set.add(run)
				if len(set.items) > 0 {
					break
				}
			}
		}
		if len(set.items) > 0 {
			return set.items
		}
	}

	out := make([]string, 0, len(fallbackPlaces))
	for _, p := range fallbackPlaces {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return []string{FallbackPlace}
	}
	return out
}
