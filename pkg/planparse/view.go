package planparse

import (
	"bytes"
	"strings"

	"github.com/yuin/goldmark"
)

type DayPlan struct {
	DayEntry
	Places      []string           `json:"places"`
	Visits      []PlaceVisitDetail `json:"visits"`
	RouteURL    string             `json:"routeUrl"`
	WeatherHint string             `json:"weatherHint"`
}

// PlanView is everything the dashboard renders for one model response.
type PlanView struct {
	Sections           []Section    `json:"sections"`
	Days               []DayPlan    `json:"days"`
	Budget             []BudgetItem `json:"budget"`
	Destinations       []string     `json:"destinations"`
	PrimaryDestination string       `json:"primaryDestination"`
	WeatherHint        string       `json:"weatherHint"`
	GuideHTML          string       `json:"guideHtml"`
}

var guideRenderer = goldmark.New()

// BuildPlanView runs the whole extraction pipeline. destinationHint, when
// set, wins over destinations guessed from the text.
func BuildPlanView(markdown, destinationHint string) PlanView {
	sections := SplitSections(markdown)
	destinations := ExtractDestinationHints(markdown, DefaultHintLimit)

	primary := strings.TrimSpace(destinationHint)
	if primary == "" && len(destinations) > 0 {
		primary = destinations[0]
	}
	var fallback []string
	if primary != "" {
		fallback = []string{primary}
	}

	view := PlanView{
		Sections:           sections,
		Days:               []DayPlan{},
		Budget:             []BudgetItem{},
		Destinations:       destinations,
		PrimaryDestination: primary,
		WeatherHint:        InferApproxWeatherFromText(markdown),
	}

	if s, ok := FindSection(sections, itinerarySectionPattern); ok {
		for _, day := range DaysFromContent(s.Content) {
			lines := day.Lines()
			places := ExtractPlacesFromTimelineText(lines, fallback)
			weather := InferApproxWeatherFromText(day.Text)
			if weather == weatherUnknown {
				weather = view.WeatherHint
			}
			view.Days = append(view.Days, DayPlan{
				DayEntry:    day,
				Places:      places,
				Visits:      BuildPlaceVisitDetails(lines, places, primary),
				RouteURL:    BuildDirectionsURL(places, primary),
				WeatherHint: weather,
			})
		}
	}
	if s, ok := FindSection(sections, budgetSectionPattern); ok {
		view.Budget = BudgetItemsFromContent(s.Content)
	}

	view.GuideHTML = renderGuide(sections)
	return view
}

// renderGuide renders sections that are neither itinerary nor budget.
func renderGuide(sections []Section) string {
	var guide []Section
	for _, s := range sections {
		if itinerarySectionPattern.MatchString(s.Title) || budgetSectionPattern.MatchString(s.Title) {
			continue
		}
		guide = append(guide, s)
	}
	if len(guide) == 0 {
		return ""
	}

	var buf bytes.Buffer
	if err := guideRenderer.Convert([]byte(JoinSections(guide)), &buf); err != nil {
		return ""
	}
	return buf.String()
}
