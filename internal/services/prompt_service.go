package services

import (
	"fmt"
	"strings"

	"wanderplan/internal/models/db_models"
	"wanderplan/internal/models/request_models"
	"wanderplan/pkg/utils"
)

const (
	defaultTripDays = 3
	maxTripDays     = 14
)

// TripBrief is the stored preferences with per-request overrides applied.
type TripBrief struct {
	Destination   string
	StartDate     string
	EndDate       string
	Travelers     int
	BudgetLevel   string
	BudgetAmount  float64
	Pace          string
	Interests     []string
	Accommodation string
	Transport     string
	DietaryNeeds  string
	Notes         string
}

type PromptServiceInterface interface {
	TripPlanPrompt(brief TripBrief) string
	LivePrompt(brief TripBrief, request request_models.LiveStreamRequest) string
}

type PromptService struct{}

func NewPromptService() PromptServiceInterface {
	return &PromptService{}
}

// NewTripBrief merges a stored preference row (may be nil) with request overrides.
func NewTripBrief(pref *db_models.TravelPreference, request request_models.GeneratePlanRequest) TripBrief {
	var brief TripBrief
	if pref != nil {
		brief = TripBrief{
			Destination:   pref.Destination,
			StartDate:     pref.StartDate,
			EndDate:       pref.EndDate,
			Travelers:     pref.Travelers,
			BudgetLevel:   pref.BudgetLevel,
			BudgetAmount:  pref.BudgetAmount,
			Pace:          pref.Pace,
			Interests:     []string(pref.Interests),
			Accommodation: pref.Accommodation,
			Transport:     pref.Transport,
			DietaryNeeds:  pref.DietaryNeeds,
			Notes:         pref.Notes,
		}
	}

	brief.Destination = override(brief.Destination, request.Destination)
	brief.StartDate = override(brief.StartDate, request.StartDate)
	brief.EndDate = override(brief.EndDate, request.EndDate)
	brief.BudgetLevel = override(brief.BudgetLevel, request.BudgetLevel)
	brief.Pace = override(brief.Pace, request.Pace)
	if request.Travelers > 0 {
		brief.Travelers = request.Travelers
	}
	if len(request.Interests) > 0 {
		brief.Interests = cleanList(request.Interests)
	}
	if notes := strings.TrimSpace(request.ExtraNotes); notes != "" {
		if brief.Notes != "" {
			brief.Notes += "\n"
		}
		brief.Notes += notes
	}
	if brief.Travelers <= 0 {
		brief.Travelers = defaultTravelers
	}
	return brief
}

func override(current, candidate string) string {
	if c := strings.TrimSpace(candidate); c != "" {
		return c
	}
	return current
}

// DayCount uses the trip dates, then day counts written in the notes.
func (b TripBrief) DayCount() int {
	if n := utils.TripDayCount(b.StartDate, b.EndDate); n > 0 {
		if n > maxTripDays {
			return maxTripDays
		}
		return n
	}
	if n := extractDayCount(b.Notes); n > 0 {
		return n
	}
	return defaultTripDays
}

func (p *PromptService) TripPlanPrompt(brief TripBrief) string {
	days := brief.DayCount()
	destination := brief.Destination
	if destination == "" {
		destination = "a destination that suits the traveler profile below"
	}

	var prompt strings.Builder
	prompt.WriteString(fmt.Sprintf("Create a %d-day travel plan for %s.\n\n", days, destination))
	prompt.WriteString("Traveler profile:\n")
	writeBrief(&prompt, brief)

	prompt.WriteString("\nFormat the answer as markdown with exactly these sections, each starting with '## ':\n")
	prompt.WriteString("## Trip Overview\n")
	prompt.WriteString("## Day-by-Day Itinerary Outline\n")
	prompt.WriteString("## Budget Allocation\n")
	prompt.WriteString("## Packing List\n")
	prompt.WriteString("## Local Tips\n\n")

	prompt.WriteString("Rules:\n")
	prompt.WriteString(fmt.Sprintf("1. In the itinerary, start every day with '**Day N**:' followed by a short title, for N from 1 to %d.\n", days))
	prompt.WriteString("2. Under each day, list activities as '- ' bullets and name real places with their proper names.\n")
	prompt.WriteString("3. In the budget section, write one '- Label: amount' line per category.\n")
	prompt.WriteString("4. Mention the expected weather or season in the overview.\n")
	prompt.WriteString("5. Do not add any other top-level sections.\n")

	return prompt.String()
}

func (p *PromptService) LivePrompt(brief TripBrief, request request_models.LiveStreamRequest) string {
	var prompt strings.Builder
	prompt.WriteString("You are a travel companion helping someone who is on their trip right now.\n")
	prompt.WriteString("Answer briefly in markdown, with practical next steps.\n\n")

	if location := strings.TrimSpace(request.Location); location != "" {
		prompt.WriteString(fmt.Sprintf("Current location: %s\n", location))
	}
	prompt.WriteString("Traveler profile:\n")
	writeBrief(&prompt, brief)

	if request.Image != "" {
		prompt.WriteString("\nThe attached photo was just taken by the traveler. Identify what it shows and relate it to their trip.\n")
	}

	question := strings.TrimSpace(request.Message)
	if question == "" {
		question = "What should I do next around here?"
	}
	prompt.WriteString(fmt.Sprintf("\nQuestion: %s\n", question))
	return prompt.String()
}

func writeBrief(prompt *strings.Builder, brief TripBrief) {
	line := func(label, value string) {
		if value = strings.TrimSpace(value); value != "" {
			prompt.WriteString(fmt.Sprintf("- %s: %s\n", label, value))
		}
	}

	line("Destination", brief.Destination)
	switch {
	case brief.StartDate != "" && brief.EndDate != "":
		line("Dates", brief.StartDate+" to "+brief.EndDate)
	case brief.StartDate != "":
		line("Start date", brief.StartDate)
	case brief.EndDate != "":
		line("End date", brief.EndDate)
	}
	line("Travelers", fmt.Sprintf("%d", brief.Travelers))
	line("Budget level", brief.BudgetLevel)
	if brief.BudgetAmount > 0 {
		line("Budget amount", fmt.Sprintf("%.0f", brief.BudgetAmount))
	}
	line("Pace", brief.Pace)
	line("Interests", strings.Join(brief.Interests, ", "))
	line("Accommodation", brief.Accommodation)
	line("Transport", brief.Transport)
	line("Dietary needs", brief.DietaryNeeds)
	line("Notes", brief.Notes)
}

var writtenNumbers = map[string]int{
	"one": 1, "two": 2, "three": 3, "four": 4, "five": 5,
	"six": 6, "seven": 7, "eight": 8, "nine": 9, "ten": 10,
}

// extractDayCount finds "5 days", "a 3-day trip", "two days" or
// "weekend"/"week" in free text. It returns 0 when nothing matches.
func extractDayCount(text string) int {
	lower := strings.ToLower(text)
	if lower == "" {
		return 0
	}

	for i := maxTripDays; i >= 1; i-- {
		for _, pattern := range []string{fmt.Sprintf("%d days", i), fmt.Sprintf("%d-day", i), fmt.Sprintf("%d day", i)} {
			if containsWord(lower, pattern) {
				return i
			}
		}
	}
	for word, num := range writtenNumbers {
		if containsWord(lower, word+" day") || containsWord(lower, word+"-day") {
			return num
		}
	}

	if strings.Contains(lower, "weekend") {
		return 2
	}
	if containsWord(lower, "week") {
		return 7
	}
	return 0
}

// containsWord reports whether pattern occurs in text at a word start.
func containsWord(text, pattern string) bool {
	for from := 0; ; {
		idx := strings.Index(text[from:], pattern)
		if idx < 0 {
			return false
		}
		at := from + idx
		if at == 0 || !isLetterOrDigit(text[at-1]) {
			return true
		}
		from = at + 1
	}
}

func isLetterOrDigit(b byte) bool {
	return b >= 'a' && b <= 'z' || b >= '0' && b <= '9'
}
