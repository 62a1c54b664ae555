package planparse

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	itinerarySectionPattern = regexp.MustCompile(`(?i)(day-by-day|itinerary)`)
	dayMarkerPattern        = regexp.MustCompile(`(?i)^day\s+(\d+)\s*(?:[:\-–—]\s*(.*))?$`)
)

type DayEntry struct {
	Day     int      `json:"day"`
	Title   string   `json:"title"`
	Details []string `json:"details"`
	Text    string   `json:"text"`
}

// Lines returns the title and each detail on its own line. Place extraction
// runs on this form so names never run across two bullets.
func (d DayEntry) Lines() string {
	lines := make([]string, 0, len(d.Details)+1)
	if d.Title != "" {
		lines = append(lines, d.Title)
	}
	lines = append(lines, d.Details...)
	return strings.Join(lines, "\n")
}

// ExtractDays reads "Day N" entries from the first itinerary section.
func ExtractDays(markdown string) []DayEntry {
	section, ok := FindSection(SplitSections(markdown), itinerarySectionPattern)
	if !ok {
		return []DayEntry{}
	}
	return DaysFromContent(section.Content)
}

// DaysFromContent walks content line by line. Lines before the first day
// marker are dropped, and repeated day numbers produce separate entries.
func DaysFromContent(content string) []DayEntry {
	days := []DayEntry{}
	var current *DayEntry

	closeDay := func() {
		if current == nil {
			return
		}
		current.Text = collapseSpace(current.Title + " " + strings.Join(current.Details, " "))
		days = append(days, *current)
		current = nil
	}

	for _, raw := range strings.Split(normalizeNewlines(content), "\n") {
		line := cleanLine(raw)
		if line == "" {
			continue
		}
		if m := dayMarkerPattern.FindStringSubmatch(line); m != nil {
			closeDay()
			n, err := strconv.Atoi(m[1])
			if err != nil {
				continue
			}
			current = &DayEntry{Day: n, Title: strings.TrimSpace(m[2]), Details: []string{}}
			continue
		}
		if current == nil {
			continue
		}
		current.Details = append(current.Details, line)
	}
	closeDay()

	return days
}
