// Package planparse turns the loosely structured markdown returned by the
// itinerary model into dashboard data: sections, days, budget lines, places,
// visit details, weather hints and map links.
//
// Every function here is pure and never fails. Malformed or missing input
// produces empty slices or fallback strings.
package planparse

import (
	"regexp"
	"strings"
)

// DefaultSectionTitle names content that is not under any "## " heading.
const DefaultSectionTitle = "AI Response"

const sectionMarker = "## "

type Section struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// SplitSections splits text at every line that starts with "## ".
// "###" headings stay inside the section content.
func SplitSections(text string) []Section {
	text = normalizeNewlines(text)
	if strings.TrimSpace(text) == "" {
		return []Section{}
	}

	sections := []Section{}
	var (
		title      string
		hasHeading bool
		body       []string
	)
	flush := func() {
		content := strings.TrimSpace(strings.Join(body, "\n"))
		switch {
		case !hasHeading && content == "":
		case !hasHeading:
			sections = append(sections, Section{Title: DefaultSectionTitle, Content: content})
		case title == "" && content == "":
		default:
			sections = append(sections, Section{Title: title, Content: content})
		}
		body = body[:0]
	}

	for _, line := range strings.Split(text, "\n") {
		if strings.HasPrefix(line, sectionMarker) {
			flush()
			title = strings.TrimSpace(strings.TrimPrefix(line, sectionMarker))
			hasHeading = true
			continue
		}
		body = append(body, line)
	}
	flush()

	return sections
}

// FindSection returns the first section whose title matches pattern.
func FindSection(sections []Section, pattern *regexp.Regexp) (Section, bool) {
	for _, s := range sections {
		if pattern.MatchString(s.Title) {
			return s, true
		}
	}
	return Section{}, false
}

// JoinSections renders sections back to markdown with "## " headings.
func JoinSections(sections []Section) string {
	parts := make([]string, 0, len(sections))
	for _, s := range sections {
		block := sectionMarker + s.Title
		if s.Content != "" {
			block += "\n" + s.Content
		}
		parts = append(parts, block)
	}
	return strings.Join(parts, "\n\n")
}
