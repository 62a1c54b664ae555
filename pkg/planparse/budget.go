package planparse

import (
	"regexp"
	"strings"
)

var budgetSectionPattern = regexp.MustCompile(`(?i)budget allocation`)

type BudgetItem struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// ExtractBudgetItems reads "label: value" lines from the first
// "Budget Allocation" section. Values are kept verbatim.
func ExtractBudgetItems(markdown string) []BudgetItem {
	section, ok := FindSection(SplitSections(markdown), budgetSectionPattern)
	if !ok {
		return []BudgetItem{}
	}
	return BudgetItemsFromContent(section.Content)
}

// BudgetItemsFromContent parses section content; lines without ": " are skipped.
func BudgetItemsFromContent(content string) []BudgetItem {
	items := []BudgetItem{}
	for _, raw := range strings.Split(normalizeNewlines(content), "\n") {
		line := strings.TrimSpace(stripBold(stripBullet(strings.TrimSpace(raw))))
		if line == "" {
			continue
		}
		idx := strings.Index(line, ": ")
		if idx < 0 {
			continue
		}
		label := strings.TrimSpace(line[:idx])
		if label == "" {
			continue
		}
		items = append(items, BudgetItem{
			Label: label,
			Value: strings.TrimSpace(line[idx+2:]),
		})
	}
	return items
}
