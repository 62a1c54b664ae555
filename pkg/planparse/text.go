package planparse

import (
	"regexp"
	"strings"
	"unicode"
)

var (
	bulletPrefix  = regexp.MustCompile(`^\s*(?:[-*•+]|\d+[.)])\s+`)
	headingPrefix = regexp.MustCompile(`^\s*#{1,6}\s*`)
)

func normalizeNewlines(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(s, "\r", "\n")
}

func stripBullet(line string) string {
	return bulletPrefix.ReplaceAllString(line, "")
}

func stripHeading(line string) string {
	return headingPrefix.ReplaceAllString(line, "")
}

func stripBold(s string) string {
	s = strings.ReplaceAll(s, "**", "")
	return strings.ReplaceAll(s, "__", "")
}

// stripEmphasis removes every markdown emphasis marker, single stars included.
func stripEmphasis(s string) string {
	s = stripBold(s)
	return strings.ReplaceAll(s, "*", "")
}

func collapseSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// cleanLine turns a markdown list/heading line into plain text.
func cleanLine(line string) string {
	line = stripHeading(strings.TrimSpace(line))
	line = stripBullet(line)
	return collapseSpace(stripBold(line))
}

// words splits s into lowercase letter/digit runs; hyphens and apostrophes separate words.
func words(s string) []string {
	fields := strings.FieldsFunc(strings.ToLower(s), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	return fields
}

// containsPhrase reports whether any keyword phrase appears as whole words in text.
func containsPhrase(text string, keywords []string) bool {
	padded := " " + strings.Join(words(text), " ") + " "
	for _, kw := range keywords {
		if strings.Contains(padded, " "+kw+" ") {
			return true
		}
	}
	return false
}
