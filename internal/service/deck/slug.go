package deck

import (
	"regexp"
	"strings"
)

var nonWordRuns = regexp.MustCompile(`[^a-z0-9]+`)

const maxSlugLen = 50

// slugify turns a deck title into a filesystem-safe filename stem:
// lowercase, runs of non-alphanumeric characters collapsed to "_",
// truncated to 50 characters. An empty result falls back to "deck".
func slugify(title string) string {
	s := nonWordRuns.ReplaceAllString(strings.ToLower(title), "_")
	s = strings.Trim(s, "_")
	if len(s) > maxSlugLen {
		s = strings.Trim(s[:maxSlugLen], "_")
	}
	if s == "" {
		return "deck"
	}
	return s
}
