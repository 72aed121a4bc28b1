package scorebat

import (
	"strings"
	"unicode"

	"github.com/ashleypule/soccer-score/pkg/models"
)

// clubSuffixes are dropped as whole words only, so "Ajax" and "Cardiff" keep
// their letters.
var clubSuffixes = map[string]bool{
	"fc": true, "cf": true, "sc": true, "ac": true,
	"afc": true, "bfc": true, "cfc": true, "dfc": true,
}

// NormalizeTeamName lower-cases, strips punctuation and club suffix tokens.
func NormalizeTeamName(name string) string {
	cleaned := strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return unicode.ToLower(r)
		}
		return ' '
	}, name)

	words := strings.Fields(cleaned)
	kept := words[:0]
	for _, w := range words {
		if !clubSuffixes[w] {
			kept = append(kept, w)
		}
	}
	return strings.Join(kept, " ")
}

// FindForMatch returns the first highlight whose title names both teams,
// falling back to the first that names either. nil when nothing matches.
func FindForMatch(highlights []models.Highlight, homeTeam, awayTeam string) *models.Highlight {
	home := NormalizeTeamName(homeTeam)
	away := NormalizeTeamName(awayTeam)
	if home == "" && away == "" {
		return nil
	}

	titles := make([]string, len(highlights))
	for i, h := range highlights {
		titles[i] = " " + NormalizeTeamName(h.Title) + " "
	}

	contains := func(title, team string) bool {
		return team != "" && strings.Contains(title, " "+team+" ")
	}

	for i := range highlights {
		if contains(titles[i], home) && contains(titles[i], away) {
			return &highlights[i]
		}
	}
	for i := range highlights {
		if contains(titles[i], home) || contains(titles[i], away) {
			return &highlights[i]
		}
	}
	return nil
}
