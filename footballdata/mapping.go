package footballdata

import (
	"fmt"
	"strings"
	"time"

	"github.com/ashleypule/soccer-score/pkg/models"
)

// MapStatus maps the vendor status to the three display states
func MapStatus(status string) models.MatchStatus {
	switch status {
	case "FINISHED", "AWARDED":
		return models.MatchStatusFinished
	case "IN_PLAY", "PAUSED", "LIVE":
		return models.MatchStatusOngoing
	default:
		return models.MatchStatusScheduled
	}
}

// RoundLabel is "Matchday N" during the regular season and the prettified
// stage name otherwise.
func RoundLabel(stage string, matchday *int) string {
	if (stage == "" || stage == "REGULAR_SEASON") && matchday != nil {
		return fmt.Sprintf("Matchday %d", *matchday)
	}
	return strings.ReplaceAll(stage, "_", " ")
}

// ToLeague converts a competition and its area
func ToLeague(comp Competition, area Area) models.League {
	return models.League{
		ID:      comp.ID,
		Code:    comp.Code,
		Name:    comp.Name,
		Country: area.Name,
		Logo:    comp.Emblem,
		Flag:    area.Flag,
	}
}

// ToMatch converts a vendor match
func ToMatch(m Match) models.Match {
	date, _ := time.Parse(time.RFC3339, m.UTCDate)
	return models.Match{
		ID:       m.ID,
		League:   ToLeague(m.Competition, m.Area),
		HomeTeam: toTeam(m.HomeTeam),
		AwayTeam: toTeam(m.AwayTeam),
		Score:    models.Score{Home: m.Score.FullTime.Home, Away: m.Score.FullTime.Away},
		Status:   MapStatus(m.Status),
		Date:     date,
		Round:    RoundLabel(m.Stage, m.Matchday),
		Venue:    m.Venue,
	}
}

// ToMatches converts a list. Competition-scoped responses carry the
// competition once at the top level; it fills in matches that lack it.
func ToMatches(in []Match, comp *Competition) []models.Match {
	out := make([]models.Match, 0, len(in))
	for _, m := range in {
		if comp != nil && m.Competition.ID == 0 {
			m.Competition = *comp
		}
		out = append(out, ToMatch(m))
	}
	return out
}

func toTeam(t TeamRef) models.Team {
	return models.Team{ID: t.ID, Name: t.Name, ShortName: t.ShortName, Logo: t.Crest}
}
