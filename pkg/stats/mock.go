package stats

import (
	"math/rand"

	"github.com/ashleypule/soccer-score/pkg/models"
)

const mockMatches = 10

// MockTeamStats generates a plausible ten-match record for demo use and as
// the fallback when the statistics provider fails.
func MockTeamStats(rnd *rand.Rand, teamName string) models.TeamStats {
	wins := rnd.Intn(6) + 2
	losses := rnd.Intn(4)
	draws := mockMatches - wins - losses
	goalsScored := wins*2 + draws + rnd.Intn(5)
	goalsConceded := losses*2 + rnd.Intn(5)

	return models.TeamStats{
		TeamName:            teamName,
		MatchesPlayed:       mockMatches,
		Wins:                wins,
		Draws:               draws,
		Losses:              losses,
		GoalsScored:         goalsScored,
		GoalsConceded:       goalsConceded,
		GoalDifference:      goalsScored - goalsConceded,
		CleanSheets:         rnd.Intn(4),
		FailedToScore:       rnd.Intn(3),
		AvgGoalsScored:      float64(goalsScored) / mockMatches,
		AvgGoalsConceded:    float64(goalsConceded) / mockMatches,
		AvgCornersFor:       4 + rnd.Float64()*3,
		AvgCornersAgainst:   4 + rnd.Float64()*3,
		AvgYellowCards:      2 + rnd.Float64()*2,
		AvgRedCards:         rnd.Float64() * 0.3,
		DisciplineEstimated: true,
	}
}
