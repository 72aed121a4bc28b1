package prediction

import (
	"fmt"

	"github.com/ashleypule/soccer-score/pkg/models"
)

// BuildTeamStatsDisplay formats both teams' records for presentation next to
// a prediction. The home side shows its home split, the away side its away split.
func BuildTeamStatsDisplay(home, away *models.TeamStats) *models.TeamStatsDisplay {
	return &models.TeamStatsDisplay{
		Home: teamDisplay(home, true),
		Away: teamDisplay(away, false),
	}
}

func teamDisplay(s *models.TeamStats, isHome bool) models.TeamDisplay {
	var venue models.VenueStats
	if v := s.Venue(isHome); v != nil {
		venue = *v
	}
	var recent, last3 models.FormWindow
	if s.Recent != nil {
		recent = *s.Recent
	}
	if s.Last3 != nil {
		last3 = *s.Last3
	}

	csr := 0.0
	if s.CleanSheetRate != nil {
		csr = *s.CleanSheetRate
	} else if s.MatchesPlayed > 0 {
		csr = 100 * float64(s.CleanSheets) / float64(s.MatchesPlayed)
	}

	return models.TeamDisplay{
		Name:           s.TeamName,
		MatchesPlayed:  s.MatchesPlayed,
		Record:         fmt.Sprintf("%dW-%dD-%dL", s.Wins, s.Draws, s.Losses),
		VenueRecord:    fmt.Sprintf("%dW-%dD-%dL", venue.Wins, venue.Draws, venue.Losses),
		VenueWinRate:   venue.WinRate,
		Goals:          fmt.Sprintf("%d scored, %d conceded", s.GoalsScored, s.GoalsConceded),
		AvgGoals:       fmt.Sprintf("%.2f scored, %.2f conceded", s.AvgGoalsScored, s.AvgGoalsConceded),
		VenueAvgGoals:  fmt.Sprintf("%.2f scored, %.2f conceded", venue.AvgGoalsScored, venue.AvgGoalsConceded),
		RecentForm:     fmt.Sprintf("%dW-%dD | %.1f%%", recent.Wins, recent.Draws, recent.Form),
		Last3:          fmt.Sprintf("%d wins, %d scored, %d conceded", last3.Wins, last3.GoalsScored, last3.GoalsConceded),
		CleanSheets:    fmt.Sprintf("%d (%.1f%%)", s.CleanSheets, csr),
		GoalDifference: signed(s.GoalDifference),
	}
}

// BuildH2HDisplay returns nil when there is no meeting to show.
func BuildH2HDisplay(h *models.HeadToHeadSummary, homeName, awayName string) *models.H2HDisplay {
	if h.Empty() {
		return nil
	}
	return &models.H2HDisplay{
		MatchesPlayed:  h.MatchesPlayed,
		Distribution:   fmt.Sprintf("%s: %d | %s: %d | Draws: %d", homeName, h.HomeWins, awayName, h.AwayWins, h.Draws),
		AvgGoals:       h.AvgGoals,
		BTTSPercentage: h.BTTSPercentage,
	}
}

func signed(n int) string {
	if n > 0 {
		return fmt.Sprintf("+%d", n)
	}
	return fmt.Sprintf("%d", n)
}
