package stats

import "github.com/ashleypule/soccer-score/pkg/models"

const recentMeetings = 3

// HeadToHead summarises finished meetings between two teams. Counts are
// oriented to the upcoming fixture: HomeWins are wins by homeID regardless of
// where the old match was played.
func HeadToHead(homeID, awayID int, matches []models.Match) *models.HeadToHeadSummary {
	meetings := make([]models.Match, 0)
	for _, m := range FinishedFor(homeID, matches) {
		if m.Involves(awayID) && homeID != awayID {
			meetings = append(meetings, m)
		}
	}

	h := &models.HeadToHeadSummary{MatchesPlayed: len(meetings)}
	if h.MatchesPlayed == 0 {
		return h
	}

	totalGoals, both := 0, 0
	for _, m := range meetings {
		gf, ga, _ := goalsFor(homeID, m)
		totalGoals += gf + ga
		if gf > 0 && ga > 0 {
			both++
		}
		switch {
		case gf > ga:
			h.HomeWins++
		case gf < ga:
			h.AwayWins++
		default:
			h.Draws++
		}
	}

	h.AvgGoals = float64(totalGoals) / float64(h.MatchesPlayed)
	h.BTTSPercentage = 100 * float64(both) / float64(h.MatchesPlayed)

	// newest first
	for i := len(meetings) - 1; i >= 0 && len(h.RecentMatches) < recentMeetings; i-- {
		h.RecentMatches = append(h.RecentMatches, meetings[i])
	}
	return h
}
