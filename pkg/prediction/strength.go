package prediction

import "github.com/ashleypule/soccer-score/pkg/models"

// AttackStrength estimates goals per match for a team playing at the given
// venue. The venue split is preferred over the overall average when the team
// has played there; recent scoring is blended in.
func (e *Engine) AttackStrength(s *models.TeamStats, isHome bool) float64 {
	contextual := s.AvgGoalsScored
	if v := s.Venue(isHome); v != nil && v.MatchesPlayed > 0 {
		contextual = v.AvgGoalsScored
	}

	recentRate := 0.0
	if s.Recent != nil {
		denom := s.Recent.Wins + s.Recent.Draws + 1
		if denom < 1 {
			denom = 1
		}
		recentRate = float64(s.Recent.GoalsScored) / float64(denom)
	}

	return e.cfg.ContextualAttackWeight*contextual + e.cfg.RecentAttackWeight*recentRate
}

// DefenseStrength is the goals a team is expected to concede at the given
// venue, discounted by its clean-sheet rate. Never below MinDefense.
func (e *Engine) DefenseStrength(s *models.TeamStats, isHome bool) float64 {
	conceded := s.AvgGoalsConceded
	if v := s.Venue(isHome); v != nil && v.MatchesPlayed > 0 {
		conceded = v.AvgGoalsConceded
	}

	rate := e.cleanSheetRate(s)
	adjusted := conceded * (1 - rate/100*e.cfg.CleanSheetDiscount)
	if adjusted < e.cfg.MinDefense {
		return e.cfg.MinDefense
	}
	return adjusted
}

func (e *Engine) cleanSheetRate(s *models.TeamStats) float64 {
	switch {
	case s.CleanSheetRate != nil:
		return clamp(*s.CleanSheetRate, 0, 100)
	case s.MatchesPlayed > 0:
		return 100 * float64(s.CleanSheets) / float64(s.MatchesPlayed)
	default:
		return e.cfg.DefaultCleanSheetRate
	}
}

// scoringConsistency is the percentage of matches in which the team scored.
// ok is false when it cannot be known.
func scoringConsistency(s *models.TeamStats) (float64, bool) {
	switch {
	case s.ScoringConsistency != nil:
		return clamp(*s.ScoringConsistency, 0, 100), true
	case s.MatchesPlayed > 0:
		return 100 * (1 - float64(s.FailedToScore)/float64(s.MatchesPlayed)), true
	default:
		return 0, false
	}
}

// homeWinRate returns the home-venue win rate when the team has home history.
func homeWinRate(s *models.TeamStats) (float64, bool) {
	if s.Home == nil || s.Home.MatchesPlayed <= 0 {
		return 0, false
	}
	return s.Home.WinRate, true
}

type h2hFactor struct {
	homeBonus float64
	awayBonus float64
	avgGoals  float64
	bttsRate  float64
	present   bool
}

func (e *Engine) headToHead(h *models.HeadToHeadSummary) h2hFactor {
	if h.Empty() {
		return h2hFactor{avgGoals: e.cfg.DefaultH2HAvgGoals, bttsRate: e.cfg.DefaultH2HBTTSRate}
	}
	mp := float64(h.MatchesPlayed)
	return h2hFactor{
		homeBonus: (100*float64(h.HomeWins)/mp - 50) / e.cfg.H2HBonusDivisor,
		awayBonus: (100*float64(h.AwayWins)/mp - 50) / e.cfg.H2HBonusDivisor,
		avgGoals:  h.AvgGoals,
		bttsRate:  h.BTTSPercentage,
		present:   true,
	}
}
