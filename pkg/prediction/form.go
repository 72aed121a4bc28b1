package prediction

import "github.com/ashleypule/soccer-score/pkg/models"

const neutralForm = 50

// FormScore rates a team's overall record on a 0..100 scale. Teams without
// any matches get the neutral 50.
func FormScore(s *models.TeamStats) float64 {
	if s == nil || s.MatchesPlayed <= 0 {
		return neutralForm
	}
	mp := float64(s.MatchesPlayed)
	winRate := 100 * float64(s.Wins) / mp
	drawRate := 50 * float64(s.Draws) / mp
	goalDiffScore := clamp(5*float64(s.GoalsScored-s.GoalsConceded), -25, 25)
	return clamp(winRate+drawRate+goalDiffScore, 0, 100)
}

// WeightedForm blends the overall form score with the last-5 and last-3 form
// windows. Missing windows count as neutral.
func (e *Engine) WeightedForm(s *models.TeamStats) float64 {
	recent, last3 := float64(neutralForm), float64(neutralForm)
	if s != nil && s.Recent != nil && s.Recent.Matches > 0 {
		recent = s.Recent.Form
	}
	if s != nil && s.Last3 != nil && s.Last3.Matches > 0 {
		last3 = s.Last3.Form
	}
	return e.cfg.OverallFormWeight*FormScore(s) +
		e.cfg.RecentFormWeight*recent +
		e.cfg.Last3FormWeight*last3
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
