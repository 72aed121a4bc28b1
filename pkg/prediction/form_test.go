package prediction

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ashleypule/soccer-score/pkg/models"
)

func TestFormScore(t *testing.T) {
	tests := []struct {
		name  string
		stats *models.TeamStats
		want  float64
	}{
		{"nil stats", nil, 50},
		{"no matches", &models.TeamStats{}, 50},
		{"perfect record capped", &models.TeamStats{MatchesPlayed: 5, Wins: 5, GoalsScored: 15, GoalsConceded: 1}, 100},
		{"all losses floored", &models.TeamStats{MatchesPlayed: 4, Losses: 4, GoalsConceded: 12}, 0},
		{"mixed", &models.TeamStats{MatchesPlayed: 10, Wins: 4, Draws: 2, Losses: 4, GoalsScored: 12, GoalsConceded: 11}, 55},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, FormScore(tt.stats), 1e-9)
		})
	}
}

func TestWeightedFormDefaultsMissingWindows(t *testing.T) {
	e := NewEngine(DefaultConfig())
	s := &models.TeamStats{MatchesPlayed: 10, Wins: 4, Draws: 2, Losses: 4, GoalsScored: 12, GoalsConceded: 11}

	// 0.2*55 + 0.3*50 + 0.5*50
	assert.InDelta(t, 51, e.WeightedForm(s), 1e-9)

	s.Recent = &models.FormWindow{Matches: 5, Form: 80}
	s.Last3 = &models.FormWindow{Matches: 3, Form: 100}
	assert.InDelta(t, 11+24+50, e.WeightedForm(s), 1e-9)
}

func TestAttackStrengthPrefersVenue(t *testing.T) {
	e := NewEngine(DefaultConfig())
	s := &models.TeamStats{
		AvgGoalsScored: 1.5,
		Home:           &models.VenueStats{MatchesPlayed: 4, AvgGoalsScored: 2.5},
		Recent:         &models.FormWindow{Matches: 5, Wins: 2, Draws: 1, GoalsScored: 8},
	}

	assert.InDelta(t, 0.6*2.5+0.4*2, e.AttackStrength(s, true), 1e-9)
	assert.InDelta(t, 0.6*1.5+0.4*2, e.AttackStrength(s, false), 1e-9)
}

func TestAttackStrengthRecentDenominatorFloor(t *testing.T) {
	e := NewEngine(DefaultConfig())
	s := &models.TeamStats{AvgGoalsScored: 1, Recent: &models.FormWindow{Matches: 5, GoalsScored: 3}}
	assert.InDelta(t, 0.6+0.4*3, e.AttackStrength(s, true), 1e-9)
}

func TestDefenseStrength(t *testing.T) {
	e := NewEngine(DefaultConfig())

	s := &models.TeamStats{MatchesPlayed: 10, CleanSheets: 5, AvgGoalsConceded: 2}
	assert.InDelta(t, 2*(1-0.5*0.3), e.DefenseStrength(s, true), 1e-9)

	s.CleanSheetRate = models.Float(0)
	assert.InDelta(t, 2, e.DefenseStrength(s, true), 1e-9)

	empty := &models.TeamStats{}
	assert.InDelta(t, 0.3, e.DefenseStrength(empty, false), 1e-9)

	away := &models.TeamStats{MatchesPlayed: 10, AvgGoalsConceded: 2, Away: &models.VenueStats{MatchesPlayed: 5, AvgGoalsConceded: 1}}
	assert.InDelta(t, 1, e.DefenseStrength(away, false), 1e-9)
}

func TestAnalyzeHomeAdvantage(t *testing.T) {
	e := NewEngine(DefaultConfig())

	home := strongHome()
	away := weakAway()
	a := e.Analyze(&home, &away, nil)
	assert.InDelta(t, 21, a.HomeAdvantage, 1e-9)
	assert.False(t, a.HasH2H)
	assert.InDelta(t, 2.5, a.H2HAvgGoals, 1e-9)

	home.Home = nil
	a = e.Analyze(&home, &away, nil)
	assert.InDelta(t, 15, a.HomeAdvantage, 1e-9)

	empty := models.TeamStats{}
	a = e.Analyze(&empty, &away, nil)
	assert.Zero(t, a.HomeAdvantage)
}
