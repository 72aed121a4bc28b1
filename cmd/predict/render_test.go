package main

import (
	"bytes"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ashleypule/soccer-score/pkg/models"
	"github.com/ashleypule/soccer-score/pkg/prediction"
	"github.com/ashleypule/soccer-score/pkg/stats"
)

func TestRenderPrediction(t *testing.T) {
	rnd := rand.New(rand.NewSource(7))
	home := stats.MockTeamStats(rnd, "Arsenal")
	away := stats.MockTeamStats(rnd, "Chelsea")

	p := prediction.PredictMatch(home, away, &models.HeadToHeadSummary{MatchesPlayed: 3, HomeWins: 2, Draws: 1, AvgGoals: 2.7, BTTSPercentage: 66.7})
	p.TeamStats = prediction.BuildTeamStatsDisplay(&home, &away)
	p.H2H = prediction.BuildH2HDisplay(&models.HeadToHeadSummary{MatchesPlayed: 3, HomeWins: 2, Draws: 1, AvgGoals: 2.7, BTTSPercentage: 66.7}, "Arsenal", "Chelsea")
	p.DataSource = "mock"

	var buf bytes.Buffer
	renderPrediction(&buf, "Arsenal", "Chelsea", &p)
	out := buf.String()

	assert.Contains(t, out, "Arsenal vs Chelsea (mock data)")
	assert.Contains(t, out, p.Combo.Prediction)
	assert.Contains(t, out, p.Winner.Reasoning)
	assert.Contains(t, out, "Clean sheets")
	assert.Contains(t, out, "Head to head: 3 matches")
}

func TestWinnerLabel(t *testing.T) {
	assert.Equal(t, "Arsenal", winnerLabel(models.OutcomeHome, "Arsenal", "Chelsea"))
	assert.Equal(t, "Chelsea", winnerLabel(models.OutcomeAway, "Arsenal", "Chelsea"))
	assert.Equal(t, "Draw", winnerLabel(models.OutcomeDraw, "Arsenal", "Chelsea"))
}

func TestScoreText(t *testing.T) {
	assert.Equal(t, "-", scoreText(models.Score{}))
	assert.Equal(t, "3-1", scoreText(models.NewScore(3, 1)))
}
