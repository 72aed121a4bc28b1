package services

import (
	"context"
	"testing"
	"time"

	"github.com/ashleypule/soccer-score/pkg/models"
	"github.com/ashleypule/soccer-score/pkg/stats"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func arsenalHistory() []models.Match {
	return []models.Match{
		finished(1, premierLeague, arsenal, chelsea, 2, 0, -30),
		finished(2, premierLeague, spurs, arsenal, 1, 1, -20),
		finished(3, premierLeague, arsenal, spurs, 3, 1, -10),
		finished(4, premierLeague, chelsea, arsenal, 2, 1, -5),
		withStatus(finished(5, premierLeague, arsenal, chelsea, 0, 0, 3), models.MatchStatusScheduled),
	}
}

func newStatsService(t *testing.T, p *fakeProvider) *StatsService {
	t.Helper()
	cache := NewResponseCache(time.Minute)
	t.Cleanup(cache.Close)
	return NewStatsService(p, cache, stats.NewRandomEstimator(1), 0)
}

func TestStatsServiceTeamStats(t *testing.T) {
	p := &fakeProvider{teamMatches: map[int][]models.Match{arsenal.ID: arsenalHistory()}}
	s := newStatsService(t, p)
	assert.Equal(t, DefaultLookbackDays, s.lookbackDays)

	ts, err := s.TeamStats(context.Background(), arsenal.ID, "Arsenal")
	require.NoError(t, err)
	assert.Equal(t, "Arsenal", ts.TeamName)
	assert.Equal(t, 4, ts.MatchesPlayed)
	assert.Equal(t, 2, ts.Wins)
	assert.Equal(t, 1, ts.Draws)
	assert.Equal(t, 1, ts.Losses)
	assert.True(t, ts.DisciplineEstimated)

	_, err = s.TeamStats(context.Background(), arsenal.ID, "Arsenal")
	require.NoError(t, err)
	assert.Equal(t, 1, p.teamCalls)

	_, err = s.TeamStats(context.Background(), 0, "nobody")
	assert.Error(t, err)
}

func TestStatsServiceHeadToHead(t *testing.T) {
	p := &fakeProvider{teamMatches: map[int][]models.Match{arsenal.ID: arsenalHistory()}}
	s := newStatsService(t, p)

	h2h, err := s.HeadToHead(context.Background(), arsenal.ID, chelsea.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, h2h.MatchesPlayed)
	assert.Equal(t, 1, h2h.HomeWins)
	assert.Equal(t, 1, h2h.AwayWins)
	assert.InDelta(t, 2.5, h2h.AvgGoals, 1e-9)

	_, err = s.HeadToHead(context.Background(), arsenal.ID, 0)
	assert.Error(t, err)
}
