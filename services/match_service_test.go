package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/ashleypule/soccer-score/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMatchService(t *testing.T, p *fakeProvider) *MatchService {
	t.Helper()
	cache := NewResponseCache(time.Minute)
	t.Cleanup(cache.Close)
	s := NewMatchService(p, cache)
	s.now = func() time.Time { return baseDate }
	return s
}

func TestMatchServiceMergesCompetitions(t *testing.T) {
	p := &fakeProvider{compMatches: map[string][]models.Match{
		"PL": {
			finished(1, premierLeague, arsenal, chelsea, 2, 1, -3),
			withStatus(finished(2, premierLeague, spurs, arsenal, 0, 0, 2), models.MatchStatusScheduled),
		},
		"PD": {finished(3, laLiga, models.Team{ID: 86, Name: "Real Madrid CF"}, models.Team{ID: 81, Name: "FC Barcelona"}, 1, 1, -1)},
	}}
	s := newMatchService(t, p)

	list, err := s.Matches(context.Background(), MatchQuery{DaysBack: 7, DaysForward: 3})
	require.NoError(t, err)
	assert.Equal(t, "2024-02-23", list.DateFrom)
	assert.Equal(t, "2024-03-04", list.DateTo)
	require.Len(t, list.Matches, 3)
	assert.Equal(t, []int{2, 3, 1}, ids(list.Matches), "most recent first")
	assert.Equal(t, 0, p.matchCalls)

	list, err = s.Matches(context.Background(), MatchQuery{DaysBack: 7, DaysForward: 3, League: "pl", Ascending: true})
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, ids(list.Matches))

	list, err = s.Matches(context.Background(), MatchQuery{DaysBack: 7, DaysForward: 3, Status: models.MatchStatusFinished})
	require.NoError(t, err)
	assert.Equal(t, []int{3, 1}, ids(list.Matches))

	list, err = s.Matches(context.Background(), MatchQuery{DaysBack: 7, DaysForward: 3, League: "2014"})
	require.NoError(t, err)
	assert.Equal(t, []int{3}, ids(list.Matches))

	// 同一日期范围只请求一次上游
	p.mu.Lock()
	calls := p.compCalls
	p.mu.Unlock()
	assert.Equal(t, 12, calls)
}

func TestMatchServiceFallsBackToGeneralEndpoint(t *testing.T) {
	p := &fakeProvider{
		compErr: errors.New("403 forbidden"),
		matches: []models.Match{finished(9, premierLeague, arsenal, spurs, 3, 0, -1)},
	}
	s := newMatchService(t, p)

	list, err := s.Matches(context.Background(), MatchQuery{DaysBack: 7})
	require.NoError(t, err)
	assert.Equal(t, []int{9}, ids(list.Matches))
	assert.Equal(t, 1, p.matchCalls)
}

func TestMatchServiceFallbackError(t *testing.T) {
	p := &fakeProvider{matchesErr: errors.New("upstream down")}
	s := newMatchService(t, p)

	_, err := s.Matches(context.Background(), MatchQuery{DaysBack: 1})
	assert.Error(t, err)
}

func TestMatchServiceLive(t *testing.T) {
	p := &fakeProvider{matches: []models.Match{
		withStatus(finished(1, premierLeague, arsenal, chelsea, 0, 0, 0), models.MatchStatusOngoing),
		finished(2, premierLeague, spurs, chelsea, 1, 0, 0),
	}}
	s := newMatchService(t, p)

	live, err := s.Live(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []int{1}, ids(live))

	_, err = s.Live(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, p.matchCalls, "second call served from cache")
}

func TestMatchServiceLeaguesCached(t *testing.T) {
	p := &fakeProvider{leagues: []models.League{premierLeague, laLiga}}
	s := newMatchService(t, p)

	for i := 0; i < 2; i++ {
		leagues, err := s.Leagues(context.Background())
		require.NoError(t, err)
		assert.Len(t, leagues, 2)
	}
	assert.Equal(t, 1, p.leagueCalls)
}

func ids(matches []models.Match) []int {
	out := make([]int, len(matches))
	for i, m := range matches {
		out[i] = m.ID
	}
	return out
}
