package services

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/ashleypule/soccer-score/pkg/common"
	"github.com/ashleypule/soccer-score/pkg/models"
	"github.com/ashleypule/soccer-score/pkg/prediction"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStats struct {
	mu     sync.Mutex
	stats  map[int]*models.TeamStats
	errs   map[int]error
	h2h    *models.HeadToHeadSummary
	h2hErr error
	calls  int
}

func (f *fakeStats) TeamStats(_ context.Context, teamID int, teamName string) (*models.TeamStats, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if err := f.errs[teamID]; err != nil {
		return nil, err
	}
	ts := *f.stats[teamID]
	ts.TeamName = teamName
	return &ts, nil
}

func (f *fakeStats) HeadToHead(context.Context, int, int) (*models.HeadToHeadSummary, error) {
	return f.h2h, f.h2hErr
}

func liveStats() *fakeStats {
	return &fakeStats{stats: map[int]*models.TeamStats{
		arsenal.ID: {
			TeamID: arsenal.ID, MatchesPlayed: 10, Wins: 7, Draws: 2, Losses: 1,
			GoalsScored: 21, GoalsConceded: 8, AvgGoalsScored: 2.1, AvgGoalsConceded: 0.8,
			AvgCornersFor: 6, AvgCornersAgainst: 4, AvgYellowCards: 2, AvgRedCards: 0.1,
		},
		chelsea.ID: {
			TeamID: chelsea.ID, MatchesPlayed: 10, Wins: 3, Draws: 3, Losses: 4,
			GoalsScored: 12, GoalsConceded: 14, AvgGoalsScored: 1.2, AvgGoalsConceded: 1.4,
			AvgCornersFor: 5, AvgCornersAgainst: 6, AvgYellowCards: 2.5, AvgRedCards: 0.2,
		},
	}}
}

func newPredictionService(src TeamStatsSource, broker MessageBroker) (*PredictionService, *PredictionCache) {
	cache := NewPredictionCache(NewMemoryPredictionStore(), time.Hour)
	s := NewPredictionService(src, prediction.NewEngine(prediction.DefaultConfig()), cache, broker)
	s.now = func() time.Time { return baseDate }
	return s, cache
}

func liveRequest() PredictionRequest {
	return PredictionRequest{
		FixtureID:  100,
		HomeTeam:   "Arsenal",
		AwayTeam:   "Chelsea",
		HomeTeamID: arsenal.ID,
		AwayTeamID: chelsea.ID,
	}
}

func TestPredictionServiceLive(t *testing.T) {
	src := liveStats()
	src.h2h = &models.HeadToHeadSummary{MatchesPlayed: 4, HomeWins: 3, Draws: 1, AvgGoals: 3.0, BTTSPercentage: 50}
	broker := NewInMemoryBroker()
	defer broker.Close()
	events, err := broker.Consume(GetTopicName(TopicPredictionCreated))
	require.NoError(t, err)

	s, _ := newPredictionService(src, broker)

	p, err := s.Generate(context.Background(), liveRequest())
	require.NoError(t, err)
	assert.Equal(t, DataSourceLive, p.DataSource)
	assert.Equal(t, 100, p.FixtureID)
	assert.Equal(t, baseDate, p.GeneratedAt)
	assert.Equal(t, models.OutcomeHome, p.Winner.Prediction)
	require.NotNil(t, p.TeamStats)
	assert.Equal(t, "Arsenal", p.TeamStats.Home.Name)
	require.NotNil(t, p.H2H)
	assert.Equal(t, 4, p.H2H.MatchesPlayed)
	require.NoError(t, prediction.CheckConsistency(*p))

	evt, err := DecodeEvent(receive(t, events))
	require.NoError(t, err)
	assert.Equal(t, 100, evt.FixtureID)

	// 第二次命中缓存, 不再请求统计
	calls := src.calls
	again, err := s.Generate(context.Background(), liveRequest())
	require.NoError(t, err)
	assert.Equal(t, p.Scoreline, again.Scoreline)
	assert.Equal(t, calls, src.calls)
}

func TestPredictionServiceMockWithoutTeamIDs(t *testing.T) {
	s, _ := newPredictionService(liveStats(), nil)

	p, err := s.Generate(context.Background(), PredictionRequest{FixtureID: 5, HomeTeam: "Home", AwayTeam: "Away"})
	require.NoError(t, err)
	assert.Equal(t, DataSourceMock, p.DataSource)
	assert.Nil(t, p.H2H)
	require.NotNil(t, p.TeamStats)
	assert.Equal(t, 10, p.TeamStats.Home.MatchesPlayed)
	assert.NoError(t, prediction.CheckConsistency(*p))
}

func TestPredictionServiceFallsBackToMock(t *testing.T) {
	src := liveStats()
	src.errs = map[int]error{chelsea.ID: errors.New("connection reset")}
	src.h2h = &models.HeadToHeadSummary{MatchesPlayed: 2, HomeWins: 2, AvgGoals: 3}
	s, _ := newPredictionService(src, nil)

	p, err := s.Generate(context.Background(), liveRequest())
	require.NoError(t, err)
	assert.Equal(t, DataSourceMock, p.DataSource)
	assert.Nil(t, p.H2H, "h2h is discarded with mock stats")
}

func TestPredictionServiceRateLimit(t *testing.T) {
	src := liveStats()
	src.errs = map[int]error{arsenal.ID: common.NewRateLimitError(2*time.Minute, errors.New("429"))}
	s, cache := newPredictionService(src, nil)

	_, err := s.Generate(context.Background(), liveRequest())
	require.Error(t, err)
	rl, ok := common.AsRateLimit(err)
	require.True(t, ok)
	assert.Equal(t, 2*time.Minute, rl.RetryAfter)
	assert.ErrorIs(t, err, common.ErrRateLimitExceeded)

	stats, err := cache.Stats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, stats.Count, "rate limited requests are not cached")
}

func TestPredictionServiceHeadToHeadFailure(t *testing.T) {
	src := liveStats()
	src.h2hErr = errors.New("timeout")
	s, _ := newPredictionService(src, nil)

	p, err := s.Generate(context.Background(), liveRequest())
	require.NoError(t, err)
	assert.Equal(t, DataSourceLive, p.DataSource)
	assert.Nil(t, p.H2H)
}

func TestPredictionServiceInvalidFixture(t *testing.T) {
	s, _ := newPredictionService(liveStats(), nil)

	_, err := s.Generate(context.Background(), PredictionRequest{})
	assert.ErrorIs(t, err, common.ErrInvalidInput)
}

func TestPredictionServiceClearCache(t *testing.T) {
	s, _ := newPredictionService(liveStats(), nil)
	ctx := context.Background()

	_, err := s.Generate(ctx, liveRequest())
	require.NoError(t, err)

	stats, err := s.CacheStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, stats.Count)

	n, err := s.ClearCache(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}
