package services

import (
	"context"
	"fmt"
	"time"

	"github.com/ashleypule/soccer-score/footballdata"
	"github.com/ashleypule/soccer-score/pkg/models"
	"github.com/ashleypule/soccer-score/pkg/stats"
)

const (
	TeamStatsCacheTTL  = 30 * time.Minute
	HeadToHeadCacheTTL = time.Hour

	DefaultLookbackDays = 90
)

// StatsService 球队统计与交锋记录
type StatsService struct {
	provider     MatchProvider
	cache        *ResponseCache
	estimator    stats.Estimator
	lookbackDays int
	now          func() time.Time
}

// NewStatsService 创建统计服务, lookbackDays <= 0 时使用 90 天
func NewStatsService(provider MatchProvider, cache *ResponseCache, estimator stats.Estimator, lookbackDays int) *StatsService {
	if lookbackDays <= 0 {
		lookbackDays = DefaultLookbackDays
	}
	return &StatsService{
		provider:     provider,
		cache:        cache,
		estimator:    estimator,
		lookbackDays: lookbackDays,
		now:          time.Now,
	}
}

// TeamStats 统计回溯窗口内已完赛的比赛
func (s *StatsService) TeamStats(ctx context.Context, teamID int, teamName string) (*models.TeamStats, error) {
	if teamID <= 0 {
		return nil, fmt.Errorf("team stats: invalid team id %d", teamID)
	}

	key := fmt.Sprintf("team_stats_%d", teamID)
	if cached, ok := s.cache.Get(key); ok {
		ts := cached.(models.TeamStats)
		return &ts, nil
	}

	to := s.now().UTC()
	from := to.AddDate(0, 0, -s.lookbackDays)
	matches, err := s.provider.GetTeamMatches(ctx, teamID, footballdata.MatchListOptions{DateFrom: from, DateTo: to})
	if err != nil {
		return nil, fmt.Errorf("team %d matches: %w", teamID, err)
	}

	ts := stats.NormalizeTeam(teamID, teamName, matches, s.estimator)
	s.cache.SetWithTTL(key, ts, TeamStatsCacheTTL)
	return &ts, nil
}

// HeadToHead 两队交锋, 以即将进行的比赛的主客视角统计
func (s *StatsService) HeadToHead(ctx context.Context, homeTeamID, awayTeamID int) (*models.HeadToHeadSummary, error) {
	if homeTeamID <= 0 || awayTeamID <= 0 {
		return nil, fmt.Errorf("head to head: invalid team ids %d/%d", homeTeamID, awayTeamID)
	}

	key := fmt.Sprintf("h2h_%d_%d", homeTeamID, awayTeamID)
	if cached, ok := s.cache.Get(key); ok {
		return cached.(*models.HeadToHeadSummary), nil
	}

	matches, err := s.provider.GetTeamMatches(ctx, homeTeamID, footballdata.MatchListOptions{})
	if err != nil {
		return nil, fmt.Errorf("team %d matches: %w", homeTeamID, err)
	}

	h2h := stats.HeadToHead(homeTeamID, awayTeamID, matches)
	s.cache.SetWithTTL(key, h2h, HeadToHeadCacheTTL)
	return h2h, nil
}
