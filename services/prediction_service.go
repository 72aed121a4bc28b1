package services

import (
	"context"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/ashleypule/soccer-score/logger"
	"github.com/ashleypule/soccer-score/pkg/common"
	"github.com/ashleypule/soccer-score/pkg/models"
	"github.com/ashleypule/soccer-score/pkg/prediction"
	"github.com/ashleypule/soccer-score/pkg/stats"
	"golang.org/x/sync/errgroup"
)

// 预测数据来源
const (
	DataSourceLive = "live"
	DataSourceMock = "mock"
)

// PredictionRequest 单场预测请求
type PredictionRequest struct {
	FixtureID  int
	HomeTeam   string
	AwayTeam   string
	HomeTeamID int
	AwayTeamID int
}

// TeamStatsSource PredictionService 依赖的统计来源, 由 StatsService 实现
type TeamStatsSource interface {
	TeamStats(ctx context.Context, teamID int, teamName string) (*models.TeamStats, error)
	HeadToHead(ctx context.Context, homeTeamID, awayTeamID int) (*models.HeadToHeadSummary, error)
}

// PredictionService 组装统计数据、调用预测引擎并缓存结果
type PredictionService struct {
	stats  TeamStatsSource
	engine *prediction.Engine
	cache  *PredictionCache
	broker MessageBroker
	now    func() time.Time

	rndMu sync.Mutex
	rnd   *rand.Rand
}

// NewPredictionService 创建预测服务, broker 可为 nil
func NewPredictionService(source TeamStatsSource, engine *prediction.Engine, cache *PredictionCache, broker MessageBroker) *PredictionService {
	return &PredictionService{
		stats:  source,
		engine: engine,
		cache:  cache,
		broker: broker,
		now:    time.Now,
		rnd:    rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Generate 生成或从缓存读取预测. 限流错误原样返回 (*common.RateLimitError),
// 其他统计获取失败时两队都退回模拟数据
func (s *PredictionService) Generate(ctx context.Context, req PredictionRequest) (*models.MatchPrediction, error) {
	if req.FixtureID <= 0 {
		return nil, fmt.Errorf("%w: fixture id %d", common.ErrInvalidInput, req.FixtureID)
	}

	key := FixtureKey(req.FixtureID)
	cached, ok, err := s.cache.Get(ctx, key)
	if err != nil {
		logger.Warnf("[PredictionService] cache read %s: %v", key, err)
	}
	if ok {
		logger.Debugf("[PredictionService] cache hit %s", key)
		return cached, nil
	}

	home, away, h2h, source, err := s.gather(ctx, req)
	if err != nil {
		return nil, err
	}

	p := s.engine.PredictMatch(*home, *away, h2h)
	if err := prediction.CheckConsistency(p); err != nil {
		return nil, err
	}

	if home.MatchesPlayed > 0 && away.MatchesPlayed > 0 {
		p.TeamStats = prediction.BuildTeamStatsDisplay(home, away)
	}
	p.H2H = prediction.BuildH2HDisplay(h2h, home.TeamName, away.TeamName)
	p.FixtureID = req.FixtureID
	p.DataSource = source
	p.GeneratedAt = s.now()

	if err := s.cache.Put(ctx, key, p, req.HomeTeam, req.AwayTeam); err != nil {
		logger.Warnf("[PredictionService] cache write %s: %v", key, err)
	}

	if err := PublishEvent(s.broker, TopicPredictionCreated, req.FixtureID, p); err != nil {
		logger.Warnf("[PredictionService] publish prediction %d: %v", req.FixtureID, err)
	}

	logger.Printf("[PredictionService] %s vs %s (fixture %d): %s %d-%d, source=%s",
		req.HomeTeam, req.AwayTeam, req.FixtureID, p.Winner.Prediction,
		p.Scoreline.Home, p.Scoreline.Away, source)

	return &p, nil
}

// gather 并发获取两队统计和交锋记录
func (s *PredictionService) gather(ctx context.Context, req PredictionRequest) (home, away *models.TeamStats, h2h *models.HeadToHeadSummary, source string, err error) {
	if req.HomeTeamID <= 0 || req.AwayTeamID <= 0 {
		home, away = s.mockPair(req)
		return home, away, nil, DataSourceMock, nil
	}

	var homeErr, awayErr, h2hErr error
	var g errgroup.Group
	g.Go(func() error {
		home, homeErr = s.stats.TeamStats(ctx, req.HomeTeamID, req.HomeTeam)
		return homeErr
	})
	g.Go(func() error {
		away, awayErr = s.stats.TeamStats(ctx, req.AwayTeamID, req.AwayTeam)
		return awayErr
	})
	g.Go(func() error {
		h2h, h2hErr = s.stats.HeadToHead(ctx, req.HomeTeamID, req.AwayTeamID)
		return nil
	})

	if err := g.Wait(); err != nil {
		for _, e := range []error{homeErr, awayErr} {
			if _, ok := common.AsRateLimit(e); ok {
				return nil, nil, nil, "", e
			}
		}
		logger.Warnf("[PredictionService] team stats unavailable for fixture %d, using mock data: %v", req.FixtureID, err)
		home, away = s.mockPair(req)
		return home, away, nil, DataSourceMock, nil
	}

	if h2hErr != nil {
		logger.Warnf("[PredictionService] head to head unavailable for fixture %d: %v", req.FixtureID, h2hErr)
		h2h = nil
	}

	return home, away, h2h, DataSourceLive, nil
}

func (s *PredictionService) mockPair(req PredictionRequest) (*models.TeamStats, *models.TeamStats) {
	s.rndMu.Lock()
	defer s.rndMu.Unlock()

	home := stats.MockTeamStats(s.rnd, req.HomeTeam)
	away := stats.MockTeamStats(s.rnd, req.AwayTeam)
	home.TeamID, away.TeamID = req.HomeTeamID, req.AwayTeamID
	return &home, &away
}

// ClearCache 清空预测缓存
func (s *PredictionService) ClearCache(ctx context.Context) (int, error) {
	n, err := s.cache.Clear(ctx)
	if err != nil {
		return 0, err
	}
	logger.Printf("[PredictionService] Cleared %d cached predictions", n)
	return n, nil
}

// CacheStats 预测缓存统计
func (s *PredictionService) CacheStats(ctx context.Context) (CacheStats, error) {
	return s.cache.Stats(ctx)
}
