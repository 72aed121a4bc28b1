package services

import (
	"context"
	"sort"
	"time"

	"github.com/ashleypule/soccer-score/footballdata"
	"github.com/ashleypule/soccer-score/logger"
	"github.com/ashleypule/soccer-score/pkg/models"
	"golang.org/x/sync/errgroup"
)

// 缓存时长, 与上游数据的变化频率一致
const (
	LeaguesCacheTTL = time.Hour
	MatchesCacheTTL = 60 * time.Second
	LiveCacheTTL    = 30 * time.Second

	leagueFanOut = 4
	dateLayout   = "2006-01-02"
)

// MatchQuery 比赛列表查询
type MatchQuery struct {
	DaysBack    int
	DaysForward int
	League      string             // id, code 或名称
	Status      models.MatchStatus // 空表示全部
	Ascending   bool
}

// MatchList 比赛列表结果
type MatchList struct {
	DateFrom string         `json:"date_from"`
	DateTo   string         `json:"date_to"`
	Matches  []models.Match `json:"matches"`
}

// MatchService 联赛和比赛列表
type MatchService struct {
	provider MatchProvider
	cache    *ResponseCache
	now      func() time.Time
}

// NewMatchService 创建比赛服务
func NewMatchService(provider MatchProvider, cache *ResponseCache) *MatchService {
	return &MatchService{
		provider: provider,
		cache:    cache,
		now:      time.Now,
	}
}

// Leagues 支持的联赛列表
func (s *MatchService) Leagues(ctx context.Context) ([]models.League, error) {
	const key = "leagues"
	if cached, ok := s.cache.Get(key); ok {
		return cached.([]models.League), nil
	}

	leagues, err := s.provider.GetSupportedLeagues(ctx)
	if err != nil {
		return nil, err
	}

	s.cache.SetWithTTL(key, leagues, LeaguesCacheTTL)
	return leagues, nil
}

// Matches 按日期范围获取所有支持联赛的比赛, 再按联赛和状态过滤
func (s *MatchService) Matches(ctx context.Context, q MatchQuery) (*MatchList, error) {
	today := s.now().UTC()
	from := today.AddDate(0, 0, -q.DaysBack)
	to := today.AddDate(0, 0, q.DaysForward)
	opts := footballdata.MatchListOptions{DateFrom: from, DateTo: to}

	all, err := s.fetchRange(ctx, opts)
	if err != nil {
		return nil, err
	}

	filtered := filterMatches(all, q.League, q.Status)
	sortMatches(filtered, q.Ascending)

	return &MatchList{
		DateFrom: from.Format(dateLayout),
		DateTo:   to.Format(dateLayout),
		Matches:  filtered,
	}, nil
}

// Live 今日进行中的比赛
func (s *MatchService) Live(ctx context.Context) ([]models.Match, error) {
	const key = "matches_live"
	if cached, ok := s.cache.Get(key); ok {
		return cached.([]models.Match), nil
	}

	today := s.now().UTC()
	matches, err := s.provider.GetMatches(ctx, footballdata.MatchListOptions{DateFrom: today, DateTo: today})
	if err != nil {
		return nil, err
	}

	live := filterMatches(matches, "", models.MatchStatusOngoing)
	s.cache.SetWithTTL(key, live, LiveCacheTTL)
	return live, nil
}

// fetchRange 并发获取各联赛比赛, 单个联赛失败按空处理; 全部为空时退回通用接口
func (s *MatchService) fetchRange(ctx context.Context, opts footballdata.MatchListOptions) ([]models.Match, error) {
	key := GenerateCacheKey("matches", map[string]string{
		"from": opts.DateFrom.Format(dateLayout),
		"to":   opts.DateTo.Format(dateLayout),
	})
	if cached, ok := s.cache.Get(key); ok {
		return cached.([]models.Match), nil
	}

	perLeague := make([][]models.Match, len(footballdata.SupportedCompetitions))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(leagueFanOut)
	for i, code := range footballdata.SupportedCompetitions {
		i, code := i, code
		g.Go(func() error {
			matches, err := s.provider.GetCompetitionMatches(gctx, code, opts)
			if err != nil {
				logger.Warnf("[MatchService] %s matches unavailable: %v", code, err)
				return nil
			}
			perLeague[i] = matches
			return nil
		})
	}
	_ = g.Wait()

	var all []models.Match
	for _, matches := range perLeague {
		all = append(all, matches...)
	}

	if len(all) == 0 {
		logger.Printf("[MatchService] No competition matches, falling back to /matches")
		matches, err := s.provider.GetMatches(ctx, opts)
		if err != nil {
			return nil, err
		}
		all = matches
	}

	s.cache.SetWithTTL(key, all, MatchesCacheTTL)
	return all, nil
}

func filterMatches(matches []models.Match, league string, status models.MatchStatus) []models.Match {
	out := make([]models.Match, 0, len(matches))
	for _, m := range matches {
		if league != "" && !m.League.Matches(league) {
			continue
		}
		if status != "" && m.Status != status {
			continue
		}
		out = append(out, m)
	}
	return out
}

// sortMatches 默认最近的在前
func sortMatches(matches []models.Match, ascending bool) {
	sort.SliceStable(matches, func(i, j int) bool {
		if ascending {
			return matches[i].Date.Before(matches[j].Date)
		}
		return matches[i].Date.After(matches[j].Date)
	})
}
