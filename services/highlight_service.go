package services

import (
	"context"
	"time"

	"github.com/ashleypule/soccer-score/logger"
	"github.com/ashleypule/soccer-score/pkg/models"
	"github.com/ashleypule/soccer-score/scorebat"
)

const HighlightsCacheTTL = time.Hour

// HighlightMatch 单场集锦查询结果
type HighlightMatch struct {
	Found     bool              `json:"found"`
	Highlight *models.Highlight `json:"highlight,omitempty"`
	EmbedURL  string            `json:"embed_url,omitempty"`
}

// HighlightService 集锦列表和按比赛查找
type HighlightService struct {
	provider HighlightProvider
	cache    *ResponseCache
}

// NewHighlightService 创建集锦服务
func NewHighlightService(provider HighlightProvider, cache *ResponseCache) *HighlightService {
	return &HighlightService{provider: provider, cache: cache}
}

// Highlights 集锦列表, 上游失败时返回空列表
func (s *HighlightService) Highlights(ctx context.Context) []models.Highlight {
	const key = "highlights"
	if cached, ok := s.cache.Get(key); ok {
		return cached.([]models.Highlight)
	}

	highlights, err := s.provider.GetHighlights(ctx)
	if err != nil {
		logger.Warnf("[HighlightService] feed unavailable: %v", err)
		return []models.Highlight{}
	}

	s.cache.SetWithTTL(key, highlights, HighlightsCacheTTL)
	return highlights
}

// FindForMatch 按主客队名查找集锦
func (s *HighlightService) FindForMatch(ctx context.Context, homeTeam, awayTeam string) HighlightMatch {
	h := scorebat.FindForMatch(s.Highlights(ctx), homeTeam, awayTeam)
	if h == nil {
		return HighlightMatch{}
	}
	return HighlightMatch{
		Found:     true,
		Highlight: h,
		EmbedURL:  scorebat.EmbedURL(h),
	}
}
