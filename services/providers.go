package services

import (
	"context"

	"github.com/ashleypule/soccer-score/footballdata"
	"github.com/ashleypule/soccer-score/pkg/models"
)

// MatchProvider 比赛数据源, 由 footballdata.Client 实现
type MatchProvider interface {
	GetSupportedLeagues(ctx context.Context) ([]models.League, error)
	GetMatches(ctx context.Context, opts footballdata.MatchListOptions) ([]models.Match, error)
	GetCompetitionMatches(ctx context.Context, code string, opts footballdata.MatchListOptions) ([]models.Match, error)
	GetTeamMatches(ctx context.Context, teamID int, opts footballdata.MatchListOptions) ([]models.Match, error)
}

// HighlightProvider 集锦数据源, 由 scorebat.Client 实现
type HighlightProvider interface {
	GetHighlights(ctx context.Context) ([]models.Highlight, error)
}

var (
	_ MatchProvider   = (*footballdata.Client)(nil)
	_ MessageBroker   = (*InMemoryBroker)(nil)
	_ MessageBroker   = (*AMQPBroker)(nil)
	_ PredictionStore = (*MemoryPredictionStore)(nil)
	_ PredictionStore = (*SQLPredictionStore)(nil)
)
