package services

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/ashleypule/soccer-score/config"
	"github.com/ashleypule/soccer-score/database"
	"github.com/ashleypule/soccer-score/footballdata"
	"github.com/ashleypule/soccer-score/logger"
	"github.com/ashleypule/soccer-score/pkg/prediction"
	"github.com/ashleypule/soccer-score/pkg/stats"
	"github.com/ashleypule/soccer-score/scorebat"
)

// Stack 按配置组装好的全部服务
type Stack struct {
	Matches     *MatchService
	Stats       *StatsService
	Predictions *PredictionService
	Highlights  *HighlightService
	Broker      MessageBroker
	LiveMonitor *LiveMonitor
	Cleanup     *DataCleanupService

	cache *ResponseCache
	db    *sql.DB
}

// Bootstrap 创建客户端、缓存、预测存储和 broker.
// DATABASE_URL 为空时使用内存存储, AMQP_URL 为空时使用内存 broker
func Bootstrap(cfg *config.Config) (*Stack, error) {
	st := &Stack{cache: NewResponseCache(5 * time.Minute)}

	fd := footballdata.NewClientWithConfig(footballdata.Config{
		BaseURL:  cfg.FootballDataBaseURL,
		APIToken: cfg.FootballDataAPIKey,
		Timeout:  cfg.HTTPTimeout,
	})
	if !fd.HasToken() {
		logger.Warnf("FOOTBALL_DATA_API_KEY not set, predictions will use mock data")
	}
	sb := scorebat.NewClient(cfg.ScoreBatURL, cfg.ScoreBatToken, cfg.HTTPTimeout)

	var store PredictionStore = NewMemoryPredictionStore()
	if cfg.DatabaseURL != "" {
		db, dialect, err := database.Connect(cfg.DatabaseURL)
		if err != nil {
			st.Close()
			return nil, fmt.Errorf("failed to connect to database: %w", err)
		}
		st.db = db
		if err := database.Migrate(db); err != nil {
			st.Close()
			return nil, fmt.Errorf("failed to migrate database: %w", err)
		}
		store = NewSQLPredictionStore(db, dialect)
		logger.Printf("Prediction cache backed by %s", dialect)
	}

	if cfg.AMQPURL != "" {
		broker, err := NewAMQPBroker(cfg.AMQPURL, cfg.AMQPExchange)
		if err != nil {
			st.Close()
			return nil, err
		}
		st.Broker = broker
	} else {
		st.Broker = NewInMemoryBroker()
	}

	engine := prediction.NewEngine(cfg.EngineConfig())

	st.Matches = NewMatchService(fd, st.cache)
	st.Stats = NewStatsService(fd, st.cache, stats.NewRandomEstimator(0), cfg.StatsLookbackDays)
	predictionCache := NewPredictionCache(store, cfg.PredictionCacheTTL)
	st.Predictions = NewPredictionService(st.Stats, engine, predictionCache, st.Broker)
	st.Highlights = NewHighlightService(sb, st.cache)
	st.LiveMonitor = NewLiveMonitor(st.Matches, st.Broker, cfg.LivePollInterval)
	st.Cleanup = NewDataCleanupService(predictionCache, DefaultCleanupInterval)

	return st, nil
}

// Close 释放 broker、数据库连接和缓存协程
func (st *Stack) Close() {
	if st.Broker != nil {
		if err := st.Broker.Close(); err != nil {
			logger.Warnf("close broker: %v", err)
		}
	}
	if st.db != nil {
		st.db.Close()
	}
	st.cache.Close()
}
