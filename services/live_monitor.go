package services

import (
	"context"
	"time"

	"github.com/ashleypule/soccer-score/logger"
	"github.com/ashleypule/soccer-score/pkg/models"
)

// LiveSource 进行中比赛来源, 由 MatchService 实现
type LiveSource interface {
	Live(ctx context.Context) ([]models.Match, error)
}

// LiveMonitor 定时拉取进行中的比赛并发布 matches.live 事件
type LiveMonitor struct {
	source   LiveSource
	broker   MessageBroker
	interval time.Duration
}

// NewLiveMonitor 创建监控器
func NewLiveMonitor(source LiveSource, broker MessageBroker, interval time.Duration) *LiveMonitor {
	if interval <= 0 {
		interval = 30 * time.Second
	}
	return &LiveMonitor{source: source, broker: broker, interval: interval}
}

// Run 阻塞直到 ctx 取消
func (m *LiveMonitor) Run(ctx context.Context) {
	logger.Printf("[LiveMonitor] Started, polling every %s", m.interval)

	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	m.poll(ctx)
	for {
		select {
		case <-ctx.Done():
			logger.Println("[LiveMonitor] Stopped")
			return
		case <-ticker.C:
			m.poll(ctx)
		}
	}
}

func (m *LiveMonitor) poll(ctx context.Context) {
	matches, err := m.source.Live(ctx)
	if err != nil {
		if ctx.Err() == nil {
			logger.Warnf("[LiveMonitor] live matches unavailable: %v", err)
		}
		return
	}
	if len(matches) == 0 {
		return
	}

	for _, match := range matches {
		if err := PublishEvent(m.broker, TopicMatchesLive, match.ID, match); err != nil {
			logger.Warnf("[LiveMonitor] publish match %d: %v", match.ID, err)
		}
	}
	logger.Debugf("[LiveMonitor] Published %d live matches", len(matches))
}
