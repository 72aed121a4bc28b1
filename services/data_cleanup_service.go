package services

import (
	"context"
	"time"

	"github.com/ashleypule/soccer-score/logger"
)

// DefaultCleanupInterval 过期预测清理间隔
const DefaultCleanupInterval = 15 * time.Minute

// DataCleanupService 定期删除过期的预测缓存.
// 读路径只删除被访问到的过期条目, SQL 存储需要这里兜底
type DataCleanupService struct {
	cache    *PredictionCache
	interval time.Duration
}

// CleanupResult 清理结果
type CleanupResult struct {
	DeletedRows int
	Duration    time.Duration
	Error       error
}

// NewDataCleanupService 创建数据清理服务
func NewDataCleanupService(cache *PredictionCache, interval time.Duration) *DataCleanupService {
	if interval <= 0 {
		interval = DefaultCleanupInterval
	}
	return &DataCleanupService{
		cache:    cache,
		interval: interval,
	}
}

// ExecuteCleanup 执行一次清理
func (s *DataCleanupService) ExecuteCleanup(ctx context.Context) CleanupResult {
	start := time.Now()
	n, err := s.cache.Purge(ctx)
	return CleanupResult{
		DeletedRows: n,
		Duration:    time.Since(start),
		Error:       err,
	}
}

// Run 阻塞直到 ctx 取消
func (s *DataCleanupService) Run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			result := s.ExecuteCleanup(ctx)
			if result.Error != nil {
				logger.Errorf("[Cleanup] purge expired predictions: %v", result.Error)
				continue
			}
			if result.DeletedRows > 0 {
				logger.Printf("[Cleanup] Removed %d expired predictions in %s", result.DeletedRows, result.Duration)
			}
		}
	}
}
