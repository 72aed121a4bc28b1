package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/ashleypule/soccer-score/pkg/models"
)

// CachedPrediction 存储中的一条预测
type CachedPrediction struct {
	Prediction models.MatchPrediction
	HomeTeam   string
	AwayTeam   string
	StoredAt   time.Time
}

// StoreStats 存储统计
type StoreStats struct {
	Count  int        `json:"count"`
	Oldest *time.Time `json:"oldest,omitempty"`
}

// PredictionStore 预测的键值存储, 不关心过期策略
type PredictionStore interface {
	Get(ctx context.Context, key string) (*CachedPrediction, bool, error)
	Set(ctx context.Context, key string, entry CachedPrediction) error
	Delete(ctx context.Context, key string) error
	Clear(ctx context.Context) (int, error)
	Stats(ctx context.Context) (StoreStats, error)
	// Purge 删除 before 之前写入的条目
	Purge(ctx context.Context, before time.Time) (int, error)
}

// MemoryPredictionStore 内存实现
type MemoryPredictionStore struct {
	entries map[string]CachedPrediction
	mu      sync.RWMutex
}

// NewMemoryPredictionStore 创建内存存储
func NewMemoryPredictionStore() *MemoryPredictionStore {
	return &MemoryPredictionStore{entries: make(map[string]CachedPrediction)}
}

func (s *MemoryPredictionStore) Get(_ context.Context, key string) (*CachedPrediction, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entry, ok := s.entries[key]
	if !ok {
		return nil, false, nil
	}
	return &entry, true, nil
}

func (s *MemoryPredictionStore) Set(_ context.Context, key string, entry CachedPrediction) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries[key] = entry
	return nil
}

func (s *MemoryPredictionStore) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.entries, key)
	return nil
}

func (s *MemoryPredictionStore) Clear(_ context.Context) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := len(s.entries)
	s.entries = make(map[string]CachedPrediction)
	return n, nil
}

func (s *MemoryPredictionStore) Purge(_ context.Context, before time.Time) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := 0
	for key, e := range s.entries {
		if e.StoredAt.Before(before) {
			delete(s.entries, key)
			n++
		}
	}
	return n, nil
}

func (s *MemoryPredictionStore) Stats(_ context.Context) (StoreStats, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := StoreStats{Count: len(s.entries)}
	for _, e := range s.entries {
		if stats.Oldest == nil || e.StoredAt.Before(*stats.Oldest) {
			t := e.StoredAt
			stats.Oldest = &t
		}
	}
	return stats, nil
}

// PredictionCache 在存储之上施加固定过期时间
type PredictionCache struct {
	store PredictionStore
	ttl   time.Duration
	now   func() time.Time
}

// CacheStats 预测缓存统计
type CacheStats struct {
	StoreStats
	TTLSeconds int64 `json:"ttl_seconds"`
}

// NewPredictionCache 创建预测缓存
func NewPredictionCache(store PredictionStore, ttl time.Duration) *PredictionCache {
	return &PredictionCache{store: store, ttl: ttl, now: time.Now}
}

// FixtureKey 预测缓存键
func FixtureKey(fixtureID int) string {
	return fmt.Sprintf("fixture:%d", fixtureID)
}

// Get 未命中或已过期时返回 false, 过期条目会被删除
func (c *PredictionCache) Get(ctx context.Context, key string) (*models.MatchPrediction, bool, error) {
	entry, ok, err := c.store.Get(ctx, key)
	if err != nil || !ok {
		return nil, false, err
	}

	if c.now().Sub(entry.StoredAt) >= c.ttl {
		if err := c.store.Delete(ctx, key); err != nil {
			return nil, false, err
		}
		return nil, false, nil
	}

	p := entry.Prediction
	return &p, true, nil
}

// Put 整体写入一条预测
func (c *PredictionCache) Put(ctx context.Context, key string, p models.MatchPrediction, homeTeam, awayTeam string) error {
	return c.store.Set(ctx, key, CachedPrediction{
		Prediction: p,
		HomeTeam:   homeTeam,
		AwayTeam:   awayTeam,
		StoredAt:   c.now(),
	})
}

// Clear 清空缓存, 返回删除条数
func (c *PredictionCache) Clear(ctx context.Context) (int, error) {
	return c.store.Clear(ctx)
}

// Purge 删除所有已过期条目
func (c *PredictionCache) Purge(ctx context.Context) (int, error) {
	return c.store.Purge(ctx, c.now().Add(-c.ttl))
}

// Stats 缓存统计
func (c *PredictionCache) Stats(ctx context.Context) (CacheStats, error) {
	s, err := c.store.Stats(ctx)
	if err != nil {
		return CacheStats{}, err
	}
	return CacheStats{StoreStats: s, TTLSeconds: int64(c.ttl / time.Second)}, nil
}
