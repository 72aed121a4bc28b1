package services

import (
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/segmentio/fasthash/jody"
)

// ResponseCache 上游响应缓存, 每个条目可有独立 TTL
type ResponseCache struct {
	cache map[string]*CacheEntry
	mu    sync.RWMutex
	ttl   time.Duration
	now   func() time.Time

	stop     chan struct{}
	stopOnce sync.Once
}

// CacheEntry 缓存条目
type CacheEntry struct {
	Data      interface{}
	ExpiresAt time.Time
}

// NewResponseCache 创建缓存并启动清理协程
func NewResponseCache(ttl time.Duration) *ResponseCache {
	cache := &ResponseCache{
		cache: make(map[string]*CacheEntry),
		ttl:   ttl,
		now:   time.Now,
		stop:  make(chan struct{}),
	}

	go cache.cleanupLoop()

	return cache
}

// Get 获取缓存
func (c *ResponseCache) Get(key string) (interface{}, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	entry, exists := c.cache[key]
	if !exists {
		return nil, false
	}

	if c.now().After(entry.ExpiresAt) {
		return nil, false
	}

	return entry.Data, true
}

// Set 使用默认 TTL 设置缓存
func (c *ResponseCache) Set(key string, data interface{}) {
	c.SetWithTTL(key, data, c.ttl)
}

// SetWithTTL 设置缓存
func (c *ResponseCache) SetWithTTL(key string, data interface{}, ttl time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.cache[key] = &CacheEntry{
		Data:      data,
		ExpiresAt: c.now().Add(ttl),
	}
}

// Delete 删除缓存
func (c *ResponseCache) Delete(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	delete(c.cache, key)
}

// Clear 清空缓存
func (c *ResponseCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.cache = make(map[string]*CacheEntry)
}

// Size 获取缓存大小 (含未清理的过期条目)
func (c *ResponseCache) Size() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.cache)
}

// Close 停止清理协程
func (c *ResponseCache) Close() {
	c.stopOnce.Do(func() { close(c.stop) })
}

// cleanupLoop 定期清理过期缓存
func (c *ResponseCache) cleanupLoop() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			c.cleanup()
		case <-c.stop:
			return
		}
	}
}

// cleanup 清理过期缓存
func (c *ResponseCache) cleanup() {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	for key, entry := range c.cache {
		if now.After(entry.ExpiresAt) {
			delete(c.cache, key)
		}
	}
}

// GenerateCacheKey 生成缓存键
func GenerateCacheKey(prefix string, params interface{}) string {
	jsonBytes, err := json.Marshal(params)
	if err != nil {
		// 序列化失败时使用时间戳作为键(等于不缓存)
		return fmt.Sprintf("%s_%d", prefix, time.Now().UnixNano())
	}

	return fmt.Sprintf("%s_%016x", prefix, jody.HashString64(string(jsonBytes)))
}
