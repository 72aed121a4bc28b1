package services

import (
	"fmt"
	"time"

	"github.com/ashleypule/soccer-score/logger"
	"github.com/streadway/amqp"
)

// ReconnectConfig 重连配置
type ReconnectConfig struct {
	MaxRetries    int           // 最大重试次数 (0 = 只尝试一次)
	InitialDelay  time.Duration // 初始延迟
	MaxDelay      time.Duration // 最大延迟
	BackoffFactor float64       // 退避因子
}

// DefaultReconnectConfig 默认重连配置
func DefaultReconnectConfig() *ReconnectConfig {
	return &ReconnectConfig{
		MaxRetries:    5,
		InitialDelay:  1 * time.Second,
		MaxDelay:      30 * time.Second,
		BackoffFactor: 2.0, // 指数退避
	}
}

// nextDelay 计算下一次重试的延迟
func (rc *ReconnectConfig) nextDelay(current time.Duration) time.Duration {
	next := time.Duration(float64(current) * rc.BackoffFactor)
	if next > rc.MaxDelay {
		next = rc.MaxDelay
	}
	return next
}

// dialWithRetry 按指数退避重试建立 AMQP 连接
func dialWithRetry(url string, cfg amqp.Config, rc *ReconnectConfig) (*amqp.Connection, error) {
	return retry(rc, time.Sleep, func() (*amqp.Connection, error) {
		return amqp.DialConfig(url, cfg)
	})
}

func retry[T any](rc *ReconnectConfig, sleep func(time.Duration), fn func() (T, error)) (T, error) {
	delay := rc.InitialDelay
	var lastErr error
	for attempt := 0; attempt <= rc.MaxRetries; attempt++ {
		v, err := fn()
		if err == nil {
			if attempt > 0 {
				logger.Printf("[AMQP] Connected after %d retries", attempt)
			}
			return v, nil
		}
		lastErr = err

		if attempt == rc.MaxRetries {
			break
		}
		logger.Warnf("[AMQP] Connection attempt %d failed: %v, retrying in %s", attempt+1, err, delay)
		sleep(delay)
		delay = rc.nextDelay(delay)
	}

	var zero T
	return zero, fmt.Errorf("giving up after %d attempts: %w", rc.MaxRetries+1, lastErr)
}
