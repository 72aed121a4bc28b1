package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/ashleypule/soccer-score/pkg/prediction"
)

type Config struct {
	// football-data.org 配置
	FootballDataAPIKey  string
	FootballDataBaseURL string
	HTTPTimeout         time.Duration

	// ScoreBat 集锦配置
	ScoreBatURL   string
	ScoreBatToken string

	// 数据库配置 (为空时预测缓存使用内存存储)
	DatabaseURL string

	// 消息队列配置 (为空时使用内存 broker)
	AMQPURL      string
	AMQPExchange string

	// 服务器配置
	Port string

	// 其他配置
	Environment string
	LogLevel    string

	// 预测配置
	PredictionCacheTTL time.Duration
	StatsLookbackDays  int
	LivePollInterval   time.Duration
	DrawThreshold      float64
	HomeAdvantage      float64
}

func Load() *Config {
	defaults := prediction.DefaultConfig()

	return &Config{
		FootballDataAPIKey:  getEnv("FOOTBALL_DATA_API_KEY", ""),
		FootballDataBaseURL: getEnv("FOOTBALL_DATA_BASE_URL", "https://api.football-data.org/v4"),
		HTTPTimeout:         getEnvDuration("HTTP_TIMEOUT", 30*time.Second),

		ScoreBatURL:   getEnv("SCOREBAT_API_URL", "https://www.scorebat.com/video-api/v3/"),
		ScoreBatToken: getEnv("SCOREBAT_TOKEN", ""),

		DatabaseURL: getEnv("DATABASE_URL", ""),

		AMQPURL:      getEnv("AMQP_URL", ""),
		AMQPExchange: getEnv("AMQP_EXCHANGE", "soccer-score"),

		Port: getEnv("PORT", "8080"),

		Environment: getEnv("ENVIRONMENT", "development"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),

		PredictionCacheTTL: getEnvDuration("PREDICTION_CACHE_TTL", time.Hour),
		StatsLookbackDays:  getEnvInt("STATS_LOOKBACK_DAYS", 90),
		LivePollInterval:   getEnvDuration("LIVE_POLL_INTERVAL", 30*time.Second),
		DrawThreshold:      getEnvFloat("PREDICTION_DRAW_THRESHOLD", defaults.DrawThreshold),
		HomeAdvantage:      getEnvFloat("PREDICTION_HOME_ADVANTAGE", defaults.HomeAdvantage),
	}
}

// EngineConfig 返回应用了环境变量覆盖的引擎常量
func (c *Config) EngineConfig() prediction.Config {
	cfg := prediction.DefaultConfig()
	cfg.DrawThreshold = c.DrawThreshold
	cfg.HomeAdvantage = c.HomeAdvantage
	return cfg
}

// MaskedAPIKey 返回 key 的前 8 位预览
func (c *Config) MaskedAPIKey() string {
	key := c.FootballDataAPIKey
	if key == "" {
		return ""
	}
	if len(key) <= 8 {
		return strings.Repeat("*", len(key))
	}
	return key[:8] + "..."
}

// Validate 检查配置合法性
func (c *Config) Validate() error {
	if c.StatsLookbackDays <= 0 {
		return fmt.Errorf("STATS_LOOKBACK_DAYS must be positive, got %d", c.StatsLookbackDays)
	}
	if c.PredictionCacheTTL <= 0 {
		return fmt.Errorf("PREDICTION_CACHE_TTL must be positive, got %s", c.PredictionCacheTTL)
	}
	if c.DrawThreshold < 0 {
		return fmt.Errorf("PREDICTION_DRAW_THRESHOLD must not be negative, got %v", c.DrawThreshold)
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	var result int
	fmt.Sscanf(value, "%d", &result)
	if result == 0 {
		return defaultValue
	}
	return result
}

func getEnvFloat(key string, defaultValue float64) float64 {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	result, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return defaultValue
	}
	return result
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	if d, err := time.ParseDuration(value); err == nil && d > 0 {
		return d
	}
	// 兼容纯数字秒数
	if secs, err := strconv.Atoi(value); err == nil && secs > 0 {
		return time.Duration(secs) * time.Second
	}
	return defaultValue
}
