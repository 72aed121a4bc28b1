package database

import (
	"database/sql"
	"fmt"
	"regexp"
	"strings"

	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"
)

// Dialect SQL 方言
type Dialect string

const (
	DialectPostgres Dialect = "postgres"
	DialectSQLite   Dialect = "sqlite"
)

// DriverFor 根据 DATABASE_URL 选择驱动
//
//	postgres://... / postgresql://...  -> lib/pq
//	sqlite://path, sqlite::memory:, file:..., *.db -> modernc sqlite
func DriverFor(databaseURL string) (Dialect, string, error) {
	switch {
	case strings.HasPrefix(databaseURL, "postgres://"), strings.HasPrefix(databaseURL, "postgresql://"):
		return DialectPostgres, databaseURL, nil
	case strings.HasPrefix(databaseURL, "sqlite://"):
		return DialectSQLite, strings.TrimPrefix(databaseURL, "sqlite://"), nil
	case strings.HasPrefix(databaseURL, "sqlite:"):
		return DialectSQLite, strings.TrimPrefix(databaseURL, "sqlite:"), nil
	case strings.HasPrefix(databaseURL, "file:"), databaseURL == ":memory:",
		strings.HasSuffix(databaseURL, ".db"), strings.HasSuffix(databaseURL, ".sqlite"):
		return DialectSQLite, databaseURL, nil
	}
	return "", "", fmt.Errorf("unsupported database url %q", databaseURL)
}

// Connect 连接到数据库
func Connect(databaseURL string) (*sql.DB, Dialect, error) {
	dialect, dsn, err := DriverFor(databaseURL)
	if err != nil {
		return nil, "", err
	}

	db, err := sql.Open(string(dialect), dsn)
	if err != nil {
		return nil, "", fmt.Errorf("failed to open database: %w", err)
	}

	// 测试连接
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, "", fmt.Errorf("failed to ping database: %w", err)
	}

	// 设置连接池
	if dialect == DialectSQLite {
		// 内存库每个连接都是独立的数据库
		db.SetMaxOpenConns(1)
	} else {
		db.SetMaxOpenConns(25)
		db.SetMaxIdleConns(5)
	}

	return db, dialect, nil
}

// Migrate 运行数据库迁移, 语句同时兼容 Postgres 和 SQLite
func Migrate(db *sql.DB) error {
	migrations := []string{
		// 预测缓存表
		`CREATE TABLE IF NOT EXISTS prediction_cache (
			fixture_key VARCHAR(64) PRIMARY KEY,
			fixture_id INTEGER NOT NULL DEFAULT 0,
			home_team VARCHAR(255) NOT NULL DEFAULT '',
			away_team VARCHAR(255) NOT NULL DEFAULT '',
			data_source VARCHAR(16) NOT NULL DEFAULT '',
			payload TEXT NOT NULL,
			stored_at BIGINT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_prediction_cache_stored_at ON prediction_cache(stored_at)`,
	}

	for i, migration := range migrations {
		if _, err := db.Exec(migration); err != nil {
			return fmt.Errorf("migration %d failed: %w", i, err)
		}
	}

	return nil
}

var placeholder = regexp.MustCompile(`\$\d+`)

// Rebind 把 $N 占位符转换为目标方言; SQLite 使用 ?, 参数需按顺序出现
func Rebind(dialect Dialect, query string) string {
	if dialect != DialectSQLite {
		return query
	}
	return placeholder.ReplaceAllString(query, "?")
}
