package services

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/ashleypule/soccer-score/database"
	"github.com/ashleypule/soccer-score/pkg/common"
)

// SQLPredictionStore prediction_cache 表实现, 支持 Postgres 和 SQLite
type SQLPredictionStore struct {
	db      *sql.DB
	dialect database.Dialect
}

// NewSQLPredictionStore 创建 SQL 存储, 表需已通过 database.Migrate 创建
func NewSQLPredictionStore(db *sql.DB, dialect database.Dialect) *SQLPredictionStore {
	return &SQLPredictionStore{db: db, dialect: dialect}
}

func (s *SQLPredictionStore) q(query string) string {
	return database.Rebind(s.dialect, query)
}

func (s *SQLPredictionStore) Get(ctx context.Context, key string) (*CachedPrediction, bool, error) {
	var row database.PredictionRow
	err := s.db.QueryRowContext(ctx, s.q(`
		SELECT fixture_key, home_team, away_team, payload, stored_at
		FROM prediction_cache WHERE fixture_key = $1`), key).
		Scan(&row.FixtureKey, &row.HomeTeam, &row.AwayTeam, &row.Payload, &row.StoredAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("%w: query prediction %s: %v", common.ErrStorageFailed, key, err)
	}

	entry := CachedPrediction{
		HomeTeam: row.HomeTeam,
		AwayTeam: row.AwayTeam,
		StoredAt: time.UnixMilli(row.StoredAt),
	}
	if err := json.Unmarshal([]byte(row.Payload), &entry.Prediction); err != nil {
		return nil, false, fmt.Errorf("%w: decode prediction %s: %v", common.ErrStorageFailed, key, err)
	}
	return &entry, true, nil
}

func (s *SQLPredictionStore) Set(ctx context.Context, key string, entry CachedPrediction) error {
	payload, err := json.Marshal(entry.Prediction)
	if err != nil {
		return fmt.Errorf("encode prediction: %w", err)
	}

	row := database.PredictionRow{
		FixtureKey: key,
		FixtureID:  entry.Prediction.FixtureID,
		HomeTeam:   entry.HomeTeam,
		AwayTeam:   entry.AwayTeam,
		DataSource: entry.Prediction.DataSource,
		Payload:    string(payload),
		StoredAt:   entry.StoredAt.UnixMilli(),
	}

	_, err = s.db.ExecContext(ctx, s.q(`
		INSERT INTO prediction_cache (fixture_key, fixture_id, home_team, away_team, data_source, payload, stored_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (fixture_key) DO UPDATE SET
			fixture_id = EXCLUDED.fixture_id,
			home_team = EXCLUDED.home_team,
			away_team = EXCLUDED.away_team,
			data_source = EXCLUDED.data_source,
			payload = EXCLUDED.payload,
			stored_at = EXCLUDED.stored_at`),
		row.FixtureKey, row.FixtureID, row.HomeTeam, row.AwayTeam, row.DataSource, row.Payload, row.StoredAt)
	if err != nil {
		return fmt.Errorf("%w: upsert prediction %s: %v", common.ErrStorageFailed, key, err)
	}
	return nil
}

func (s *SQLPredictionStore) Delete(ctx context.Context, key string) error {
	if _, err := s.db.ExecContext(ctx, s.q(`DELETE FROM prediction_cache WHERE fixture_key = $1`), key); err != nil {
		return fmt.Errorf("%w: delete prediction %s: %v", common.ErrStorageFailed, key, err)
	}
	return nil
}

func (s *SQLPredictionStore) Clear(ctx context.Context) (int, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM prediction_cache`)
	if err != nil {
		return 0, fmt.Errorf("%w: clear predictions: %v", common.ErrStorageFailed, err)
	}
	n, _ := res.RowsAffected()
	return int(n), nil
}

func (s *SQLPredictionStore) Purge(ctx context.Context, before time.Time) (int, error) {
	res, err := s.db.ExecContext(ctx, s.q(`DELETE FROM prediction_cache WHERE stored_at < $1`), before.UnixMilli())
	if err != nil {
		return 0, fmt.Errorf("%w: purge predictions: %v", common.ErrStorageFailed, err)
	}
	n, _ := res.RowsAffected()
	return int(n), nil
}

func (s *SQLPredictionStore) Stats(ctx context.Context) (StoreStats, error) {
	var count int
	var oldest sql.NullInt64
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*), MIN(stored_at) FROM prediction_cache`).Scan(&count, &oldest)
	if err != nil {
		return StoreStats{}, fmt.Errorf("%w: prediction stats: %v", common.ErrStorageFailed, err)
	}

	stats := StoreStats{Count: count}
	if oldest.Valid {
		t := time.UnixMilli(oldest.Int64)
		stats.Oldest = &t
	}
	return stats, nil
}
