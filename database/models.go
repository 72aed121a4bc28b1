package database

// PredictionRow prediction_cache 表的一行
type PredictionRow struct {
	FixtureKey string `db:"fixture_key"`
	FixtureID  int    `db:"fixture_id"`
	HomeTeam   string `db:"home_team"`
	AwayTeam   string `db:"away_team"`
	DataSource string `db:"data_source"`
	Payload    string `db:"payload"`
	StoredAt   int64  `db:"stored_at"` // unix 毫秒
}
