package models

import "time"

// Outcome 胜负预测
type Outcome string

const (
	OutcomeHome Outcome = "Home"
	OutcomeAway Outcome = "Away"
	OutcomeDraw Outcome = "Draw"
)

const (
	BTTSYes    = "Yes"
	BTTSNo     = "No"
	Over2dot5  = "Over 2.5"
	Under2dot5 = "Under 2.5"
)

// BookingsLevel 红黄牌等级
type BookingsLevel string

const (
	BookingsLow    BookingsLevel = "Low"
	BookingsMedium BookingsLevel = "Medium"
	BookingsHigh   BookingsLevel = "High"
)

// MatchPrediction 一场比赛的完整预测
type MatchPrediction struct {
	FixtureID int `json:"fixture_id,omitempty"`

	Winner            WinnerPrediction    `json:"winner"`
	Scoreline         ScorelinePrediction `json:"scoreline"`
	BTTS              BTTSPrediction      `json:"btts"`
	OverUnder         OverUnderPrediction `json:"over_under"`
	Corners           CornersPrediction   `json:"corners"`
	Bookings          BookingsPrediction  `json:"bookings"`
	Combo             ComboPrediction     `json:"combo"`
	OverallConfidence int                 `json:"overall_confidence"`

	TeamStats *TeamStatsDisplay `json:"team_stats,omitempty"`
	H2H       *H2HDisplay       `json:"h2h_data,omitempty"`

	// DataSource "live" 或 "mock"
	DataSource  string    `json:"data_source,omitempty"`
	GeneratedAt time.Time `json:"generated_at,omitempty"`
}

// WinnerPrediction 胜平负
type WinnerPrediction struct {
	Prediction Outcome `json:"prediction"`
	Confidence int     `json:"confidence"`
	Reasoning  string  `json:"reasoning"`
}

// ScorelinePrediction 比分
type ScorelinePrediction struct {
	Home       int `json:"home"`
	Away       int `json:"away"`
	Confidence int `json:"confidence"`
}

// Total 总进球
func (s ScorelinePrediction) Total() int {
	return s.Home + s.Away
}

// BTTSPrediction 双方是否都进球
type BTTSPrediction struct {
	Prediction string `json:"prediction"`
	Confidence int    `json:"confidence"`
	Reasoning  string `json:"reasoning"`
}

// OverUnderPrediction 大小球 2.5
type OverUnderPrediction struct {
	Prediction    string  `json:"prediction"`
	Confidence    int     `json:"confidence"`
	Reasoning     string  `json:"reasoning"`
	ExpectedGoals float64 `json:"expected_goals"`
}

// CornersPrediction 角球区间
type CornersPrediction struct {
	Prediction string `json:"prediction"`
	Min        int    `json:"min"`
	Max        int    `json:"max"`
	Confidence int    `json:"confidence"`
}

// BookingsPrediction 红黄牌
type BookingsPrediction struct {
	Level         BookingsLevel `json:"level"`
	ExpectedCards float64       `json:"expected_cards"`
	Confidence    int           `json:"confidence"`
}

// ComboPrediction 组合预测
type ComboPrediction struct {
	Prediction string `json:"prediction"`
	Confidence int    `json:"confidence"`
}

// TeamStatsDisplay 预测附带的球队数据展示
type TeamStatsDisplay struct {
	Home TeamDisplay `json:"home"`
	Away TeamDisplay `json:"away"`
}

// TeamDisplay 单队展示字段, VenueRecord 对主队是主场战绩, 对客队是客场战绩
type TeamDisplay struct {
	Name           string  `json:"name"`
	MatchesPlayed  int     `json:"matches_played"`
	Record         string  `json:"record"`
	VenueRecord    string  `json:"venue_record"`
	VenueWinRate   float64 `json:"venue_win_rate"`
	Goals          string  `json:"goals"`
	AvgGoals       string  `json:"avg_goals"`
	VenueAvgGoals  string  `json:"venue_avg_goals"`
	RecentForm     string  `json:"recent_form"`
	Last3          string  `json:"last3"`
	CleanSheets    string  `json:"clean_sheets"`
	GoalDifference string  `json:"goal_difference"`
}

// H2HDisplay 交锋展示
type H2HDisplay struct {
	MatchesPlayed  int     `json:"matches_played"`
	Distribution   string  `json:"distribution"`
	AvgGoals       float64 `json:"avg_goals"`
	BTTSPercentage float64 `json:"btts_percentage"`
}
