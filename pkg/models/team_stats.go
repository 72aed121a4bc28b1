package models

// TeamStats 球队在统计窗口内的标准化数据
//
// 可选字段使用指针: nil 表示上游没有提供, 预测引擎会使用中性默认值。
type TeamStats struct {
	TeamID   int    `json:"team_id"`
	TeamName string `json:"team_name"`

	MatchesPlayed    int     `json:"matches_played"`
	Wins             int     `json:"wins"`
	Draws            int     `json:"draws"`
	Losses           int     `json:"losses"`
	GoalsScored      int     `json:"goals_scored"`
	GoalsConceded    int     `json:"goals_conceded"`
	AvgGoalsScored   float64 `json:"avg_goals_scored"`
	AvgGoalsConceded float64 `json:"avg_goals_conceded"`
	CleanSheets      int     `json:"clean_sheets"`
	FailedToScore    int     `json:"failed_to_score"`

	Home *VenueStats `json:"home,omitempty"`
	Away *VenueStats `json:"away,omitempty"`

	// Recent 最近 5 场, Last3 最近 3 场
	Recent *FormWindow `json:"recent,omitempty"`
	Last3  *FormWindow `json:"last3,omitempty"`

	CleanSheetRate     *float64 `json:"clean_sheet_rate,omitempty"`
	ScoringConsistency *float64 `json:"scoring_consistency,omitempty"`
	GoalDifference     int      `json:"goal_difference"`

	AvgCornersFor     float64 `json:"avg_corners_for"`
	AvgCornersAgainst float64 `json:"avg_corners_against"`
	AvgYellowCards    float64 `json:"avg_yellow_cards"`
	AvgRedCards       float64 `json:"avg_red_cards"`

	// DisciplineEstimated 角球和红黄牌为估算值 (上游无此数据)
	DisciplineEstimated bool `json:"discipline_estimated"`
}

// VenueStats 主场或客场拆分
type VenueStats struct {
	MatchesPlayed    int     `json:"matches_played"`
	Wins             int     `json:"wins"`
	Draws            int     `json:"draws"`
	Losses           int     `json:"losses"`
	GoalsScored      int     `json:"goals_scored"`
	GoalsConceded    int     `json:"goals_conceded"`
	WinRate          float64 `json:"win_rate"`
	AvgGoalsScored   float64 `json:"avg_goals_scored"`
	AvgGoalsConceded float64 `json:"avg_goals_conceded"`
}

// FormWindow 最近 N 场的汇总
type FormWindow struct {
	Matches       int     `json:"matches"`
	Wins          int     `json:"wins"`
	Draws         int     `json:"draws"`
	GoalsScored   int     `json:"goals_scored"`
	GoalsConceded int     `json:"goals_conceded"`
	Form          float64 `json:"form"`
}

// Venue 返回主场 (isHome) 或客场拆分, 可能为 nil
func (s *TeamStats) Venue(isHome bool) *VenueStats {
	if isHome {
		return s.Home
	}
	return s.Away
}

// HeadToHeadSummary 两队交锋汇总, 计数以即将进行的比赛主客为准
type HeadToHeadSummary struct {
	MatchesPlayed  int     `json:"matches_played"`
	HomeWins       int     `json:"home_wins"`
	AwayWins       int     `json:"away_wins"`
	Draws          int     `json:"draws"`
	AvgGoals       float64 `json:"avg_goals"`
	BTTSPercentage float64 `json:"btts_percentage"`
	RecentMatches  []Match `json:"recent_matches,omitempty"`
}

// Empty 是否没有交锋记录
func (h *HeadToHeadSummary) Empty() bool {
	return h == nil || h.MatchesPlayed == 0
}

// Float 返回指向 v 的指针
func Float(v float64) *float64 {
	return &v
}
