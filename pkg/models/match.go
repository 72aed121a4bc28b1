package models

import (
	"strconv"
	"strings"
	"time"
)

// MatchStatus 比赛状态
type MatchStatus string

const (
	MatchStatusScheduled MatchStatus = "Scheduled"
	MatchStatusOngoing   MatchStatus = "Ongoing"
	MatchStatusFinished  MatchStatus = "Finished"
)

// ParseMatchStatus 解析查询参数中的状态, 大小写不敏感
func ParseMatchStatus(s string) (MatchStatus, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "scheduled":
		return MatchStatusScheduled, true
	case "ongoing", "live":
		return MatchStatusOngoing, true
	case "finished":
		return MatchStatusFinished, true
	}
	return "", false
}

// Match 统一的比赛模型
type Match struct {
	ID       int         `json:"id"`
	League   League      `json:"league"`
	HomeTeam Team        `json:"home_team"`
	AwayTeam Team        `json:"away_team"`
	Score    Score       `json:"score"`
	Status   MatchStatus `json:"status"`
	Date     time.Time   `json:"date"`
	Round    string      `json:"round,omitempty"`
	Venue    string      `json:"venue,omitempty"`
}

// IsFinished 是否已完赛且比分完整
func (m Match) IsFinished() bool {
	return m.Status == MatchStatusFinished && m.Score.Known()
}

// Involves 比赛是否包含该球队
func (m Match) Involves(teamID int) bool {
	return m.HomeTeam.ID == teamID || m.AwayTeam.ID == teamID
}

// Team 队伍信息
type Team struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	ShortName string `json:"short_name,omitempty"`
	Logo      string `json:"logo,omitempty"`
}

// Score 比分信息, 未开赛时为空
type Score struct {
	Home *int `json:"home"`
	Away *int `json:"away"`
}

// Known 双方比分是否都已知
func (s Score) Known() bool {
	return s.Home != nil && s.Away != nil
}

// NewScore 构造已知比分
func NewScore(home, away int) Score {
	return Score{Home: &home, Away: &away}
}

// League 联赛信息
type League struct {
	ID      int    `json:"id"`
	Code    string `json:"code,omitempty"`
	Name    string `json:"name"`
	Country string `json:"country,omitempty"`
	Logo    string `json:"logo,omitempty"`
	Flag    string `json:"flag,omitempty"`
}

// Matches 匹配联赛 id、代码或名称
func (l League) Matches(filter string) bool {
	filter = strings.TrimSpace(filter)
	if filter == "" {
		return true
	}
	if strings.EqualFold(l.Code, filter) || strings.EqualFold(l.Name, filter) {
		return true
	}
	return l.ID != 0 && strconv.Itoa(l.ID) == filter
}
