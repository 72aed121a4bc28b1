package web

import (
	"net/http"
)

// handleGetTeamStats 球队统计
// GET /api/team-stats?teamId=57&teamName=Arsenal
func (s *Server) handleGetTeamStats(w http.ResponseWriter, r *http.Request) {
	teamID := queryInt(r, "teamId", 0)
	if teamID <= 0 {
		badRequest(w, "teamId is required")
		return
	}

	stats, err := s.svc.Stats.TeamStats(r.Context(), teamID, r.URL.Query().Get("teamName"))
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"stats":   stats,
	})
}

// handleGetHeadToHead 交锋记录
// GET /api/head-to-head?homeTeamId=57&awayTeamId=61
func (s *Server) handleGetHeadToHead(w http.ResponseWriter, r *http.Request) {
	homeID := queryInt(r, "homeTeamId", 0)
	awayID := queryInt(r, "awayTeamId", 0)
	if homeID <= 0 || awayID <= 0 {
		badRequest(w, "homeTeamId and awayTeamId are required")
		return
	}

	h2h, err := s.svc.Stats.HeadToHead(r.Context(), homeID, awayID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"h2h":     h2h,
	})
}
