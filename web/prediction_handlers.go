package web

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/mux"

	"github.com/ashleypule/soccer-score/services"
)

// handleGetPrediction 单场预测
// GET /api/predictions/{fixtureId}?homeTeam=Arsenal&awayTeam=Chelsea&homeTeamId=57&awayTeamId=61
func (s *Server) handleGetPrediction(w http.ResponseWriter, r *http.Request) {
	fixtureID, err := strconv.Atoi(mux.Vars(r)["fixtureId"])
	if err != nil || fixtureID <= 0 {
		badRequest(w, "invalid fixture id")
		return
	}

	query := r.URL.Query()
	req := services.PredictionRequest{
		FixtureID:  fixtureID,
		HomeTeam:   strings.TrimSpace(query.Get("homeTeam")),
		AwayTeam:   strings.TrimSpace(query.Get("awayTeam")),
		HomeTeamID: queryInt(r, "homeTeamId", 0),
		AwayTeamID: queryInt(r, "awayTeamId", 0),
	}
	if req.HomeTeam == "" || req.AwayTeam == "" {
		badRequest(w, "homeTeam and awayTeam are required")
		return
	}

	prediction, err := s.svc.Predictions.Generate(r.Context(), req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, prediction)
}

// handleGetPredictionCache 预测缓存统计
// GET /api/predictions/cache
func (s *Server) handleGetPredictionCache(w http.ResponseWriter, r *http.Request) {
	stats, err := s.svc.Predictions.CacheStats(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	resp := map[string]interface{}{
		"success":     true,
		"count":       stats.Count,
		"ttl_seconds": stats.TTLSeconds,
	}
	if stats.Oldest != nil {
		resp["oldest"] = stats.Oldest.UnixMilli()
	}
	writeJSON(w, http.StatusOK, resp)
}

// handleClearPredictionCache 清空预测缓存
// DELETE /api/predictions/cache
func (s *Server) handleClearPredictionCache(w http.ResponseWriter, r *http.Request) {
	n, err := s.svc.Predictions.ClearCache(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"cleared": n,
	})
}
