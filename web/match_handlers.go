package web

import (
	"net/http"
	"strings"

	"github.com/ashleypule/soccer-score/pkg/models"
	"github.com/ashleypule/soccer-score/services"
)

const maxDaysRange = 30

// handleGetLeagues 支持的联赛
// GET /api/leagues
func (s *Server) handleGetLeagues(w http.ResponseWriter, r *http.Request) {
	leagues, err := s.svc.Matches.Leagues(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"count":   len(leagues),
		"leagues": leagues,
	})
}

// handleGetMatches 比赛列表
// GET /api/matches?daysBack=7&daysForward=0&league=PL&status=finished&sort=desc
func (s *Server) handleGetMatches(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	q := services.MatchQuery{
		DaysBack:    clampDays(queryInt(r, "daysBack", 7)),
		DaysForward: clampDays(queryInt(r, "daysForward", 0)),
		League:      query.Get("league"),
	}

	if status := query.Get("status"); status != "" && !strings.EqualFold(status, "all") {
		parsed, ok := models.ParseMatchStatus(status)
		if !ok {
			badRequest(w, "status must be one of scheduled, ongoing, finished")
			return
		}
		q.Status = parsed
	}

	switch strings.ToLower(query.Get("sort")) {
	case "", "desc":
	case "asc":
		q.Ascending = true
	default:
		badRequest(w, "sort must be asc or desc")
		return
	}

	list, err := s.svc.Matches.Matches(r.Context(), q)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success":  true,
		"count":    len(list.Matches),
		"dateFrom": list.DateFrom,
		"dateTo":   list.DateTo,
		"matches":  list.Matches,
	})
}

// handleGetLiveMatches 进行中的比赛
// GET /api/matches/live
func (s *Server) handleGetLiveMatches(w http.ResponseWriter, r *http.Request) {
	matches, err := s.svc.Matches.Live(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"count":   len(matches),
		"matches": matches,
	})
}

func clampDays(n int) int {
	if n < 0 {
		return 0
	}
	if n > maxDaysRange {
		return maxDaysRange
	}
	return n
}
