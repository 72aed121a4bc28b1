package web

import (
	"net/http"
	"strings"
)

// handleGetHighlights 集锦列表, 上游失败时返回空列表
// GET /api/highlights
func (s *Server) handleGetHighlights(w http.ResponseWriter, r *http.Request) {
	highlights := s.svc.Highlights.Highlights(r.Context())

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success":    true,
		"count":      len(highlights),
		"highlights": highlights,
	})
}

// handleGetMatchHighlight 按主客队查找集锦
// GET /api/highlights/match?home=Arsenal&away=Chelsea
func (s *Server) handleGetMatchHighlight(w http.ResponseWriter, r *http.Request) {
	home := strings.TrimSpace(r.URL.Query().Get("home"))
	away := strings.TrimSpace(r.URL.Query().Get("away"))
	if home == "" && away == "" {
		badRequest(w, "home or away is required")
		return
	}

	res := s.svc.Highlights.FindForMatch(r.Context(), home, away)

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success":   true,
		"found":     res.Found,
		"highlight": res.Highlight,
		"embedUrl":  res.EmbedURL,
	})
}
