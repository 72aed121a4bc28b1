package web

import (
	"context"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"
	"github.com/rs/cors"

	"github.com/ashleypule/soccer-score/config"
	"github.com/ashleypule/soccer-score/logger"
	"github.com/ashleypule/soccer-score/pkg/models"
	"github.com/ashleypule/soccer-score/services"
)

// MatchAPI 联赛和比赛列表, 由 services.MatchService 实现
type MatchAPI interface {
	Leagues(ctx context.Context) ([]models.League, error)
	Matches(ctx context.Context, q services.MatchQuery) (*services.MatchList, error)
	Live(ctx context.Context) ([]models.Match, error)
}

// StatsAPI 球队统计和交锋, 由 services.StatsService 实现
type StatsAPI interface {
	TeamStats(ctx context.Context, teamID int, teamName string) (*models.TeamStats, error)
	HeadToHead(ctx context.Context, homeTeamID, awayTeamID int) (*models.HeadToHeadSummary, error)
}

// PredictionAPI 由 services.PredictionService 实现
type PredictionAPI interface {
	Generate(ctx context.Context, req services.PredictionRequest) (*models.MatchPrediction, error)
	ClearCache(ctx context.Context) (int, error)
	CacheStats(ctx context.Context) (services.CacheStats, error)
}

// HighlightAPI 由 services.HighlightService 实现
type HighlightAPI interface {
	Highlights(ctx context.Context) []models.Highlight
	FindForMatch(ctx context.Context, homeTeam, awayTeam string) services.HighlightMatch
}

// Services Server 依赖的业务服务
type Services struct {
	Matches     MatchAPI
	Stats       StatsAPI
	Predictions PredictionAPI
	Highlights  HighlightAPI
}

type Server struct {
	config     *config.Config
	svc        Services
	wsHub      *Hub
	httpServer *http.Server
	upgrader   websocket.Upgrader
	started    time.Time
}

func NewServer(cfg *config.Config, svc Services, hub *Hub) *Server {
	return &Server{
		config:  cfg,
		svc:     svc,
		wsHub:   hub,
		started: time.Now(),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				return true // 接口本身无鉴权, 与 CORS 策略一致
			},
		},
	}
}

// Handler 构建路由和 CORS 包装
func (s *Server) Handler() http.Handler {
	router := mux.NewRouter()

	// API路由
	api := router.PathPrefix("/api").Subrouter()
	api.HandleFunc("/health", s.handleHealth).Methods("GET")
	api.HandleFunc("/api-key-status", s.handleAPIKeyStatus).Methods("GET")

	api.HandleFunc("/leagues", s.handleGetLeagues).Methods("GET")
	api.HandleFunc("/matches", s.handleGetMatches).Methods("GET")
	api.HandleFunc("/matches/live", s.handleGetLiveMatches).Methods("GET")

	api.HandleFunc("/team-stats", s.handleGetTeamStats).Methods("GET")
	api.HandleFunc("/head-to-head", s.handleGetHeadToHead).Methods("GET")

	api.HandleFunc("/highlights", s.handleGetHighlights).Methods("GET")
	api.HandleFunc("/highlights/match", s.handleGetMatchHighlight).Methods("GET")

	// cache 路由需在 {fixtureId} 之前注册
	api.HandleFunc("/predictions/cache", s.handleGetPredictionCache).Methods("GET")
	api.HandleFunc("/predictions/cache", s.handleClearPredictionCache).Methods("DELETE")
	api.HandleFunc("/predictions/{fixtureId:[0-9]+}", s.handleGetPrediction).Methods("GET")

	// WebSocket路由
	router.HandleFunc("/ws", s.handleWebSocket)

	// CORS配置
	c := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"*"},
		ExposedHeaders: []string{"Retry-After"},
	})

	return c.Handler(router)
}

func (s *Server) Start() error {
	s.httpServer = &http.Server{
		Addr:         ":" + s.config.Port,
		Handler:      s.Handler(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	logger.Printf("[Server] Listening on :%s", s.config.Port)
	return s.httpServer.ListenAndServe()
}

func (s *Server) Stop() {
	if s.httpServer == nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		logger.Errorf("Server shutdown error: %v", err)
	}
}

// handleHealth 健康检查
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":     "ok",
		"time":       time.Now().Unix(),
		"uptime":     time.Since(s.started).Round(time.Second).String(),
		"ws_clients": s.wsHub.ClientCount(),
	})
}

// handleAPIKeyStatus 数据源 API key 状态, 只返回掩码
func (s *Server) handleAPIKeyStatus(w http.ResponseWriter, r *http.Request) {
	configured := s.config.FootballDataAPIKey != ""
	resp := map[string]interface{}{
		"success":    true,
		"configured": configured,
	}
	if configured {
		resp["preview"] = s.config.MaskedAPIKey()
	} else {
		resp["message"] = "FOOTBALL_DATA_API_KEY is not set"
	}
	writeJSON(w, http.StatusOK, resp)
}
