package web

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/ashleypule/soccer-score/logger"
	"github.com/ashleypule/soccer-score/pkg/common"
)

// writeJSON 输出 JSON 响应
func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Errorf("[API] encode response: %v", err)
	}
}

// writeError 按错误类型映射状态码, 限流时带 Retry-After
func writeError(w http.ResponseWriter, err error) {
	status, message := classify(err)

	if rl, ok := common.AsRateLimit(err); ok {
		w.Header().Set("Retry-After", strconv.Itoa(int(rl.RetryAfter.Seconds())))
		message = rl.UserMessage()
	}

	if status >= http.StatusInternalServerError {
		logger.Errorf("[API] %v", err)
	}

	writeJSON(w, status, map[string]interface{}{
		"success": false,
		"error":   message,
	})
}

// badRequest 参数错误
func badRequest(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusBadRequest, map[string]interface{}{
		"success": false,
		"error":   message,
	})
}

func classify(err error) (int, string) {
	switch {
	case errors.Is(err, common.ErrRateLimitExceeded):
		return http.StatusTooManyRequests, "rate limit exceeded"
	case errors.Is(err, common.ErrInvalidInput):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, common.ErrNotFound):
		return http.StatusNotFound, "not found"
	case errors.Is(err, common.ErrUnauthorized):
		return http.StatusBadGateway, "football data API rejected the configured key"
	case errors.Is(err, common.ErrNotConfigured):
		return http.StatusServiceUnavailable, "football data API key is not configured"
	case errors.Is(err, common.ErrInconsistentPrediction):
		return http.StatusInternalServerError, "prediction failed"
	case errors.Is(err, common.ErrStorageFailed):
		return http.StatusInternalServerError, "storage failure"
	default:
		return http.StatusBadGateway, "upstream request failed"
	}
}

// queryInt 解析整数参数, 缺省或非法时返回 def
func queryInt(r *http.Request, name string, def int) int {
	v := r.URL.Query().Get(name)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}
