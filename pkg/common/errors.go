package common

import (
	"errors"
	"fmt"
	"time"
)

var (
	// ErrNotFound 未找到错误
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput 无效输入错误
	ErrInvalidInput = errors.New("invalid input")

	// ErrTimeout 超时错误
	ErrTimeout = errors.New("timeout")

	// ErrStorageFailed 存储失败错误
	ErrStorageFailed = errors.New("storage failed")

	// ErrUnauthorized 未授权错误 (API key 无效)
	ErrUnauthorized = errors.New("unauthorized")

	// ErrRateLimitExceeded 速率限制错误
	ErrRateLimitExceeded = errors.New("rate limit exceeded")

	// ErrNotConfigured 缺少必要配置 (例如 API key)
	ErrNotConfigured = errors.New("not configured")

	// ErrInconsistentPrediction 预测结果与比分推导不一致
	ErrInconsistentPrediction = errors.New("inconsistent prediction")
)

// DefaultRetryAfter 上游未给出重试时间时的默认等待
const DefaultRetryAfter = 60 * time.Second

// AppError 应用错误
type AppError struct {
	Code    string
	Message string
	Cause   error
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

// NewAppError 创建应用错误
func NewAppError(code string, message string, cause error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// RateLimitError 上游限流错误, 调用方应在 RetryAfter 之后重试
type RateLimitError struct {
	RetryAfter time.Duration
	Cause      error
}

func (e *RateLimitError) Error() string {
	msg := fmt.Sprintf("rate limit exceeded, retry after %s", e.RetryAfter)
	if e.Cause != nil {
		return msg + ": " + e.Cause.Error()
	}
	return msg
}

// Is 使 errors.Is(err, ErrRateLimitExceeded) 成立
func (e *RateLimitError) Is(target error) bool {
	return target == ErrRateLimitExceeded
}

func (e *RateLimitError) Unwrap() error {
	return e.Cause
}

// UserMessage 面向用户的提示
func (e *RateLimitError) UserMessage() string {
	minutes := int(e.RetryAfter.Round(time.Minute) / time.Minute)
	if minutes < 1 {
		minutes = 1
	}
	unit := "minutes"
	if minutes == 1 {
		unit = "minute"
	}
	return fmt.Sprintf("⏳ API rate limit exceeded. Please wait %d %s and try again.", minutes, unit)
}

// NewRateLimitError 创建限流错误, retryAfter <= 0 时使用默认值
func NewRateLimitError(retryAfter time.Duration, cause error) *RateLimitError {
	if retryAfter <= 0 {
		retryAfter = DefaultRetryAfter
	}
	return &RateLimitError{RetryAfter: retryAfter, Cause: cause}
}

// AsRateLimit 从错误链中提取限流错误
func AsRateLimit(err error) (*RateLimitError, bool) {
	var rl *RateLimitError
	if errors.As(err, &rl) {
		return rl, true
	}
	if errors.Is(err, ErrRateLimitExceeded) {
		return NewRateLimitError(0, err), true
	}
	return nil, false
}
