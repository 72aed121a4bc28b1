package footballdata

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/ashleypule/soccer-score/pkg/common"
	"github.com/ashleypule/soccer-score/pkg/transport"
)

const (
	// DefaultBaseURL is the football-data.org v4 API
	DefaultBaseURL = "https://api.football-data.org/v4"

	// DefaultTimeout is the default HTTP client timeout
	DefaultTimeout = 30 * time.Second
)

// Client represents the football-data.org API client
type Client struct {
	baseURL    string
	apiToken   string
	httpClient *http.Client
}

// Config holds the configuration for the API client
type Config struct {
	BaseURL  string
	APIToken string
	Timeout  time.Duration
}

// NewClient creates a new client against the public API
func NewClient(apiToken string) *Client {
	return NewClientWithConfig(Config{
		BaseURL:  DefaultBaseURL,
		APIToken: apiToken,
		Timeout:  DefaultTimeout,
	})
}

// NewClientWithConfig creates a new client with custom configuration
func NewClientWithConfig(config Config) *Client {
	if config.BaseURL == "" {
		config.BaseURL = DefaultBaseURL
	}
	if config.Timeout == 0 {
		config.Timeout = DefaultTimeout
	}

	return &Client{
		baseURL:  strings.TrimRight(config.BaseURL, "/"),
		apiToken: config.APIToken,
		httpClient: &http.Client{
			Timeout: config.Timeout,
		},
	}
}

// HasToken reports whether an API key is configured
func (c *Client) HasToken() bool {
	return c.apiToken != ""
}

// doRequest performs an HTTP request
func (c *Client) doRequest(ctx context.Context, method, endpoint string, params url.Values) ([]byte, error) {
	if c.apiToken == "" {
		return nil, fmt.Errorf("football-data api key: %w", common.ErrNotConfigured)
	}

	u, err := url.Parse(c.baseURL + endpoint)
	if err != nil {
		return nil, fmt.Errorf("failed to parse URL: %w", err)
	}
	if params != nil {
		u.RawQuery = params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("X-Auth-Token", c.apiToken)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Accept-Encoding", transport.AcceptEncoding)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	body, err := transport.ReadBody(resp)
	if err != nil {
		return nil, err
	}

	switch resp.StatusCode {
	case http.StatusOK:
		return body, nil
	case http.StatusTooManyRequests:
		return nil, common.NewRateLimitError(retryAfter(resp.Header), parseAPIError(resp.StatusCode, body))
	case http.StatusUnauthorized, http.StatusForbidden:
		return nil, fmt.Errorf("%w: %v", common.ErrUnauthorized, parseAPIError(resp.StatusCode, body))
	case http.StatusNotFound:
		return nil, fmt.Errorf("%w: %v", common.ErrNotFound, parseAPIError(resp.StatusCode, body))
	default:
		return nil, parseAPIError(resp.StatusCode, body)
	}
}

// get performs a GET request
func (c *Client) get(ctx context.Context, endpoint string, params url.Values) ([]byte, error) {
	return c.doRequest(ctx, http.MethodGet, endpoint, params)
}

func (c *Client) getJSON(ctx context.Context, endpoint string, params url.Values, out interface{}) error {
	body, err := c.get(ctx, endpoint, params)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("failed to unmarshal response: %w", err)
	}
	return nil
}

// retryAfter reads the wait hint. football-data sends X-RequestCounter-Reset
// in seconds; Retry-After is honoured as well.
func retryAfter(h http.Header) time.Duration {
	for _, key := range []string{"X-RequestCounter-Reset", "Retry-After"} {
		if v := strings.TrimSpace(h.Get(key)); v != "" {
			if secs, err := strconv.Atoi(v); err == nil && secs > 0 {
				return time.Duration(secs) * time.Second
			}
		}
	}
	return common.DefaultRetryAfter
}

// APIError represents an API error response
type APIError struct {
	StatusCode int    `json:"-"`
	ErrorCode  int    `json:"errorCode"`
	Message    string `json:"message"`
}

// Error implements the error interface
func (e *APIError) Error() string {
	return fmt.Sprintf("API error %d: %s", e.StatusCode, e.Message)
}

func parseAPIError(status int, body []byte) error {
	apiErr := &APIError{StatusCode: status}
	if err := json.Unmarshal(body, apiErr); err != nil || apiErr.Message == "" {
		apiErr.Message = strings.TrimSpace(string(body))
		if len(apiErr.Message) > 200 {
			apiErr.Message = apiErr.Message[:200]
		}
	}
	return apiErr
}
