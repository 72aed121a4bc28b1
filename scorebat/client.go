package scorebat

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/ashleypule/soccer-score/pkg/models"
	"github.com/ashleypule/soccer-score/pkg/transport"
)

const (
	// DefaultFeedURL is the public ScoreBat v3 feed
	DefaultFeedURL = "https://www.scorebat.com/video-api/v3/"

	// DefaultTimeout is the default HTTP client timeout
	DefaultTimeout = 15 * time.Second
)

// Client fetches the highlight feed
type Client struct {
	feedURL    string
	token      string
	httpClient *http.Client
}

// NewClient creates a client. token is optional.
func NewClient(feedURL, token string, timeout time.Duration) *Client {
	if feedURL == "" {
		feedURL = DefaultFeedURL
	}
	if timeout == 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		feedURL:    feedURL,
		token:      token,
		httpClient: &http.Client{Timeout: timeout},
	}
}

type feedResponse struct {
	Response []models.Highlight `json:"response"`
}

// GetHighlights fetches every highlight currently in the feed
func (c *Client) GetHighlights(ctx context.Context) ([]models.Highlight, error) {
	u, err := url.Parse(c.feedURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse URL: %w", err)
	}
	if c.token != "" {
		q := u.Query()
		q.Set("token", c.token)
		u.RawQuery = q.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
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
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("scorebat feed returned status %d", resp.StatusCode)
	}

	var feed feedResponse
	if err := json.Unmarshal(body, &feed); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}
	if feed.Response == nil {
		return []models.Highlight{}, nil
	}
	return feed.Response, nil
}
