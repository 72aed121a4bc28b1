package footballdata

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ashleypule/soccer-score/pkg/common"
	"github.com/ashleypule/soccer-score/pkg/models"
)

func TestNewClient(t *testing.T) {
	client := NewClient("test_token")

	if client == nil {
		t.Fatal("Expected client to be created")
	}
	if client.apiToken != "test_token" {
		t.Errorf("Expected token to be 'test_token', got '%s'", client.apiToken)
	}
	if client.baseURL != DefaultBaseURL {
		t.Errorf("Expected baseURL to be '%s', got '%s'", DefaultBaseURL, client.baseURL)
	}
}

func TestNewClientWithConfig(t *testing.T) {
	client := NewClientWithConfig(Config{
		BaseURL:  "https://custom.api.com/v4/",
		APIToken: "custom_token",
		Timeout:  60 * time.Second,
	})

	if client.baseURL != "https://custom.api.com/v4" {
		t.Errorf("Expected trailing slash to be trimmed, got '%s'", client.baseURL)
	}
	if client.httpClient.Timeout != 60*time.Second {
		t.Errorf("Expected timeout to be 60s, got %v", client.httpClient.Timeout)
	}
}

func TestAPIError(t *testing.T) {
	err := &APIError{StatusCode: 400, ErrorCode: 400, Message: "Bad filter"}

	expected := "API error 400: Bad filter"
	if err.Error() != expected {
		t.Errorf("Expected error message '%s', got '%s'", expected, err.Error())
	}
}

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClientWithConfig(Config{BaseURL: srv.URL, APIToken: "secret"})
}

const teamMatchesJSON = `{
  "matches": [
    {
      "id": 1001,
      "area": {"name": "England", "flag": "https://crests/770.svg"},
      "competition": {"id": 2021, "name": "Premier League", "code": "PL", "emblem": "https://crests/PL.png"},
      "utcDate": "2025-09-13T14:00:00Z",
      "status": "FINISHED",
      "matchday": 4,
      "stage": "REGULAR_SEASON",
      "homeTeam": {"id": 57, "name": "Arsenal FC", "shortName": "Arsenal", "crest": "https://crests/57.png"},
      "awayTeam": {"id": 341, "name": "Leeds United FC", "shortName": "Leeds"},
      "score": {"winner": "HOME_TEAM", "fullTime": {"home": 3, "away": 0}}
    },
    {
      "id": 1002,
      "competition": {"id": 2001, "name": "UEFA Champions League", "code": "CL"},
      "utcDate": "2025-09-16T19:00:00Z",
      "status": "TIMED",
      "stage": "LEAGUE_STAGE",
      "homeTeam": {"id": 77, "name": "Athletic Club"},
      "awayTeam": {"id": 57, "name": "Arsenal FC"},
      "score": {"fullTime": {"home": null, "away": null}}
    }
  ]
}`

func TestGetTeamMatches(t *testing.T) {
	var gotPath, gotToken, gotFrom string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotToken = r.Header.Get("X-Auth-Token")
		gotFrom = r.URL.Query().Get("dateFrom")
		w.Write([]byte(teamMatchesJSON))
	})

	from := time.Date(2025, 6, 18, 0, 0, 0, 0, time.UTC)
	matches, err := client.GetTeamMatches(context.Background(), 57, MatchListOptions{DateFrom: from, DateTo: from.AddDate(0, 0, 90)})
	require.NoError(t, err)

	assert.Equal(t, "/teams/57/matches", gotPath)
	assert.Equal(t, "secret", gotToken)
	assert.Equal(t, "2025-06-18", gotFrom)

	require.Len(t, matches, 2)
	m := matches[0]
	assert.Equal(t, 1001, m.ID)
	assert.Equal(t, models.MatchStatusFinished, m.Status)
	assert.Equal(t, "Matchday 4", m.Round)
	assert.Equal(t, "PL", m.League.Code)
	assert.Equal(t, "England", m.League.Country)
	assert.Equal(t, "https://crests/57.png", m.HomeTeam.Logo)
	require.True(t, m.Score.Known())
	assert.Equal(t, 3, *m.Score.Home)
	assert.True(t, m.IsFinished())
	assert.Equal(t, 2025, m.Date.Year())

	assert.Equal(t, models.MatchStatusScheduled, matches[1].Status)
	assert.Equal(t, "LEAGUE STAGE", matches[1].Round)
	assert.False(t, matches[1].Score.Known())
}

func TestGetCompetitionMatchesFillsCompetition(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/competitions/PL/matches", r.URL.Path)
		w.Write([]byte(`{"competition":{"id":2021,"name":"Premier League","code":"PL"},
			"matches":[{"id":5,"utcDate":"2025-09-13T14:00:00Z","status":"IN_PLAY","homeTeam":{"id":1},"awayTeam":{"id":2},"score":{"fullTime":{"home":1,"away":1}}}]}`))
	})

	matches, err := client.GetCompetitionMatches(context.Background(), "PL", MatchListOptions{})
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, "Premier League", matches[0].League.Name)
	assert.Equal(t, models.MatchStatusOngoing, matches[0].Status)
}

func TestGetSupportedLeagues(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"count":3,"competitions":[
			{"id":2021,"name":"Premier League","code":"PL","area":{"name":"England"}},
			{"id":2013,"name":"Campeonato Brasileiro Série A","code":"BSA","area":{"name":"Brazil"}},
			{"id":2152,"name":"Copa Libertadores","code":"CLI","area":{"name":"South America"}}]}`))
	})

	leagues, err := client.GetSupportedLeagues(context.Background())
	require.NoError(t, err)
	require.Len(t, leagues, 2)
	assert.Equal(t, "PL", leagues[0].Code)
	assert.Equal(t, "Brazil", leagues[1].Country)
}

func TestRateLimitError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-RequestCounter-Reset", "42")
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte(`{"message":"You reached your request limit.","errorCode":429}`))
	})

	_, err := client.GetTeamMatches(context.Background(), 57, MatchListOptions{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, common.ErrRateLimitExceeded))

	rl, ok := common.AsRateLimit(err)
	require.True(t, ok)
	assert.Equal(t, 42*time.Second, rl.RetryAfter)
}

func TestRateLimitDefaultRetry(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	})

	_, err := client.GetMatches(context.Background(), MatchListOptions{})
	rl, ok := common.AsRateLimit(err)
	require.True(t, ok)
	assert.Equal(t, common.DefaultRetryAfter, rl.RetryAfter)
}

func TestUnauthorized(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"message":"Your API token is invalid.","errorCode":400}`))
	})

	_, err := client.GetCompetitions(context.Background())
	assert.True(t, errors.Is(err, common.ErrUnauthorized))
	assert.Contains(t, err.Error(), "Your API token is invalid.")
}

func TestMissingToken(t *testing.T) {
	client := NewClientWithConfig(Config{BaseURL: "http://127.0.0.1:1"})
	_, err := client.GetCompetitions(context.Background())
	assert.True(t, errors.Is(err, common.ErrNotConfigured))
	assert.False(t, client.HasToken())
}

func TestServerError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte("upstream down"))
	})

	_, err := client.GetMatches(context.Background(), MatchListOptions{})
	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusBadGateway, apiErr.StatusCode)
	assert.Equal(t, "upstream down", apiErr.Message)
}

func TestMapStatus(t *testing.T) {
	cases := map[string]models.MatchStatus{
		"FINISHED":  models.MatchStatusFinished,
		"AWARDED":   models.MatchStatusFinished,
		"IN_PLAY":   models.MatchStatusOngoing,
		"PAUSED":    models.MatchStatusOngoing,
		"LIVE":      models.MatchStatusOngoing,
		"TIMED":     models.MatchStatusScheduled,
		"SCHEDULED": models.MatchStatusScheduled,
		"POSTPONED": models.MatchStatusScheduled,
	}
	for in, want := range cases {
		if got := MapStatus(in); got != want {
			t.Errorf("MapStatus(%q) = %q, want %q", in, got, want)
		}
	}
}
