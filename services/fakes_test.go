package services

import (
	"context"
	"sync"
	"time"

	"github.com/ashleypule/soccer-score/footballdata"
	"github.com/ashleypule/soccer-score/pkg/models"
)

type fakeProvider struct {
	mu sync.Mutex

	leagues     []models.League
	compMatches map[string][]models.Match
	compErr     error
	matches     []models.Match
	matchesErr  error
	teamMatches map[int][]models.Match
	teamErr     map[int]error

	compCalls   int
	matchCalls  int
	teamCalls   int
	leagueCalls int
}

func (f *fakeProvider) GetSupportedLeagues(context.Context) ([]models.League, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.leagueCalls++
	return f.leagues, nil
}

func (f *fakeProvider) GetMatches(context.Context, footballdata.MatchListOptions) ([]models.Match, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.matchCalls++
	return f.matches, f.matchesErr
}

func (f *fakeProvider) GetCompetitionMatches(_ context.Context, code string, _ footballdata.MatchListOptions) ([]models.Match, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.compCalls++
	if f.compErr != nil {
		return nil, f.compErr
	}
	return f.compMatches[code], nil
}

func (f *fakeProvider) GetTeamMatches(_ context.Context, teamID int, _ footballdata.MatchListOptions) ([]models.Match, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.teamCalls++
	if err := f.teamErr[teamID]; err != nil {
		return nil, err
	}
	return f.teamMatches[teamID], nil
}

type fakeHighlights struct {
	highlights []models.Highlight
	err        error
	calls      int
}

func (f *fakeHighlights) GetHighlights(context.Context) ([]models.Highlight, error) {
	f.calls++
	return f.highlights, f.err
}

var (
	arsenal = models.Team{ID: 57, Name: "Arsenal FC"}
	chelsea = models.Team{ID: 61, Name: "Chelsea FC"}
	spurs   = models.Team{ID: 73, Name: "Tottenham Hotspur FC"}

	premierLeague = models.League{ID: 2021, Code: "PL", Name: "Premier League"}
	laLiga        = models.League{ID: 2014, Code: "PD", Name: "Primera Division"}
)

var baseDate = time.Date(2024, 3, 1, 15, 0, 0, 0, time.UTC)

func finished(id int, league models.League, home, away models.Team, hg, ag, day int) models.Match {
	return models.Match{
		ID:       id,
		League:   league,
		HomeTeam: home,
		AwayTeam: away,
		Score:    models.NewScore(hg, ag),
		Status:   models.MatchStatusFinished,
		Date:     baseDate.AddDate(0, 0, day),
	}
}

func withStatus(m models.Match, status models.MatchStatus) models.Match {
	m.Status = status
	if status != models.MatchStatusFinished {
		m.Score = models.Score{}
	}
	return m
}

// fixedClock 可手动推进的时钟
type fixedClock struct {
	mu sync.Mutex
	t  time.Time
}

func (c *fixedClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.t
}

func (c *fixedClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.t = c.t.Add(d)
}
