package main

import (
	"math/rand"
	"os"
	"time"

	"github.com/ashleypule/soccer-score/pkg/prediction"
	"github.com/ashleypule/soccer-score/pkg/stats"
)

type mockCmd struct {
	Home string `help:"Home team name." default:"Home"`
	Away string `help:"Away team name." default:"Away"`
	Seed int64  `help:"Random seed. Zero uses the clock."`
}

func (c *mockCmd) Run(g *globalCmd) error {
	seed := c.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rnd := rand.New(rand.NewSource(seed))

	home := stats.MockTeamStats(rnd, c.Home)
	away := stats.MockTeamStats(rnd, c.Away)

	engine := prediction.NewEngine(g.config().EngineConfig())
	p := engine.PredictMatch(home, away, nil)
	p.TeamStats = prediction.BuildTeamStatsDisplay(&home, &away)
	p.DataSource = "mock"

	renderPrediction(os.Stdout, c.Home, c.Away, &p)
	return nil
}
