package main

import (
	"context"
	"os"

	"github.com/ashleypule/soccer-score/pkg/common"
	"github.com/ashleypule/soccer-score/services"
)

type fixtureCmd struct {
	FixtureID int    `arg:"" help:"football-data.org match id."`
	Home      string `help:"Home team name." required:""`
	Away      string `help:"Away team name." required:""`
	HomeID    int    `help:"Home team id. Without both ids mock statistics are used."`
	AwayID    int    `help:"Away team id."`
}

func (c *fixtureCmd) Run(g *globalCmd) error {
	stack, err := services.Bootstrap(g.config())
	if err != nil {
		return err
	}
	defer stack.Close()

	p, err := stack.Predictions.Generate(context.Background(), services.PredictionRequest{
		FixtureID:  c.FixtureID,
		HomeTeam:   c.Home,
		AwayTeam:   c.Away,
		HomeTeamID: c.HomeID,
		AwayTeamID: c.AwayID,
	})
	if err != nil {
		if rl, ok := common.AsRateLimit(err); ok {
			return common.NewAppError("RATE_LIMITED", rl.UserMessage(), err)
		}
		return err
	}

	renderPrediction(os.Stdout, c.Home, c.Away, p)
	return nil
}
