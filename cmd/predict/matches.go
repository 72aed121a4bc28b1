package main

import (
	"context"
	"fmt"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/ashleypule/soccer-score/pkg/models"
	"github.com/ashleypule/soccer-score/services"
)

type matchesCmd struct {
	DaysBack    int    `help:"Days of results to include." default:"7"`
	DaysForward int    `help:"Days of fixtures to include." default:"0"`
	League      string `help:"League id, code or name."`
	Status      string `help:"scheduled, ongoing or finished."`
}

func (c *matchesCmd) Run(g *globalCmd) error {
	stack, err := services.Bootstrap(g.config())
	if err != nil {
		return err
	}
	defer stack.Close()

	q := services.MatchQuery{DaysBack: c.DaysBack, DaysForward: c.DaysForward, League: c.League}
	if c.Status != "" {
		status, ok := models.ParseMatchStatus(c.Status)
		if !ok {
			return fmt.Errorf("unknown status %q", c.Status)
		}
		q.Status = status
	}

	list, err := stack.Matches.Matches(context.Background(), q)
	if err != nil {
		return err
	}

	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.SetTitle(fmt.Sprintf("Matches %s to %s", list.DateFrom, list.DateTo))
	t.AppendHeader(table.Row{"ID", "Date", "League", "Home", "Score", "Away", "Status"})
	for _, m := range list.Matches {
		t.AppendRow(table.Row{m.ID, m.Date.Format("2006-01-02 15:04"), m.League.Code, m.HomeTeam.Name, scoreText(m.Score), m.AwayTeam.Name, m.Status})
	}
	t.SetStyle(table.StyleLight)
	t.Render()
	return nil
}

func scoreText(s models.Score) string {
	if !s.Known() {
		return "-"
	}
	return fmt.Sprintf("%d-%d", *s.Home, *s.Away)
}
