package main

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/ashleypule/soccer-score/pkg/models"
)

func renderPrediction(w io.Writer, home, away string, p *models.MatchPrediction) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetTitle(fmt.Sprintf("%s vs %s (%s data)", home, away, p.DataSource))
	t.AppendHeader(table.Row{"Market", "Prediction", "Confidence"})
	t.AppendRow(table.Row{"Winner", winnerLabel(p.Winner.Prediction, home, away), pct(p.Winner.Confidence)})
	t.AppendRow(table.Row{"Score", fmt.Sprintf("%d-%d", p.Scoreline.Home, p.Scoreline.Away), pct(p.Scoreline.Confidence)})
	t.AppendRow(table.Row{"BTTS", p.BTTS.Prediction, pct(p.BTTS.Confidence)})
	t.AppendRow(table.Row{"Goals", fmt.Sprintf("%s (xG %.1f)", p.OverUnder.Prediction, p.OverUnder.ExpectedGoals), pct(p.OverUnder.Confidence)})
	t.AppendRow(table.Row{"Corners", p.Corners.Prediction, pct(p.Corners.Confidence)})
	t.AppendRow(table.Row{"Bookings", fmt.Sprintf("%s (%.1f cards)", p.Bookings.Level, p.Bookings.ExpectedCards), pct(p.Bookings.Confidence)})
	t.AppendRow(table.Row{"Combo", p.Combo.Prediction, pct(p.Combo.Confidence)})
	t.AppendFooter(table.Row{"Overall", "", pct(p.OverallConfidence)})
	t.SetCaption(p.Winner.Reasoning)
	t.SetStyle(table.StyleLight)
	t.Render()

	if p.TeamStats != nil {
		renderTeamStats(w, p.TeamStats)
	}
	if p.H2H != nil {
		fmt.Fprintf(w, "Head to head: %d matches, %s, %.1f goals/match, BTTS %.0f%%\n",
			p.H2H.MatchesPlayed, p.H2H.Distribution, p.H2H.AvgGoals, p.H2H.BTTSPercentage)
	}
}

func renderTeamStats(w io.Writer, d *models.TeamStatsDisplay) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.AppendHeader(table.Row{"", d.Home.Name, d.Away.Name})
	t.AppendRow(table.Row{"Record", d.Home.Record, d.Away.Record})
	t.AppendRow(table.Row{"Venue", d.Home.VenueRecord, d.Away.VenueRecord})
	t.AppendRow(table.Row{"Goals", d.Home.Goals, d.Away.Goals})
	t.AppendRow(table.Row{"Goal diff", d.Home.GoalDifference, d.Away.GoalDifference})
	t.AppendRow(table.Row{"Form", d.Home.RecentForm, d.Away.RecentForm})
	t.AppendRow(table.Row{"Clean sheets", d.Home.CleanSheets, d.Away.CleanSheets})
	t.SetStyle(table.StyleLight)
	t.Render()
}

func winnerLabel(o models.Outcome, home, away string) string {
	switch o {
	case models.OutcomeHome:
		return home
	case models.OutcomeAway:
		return away
	}
	return "Draw"
}

func pct(v int) string {
	return fmt.Sprintf("%d%%", v)
}
