package stats

import (
	"sort"

	"github.com/ashleypule/soccer-score/pkg/models"
)

const (
	recentWindow = 5
	last3Window  = 3
)

// NormalizeTeam aggregates a team's finished matches into TeamStats.
// Matches the team did not play in, or that are not finished, are ignored.
// Windows are taken from the chronologically latest matches.
func NormalizeTeam(teamID int, teamName string, matches []models.Match, est Estimator) models.TeamStats {
	played := FinishedFor(teamID, matches)

	out := models.TeamStats{TeamID: teamID, TeamName: teamName}
	if len(played) == 0 {
		return out
	}
	if out.TeamName == "" {
		out.TeamName = nameOf(teamID, played[0])
	}

	home := &models.VenueStats{}
	away := &models.VenueStats{}
	for _, m := range played {
		gf, ga, isHome := goalsFor(teamID, m)
		venue := away
		if isHome {
			venue = home
		}

		out.MatchesPlayed++
		venue.MatchesPlayed++
		out.GoalsScored += gf
		out.GoalsConceded += ga
		venue.GoalsScored += gf
		venue.GoalsConceded += ga

		switch {
		case gf > ga:
			out.Wins++
			venue.Wins++
		case gf == ga:
			out.Draws++
			venue.Draws++
		default:
			out.Losses++
			venue.Losses++
		}
		if ga == 0 {
			out.CleanSheets++
		}
		if gf == 0 {
			out.FailedToScore++
		}
	}

	mp := float64(out.MatchesPlayed)
	out.AvgGoalsScored = float64(out.GoalsScored) / mp
	out.AvgGoalsConceded = float64(out.GoalsConceded) / mp
	out.GoalDifference = out.GoalsScored - out.GoalsConceded
	out.CleanSheetRate = models.Float(100 * float64(out.CleanSheets) / mp)
	out.ScoringConsistency = models.Float(100 * float64(out.MatchesPlayed-out.FailedToScore) / mp)

	finishVenue(home)
	finishVenue(away)
	out.Home, out.Away = home, away

	out.Recent = recentForm(teamID, tail(played, recentWindow))
	out.Last3 = last3Form(teamID, tail(played, last3Window))

	if est != nil {
		d := est.Estimate()
		out.AvgCornersFor = d.CornersFor
		out.AvgCornersAgainst = d.CornersAgainst
		out.AvgYellowCards = d.YellowCards
		out.AvgRedCards = d.RedCards
		out.DisciplineEstimated = true
	}
	return out
}

// FinishedFor returns the team's finished matches sorted oldest first.
func FinishedFor(teamID int, matches []models.Match) []models.Match {
	out := make([]models.Match, 0, len(matches))
	for _, m := range matches {
		if m.IsFinished() && m.Involves(teamID) {
			out = append(out, m)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date.Before(out[j].Date)
	})
	return out
}

func finishVenue(v *models.VenueStats) {
	denom := float64(v.MatchesPlayed)
	if denom == 0 {
		denom = 1
	}
	v.WinRate = 100 * float64(v.Wins) / denom
	v.AvgGoalsScored = float64(v.GoalsScored) / denom
	v.AvgGoalsConceded = float64(v.GoalsConceded) / denom
}

func recentForm(teamID int, matches []models.Match) *models.FormWindow {
	w := window(teamID, matches)
	if w.Matches > 0 {
		w.Form = float64(3*w.Wins+w.Draws) / float64(3*w.Matches) * 100
	}
	return w
}

func last3Form(teamID int, matches []models.Match) *models.FormWindow {
	w := window(teamID, matches)
	if w.Matches > 0 {
		w.Form = float64(w.Wins) / float64(w.Matches) * 100
	}
	return w
}

func window(teamID int, matches []models.Match) *models.FormWindow {
	w := &models.FormWindow{Matches: len(matches)}
	for _, m := range matches {
		gf, ga, _ := goalsFor(teamID, m)
		w.GoalsScored += gf
		w.GoalsConceded += ga
		switch {
		case gf > ga:
			w.Wins++
		case gf == ga:
			w.Draws++
		}
	}
	return w
}

func tail(matches []models.Match, n int) []models.Match {
	if len(matches) <= n {
		return matches
	}
	return matches[len(matches)-n:]
}

// goalsFor reads the score from the team's side of the fixture.
func goalsFor(teamID int, m models.Match) (gf, ga int, isHome bool) {
	home, away := *m.Score.Home, *m.Score.Away
	if m.HomeTeam.ID == teamID {
		return home, away, true
	}
	return away, home, false
}

func nameOf(teamID int, m models.Match) string {
	if m.HomeTeam.ID == teamID {
		return m.HomeTeam.Name
	}
	return m.AwayTeam.Name
}
