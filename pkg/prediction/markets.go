package prediction

import (
	"fmt"
	"math"
	"strings"

	"gonum.org/v1/gonum/stat"

	"github.com/ashleypule/soccer-score/pkg/common"
	"github.com/ashleypule/soccer-score/pkg/models"
)

// BTTSFromScoreline is the only place the BTTS label is decided.
func BTTSFromScoreline(s models.ScorelinePrediction) string {
	if s.Home > 0 && s.Away > 0 {
		return models.BTTSYes
	}
	return models.BTTSNo
}

// OverUnderFromScoreline is the only place the 2.5 line label is decided.
func OverUnderFromScoreline(s models.ScorelinePrediction) string {
	if float64(s.Total()) > 2.5 {
		return models.Over2dot5
	}
	return models.Under2dot5
}

func (e *Engine) btts(home, away *models.TeamStats, s models.ScorelinePrediction) models.BTTSPrediction {
	b := models.BTTSPrediction{
		Prediction: BTTSFromScoreline(s),
		Confidence: e.cfg.BTTSConfidence,
	}

	homeSC, homeOK := scoringConsistency(home)
	awaySC, awayOK := scoringConsistency(away)

	if b.Prediction == models.BTTSYes {
		if homeOK && awayOK {
			avg := (homeSC + awaySC) / 2
			b.Confidence = clampInt(roundInt(avg), e.cfg.BTTSConfidence, e.cfg.BTTSConfidenceCap)
		}
		shown := 70.0
		if homeOK {
			shown = homeSC
		}
		b.Reasoning = fmt.Sprintf("Scoreline %d-%d shows both teams scoring. Both teams scored in %.0f%% of matches.",
			s.Home, s.Away, shown)
		return b
	}

	keeper := home.TeamName
	if s.Home == 0 {
		keeper = away.TeamName
	}
	b.Reasoning = fmt.Sprintf("Scoreline %d-%d indicates clean sheet. %s strong defensively.", s.Home, s.Away, keeper)
	return b
}

func (e *Engine) overUnder(home, away *models.TeamStats, s models.ScorelinePrediction, a Analysis) models.OverUnderPrediction {
	total := s.Total()
	label := OverUnderFromScoreline(s)

	confidence := e.cfg.OverUnderConfidence
	switch {
	case total >= 4 || total <= 1:
		confidence = e.cfg.OverUnderClearConfidence
	case math.Abs(float64(total)-2.5) <= 0.5:
		confidence = e.cfg.OverUnderCloseConfidence
	}

	if a.HasH2H {
		over := float64(total) > 2.5
		if (a.H2HAvgGoals > 2.5) == over {
			confidence += e.cfg.H2HAgreementBonus
		}
	}
	if confidence > e.cfg.OverUnderConfidenceCap {
		confidence = e.cfg.OverUnderConfidenceCap
	}

	return models.OverUnderPrediction{
		Prediction: label,
		Confidence: confidence,
		Reasoning: fmt.Sprintf("Predicted %d total goals (%d-%d). Combined avg: %.2f goals.",
			total, s.Home, s.Away, home.AvgGoalsScored+away.AvgGoalsScored),
		ExpectedGoals: float64(total),
	}
}

func (e *Engine) corners(home, away *models.TeamStats) models.CornersPrediction {
	total := roundInt(home.AvgCornersFor + away.AvgCornersFor)
	lo := total - e.cfg.CornersSpread
	if lo < e.cfg.MinCorners {
		lo = e.cfg.MinCorners
	}
	hi := total + e.cfg.CornersSpread
	if hi < lo {
		hi = lo
	}
	return models.CornersPrediction{
		Prediction: fmt.Sprintf("%d-%d corners", lo, hi),
		Min:        lo,
		Max:        hi,
		Confidence: e.cfg.CornersConfidence,
	}
}

func (e *Engine) bookings(home, away *models.TeamStats) models.BookingsPrediction {
	expected := home.AvgYellowCards + away.AvgYellowCards + 2*(home.AvgRedCards+away.AvgRedCards)
	b := models.BookingsPrediction{ExpectedCards: math.Round(expected*10) / 10}
	switch {
	case expected < 3:
		b.Level, b.Confidence = models.BookingsLow, 65
	case expected < 5:
		b.Level, b.Confidence = models.BookingsMedium, 70
	default:
		b.Level, b.Confidence = models.BookingsHigh, 75
	}
	return b
}

func (e *Engine) combo(p models.MatchPrediction) models.ComboPrediction {
	parts := make([]string, 0, 3)
	if p.Winner.Prediction == models.OutcomeDraw {
		parts = append(parts, "Draw")
	} else {
		parts = append(parts, string(p.Winner.Prediction)+" Win")
	}
	parts = append(parts, p.OverUnder.Prediction)
	if p.BTTS.Prediction == models.BTTSYes {
		parts = append(parts, "BTTS")
	}
	if len(parts) > 2 {
		parts = parts[:2]
	}

	return models.ComboPrediction{Prediction: strings.Join(parts, " + "), Confidence: e.cfg.ComboConfidence}
}

func overallConfidence(p models.MatchPrediction) int {
	return roundInt(stat.Mean([]float64{
		float64(p.BTTS.Confidence),
		float64(p.Winner.Confidence),
		float64(p.OverUnder.Confidence),
	}, nil))
}

// CheckConsistency verifies that the BTTS and Over/Under labels agree with
// the scoreline and that the scoreline agrees with the winner.
func CheckConsistency(p models.MatchPrediction) error {
	if want := BTTSFromScoreline(p.Scoreline); p.BTTS.Prediction != want {
		return fmt.Errorf("%w: btts %q for scoreline %d-%d, want %q",
			common.ErrInconsistentPrediction, p.BTTS.Prediction, p.Scoreline.Home, p.Scoreline.Away, want)
	}
	if want := OverUnderFromScoreline(p.Scoreline); p.OverUnder.Prediction != want {
		return fmt.Errorf("%w: over/under %q for scoreline %d-%d, want %q",
			common.ErrInconsistentPrediction, p.OverUnder.Prediction, p.Scoreline.Home, p.Scoreline.Away, want)
	}
	if p.OverUnder.ExpectedGoals != float64(p.Scoreline.Total()) {
		return fmt.Errorf("%w: expected goals %.2f for total %d",
			common.ErrInconsistentPrediction, p.OverUnder.ExpectedGoals, p.Scoreline.Total())
	}

	var ok bool
	switch p.Winner.Prediction {
	case models.OutcomeHome:
		ok = p.Scoreline.Home > p.Scoreline.Away
	case models.OutcomeAway:
		ok = p.Scoreline.Away > p.Scoreline.Home
	case models.OutcomeDraw:
		ok = p.Scoreline.Home == p.Scoreline.Away
	}
	if !ok {
		return fmt.Errorf("%w: winner %s for scoreline %d-%d",
			common.ErrInconsistentPrediction, p.Winner.Prediction, p.Scoreline.Home, p.Scoreline.Away)
	}
	return nil
}
