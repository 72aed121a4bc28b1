package prediction

import (
	"fmt"
	"math"

	"github.com/ashleypule/soccer-score/pkg/models"
)

// Engine produces match predictions from two teams' statistics. It holds no
// mutable state and is safe for concurrent use.
type Engine struct {
	cfg Config
}

// NewEngine creates an engine with the given constants.
func NewEngine(cfg Config) *Engine {
	return &Engine{cfg: cfg}
}

// Config returns the constants the engine was built with.
func (e *Engine) Config() Config {
	return e.cfg
}

var defaultEngine = NewEngine(DefaultConfig())

// PredictMatch runs the default engine.
func PredictMatch(home, away models.TeamStats, h2h *models.HeadToHeadSummary) models.MatchPrediction {
	return defaultEngine.PredictMatch(home, away, h2h)
}

// Analysis is the intermediate state of a prediction.
type Analysis struct {
	HomeForm          float64
	AwayForm          float64
	HomeWeightedForm  float64
	AwayWeightedForm  float64
	HomeAdvantage     float64
	HomeAttack        float64
	HomeDefense       float64
	AwayAttack        float64
	AwayDefense       float64
	HomeH2HBonus      float64
	AwayH2HBonus      float64
	H2HAvgGoals       float64
	H2HBTTSRate       float64
	HasH2H            bool
	FinalHome         float64
	FinalAway         float64
	Diff              float64
	Outcome           models.Outcome
	HomeExpectedGoals float64
	AwayExpectedGoals float64
}

// Analyze computes form, strengths and the winner decision without building
// the markets.
func (e *Engine) Analyze(home, away *models.TeamStats, h2h *models.HeadToHeadSummary) Analysis {
	a := Analysis{
		HomeForm:         FormScore(home),
		AwayForm:         FormScore(away),
		HomeWeightedForm: e.WeightedForm(home),
		AwayWeightedForm: e.WeightedForm(away),
		HomeAttack:       e.AttackStrength(home, true),
		HomeDefense:      e.DefenseStrength(home, true),
		AwayAttack:       e.AttackStrength(away, false),
		AwayDefense:      e.DefenseStrength(away, false),
	}

	// A team with no history gets no home advantage, so two empty teams stay level.
	if home.MatchesPlayed > 0 {
		a.HomeAdvantage = e.cfg.HomeAdvantage
		if rate, ok := homeWinRate(home); ok {
			a.HomeAdvantage += (rate - 50) / e.cfg.HomeWinRateDivisor
		}
	}

	f := e.headToHead(h2h)
	a.HomeH2HBonus, a.AwayH2HBonus = f.homeBonus, f.awayBonus
	a.H2HAvgGoals, a.H2HBTTSRate, a.HasH2H = f.avgGoals, f.bttsRate, f.present

	a.FinalHome = a.HomeWeightedForm + a.HomeAdvantage + e.cfg.AttackWeight*a.HomeAttack - e.cfg.DefenseWeight*a.AwayDefense + a.HomeH2HBonus
	a.FinalAway = a.AwayWeightedForm + e.cfg.AttackWeight*a.AwayAttack - e.cfg.DefenseWeight*a.HomeDefense + a.AwayH2HBonus
	a.Diff = math.Abs(a.FinalHome - a.FinalAway)

	switch {
	case a.Diff < e.cfg.DrawThreshold:
		a.Outcome = models.OutcomeDraw
	case a.FinalHome > a.FinalAway:
		a.Outcome = models.OutcomeHome
	default:
		a.Outcome = models.OutcomeAway
	}

	a.HomeExpectedGoals = e.expectedGoals(a.HomeAttack, a.AwayDefense, a.Outcome == models.OutcomeHome, a.Outcome)
	a.AwayExpectedGoals = e.expectedGoals(a.AwayAttack, a.HomeDefense, a.Outcome == models.OutcomeAway, a.Outcome)
	return a
}

// PredictMatch builds the full prediction. The inputs are not modified.
func (e *Engine) PredictMatch(home, away models.TeamStats, h2h *models.HeadToHeadSummary) models.MatchPrediction {
	a := e.Analyze(&home, &away, h2h)

	winner := e.winner(&home, &away, a)
	scoreline := e.scoreline(a)

	p := models.MatchPrediction{
		Winner:    winner,
		Scoreline: scoreline,
		Corners:   e.corners(&home, &away),
		Bookings:  e.bookings(&home, &away),
	}
	p.BTTS = e.btts(&home, &away, scoreline)
	p.OverUnder = e.overUnder(&home, &away, scoreline, a)
	p.Combo = e.combo(p)
	p.OverallConfidence = overallConfidence(p)
	return p
}

func (e *Engine) winner(home, away *models.TeamStats, a Analysis) models.WinnerPrediction {
	w := models.WinnerPrediction{Prediction: a.Outcome}

	switch a.Outcome {
	case models.OutcomeDraw:
		w.Confidence = roundInt(e.cfg.WinnerBaseConfidence + (e.cfg.DrawThreshold - a.Diff))
		w.Reasoning = fmt.Sprintf("Evenly matched. Home: %.0f vs Away: %.0f. Recent form similar: %.1f%% vs %.1f%%",
			a.FinalHome, a.FinalAway, a.HomeForm, a.AwayForm)
	case models.OutcomeHome:
		w.Confidence = roundInt(math.Min(e.cfg.WinnerBaseConfidence+a.Diff, e.cfg.WinnerConfidenceCap))
		rate := "n/a"
		if r, ok := homeWinRate(home); ok {
			rate = fmt.Sprintf("%.0f%%", r)
		}
		w.Reasoning = fmt.Sprintf("%s stronger. Home win rate: %s. Recent: %s wins",
			home.TeamName, rate, last3Wins(home))
	default:
		w.Confidence = roundInt(math.Min(e.cfg.WinnerBaseConfidence+a.Diff, e.cfg.WinnerConfidenceCap))
		var v models.VenueStats
		if away.Away != nil {
			v = *away.Away
		}
		w.Reasoning = fmt.Sprintf("%s in superior form. Away record: %dW-%dD-%dL. Recent: %s wins",
			away.TeamName, v.Wins, v.Draws, v.Losses, last3Wins(away))
	}
	return w
}

func last3Wins(s *models.TeamStats) string {
	if s.Last3 == nil || s.Last3.Matches == 0 {
		return "0/3"
	}
	return fmt.Sprintf("%d/%d", s.Last3.Wins, s.Last3.Matches)
}

// expectedGoals clamps the raw attack-versus-defence figure and then scales it
// by the winner decision.
func (e *Engine) expectedGoals(attack, defense float64, isWinner bool, outcome models.Outcome) float64 {
	xg := clamp(attack-e.cfg.DefenderDiscount*defense, e.cfg.MinExpectedGoals, e.cfg.MaxExpectedGoals)
	switch {
	case outcome == models.OutcomeDraw:
		return xg
	case isWinner:
		return xg * e.cfg.WinnerGoalMultiplier
	default:
		return xg * e.cfg.LoserGoalMultiplier
	}
}

func (e *Engine) scoreline(a Analysis) models.ScorelinePrediction {
	homeGoals := roundInt(a.HomeExpectedGoals)
	awayGoals := roundInt(a.AwayExpectedGoals)

	switch a.Outcome {
	case models.OutcomeHome:
		if homeGoals <= awayGoals {
			homeGoals = awayGoals + 1
		}
	case models.OutcomeAway:
		if awayGoals <= homeGoals {
			awayGoals = homeGoals + 1
		}
	case models.OutcomeDraw:
		if homeGoals != awayGoals {
			homeGoals = roundInt((a.HomeExpectedGoals + a.AwayExpectedGoals) / 2)
			awayGoals = homeGoals
		}
	}

	return models.ScorelinePrediction{
		Home:       clampInt(homeGoals, 0, e.cfg.MaxGoals),
		Away:       clampInt(awayGoals, 0, e.cfg.MaxGoals),
		Confidence: e.cfg.ScorelineConfidence,
	}
}

// roundInt rounds half away from zero.
func roundInt(v float64) int {
	return int(math.Round(v))
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
