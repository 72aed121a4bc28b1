package prediction

// Config holds the tuned constants of the engine. The defaults reproduce the
// behaviour the service has always shipped with; they are exposed so they can
// be overridden from the environment without touching the algorithm.
type Config struct {
	// Winner
	DrawThreshold        float64
	HomeAdvantage        float64
	HomeWinRateDivisor   float64
	AttackWeight         float64
	DefenseWeight        float64
	H2HBonusDivisor      float64
	WinnerBaseConfidence float64
	WinnerConfidenceCap  float64

	// Form blend: overall / last 5 / last 3
	OverallFormWeight float64
	RecentFormWeight  float64
	Last3FormWeight   float64

	// Strengths
	ContextualAttackWeight float64
	RecentAttackWeight     float64
	CleanSheetDiscount     float64
	DefaultCleanSheetRate  float64
	MinDefense             float64

	// Scoreline
	DefenderDiscount     float64
	MinExpectedGoals     float64
	MaxExpectedGoals     float64
	WinnerGoalMultiplier float64
	LoserGoalMultiplier  float64
	MaxGoals             int
	ScorelineConfidence  int

	// Derived markets
	BTTSConfidence           int
	BTTSConfidenceCap        int
	OverUnderConfidence      int
	OverUnderClearConfidence int
	OverUnderCloseConfidence int
	H2HAgreementBonus        int
	OverUnderConfidenceCap   int
	CornersConfidence        int
	MinCorners               int
	CornersSpread            int
	ComboConfidence          int

	// Neutral head-to-head defaults
	DefaultH2HAvgGoals float64
	DefaultH2HBTTSRate float64
}

// DefaultConfig returns the production constants.
func DefaultConfig() Config {
	return Config{
		DrawThreshold:        8,
		HomeAdvantage:        15,
		HomeWinRateDivisor:   5,
		AttackWeight:         5,
		DefenseWeight:        3,
		H2HBonusDivisor:      10,
		WinnerBaseConfidence: 55,
		WinnerConfidenceCap:  92,

		OverallFormWeight: 0.2,
		RecentFormWeight:  0.3,
		Last3FormWeight:   0.5,

		ContextualAttackWeight: 0.6,
		RecentAttackWeight:     0.4,
		CleanSheetDiscount:     0.3,
		DefaultCleanSheetRate:  20,
		MinDefense:             0.3,

		DefenderDiscount:     0.5,
		MinExpectedGoals:     0.3,
		MaxExpectedGoals:     3.5,
		WinnerGoalMultiplier: 1.3,
		LoserGoalMultiplier:  0.7,
		MaxGoals:             4,
		ScorelineConfidence:  58,

		BTTSConfidence:           70,
		BTTSConfidenceCap:        85,
		OverUnderConfidence:      65,
		OverUnderClearConfidence: 80,
		OverUnderCloseConfidence: 55,
		H2HAgreementBonus:        5,
		OverUnderConfidenceCap:   92,
		CornersConfidence:        70,
		MinCorners:               6,
		CornersSpread:            2,
		ComboConfidence:          50,

		DefaultH2HAvgGoals: 2.5,
		DefaultH2HBTTSRate: 50,
	}
}
