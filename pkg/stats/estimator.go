package stats

import (
	"math/rand"
	"sync"
	"time"
)

// Discipline holds per-match corner and card averages.
type Discipline struct {
	CornersFor     float64
	CornersAgainst float64
	YellowCards    float64
	RedCards       float64
}

// Estimator supplies corner and card figures the match feed does not carry.
type Estimator interface {
	Estimate() Discipline
}

// RandomEstimator draws bounded values: corners 5-7, yellow cards 2-3 and
// red cards 0.1-0.3 per match. Safe for concurrent use.
type RandomEstimator struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

// NewRandomEstimator seeds the estimator. A zero seed uses the clock.
func NewRandomEstimator(seed int64) *RandomEstimator {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &RandomEstimator{rnd: rand.New(rand.NewSource(seed))}
}

func (e *RandomEstimator) Estimate() Discipline {
	e.mu.Lock()
	defer e.mu.Unlock()

	return Discipline{
		CornersFor:     5 + e.rnd.Float64()*2,
		CornersAgainst: 5 + e.rnd.Float64()*2,
		YellowCards:    2 + e.rnd.Float64(),
		RedCards:       0.1 + e.rnd.Float64()*0.2,
	}
}
