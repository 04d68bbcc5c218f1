package estimate

import (
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/maelqr/studyload/core/model"
)

// Hour predictions are clamped to this range regardless of predictor.
const (
	MinHours = 0.5
	MaxHours = 40.0
)

const defaultBaseHours = 3.0

// baseHours maps task types to a starting effort estimate.
var baseHours = map[model.TaskType]float64{
	model.TaskAssignment: 3.0,
	model.TaskExam:       8.0,
	model.TaskQuiz:       2.0,
	model.TaskProject:    12.0,
	model.TaskReading:    1.5,
	model.TaskLab:        4.0,
}

// RuleEstimator predicts effort from a fixed multiplicative formula. A
// small Gaussian jitter (~±10%) is applied on purpose so otherwise
// identical tasks do not repeat the exact same estimate; this is the one
// documented non-deterministic path in the pipeline.
type RuleEstimator struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewRuleEstimator returns a rule estimator seeded from the clock.
func NewRuleEstimator() *RuleEstimator {
	return newRuleEstimator(time.Now().UnixNano())
}

func newRuleEstimator(seed int64) *RuleEstimator {
	return &RuleEstimator{rng: rand.New(rand.NewSource(seed))}
}

// Predict applies the rule formula with jitter and clamps the result.
func (r *RuleEstimator) Predict(t model.Task) float64 {
	hours := r.baseEstimate(t)

	r.mu.Lock()
	noise := r.rng.NormFloat64() * 0.1
	r.mu.Unlock()
	hours *= 1 + noise

	return clampHours(hours)
}

// baseEstimate is the deterministic part of the formula: base hours per
// type scaled by grade, description complexity and keyword severity.
func (r *RuleEstimator) baseEstimate(t model.Task) float64 {
	base, ok := baseHours[t.Type]
	if !ok {
		base = defaultBaseHours
	}

	gradeMult := 1 + (t.GradePercentage/100)*0.5

	complexity := float64(len(t.Description)) / 500
	if complexity > 0.5 {
		complexity = 0.5
	}
	complexityMult := 1 + complexity

	keywordMult := 1.0
	for _, kw := range t.InstructorKeywords {
		switch strings.ToLower(kw) {
		case "critical", "major", "comprehensive":
			keywordMult += 0.3
		case "important", "significant":
			keywordMult += 0.2
		case "challenging", "difficult":
			keywordMult += 0.15
		}
	}

	return base * gradeMult * complexityMult * keywordMult
}

func clampHours(h float64) float64 {
	if h < MinHours {
		return MinHours
	}
	if h > MaxHours {
		return MaxHours
	}
	return h
}
