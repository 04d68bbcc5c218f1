package scoring

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/maelqr/studyload/core/model"
)

func TestWeightScoreExam(t *testing.T) {
	s := NewWeightScorer()
	// 0.3*0.25 + 0.4*0.9 + 0.3*0.5
	got := s.Score(model.TaskExam, 25, nil)
	assert.InDelta(t, 0.585, got, 1e-9)
}

func TestWeightScoreKeywordMax(t *testing.T) {
	s := NewWeightScorer()
	base := s.Score(model.TaskAssignment, 50, nil)
	withKw := s.Score(model.TaskAssignment, 50, []string{"key", "CRITICAL"})
	// Highest match (critical=0.9) replaces the 0.5 default.
	assert.InDelta(t, base+0.3*(0.9-0.5), withKw, 1e-9)

	unknown := s.Score(model.TaskAssignment, 50, []string{"whatever"})
	assert.InDelta(t, base, unknown, 1e-9)
}

func TestWeightScoreDefaults(t *testing.T) {
	s := NewWeightScorer()
	// Unknown type and zero grade both degrade to 0.5.
	got := s.Score(model.TaskType("Seminar"), 0, nil)
	assert.InDelta(t, 0.3*0.5+0.4*0.5+0.3*0.5, got, 1e-9)
}

func TestWeightScoreBounds(t *testing.T) {
	s := NewWeightScorer()
	types := []model.TaskType{
		model.TaskFinal, model.TaskExam, model.TaskMidterm, model.TaskProject,
		model.TaskAssignment, model.TaskLab, model.TaskQuiz, model.TaskReading,
		model.TaskType("unknown"),
	}
	grades := []float64{0, 5, 25, 50, 100, 250}
	keywords := [][]string{nil, {"critical"}, {"key"}, {"critical", "mandatory", "essential"}, {"nothing"}}
	for _, tt := range types {
		for _, g := range grades {
			for _, kw := range keywords {
				got := s.Score(tt, g, kw)
				if got < 0 || got > 1 {
					t.Fatalf("score out of range: type=%s grade=%v kw=%v score=%v", tt, g, kw, got)
				}
			}
		}
	}
}

func TestWeightScoreIdempotent(t *testing.T) {
	s := NewWeightScorer()
	a := s.Score(model.TaskProject, 40, []string{"major"})
	b := s.Score(model.TaskProject, 40, []string{"major"})
	if math.Abs(a-b) != 0 {
		t.Fatalf("scores differ: %v vs %v", a, b)
	}
}
