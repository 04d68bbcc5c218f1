package estimate

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/maelqr/studyload/core/model"
)

func TestBaseEstimateExam(t *testing.T) {
	r := newRuleEstimator(1)
	// 8.0 * (1 + 0.125) with neutral complexity and keywords.
	got := r.baseEstimate(model.Task{Type: model.TaskExam, GradePercentage: 25})
	assert.InDelta(t, 9.0, got, 1e-9)
}

func TestBaseEstimateMultipliers(t *testing.T) {
	r := newRuleEstimator(1)
	tk := model.Task{
		Type:               model.TaskProject,
		GradePercentage:    100,
		Description:        strings.Repeat("x", 1000), // complexity caps at +0.5
		InstructorKeywords: []string{"critical", "difficult"},
	}
	want := 12.0 * 1.5 * 1.5 * (1 + 0.3 + 0.15)
	assert.InDelta(t, want, r.baseEstimate(tk), 1e-9)
}

func TestBaseEstimateUnknownType(t *testing.T) {
	r := newRuleEstimator(1)
	got := r.baseEstimate(model.Task{Type: model.TaskType("Thesis")})
	assert.InDelta(t, defaultBaseHours, got, 1e-9)
}

func TestPredictBounds(t *testing.T) {
	r := newRuleEstimator(42)
	tasks := []model.Task{
		{Type: model.TaskReading},
		{Type: model.TaskProject, GradePercentage: 100, Description: strings.Repeat("y", 2000),
			InstructorKeywords: []string{"critical", "major", "comprehensive", "important"}},
		{Type: model.TaskQuiz, GradePercentage: 5},
	}
	for i := 0; i < 200; i++ {
		for _, tk := range tasks {
			h := r.Predict(tk)
			if h < MinHours || h > MaxHours {
				t.Fatalf("prediction %v outside [%v,%v]", h, MinHours, MaxHours)
			}
		}
	}
}

func TestPredictJitterVaries(t *testing.T) {
	r := newRuleEstimator(7)
	tk := model.Task{Type: model.TaskAssignment, GradePercentage: 20}
	first := r.Predict(tk)
	varies := false
	for i := 0; i < 20; i++ {
		if r.Predict(tk) != first {
			varies = true
			break
		}
	}
	if !varies {
		t.Fatalf("expected jitter to vary repeated predictions")
	}
}
