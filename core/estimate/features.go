package estimate

import (
	"strings"
	"time"

	"github.com/maelqr/studyload/core/model"
)

// featureTaskTypes is the closed category set used for one-hot encoding.
// Midterm and Final deliberately fall outside it and encode as all-zero.
var featureTaskTypes = [...]model.TaskType{
	model.TaskAssignment,
	model.TaskExam,
	model.TaskQuiz,
	model.TaskProject,
	model.TaskReading,
	model.TaskLab,
}

// importanceAllowlist marks keywords counted as importance indicators.
var importanceAllowlist = map[string]struct{}{
	"critical":  {},
	"major":     {},
	"important": {},
	"mandatory": {},
	"required":  {},
}

// featureCount is the fixed width of the feature vector.
const featureCount = len(featureTaskTypes) + 5

// features extracts the fixed numeric vector the regressor consumes:
// one-hot task type, grade percentage, description length, days until due
// (clamped to >= 0, default horizon when absent), keyword count and
// importance-keyword count.
func features(t model.Task, now time.Time) []float64 {
	x := make([]float64, 0, featureCount)
	for _, tt := range featureTaskTypes {
		if t.Type == tt {
			x = append(x, 1)
		} else {
			x = append(x, 0)
		}
	}
	x = append(x, t.GradePercentage)
	x = append(x, float64(len(t.Description)))

	days := t.DaysUntilDue(now)
	if days < 0 {
		days = 0
	}
	x = append(x, float64(days))

	x = append(x, float64(len(t.InstructorKeywords)))
	importance := 0
	for _, kw := range t.InstructorKeywords {
		if _, ok := importanceAllowlist[strings.ToLower(kw)]; ok {
			importance++
		}
	}
	x = append(x, float64(importance))
	return x
}
