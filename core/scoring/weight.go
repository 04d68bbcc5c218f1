package scoring

import (
	"strings"

	"github.com/maelqr/studyload/core/model"
)

// WeightScorer maps a task's static attributes to an importance score in
// [0,1]. It is a pure function of its inputs; missing fields degrade to
// documented defaults instead of failing.
type WeightScorer struct {
	typeWeights    map[model.TaskType]float64
	keywordWeights map[string]float64
}

const (
	defaultTypeWeight    = 0.5
	defaultKeywordWeight = 0.5
	defaultGradeWeight   = 0.5
)

// NewWeightScorer returns a scorer with the fixed importance tables.
func NewWeightScorer() *WeightScorer {
	return &WeightScorer{
		typeWeights: map[model.TaskType]float64{
			model.TaskFinal:      0.95,
			model.TaskExam:       0.9,
			model.TaskMidterm:    0.85,
			model.TaskProject:    0.8,
			model.TaskAssignment: 0.7,
			model.TaskLab:        0.65,
			model.TaskQuiz:       0.6,
			model.TaskReading:    0.4,
		},
		keywordWeights: map[string]float64{
			"critical":    0.9,
			"mandatory":   0.85,
			"major":       0.8,
			"essential":   0.8,
			"required":    0.75,
			"important":   0.7,
			"significant": 0.7,
			"key":         0.6,
		},
	}
}

// Score combines task type, grade weight and instructor keywords into a
// weight of 0.3*grade + 0.4*type + 0.3*keywords, clamped to 1.0.
func (s *WeightScorer) Score(taskType model.TaskType, gradePercentage float64, keywords []string) float64 {
	typeImportance, ok := s.typeWeights[taskType]
	if !ok {
		typeImportance = defaultTypeWeight
	}

	// Highest matching keyword wins; case-insensitive.
	keywordImportance := defaultKeywordWeight
	for _, kw := range keywords {
		if w, ok := s.keywordWeights[strings.ToLower(kw)]; ok && w > keywordImportance {
			keywordImportance = w
		}
	}

	// A zero grade carries no signal and falls back to the neutral default.
	grade := defaultGradeWeight
	if gradePercentage > 0 {
		grade = gradePercentage / 100
		if grade > 1 {
			grade = 1
		}
	}

	weight := 0.3*grade + 0.4*typeImportance + 0.3*keywordImportance
	if weight > 1 {
		weight = 1
	}
	return weight
}
