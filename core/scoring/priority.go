package scoring

import (
	"time"

	"github.com/maelqr/studyload/core/model"
)

// PriorityScorer ranks tasks by blending weight, urgency and effort.
// The result is an unbounded positive value used only for relative
// ordering: urgency alone reaches 1.0 for same-day or overdue tasks and
// deliberately dominates the bounded weight contribution.
type PriorityScorer struct{}

// Score computes 0.5*weight + 0.3*urgency + 0.2*min(hours/10, 1).
// days_until_due floors at 1 so the urgency factor never divides by zero
// or a negative count. A missing due date assumes the default horizon.
func (PriorityScorer) Score(weightScore float64, dueDate model.Date, predictedHours float64, now time.Time) float64 {
	days := dueDate.DaysUntil(now)
	if days < 1 {
		days = 1
	}
	urgency := 1 / float64(days)

	effort := predictedHours / 10
	if effort > 1 {
		effort = 1
	}
	return 0.5*weightScore + 0.3*urgency + 0.2*effort
}
