package estimate

import "github.com/maelqr/studyload/core/model"

// Feedback reports the actual time a completed task took. It is the
// boundary event fed back into the estimator.
type Feedback struct {
	Task        model.Task `json:"task"`
	ActualHours float64    `json:"actual_hours"`
}
