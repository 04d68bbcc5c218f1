package model

import (
	"encoding/json"
	"strings"
	"time"
)

// TaskType identifies the kind of academic work a task represents.
type TaskType string

const (
	TaskAssignment TaskType = "Assignment"
	TaskExam       TaskType = "Exam"
	TaskQuiz       TaskType = "Quiz"
	TaskProject    TaskType = "Project"
	TaskReading    TaskType = "Reading"
	TaskLab        TaskType = "Lab"
	TaskMidterm    TaskType = "Midterm"
	TaskFinal      TaskType = "Final"
)

// Status reflects the lifecycle of a task.
type Status string

const (
	StatusPending    Status = "pending"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
)

// Task is the scoring view of an academic task. The derived fields
// WeightScore, PredictedHours and PriorityScore are attached by the
// pipeline and never mutated by upstream components.
type Task struct {
	ID                 string   `json:"id"`
	Title              string   `json:"title"`
	Course             string   `json:"course,omitempty"`
	Type               TaskType `json:"task_type"`
	DueDate            Date     `json:"due_date"`
	GradePercentage    float64  `json:"grade_percentage,omitempty"`
	Description        string   `json:"description,omitempty"`
	InstructorKeywords []string `json:"instructor_keywords,omitempty"`
	Status             Status   `json:"status"`

	// StressScore is an optional subjective load in (0,1]. Zero means the
	// task carries none and consumers substitute 0.5.
	StressScore float64 `json:"stress_score,omitempty"`

	WeightScore    float64 `json:"weight_score,omitempty"`
	PredictedHours float64 `json:"predicted_hours,omitempty"`
	PriorityScore  float64 `json:"priority_score,omitempty"`
}

// Pending reports whether the task still needs work.
func (t Task) Pending() bool { return t.Status == StatusPending }

// DaysUntilDue returns the whole number of calendar days between now and
// the due date. Overdue tasks yield negative values. Tasks without a due
// date fall back to a 30-day horizon.
func (t Task) DaysUntilDue(now time.Time) int {
	return t.DueDate.DaysUntil(now)
}

// DefaultHorizonDays is the planning horizon assumed for tasks whose due
// date is absent or unparseable.
const DefaultHorizonDays = 30

// DateLayout is the calendar-date wire format for due dates.
const DateLayout = "2006-01-02"

// Date is a calendar date. Unparseable input degrades to the zero value
// instead of failing, so a malformed due date never rejects a task batch.
type Date struct {
	time.Time
}

// NewDate builds a Date truncated to midnight UTC.
func NewDate(year int, month time.Month, day int) Date {
	return Date{time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// ParseDate accepts YYYY-MM-DD or RFC 3339 input. Anything else returns
// the zero Date.
func ParseDate(s string) Date {
	s = strings.TrimSpace(s)
	if ts, err := time.Parse(DateLayout, s); err == nil {
		return Date{ts}
	}
	if ts, err := time.Parse(time.RFC3339, s); err == nil {
		return Date{ts}
	}
	return Date{}
}

// UnmarshalJSON implements json.Unmarshaler with the degradation policy of
// ParseDate.
func (d *Date) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		*d = Date{}
		return nil
	}
	*d = ParseDate(s)
	return nil
}

// DaysUntil returns the whole number of calendar days from now to the
// date, negative when overdue, or the default horizon when the date is
// unset.
func (d Date) DaysUntil(now time.Time) int {
	if d.IsZero() {
		return DefaultHorizonDays
	}
	return daysBetween(now, d.Time)
}

// MarshalJSON renders the date as YYYY-MM-DD, or null when unset.
func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(d.Format(DateLayout))
}

// daysBetween counts whole calendar days from a to b, ignoring clock time.
func daysBetween(a, b time.Time) int {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	from := time.Date(ay, am, ad, 0, 0, 0, 0, time.UTC)
	to := time.Date(by, bm, bd, 0, 0, 0, 0, time.UTC)
	return int(to.Sub(from) / (24 * time.Hour))
}
