package model

import "time"

// ScheduleItem is one task's allocation on one calendar day. It snapshots
// the task's priority, due date and type at scheduling time and is
// immutable once created.
type ScheduleItem struct {
	TaskID         string   `json:"task_id"`
	Title          string   `json:"title"`
	Course         string   `json:"course,omitempty"`
	AllocatedHours float64  `json:"allocated_hours"`
	Priority       float64  `json:"priority"`
	DueDate        Date     `json:"due_date"`
	Type           TaskType `json:"task_type"`
	StressScore    float64  `json:"stress_score,omitempty"`
}

// DailySchedule is one day's packed allocation.
type DailySchedule struct {
	Date                time.Time      `json:"date"`
	Items               []ScheduleItem `json:"items"`
	TotalAllocatedHours float64        `json:"total_allocated_hours"`
	AvailableHours      float64        `json:"available_hours"`
}

// WeekdaySchedule couples a lowercase weekday name with its schedule.
type WeekdaySchedule struct {
	Day string `json:"day"`
	DailySchedule
}

// WeeklySchedule covers seven consecutive calendar days.
type WeeklySchedule struct {
	WeekStart           time.Time         `json:"week_start"`
	WeekEnd             time.Time         `json:"week_end"`
	Days                []WeekdaySchedule `json:"days"`
	TotalTasksScheduled int               `json:"total_tasks_scheduled"`
	TotalHoursAllocated float64           `json:"total_hours_allocated"`
}

// Plan is an ordered multi-day distribution of whole tasks, the input to
// workload analysis.
type Plan struct {
	Days []PlanDay `json:"days"`
}

// PlanDay holds the tasks assigned to one calendar day.
type PlanDay struct {
	Date  time.Time      `json:"date"`
	Items []ScheduleItem `json:"items"`
}

// PlanFromWeekly converts a weekly schedule into a Plan so the same
// analysis applies to both scheduling modes.
func PlanFromWeekly(w WeeklySchedule) Plan {
	p := Plan{Days: make([]PlanDay, 0, len(w.Days))}
	for _, d := range w.Days {
		p.Days = append(p.Days, PlanDay{Date: d.Date, Items: d.Items})
	}
	return p
}

// DayLoad aggregates one day's hours and mean stress.
type DayLoad struct {
	Date   string  `json:"date"`
	Hours  float64 `json:"hours"`
	Stress float64 `json:"stress"`
}

// OverloadDay flags a day exceeding the workload or stress threshold.
type OverloadDay struct {
	Date   string  `json:"date"`
	Hours  float64 `json:"hours"`
	Stress float64 `json:"stress"`
	Reason string  `json:"reason"`
}

// WorkloadAnalysis is the per-day aggregate view of a schedule. It is
// recomputed from a plan and carries no independent identity.
type WorkloadAnalysis struct {
	Days          []DayLoad     `json:"days"`
	OverloadDays  []OverloadDay `json:"overload_days"`
	TotalHours    float64       `json:"total_hours"`
	AvgDailyHours float64       `json:"avg_daily_hours"`
	PeakDay       string        `json:"peak_day,omitempty"`
}
