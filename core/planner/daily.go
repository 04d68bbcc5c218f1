package planner

import (
	"sort"
	"time"

	"github.com/maelqr/studyload/core/model"
	"github.com/maelqr/studyload/infra/logger"
)

// defaultPredictedHours stands in for tasks reaching the packer without a
// computed estimate.
const defaultPredictedHours = 4.0

// Packer allocates scored tasks into daily and weekly budgets.
type Packer struct {
	cfg Config
	log logger.Logger
}

// New returns a Packer with the given configuration.
func New(cfg Config, log logger.Logger) *Packer {
	cfg.SetDefaults()
	if log == nil {
		log = logger.NopLogger{}
	}
	return &Packer{cfg: cfg, log: log}
}

// PackDay greedily fills one day's budget from the pending tasks in
// priority order. A task exceeding the remaining budget receives a
// partial allocation; ties keep the input order.
func (p *Packer) PackDay(tasks []model.Task, availableHours float64, date time.Time) model.DailySchedule {
	day := model.DailySchedule{Date: date, AvailableHours: availableHours}
	if availableHours < 0 {
		availableHours = 0
	}

	pending := make([]model.Task, 0, len(tasks))
	for _, t := range tasks {
		if t.Pending() && !t.DueDate.IsZero() {
			pending = append(pending, t)
		}
	}
	sort.SliceStable(pending, func(i, j int) bool {
		return pending[i].PriorityScore > pending[j].PriorityScore
	})

	remaining := availableHours
	for _, t := range pending {
		if remaining <= 0 {
			break
		}
		hours := t.PredictedHours
		if hours <= 0 {
			hours = defaultPredictedHours
		}
		if hours > remaining {
			hours = remaining
		}
		day.Items = append(day.Items, model.ScheduleItem{
			TaskID:         t.ID,
			Title:          t.Title,
			Course:         t.Course,
			AllocatedHours: hours,
			Priority:       t.PriorityScore,
			DueDate:        t.DueDate,
			Type:           t.Type,
			StressScore:    t.StressScore,
		})
		day.TotalAllocatedHours += hours
		remaining -= hours
	}
	p.log.Debugw("day packed", map[string]any{
		"date": date.Format(model.DateLayout), "items": len(day.Items), "hours": day.TotalAllocatedHours,
	})
	return day
}
