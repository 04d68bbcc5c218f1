package planner

import (
	"sort"
	"time"

	"github.com/maelqr/studyload/core/model"
)

// spreadDefaultHours stands in for tasks reaching the distribution
// without a computed estimate.
const spreadDefaultHours = 3.0

// Spread distributes whole tasks across a plan of the given length,
// choosing for each task the least-loaded day that fits it under the
// daily cap without missing its deadline. When no admissible day has
// capacity the task overflows onto day 0 regardless: the scheduler
// prefers surfacing the overload to dropping the task.
func (p *Packer) Spread(tasks []model.Task, start time.Time, days int) model.Plan {
	if days <= 0 {
		days = p.cfg.HorizonDays
	}
	plan := model.Plan{Days: make([]model.PlanDay, days)}
	loads := make([]float64, days)
	for i := range plan.Days {
		plan.Days[i].Date = start.AddDate(0, 0, i)
	}

	ordered := append([]model.Task(nil), tasks...)
	sort.SliceStable(ordered, func(i, j int) bool {
		if ordered[i].PriorityScore != ordered[j].PriorityScore {
			return ordered[i].PriorityScore > ordered[j].PriorityScore
		}
		return ordered[i].DueDate.Before(ordered[j].DueDate.Time)
	})

	for _, t := range ordered {
		hours := t.PredictedHours
		if hours <= 0 {
			hours = spreadDefaultHours
		}
		day := p.bestDay(t, hours, loads, start, days)
		plan.Days[day].Items = append(plan.Days[day].Items, model.ScheduleItem{
			TaskID:         t.ID,
			Title:          t.Title,
			Course:         t.Course,
			AllocatedHours: hours,
			Priority:       t.PriorityScore,
			DueDate:        t.DueDate,
			Type:           t.Type,
			StressScore:    t.StressScore,
		})
		loads[day] += hours
	}
	return plan
}

// bestDay returns the least-loaded admissible day with capacity for the
// task, or day 0 when none fits.
func (p *Packer) bestDay(t model.Task, hours float64, loads []float64, start time.Time, days int) int {
	maxDay := days
	if !t.DueDate.IsZero() {
		until := t.DueDate.DaysUntil(start) + 1
		if until < maxDay {
			maxDay = until
		}
	}
	if maxDay < 1 {
		maxDay = 1
	}

	best := -1
	minLoad := 0.0
	for i := 0; i < maxDay && i < days; i++ {
		if loads[i]+hours > p.cfg.MaxDailyHours {
			continue
		}
		if best == -1 || loads[i] < minLoad {
			best = i
			minLoad = loads[i]
		}
	}
	if best == -1 {
		// Overflow-acceptance: surfaces later as an overloaded day.
		p.log.Debugf("task %s does not fit any admissible day, overflowing to day 0", t.ID)
		return 0
	}
	return best
}
