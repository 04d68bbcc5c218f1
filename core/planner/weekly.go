package planner

import (
	"strings"
	"time"

	"github.com/maelqr/studyload/core/model"
)

// PackWeek covers exactly seven consecutive days from start. Each day is
// packed against the remaining pool; every task that received any
// allocation that day leaves the pool, so a task is placed on at most one
// day even when partially allocated. Weekdays missing from dailyHours get
// the configured default budget.
func (p *Packer) PackWeek(tasks []model.Task, dailyHours map[string]float64, start time.Time) model.WeeklySchedule {
	week := model.WeeklySchedule{
		WeekStart: start,
		WeekEnd:   start.AddDate(0, 0, 6),
	}
	pool := append([]model.Task(nil), tasks...)

	for i := 0; i < 7; i++ {
		date := start.AddDate(0, 0, i)
		name := strings.ToLower(date.Weekday().String())
		budget, ok := dailyHours[name]
		if !ok {
			budget = p.cfg.DefaultDailyHours
		}

		day := model.DailySchedule{Date: date, AvailableHours: budget}
		if budget > 0 && len(pool) > 0 {
			day = p.PackDay(pool, budget, date)
			pool = removeAllocated(pool, day.Items)
		}
		week.Days = append(week.Days, model.WeekdaySchedule{Day: name, DailySchedule: day})
		week.TotalTasksScheduled += len(day.Items)
		week.TotalHoursAllocated += day.TotalAllocatedHours
	}
	return week
}

func removeAllocated(pool []model.Task, items []model.ScheduleItem) []model.Task {
	if len(items) == 0 {
		return pool
	}
	placed := make(map[string]struct{}, len(items))
	for _, it := range items {
		placed[it.TaskID] = struct{}{}
	}
	rest := pool[:0]
	for _, t := range pool {
		if _, ok := placed[t.ID]; !ok {
			rest = append(rest, t)
		}
	}
	return rest
}
