package planner

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maelqr/studyload/core/model"
)

// mondayStart is a known Monday.
var mondayStart = time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

func TestPackWeekSevenDays(t *testing.T) {
	budgets := map[string]float64{"monday": 4, "wednesday": 4}
	tasks := []model.Task{
		pendingTask("a", 3, 2),
		pendingTask("b", 2, 2),
		pendingTask("c", 1, 2),
	}
	p := New(Config{}, nil)
	week := p.PackWeek(tasks, budgets, mondayStart)

	require.Len(t, week.Days, 7)
	assert.Equal(t, "monday", week.Days[0].Day)
	assert.Equal(t, "sunday", week.Days[6].Day)
	assert.Equal(t, mondayStart, week.WeekStart)
	assert.Equal(t, mondayStart.AddDate(0, 0, 6), week.WeekEnd)

	// Monday takes a and b, Wednesday takes c; unspecified days are empty.
	require.Len(t, week.Days[0].Items, 2)
	require.Len(t, week.Days[2].Items, 1)
	assert.Equal(t, "c", week.Days[2].Items[0].TaskID)
	assert.Empty(t, week.Days[1].Items)
	assert.Equal(t, 3, week.TotalTasksScheduled)
	assert.Equal(t, 6.0, week.TotalHoursAllocated)
}

func TestPackWeekNoDuplicatePlacement(t *testing.T) {
	budgets := map[string]float64{}
	for _, d := range []string{"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday"} {
		budgets[d] = 3
	}
	var tasks []model.Task
	for i := 0; i < 10; i++ {
		tasks = append(tasks, pendingTask(fmt.Sprintf("t%d", i), float64(10-i), 5))
	}
	p := New(Config{}, nil)
	week := p.PackWeek(tasks, budgets, mondayStart)

	seen := map[string]int{}
	for _, day := range week.Days {
		for _, it := range day.Items {
			seen[it.TaskID]++
		}
	}
	for id, n := range seen {
		if n > 1 {
			t.Fatalf("task %s placed on %d days", id, n)
		}
	}
	// A partially allocated task still leaves the pool.
	require.Len(t, week.Days[0].Items, 1)
	assert.Equal(t, 3.0, week.Days[0].Items[0].AllocatedHours)
}

func TestPackWeekUnspecifiedDaysIdle(t *testing.T) {
	p := New(Config{}, nil)
	week := p.PackWeek([]model.Task{pendingTask("a", 1, 2)}, map[string]float64{"friday": 2}, mondayStart)
	for i, day := range week.Days {
		if day.Day == "friday" {
			require.Len(t, day.Items, 1, "friday should take the task")
			continue
		}
		assert.Empty(t, day.Items, "day %d (%s) should be idle", i, day.Day)
	}
}

func TestPackWeekConfiguredDefaultBudget(t *testing.T) {
	p := New(Config{DefaultDailyHours: 2}, nil)
	week := p.PackWeek([]model.Task{pendingTask("a", 1, 2)}, nil, mondayStart)
	require.Len(t, week.Days[0].Items, 1)
	assert.Equal(t, 2.0, week.Days[0].Items[0].AllocatedHours)
}
