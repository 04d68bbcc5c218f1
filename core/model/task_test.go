package model

import (
	"encoding/json"
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	d := ParseDate("2026-05-04")
	if d.IsZero() {
		t.Fatalf("expected parsed date")
	}
	if d.Year() != 2026 || d.Month() != time.May || d.Day() != 4 {
		t.Fatalf("bad date %v", d)
	}
	if !ParseDate("04/05/2026").IsZero() {
		t.Fatalf("malformed input should degrade to zero date")
	}
	if ParseDate("2026-05-04T10:00:00Z").IsZero() {
		t.Fatalf("RFC3339 input should parse")
	}
}

func TestDateJSONRoundTrip(t *testing.T) {
	var tk Task
	in := []byte(`{"id":"t1","title":"essay","task_type":"Assignment","due_date":"2026-03-01","status":"pending"}`)
	if err := json.Unmarshal(in, &tk); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if tk.DueDate.IsZero() {
		t.Fatalf("due date lost")
	}
	out, err := json.Marshal(tk.DueDate)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(out) != `"2026-03-01"` {
		t.Fatalf("bad wire format %s", out)
	}

	bad := []byte(`{"id":"t2","due_date":"soon","status":"pending"}`)
	if err := json.Unmarshal(bad, &tk); err != nil {
		t.Fatalf("malformed due date must not fail the batch: %v", err)
	}
	if !tk.DueDate.IsZero() {
		t.Fatalf("expected zero date for malformed input")
	}
}

func TestDaysUntilDue(t *testing.T) {
	now := time.Date(2026, 2, 10, 15, 30, 0, 0, time.UTC)
	tk := Task{DueDate: NewDate(2026, 2, 13)}
	if got := tk.DaysUntilDue(now); got != 3 {
		t.Fatalf("expected 3 days, got %d", got)
	}
	tk.DueDate = NewDate(2026, 2, 8)
	if got := tk.DaysUntilDue(now); got != -2 {
		t.Fatalf("expected -2 days, got %d", got)
	}
	tk.DueDate = Date{}
	if got := tk.DaysUntilDue(now); got != DefaultHorizonDays {
		t.Fatalf("expected default horizon, got %d", got)
	}
}

func TestPlanFromWeekly(t *testing.T) {
	start := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	w := WeeklySchedule{Days: []WeekdaySchedule{
		{Day: "monday", DailySchedule: DailySchedule{Date: start, Items: []ScheduleItem{{TaskID: "a", AllocatedHours: 2}}}},
		{Day: "tuesday", DailySchedule: DailySchedule{Date: start.AddDate(0, 0, 1)}},
	}}
	p := PlanFromWeekly(w)
	if len(p.Days) != 2 {
		t.Fatalf("expected 2 plan days, got %d", len(p.Days))
	}
	if len(p.Days[0].Items) != 1 || p.Days[0].Items[0].TaskID != "a" {
		t.Fatalf("items not carried over")
	}
}
