package metrics

import (
	"time"

	"github.com/maelqr/studyload/core/model"
)

// PredictionEvent records a single hour estimation.
type PredictionEvent struct {
	TaskID   string
	TaskType model.TaskType
	Hours    float64
	// Source is "rule", "model" or "fallback" (model failed, rule served
	// the call).
	Source string
	Time   time.Time
}

// PredictionRecorder records hour estimations.
type PredictionRecorder interface {
	RecordPrediction(ev PredictionEvent) error
}

// ScheduleEvent captures the outcome of one packing run.
type ScheduleEvent struct {
	Start          time.Time
	Days           int
	TasksScheduled int
	HoursAllocated float64
	OverloadDays   int
	Mode           string // "daily", "weekly" or "spread"
	Time           time.Time
}

// ScheduleRecorder records packing runs.
type ScheduleRecorder interface {
	RecordSchedule(ev ScheduleEvent) error
}

// TrainingEvent captures a retraining attempt of the hour estimator.
type TrainingEvent struct {
	Samples  int
	Accepted bool
	Time     time.Time
}

// TrainingRecorder records estimator training attempts.
type TrainingRecorder interface {
	RecordTraining(ev TrainingEvent) error
}

// MetricsSink records scheduling events for observability purposes.
type MetricsSink interface {
	PredictionRecorder
	ScheduleRecorder
	TrainingRecorder
}

// NopSink discards all events.
type NopSink struct{}

func (NopSink) RecordPrediction(PredictionEvent) error { return nil }
func (NopSink) RecordSchedule(ScheduleEvent) error     { return nil }
func (NopSink) RecordTraining(TrainingEvent) error     { return nil }

// Config selects and configures the metrics sinks.
type Config struct {
	PrometheusEnabled bool   `json:"prometheus_enabled"`
	PrometheusPort    string `json:"prometheus_port"`
	InfluxEnabled     bool   `json:"influx_enabled"`
	InfluxURL         string `json:"influx_url"`
	InfluxToken       string `json:"influx_token"`
	InfluxOrg         string `json:"influx_org"`
	InfluxBucket      string `json:"influx_bucket"`
}

// SetDefaults applies sane defaults.
func (c *Config) SetDefaults() {
	if c.PrometheusPort == "" {
		c.PrometheusPort = ":9090"
	}
}
