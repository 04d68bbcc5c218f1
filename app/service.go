package app

import (
	"context"
	"fmt"
	"time"

	"github.com/maelqr/studyload/config"
	"github.com/maelqr/studyload/core/estimate"
	coremetrics "github.com/maelqr/studyload/core/metrics"
	"github.com/maelqr/studyload/core/model"
	"github.com/maelqr/studyload/core/planner"
	"github.com/maelqr/studyload/core/scoring"
	"github.com/maelqr/studyload/infra/logger"
	"github.com/maelqr/studyload/infra/metrics"
	"github.com/maelqr/studyload/internal/eventbus"
)

// Service wires the scoring, estimation and planning components together.
// It is constructed once and shared by every request path; no component
// keeps process-wide mutable state.
type Service struct {
	Estimator *estimate.HourEstimator
	Packer    *planner.Packer
	Analyzer  *planner.Analyzer

	weights  *scoring.WeightScorer
	priority scoring.PriorityScorer
	bus      *eventbus.Bus[estimate.Feedback]
	sink     coremetrics.MetricsSink
	log      logger.Logger
	cfg      *config.Config
}

// New creates a Service from the configuration.
func New(cfg *config.Config) (*Service, error) {
	logg := logger.New("service")

	var sinks []coremetrics.MetricsSink
	if cfg.Metrics.PrometheusEnabled {
		sink, err := metrics.NewPromSink()
		if err != nil {
			return nil, fmt.Errorf("prom sink: %w", err)
		}
		sinks = append(sinks, sink)
	}
	if cfg.Metrics.InfluxEnabled {
		sinks = append(sinks, metrics.NewInfluxSinkWithFallback(
			cfg.Metrics.InfluxURL, cfg.Metrics.InfluxToken, cfg.Metrics.InfluxOrg, cfg.Metrics.InfluxBucket))
	}
	var sink coremetrics.MetricsSink = coremetrics.NopSink{}
	if len(sinks) == 1 {
		sink = sinks[0]
	} else if len(sinks) > 1 {
		sink = metrics.NewMultiSink(sinks...)
	}

	return &Service{
		Estimator: estimate.NewHourEstimator(cfg.Estimator, logger.New("estimator"), sink),
		Packer:    planner.New(cfg.Planner, logger.New("planner")),
		Analyzer:  planner.NewAnalyzer(cfg.Planner),
		weights:   scoring.NewWeightScorer(),
		bus:       eventbus.New[estimate.Feedback](),
		sink:      sink,
		log:       logg,
		cfg:       cfg,
	}, nil
}

// Enrich attaches weight, predicted hours and priority to each task in
// the batch. Input tasks are not mutated.
func (s *Service) Enrich(tasks []model.Task, now time.Time) []model.Task {
	out := make([]model.Task, len(tasks))
	for i, t := range tasks {
		t.WeightScore = s.weights.Score(t.Type, t.GradePercentage, t.InstructorKeywords)
		t.PredictedHours = s.Estimator.Predict(t)
		t.PriorityScore = s.priority.Score(t.WeightScore, t.DueDate, t.PredictedHours, now)
		out[i] = t
	}
	return out
}

// PlanDaily packs an enriched batch into a single day's budget.
func (s *Service) PlanDaily(tasks []model.Task, availableHours float64, date time.Time) model.DailySchedule {
	day := s.Packer.PackDay(tasks, availableHours, date)
	s.recordSchedule("daily", date, 1, len(day.Items), day.TotalAllocatedHours, 0)
	return day
}

// PlanWeekly packs an enriched batch into a seven-day window and returns
// the schedule with its workload analysis and recommendations.
func (s *Service) PlanWeekly(tasks []model.Task, dailyHours map[string]float64, start time.Time) (model.WeeklySchedule, model.WorkloadAnalysis, []string) {
	week := s.Packer.PackWeek(tasks, dailyHours, start)
	analysis := s.Analyzer.Analyze(model.PlanFromWeekly(week))
	recs := planner.Recommend(analysis)
	s.recordSchedule("weekly", start, 7, week.TotalTasksScheduled, week.TotalHoursAllocated, len(analysis.OverloadDays))
	return week, analysis, recs
}

// PlanSpread balances whole tasks across a multi-day plan and returns
// the plan with its workload analysis and recommendations.
func (s *Service) PlanSpread(tasks []model.Task, start time.Time, days int) (model.Plan, model.WorkloadAnalysis, []string) {
	plan := s.Packer.Spread(tasks, start, days)
	analysis := s.Analyzer.Analyze(plan)
	recs := planner.Recommend(analysis)
	var tasksScheduled int
	for _, d := range plan.Days {
		tasksScheduled += len(d.Items)
	}
	s.recordSchedule("spread", start, len(plan.Days), tasksScheduled, analysis.TotalHours, len(analysis.OverloadDays))
	return plan, analysis, recs
}

// Feedback publishes a completion report to the feedback loop.
func (s *Service) Feedback(t model.Task, actualHours float64) {
	s.bus.Publish(estimate.Feedback{Task: t, ActualHours: actualHours})
}

// Run starts the metrics server and the feedback loop, blocking until
// the context is cancelled.
func (s *Service) Run(ctx context.Context) error {
	if s.cfg.Metrics.PrometheusEnabled {
		go func() {
			if err := metrics.StartPromServer(ctx, s.cfg.Metrics.PrometheusPort); err != nil {
				s.log.Errorf("prom server: %v", err)
			}
		}()
	}

	sub := s.bus.Subscribe()
	for {
		select {
		case <-ctx.Done():
			return nil
		case fb, ok := <-sub:
			if !ok {
				return nil
			}
			s.handleFeedback(fb)
		}
	}
}

// handleFeedback records the sample and retrains once enough samples
// accumulated while the learned model is still inactive.
func (s *Service) handleFeedback(fb estimate.Feedback) {
	s.Estimator.Update(fb.Task, fb.ActualHours)
	if s.Estimator.Trained() {
		return
	}
	n := s.Estimator.SampleCount()
	if n < s.cfg.Estimator.MinTrainingSamples {
		return
	}
	err := s.Estimator.Train()
	if recErr := s.sink.RecordTraining(coremetrics.TrainingEvent{
		Samples: n, Accepted: err == nil, Time: time.Now(),
	}); recErr != nil {
		s.log.Debugf("record training: %v", recErr)
	}
	if err != nil {
		s.log.Warnf("estimator training rejected: %v", err)
	}
}

func (s *Service) recordSchedule(mode string, start time.Time, days, tasks int, hours float64, overload int) {
	if err := s.sink.RecordSchedule(coremetrics.ScheduleEvent{
		Start:          start,
		Days:           days,
		TasksScheduled: tasks,
		HoursAllocated: hours,
		OverloadDays:   overload,
		Mode:           mode,
		Time:           time.Now(),
	}); err != nil {
		s.log.Debugf("record schedule: %v", err)
	}
}

// Close releases resources held by the service.
func (s *Service) Close() error {
	s.bus.Close()
	return nil
}
