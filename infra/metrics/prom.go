package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"

	coremetrics "github.com/maelqr/studyload/core/metrics"
)

// PromSink records scheduling events in Prometheus metrics.
type PromSink struct {
	predictions *prometheus.CounterVec
	hours       prometheus.Histogram
	overload    prometheus.Gauge
	training    *prometheus.CounterVec
}

// NewPromSink registers the sink's metrics on the default Prometheus
// registerer. The HTTP server exposing them is started separately.
func NewPromSink() (*PromSink, error) {
	return NewPromSinkWithRegistry(prometheus.DefaultRegisterer)
}

// NewPromSinkWithRegistry registers metrics on the provided registerer.
// A nil registerer defaults to the global Prometheus registerer.
func NewPromSinkWithRegistry(reg prometheus.Registerer) (*PromSink, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	predictions := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "workload_predictions_total",
		Help: "Total number of hour predictions",
	}, []string{"source", "task_type"})
	hours := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "workload_predicted_hours",
		Help:    "Distribution of predicted task hours",
		Buckets: []float64{0.5, 1, 2, 4, 8, 12, 20, 40},
	})
	overload := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "workload_overload_days",
		Help: "Overloaded days in the most recent schedule",
	})
	training := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "workload_training_runs_total",
		Help: "Total number of estimator training attempts",
	}, []string{"accepted"})

	if err := reg.Register(predictions); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			predictions = are.ExistingCollector.(*prometheus.CounterVec)
		} else {
			return nil, err
		}
	}
	if err := reg.Register(hours); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			hours = are.ExistingCollector.(prometheus.Histogram)
		} else {
			return nil, err
		}
	}
	if err := reg.Register(overload); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			overload = are.ExistingCollector.(prometheus.Gauge)
		} else {
			return nil, err
		}
	}
	if err := reg.Register(training); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			training = are.ExistingCollector.(*prometheus.CounterVec)
		} else {
			return nil, err
		}
	}

	return &PromSink{predictions: predictions, hours: hours, overload: overload, training: training}, nil
}

// RecordPrediction increments the prediction counter and observes the
// predicted hours.
func (s *PromSink) RecordPrediction(ev coremetrics.PredictionEvent) error {
	s.predictions.WithLabelValues(ev.Source, string(ev.TaskType)).Inc()
	s.hours.Observe(ev.Hours)
	return nil
}

// RecordSchedule sets the overload gauge for the latest packing run.
func (s *PromSink) RecordSchedule(ev coremetrics.ScheduleEvent) error {
	s.overload.Set(float64(ev.OverloadDays))
	return nil
}

// RecordTraining counts a training attempt by outcome.
func (s *PromSink) RecordTraining(ev coremetrics.TrainingEvent) error {
	s.training.WithLabelValues(strconv.FormatBool(ev.Accepted)).Inc()
	return nil
}
