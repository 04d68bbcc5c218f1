package metrics

import (
	"errors"

	coremetrics "github.com/maelqr/studyload/core/metrics"
)

// MultiSink fans every event out to several sinks, joining their errors.
type MultiSink struct {
	sinks []coremetrics.MetricsSink
}

// NewMultiSink combines the given sinks into one.
func NewMultiSink(sinks ...coremetrics.MetricsSink) *MultiSink {
	return &MultiSink{sinks: sinks}
}

func (m *MultiSink) RecordPrediction(ev coremetrics.PredictionEvent) error {
	var errs []error
	for _, s := range m.sinks {
		if err := s.RecordPrediction(ev); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (m *MultiSink) RecordSchedule(ev coremetrics.ScheduleEvent) error {
	var errs []error
	for _, s := range m.sinks {
		if err := s.RecordSchedule(ev); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (m *MultiSink) RecordTraining(ev coremetrics.TrainingEvent) error {
	var errs []error
	for _, s := range m.sinks {
		if err := s.RecordTraining(ev); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
