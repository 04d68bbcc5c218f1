package estimate

import (
	"errors"
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	coremetrics "github.com/maelqr/studyload/core/metrics"
	"github.com/maelqr/studyload/core/model"
)

type recordingSink struct {
	coremetrics.NopSink
	events []coremetrics.PredictionEvent
}

func (s *recordingSink) RecordPrediction(ev coremetrics.PredictionEvent) error {
	s.events = append(s.events, ev)
	return nil
}

func feedbackTask(i int) model.Task {
	return model.Task{
		ID:              fmt.Sprintf("t%d", i),
		Type:            model.TaskAssignment,
		GradePercentage: float64(i * 5),
		DueDate:         model.NewDate(2026, 5, 1+i%20),
	}
}

func TestTrainRejectsSmallSets(t *testing.T) {
	e := NewHourEstimator(Config{}, nil, nil)
	for i := 0; i < 9; i++ {
		e.Update(feedbackTask(i), float64(i+1))
	}
	err := e.Train()
	require.True(t, errors.Is(err, ErrInsufficientData))
	assert.False(t, e.Trained())
	assert.Equal(t, 9, e.SampleCount())
}

func TestTrainActivatesModel(t *testing.T) {
	e := NewHourEstimator(Config{}, nil, nil)
	for i := 0; i < 12; i++ {
		e.Update(feedbackTask(i), 2+float64(i%4))
	}
	require.NoError(t, e.Train())
	assert.True(t, e.Trained())

	h := e.Predict(feedbackTask(3))
	if h < MinHours || h > MaxHours {
		t.Fatalf("learned prediction %v outside clamp", h)
	}
	st := e.Stats()
	assert.Equal(t, "gradient-boosted", st.ActivePredictor)
	assert.Equal(t, 12, st.Samples)
}

func TestPredictFallsBackWhenModelMissing(t *testing.T) {
	sink := &recordingSink{}
	e := NewHourEstimator(Config{}, nil, sink)
	// Simulate a trained flag with a missing model reference.
	e.mu.Lock()
	e.trained = true
	e.model = nil
	e.mu.Unlock()

	h := e.Predict(model.Task{ID: "x", Type: model.TaskQuiz})
	if h < MinHours || h > MaxHours {
		t.Fatalf("fallback prediction %v outside clamp", h)
	}
	require.Len(t, sink.events, 1)
	assert.Equal(t, "rule", sink.events[0].Source)
	// A single failed prediction must not revoke the trained state.
	assert.True(t, e.Trained())
}

func TestPredictFallsBackOnNonFinite(t *testing.T) {
	sink := &recordingSink{}
	e := NewHourEstimator(Config{}, nil, sink)
	e.mu.Lock()
	e.trained = true
	e.model = &boostedModel{bias: math.NaN()}
	e.mu.Unlock()

	h := e.Predict(model.Task{ID: "y", Type: model.TaskLab})
	if h < MinHours || h > MaxHours {
		t.Fatalf("fallback prediction %v outside clamp", h)
	}
	require.Len(t, sink.events, 1)
	assert.Equal(t, "fallback", sink.events[0].Source)
	assert.True(t, e.Trained())
}

func TestUpdateClampsNegativeHours(t *testing.T) {
	e := NewHourEstimator(Config{}, nil, nil)
	e.Update(feedbackTask(0), -3)
	e.mu.RLock()
	defer e.mu.RUnlock()
	require.Len(t, e.samples, 1)
	assert.Equal(t, 0.0, e.samples[0].hours)
}
