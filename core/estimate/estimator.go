package estimate

import (
	"errors"
	"math"
	"sync"
	"time"

	coremetrics "github.com/maelqr/studyload/core/metrics"
	"github.com/maelqr/studyload/core/model"
	"github.com/maelqr/studyload/infra/logger"
)

// Estimator predicts effort for a task and accepts completion feedback.
type Estimator interface {
	Predict(t model.Task) float64
	Update(t model.Task, actualHours float64)
}

// ErrInsufficientData indicates the feedback set is below the configured
// training floor. The estimator keeps its current state.
var ErrInsufficientData = errors.New("insufficient training data")

type sample struct {
	features []float64
	hours    float64
}

// HourEstimator selects between the rule formula and a trained regressor.
// The trained model reference is replaced atomically on retraining and is
// otherwise read-only; reads never block a concurrent retrain.
type HourEstimator struct {
	cfg  Config
	rule *RuleEstimator
	log  logger.Logger
	sink coremetrics.PredictionRecorder

	mu      sync.RWMutex
	model   *boostedModel
	scaler  *scaler
	trained bool
	samples []sample
}

// Stats describes the estimator's current state.
type Stats struct {
	Trained         bool   `json:"trained"`
	Samples         int    `json:"samples"`
	ActivePredictor string `json:"active_predictor"`
}

// NewHourEstimator builds an estimator starting in rule-based mode.
func NewHourEstimator(cfg Config, log logger.Logger, sink coremetrics.PredictionRecorder) *HourEstimator {
	cfg.SetDefaults()
	if log == nil {
		log = logger.NopLogger{}
	}
	if sink == nil {
		sink = coremetrics.NopSink{}
	}
	return &HourEstimator{cfg: cfg, rule: NewRuleEstimator(), log: log, sink: sink}
}

// Predict returns the estimated hours for the task. When trained, the
// learned model serves the call; any failure there falls back to the rule
// formula for that call only without revoking the trained state.
func (e *HourEstimator) Predict(t model.Task) float64 {
	e.mu.RLock()
	m, sc, trained := e.model, e.scaler, e.trained
	e.mu.RUnlock()

	source := "rule"
	var hours float64
	if trained && m != nil {
		if h, ok := predictLearned(m, sc, t, time.Now()); ok {
			hours, source = h, "model"
		} else {
			e.log.Warnf("learned prediction failed for task %s, using rule fallback", t.ID)
			hours, source = e.rule.Predict(t), "fallback"
		}
	} else {
		hours = e.rule.Predict(t)
	}

	if err := e.sink.RecordPrediction(coremetrics.PredictionEvent{
		TaskID: t.ID, TaskType: t.Type, Hours: hours, Source: source, Time: time.Now(),
	}); err != nil {
		e.log.Debugf("record prediction: %v", err)
	}
	return hours
}

func predictLearned(m *boostedModel, sc *scaler, t model.Task, now time.Time) (float64, bool) {
	x := features(t, now)
	if sc != nil {
		x = sc.transform(x)
	}
	p := m.predict(x)
	if math.IsNaN(p) || math.IsInf(p, 0) {
		return 0, false
	}
	return clampHours(p), true
}

// Update records completion feedback for later training. Negative actual
// hours degrade to zero rather than rejecting the sample.
func (e *HourEstimator) Update(t model.Task, actualHours float64) {
	if actualHours < 0 {
		e.log.Warnf("negative actual hours for task %s, recording 0", t.ID)
		actualHours = 0
	}
	s := sample{features: features(t, time.Now()), hours: actualHours}
	e.mu.Lock()
	e.samples = append(e.samples, s)
	n := len(e.samples)
	e.mu.Unlock()
	e.log.Debugw("feedback recorded", map[string]any{
		"task_id": t.ID, "actual_hours": actualHours, "samples": n,
	})
}

// Train fits the regressor on the recorded feedback. Fewer samples than
// the configured floor is a precondition failure: the call returns
// ErrInsufficientData and the current predictor stays active. On success
// the new model and scaler replace the old ones in one swap.
func (e *HourEstimator) Train() error {
	e.mu.RLock()
	n := len(e.samples)
	X := make([][]float64, n)
	y := make([]float64, n)
	for i, s := range e.samples {
		X[i] = s.features
		y[i] = s.hours
	}
	e.mu.RUnlock()

	if n < e.cfg.MinTrainingSamples {
		return ErrInsufficientData
	}

	sc := fitScaler(X)
	scaled := make([][]float64, n)
	for i := range X {
		scaled[i] = sc.transform(X[i])
	}
	m := fitBoosted(scaled, y, e.cfg.Rounds, e.cfg.LearningRate)

	e.mu.Lock()
	e.model = m
	e.scaler = sc
	e.trained = true
	e.mu.Unlock()
	e.log.Infof("estimator trained on %d samples (%d stumps)", n, len(m.stumps))
	return nil
}

// Trained reports whether a learned model is active.
func (e *HourEstimator) Trained() bool {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.trained
}

// SampleCount returns the number of stored feedback samples.
func (e *HourEstimator) SampleCount() int {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return len(e.samples)
}

// Stats returns a snapshot of the estimator state.
func (e *HourEstimator) Stats() Stats {
	e.mu.RLock()
	defer e.mu.RUnlock()
	active := "rule"
	if e.trained {
		active = "gradient-boosted"
	}
	return Stats{Trained: e.trained, Samples: len(e.samples), ActivePredictor: active}
}
