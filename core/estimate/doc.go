// Package estimate predicts the effort in hours a task requires. Two
// interchangeable predictors sit behind one estimator: a deterministic
// rule formula and a gradient-boosted regressor trained on completion
// feedback. The estimator owns the trained flag and swaps the model
// atomically on retraining; a failing learned prediction falls back to
// the rule formula for that call only.
package estimate
