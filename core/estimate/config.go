package estimate

import "fmt"

// Config defines estimator parameters loaded from configuration.
type Config struct {
	// MinTrainingSamples is the hard floor below which Train rejects the
	// feedback set.
	MinTrainingSamples int `json:"min_training_samples"`
	// Rounds is the number of boosting rounds fitted per training run.
	Rounds int `json:"rounds"`
	// LearningRate shrinks each boosting step.
	LearningRate float64 `json:"learning_rate"`
}

// SetDefaults applies sane defaults.
func (c *Config) SetDefaults() {
	if c.MinTrainingSamples == 0 {
		c.MinTrainingSamples = 10
	}
	if c.Rounds == 0 {
		c.Rounds = 100
	}
	if c.LearningRate == 0 {
		c.LearningRate = 0.1
	}
}

// Validate checks mandatory fields.
func (c Config) Validate() error {
	if c.MinTrainingSamples < 2 {
		return fmt.Errorf("min_training_samples must be at least 2")
	}
	if c.Rounds <= 0 {
		return fmt.Errorf("rounds must be positive")
	}
	if c.LearningRate <= 0 || c.LearningRate > 1 {
		return fmt.Errorf("learning_rate must be in (0,1]")
	}
	return nil
}
