package planner

import "fmt"

// Config defines planning parameters loaded from configuration.
type Config struct {
	// MaxDailyHours is the workload ceiling used by the balanced
	// distribution and the overload check.
	MaxDailyHours float64 `json:"max_daily_hours"`
	// StressThreshold flags a day whose mean stress exceeds it.
	StressThreshold float64 `json:"stress_threshold"`
	// HorizonDays is the default length of a balanced distribution.
	HorizonDays int `json:"horizon_days"`
	// DefaultDailyHours is the budget assumed for weekdays missing from a
	// weekly request. Zero means such days get no allocation.
	DefaultDailyHours float64 `json:"default_daily_hours"`
}

// SetDefaults applies sane defaults.
func (c *Config) SetDefaults() {
	if c.MaxDailyHours == 0 {
		c.MaxDailyHours = 8.0
	}
	if c.StressThreshold == 0 {
		c.StressThreshold = 0.7
	}
	if c.HorizonDays == 0 {
		c.HorizonDays = 7
	}
}

// Validate checks mandatory fields.
func (c Config) Validate() error {
	if c.MaxDailyHours <= 0 {
		return fmt.Errorf("max_daily_hours must be positive")
	}
	if c.StressThreshold <= 0 || c.StressThreshold > 1 {
		return fmt.Errorf("stress_threshold must be in (0,1]")
	}
	if c.HorizonDays <= 0 {
		return fmt.Errorf("horizon_days must be positive")
	}
	if c.DefaultDailyHours < 0 {
		return fmt.Errorf("default_daily_hours must not be negative")
	}
	return nil
}
