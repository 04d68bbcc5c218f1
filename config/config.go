package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/maelqr/studyload/core/estimate"
	"github.com/maelqr/studyload/core/metrics"
	"github.com/maelqr/studyload/core/planner"
)

// Config is the root configuration of the service.
type Config struct {
	Planner   planner.Config  `json:"planner"`
	Estimator estimate.Config `json:"estimator"`
	Metrics   metrics.Config  `json:"metrics"`
}

// Default returns a configuration with all defaults applied and no sinks
// enabled.
func Default() *Config {
	cfg := &Config{}
	cfg.Planner.SetDefaults()
	cfg.Estimator.SetDefaults()
	cfg.Metrics.SetDefaults()
	return cfg
}

// Load reads the configuration file (yaml or json by extension) and
// applies SL_-prefixed environment overrides.
func Load(path string) (*Config, error) {
	k := koanf.New(".")
	ext := strings.ToLower(filepath.Ext(path))
	var parser koanf.Parser
	switch ext {
	case ".yaml", ".yml":
		parser = yaml.Parser()
	case ".json":
		parser = json.Parser()
	default:
		return nil, fmt.Errorf("unsupported config format: %s", ext)
	}
	if err := k.Load(file.Provider(path), parser); err != nil {
		return nil, err
	}
	// Optional environment overrides
	if err := k.Load(env.Provider("SL_", "__", func(s string) string {
		s = strings.TrimPrefix(strings.ToLower(s), "sl_")
		return strings.ReplaceAll(s, "__", ".")
	}), nil); err != nil {
		return nil, err
	}
	var cfg Config
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "json"}); err != nil {
		return nil, err
	}
	cfg.Planner.SetDefaults()
	cfg.Estimator.SetDefaults()
	cfg.Metrics.SetDefaults()
	if err := cfg.Planner.Validate(); err != nil {
		return nil, err
	}
	if err := cfg.Estimator.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}
