// Package config loads and validates the engine configuration. Structural
// validation happens here, before the planning core runs: the core itself
// treats its configuration as a precondition and never re-validates it.
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

	"github.com/avelys/blockplan/metrics"
)

// Config is the root configuration document.
type Config struct {
	Planner PlannerConfig  `json:"planner"`
	Window  WindowConfig   `json:"window"`
	Scoring ScoringConfig  `json:"scoring"`
	Lanes   []LaneConfig   `json:"lanes"`
	Metrics metrics.Config `json:"metrics"`
	Logging LoggingConfig  `json:"logging"`
	Input   InputConfig    `json:"input"`
	Output  OutputConfig   `json:"output"`
}

// Load reads the configuration from a JSON or YAML file, applies BP_
// environment overrides, fills defaults and validates every section.
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
	if err := k.Load(env.Provider("BP_", "__", func(s string) string {
		s = strings.TrimPrefix(strings.ToLower(s), "bp_")
		return strings.ReplaceAll(s, "__", ".")
	}), nil); err != nil {
		return nil, err
	}
	var cfg Config
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "json"}); err != nil {
		return nil, err
	}
	if err := cfg.Finalize(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Finalize applies defaults and validates all sections. It is exposed so
// tests and embedders can build configs without a file.
func (c *Config) Finalize() error {
	c.Planner.SetDefaults()
	c.Window.SetDefaults()
	c.Scoring.SetDefaults()
	c.Logging.SetDefaults()
	c.Metrics.SetDefaults()
	if err := c.Planner.Validate(); err != nil {
		return err
	}
	if err := c.Window.Validate(); err != nil {
		return err
	}
	if err := c.Scoring.Validate(); err != nil {
		return err
	}
	if err := c.Logging.Validate(); err != nil {
		return err
	}
	for _, l := range c.Lanes {
		if err := l.Validate(); err != nil {
			return err
		}
	}
	return nil
}
