package config

import "fmt"

// LoggingConfig controls log verbosity. Output format is selected through
// the APP_ENV variable (console in dev, JSON otherwise).
type LoggingConfig struct {
	Level string `json:"level"`
}

var logLevels = map[string]bool{
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

// SetDefaults applies sane defaults.
func (c *LoggingConfig) SetDefaults() {
	if c.Level == "" {
		c.Level = "info"
	}
}

// Validate checks the level name.
func (c LoggingConfig) Validate() error {
	if !logLevels[c.Level] {
		return fmt.Errorf("unknown log level %s", c.Level)
	}
	return nil
}

// InputConfig points the CLI at the snapshot files a pass consumes.
type InputConfig struct {
	ItemsPath  string `json:"items_path"`
	EventsPath string `json:"events_path"`
}

// OutputConfig controls where and how the CLI writes proposals.
type OutputConfig struct {
	// Format is "json" or "csv".
	Format string `json:"format"`
	// Path is the output file; empty means stdout.
	Path string `json:"path"`
}
