package app

import (
	"io"
	"os"

	"calcctl/internal/config"
)

// Config holds the application configuration
type Config struct {
	// Debug settings
	Debug bool

	// ConfigPath, when set, replaces the layered configuration lookup.
	ConfigPath string

	// Extras overrides providers.extras when ExtrasSet is true, so an empty
	// flag value can still mean "no extras".
	Extras    []string
	ExtrasSet bool

	// Primary overrides providers.primary when non-empty.
	Primary string

	// Output receives log lines
	Output io.Writer

	// Calculator configuration, filled in by NewApplication
	CalcctlConfig *config.CalcctlConfig
}

// NewConfig creates a new application configuration
func NewConfig(debug bool, configPath string) *Config {
	return &Config{
		Debug:      debug,
		ConfigPath: configPath,
		Output:     os.Stdout,
	}
}

// applyOverrides copies command line choices over the loaded file config.
func (c *Config) applyOverrides() {
	if c.ExtrasSet {
		c.CalcctlConfig.Providers.Extras = append([]string(nil), c.Extras...)
	}
	if c.Primary != "" {
		c.CalcctlConfig.Providers.Primary = c.Primary
	}
	if c.Debug {
		c.CalcctlConfig.Logging.Level = "debug"
	}
}
