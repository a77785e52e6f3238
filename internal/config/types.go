package config

// CalcctlConfig is the top-level configuration structure for calcctl.
type CalcctlConfig struct {
	Providers ProvidersConfig `yaml:"providers" envPrefix:"PROVIDERS_"`
	Logging   LoggingConfig   `yaml:"logging" envPrefix:"LOGGING_"`
	Tracing   TracingConfig   `yaml:"tracing" envPrefix:"TRACING_"`
}

// ProvidersConfig controls which calculators are registered on top of the
// two built-ins.
type ProvidersConfig struct {
	// Extras are the names of user-defined calculators, each wrapping the
	// decorated built-in. Only a single extra yields an automatic default.
	Extras []string `yaml:"extras,omitempty" env:"EXTRAS" envSeparator:","`

	// Primary, when set, is flagged as the default before the selector runs.
	Primary string `yaml:"primary,omitempty" env:"PRIMARY"`
}

// LoggingConfig holds logging preferences.
type LoggingConfig struct {
	Level string `yaml:"level,omitempty" env:"LEVEL"` // debug, info, warn, error
}

// TracingConfig configures the span exporter used by the tracing hook.
type TracingConfig struct {
	Enabled      bool    `yaml:"enabled,omitempty" env:"ENABLED"`
	Exporter     string  `yaml:"exporter,omitempty" env:"EXPORTER"` // none, stdout, otlp
	OTLPEndpoint string  `yaml:"otlpEndpoint,omitempty" env:"OTLP_ENDPOINT"`
	ServiceName  string  `yaml:"serviceName,omitempty" env:"SERVICE_NAME"`
	SampleRate   float64 `yaml:"sampleRate,omitempty" env:"SAMPLE_RATE"`
}
