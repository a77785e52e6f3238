package config

// GetDefaultConfig returns the configuration used when no file overrides it:
// only the built-in calculators, info logging, tracing off.
func GetDefaultConfig() CalcctlConfig {
	return CalcctlConfig{
		Providers: ProvidersConfig{
			Extras: []string{},
		},
		Logging: LoggingConfig{
			Level: "info",
		},
		Tracing: TracingConfig{
			Enabled:      false,
			Exporter:     "stdout",
			OTLPEndpoint: "localhost:4317",
			ServiceName:  "calcctl",
			SampleRate:   1.0,
		},
	}
}
