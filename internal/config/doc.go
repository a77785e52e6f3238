// Package config provides configuration management for calcctl.
//
// Configuration is loaded and merged in the following order, later sources
// overriding earlier ones:
//
//  1. Defaults (built-in calculators only, info logging, tracing off)
//  2. User configuration (~/.config/calcctl/config.yaml)
//  3. Project configuration (./.calcctl/config.yaml)
//  4. A .env file next to the project configuration
//  5. CALCCTL_* environment variables
//
// LoadConfigFromPath replaces layers 2 and 3 with a single directory.
//
// # Configuration Structure
//
//	providers:
//	  extras: ["userDefined"]   # calculators layered on the decorated built-in
//	  primary: ""               # optional default chosen before selection
//	logging:
//	  level: info
//	tracing:
//	  enabled: false
//	  exporter: stdout          # none, stdout or otlp
//	  otlpEndpoint: localhost:4317
//	  serviceName: calcctl
//	  sampleRate: 1.0
//
// # Environment Variables
//
//	CALCCTL_PROVIDERS_EXTRAS=userDefined,another
//	CALCCTL_PROVIDERS_PRIMARY=userDefined
//	CALCCTL_LOGGING_LEVEL=debug
//	CALCCTL_TRACING_ENABLED=true
package config
