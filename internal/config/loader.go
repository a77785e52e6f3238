package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// For mocking in tests
var osUserHomeDir = os.UserHomeDir
var osGetwd = os.Getwd

const (
	userConfigDir    = ".config/calcctl"
	projectConfigDir = ".calcctl"
	configFileName   = "config.yaml"
	dotenvFileName   = ".env"

	// EnvPrefix prefixes every environment override, e.g. CALCCTL_PROVIDERS_EXTRAS.
	EnvPrefix = "CALCCTL_"
)

// LoadConfig loads the calcctl configuration by layering default, user, and
// project settings, then applying environment overrides.
func LoadConfig() (CalcctlConfig, error) {
	config := GetDefaultConfig()

	userConfigPath, err := getUserConfigPath()
	if err != nil {
		// user config is optional
		fmt.Fprintf(os.Stderr, "Warning: Could not determine user config path: %v\n", err)
	} else if config, err = overlayIfExists(config, userConfigPath); err != nil {
		return CalcctlConfig{}, fmt.Errorf("error loading user config from %s: %w", userConfigPath, err)
	}

	projectConfigPath, err := getProjectConfigPath()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Could not determine project config path: %v\n", err)
	} else if config, err = overlayIfExists(config, projectConfigPath); err != nil {
		return CalcctlConfig{}, fmt.Errorf("error loading project config from %s: %w", projectConfigPath, err)
	}

	wd, err := osGetwd()
	if err != nil {
		wd = "."
	}
	return finalize(config, filepath.Join(wd, dotenvFileName))
}

// LoadConfigFromPath loads configuration from a single directory, skipping
// the user and project layers. A .env file in the same directory is honored.
func LoadConfigFromPath(dir string) (CalcctlConfig, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return CalcctlConfig{}, fmt.Errorf("config directory %s: %w", dir, err)
	}
	if !info.IsDir() {
		return CalcctlConfig{}, fmt.Errorf("config path %s is not a directory", dir)
	}

	config, err := overlayIfExists(GetDefaultConfig(), filepath.Join(dir, configFileName))
	if err != nil {
		return CalcctlConfig{}, fmt.Errorf("error loading config from %s: %w", dir, err)
	}
	return finalize(config, filepath.Join(dir, dotenvFileName))
}

var getUserConfigPath = func() (string, error) {
	homeDir, err := osUserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, userConfigDir, configFileName), nil
}

var getProjectConfigPath = func() (string, error) {
	wd, err := osGetwd()
	if err != nil {
		return "", err
	}
	return filepath.Join(wd, projectConfigDir, configFileName), nil
}

func overlayIfExists(base CalcctlConfig, path string) (CalcctlConfig, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return base, nil
	}
	overlay, err := loadConfigFromFile(path)
	if err != nil {
		return CalcctlConfig{}, err
	}
	return mergeConfigs(base, overlay), nil
}

// loadConfigFromFile loads a CalcctlConfig from a YAML file.
func loadConfigFromFile(filePath string) (CalcctlConfig, error) {
	var config CalcctlConfig
	data, err := os.ReadFile(filePath)
	if err != nil {
		return CalcctlConfig{}, err
	}
	if err := yaml.Unmarshal(data, &config); err != nil {
		return CalcctlConfig{}, err
	}
	return config, nil
}

// mergeConfigs merges 'overlay' config into 'base' config.
func mergeConfigs(base, overlay CalcctlConfig) CalcctlConfig {
	merged := base

	if overlay.Providers.Extras != nil {
		merged.Providers.Extras = append([]string(nil), overlay.Providers.Extras...)
	}
	if overlay.Providers.Primary != "" {
		merged.Providers.Primary = overlay.Providers.Primary
	}

	if overlay.Logging.Level != "" {
		merged.Logging.Level = overlay.Logging.Level
	}

	// Enabled can only be switched on by an overlay
	if overlay.Tracing.Enabled {
		merged.Tracing.Enabled = true
	}
	if overlay.Tracing.Exporter != "" {
		merged.Tracing.Exporter = overlay.Tracing.Exporter
	}
	if overlay.Tracing.OTLPEndpoint != "" {
		merged.Tracing.OTLPEndpoint = overlay.Tracing.OTLPEndpoint
	}
	if overlay.Tracing.ServiceName != "" {
		merged.Tracing.ServiceName = overlay.Tracing.ServiceName
	}
	if overlay.Tracing.SampleRate > 0 {
		merged.Tracing.SampleRate = overlay.Tracing.SampleRate
	}

	return merged
}

// finalize loads the optional .env file, applies CALCCTL_* overrides and
// validates the result.
func finalize(config CalcctlConfig, dotenvPath string) (CalcctlConfig, error) {
	if _, err := os.Stat(dotenvPath); err == nil {
		if err := godotenv.Load(dotenvPath); err != nil {
			return CalcctlConfig{}, fmt.Errorf("load %s: %w", dotenvPath, err)
		}
	}

	if err := env.ParseWithOptions(&config, env.Options{Prefix: EnvPrefix}); err != nil {
		return CalcctlConfig{}, fmt.Errorf("parse env: %w", err)
	}

	if err := config.Validate(); err != nil {
		return CalcctlConfig{}, err
	}
	return config, nil
}

// Validate checks values that cannot be caught by YAML decoding.
func (c CalcctlConfig) Validate() error {
	switch c.Logging.Level {
	case "", "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("invalid logging.level %q", c.Logging.Level)
	}

	switch c.Tracing.Exporter {
	case "", "none", "stdout", "otlp":
	default:
		return fmt.Errorf("invalid tracing.exporter %q", c.Tracing.Exporter)
	}

	for _, name := range c.Providers.Extras {
		if name == "" {
			return fmt.Errorf("providers.extras must not contain empty names")
		}
	}
	return nil
}

// GetUserConfigDir returns the user configuration directory path
func GetUserConfigDir() (string, error) {
	homeDir, err := osUserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, userConfigDir), nil
}
