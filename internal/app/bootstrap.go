package app

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"

	"calcctl/internal/calculator"
	"calcctl/internal/config"
	"calcctl/internal/tracing"
	"calcctl/pkg/logging"
)

const shutdownTimeout = 5 * time.Second

// Application is the main application structure that bootstraps and runs calcctl
type Application struct {
	config    *Config
	providers *Providers
	tracer    *tracing.Provider
	spans     *tracing.SpanHook
	hook      calculator.Hook
}

// NewApplication loads configuration, sets up logging and tracing, and wires
// the calculator providers.
func NewApplication(cfg *Config) (*Application, error) {
	var calcCfg config.CalcctlConfig
	var err error

	if cfg.ConfigPath != "" {
		calcCfg, err = config.LoadConfigFromPath(cfg.ConfigPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load calcctl configuration from path %s: %w", cfg.ConfigPath, err)
		}
	} else {
		calcCfg, err = config.LoadConfig()
		if err != nil {
			return nil, fmt.Errorf("failed to load calcctl configuration: %w", err)
		}
	}
	cfg.CalcctlConfig = &calcCfg
	cfg.applyOverrides()

	level, err := logging.ParseLevel(calcCfg.Logging.Level)
	if err != nil {
		return nil, err
	}
	logging.InitForCLI(level, cfg.Output)

	if cfg.ConfigPath != "" {
		logging.Info("Bootstrap", "Loaded configuration from custom path: %s", cfg.ConfigPath)
	} else {
		logging.Debug("Bootstrap", "Loaded configuration using layered approach")
	}

	tracer, err := tracing.NewProvider(calcCfg.Tracing)
	if err != nil {
		logging.Error("Bootstrap", err, "Failed to initialize tracing")
		return nil, fmt.Errorf("failed to initialize tracing: %w", err)
	}

	spans := tracing.NewSpanHook(context.Background(), tracer.Tracer())
	hook := calculator.MultiHook{calculator.LoggingHook{Subsystem: "Calculator"}, spans}

	providers, err := InitializeProviders(calcCfg.Providers, hook)
	if err != nil {
		logging.Error("Bootstrap", err, "Failed to initialize providers")
		_ = tracer.Shutdown(context.Background())
		return nil, fmt.Errorf("failed to initialize providers: %w", err)
	}

	return &Application{
		config:    cfg,
		providers: providers,
		tracer:    tracer,
		spans:     spans,
		hook:      hook,
	}, nil
}

// Providers exposes the wired registry and selection outcome.
func (a *Application) Providers() *Providers {
	return a.providers
}

// Run resolves the default calculator and performs one calculation.
func (a *Application) Run(ctx context.Context) error {
	defer a.Close()

	runID := uuid.New().String()
	a.spans.SetRoot(ctx, attribute.String("calcctl.run_id", runID))

	calc, err := a.providers.Default()
	if err != nil {
		logging.Error("Runner", err, "Cannot run calculation")
		return err
	}

	logging.InfoAttrs("Runner", []slog.Attr{slog.String("run_id", runID)}, ">> CmdLineRunner#run")
	calculator.NewSimpleCalculator(calc, a.hook).DoCalculation()
	logging.InfoAttrs("Runner", []slog.Attr{slog.String("run_id", runID)}, "<< CmdLineRunner#run")

	return nil
}

// Close flushes pending spans.
func (a *Application) Close() {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := a.tracer.Shutdown(ctx); err != nil {
		logging.Warn("Bootstrap", "Failed to flush traces: %v", err)
	}
}
