package app

import (
	"fmt"

	"calcctl/internal/calculator"
	"calcctl/internal/capability"
	"calcctl/internal/config"
	"calcctl/internal/primary"
	"calcctl/pkg/logging"
)

// Identifiers of the two calculators that are always registered.
const (
	BaseID      = "simpleCoreCalculatorService"
	DecoratedID = "notSoSimpleCoreCalculatorService"
)

// BuiltIns is the built-in set handed to the selector.
var BuiltIns = primary.BuiltIns{Base: BaseID, Decorated: DecoratedID}

// Providers holds the wired calculator chain and the outcome of selection.
type Providers struct {
	Registry  *capability.Registry[calculator.Calculator]
	Simple    *calculator.Simple
	Decorated *calculator.Decorated
	Extras    []*calculator.UserDefined
	Selection primary.Result
}

// InitializeProviders builds the decorator chain, registers every calculator,
// applies an upstream primary if configured, and runs the selector once.
func InitializeProviders(cfg config.ProvidersConfig, hook calculator.Hook) (*Providers, error) {
	registry := capability.NewRegistry[calculator.Calculator]()
	registry.OnRegister(func(e capability.Entry[calculator.Calculator]) {
		logging.Debug("Providers", "Registered calculator %s", e.ID)
	})
	registry.OnDefault(func(e capability.Entry[calculator.Calculator]) {
		logging.Debug("Providers", "Calculator %s flagged as default", e.ID)
	})

	simple := calculator.NewSimple(hook)
	decorated := calculator.NewDecorated(simple, hook)

	if err := registry.Register(BaseID, simple); err != nil {
		return nil, fmt.Errorf("failed to register built-in calculator: %w", err)
	}
	if err := registry.Register(DecoratedID, decorated); err != nil {
		return nil, fmt.Errorf("failed to register built-in calculator: %w", err)
	}

	p := &Providers{
		Registry:  registry,
		Simple:    simple,
		Decorated: decorated,
	}

	for _, name := range cfg.Extras {
		extra := calculator.NewUserDefined(name, decorated, hook)
		if err := registry.Register(name, extra); err != nil {
			return nil, fmt.Errorf("failed to register calculator %s: %w", name, err)
		}
		p.Extras = append(p.Extras, extra)
	}

	if cfg.Primary != "" {
		if err := registry.SetDefault(cfg.Primary); err != nil {
			return nil, fmt.Errorf("failed to apply configured primary: %w", err)
		}
		logging.Info("Providers", "Configured primary calculator: %s", cfg.Primary)
	}

	result, err := primary.NewSelector(registry, BuiltIns).Select()
	if err != nil {
		return nil, err
	}
	p.Selection = result

	switch result.Outcome {
	case primary.OutcomeSelected:
		logging.Info("Providers", "Selected %s as default calculator (%d registered)", result.ID, result.Total)
	case primary.OutcomeKept:
		logging.Info("Providers", "Keeping %s as default calculator (%d registered)", result.ID, result.Total)
	case primary.OutcomeSkipped:
		if id, ok := registry.DefaultID(); ok {
			logging.Info("Providers", "Selection skipped for %d calculators; configured primary %s stays default", result.Total, id)
			break
		}
		logging.Warn("Providers", "No default calculator selected: %d registered, expected %d or %d",
			result.Total, BuiltIns.Size(), BuiltIns.Size()+1)
	}

	return p, nil
}

// Default returns the default calculator, or a configuration error that
// explains why none was chosen.
func (p *Providers) Default() (calculator.Calculator, error) {
	calc, err := p.Registry.GetDefault()
	if err != nil {
		return nil, fmt.Errorf("no default calculator among %d registered %v; register at most one extra or set providers.primary: %w",
			p.Registry.Len(), p.Registry.ListIdentifiers(), err)
	}
	return calc, nil
}
