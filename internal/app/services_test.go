package app

import (
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"calcctl/internal/calculator"
	"calcctl/internal/capability"
	"calcctl/internal/config"
	"calcctl/internal/primary"
	"calcctl/pkg/logging"
)

func init() {
	logging.InitForCLI(logging.LevelError, io.Discard)
}

func TestInitializeProviders(t *testing.T) {
	tests := []struct {
		name        string
		cfg         config.ProvidersConfig
		wantOutcome primary.Outcome
		wantDefault string
	}{
		{
			name:        "built-ins only",
			cfg:         config.ProvidersConfig{},
			wantOutcome: primary.OutcomeSelected,
			wantDefault: DecoratedID,
		},
		{
			name:        "one extra",
			cfg:         config.ProvidersConfig{Extras: []string{"userDefined"}},
			wantOutcome: primary.OutcomeSelected,
			wantDefault: "userDefined",
		},
		{
			name:        "two extras",
			cfg:         config.ProvidersConfig{Extras: []string{"userDefined", "another"}},
			wantOutcome: primary.OutcomeSkipped,
		},
		{
			name:        "two extras with configured primary",
			cfg:         config.ProvidersConfig{Extras: []string{"userDefined", "another"}, Primary: "another"},
			wantOutcome: primary.OutcomeSkipped,
			wantDefault: "another",
		},
		{
			name:        "one extra already primary",
			cfg:         config.ProvidersConfig{Extras: []string{"userDefined"}, Primary: "userDefined"},
			wantOutcome: primary.OutcomeKept,
			wantDefault: "userDefined",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := InitializeProviders(tt.cfg, nil)
			require.NoError(t, err)

			assert.Equal(t, tt.wantOutcome, p.Selection.Outcome)
			assert.Equal(t, 2+len(tt.cfg.Extras), p.Registry.Len())

			id, ok := p.Registry.DefaultID()
			if tt.wantDefault == "" {
				assert.False(t, ok)
				_, err := p.Default()
				assert.ErrorIs(t, err, capability.ErrNoDefaultSelected)
				return
			}
			assert.True(t, ok)
			assert.Equal(t, tt.wantDefault, id)
		})
	}
}

func TestInitializeProviders_ChainWiring(t *testing.T) {
	rec := &calculator.Recorder{}
	p, err := InitializeProviders(config.ProvidersConfig{Extras: []string{"userDefined"}}, rec)
	require.NoError(t, err)

	calc, err := p.Default()
	require.NoError(t, err)
	assert.Same(t, p.Extras[0], calc)

	calc.Calculate()
	assert.Equal(t, []string{"userDefined", calculator.DecoratedName, calculator.SimpleName}, rec.Entered())
}

func TestInitializeProviders_Errors(t *testing.T) {
	t.Run("extra shadows built-in", func(t *testing.T) {
		_, err := InitializeProviders(config.ProvidersConfig{Extras: []string{BaseID}}, nil)
		assert.ErrorIs(t, err, capability.ErrDuplicateIdentifier)
	})

	t.Run("duplicate extras", func(t *testing.T) {
		_, err := InitializeProviders(config.ProvidersConfig{Extras: []string{"x", "x"}}, nil)
		assert.ErrorIs(t, err, capability.ErrDuplicateIdentifier)
	})

	t.Run("unknown primary", func(t *testing.T) {
		_, err := InitializeProviders(config.ProvidersConfig{Primary: "ghost"}, nil)
		assert.ErrorIs(t, err, capability.ErrNotFound)
	})
}
