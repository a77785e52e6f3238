package calculator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSimple_Idempotent(t *testing.T) {
	rec := &Recorder{}
	simple := NewSimple(rec)

	for i := 0; i < 5; i++ {
		simple.Calculate()
	}

	assert.Equal(t, 5, rec.Count(SimpleName))
	assert.Equal(t, &Simple{hook: rec}, simple, "calculating must not change the calculator")
}

func TestSimple_NilHook(t *testing.T) {
	assert.NotPanics(t, func() { NewSimple(nil).Calculate() })
}

func TestDecorated_DelegatesOnce(t *testing.T) {
	rec := &Recorder{}
	decorated := NewDecorated(NewSimple(rec), rec)

	decorated.Calculate()

	assert.Equal(t, 1, rec.Count(DecoratedName))
	assert.Equal(t, 1, rec.Count(SimpleName))
	assert.Equal(t, []Step{
		{Name: DecoratedName, Enter: true},
		{Name: SimpleName, Enter: true},
		{Name: SimpleName},
		{Name: DecoratedName},
	}, rec.Steps())
}

func TestUserDefined_ChainOrder(t *testing.T) {
	rec := &Recorder{}
	decorated := NewDecorated(NewSimple(rec), rec)
	extra := NewUserDefined("userDefined", decorated, rec)

	extra.Calculate()

	assert.Equal(t, "userDefined", extra.Name())
	assert.Equal(t, []string{"userDefined", DecoratedName, SimpleName}, rec.Entered())
	for _, name := range []string{"userDefined", DecoratedName, SimpleName} {
		assert.Equal(t, 1, rec.Count(name), "layer %s", name)
	}
}

func TestSimpleCalculator_DoCalculation(t *testing.T) {
	rec := &Recorder{}
	decorated := NewDecorated(NewSimple(rec), rec)

	NewSimpleCalculator(decorated, rec).DoCalculation()

	assert.Equal(t, []string{ConsumerName, DecoratedName, SimpleName}, rec.Entered())
}

func TestMultiHook(t *testing.T) {
	first, second := &Recorder{}, &Recorder{}
	var order []string
	hook := MultiHook{first, orderHook{&order, "a"}, second, orderHook{&order, "b"}}

	NewSimple(hook).Calculate()

	require.Len(t, first.Steps(), 2)
	require.Len(t, second.Steps(), 2)
	assert.Equal(t, []string{"enter a", "enter b", "exit b", "exit a"}, order)
}

type orderHook struct {
	order *[]string
	tag   string
}

func (o orderHook) Enter(string) { *o.order = append(*o.order, "enter "+o.tag) }
func (o orderHook) Exit(string)  { *o.order = append(*o.order, "exit "+o.tag) }
