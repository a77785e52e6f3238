package calculator

// Calculator is the capability every provider implements.
type Calculator interface {
	Calculate()
}

// Hook observes a layer entering and leaving Calculate. Hooks carry all side
// effects of a calculation; the calculators themselves hold no state.
type Hook interface {
	Enter(name string)
	Exit(name string)
}

// NopHook ignores every call.
type NopHook struct{}

func (NopHook) Enter(string) {}
func (NopHook) Exit(string)  {}

// MultiHook fans each call out to several hooks. Exit runs in reverse order
// so nested hooks unwind symmetrically.
type MultiHook []Hook

func (m MultiHook) Enter(name string) {
	for _, h := range m {
		h.Enter(name)
	}
}

func (m MultiHook) Exit(name string) {
	for i := len(m) - 1; i >= 0; i-- {
		m[i].Exit(name)
	}
}

func orNop(h Hook) Hook {
	if h == nil {
		return NopHook{}
	}
	return h
}

// Simple performs the unit of work without delegating.
type Simple struct {
	hook Hook
}

// NewSimple creates the base calculator.
func NewSimple(hook Hook) *Simple {
	return &Simple{hook: orNop(hook)}
}

// Calculate is a no-op apart from the hook calls.
func (s *Simple) Calculate() {
	s.hook.Enter(SimpleName)
	s.hook.Exit(SimpleName)
}

// Decorated wraps another calculator and always forwards to it exactly once.
type Decorated struct {
	next Calculator
	hook Hook
}

// NewDecorated wraps next.
func NewDecorated(next Calculator, hook Hook) *Decorated {
	return &Decorated{next: next, hook: orNop(hook)}
}

func (d *Decorated) Calculate() {
	d.hook.Enter(DecoratedName)
	d.next.Calculate()
	d.hook.Exit(DecoratedName)
}

// UserDefined is an extra provider layered on top of the decorated
// calculator. Its name comes from configuration.
type UserDefined struct {
	name string
	next Calculator
	hook Hook
}

// NewUserDefined wraps next under the given display name.
func NewUserDefined(name string, next *Decorated, hook Hook) *UserDefined {
	return &UserDefined{name: name, next: next, hook: orNop(hook)}
}

// Name returns the display name passed to hooks.
func (u *UserDefined) Name() string {
	return u.name
}

func (u *UserDefined) Calculate() {
	u.hook.Enter(u.name)
	u.next.Calculate()
	u.hook.Exit(u.name)
}

// Layer names reported to hooks.
const (
	SimpleName    = "SimpleCoreCalculatorService"
	DecoratedName = "NotSoSimpleCoreCalculatorService"
	ConsumerName  = "SimpleCalculator"
)

// SimpleCalculator is the consumer side: it holds whichever calculator was
// resolved as the default and runs it.
type SimpleCalculator struct {
	calc Calculator
	hook Hook
}

// NewSimpleCalculator wraps the resolved default calculator.
func NewSimpleCalculator(calc Calculator, hook Hook) *SimpleCalculator {
	return &SimpleCalculator{calc: calc, hook: orNop(hook)}
}

// DoCalculation runs the default calculator once.
func (c *SimpleCalculator) DoCalculation() {
	c.hook.Enter(ConsumerName)
	c.calc.Calculate()
	c.hook.Exit(ConsumerName)
}
