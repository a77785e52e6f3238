package calculator

import (
	"sync"

	"calcctl/pkg/logging"
)

// LoggingHook writes ">> Name#calculate" and "<< Name#calculate" lines.
type LoggingHook struct {
	Subsystem string
}

func (h LoggingHook) Enter(name string) {
	logging.Info(h.subsystem(), ">> %s#calculate", name)
}

func (h LoggingHook) Exit(name string) {
	logging.Info(h.subsystem(), "<< %s#calculate", name)
}

func (h LoggingHook) subsystem() string {
	if h.Subsystem == "" {
		return "Calculator"
	}
	return h.Subsystem
}

// Step is one hook call seen by a Recorder.
type Step struct {
	Name  string
	Enter bool
}

// Recorder keeps every hook call in order.
type Recorder struct {
	mu    sync.Mutex
	steps []Step
}

func (r *Recorder) Enter(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.steps = append(r.steps, Step{Name: name, Enter: true})
}

func (r *Recorder) Exit(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.steps = append(r.steps, Step{Name: name})
}

// Steps returns a copy of the recorded calls.
func (r *Recorder) Steps() []Step {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Step, len(r.steps))
	copy(out, r.steps)
	return out
}

// Entered returns the layer names in the order they were entered.
func (r *Recorder) Entered() []string {
	var names []string
	for _, s := range r.Steps() {
		if s.Enter {
			names = append(names, s.Name)
		}
	}
	return names
}

// Count returns how many times name was entered.
func (r *Recorder) Count(name string) int {
	n := 0
	for _, s := range r.Steps() {
		if s.Enter && s.Name == name {
			n++
		}
	}
	return n
}
