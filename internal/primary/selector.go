// Package primary decides which registered provider becomes the default.
//
// The decision depends only on how many providers are registered:
//
//   - exactly the two built-ins: the decorating built-in wins
//   - the built-ins plus one extra: the extra wins, unless something already
//     chose a default upstream
//   - any other count: nothing is chosen and GetDefault keeps failing
package primary

import (
	"errors"
	"fmt"
	"sync"

	"calcctl/internal/capability"
)

// Outcome describes what a selection pass did.
type Outcome string

const (
	// OutcomeSelected means this pass flagged an entry as default.
	OutcomeSelected Outcome = "selected"
	// OutcomeKept means a default had already been chosen upstream.
	OutcomeKept Outcome = "kept"
	// OutcomeSkipped means the population size is unsupported and no default
	// was chosen.
	OutcomeSkipped Outcome = "skipped"
)

// ErrAlreadyRan is returned when Select is called a second time.
var ErrAlreadyRan = errors.New("primary selection already ran")

// BuiltIns names the two providers that are always registered.
type BuiltIns struct {
	Base      string
	Decorated string
}

// Size is the number of built-in identifiers.
func (b BuiltIns) Size() int {
	return 2
}

// Contains reports whether id is one of the built-ins.
func (b BuiltIns) Contains(id string) bool {
	return id == b.Base || id == b.Decorated
}

// Result reports a finished selection pass.
type Result struct {
	Outcome Outcome
	// ID is the default after the pass; empty when skipped.
	ID string
	// Total is the population size the pass observed.
	Total int
}

// Population is the part of the registry the selector needs.
type Population interface {
	ListIdentifiers() []string
	IsDefault(id string) bool
	SetDefault(id string) error
	DefaultID() (string, bool)
}

var _ Population = (*capability.Registry[any])(nil)

// Selector runs the selection pass once over a finished registry.
type Selector struct {
	pop      Population
	builtIns BuiltIns

	mu  sync.Mutex
	ran bool
}

// NewSelector binds a selector to a registry.
func NewSelector(pop Population, builtIns BuiltIns) *Selector {
	return &Selector{pop: pop, builtIns: builtIns}
}

// Select applies the selection policy. It must be called after every
// provider has registered and may only be called once.
func (s *Selector) Select() (Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.ran {
		return Result{}, ErrAlreadyRan
	}
	s.ran = true

	ids := s.pop.ListIdentifiers()
	total := len(ids)

	switch total {
	case s.builtIns.Size():
		return s.setDefault(s.builtIns.Decorated, total)

	case s.builtIns.Size() + 1:
		candidates := s.extraCandidates(ids)
		if len(candidates) == 0 {
			return s.kept(total), nil
		}
		return s.setDefault(candidates[0], total)

	default:
		return Result{Outcome: OutcomeSkipped, Total: total}, nil
	}
}

// extraCandidates returns the non built-in identifiers that are not already
// flagged, preserving the sorted order of ids.
func (s *Selector) extraCandidates(ids []string) []string {
	var candidates []string
	for _, id := range ids {
		if s.builtIns.Contains(id) || s.pop.IsDefault(id) {
			continue
		}
		candidates = append(candidates, id)
	}
	return candidates
}

func (s *Selector) setDefault(id string, total int) (Result, error) {
	err := s.pop.SetDefault(id)
	switch {
	case err == nil:
		return Result{Outcome: OutcomeSelected, ID: id, Total: total}, nil
	case errors.Is(err, capability.ErrAlreadyDefaulted):
		return s.kept(total), nil
	default:
		return Result{Total: total}, fmt.Errorf("select default: %w", err)
	}
}

func (s *Selector) kept(total int) Result {
	id, _ := s.pop.DefaultID()
	return Result{Outcome: OutcomeKept, ID: id, Total: total}
}
