package capability

import (
	"fmt"
	"sort"
	"sync"
)

// Entry is a single registered provider of a capability.
type Entry[T any] struct {
	ID      string
	Impl    T
	Default bool
}

// Registry holds the providers of one capability, keyed by identifier.
// At most one entry is flagged as the default; once set the flag never moves.
type Registry[T any] struct {
	mu        sync.RWMutex
	entries   map[string]*Entry[T]
	defaultID string

	// Callbacks
	onRegister []func(entry Entry[T])
	onDefault  []func(entry Entry[T])
}

// NewRegistry creates an empty registry
func NewRegistry[T any]() *Registry[T] {
	return &Registry[T]{
		entries: make(map[string]*Entry[T]),
	}
}

// Register adds impl under id with the default flag unset.
func (r *Registry[T]) Register(id string, impl T) error {
	if id == "" {
		return ErrInvalidIdentifier
	}

	r.mu.Lock()
	if _, exists := r.entries[id]; exists {
		r.mu.Unlock()
		return fmt.Errorf("register %q: %w", id, ErrDuplicateIdentifier)
	}
	entry := &Entry[T]{ID: id, Impl: impl}
	r.entries[id] = entry
	snapshot := *entry
	callbacks := r.onRegister
	r.mu.Unlock()

	for _, callback := range callbacks {
		callback(snapshot)
	}
	return nil
}

// ListIdentifiers returns every registered identifier, sorted.
func (r *Registry[T]) ListIdentifiers() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := make([]string, 0, len(r.entries))
	for id := range r.entries {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Lookup returns the implementation registered under id.
func (r *Registry[T]) Lookup(id string) (T, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entry, exists := r.entries[id]
	if !exists {
		var zero T
		return zero, fmt.Errorf("lookup %q: %w", id, ErrNotFound)
	}
	return entry.Impl, nil
}

// SetDefault flags id as the default entry. It fails if id is unknown or if
// any entry, including id itself, has already been flagged.
func (r *Registry[T]) SetDefault(id string) error {
	r.mu.Lock()
	entry, exists := r.entries[id]
	if !exists {
		r.mu.Unlock()
		return fmt.Errorf("set default %q: %w", id, ErrNotFound)
	}
	if r.defaultID != "" {
		current := r.defaultID
		r.mu.Unlock()
		return fmt.Errorf("set default %q: %q is the default: %w", id, current, ErrAlreadyDefaulted)
	}
	entry.Default = true
	r.defaultID = id
	snapshot := *entry
	callbacks := r.onDefault
	r.mu.Unlock()

	for _, callback := range callbacks {
		callback(snapshot)
	}
	return nil
}

// GetDefault returns the implementation of the default entry.
func (r *Registry[T]) GetDefault() (T, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.defaultID == "" {
		var zero T
		return zero, ErrNoDefaultSelected
	}
	return r.entries[r.defaultID].Impl, nil
}

// DefaultID returns the identifier of the default entry, if one is set.
func (r *Registry[T]) DefaultID() (string, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.defaultID, r.defaultID != ""
}

// IsDefault reports whether id is the flagged default entry.
func (r *Registry[T]) IsDefault(id string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.defaultID != "" && r.defaultID == id
}

// Len returns the number of registered entries.
func (r *Registry[T]) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.entries)
}

// Entries returns a snapshot of all entries sorted by identifier.
func (r *Registry[T]) Entries() []Entry[T] {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]Entry[T], 0, len(r.entries))
	for _, entry := range r.entries {
		result = append(result, *entry)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result
}

// OnRegister adds a callback invoked after each successful registration
func (r *Registry[T]) OnRegister(callback func(entry Entry[T])) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.onRegister = append(r.onRegister, callback)
}

// OnDefault adds a callback invoked once the default entry is chosen
func (r *Registry[T]) OnDefault(callback func(entry Entry[T])) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.onDefault = append(r.onDefault, callback)
}
