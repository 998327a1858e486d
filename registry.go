package enu

import (
	"fmt"
	"sync"
)

// Registry is an ordered collection of enums keyed by type name. The
// declaration-file loader populates one and the code generator walks it.
type Registry struct {
	mu    sync.RWMutex
	names []string
	enums map[string]*Enum
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{enums: map[string]*Enum{}}
}

// Register adds an enum under its type name. Registering a second enum with
// the same name fails with ErrDuplicateName.
func (r *Registry) Register(e *Enum) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.enums[e.Name()]; ok {
		return fmt.Errorf("enu: registry: enum %q: %w", e.Name(), ErrDuplicateName)
	}
	r.names = append(r.names, e.Name())
	r.enums[e.Name()] = e
	return nil
}

// Get returns the enum registered under name.
func (r *Registry) Get(name string) (*Enum, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.enums[name]
	return e, ok
}

// Names returns the registered type names in registration order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]string, len(r.names))
	copy(out, r.names)
	return out
}

// Len returns the number of registered enums.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.names)
}
