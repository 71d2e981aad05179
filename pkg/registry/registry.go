package registry

import (
	"fmt"
	"sync"

	"github.com/robstonner/mediapipe/pkg/calculator"
)

// Factory builds a fresh calculator instance. Each node in a graph gets its
// own instance, so factories must not share mutable state between calls.
type Factory func() calculator.Calculator

// Registry maps calculator names to factories.
type Registry struct {
	mu        sync.RWMutex
	factories map[string]Factory
}

// NewRegistry creates a new empty registry.
func NewRegistry() *Registry {
	return &Registry{
		factories: make(map[string]Factory),
	}
}

// Register adds a factory to the registry.
// If a factory with the same name exists, it is overwritten.
func (r *Registry) Register(name string, fn Factory) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.factories[name] = fn
}

// New looks up a calculator by name and builds an instance.
// Returns an error if the name is not registered.
func (r *Registry) New(name string) (calculator.Calculator, error) {
	r.mu.RLock()
	fn, ok := r.factories[name]
	r.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("calculator not found: %s", name)
	}

	return fn(), nil
}

// Names lists the registered calculator names, in no particular order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}
	return names
}

// Default is the process-wide registry that calculator packages register
// into at init.
var Default = NewRegistry()

// Register adds a factory to the Default registry.
func Register(name string, fn Factory) {
	Default.Register(name, fn)
}
