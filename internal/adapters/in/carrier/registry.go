package carrier

import "fmt"

// Registry resolves carrier names to their adapters. It is populated at
// composition time and read-only afterwards, so lookups are safe for
// concurrent use.
type Registry struct {
	adapters map[string]Adapter
}

// NewRegistry creates a registry with the built-in adapters registered.
func NewRegistry() *Registry {
	registry := &Registry{adapters: make(map[string]Adapter)}
	registry.Register(StubCarrierName, NewStubAdapter())
	return registry
}

// Register adds or replaces the adapter for a carrier name.
func (r *Registry) Register(name string, adapter Adapter) {
	r.adapters[name] = adapter
}

// Resolve returns the adapter for a carrier name, failing with
// ErrUnsupportedCarrier for unknown names.
func (r *Registry) Resolve(name string) (Adapter, error) {
	adapter, ok := r.adapters[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedCarrier, name)
	}
	return adapter, nil
}
