package transformers

import (
	"fmt"

	"github.com/custodia-labs/rephrase-cli/internal/core/ports/driven"
)

// BuilderFunc creates a Transformer from generic config.
// Config is a map of transformer-specific settings parsed from user config.
type BuilderFunc func(cfg map[string]any) (driven.Transformer, error)

// Registry maps transformer names to their builders.
// It allows dynamic construction of pipeline stages from configuration.
type Registry struct {
	builders map[string]BuilderFunc
}

// NewRegistry creates a new transformer registry.
func NewRegistry() *Registry {
	return &Registry{
		builders: make(map[string]BuilderFunc),
	}
}

// Register adds a transformer builder to the registry.
// Name should be unique and match the transformer's Name() return value.
func (r *Registry) Register(name string, builder BuilderFunc) {
	r.builders[name] = builder
}

// Build creates a transformer by name with the given config.
// Returns error if the transformer name is not registered.
func (r *Registry) Build(name string, cfg map[string]any) (driven.Transformer, error) {
	builder, ok := r.builders[name]
	if !ok {
		return nil, fmt.Errorf("unknown transformer: %s", name)
	}
	return builder(cfg)
}

// Has returns true if a transformer with the given name is registered.
func (r *Registry) Has(name string) bool {
	_, ok := r.builders[name]
	return ok
}

// Names returns all registered transformer names.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.builders))
	for name := range r.builders {
		names = append(names, name)
	}
	return names
}
