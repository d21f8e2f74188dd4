package cards

import (
	"fmt"
	"sort"
)

// Registry resolves card names to definitions.
type Registry struct {
	byName map[string]*Definition
}

// NewRegistry builds a registry from a definition slice. Duplicate names are
// rejected.
func NewRegistry(defs []Definition) (*Registry, error) {
	byName := make(map[string]*Definition, len(defs))
	for i := range defs {
		def := &defs[i]
		if def.Name == "" {
			return nil, fmt.Errorf("card definition %d has no name", i)
		}
		if _, ok := byName[def.Name]; ok {
			return nil, fmt.Errorf("duplicate card definition %q", def.Name)
		}
		byName[def.Name] = def
	}
	return &Registry{byName: byName}, nil
}

// Get returns the definition for a card name.
func (r *Registry) Get(name string) (*Definition, bool) {
	def, ok := r.byName[name]
	return def, ok
}

// MustGet returns the definition for a card name, panicking on unknown names.
// Only for use with the built-in core set in tests and battle construction.
func (r *Registry) MustGet(name string) *Definition {
	def, ok := r.byName[name]
	if !ok {
		panic(fmt.Sprintf("unknown card: %s", name))
	}
	return def
}

// Names returns all registered card names in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.byName))
	for name := range r.byName {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of registered definitions.
func (r *Registry) Len() int {
	return len(r.byName)
}
