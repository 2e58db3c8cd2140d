package xenv

import (
	"iter"
	"slices"
	"strings"
	"sync"
)

// Registry is an append-only collection of declarations. Register is safe
// for concurrent use; readers see every declaration registered before the
// read.
type Registry struct {
	mu   sync.Mutex
	vars []Var
}

// NewRegistry returns an empty registry. Most programs use Global instead.
func NewRegistry() *Registry {
	return &Registry{}
}

var global = NewRegistry()

// Global returns the process-wide registry used by the package level
// functions. Packages add to it from their init functions.
func Global() *Registry {
	return global
}

// Register adds declarations to the registry. A name may be declared any
// number of times; when several declarations carry a default, the first one
// registered wins.
func (r *Registry) Register(vars ...Var) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.vars = append(r.vars, vars...)
}

// All yields every declaration in registration order, duplicates included.
// Each iteration walks the set registered at the time it starts.
func (r *Registry) All() iter.Seq[Var] {
	return func(yield func(Var) bool) {
		for _, v := range r.snapshot() {
			if !yield(v) {
				return
			}
		}
	}
}

// Len returns the number of registrations, duplicates included.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.vars)
}

// Names returns the sorted, de-duplicated declared names.
func (r *Registry) Names() []string {
	vars := r.declarations()

	names := make([]string, len(vars))
	for i, v := range vars {
		names[i] = v.name
	}

	return names
}

// Reset drops every declaration. It exists for test isolation only.
func (r *Registry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.vars = nil
}

func (r *Registry) snapshot() []Var {
	r.mu.Lock()
	defer r.mu.Unlock()

	return slices.Clone(r.vars)
}

// declarations merges duplicate registrations into one Var per name, sorted
// by name. The first default and the first non-empty usage win; any secret
// registration makes the variable secret.
func (r *Registry) declarations() []Var {
	merged := make(map[string]Var)

	for _, v := range r.snapshot() {
		prev, ok := merged[v.name]
		if !ok {
			merged[v.name] = v
			continue
		}

		if !prev.hasDefault && v.hasDefault {
			prev.def, prev.hasDefault = v.def, true
		}

		if prev.usage == "" {
			prev.usage = v.usage
		}

		prev.secret = prev.secret || v.secret
		merged[v.name] = prev
	}

	vars := make([]Var, 0, len(merged))
	for _, v := range merged {
		vars = append(vars, v)
	}

	slices.SortFunc(vars, func(a, b Var) int {
		return strings.Compare(a.name, b.name)
	})

	return vars
}
