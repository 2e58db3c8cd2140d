package xenv

import (
	"slices"

	"github.com/sxwebdev/xenv/sources"
)

// Source tags where a resolved value came from.
type Source string

const (
	SourceEnv        Source = "env"
	SourceFile       Source = "file"
	SourceDefault    Source = "default"
	SourceUnresolved Source = "unresolved"
)

// Resolution is the effective value of one declared variable.
type Resolution struct {
	Name   string
	Value  string
	Source Source
}

// Resolved reports whether any source supplied a value.
func (r Resolution) Resolved() bool {
	return r.Source != "" && r.Source != SourceUnresolved
}

func (r Resolution) String() string {
	if !r.Resolved() {
		return "<unresolved>"
	}

	return r.Value
}

// Values maps declared names to their resolutions.
type Values map[string]Resolution

// Lookup returns the resolved value of name.
func (v Values) Lookup(name string) (string, bool) {
	r, ok := v[name]
	if !ok || !r.Resolved() {
		return "", false
	}

	return r.Value, true
}

// Get returns the resolved value of name, or the empty string.
func (v Values) Get(name string) string {
	value, _ := v.Lookup(name)
	return value
}

// Unresolved returns the sorted names that resolved to nothing.
func (v Values) Unresolved() []string {
	names := make([]string, 0)
	for name, r := range v {
		if !r.Resolved() {
			names = append(names, name)
		}
	}

	slices.Sort(names)

	return names
}

// Resolver determines the effective value of a declaration: the environment
// wins over the merged config files, which win over the declared default.
type Resolver struct {
	env  sources.Source
	file sources.Source
}

// NewResolver returns a resolver over the given sources. A nil source is
// treated as empty.
func NewResolver(env, file sources.Source) *Resolver {
	if env == nil {
		env = sources.Map("env", nil)
	}

	if file == nil {
		file = sources.Map("file", nil)
	}

	return &Resolver{env: env, file: file}
}

// Resolve returns the resolution of v. An environment variable set to the
// empty string counts as present.
func (r *Resolver) Resolve(v Var) Resolution {
	res := Resolution{Name: v.name}

	if value, ok := r.env.Lookup(v.name); ok {
		res.Value, res.Source = value, SourceEnv
		return res
	}

	if value, ok := r.file.Lookup(v.name); ok {
		res.Value, res.Source = value, SourceFile
		return res
	}

	if v.hasDefault {
		res.Value, res.Source = v.def, SourceDefault
		return res
	}

	res.Source = SourceUnresolved
	return res
}
