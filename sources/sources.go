// Package sources describes the value lookups consulted by the xenv resolver.
package sources

// Source looks up raw string values by exact name.
type Source interface {
	// Name identifies the source in resolutions and logs.
	Name() string

	// Lookup returns the value stored under key. The boolean distinguishes
	// an absent key from one set to the empty string.
	Lookup(key string) (string, bool)
}

// Map returns a source backed by a static table, such as the merged file
// configuration.
func Map(name string, values map[string]string) Source {
	return &mapSource{name: name, values: values}
}

type mapSource struct {
	name   string
	values map[string]string
}

func (m *mapSource) Name() string {
	return m.name
}

func (m *mapSource) Lookup(key string) (string, bool) {
	value, ok := m.values[key]
	return value, ok
}
