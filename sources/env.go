package sources

import (
	"os"
	"strings"
)

// LookupFunc reads a named environment variable, reporting whether it is set.
type LookupFunc func(key string) (string, bool)

// Env returns a source reading the process environment. A non-empty prefix
// is upper-cased and joined to every key with an underscore. A nil lookup
// defaults to os.LookupEnv.
func Env(prefix string, lookup LookupFunc) Source {
	if lookup == nil {
		lookup = os.LookupEnv
	}

	return &env{
		prefix: prefix,
		lookup: lookup,
	}
}

// EnvKey returns the environment variable name read for key.
func EnvKey(prefix, key string) string {
	if prefix != "" {
		key = strings.ToUpper(prefix) + "_" + key
	}

	return key
}

type env struct {
	prefix string
	lookup LookupFunc
}

func (e *env) Name() string {
	return "env"
}

func (e *env) Lookup(key string) (string, bool) {
	return e.lookup(EnvKey(e.prefix, key))
}
