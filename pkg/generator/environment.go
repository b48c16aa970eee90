package generator

import (
	"os"
	"sort"
	"strings"
)

// Environment is a snapshot of the process environment taken once per run.
// It is never modified after construction.
type Environment struct {
	vars map[string]string
}

func NewEnvironment(vars map[string]string) Environment {
	copied := make(map[string]string, len(vars))
	for key, value := range vars {
		copied[key] = value
	}

	return Environment{vars: copied}
}

// EnvironmentFromPairs parses KEY=VALUE pairs as returned by os.Environ.
// The value is everything after the first '='.
func EnvironmentFromPairs(pairs []string) Environment {
	vars := make(map[string]string, len(pairs))

	for _, pair := range pairs {
		key, value, _ := strings.Cut(pair, "=")
		if key == "" {
			// windows keeps per-drive working directories as "=C:=C:\..."
			continue
		}
		vars[key] = value
	}

	return Environment{vars: vars}
}

func EnvironmentFromOS() Environment {
	return EnvironmentFromPairs(os.Environ())
}

func (e Environment) Lookup(key string) (string, bool) {
	value, ok := e.vars[key]
	return value, ok
}

func (e Environment) Get(key, fallback string) string {
	if value, ok := e.vars[key]; ok {
		return value
	}
	return fallback
}

// Bool is true only for the literal value "true".
func (e Environment) Bool(key string) bool {
	return e.vars[key] == "true"
}

func (e Environment) Len() int {
	return len(e.vars)
}

func (e Environment) Keys() []string {
	keys := make([]string, 0, len(e.vars))
	for key := range e.vars {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	return keys
}

// Map returns a copy of the snapshot.
func (e Environment) Map() map[string]string {
	copied := make(map[string]string, len(e.vars))
	for key, value := range e.vars {
		copied[key] = value
	}

	return copied
}
