package ruleset

import (
	"embed"
	"fmt"
	"strings"
)

//go:embed builtin/*.yaml
var builtinFS embed.FS

// LoadBuiltin loads the embedded rule set for a language key.
func LoadBuiltin(key string) (*Config, error) {
	name := "builtin/" + key + ".yaml"
	data, err := builtinFS.ReadFile(name)
	if err != nil {
		return nil, fmt.Errorf("ruleset.LoadBuiltin: no builtin rules for %q: %w", key, err)
	}
	return Parse(name, data)
}

// HasBuiltin reports whether an embedded rule set exists for the key.
func HasBuiltin(key string) bool {
	_, err := builtinFS.ReadFile("builtin/" + key + ".yaml")
	return err == nil
}

// List returns the language keys of all embedded rule sets.
func List() ([]string, error) {
	entries, err := builtinFS.ReadDir("builtin")
	if err != nil {
		return nil, err
	}
	var keys []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		n := e.Name()
		if strings.HasSuffix(n, ".yaml") {
			keys = append(keys, strings.TrimSuffix(n, ".yaml"))
		}
	}
	return keys, nil
}
