// Package env contains helpers for reading and merging environment variables
// from the process environment and .env-style files.
package env

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Vars represents a simple string-to-string map of variables.
type Vars map[string]string

// FromOS builds a Vars map from the current process environment.
func FromOS() Vars {
	out := make(Vars)
	for _, kv := range os.Environ() {
		parts := strings.SplitN(kv, "=", 2)
		if len(parts) != 2 {
			continue
		}
		out[parts[0]] = parts[1]
	}
	return out
}

// Merge merges several Vars maps into one, later maps overriding earlier keys.
func Merge(sets ...Vars) Vars {
	out := make(Vars)
	for _, s := range sets {
		for k, v := range s {
			out[k] = v
		}
	}
	return out
}

// Environ flattens the Vars map back into KEY=VALUE form for exec.Cmd.
func (v Vars) Environ() []string {
	out := make([]string, 0, len(v))
	for k, val := range v {
		out = append(out, k+"="+val)
	}
	return out
}

// LoadFile loads a single .env-style file into Vars.
func LoadFile(path string) (Vars, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	envMap, err := godotenv.Parse(f)
	if err != nil {
		return nil, err
	}
	out := make(Vars, len(envMap))
	for k, v := range envMap {
		out[k] = v
	}
	return out, nil
}

// MissingKeys returns the subset of keys that are absent from vars or have
// an empty or placeholder-only value, preserving the order of keys.
func MissingKeys(vars Vars, keys []string) []string {
	var missing []string
	for _, key := range keys {
		val, ok := vars[key]
		if !ok || strings.TrimSpace(val) == "" {
			missing = append(missing, key)
		}
	}
	return missing
}
