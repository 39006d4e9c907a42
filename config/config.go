package config // CLI configuration file

import (
	"fmt"
	"strings"
)

// Overrides are trailing "key=value" arguments that replace top-level
// fields of a loaded run configuration.
type Overrides map[string]string

// ParseArgs collects key=value arguments. Anything without '=' or with an
// empty key is rejected.
func ParseArgs(args []string) (Overrides, error) {
	opts := make(Overrides)
	for _, arg := range args {
		key, val, ok := strings.Cut(arg, "=")
		if !ok || key == "" {
			return nil, fmt.Errorf("expected key=value, got %q", arg)
		}
		opts[key] = val
	}
	return opts, nil
}
