package export

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/vk/declcli/internal/config"
)

// Lookup is the read side of a match result.
type Lookup interface {
	Value(id string) (string, bool)
}

// Env maps each argument id with a bound value to that value. Arguments
// without a value are omitted, not exported empty.
func Env(args []config.ArgumentSpec, m Lookup) map[string]string {
	env := make(map[string]string, len(args))
	for _, arg := range args {
		if v, ok := m.Value(arg.ID); ok {
			env[arg.ID] = v
		}
	}
	return env
}

// Environ renders env as KEY=VALUE entries sorted by key.
func Environ(env map[string]string) []string {
	keys := make([]string, 0, len(env))
	for k := range env {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	entries := make([]string, 0, len(keys))
	for _, k := range keys {
		entries = append(entries, k+"="+env[k])
	}
	return entries
}

// JSON renders the same values as Env as a JSON object.
func JSON(args []config.ArgumentSpec, m Lookup) ([]byte, error) {
	data, err := json.Marshal(Env(args, m))
	if err != nil {
		return nil, fmt.Errorf("failed to encode arguments: %w", err)
	}
	return data, nil
}
