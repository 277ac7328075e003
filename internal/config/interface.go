package config

import (
	"context"
)

// Loader is the interface for a configuration loader.
type Loader interface {
	// Load reads the configuration found at path and returns the validated
	// root of the command tree.
	Load(ctx context.Context, path string) (*CommandNode, error)
}
