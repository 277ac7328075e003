package app

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/vk/declcli/internal/cmdtree"
	"github.com/vk/declcli/internal/dispatch"
)

// Mode selects what an App does with the compiled command.
type Mode string

const (
	// ModeRun matches Args and dispatches the invoked command's script.
	ModeRun Mode = "run"
	// ModeCompletions writes a completion script for CompletionShell.
	ModeCompletions Mode = "completions"
)

// LogLevels lists the accepted values of Config.LogLevel. "off" discards
// every event.
var LogLevels = []string{"off", "debug", "info", "warn", "error"}

// LogFormats lists the accepted values of Config.LogFormat.
var LogFormats = []string{"text", "json"}

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	Mode       Mode
	ConfigPath string // command document or a directory holding one
	Shell      string
	// Args is forwarded verbatim to the compiled command.
	Args            []string
	CompletionShell string
	PrintArgs       bool

	LogLevel  string
	LogFormat string
}

// NewConfig validates cfg and fills in defaults.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.ConfigPath == "" {
		return nil, errors.New("a configuration path is required")
	}
	switch cfg.Mode {
	case ModeRun:
	case ModeCompletions:
		if !slices.Contains(cmdtree.Shells, cfg.CompletionShell) {
			return nil, fmt.Errorf("unsupported shell %q for completions: must be one of %s", cfg.CompletionShell, strings.Join(cmdtree.Shells, ", "))
		}
	default:
		return nil, fmt.Errorf("unknown mode %q", cfg.Mode)
	}

	if cfg.Shell == "" {
		cfg.Shell = dispatch.DefaultShell
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "off"
	}
	if cfg.LogFormat == "" {
		cfg.LogFormat = "text"
	}
	cfg.LogLevel = strings.ToLower(cfg.LogLevel)
	cfg.LogFormat = strings.ToLower(cfg.LogFormat)
	if !slices.Contains(LogLevels, cfg.LogLevel) {
		return nil, fmt.Errorf("invalid log level %q: must be one of %s", cfg.LogLevel, strings.Join(LogLevels, ", "))
	}
	if !slices.Contains(LogFormats, cfg.LogFormat) {
		return nil, fmt.Errorf("invalid log format %q: must be one of %s", cfg.LogFormat, strings.Join(LogFormats, ", "))
	}

	return &cfg, nil
}
