package app

import (
	"io"
	"log/slog"
	"os"

	"github.com/vk/declcli/internal/config"
	"github.com/vk/declcli/internal/configfile"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	stdin     io.Reader
	stdout    io.Writer
	stderr    io.Writer
	logger    *slog.Logger
	config    *Config
	loader    config.Loader
	lookupEnv func(string) (string, bool)
}

// Option customises an App.
type Option func(*App)

// WithLookupEnv replaces os.LookupEnv for argument environment fallbacks.
func WithLookupEnv(lookup func(string) (string, bool)) Option {
	return func(a *App) { a.lookupEnv = lookup }
}

// NewApp is the constructor for the main application. Logs go to stderr so
// the dispatched script owns stdout. A nil loader selects the file loader.
func NewApp(stdin io.Reader, stdout, stderr io.Writer, cfg *Config, loader config.Loader, opts ...Option) *App {
	if loader == nil {
		loader = configfile.NewLoader()
	}
	a := &App{
		stdin:     stdin,
		stdout:    stdout,
		stderr:    stderr,
		logger:    newLogger(cfg.LogLevel, cfg.LogFormat, stderr),
		config:    cfg,
		loader:    loader,
		lookupEnv: os.LookupEnv,
	}
	for _, opt := range opts {
		opt(a)
	}
	a.logger.Debug("Logger configured successfully.", "level", cfg.LogLevel, "format", cfg.LogFormat)
	return a
}
