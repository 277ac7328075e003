package app_test

import (
	"context"
	"runtime"
	"strings"
	"testing"

	"github.com/vk/declcli/internal/app"
	"github.com/vk/declcli/internal/testutil"
)

type result struct {
	code   int
	err    error
	stdout string
	stderr string
}

// runApp writes doc to a temporary file named name and runs one
// invocation against it with the given forwarded arguments.
func runApp(t *testing.T, name, doc string, cfg app.Config, opts ...app.Option) result {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("scripts are run through sh")
	}

	cfg.ConfigPath = testutil.WriteFile(t, name, doc)
	if cfg.Mode == "" {
		cfg.Mode = app.ModeRun
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "debug"
	}
	appConfig, err := app.NewConfig(cfg)
	if err != nil {
		t.Fatalf("invalid test config: %v", err)
	}

	stdout, stderr := &testutil.SafeBuffer{}, &testutil.SafeBuffer{}
	noEnv := func(string) (string, bool) { return "", false }
	opts = append([]app.Option{app.WithLookupEnv(noEnv)}, opts...)
	a := app.NewApp(strings.NewReader(""), stdout, stderr, appConfig, nil, opts...)

	code, err := a.Run(context.Background())
	return result{code: code, err: err, stdout: stdout.String(), stderr: stderr.String()}
}
