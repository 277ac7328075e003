package testutil

import (
	"context"
	"log/slog"
	"os"
	"testing"

	"github.com/vk/declcli/internal/ctxlog"
)

// Context returns a context carrying a debug-level text logger that writes
// to the returned buffer. Set DECLCLI_TEST_LOGS=true to have the captured
// output printed when the test finishes.
func Context(t *testing.T) (context.Context, *SafeBuffer) {
	t.Helper()

	buf := &SafeBuffer{}
	logger := slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	if os.Getenv("DECLCLI_TEST_LOGS") == "true" {
		t.Cleanup(func() { t.Logf("--- Log output for %s ---\n%s", t.Name(), buf.String()) })
	}
	return ctxlog.WithLogger(context.Background(), logger), buf
}
