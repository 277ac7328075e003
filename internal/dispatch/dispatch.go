package dispatch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"time"

	"github.com/vk/declcli/internal/ctxlog"
	"github.com/vk/declcli/internal/export"
)

// DefaultShell is used when no shell is configured.
const DefaultShell = "sh"

// Dispatcher runs scripts through a shell.
type Dispatcher struct {
	Shell  string
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// New returns a Dispatcher connected to the process's own standard
// streams. An empty shell selects DefaultShell.
func New(shell string) *Dispatcher {
	if shell == "" {
		shell = DefaultShell
	}
	return &Dispatcher{
		Shell:  shell,
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}
}

// Execute runs `<shell> -c script` with env added to the inherited
// environment, waits for it, and returns its exit code. ctx carries the
// logger; the child is not cancelled through it.
func (d *Dispatcher) Execute(ctx context.Context, script string, env map[string]string) (int, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Info("Executing shell script.", "shell", d.Shell, "script", script)

	cmd := exec.Command(d.Shell, "-c", script)
	cmd.Env = append(os.Environ(), export.Environ(env)...)
	cmd.Stdin = d.Stdin
	cmd.Stdout = d.Stdout
	cmd.Stderr = d.Stderr

	start := time.Now()
	if err := cmd.Start(); err != nil {
		return 0, fmt.Errorf("%w: %s: %w", ErrStart, d.Shell, err)
	}

	// A non-zero exit is reported through ProcessState, not as a failure.
	if err := cmd.Wait(); err != nil {
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			return 0, fmt.Errorf("failed waiting for %s: %w", d.Shell, err)
		}
	}

	code, err := exitCode(classify(cmd.ProcessState))
	if err != nil {
		logger.Error("Shell script terminated abnormally.", "error", err, "duration_ms", time.Since(start).Milliseconds())
		return 0, err
	}
	logger.Info("Shell script finished.", "exit_code", code, "duration_ms", time.Since(start).Milliseconds())
	return code, nil
}
