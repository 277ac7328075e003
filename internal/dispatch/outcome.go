package dispatch

import (
	"errors"
	"fmt"
	"os"
	"syscall"
)

var (
	// ErrStart is returned when the shell could not be launched.
	ErrStart = errors.New("process could not start")
	// ErrProcessKilled is returned when the child was terminated by a signal.
	ErrProcessKilled = errors.New("process killed")
	// ErrUnexpectedExitCode is returned when the child's exit code does not
	// fit in 0..255.
	ErrUnexpectedExitCode = errors.New("unexpected exit code")
)

// MaxExitCode is the largest exit code that can be propagated.
const MaxExitCode = 255

// Outcome is the classified termination of a child process.
type Outcome interface {
	isOutcome()
}

// Exited is a normal termination with a propagatable code.
type Exited struct{ Code int }

// Killed is a termination by signal.
type Killed struct{ Signal os.Signal }

// OutOfRange is a normal termination whose code cannot be propagated.
type OutOfRange struct{ Code int }

func (Exited) isOutcome()     {}
func (Killed) isOutcome()     {}
func (OutOfRange) isOutcome() {}

// classify maps a finished process state to its Outcome.
func classify(state *os.ProcessState) Outcome {
	if ws, ok := state.Sys().(syscall.WaitStatus); ok && ws.Signaled() {
		return Killed{Signal: ws.Signal()}
	}
	code := state.ExitCode()
	if code < 0 || code > MaxExitCode {
		return OutOfRange{Code: code}
	}
	return Exited{Code: code}
}

// exitCode turns an Outcome into the code to report, or the fatal error.
func exitCode(o Outcome) (int, error) {
	switch o := o.(type) {
	case Exited:
		return o.Code, nil
	case Killed:
		return 0, fmt.Errorf("%w: %v", ErrProcessKilled, o.Signal)
	case OutOfRange:
		return 0, fmt.Errorf("%w: %d", ErrUnexpectedExitCode, o.Code)
	default:
		return 0, fmt.Errorf("%w: %T", ErrUnexpectedExitCode, o)
	}
}
