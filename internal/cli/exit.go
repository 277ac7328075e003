package cli

// ExitUsage is the exit code for a malformed declcli invocation.
const ExitUsage = 2

// ExitError is a custom error type that includes a specific exit code. An
// empty Message exits silently.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}
