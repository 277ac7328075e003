// Package cli is responsible for parsing declcli's own command-line
// arguments, validating user input, and handling process-level concerns
// like exit codes and error output. It translates the `run` and
// `completions` commands into the application's internal configuration.
package cli
