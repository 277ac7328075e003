package main

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"

	"github.com/vk/declcli/internal/app"
	"github.com/vk/declcli/internal/cli"
	"github.com/vk/declcli/internal/configfile"
)

// main is the entrypoint for the declcli application.
func main() {
	// Use a minimal logger until the full one is configured.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	// The real main function handles errors and exit codes.
	if err := run(context.Background(), os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		var exitErr *cli.ExitError
		if errors.As(err, &exitErr) {
			if exitErr.Message != "" {
				cli.PrintError(os.Stderr, exitErr.Message)
			}
			os.Exit(exitErr.Code)
		}
		cli.PrintError(os.Stderr, err.Error())
		os.Exit(app.ExitFailure)
	}
}

// run encapsulates the main application logic for easier testing and error
// handling. Any non-zero exit is returned as a *cli.ExitError.
func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	appConfig, shouldExit, err := cli.Parse(args, stdout)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}

	a := app.NewApp(stdin, stdout, stderr, appConfig, configfile.NewLoader())
	code, err := a.Run(ctx)
	if err != nil {
		return &cli.ExitError{Code: code, Message: err.Error()}
	}
	if code != 0 {
		return &cli.ExitError{Code: code}
	}
	return nil
}
