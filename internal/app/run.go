package app

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/vk/declcli/internal/cmdtree"
	"github.com/vk/declcli/internal/ctxlog"
	"github.com/vk/declcli/internal/dispatch"
	"github.com/vk/declcli/internal/export"
)

// ExitFailure is returned alongside every fatal error.
const ExitFailure = 1

// Run executes one invocation and returns the process exit code. A non-nil
// error carries the message to report; the code is meaningful either way.
func (a *App) Run(ctx context.Context) (int, error) {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	ctx = ctxlog.With(ctx, "invocation", uuid.NewString())
	logger := ctxlog.FromContext(ctx)
	logger.Debug("App.Run method started.", "mode", a.config.Mode, "config", a.config.ConfigPath)

	root, err := a.loader.Load(ctx, a.config.ConfigPath)
	if err != nil {
		return ExitFailure, fmt.Errorf("failed to load configuration: %w", err)
	}

	tree := cmdtree.Compile(root,
		cmdtree.WithOutput(a.stdout, a.stderr),
		cmdtree.WithLookupEnv(a.lookupEnv),
	)
	logger.Debug("Command tree compiled.", "nodes", tree.Len())

	if a.config.Mode == ModeCompletions {
		return a.completions(ctx, tree)
	}
	return a.run(ctx, tree)
}

func (a *App) run(ctx context.Context, tree *cmdtree.Tree) (int, error) {
	logger := ctxlog.FromContext(ctx)

	m, err := tree.Match(a.config.Args)
	if err != nil {
		var pe *cmdtree.ParseError
		if !errors.As(err, &pe) {
			return ExitFailure, err
		}
		if errors.Is(pe, cmdtree.ErrDisplayed) {
			logger.Debug("Help or version output displayed.", "command", pe.Command)
			return pe.Code, nil
		}
		logger.Debug("Arguments rejected.", "command", pe.Command, "error", pe.Err)
		if pe.Command == "" {
			return pe.Code, pe
		}
		return pe.Code, fmt.Errorf("%w\nRun '%s --help' for usage.", pe, pe.Command)
	}

	inv := tree.Resolve(m)
	leaf := inv.Node.Config
	ctx = ctxlog.With(ctx, "command", inv.Node.Path())
	logger = ctxlog.FromContext(ctx)
	logger.Debug("Command resolved.", "has_run", leaf.HasRun(), "sources", argSources(inv.Matches))

	if !leaf.HasRun() {
		logger.Debug("Command has no script, printing help.")
		if err := inv.Node.Help(); err != nil {
			return ExitFailure, fmt.Errorf("failed to print help: %w", err)
		}
		return ExitFailure, nil
	}

	if a.config.PrintArgs {
		out, err := export.JSON(leaf.Args, inv.Matches)
		if err != nil {
			return ExitFailure, fmt.Errorf("failed to render arguments: %w", err)
		}
		fmt.Fprintln(a.stdout, string(out))
		return 0, nil
	}

	d := dispatch.New(a.config.Shell)
	d.Stdin, d.Stdout, d.Stderr = a.stdin, a.stdout, a.stderr
	code, err := d.Execute(ctx, leaf.Run, export.Env(leaf.Args, inv.Matches))
	if err != nil {
		return ExitFailure, fmt.Errorf("failed to run %s: %w", inv.Node.Path(), err)
	}
	logger.Debug("App.Run method finished.", "exit_code", code)
	return code, nil
}

// argSources lists each bound id of m with where its value came from.
func argSources(m *cmdtree.Matches) string {
	parts := make([]string, 0, len(m.IDs()))
	for _, id := range m.IDs() {
		parts = append(parts, id+":"+m.Source(id).String())
	}
	return strings.Join(parts, ",")
}

func (a *App) completions(ctx context.Context, tree *cmdtree.Tree) (int, error) {
	ctxlog.FromContext(ctx).Debug("Generating completion script.", "shell", a.config.CompletionShell)
	if err := tree.GenCompletion(a.stdout, a.config.CompletionShell); err != nil {
		return ExitFailure, fmt.Errorf("failed to generate completions: %w", err)
	}
	return 0, nil
}
