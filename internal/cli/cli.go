package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"
	"github.com/vk/declcli/internal/app"
	"github.com/vk/declcli/internal/cmdtree"
	"github.com/vk/declcli/internal/dispatch"
)

// Version is reported by `declcli --version`. Overridden at build time.
var Version = "dev"

// Parse processes command-line arguments. It returns a populated Config,
// a boolean indicating if the program should exit cleanly (help or version
// was printed), or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")

	var cfg app.Config
	root := newRootCommand(&cfg)
	// A nil slice would make cobra fall back to os.Args.
	root.SetArgs(append([]string{}, args...))
	root.SetOut(output)
	root.SetErr(output)

	if err := root.Execute(); err != nil {
		return nil, false, &ExitError{Code: ExitUsage, Message: err.Error()}
	}
	if cfg.Mode == "" {
		slog.Debug("No command selected, exiting after output.")
		return nil, true, nil
	}

	config, err := app.NewConfig(cfg)
	if err != nil {
		return nil, false, &ExitError{Code: ExitUsage, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "mode", config.Mode, "config", config.ConfigPath)
	return config, false, nil
}

func newRootCommand(cfg *app.Config) *cobra.Command {
	root := &cobra.Command{
		Use:   "declcli",
		Short: "Run a command-line interface described by a configuration file.",
		Long: `declcli reads a TOML, YAML or HCL document describing a tree of commands and
arguments, parses the forwarded arguments against it and runs the invoked
command's shell script with the argument values exported as environment
variables.`,
		Version:       Version,
		SilenceErrors: true,
		SilenceUsage:  true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}
	root.CompletionOptions.DisableDefaultCmd = true

	flags := root.PersistentFlags()
	flags.StringVar(&cfg.LogLevel, "log-level", "off", "Set the logging level. Options: "+strings.Join(app.LogLevels, ", ")+".")
	flags.StringVar(&cfg.LogFormat, "log-format", "text", "Log output format. Options: "+strings.Join(app.LogFormats, ", ")+".")

	root.AddCommand(newRunCommand(cfg), newCompletionsCommand(cfg))
	return root
}

func newRunCommand(cfg *app.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run -c <path> [flags] [-- ARGS...]",
		Short: "Parse ARGS against the configured commands and run the invoked script.",
		Long: `Parse ARGS against the configured commands and run the invoked script.

Exit codes:
  <n>  the exit code of the invoked script
  0    help or version output was printed
  1    the invoked command has no script (its help is printed), or a fatal error
  2    ARGS were rejected by the configured commands`,
		Example: `  declcli run -c cli.toml -- deploy --region eu-west-1 api
  declcli run -c ./conf --print-args -- build`,
		Args: func(cmd *cobra.Command, args []string) error {
			dash := cmd.ArgsLenAtDash()
			switch {
			case dash < 0 && len(args) > 0:
				return fmt.Errorf("arguments for the configured command must follow --, got %q", args[0])
			case dash > 0:
				return fmt.Errorf("unexpected argument %q before --", args[0])
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg.Mode = app.ModeRun
			if len(args) > 0 {
				cfg.Args = args
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&cfg.ConfigPath, "config", "c", "", "Path to the command document or a directory containing one.")
	cmd.Flags().StringVar(&cfg.Shell, "shell", dispatch.DefaultShell, "Shell that runs scripts as <shell> -c <script>.")
	cmd.Flags().BoolVar(&cfg.PrintArgs, "print-args", false, "Print the invoked command's arguments as JSON instead of running its script.")
	_ = cmd.MarkFlagRequired("config")
	return cmd
}

func newCompletionsCommand(cfg *app.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:       "completions <" + strings.Join(cmdtree.Shells, "|") + "> -c <path>",
		Short:     "Print a shell completion script for the configured root command.",
		ValidArgs: cmdtree.Shells,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("exactly one shell name is required")
			}
			return cobra.OnlyValidArgs(cmd, args)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg.Mode = app.ModeCompletions
			cfg.CompletionShell = args[0]
			return nil
		},
	}
	cmd.Flags().StringVarP(&cfg.ConfigPath, "config", "c", "", "Path to the command document or a directory containing one.")
	_ = cmd.MarkFlagRequired("config")
	return cmd
}
