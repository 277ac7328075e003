package cmdtree

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/vk/declcli/internal/config"
)

// ExitUsage is the exit code for input the compiled command rejects.
const ExitUsage = 2

// ErrDisplayed reports that the parser answered the input itself (help,
// version or completion output) and nothing was invoked.
var ErrDisplayed = errors.New("output displayed")

// ParseError is a parse failure together with the exit code it maps to.
// Help and version requests are ParseErrors with Code 0 wrapping
// ErrDisplayed.
type ParseError struct {
	Code int
	// Command is the path of the command the input was matched against.
	Command string
	Err     error
}

// Error implements the error interface for ParseError.
func (e *ParseError) Error() string {
	return e.Err.Error()
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Match parses argv (without the program name) against the tree. A Tree
// matches a single argv: flag state is not reset between calls.
func (t *Tree) Match(argv []string) (*Matches, error) {
	t.invoked = -1
	for _, n := range t.nodes {
		n.bound = nil
	}

	root := t.Root().Command
	root.SetArgs(append([]string{}, argv...))
	cmd, err := root.ExecuteC()
	if err != nil {
		path := root.CommandPath()
		if cmd != nil {
			path = cmd.CommandPath()
		}
		return nil, &ParseError{Code: ExitUsage, Command: path, Err: err}
	}
	if t.invoked < 0 {
		if cmd == nil {
			cmd = root
		}
		return nil, &ParseError{Code: 0, Command: cmd.CommandPath(), Err: ErrDisplayed}
	}

	var top, prev *Matches
	for _, idx := range t.path(t.invoked) {
		n := t.node(idx)
		// Tokens left on an ancestor's flag set came after a `--` that
		// cobra's traversal read as a flag; they never reached a command.
		if idx != t.invoked {
			if rest := n.Command.Flags().Args(); len(rest) > 0 {
				return nil, &ParseError{Code: ExitUsage, Command: n.Path(), Err: &surplusError{token: rest[0]}}
			}
		}
		m, err := t.collect(n)
		if err != nil {
			return nil, &ParseError{Code: ExitUsage, Command: n.Path(), Err: err}
		}
		if prev == nil {
			top = m
		} else {
			prev.WithSubcommand(n.Name, m)
		}
		prev = m
	}
	return top, nil
}

// positionalArgs binds the positional tokens cobra leaves after flag
// parsing to the node's positional arguments, in declaration order.
func (t *Tree) positionalArgs(n *Node) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		bound, err := bindPositionals(n.Config.Args, args, cmd.ArgsLenAtDash())
		if err != nil {
			var extra *surplusError
			if errors.As(err, &extra) && cmd.HasSubCommands() && !hasPositionals(n.Config.Args) {
				return fmt.Errorf("unknown command %q for %q", extra.token, cmd.CommandPath())
			}
			return err
		}
		n.bound = bound
		return nil
	}
}

type surplusError struct {
	token string
}

func (e *surplusError) Error() string {
	return fmt.Sprintf("unexpected argument %q", e.token)
}

func hasPositionals(specs []config.ArgumentSpec) bool {
	for _, a := range specs {
		if a.IsPositional() {
			return true
		}
	}
	return false
}

// bindPositionals assigns tokens before `--` to regular positionals. Tokens
// after `--` go to the `last` positional when there is one, otherwise they
// keep filling regular positionals.
func bindPositionals(specs []config.ArgumentSpec, args []string, dash int) (map[string]string, error) {
	var regular []config.ArgumentSpec
	var last *config.ArgumentSpec
	for i := range specs {
		a := specs[i]
		if !a.IsPositional() {
			continue
		}
		if a.Last {
			last = &specs[i]
			continue
		}
		regular = append(regular, a)
	}

	before, after := args, []string(nil)
	if dash >= 0 && dash <= len(args) {
		before, after = args[:dash], args[dash:]
	}
	tokens := before
	if last == nil {
		tokens = append(append([]string{}, before...), after...)
		after = nil
	}

	bound := make(map[string]string, len(regular)+1)
	for i, tok := range tokens {
		if i >= len(regular) {
			return nil, &surplusError{token: tok}
		}
		bound[regular[i].ID] = tok
	}
	if last != nil {
		switch len(after) {
		case 0:
		case 1:
			bound[last.ID] = after[0]
		default:
			return nil, &surplusError{token: after[1]}
		}
	}
	return bound, nil
}

// collect resolves every argument of n (command line, then environment,
// then default) and applies the cross-argument checks.
func (t *Tree) collect(n *Node) (*Matches, error) {
	m := newMatches()
	for _, a := range n.Config.Args {
		if v, ok := t.commandLineValue(n, a); ok {
			m.set(a.ID, v, SourceCommandLine)
			continue
		}
		if a.Env != "" {
			if v, ok := t.lookupEnv(a.Env); ok && v != "" {
				m.set(a.ID, v, SourceEnv)
				continue
			}
		}
		if a.DefaultValue != nil {
			m.set(a.ID, *a.DefaultValue, SourceDefault)
		}
	}

	var missing []string
	for _, a := range n.Config.Args {
		if _, ok := m.Value(a.ID); a.Required && !ok {
			missing = append(missing, display(a))
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("the following required arguments were not provided: %s", strings.Join(missing, ", "))
	}

	for _, a := range n.Config.Args {
		if a.Requires == "" || !m.Explicit(a.ID) {
			continue
		}
		if _, ok := m.Value(a.Requires); !ok {
			target, _ := n.Config.Arg(a.Requires)
			return nil, fmt.Errorf("the argument %s requires %s", display(a), display(target))
		}
	}

	groups := make(map[string]config.ArgumentSpec)
	for _, a := range n.Config.Args {
		if a.Group == "" || !m.Explicit(a.ID) {
			continue
		}
		if first, seen := groups[a.Group]; seen {
			return nil, fmt.Errorf("the argument %s cannot be used with %s", display(first), display(a))
		}
		groups[a.Group] = a
	}
	return m, nil
}

func (t *Tree) commandLineValue(n *Node, a config.ArgumentSpec) (string, bool) {
	if a.IsPositional() {
		v, ok := n.bound[a.ID]
		return v, ok
	}
	fs := n.Command.Flags()
	for _, name := range n.flagNames[a.ID] {
		if f := fs.Lookup(name); f != nil && f.Changed {
			return n.values[a.ID].String(), true
		}
	}
	return "", false
}
