package cmdtree

import (
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/vk/declcli/internal/config"
)

// Node is one compiled command level.
type Node struct {
	Index int
	// Parent is the index of the enclosing command, -1 for the root.
	Parent int
	// Name is the effective name: the node's own name or its subcommand key.
	Name    string
	Config  *config.CommandNode
	Command *cobra.Command

	children map[string]int
	// flagNames maps an argument id to its canonical flag name and aliases.
	flagNames map[string][]string
	values    map[string]*textValue
	// bound holds positional tokens bound during the last match.
	bound map[string]string
}

// Path returns the space separated command path, e.g. "root child".
func (n *Node) Path() string {
	return n.Command.CommandPath()
}

// Help writes the command's help text to the tree's output.
func (n *Node) Help() error {
	return n.Command.Help()
}

// Tree is the arena of compiled nodes. Index 0 is the root.
type Tree struct {
	nodes     []*Node
	out       io.Writer
	errOut    io.Writer
	lookupEnv func(string) (string, bool)

	invoked int
}

// Option customizes a Tree at compile time.
type Option func(*Tree)

// WithOutput sets where help, version and completion output is written.
func WithOutput(out, errOut io.Writer) Option {
	return func(t *Tree) {
		t.out = out
		t.errOut = errOut
	}
}

// WithLookupEnv replaces os.LookupEnv for environment fallbacks.
func WithLookupEnv(lookup func(string) (string, bool)) Option {
	return func(t *Tree) {
		t.lookupEnv = lookup
	}
}

// Compile builds the arena for root. It is total over a validated tree.
func Compile(root *config.CommandNode, opts ...Option) *Tree {
	t := &Tree{
		out:       os.Stdout,
		errOut:    os.Stderr,
		lookupEnv: os.LookupEnv,
		invoked:   -1,
	}
	for _, opt := range opts {
		opt(t)
	}

	t.add(root, root.Name, -1)

	cmd := t.Root().Command
	cmd.TraverseChildren = true
	cmd.CompletionOptions.DisableDefaultCmd = true
	cmd.SetOut(t.out)
	cmd.SetErr(t.errOut)
	return t
}

func (t *Tree) add(cfg *config.CommandNode, name string, parent int) int {
	n := &Node{
		Index:     len(t.nodes),
		Parent:    parent,
		Name:      name,
		Config:    cfg,
		children:  make(map[string]int, len(cfg.Subcommands)),
		flagNames: make(map[string][]string),
		values:    make(map[string]*textValue),
	}
	t.nodes = append(t.nodes, n)
	n.Command = t.newCommand(n)

	for _, key := range cfg.SubcommandKeys() {
		sub := cfg.Subcommands[key]
		if sub == nil {
			continue
		}
		idx := t.add(sub, sub.EffectiveName(key), n.Index)
		child := t.nodes[idx]
		n.children[child.Name] = idx
		n.Command.AddCommand(child.Command)
	}
	return n.Index
}

func (t *Tree) newCommand(n *Node) *cobra.Command {
	cfg := n.Config
	cmd := &cobra.Command{
		Use:           useLine(n.Name, cfg.Args),
		Short:         cfg.About,
		Long:          longHelp(cfg),
		Version:       cfg.Version,
		SilenceErrors: true,
		SilenceUsage:  true,
		Args:          t.positionalArgs(n),
		RunE: func(cmd *cobra.Command, args []string) error {
			t.invoked = n.Index
			return nil
		},
	}
	if cfg.Version != "" {
		cmd.SetVersionTemplate("{{.Name}} {{.Version}}\n")
	}
	registerFlags(cmd.Flags(), n)
	return cmd
}

// Root returns the root node.
func (t *Tree) Root() *Node {
	return t.nodes[0]
}

// Len returns the number of compiled nodes.
func (t *Tree) Len() int {
	return len(t.nodes)
}

func (t *Tree) node(i int) *Node {
	return t.nodes[i]
}

// child returns the direct subcommand of n with the given effective name.
func (t *Tree) child(n *Node, name string) (*Node, bool) {
	idx, ok := n.children[name]
	if !ok {
		return nil, false
	}
	return t.nodes[idx], true
}

// path returns the indices from the root down to idx.
func (t *Tree) path(idx int) []int {
	var p []int
	for i := idx; i >= 0; i = t.nodes[i].Parent {
		p = append(p, i)
	}
	for l, r := 0, len(p)-1; l < r; l, r = l+1, r-1 {
		p[l], p[r] = p[r], p[l]
	}
	return p
}

func useLine(name string, args []config.ArgumentSpec) string {
	if name == "" {
		return ""
	}
	parts := []string{name}
	for _, a := range args {
		if !a.IsPositional() {
			continue
		}
		switch {
		case a.Last:
			parts = append(parts, "-- "+placeholder(a))
		default:
			parts = append(parts, placeholder(a))
		}
	}
	return strings.Join(parts, " ")
}

func placeholder(a config.ArgumentSpec) string {
	label := valueLabel(a)
	if a.Required {
		return "<" + label + ">"
	}
	return "[" + label + "]"
}

func valueLabel(a config.ArgumentSpec) string {
	if a.ValueName != "" {
		return a.ValueName
	}
	return strings.ToUpper(a.ID)
}

func longHelp(cfg *config.CommandNode) string {
	var lines []string
	for _, a := range cfg.Args {
		if !a.IsPositional() {
			continue
		}
		text := a.LongHelp
		if text == "" {
			text = a.Help
		}
		if a.Env != "" {
			text = strings.TrimSpace(text + " [env: " + a.Env + "]")
		}
		if a.DefaultValue != nil {
			text = strings.TrimSpace(text + " [default: " + *a.DefaultValue + "]")
		}
		lines = append(lines, "  "+placeholder(a)+"\t"+text)
	}
	if len(lines) == 0 {
		return ""
	}
	long := "Arguments:\n" + strings.Join(lines, "\n")
	if cfg.About != "" {
		long = cfg.About + "\n\n" + long
	}
	return long
}
