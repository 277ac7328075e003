package config

import "sort"

// CommandNode is the format-agnostic representation of one command level.
type CommandNode struct {
	// Name overrides the key the node is nested under. Empty means unset.
	Name    string
	About   string
	Version string
	// Args is ordered: positional arguments are matched in sequence.
	Args        []ArgumentSpec
	Subcommands map[string]*CommandNode
	// Run is the script executed when this node is the invoked leaf.
	Run string
}

// ArgumentSpec defines a single argument of a command.
type ArgumentSpec struct {
	ID        string
	Required  bool
	Long      string
	Short     string
	ValueName string
	Aliases   []string
	// DefaultValue is nil when the argument has no default.
	DefaultValue *string
	Env          string
	Help         string
	LongHelp     string
	Requires     string
	Group        string
	// Last marks a positional that only takes the token after `--`.
	Last bool
}

// IsPositional reports whether the argument has no flag form.
func (a ArgumentSpec) IsPositional() bool {
	return a.Long == "" && a.Short == ""
}

// EffectiveName returns the node's own name, or key when it has none.
func (n *CommandNode) EffectiveName(key string) string {
	if n.Name != "" {
		return n.Name
	}
	return key
}

// HasRun reports whether the node carries a script.
func (n *CommandNode) HasRun() bool {
	return n.Run != ""
}

// SubcommandKeys returns the subcommand keys in sorted order.
func (n *CommandNode) SubcommandKeys() []string {
	keys := make([]string, 0, len(n.Subcommands))
	for k := range n.Subcommands {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Arg returns the argument with the given id.
func (n *CommandNode) Arg(id string) (ArgumentSpec, bool) {
	for _, a := range n.Args {
		if a.ID == id {
			return a, true
		}
	}
	return ArgumentSpec{}, false
}
