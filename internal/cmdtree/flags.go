package cmdtree

import (
	"strings"

	"github.com/spf13/pflag"
	"github.com/vk/declcli/internal/config"
)

// textValue is a string pflag.Value whose Type is the argument's value
// name, so usage lines read "--output FILE" instead of "--output string".
type textValue struct {
	value    string
	typeName string
}

func (v *textValue) String() string     { return v.value }
func (v *textValue) Set(s string) error { v.value = s; return nil }
func (v *textValue) Type() string       { return v.typeName }

// registerFlags adds one flag per non-positional argument. Aliases are
// hidden flags sharing the canonical flag's value.
func registerFlags(fs *pflag.FlagSet, n *Node) {
	for _, a := range n.Config.Args {
		if a.IsPositional() {
			continue
		}

		name := a.Long
		if name == "" {
			name = a.ID
		}
		v := &textValue{typeName: "string"}
		if a.ValueName != "" {
			v.typeName = a.ValueName
		}
		if a.DefaultValue != nil {
			v.value = *a.DefaultValue
		}

		fs.VarP(v, name, a.Short, flagUsage(a))
		for _, alias := range a.Aliases {
			fs.Var(v, alias, flagUsage(a))
			_ = fs.MarkHidden(alias)
		}

		n.flagNames[a.ID] = append([]string{name}, a.Aliases...)
		n.values[a.ID] = v
	}
}

func flagUsage(a config.ArgumentSpec) string {
	text := a.Help
	if text == "" {
		text = a.LongHelp
	}
	if a.Required {
		text = strings.TrimSpace(text + " (required)")
	}
	if a.Env != "" {
		text = strings.TrimSpace(text + " [env: " + a.Env + "]")
	}
	return text
}

// display renders an argument the way users type it.
func display(a config.ArgumentSpec) string {
	switch {
	case a.Long != "":
		return "--" + a.Long
	case a.Short != "":
		return "-" + a.Short
	default:
		return "<" + valueLabel(a) + ">"
	}
}
