package hcl

import (
	"context"
	"fmt"
	"strings"

	"github.com/vk/declcli/internal/config"
	"github.com/vk/declcli/internal/schema"
)

// translateCommand converts a decoded command block, and everything nested
// in it, into the model. path names the enclosing subcommand keys for
// error messages.
func translateCommand(ctx context.Context, s *schema.Command, path []string) (*config.CommandNode, error) {
	node := &config.CommandNode{
		Name:    s.Name,
		About:   s.About,
		Version: s.Version,
		Run:     s.Run,
	}

	for _, a := range s.Args {
		arg, err := translateArgument(ctx, a)
		if err != nil {
			return nil, fmt.Errorf("%sargument %q: %w", location(path), a.ID, err)
		}
		node.Args = append(node.Args, arg)
	}

	if len(s.Subcommands) > 0 {
		node.Subcommands = make(map[string]*config.CommandNode, len(s.Subcommands))
	}
	for _, sub := range s.Subcommands {
		if _, dup := node.Subcommands[sub.Key]; dup {
			return nil, fmt.Errorf("%sduplicate subcommand %q", location(path), sub.Key)
		}
		child, err := translateCommand(ctx, sub, append(path[:len(path):len(path)], sub.Key))
		if err != nil {
			return nil, err
		}
		node.Subcommands[sub.Key] = child
	}
	return node, nil
}

func translateArgument(ctx context.Context, a *schema.Argument) (config.ArgumentSpec, error) {
	def, err := defaultString(ctx, a.DefaultValue)
	if err != nil {
		return config.ArgumentSpec{}, err
	}
	return config.ArgumentSpec{
		ID:           a.ID,
		Required:     a.Required,
		Long:         a.Long,
		Short:        a.Short,
		ValueName:    a.ValueName,
		Aliases:      a.Aliases,
		DefaultValue: def,
		Env:          a.Env,
		Help:         a.Help,
		LongHelp:     a.LongHelp,
		Requires:     a.Requires,
		Group:        a.Group,
		Last:         a.Last,
	}, nil
}

func location(path []string) string {
	if len(path) == 0 {
		return ""
	}
	return "subcommand " + strings.Join(path, " ") + ": "
}
