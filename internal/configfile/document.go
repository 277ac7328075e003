package configfile

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/vk/declcli/internal/config"
)

// document is the TOML and YAML shape of a command level.
type document struct {
	Name        string               `toml:"name" yaml:"name"`
	About       string               `toml:"about" yaml:"about"`
	Version     string               `toml:"version" yaml:"version"`
	Args        []argument           `toml:"args" yaml:"args"`
	Subcommands map[string]*document `toml:"subcommands" yaml:"subcommands"`
	Run         string               `toml:"run" yaml:"run"`
}

type argument struct {
	ID           string   `toml:"id" yaml:"id"`
	Required     bool     `toml:"required" yaml:"required"`
	Long         string   `toml:"long" yaml:"long"`
	Short        string   `toml:"short" yaml:"short"`
	ValueName    string   `toml:"value_name" yaml:"value_name"`
	Aliases      []string `toml:"aliases" yaml:"aliases"`
	DefaultValue any      `toml:"default_value" yaml:"default_value"`
	Env          string   `toml:"env" yaml:"env"`
	Help         string   `toml:"help" yaml:"help"`
	LongHelp     string   `toml:"long_help" yaml:"long_help"`
	Requires     string   `toml:"requires" yaml:"requires"`
	Group        string   `toml:"group" yaml:"group"`
	Last         bool     `toml:"last" yaml:"last"`
}

func (d *document) toModel(path string) (*config.CommandNode, error) {
	node := &config.CommandNode{
		Name:    d.Name,
		About:   d.About,
		Version: d.Version,
		Run:     d.Run,
	}
	for _, a := range d.Args {
		def, err := scalarString(a.DefaultValue)
		if err != nil {
			return nil, fmt.Errorf("%sargument %q: default_value %w", path, a.ID, err)
		}
		node.Args = append(node.Args, config.ArgumentSpec{
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
		})
	}
	if len(d.Subcommands) > 0 {
		node.Subcommands = make(map[string]*config.CommandNode, len(d.Subcommands))
	}
	keys := make([]string, 0, len(d.Subcommands))
	for key := range d.Subcommands {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		sub := d.Subcommands[key]
		if sub == nil {
			// An empty table or mapping is a valid command with no settings.
			sub = &document{}
		}
		child, err := sub.toModel(path + "subcommands." + key + ": ")
		if err != nil {
			return nil, err
		}
		node.Subcommands[key] = child
	}
	return node, nil
}

// scalarString renders a decoded default value. nil means no default.
func scalarString(v any) (*string, error) {
	var s string
	switch v := v.(type) {
	case nil:
		return nil, nil
	case string:
		s = v
	case bool:
		s = strconv.FormatBool(v)
	case int:
		s = strconv.Itoa(v)
	case int64:
		s = strconv.FormatInt(v, 10)
	case uint64:
		s = strconv.FormatUint(v, 10)
	case float64:
		s = strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return nil, fmt.Errorf("must be a string, number or bool, got %T", v)
	}
	return &s, nil
}
