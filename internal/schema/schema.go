// Package schema holds the HCL shape of a command document, decoded with
// gohcl before being translated into the config model.
package schema

import (
	"github.com/hashicorp/hcl/v2"
)

// Argument is an `arg "<id>" { ... }` block.
type Argument struct {
	ID           string         `hcl:"id,label"`
	Required     bool           `hcl:"required,optional"`
	Long         string         `hcl:"long,optional"`
	Short        string         `hcl:"short,optional"`
	ValueName    string         `hcl:"value_name,optional"`
	Aliases      []string       `hcl:"aliases,optional"`
	DefaultValue hcl.Expression `hcl:"default_value,optional"`
	Env          string         `hcl:"env,optional"`
	Help         string         `hcl:"help,optional"`
	LongHelp     string         `hcl:"long_help,optional"`
	Requires     string         `hcl:"requires,optional"`
	Group        string         `hcl:"group,optional"`
	Last         bool           `hcl:"last,optional"`
}

// Command is the body of a document and of every `subcommand "<key>"`
// block. Key stays empty for the document root.
type Command struct {
	Key         string      `hcl:"key,label"`
	Name        string      `hcl:"name,optional"`
	About       string      `hcl:"about,optional"`
	Version     string      `hcl:"version,optional"`
	Run         string      `hcl:"run,optional"`
	Args        []*Argument `hcl:"arg,block"`
	Subcommands []*Command  `hcl:"subcommand,block"`
}
