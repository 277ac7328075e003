package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func str(s string) *string { return &s }

func TestValidate_AcceptsWellFormedTree(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	root := &CommandNode{
		Name:    "tool",
		Version: "1.0.0",
		Args: []ArgumentSpec{
			{ID: "verbose", Long: "verbose", Short: "V"},
			{ID: "target", Required: true},
			{ID: "extra"},
			{ID: "rest", Last: true},
			{ID: "user", Long: "user", Requires: "password", Aliases: []string{"login"}},
			{ID: "password", Long: "password", DefaultValue: str("x")},
			{ID: "json", Long: "json", Group: "format"},
			{ID: "yaml", Long: "yaml", Group: "format"},
		},
		Subcommands: map[string]*CommandNode{
			"build": {Run: "make"},
			"deploy": {Name: "ship", Subcommands: map[string]*CommandNode{
				"prod": {Run: "echo prod"},
			}},
		},
	}

	// --- Act ---
	err := Validate(root)

	// --- Assert ---
	require.NoError(t, err)
}

func TestValidate_Rejects(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name        string
		root        *CommandNode
		errContains string
	}{
		{
			name:        "empty id",
			root:        &CommandNode{Name: "t", Args: []ArgumentSpec{{Long: "x"}}},
			errContains: "t: argument with an empty id",
		},
		{
			name:        "duplicate id",
			root:        &CommandNode{Name: "t", Args: []ArgumentSpec{{ID: "a"}, {ID: "a", Long: "a"}}},
			errContains: `duplicate argument id "a"`,
		},
		{
			name:        "long short flag",
			root:        &CommandNode{Name: "t", Args: []ArgumentSpec{{ID: "a", Short: "ab"}}},
			errContains: `short flag "ab" must be a single ASCII character`,
		},
		{
			name:        "non-ASCII short flag",
			root:        &CommandNode{Name: "t", Args: []ArgumentSpec{{ID: "a", Short: "é"}}},
			errContains: `short flag "é" must be a single ASCII character`,
		},
		{
			name:        "dash as short flag",
			root:        &CommandNode{Name: "t", Args: []ArgumentSpec{{ID: "a", Short: "-"}}},
			errContains: `invalid short flag "-"`,
		},
		{
			name:        "long flag with leading dashes",
			root:        &CommandNode{Name: "t", Args: []ArgumentSpec{{ID: "a", Long: "--a"}}},
			errContains: `invalid flag name "--a"`,
		},
		{
			name:        "long flag with whitespace",
			root:        &CommandNode{Name: "t", Args: []ArgumentSpec{{ID: "a", Long: "dry run"}}},
			errContains: `invalid flag name "dry run"`,
		},
		{
			name: "flag claimed twice",
			root: &CommandNode{Name: "t", Args: []ArgumentSpec{
				{ID: "a", Long: "name"},
				{ID: "b", Long: "other", Aliases: []string{"name"}},
			}},
			errContains: `flag "--name" is already used by argument "a"`,
		},
		{
			name: "short flag claimed twice",
			root: &CommandNode{Name: "t", Args: []ArgumentSpec{
				{ID: "a", Short: "x"},
				{ID: "b", Short: "x"},
			}},
			errContains: `flag "-x" is already used by argument "a"`,
		},
		{
			name:        "reserved help short",
			root:        &CommandNode{Name: "t", Args: []ArgumentSpec{{ID: "a", Short: "h"}}},
			errContains: `argument "a": flag -h is reserved`,
		},
		{
			name:        "reserved help long",
			root:        &CommandNode{Name: "t", Args: []ArgumentSpec{{ID: "a", Long: "help"}}},
			errContains: `argument "a": flag --help is reserved`,
		},
		{
			name:        "reserved help alias",
			root:        &CommandNode{Name: "t", Args: []ArgumentSpec{{ID: "a", Long: "assist", Aliases: []string{"help"}}}},
			errContains: `argument "a": flag --help is reserved`,
		},
		{
			name:        "short-only flag named help by its id",
			root:        &CommandNode{Name: "t", Args: []ArgumentSpec{{ID: "help", Short: "x"}}},
			errContains: `argument "help": flag --help is reserved`,
		},
		{
			name:        "reserved version on a versioned command",
			root:        &CommandNode{Name: "t", Version: "1", Args: []ArgumentSpec{{ID: "a", Long: "version"}}},
			errContains: `argument "a": flag --version is reserved`,
		},
		{
			name:        "reserved version alias on a versioned command",
			root:        &CommandNode{Name: "t", Version: "1", Args: []ArgumentSpec{{ID: "a", Long: "ver", Aliases: []string{"version"}}}},
			errContains: `argument "a": flag --version is reserved`,
		},
		{
			name:        "reserved version short on a versioned command",
			root:        &CommandNode{Name: "t", Version: "1", Args: []ArgumentSpec{{ID: "a", Short: "v"}}},
			errContains: `argument "a": flag -v is reserved`,
		},
		{
			name:        "aliases on a positional",
			root:        &CommandNode{Name: "t", Args: []ArgumentSpec{{ID: "a", Aliases: []string{"b"}}}},
			errContains: "aliases require a flag argument",
		},
		{
			name:        "last on a flag",
			root:        &CommandNode{Name: "t", Args: []ArgumentSpec{{ID: "a", Long: "a", Last: true}}},
			errContains: "last applies only to positional arguments",
		},
		{
			name:        "two last arguments",
			root:        &CommandNode{Name: "t", Args: []ArgumentSpec{{ID: "a", Last: true}, {ID: "b", Last: true}}},
			errContains: "only one argument may set last, found 2",
		},
		{
			name:        "required positional after optional",
			root:        &CommandNode{Name: "t", Args: []ArgumentSpec{{ID: "a"}, {ID: "b", Required: true}}},
			errContains: `argument "b": required positional follows an optional one`,
		},
		{
			name:        "requires unknown",
			root:        &CommandNode{Name: "t", Args: []ArgumentSpec{{ID: "a", Long: "a", Requires: "ghost"}}},
			errContains: `argument "a" requires unknown argument "ghost"`,
		},
		{
			name:        "requires itself",
			root:        &CommandNode{Name: "t", Args: []ArgumentSpec{{ID: "a", Long: "a", Requires: "a"}}},
			errContains: `argument "a" requires itself`,
		},
		{
			name:        "group colliding with an id",
			root:        &CommandNode{Name: "t", Args: []ArgumentSpec{{ID: "a", Long: "a", Group: "a"}}},
			errContains: `group "a" collides with an argument id`,
		},
		{
			name:        "nil subcommand",
			root:        &CommandNode{Name: "t", Subcommands: map[string]*CommandNode{"x": nil}},
			errContains: `subcommand "x" is empty`,
		},
		{
			name:        "empty subcommand key",
			root:        &CommandNode{Name: "t", Subcommands: map[string]*CommandNode{"": {}}},
			errContains: "subcommand with an empty key",
		},
		{
			name:        "help subcommand",
			root:        &CommandNode{Name: "t", Subcommands: map[string]*CommandNode{"help": {}}},
			errContains: "the name help is reserved",
		},
		{
			name:        "subcommand name with whitespace",
			root:        &CommandNode{Name: "t", Subcommands: map[string]*CommandNode{"a": {Name: "two words"}}},
			errContains: `name "two words" contains whitespace`,
		},
		{
			name: "two subcommands with one name",
			root: &CommandNode{Name: "t", Subcommands: map[string]*CommandNode{
				"a": {Name: "same"},
				"b": {Name: "same"},
			}},
			errContains: `subcommands "a" and "b" share the name "same"`,
		},
		{
			name: "nested error carries the command path",
			root: &CommandNode{Name: "t", Subcommands: map[string]*CommandNode{
				"k": {Name: "child", Args: []ArgumentSpec{{ID: ""}}},
			}},
			errContains: "t child: argument with an empty id",
		},
		{
			name:        "unnamed root",
			root:        &CommandNode{Args: []ArgumentSpec{{ID: ""}}},
			errContains: "<root>: argument with an empty id",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			err := Validate(tc.root)

			require.Error(t, err)
			require.Contains(t, err.Error(), tc.errContains)
		})
	}
}

func TestValidate_VersionFlagFreeWithoutVersion(t *testing.T) {
	t.Parallel()

	root := &CommandNode{Name: "t", Args: []ArgumentSpec{
		{ID: "version", Short: "v"},
		{ID: "other", Long: "other", Aliases: []string{"version-pin"}},
	}}

	require.NoError(t, Validate(root))
}

func TestValidate_ReportsAllProblems(t *testing.T) {
	t.Parallel()

	root := &CommandNode{Name: "t", Args: []ArgumentSpec{
		{ID: "a", Short: "ab"},
		{ID: "b", Long: "b", Requires: "nope"},
	}}

	err := Validate(root)

	require.Error(t, err)
	require.Contains(t, err.Error(), "must be a single ASCII character")
	require.Contains(t, err.Error(), "requires unknown argument")
}

func TestValidate_NilRoot(t *testing.T) {
	t.Parallel()

	require.EqualError(t, Validate(nil), "configuration is empty")
}

func TestCommandNode_Helpers(t *testing.T) {
	t.Parallel()

	n := &CommandNode{
		Args: []ArgumentSpec{{ID: "a", Long: "a"}, {ID: "p"}},
		Subcommands: map[string]*CommandNode{
			"zeta":  {},
			"alpha": {},
		},
	}

	require.Equal(t, "key", n.EffectiveName("key"))
	require.False(t, n.HasRun())
	require.Equal(t, []string{"alpha", "zeta"}, n.SubcommandKeys())

	a, ok := n.Arg("a")
	require.True(t, ok)
	require.False(t, a.IsPositional())

	p, ok := n.Arg("p")
	require.True(t, ok)
	require.True(t, p.IsPositional())

	_, ok = n.Arg("missing")
	require.False(t, ok)
}
