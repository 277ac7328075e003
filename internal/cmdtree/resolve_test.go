package cmdtree

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vk/declcli/internal/config"
)

func cmd(name string, subcommands map[string]*config.CommandNode) *config.CommandNode {
	return &config.CommandNode{Name: name, Subcommands: subcommands}
}

func TestResolve_AtRoot(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	root := cmd("root", nil)
	tree, _ := compile(t, root)
	m, err := tree.Match([]string{})
	require.NoError(t, err)

	// --- Act ---
	inv := tree.Resolve(m)

	// --- Assert ---
	require.Same(t, root, inv.Node.Config)
	require.Same(t, m, inv.Matches, "resolving a leaf must return its matches unchanged")
	require.Equal(t, "root", inv.Node.Config.Name)
}

func TestResolve_AtSubcommand(t *testing.T) {
	t.Parallel()

	root := cmd("root", map[string]*config.CommandNode{
		"child-command": cmd("child-command", nil),
	})
	tree, _ := compile(t, root)
	m, err := tree.Match([]string{"child-command"})
	require.NoError(t, err)

	inv := tree.Resolve(m)

	require.Equal(t, "child-command", inv.Node.Config.Name)
}

func TestResolve_DeepSubcommand(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	root := cmd("root", map[string]*config.CommandNode{
		"child-command": cmd("child-command", map[string]*config.CommandNode{
			"grandchild-command": cmd("grandchild-command", nil),
		}),
	})
	tree, _ := compile(t, root)
	m, err := tree.Match([]string{"child-command", "grandchild-command"})
	require.NoError(t, err)

	// --- Act ---
	inv := tree.Resolve(m)

	// --- Assert ---
	require.Equal(t, "grandchild-command", inv.Node.Config.Name)
	require.Equal(t, "root child-command grandchild-command", inv.Node.Path())
}

func TestResolve_ExplicitNameDiffersFromKey(t *testing.T) {
	t.Parallel()

	root := cmd("root", map[string]*config.CommandNode{
		"key": {Name: "renamed", Run: "true"},
	})
	tree, _ := compile(t, root)
	m, err := tree.Match([]string{"renamed"})
	require.NoError(t, err)

	inv := tree.Resolve(m)

	require.Same(t, root.Subcommands["key"], inv.Node.Config)
}

func TestResolve_IntermediateDirectoryNode(t *testing.T) {
	t.Parallel()

	root := cmd("root", map[string]*config.CommandNode{
		"group": cmd("", map[string]*config.CommandNode{
			"leaf": {Run: "true"},
		}),
	})
	tree, _ := compile(t, root)
	m, err := tree.Match([]string{"group"})
	require.NoError(t, err)

	inv := tree.Resolve(m)

	require.Equal(t, "group", inv.Node.Name)
	require.False(t, inv.Node.Config.HasRun())
}

func TestResolve_UnknownNameStopsAtCurrentLevel(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	// A hand-built result naming a subcommand the tree does not have.
	root := cmd("root", map[string]*config.CommandNode{
		"child": cmd("child", nil),
	})
	tree, _ := compile(t, root)
	m := matchesOf(map[string]string{"a": "b"}).
		WithSubcommand("ghost", matchesOf(nil))

	// --- Act ---
	inv := tree.Resolve(m)

	// --- Assert ---
	require.Same(t, root, inv.Node.Config)
	require.Same(t, m, inv.Matches)
}

func TestResolve_CarriesScopedMatches(t *testing.T) {
	t.Parallel()

	root := cmd("root", map[string]*config.CommandNode{
		"child": {Args: []config.ArgumentSpec{{ID: "name", Long: "name"}}},
	})
	tree, _ := compile(t, root)
	m, err := tree.Match([]string{"child", "--name", "x"})
	require.NoError(t, err)

	inv := tree.Resolve(m)

	v, ok := inv.Matches.Value("name")
	require.True(t, ok)
	require.Equal(t, "x", v)
	_, ok = m.Value("name")
	require.False(t, ok, "the root result must not carry the child's values")
}
