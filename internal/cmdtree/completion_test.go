package cmdtree

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vk/declcli/internal/config"
)

func TestGenCompletion(t *testing.T) {
	t.Parallel()

	for _, shell := range Shells {
		t.Run(shell, func(t *testing.T) {
			t.Parallel()

			tree, _ := compile(t, &config.CommandNode{
				Name:        "mytool",
				Subcommands: map[string]*config.CommandNode{"build": {Run: "make"}},
			})
			out := &bytes.Buffer{}

			err := tree.GenCompletion(out, shell)

			require.NoError(t, err)
			require.Contains(t, out.String(), "mytool")
		})
	}
}

func TestGenCompletion_Errors(t *testing.T) {
	t.Parallel()

	t.Run("unsupported shell", func(t *testing.T) {
		t.Parallel()
		tree, _ := compile(t, &config.CommandNode{Name: "mytool"})

		err := tree.GenCompletion(&bytes.Buffer{}, "elvish")

		require.ErrorContains(t, err, `unsupported shell "elvish"`)
	})

	t.Run("nameless root", func(t *testing.T) {
		t.Parallel()
		tree, _ := compile(t, &config.CommandNode{})

		err := tree.GenCompletion(&bytes.Buffer{}, "bash")

		require.ErrorContains(t, err, "root command name")
	})
}
