package cmdtree

import (
	"errors"
	"fmt"
	"io"
)

// Shells lists the shells completion scripts can be generated for.
var Shells = []string{"bash", "zsh", "fish", "powershell"}

// GenCompletion writes the completion script for shell to w. The script
// asks `<root name> __complete` for candidates at runtime.
func (t *Tree) GenCompletion(w io.Writer, shell string) error {
	root := t.Root().Command
	if root.Name() == "" {
		return errors.New("completions require a root command name")
	}
	switch shell {
	case "bash":
		return root.GenBashCompletionV2(w, true)
	case "zsh":
		return root.GenZshCompletion(w)
	case "fish":
		return root.GenFishCompletion(w, true)
	case "powershell":
		return root.GenPowerShellCompletionWithDesc(w)
	default:
		return fmt.Errorf("unsupported shell %q (expected one of bash, zsh, fish, powershell)", shell)
	}
}
