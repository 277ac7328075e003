package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

// PrintError writes msg to w behind an "Error:" prefix. The prefix is
// styled only when w is a color-capable terminal.
func PrintError(w io.Writer, msg string) {
	r := lipgloss.NewRenderer(w)
	prefix := r.NewStyle().Bold(true).Foreground(lipgloss.Color("9")).Render("Error:")
	fmt.Fprintf(w, "%s %s\n", prefix, msg)
}
