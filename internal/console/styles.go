package console

import (
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const errorPrefix = "ERROR: "

type styles struct {
	heading   lipgloss.Style
	container lipgloss.Style
	errorLine lipgloss.Style
	progress  lipgloss.Style
}

// newStyles binds styles to w so that colors are only emitted when w is a
// terminal.
func newStyles(w io.Writer) styles {
	renderer := lipgloss.NewRenderer(w)

	return styles{
		heading:   renderer.NewStyle().Bold(true),
		container: renderer.NewStyle().Foreground(lipgloss.Color("39")),
		errorLine: renderer.NewStyle().Foreground(lipgloss.Color("196")),
		progress:  renderer.NewStyle().Foreground(lipgloss.Color("220")),
	}
}

func (s styles) detail(line string) string {
	if strings.HasPrefix(line, errorPrefix) {
		return s.errorLine.Render(line)
	}

	return line
}

func indent(level int, text string) string {
	return strings.Repeat("  ", level) + text
}
