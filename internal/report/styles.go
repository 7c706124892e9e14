package report

import (
	"io"

	"github.com/charmbracelet/lipgloss"
)

var (
	colorHeading = lipgloss.Color("#8B5CF6")
	colorError   = lipgloss.Color("#EF4444")
	colorWarning = lipgloss.Color("#F59E0B")
	colorSuccess = lipgloss.Color("#10B981")
	colorMuted   = lipgloss.Color("#6B7280")
)

// palette renders through a lipgloss renderer bound to the output writer.
// A disabled palette returns text untouched.
type palette struct {
	enabled bool

	heading lipgloss.Style
	err     lipgloss.Style
	warning lipgloss.Style
	success lipgloss.Style
	muted   lipgloss.Style
}

func newPalette(w io.Writer, enabled bool) palette {
	r := lipgloss.NewRenderer(w)

	return palette{
		enabled: enabled,

		heading: r.NewStyle().Foreground(colorHeading).Bold(true),
		err:     r.NewStyle().Foreground(colorError).Bold(true),
		warning: r.NewStyle().Foreground(colorWarning),
		success: r.NewStyle().Foreground(colorSuccess).Bold(true),
		muted:   r.NewStyle().Foreground(colorMuted),
	}
}

func (p palette) render(style lipgloss.Style, text string) string {
	if !p.enabled {
		return text
	}
	return style.Render(text)
}
