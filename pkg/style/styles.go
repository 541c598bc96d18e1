// Package style holds the lipgloss styles used for terminal output.
package style

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// Styles is a set of styles bound to one output.
type Styles struct {
	Title   lipgloss.Style
	Success lipgloss.Style
	Warning lipgloss.Style
	Error   lipgloss.Style
	Info    lipgloss.Style
	Muted   lipgloss.Style
	Path    lipgloss.Style

	colored bool
}

// Colored reports whether these styles emit ANSI sequences.
func (s Styles) Colored() bool {
	return s.colored
}

// For returns styles for w. Colors are used only when w is a terminal and
// noColor is false; lipgloss also honors NO_COLOR on its own.
func For(w io.Writer, noColor bool) Styles {
	r := lipgloss.NewRenderer(w)
	colored := !noColor && IsTerminal(w)
	if !colored {
		r.SetColorProfile(termenv.Ascii)
	}

	return Styles{
		Title:   r.NewStyle().Foreground(HeadingColor).Bold(true),
		Success: r.NewStyle().Foreground(SuccessColor).Bold(true),
		Warning: r.NewStyle().Foreground(WarningColor).Bold(true),
		Error:   r.NewStyle().Foreground(ErrorColor).Bold(true),
		Info:    r.NewStyle().Foreground(InfoColor),
		Muted:   r.NewStyle().Foreground(MutedColor),
		Path:    r.NewStyle().Foreground(PathColor).Italic(true),
		colored: colored && r.ColorProfile() != termenv.Ascii,
	}
}

// IsTerminal reports whether w is a terminal file.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
