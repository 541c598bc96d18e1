// Package output renders a dotfiles.Report for people (styled text) or
// for tools (YAML, TOML).
package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/arthur-debert/housekeeper/pkg/dotfiles"
	"github.com/arthur-debert/housekeeper/pkg/paths"
	"github.com/arthur-debert/housekeeper/pkg/style"
	toml "github.com/pelletier/go-toml/v2"
	"github.com/pterm/pterm"
	"gopkg.in/yaml.v3"
)

// Renderer writes reports in one format.
type Renderer struct {
	writer io.Writer
	format Format
	styles style.Styles
}

// NewRenderer creates a Renderer for w. noColor disables styling even on a terminal.
func NewRenderer(w io.Writer, format Format, noColor bool) *Renderer {
	if format == "" {
		format = FormatText
	}
	return &Renderer{
		writer: w,
		format: format,
		styles: style.For(w, noColor),
	}
}

// Render writes report.
func (r *Renderer) Render(report *dotfiles.Report) error {
	switch r.format {
	case FormatText:
		return r.renderText(report)
	case FormatYAML:
		enc := yaml.NewEncoder(r.writer)
		enc.SetIndent(2)
		if err := enc.Encode(report); err != nil {
			return fmt.Errorf("failed to encode yaml report: %w", err)
		}
		return enc.Close()
	case FormatTOML:
		if err := toml.NewEncoder(r.writer).Encode(report); err != nil {
			return fmt.Errorf("failed to encode toml report: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("unknown output format %q", r.format)
	}
}

func (r *Renderer) renderText(report *dotfiles.Report) error {
	var b strings.Builder

	if report.SourceDirectory != "" && report.HomeDirectory != "" {
		b.WriteString(r.styles.Title.Render(fmt.Sprintf("Linking %s into %s", report.SourceDirectory, report.HomeDirectory)))
		b.WriteByte('\n')
	}

	for _, o := range report.Outcomes {
		b.WriteString(r.outcomeLine(o))
		b.WriteByte('\n')
	}

	b.WriteString(r.summary(report))
	b.WriteByte('\n')

	_, err := io.WriteString(r.writer, b.String())
	return err
}

func (r *Renderer) outcomeLine(o dotfiles.Outcome) string {
	s := r.styles
	name := paths.DotName(o.Name)

	switch o.Status {
	case dotfiles.StatusLinked:
		line := fmt.Sprintf("  %s %-14s %s -> %s", s.Success.Render("✓"), linkVerb(o), name, s.Path.Render(o.Source))
		if o.Previous != "" {
			line += " " + s.Info.Render("(was "+o.Previous+")")
		}
		return line
	case dotfiles.StatusSkipped:
		return fmt.Sprintf("  %s %-14s %s %s", s.Warning.Render("!"), "skipped", name, s.Muted.Render("("+describe(o.Reason)+")"))
	default:
		return fmt.Sprintf("  %s %-14s %s %s", s.Error.Render("✗"), "failed", name, s.Error.Render(o.Error))
	}
}

func linkVerb(o dotfiles.Outcome) string {
	switch {
	case o.DryRun && o.Replaced:
		return "would replace"
	case o.DryRun:
		return "would link"
	case o.Replaced:
		return "replaced"
	default:
		return "linked"
	}
}

func (r *Renderer) summary(report *dotfiles.Report) string {
	parts := []string{
		fmt.Sprintf("%d linked", report.Linked()),
		fmt.Sprintf("%d skipped", report.Skipped()),
	}
	if n := report.Failed(); n > 0 {
		parts = append(parts, fmt.Sprintf("%d failed", n))
	}

	line := "Summary: " + strings.Join(parts, ", ")
	if report.DryRun {
		line += " (dry run, nothing changed)"
	}
	if r.styles.Colored() {
		return pterm.Bold.Sprint(line)
	}
	return line
}

func describe(reason dotfiles.Reason) string {
	switch reason {
	case dotfiles.ReasonDestinationIsDirectory:
		return "destination is a directory"
	case dotfiles.ReasonDestinationIsFile:
		return "destination is a file, use --force to replace it"
	default:
		return string(reason)
	}
}
