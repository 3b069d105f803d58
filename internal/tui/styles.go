package tui

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/gouthamgo/apex-academy/internal/lesson"
)

// Styles holds the lipgloss styles for the browser. They are built
// once per Model from a renderer with a forced ANSI256 profile: output
// is always for terminal display, and auto-detection would strip color
// under test where no TTY exists.
type Styles struct {
	Title      lipgloss.Style
	Heading1   lipgloss.Style
	Heading2   lipgloss.Style
	Heading3   lipgloss.Style
	Lead       lipgloss.Style
	Bullet     lipgloss.Style
	InlineCode lipgloss.Style
	Paragraph  lipgloss.Style
	Language   lipgloss.Style
	Cursor     lipgloss.Style
	Notice     lipgloss.Style
	Help       lipgloss.Style
	Faint      lipgloss.Style

	Annotation map[lesson.Severity]lipgloss.Style
}

func defaultStyles() Styles {
	renderer := lipgloss.NewRenderer(os.Stderr, termenv.WithProfile(termenv.ANSI256))
	renderer.SetColorProfile(termenv.ANSI256)
	style := renderer.NewStyle

	return Styles{
		Title:      style().Bold(true).Foreground(lipgloss.Color("39")),
		Heading1:   style().Bold(true).Foreground(lipgloss.Color("39")),
		Heading2:   style().Bold(true).Foreground(lipgloss.Color("75")),
		Heading3:   style().Bold(true).Foreground(lipgloss.Color("117")),
		Lead:       style().Bold(true).Foreground(lipgloss.Color("213")),
		Bullet:     style().Foreground(lipgloss.Color("245")),
		InlineCode: style().Foreground(lipgloss.Color("203")).Background(lipgloss.Color("236")),
		Paragraph:  style(),
		Language:   style().Faint(true),
		Cursor:     style().Bold(true).Foreground(lipgloss.Color("205")),
		Notice:     style().Bold(true).Foreground(lipgloss.Color("42")),
		Help:       style().Faint(true),
		Faint:      style().Faint(true),

		Annotation: map[lesson.Severity]lipgloss.Style{
			lesson.SeverityInfo:    style().Foreground(lipgloss.Color("75")),
			lesson.SeverityWarning: style().Foreground(lipgloss.Color("214")),
			lesson.SeverityDanger:  style().Foreground(lipgloss.Color("203")),
			lesson.SeveritySuccess: style().Foreground(lipgloss.Color("42")),
		},
	}
}
