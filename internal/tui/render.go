package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/gouthamgo/apex-academy/internal/highlight"
	"github.com/gouthamgo/apex-academy/internal/lesson"
)

// renderNodes turns a lesson node sequence into styled terminal text.
// Paragraph-like nodes word-wrap at width; code stays verbatim.
func renderNodes(nodes []lesson.Node, width int, st Styles) string {
	if width < 20 {
		width = 20
	}
	var b strings.Builder
	for _, node := range nodes {
		switch n := node.(type) {
		case lesson.Heading:
			b.WriteString(headingStyle(n.Level, st).Render(n.Text))
			b.WriteString("\n\n")
		case lesson.BoldParagraph:
			b.WriteString(st.Lead.Width(width).Render(n.Text))
			b.WriteString("\n\n")
		case lesson.ListItem:
			b.WriteString(st.Bullet.Render("• "))
			b.WriteString(n.Text)
			b.WriteString("\n")
		case lesson.Paragraph:
			var line strings.Builder
			for _, span := range n.Spans {
				if span.Code {
					line.WriteString(st.InlineCode.Render(span.Text))
				} else {
					line.WriteString(span.Text)
				}
			}
			b.WriteString(st.Paragraph.Width(width).Render(line.String()))
			b.WriteString("\n\n")
		case lesson.CodeBlock:
			writeTerminalCode(&b, n, st)
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

func headingStyle(level int, st Styles) lipgloss.Style {
	switch level {
	case 1:
		return st.Heading1
	case 2:
		return st.Heading2
	default:
		return st.Heading3
	}
}

func writeTerminalCode(b *strings.Builder, block lesson.CodeBlock, st Styles) {
	b.WriteString(st.Language.Render("· " + block.Language))
	b.WriteString("\n")

	highlighted := highlight.Terminal(block.Source, block.Language)
	for _, line := range strings.Split(strings.TrimRight(highlighted, "\n"), "\n") {
		b.WriteString("  ")
		b.WriteString(line)
		b.WriteString("\n")
	}

	for _, a := range block.Annotations {
		style, ok := st.Annotation[a.Severity]
		if !ok {
			style = st.Faint
		}
		parts := make([]string, 0, 3)
		if a.Arrow != "" {
			parts = append(parts, a.Arrow)
		}
		if a.Icon != "" {
			parts = append(parts, a.Icon)
		}
		parts = append(parts, a.Text)
		b.WriteString("  ")
		b.WriteString(style.Render(strings.Join(parts, " ")))
		b.WriteString("\n")
	}
	b.WriteString("\n")
}
