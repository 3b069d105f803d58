package lesson

import (
	"fmt"
	"html"
	"strings"

	"github.com/gouthamgo/apex-academy/internal/highlight"
)

// RenderHTML converts a node sequence into page markup. Text is always
// escaped; the only raw HTML that passes through is chroma's formatter
// output. Highlight failures degrade to an escaped <pre> block rather
// than failing the page.
func RenderHTML(nodes []Node) string {
	var b strings.Builder
	for _, node := range nodes {
		switch n := node.(type) {
		case Heading:
			fmt.Fprintf(&b, "<h%d>%s</h%d>\n", n.Level, html.EscapeString(n.Text), n.Level)
		case BoldParagraph:
			fmt.Fprintf(&b, "<p class=\"lead\"><strong>%s</strong></p>\n", html.EscapeString(n.Text))
		case ListItem:
			fmt.Fprintf(&b, "<li class=\"lesson-item\">%s</li>\n", html.EscapeString(n.Text))
		case Paragraph:
			b.WriteString("<p>")
			for _, span := range n.Spans {
				if span.Code {
					fmt.Fprintf(&b, "<code>%s</code>", html.EscapeString(span.Text))
				} else {
					b.WriteString(html.EscapeString(span.Text))
				}
			}
			b.WriteString("</p>\n")
		case CodeBlock:
			writeCodeBlock(&b, n)
		}
	}
	return b.String()
}

func writeCodeBlock(b *strings.Builder, block CodeBlock) {
	b.WriteString("<div class=\"code-sample\">\n")
	fmt.Fprintf(b, "<div class=\"code-header\"><span class=\"code-lang\">%s</span>", html.EscapeString(block.Language))
	// data-code carries the literal source for the copy button script.
	fmt.Fprintf(b, "<button class=\"copy-button\" data-code=\"%s\">Copy</button></div>\n", html.EscapeString(block.Source))

	highlighted, err := highlight.HTML(block.Source, block.Language)
	if err != nil {
		fmt.Fprintf(b, "<pre><code>%s</code></pre>\n", html.EscapeString(block.Source))
	} else {
		b.WriteString(highlighted)
	}

	if len(block.Annotations) > 0 {
		b.WriteString("<ul class=\"annotations\">\n")
		for _, a := range block.Annotations {
			fmt.Fprintf(b, "<li class=\"annotation annotation-%s\">", html.EscapeString(string(a.Severity)))
			if a.Arrow != "" {
				fmt.Fprintf(b, "<span class=\"annotation-arrow\">%s</span> ", html.EscapeString(a.Arrow))
			}
			if a.Icon != "" {
				fmt.Fprintf(b, "<span class=\"annotation-icon\">%s</span> ", html.EscapeString(a.Icon))
			}
			fmt.Fprintf(b, "%s</li>\n", html.EscapeString(a.Text))
		}
		b.WriteString("</ul>\n")
	}
	b.WriteString("</div>\n")
}
