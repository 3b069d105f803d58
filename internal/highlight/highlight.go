// Package highlight wraps chroma for the two places code gets shown:
// built HTML pages and the terminal viewer.
package highlight

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/alecthomas/chroma/v2"
	htmlformatter "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/quick"
	"github.com/alecthomas/chroma/v2/styles"
)

// fallbackLanguage is tried when the requested language has no lexer.
// Most curriculum samples are Apex, so an unknown tag is far more
// likely a typo for apex than for anything else.
const fallbackLanguage = "apex"

const htmlStyle = "github-dark"

// lexerFor resolves a language tag to a lexer, falling back to apex
// and then to chroma's plaintext fallback.
func lexerFor(language string) chroma.Lexer {
	lexer := lexers.Get(language)
	if lexer == nil {
		lexer = lexers.Get(fallbackLanguage)
	}
	if lexer == nil {
		lexer = lexers.Fallback
	}
	return chroma.Coalesce(lexer)
}

// HTML renders source as highlighted HTML with inline styles, so built
// pages need no chroma stylesheet.
func HTML(source, language string) (string, error) {
	lexer := lexerFor(language)

	style := styles.Get(htmlStyle)
	if style == nil {
		style = styles.Fallback
	}

	iterator, err := lexer.Tokenise(nil, source)
	if err != nil {
		return "", fmt.Errorf("tokenising %s source: %w", language, err)
	}

	formatter := htmlformatter.New(
		htmlformatter.WithClasses(false),
		htmlformatter.TabWidth(4),
	)

	var buf bytes.Buffer
	if err := formatter.Format(&buf, style, iterator); err != nil {
		return "", fmt.Errorf("formatting %s source: %w", language, err)
	}
	return buf.String(), nil
}

// Terminal renders source as ANSI-highlighted text for the viewer. On
// any failure the plain source comes back unstyled; a lesson with an
// odd language tag still has to display.
func Terminal(source, language string) string {
	if lexers.Get(language) == nil {
		language = fallbackLanguage
	}
	var buf strings.Builder
	if err := quick.Highlight(&buf, source, language, "terminal256", "monokai"); err != nil {
		return source
	}
	return buf.String()
}
