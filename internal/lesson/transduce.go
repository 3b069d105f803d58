package lesson

import (
	"regexp"
	"strings"
)

// DefaultLanguage is the highlight language assumed for fenced blocks
// that carry no tag. The curriculum teaches Apex, so untagged samples
// are Apex unless the author says otherwise.
const DefaultLanguage = "apex"

// Node is one renderable unit emitted by the transducer (or assembled
// by hand in a Prebuilt tree).
type Node interface {
	isNode()
}

// Heading is a section heading, level 1 through 3.
type Heading struct {
	Level int
	Text  string
}

// BoldParagraph is a line whose entire trimmed text was wrapped in **.
// The markers are stripped; the renderer decides the emphasis styling.
type BoldParagraph struct {
	Text string
}

// ListItem is a single `- ` bullet line with the marker removed. Items
// are classified line by line; consecutive items are not grouped.
type ListItem struct {
	Text string
}

// Span is a fragment of paragraph text, either plain or inline code.
type Span struct {
	Code bool
	Text string
}

// Paragraph is a plain text line, split into spans at single-backtick
// pairs.
type Paragraph struct {
	Spans []Span
}

// CodeBlock is a fenced code sample. Annotations are only ever present
// on hand-built trees; the transducer never attaches them.
type CodeBlock struct {
	Language    string
	Source      string
	Annotations []Annotation
}

func (Heading) isNode()       {}
func (BoldParagraph) isNode() {}
func (ListItem) isNode()      {}
func (Paragraph) isNode()     {}
func (CodeBlock) isNode()     {}

const fence = "```"

// inlineCode matches one backtick pair with a non-backtick run between.
// Substitution is global and left to right; it never re-examines text
// it has already consumed, so nested or unbalanced markers pass through
// as literal text.
var inlineCode = regexp.MustCompile("`([^`]+)`")

// Transduce converts lesson markdown into an ordered node sequence in a
// single forward pass. The only state carried between lines is whether
// the scanner is inside a fenced code block. Lines that match no rule
// produce no node; Transduce never fails.
//
// A fence that is opened but never closed swallows the remainder of the
// input without emitting a code block. That is how the hand-authored
// corpus has always behaved and callers rely on it staying that way.
func Transduce(input string) []Node {
	var (
		nodes   []Node
		inFence bool
		lang    string
		code    strings.Builder
	)

	for _, line := range strings.Split(input, "\n") {
		if inFence {
			if strings.HasPrefix(line, fence) {
				nodes = append(nodes, CodeBlock{
					Language: lang,
					Source:   strings.TrimSpace(code.String()),
				})
				code.Reset()
				inFence = false
				continue
			}
			code.WriteString(line)
			code.WriteByte('\n')
			continue
		}

		trimmed := strings.TrimSpace(line)
		switch {
		case strings.HasPrefix(line, fence):
			inFence = true
			lang = strings.TrimSpace(line[len(fence):])
			if lang == "" {
				lang = DefaultLanguage
			}
		case strings.HasPrefix(line, "# "):
			nodes = append(nodes, Heading{Level: 1, Text: line[2:]})
		case strings.HasPrefix(line, "## "):
			nodes = append(nodes, Heading{Level: 2, Text: line[3:]})
		case strings.HasPrefix(line, "### "):
			nodes = append(nodes, Heading{Level: 3, Text: line[4:]})
		case len(trimmed) >= 4 && strings.HasPrefix(trimmed, "**") && strings.HasSuffix(trimmed, "**"):
			nodes = append(nodes, BoldParagraph{Text: trimmed[2 : len(trimmed)-2]})
		case strings.HasPrefix(line, "- "):
			nodes = append(nodes, ListItem{Text: line[2:]})
		case trimmed != "" && !strings.HasPrefix(line, "`"):
			nodes = append(nodes, Paragraph{Spans: splitSpans(line)})
		}
	}

	return nodes
}

// splitSpans rewrites single-backtick pairs into code spans. Text
// between matches stays plain; a trailing unpaired backtick is kept as
// literal text.
func splitSpans(line string) []Span {
	var spans []Span
	last := 0
	for _, m := range inlineCode.FindAllStringSubmatchIndex(line, -1) {
		if m[0] > last {
			spans = append(spans, Span{Text: line[last:m[0]]})
		}
		spans = append(spans, Span{Code: true, Text: line[m[2]:m[3]]})
		last = m[1]
	}
	if last < len(line) {
		spans = append(spans, Span{Text: line[last:]})
	}
	return spans
}
