package lesson

import (
	"reflect"
	"testing"
)

func TestTransduceHeadings(t *testing.T) {
	tests := map[string]Node{
		"# Getting Started":    Heading{Level: 1, Text: "Getting Started"},
		"## Variables":         Heading{Level: 2, Text: "Variables"},
		"### Primitive Types":  Heading{Level: 3, Text: "Primitive Types"},
		"- first point":        ListItem{Text: "first point"},
		"**Key takeaway here**": BoldParagraph{Text: "Key takeaway here"},
	}

	for input, want := range tests {
		nodes := Transduce(input)
		if len(nodes) != 1 {
			t.Fatalf("Transduce(%q) emitted %d nodes, want 1", input, len(nodes))
		}
		if !reflect.DeepEqual(nodes[0], want) {
			t.Fatalf("Transduce(%q) = %#v, want %#v", input, nodes[0], want)
		}
	}
}

func TestTransduceListItemKeepsWhitespace(t *testing.T) {
	// Only the two-character marker is removed; the rest of the line,
	// trailing spaces included, is the item text.
	nodes := Transduce("- spaced out  ")
	want := ListItem{Text: "spaced out  "}
	if len(nodes) != 1 || nodes[0] != want {
		t.Fatalf("got %#v, want [%#v]", nodes, want)
	}
}

func TestTransducePartialBoldFallsThrough(t *testing.T) {
	nodes := Transduce("Some **bold** text")
	if len(nodes) != 1 {
		t.Fatalf("emitted %d nodes, want 1", len(nodes))
	}
	p, ok := nodes[0].(Paragraph)
	if !ok {
		t.Fatalf("got %#v, want Paragraph", nodes[0])
	}
	// Markers are not stripped when the whole line isn't wrapped.
	if got := flatten(p); got != "Some **bold** text" {
		t.Fatalf("paragraph text = %q, want markers preserved", got)
	}
}

func TestTransduceInlineCode(t *testing.T) {
	nodes := Transduce("Use `System.debug` to print `values` here")
	p := nodes[0].(Paragraph)
	want := []Span{
		{Text: "Use "},
		{Code: true, Text: "System.debug"},
		{Text: " to print "},
		{Code: true, Text: "values"},
		{Text: " here"},
	}
	if !reflect.DeepEqual(p.Spans, want) {
		t.Fatalf("spans = %#v, want %#v", p.Spans, want)
	}
}

func TestTransduceInlineCodeUnpairedBacktick(t *testing.T) {
	// Pairs substitute left to right; the odd trailing backtick stays
	// literal.
	nodes := Transduce("a `b` c `d")
	p := nodes[0].(Paragraph)
	want := []Span{
		{Text: "a "},
		{Code: true, Text: "b"},
		{Text: " c `d"},
	}
	if !reflect.DeepEqual(p.Spans, want) {
		t.Fatalf("spans = %#v, want %#v", p.Spans, want)
	}
}

func TestTransduceFencedBlock(t *testing.T) {
	input := "```apex\nInteger count = 0;\ncount += 1;\n```"
	nodes := Transduce(input)
	if len(nodes) != 1 {
		t.Fatalf("emitted %d nodes, want 1", len(nodes))
	}
	block := nodes[0].(CodeBlock)
	if block.Language != "apex" {
		t.Errorf("language = %q, want %q", block.Language, "apex")
	}
	if block.Source != "Integer count = 0;\ncount += 1;" {
		t.Errorf("source = %q; fence markers must not leak into content", block.Source)
	}
}

func TestTransduceFenceDefaultLanguage(t *testing.T) {
	nodes := Transduce("```\nx\n```")
	block := nodes[0].(CodeBlock)
	if block.Language != DefaultLanguage {
		t.Fatalf("language = %q, want default %q", block.Language, DefaultLanguage)
	}
}

func TestTransduceUnterminatedFence(t *testing.T) {
	input := "intro line\n```apex\nInteger x = 1;\n# not a heading\n- not a list"
	nodes := Transduce(input)
	if len(nodes) != 1 {
		t.Fatalf("emitted %d nodes, want only the intro paragraph", len(nodes))
	}
	if _, ok := nodes[0].(Paragraph); !ok {
		t.Fatalf("surviving node = %#v, want Paragraph", nodes[0])
	}
	for _, n := range nodes {
		if _, ok := n.(CodeBlock); ok {
			t.Fatal("unterminated fence must not emit a code block")
		}
	}
}

func TestTransduceBlankAndUnclassifiedLinesDropped(t *testing.T) {
	nodes := Transduce("\n\n`starts with backtick\n   \n")
	if len(nodes) != 0 {
		t.Fatalf("emitted %d nodes, want 0: %#v", len(nodes), nodes)
	}
}

func TestTransduceIdempotent(t *testing.T) {
	input := "# Title\n\nBody with `code`.\n```apex\nreturn;\n```\n- item"
	first := Transduce(input)
	second := Transduce(input)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("two runs diverged:\nfirst:  %#v\nsecond: %#v", first, second)
	}
}

func TestTransduceScenario(t *testing.T) {
	input := "## Overview\nSome **bold** text\n- first\n- second\n```apex\nSystem.debug('hi');\n```"
	nodes := Transduce(input)

	want := []Node{
		Heading{Level: 2, Text: "Overview"},
		Paragraph{Spans: []Span{{Text: "Some **bold** text"}}},
		ListItem{Text: "first"},
		ListItem{Text: "second"},
		CodeBlock{Language: "apex", Source: "System.debug('hi');"},
	}
	if !reflect.DeepEqual(nodes, want) {
		t.Fatalf("got:\n%#v\nwant:\n%#v", nodes, want)
	}
}

func TestTopicNodes(t *testing.T) {
	md := Topic{Slug: "a", Content: Markdown("# Hi")}
	if len(md.Nodes()) != 1 {
		t.Fatal("markdown topic should transduce to one node")
	}

	tree := Prebuilt{Heading{Level: 1, Text: "Hi"}, CodeBlock{Language: "apex", Source: "return;"}}
	pre := Topic{Slug: "b", Content: tree}
	if !reflect.DeepEqual(pre.Nodes(), []Node(tree)) {
		t.Fatal("prebuilt topic should return its tree unchanged")
	}
}

// flatten joins a paragraph's span text for assertions that only care
// about the visible characters.
func flatten(p Paragraph) string {
	var out string
	for _, s := range p.Spans {
		out += s.Text
	}
	return out
}
