package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"

	"github.com/gouthamgo/apex-academy/internal/lesson"
)

func renderStripped(nodes []lesson.Node) string {
	return ansi.Strip(renderNodes(nodes, 80, defaultStyles()))
}

func TestRenderNodesHeadingsAndBullets(t *testing.T) {
	out := renderStripped(lesson.Transduce("# Top\n## Mid\n- one\n- two"))
	for _, want := range []string{"Top", "Mid", "• one", "• two"} {
		if !strings.Contains(out, want) {
			t.Errorf("missing %q in:\n%s", want, out)
		}
	}
}

func TestRenderNodesInlineCode(t *testing.T) {
	out := renderStripped(lesson.Transduce("Call `System.debug` often"))
	if !strings.Contains(out, "System.debug") {
		t.Fatalf("inline code text missing:\n%s", out)
	}
}

func TestRenderNodesCodeBlock(t *testing.T) {
	out := renderStripped([]lesson.Node{
		lesson.CodeBlock{Language: "apex", Source: "Integer x = 1;\nx++;"},
	})
	if !strings.Contains(out, "· apex") {
		t.Errorf("language label missing:\n%s", out)
	}
	if !strings.Contains(out, "Integer x = 1;") || !strings.Contains(out, "x++;") {
		t.Errorf("code lines missing:\n%s", out)
	}
}

func TestRenderNodesAnnotationsInOrder(t *testing.T) {
	out := renderStripped([]lesson.Node{
		lesson.CodeBlock{
			Language: "apex",
			Source:   "insert accounts;",
			Annotations: []lesson.Annotation{
				{Arrow: "└─▶", Icon: "✓", Severity: lesson.SeveritySuccess, Text: "bulk safe"},
				{Arrow: "└─▶", Icon: "⚠", Severity: lesson.SeverityDanger, Text: "not in loops"},
			},
		},
	})
	first := strings.Index(out, "bulk safe")
	second := strings.Index(out, "not in loops")
	if first == -1 || second == -1 || first > second {
		t.Fatalf("annotations missing or reordered:\n%s", out)
	}
}
