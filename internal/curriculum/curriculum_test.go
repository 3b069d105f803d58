package curriculum

import (
	"testing"

	"github.com/gouthamgo/apex-academy/internal/lesson"
)

func TestTopicsWellFormed(t *testing.T) {
	seen := map[string]bool{}
	for _, topic := range Topics() {
		if topic.Slug == "" || topic.Title == "" || topic.Description == "" || topic.Icon == "" {
			t.Errorf("topic %q has empty metadata: %+v", topic.Slug, topic)
		}
		if seen[topic.Slug] {
			t.Errorf("duplicate slug %q", topic.Slug)
		}
		seen[topic.Slug] = true

		switch topic.Content.(type) {
		case lesson.Markdown, lesson.Prebuilt:
		default:
			t.Errorf("topic %q has unknown content variant %T", topic.Slug, topic.Content)
		}

		if len(topic.Nodes()) == 0 {
			t.Errorf("topic %q renders to zero nodes", topic.Slug)
		}
	}
}

func TestBySlug(t *testing.T) {
	topic, ok := BySlug("dml")
	if !ok {
		t.Fatal("dml topic missing")
	}
	if _, isTree := topic.Content.(lesson.Prebuilt); !isTree {
		t.Fatalf("dml topic should be a prebuilt tree, got %T", topic.Content)
	}

	if _, ok := BySlug("no-such-topic"); ok {
		t.Fatal("BySlug should report missing topics")
	}
}

func TestAnnotatedSampleOrder(t *testing.T) {
	topic, _ := BySlug("dml")
	var block lesson.CodeBlock
	for _, n := range topic.Nodes() {
		if cb, ok := n.(lesson.CodeBlock); ok && len(cb.Annotations) > 0 {
			block = cb
			break
		}
	}
	if len(block.Annotations) < 2 {
		t.Fatal("expected an annotated code sample in the dml topic")
	}
	if block.Annotations[0].Severity != lesson.SeveritySuccess {
		t.Fatalf("annotations must keep authored order, first = %+v", block.Annotations[0])
	}
}
