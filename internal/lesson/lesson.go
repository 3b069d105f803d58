// Package lesson defines the curriculum data model and the line
// transducer that turns lesson markdown into renderable nodes.
package lesson

// Severity classifies how an annotation should be presented.
type Severity string

const (
	SeverityInfo    Severity = "info"
	SeverityWarning Severity = "warning"
	SeverityDanger  Severity = "danger"
	SeveritySuccess Severity = "success"
)

// Annotation is a decorative note displayed beneath a code sample. It
// explains a line or idea in the sample and has no effect on the code
// itself. Annotations render in the order supplied.
type Annotation struct {
	Arrow    string
	Text     string
	Severity Severity
	Icon     string
}

// Content is the tagged variant for a topic's body: either raw lesson
// markdown or a pre-built node tree. Consumers type-switch over the two
// concrete types; there is no third implementation.
type Content interface {
	isContent()
}

// Markdown is lesson source text in the fenced-code convention
// understood by Transduce.
type Markdown string

func (Markdown) isContent() {}

// Prebuilt is a hand-assembled node tree, used for topics whose layout
// (annotated samples, interleaved callouts) is authored directly rather
// than written as markdown.
type Prebuilt []Node

func (Prebuilt) isContent() {}

// Topic is one curriculum entry. Topics are created at init time from
// static data and never mutated; navigation selects them by slug.
type Topic struct {
	Slug        string
	Title       string
	Description string
	Icon        string
	Content     Content
}

// Nodes returns the renderable node sequence for the topic, running the
// transducer when the content is markdown.
func (t Topic) Nodes() []Node {
	switch c := t.Content.(type) {
	case Markdown:
		return Transduce(string(c))
	case Prebuilt:
		return c
	default:
		return nil
	}
}
