package render

import (
	"io"
	"strings"

	"github.com/jacobarthurs/qpml/internal/document"
)

type MermaidOptions struct {
	Inverted bool
}

// WriteMermaid emits a top-down flowchart in a fenced markdown block, one
// arrow per parent-child pair with both titles inline. Styles are not rendered.
func WriteMermaid(w io.Writer, doc *document.Document, opts MermaidOptions) error {
	sw := &stmtWriter{w: w}

	sw.println("```mermaid")
	sw.println("flowchart TD")
	if len(doc.Diagram.Inputs) == 0 {
		sw.println(mermaidNode(rootID, &doc.Diagram))
	}
	sw.mermaid(rootID, &doc.Diagram, opts.Inverted)
	sw.println("```")
	return sw.err
}

func (sw *stmtWriter) mermaid(id string, n *document.Node, inverted bool) {
	for i := range n.Inputs {
		child := childID(id, i)
		from, to := mermaidNode(id, n), mermaidNode(child, &n.Inputs[i])
		if inverted {
			from, to = to, from
		}
		sw.println(from + " --> " + to)
		sw.mermaid(child, &n.Inputs[i], inverted)
	}
}

func mermaidNode(id string, n *document.Node) string {
	return id + `["` + strings.ReplaceAll(n.Title, `"`, "#quot;") + `"]`
}

func Mermaid(doc *document.Document, opts MermaidOptions) string {
	return collect(func(w io.Writer) error { return WriteMermaid(w, doc, opts) })
}
