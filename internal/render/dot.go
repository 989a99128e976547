package render

import (
	"io"
	"strings"

	"github.com/jacobarthurs/qpml/internal/document"
)

type DOTOptions struct {
	// Inverted draws edges from child to parent so the diagram reads leaf to root.
	Inverted bool
}

// WriteDOT emits a Graphviz digraph with one node statement per plan node and
// one edge statement per parent-child pair, in pre-order.
func WriteDOT(w io.Writer, doc *document.Document, opts DOTOptions) error {
	sw := &stmtWriter{w: w}
	styles := NewStyleTable(doc.Styles)

	sw.println("digraph G {")
	sw.dot(rootID, &doc.Diagram, styles, opts.Inverted)
	sw.println("}")
	return sw.err
}

func (sw *stmtWriter) dot(id string, n *document.Node, styles StyleTable, inverted bool) {
	sw.println("\t" + nodeStatement(id, n, styles))

	for i := range n.Inputs {
		child := childID(id, i)
		if inverted {
			sw.printf("\t%s -> %s [arrowhead=normal, arrowtail=none, dir=forward];\n", child, id)
		} else {
			sw.printf("\t%s -> %s [arrowhead=none, arrowtail=normal, dir=back];\n", id, child)
		}
		sw.dot(child, &n.Inputs[i], styles, inverted)
	}
}

func nodeStatement(id string, n *document.Node, styles StyleTable) string {
	attrs := []string{
		"shape=box",
		`label="` + Label(n.Title) + `"`,
	}
	if a, ok := styles.Resolve(n); ok {
		attrs = append(attrs,
			`color="`+a.Color+`"`,
			`fillcolor="`+a.FillColor+`"`,
			`style="`+a.Mode+`"`,
		)
	}
	return id + " [" + strings.Join(attrs, "; ") + "];"
}

func DOT(doc *document.Document, opts DOTOptions) string {
	return collect(func(w io.Writer) error { return WriteDOT(w, doc, opts) })
}
