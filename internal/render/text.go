package render

import (
	"io"
	"strings"

	"github.com/jacobarthurs/qpml/internal/document"
)

const textIndent = "  "

// WriteText prints one title per line, indented two spaces per level.
func WriteText(w io.Writer, doc *document.Document) error {
	sw := &stmtWriter{w: w}
	sw.text(&doc.Diagram, 0)
	return sw.err
}

func (sw *stmtWriter) text(n *document.Node, depth int) {
	sw.println(strings.Repeat(textIndent, depth) + n.Title)
	for i := range n.Inputs {
		sw.text(&n.Inputs[i], depth+1)
	}
}

func Text(doc *document.Document) string {
	return collect(func(w io.Writer) error { return WriteText(w, doc) })
}
