package render

import "github.com/jacobarthurs/qpml/internal/document"

// FilledMode is the DOT style attribute applied to nodes with a resolved style.
const FilledMode = "filled"

// Appearance is the concrete look a style name resolves to.
type Appearance struct {
	Color     string
	FillColor string
	Shape     string
	Mode      string
}

// StyleTable indexes a document's style list by name. Later definitions
// replace earlier ones with the same name.
type StyleTable map[string]document.Style

func NewStyleTable(styles []document.Style) StyleTable {
	table := make(StyleTable, len(styles))
	for _, s := range styles {
		table[s.Name] = s
	}
	return table
}

// Resolve returns the appearance for n, or false when n is unstyled or names
// a style the table doesn't define.
func (t StyleTable) Resolve(n *document.Node) (Appearance, bool) {
	if n.Style == "" {
		return Appearance{}, false
	}
	s, ok := t[n.Style]
	if !ok {
		return Appearance{}, false
	}
	return Appearance{
		Color:     s.Color,
		FillColor: s.Color,
		Shape:     s.Shape,
		Mode:      FilledMode,
	}, true
}
