package document

// Node is one vertex of a plan tree. An empty Style means the node is unstyled.
type Node struct {
	Title  string `yaml:"title" json:"title"`
	Style  string `yaml:"style,omitempty" json:"style,omitempty"`
	Inputs []Node `yaml:"inputs,omitempty" json:"inputs,omitempty"`
}

type Style struct {
	Name  string `yaml:"name" json:"name" toml:"name"`
	Color string `yaml:"color" json:"color" toml:"color"`
	Shape string `yaml:"shape" json:"shape" toml:"shape"`
}

// Document pairs the root of a plan tree with the style table its nodes refer to.
type Document struct {
	Diagram Node    `yaml:"diagram" json:"diagram"`
	Styles  []Style `yaml:"styles,omitempty" json:"styles,omitempty"`
}

func NewNode(title string, inputs ...Node) Node {
	return Node{Title: title, Inputs: inputs}
}

func NewLeaf(title, style string) Node {
	return Node{Title: title, Style: style}
}

func NewStyle(name, color, shape string) Style {
	return Style{Name: name, Color: color, Shape: shape}
}

func NewDocument(diagram Node, styles ...Style) Document {
	return Document{Diagram: diagram, Styles: styles}
}

// Equal compares title, style and the full ordered child list. A nil and an
// empty child list are considered equal.
func (n Node) Equal(other Node) bool {
	if n.Title != other.Title || n.Style != other.Style {
		return false
	}
	if len(n.Inputs) != len(other.Inputs) {
		return false
	}
	for i := range n.Inputs {
		if !n.Inputs[i].Equal(other.Inputs[i]) {
			return false
		}
	}
	return true
}

// Count returns the number of nodes in the subtree rooted at n.
func (n Node) Count() int {
	total := 1
	for i := range n.Inputs {
		total += n.Inputs[i].Count()
	}
	return total
}

// Depth returns the number of levels in the subtree rooted at n; a leaf has depth 1.
func (n Node) Depth() int {
	deepest := 0
	for i := range n.Inputs {
		deepest = max(deepest, n.Inputs[i].Depth())
	}
	return deepest + 1
}

func (d Document) Equal(other Document) bool {
	if !d.Diagram.Equal(other.Diagram) {
		return false
	}
	if len(d.Styles) != len(other.Styles) {
		return false
	}
	for i := range d.Styles {
		if d.Styles[i] != other.Styles[i] {
			return false
		}
	}
	return true
}
