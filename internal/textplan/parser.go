package textplan

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"unicode"

	"github.com/jacobarthurs/qpml/internal/document"
)

const (
	// Marker is accepted as the first significant character of a line in
	// addition to letters; some plan dialects prefix operators with it.
	Marker = '*'

	maxLineSize = 1 << 20
)

// Line is a qualifying input line: the column of its first significant
// character and the text from that character to the end of the line.
type Line struct {
	Number int
	Indent int
	Title  string
}

// Scan reports whether raw holds a significant character and, if so, the
// rune column it sits at and the remaining text.
func Scan(raw string) (indent int, title string, ok bool) {
	col := 0
	for i, r := range raw {
		if r == Marker || unicode.IsLetter(r) {
			return col, raw[i:], true
		}
		col++
	}
	return 0, "", false
}

// Parse reads indented plan text from r and rebuilds the tree it describes.
func Parse(r io.Reader) (document.Document, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	var b builder
	number := 0
	for sc.Scan() {
		number++
		if err := b.add(number, sc.Text()); err != nil {
			return document.Document{}, err
		}
	}
	if err := sc.Err(); err != nil {
		return document.Document{}, fmt.Errorf("%w: reading line %d: %w", document.ErrInputUnreadable, number+1, err)
	}
	return b.document()
}

func ParseLines(lines []string) (document.Document, error) {
	var b builder
	for i, raw := range lines {
		if err := b.add(i+1, raw); err != nil {
			return document.Document{}, err
		}
	}
	return b.document()
}

func ParseString(s string) (document.Document, error) {
	return Parse(strings.NewReader(s))
}

type arenaNode struct {
	Line
	children []int
}

// builder keeps every node in an arena and tracks the currently open
// ancestors as a path of arena indices, root first.
type builder struct {
	arena []arenaNode
	path  []int
}

func (b *builder) add(number int, raw string) error {
	indent, title, ok := Scan(raw)
	if !ok {
		return nil
	}

	idx := len(b.arena)
	b.arena = append(b.arena, arenaNode{Line: Line{Number: number, Indent: indent, Title: title}})

	if idx == 0 {
		b.path = append(b.path, idx)
		return nil
	}

	for len(b.path) > 0 && b.arena[b.path[len(b.path)-1]].Indent >= indent {
		b.path = b.path[:len(b.path)-1]
	}
	if len(b.path) == 0 {
		root := b.arena[0]
		return fmt.Errorf("%w: line %d at column %d is not nested under the root %q (line %d, column %d)",
			document.ErrMalformedStructure, number, indent, root.Title, root.Number, root.Indent)
	}

	parent := b.path[len(b.path)-1]
	b.arena[parent].children = append(b.arena[parent].children, idx)
	b.path = append(b.path, idx)
	return nil
}

func (b *builder) document() (document.Document, error) {
	if len(b.arena) == 0 {
		return document.Document{}, fmt.Errorf("%w: no plan lines found", document.ErrMalformedStructure)
	}
	return document.NewDocument(b.node(0)), nil
}

func (b *builder) node(idx int) document.Node {
	an := b.arena[idx]
	n := document.Node{Title: an.Title}
	if len(an.children) > 0 {
		n.Inputs = make([]document.Node, len(an.children))
		for i, child := range an.children {
			n.Inputs[i] = b.node(child)
		}
	}
	return n
}
