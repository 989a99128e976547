package plan

import "github.com/jacobarthurs/qpml/internal/document"

var defaultStyles = []document.Style{
	{Name: "seq scan", Color: "lightcoral", Shape: "box"},
	{Name: "index scan", Color: "palegreen", Shape: "box"},
	{Name: "index only scan", Color: "palegreen", Shape: "box"},
	{Name: "bitmap heap scan", Color: "palegreen", Shape: "box"},
	{Name: "bitmap index scan", Color: "palegreen", Shape: "box"},
	{Name: "cte scan", Color: "lightyellow", Shape: "box"},
	{Name: "hash join", Color: "lightskyblue", Shape: "box"},
	{Name: "merge join", Color: "lightskyblue", Shape: "box"},
	{Name: "nested loop", Color: "lightskyblue", Shape: "box"},
	{Name: "sort", Color: "khaki", Shape: "box"},
	{Name: "incremental sort", Color: "khaki", Shape: "box"},
	{Name: "aggregate", Color: "plum", Shape: "box"},
	{Name: "hash", Color: "lightgrey", Shape: "box"},
	{Name: "materialize", Color: "lightgrey", Shape: "box"},
	{Name: "gather", Color: "wheat", Shape: "box"},
	{Name: "gather merge", Color: "wheat", Shape: "box"},
	{Name: "modifytable", Color: "orange", Shape: "box"},
}

// DefaultStyles returns a fresh copy of the style table attached to converted plans.
func DefaultStyles() []document.Style {
	return append([]document.Style(nil), defaultStyles...)
}
