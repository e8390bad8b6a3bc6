package boxtree

// Builders and traversal helpers for clients constructing box trees in code.
// Markup readers use the same builders.

import (
	"errors"
)

// ErrNoSuchNode is returned by lookups for IDs not present in a tree.
var ErrNoSuchNode = errors.New("no node with this ID")

// NewDiv creates a generic box with children.
func NewDiv(id string, children ...Node) *Div {
	d := &Div{}
	d.ID = id
	d.Add(children...)
	return d
}

// NewText creates a text run.
func NewText(value string) *Text {
	return &Text{Value: value}
}

// NewImage creates an image box.
func NewImage(id, source, alt string) *Image {
	img := &Image{Source: source, Alt: alt}
	img.ID = id
	return img
}

// NewCanvas creates a canvas.
func NewCanvas(id string) *Canvas {
	c := &Canvas{}
	c.ID = id
	return c
}

// NewInput creates an input element.
func NewInput(id, typ, name, value string) *Input {
	in := &Input{Type: typ, Name: name, Value: value}
	in.ID = id
	return in
}

// NewTable creates a table from sections or rows.
func NewTable(id string, children ...Node) *Table {
	t := &Table{}
	t.ID = id
	t.Add(children...)
	return t
}

// NewTableHead creates a head section from rows.
func NewTableHead(rows ...Node) *TableHead {
	h := &TableHead{}
	h.Add(rows...)
	return h
}

// NewTableBody creates a body section from rows.
func NewTableBody(rows ...Node) *TableBody {
	b := &TableBody{}
	b.Add(rows...)
	return b
}

// NewRow creates a table row from cells.
func NewRow(cells ...Node) *Row {
	r := &Row{}
	r.Add(cells...)
	return r
}

// NewHeaderCell creates a table header cell.
func NewHeaderCell(children ...Node) *HeaderCell {
	c := &HeaderCell{}
	c.Add(children...)
	return c
}

// NewCell creates a table data cell.
func NewCell(children ...Node) *Cell {
	c := &Cell{}
	c.Add(children...)
	return c
}

// --- Traversal -------------------------------------------------------------

// Walk visits n and its descendants depth-first, in flow order. If visit
// returns false, the children of the node are skipped. Hidden nodes are
// visited like all others; callers decide what to do with them.
func Walk(n Node, visit func(n Node, depth int) bool) {
	walk(n, 0, visit)
}

func walk(n Node, depth int, visit func(Node, int) bool) {
	if n == nil {
		return
	}
	if !visit(n, depth) {
		return
	}
	for _, ch := range n.Base().Children {
		walk(ch, depth+1, visit)
	}
}

// FindByID returns the first node in depth-first order with the given ID.
func FindByID(root Node, id string) (Node, error) {
	var found Node
	Walk(root, func(n Node, _ int) bool {
		if found != nil {
			return false
		}
		if n.Base().ID == id {
			found = n
			return false
		}
		return true
	})
	if found == nil {
		return nil, ErrNoSuchNode
	}
	return found, nil
}

// Count returns the number of nodes in a tree.
func Count(root Node) int {
	cnt := 0
	Walk(root, func(Node, int) bool {
		cnt++
		return true
	})
	return cnt
}

// ClearCalculated resets the calculated geometry of n and all its
// descendants, e.g. before re-laying out a tree after a resize.
func ClearCalculated(n Node) {
	Walk(n, func(n Node, _ int) bool {
		n.Base().Box.Clear()
		return true
	})
	tracer().Debugf("cleared calculated geometry of %s", Label(n))
}
