package boxtree

import (
	"fmt"

	"github.com/npillmayer/boxflow/core"
	"github.com/npillmayer/boxflow/core/dimen"
	"github.com/npillmayer/boxflow/engine/frame"
	"github.com/npillmayer/boxflow/engine/style"
)

// Kind is the kind of a node in a box tree.
type Kind uint8

// Node kinds.
const (
	KindDiv Kind = iota
	KindText
	KindImage
	KindCanvas
	KindInput
	KindTable
	KindTableHead
	KindTableBody
	KindRow
	KindHeaderCell
	KindCell
)

var kindNames = map[Kind]string{
	KindDiv:        "div",
	KindText:       "text",
	KindImage:      "img",
	KindCanvas:     "canvas",
	KindInput:      "input",
	KindTable:      "table",
	KindTableHead:  "thead",
	KindTableBody:  "tbody",
	KindRow:        "tr",
	KindHeaderCell: "th",
	KindCell:       "td",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("kind(%d)", uint8(k))
}

// Node is a node of a box tree. Every node kind embeds a Container.
type Node interface {
	Kind() Kind
	Base() *Container
}

// Container is the record common to all node kinds.
type Container struct {
	ID       string
	Style    style.Style // style inputs, set by clients
	Box      frame.Box   // calculated geometry, set by layout
	Children []Node
}

// Base returns c itself. Node kinds embedding a Container get it promoted.
func (c *Container) Base() *Container {
	return c
}

// Add appends children, dropping nil nodes.
func (c *Container) Add(children ...Node) {
	for _, ch := range children {
		if ch == nil {
			tracer().Errorf("ignoring nil child for container %q", c.ID)
			continue
		}
		c.Children = append(c.Children, ch)
	}
}

// SetStyle applies CSS-like property/value pairs to the style of c.
// It stops at the first illegal pair.
func (c *Container) SetStyle(pairs ...string) error {
	if len(pairs)%2 != 0 {
		return core.Error(core.EINVALID, "style pairs must come in twos, have %d strings", len(pairs))
	}
	for i := 0; i < len(pairs); i += 2 {
		if err := c.Style.Set(pairs[i], pairs[i+1]); err != nil {
			return err
		}
	}
	return nil
}

// IsHidden is true for nodes which are not part of layout at all.
func (c *Container) IsHidden() bool {
	return c.Style.Hidden
}

// Label returns a short description of a node, e.g. "div#main", used in
// diagnostics.
func Label(n Node) string {
	if n == nil {
		return "<nil>"
	}
	if id := n.Base().ID; id != "" {
		return n.Kind().String() + "#" + id
	}
	return n.Kind().String()
}

// --- Node kinds ------------------------------------------------------------

// Div is a generic box.
type Div struct {
	Container
}

// Kind is part of interface Node.
func (*Div) Kind() Kind { return KindDiv }

// Text is a run of text. Layout does not measure text; clients set its size
// explicitly.
type Text struct {
	Container
	Value string
}

// Kind is part of interface Node.
func (*Text) Kind() Kind { return KindText }

// Image is a box displaying an image.
type Image struct {
	Container
	Source string
	Alt    string
}

// Kind is part of interface Node.
func (*Image) Kind() Kind { return KindImage }

// Canvas is a box for client drawing.
type Canvas struct {
	Container
}

// Kind is part of interface Node.
func (*Canvas) Kind() Kind { return KindCanvas }

// Input is a form input element.
type Input struct {
	Container
	Type  string
	Name  string
	Value string
}

// Kind is part of interface Node.
func (*Input) Kind() Kind { return KindInput }

// Table is the root of a table structure. Its children are table sections
// or rows.
type Table struct {
	Container
	ColumnWidths []dimen.Px // calculated by layout
}

// Kind is part of interface Node.
func (*Table) Kind() Kind { return KindTable }

// TableHead is the head section of a table, holding rows.
type TableHead struct {
	Container
}

// Kind is part of interface Node.
func (*TableHead) Kind() Kind { return KindTableHead }

// TableBody is the body section of a table, holding rows.
type TableBody struct {
	Container
}

// Kind is part of interface Node.
func (*TableBody) Kind() Kind { return KindTableBody }

// Row is a table row, holding cells.
type Row struct {
	Container
}

// Kind is part of interface Node.
func (*Row) Kind() Kind { return KindRow }

// HeaderCell is a table header cell.
type HeaderCell struct {
	Container
}

// Kind is part of interface Node.
func (*HeaderCell) Kind() Kind { return KindHeaderCell }

// Cell is a table data cell.
type Cell struct {
	Container
}

// Kind is part of interface Node.
func (*Cell) Kind() Kind { return KindCell }

var _ Node = &Div{}
var _ Node = &Text{}
var _ Node = &Image{}
var _ Node = &Canvas{}
var _ Node = &Input{}
var _ Node = &Table{}
var _ Node = &TableHead{}
var _ Node = &TableBody{}
var _ Node = &Row{}
var _ Node = &HeaderCell{}
var _ Node = &Cell{}

// --- Predicates ------------------------------------------------------------

// IsText returns true if n is a text run.
func IsText(n Node) bool {
	_, ok := n.(*Text)
	return ok
}

// IsTable returns true if n is the root of a table.
func IsTable(n Node) bool {
	return n != nil && n.Kind() == KindTable
}

// IsTableSection returns true for table heads and bodies.
func IsTableSection(n Node) bool {
	return n != nil && (n.Kind() == KindTableHead || n.Kind() == KindTableBody)
}

// IsRow returns true for table rows.
func IsRow(n Node) bool {
	return n != nil && n.Kind() == KindRow
}

// IsTableCell returns true for header cells and data cells.
func IsTableCell(n Node) bool {
	return n != nil && (n.Kind() == KindCell || n.Kind() == KindHeaderCell)
}
