package frame

/*
BSD License

Copyright (c) 2017–2021, Norbert Pillmayer

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions
are met:

1. Redistributions of source code must retain the above copyright
notice, this list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright
notice, this list of conditions and the following disclaimer in the
documentation and/or other materials provided with the distribution.

3. Neither the name of this software nor the names of its contributors
may be used to endorse or promote products derived from this software
without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS
"AS IS" AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT
LIMITED TO, THE IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR
A PARTICULAR PURPOSE ARE DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT
HOLDER OR CONTRIBUTORS BE LIABLE FOR ANY DIRECT, INDIRECT, INCIDENTAL,
SPECIAL, EXEMPLARY, OR CONSEQUENTIAL DAMAGES (INCLUDING, BUT NOT
LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR SERVICES; LOSS OF USE,
DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER CAUSED AND ON ANY
THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY, OR TORT
(INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.
*/

import (
	"fmt"
	"math"

	"github.com/npillmayer/boxflow/core"
	"github.com/npillmayer/boxflow/core/dimen"
	"github.com/npillmayer/boxflow/engine/style"
)

// For padding, margins, etc. 4-way values always start at the top and travel
// clockwise.
const (
	Top    = style.Top
	Right  = style.Right
	Bottom = style.Bottom
	Left   = style.Left
)

// StartSide returns the leading side of an axis (left or top).
func StartSide(horizontal bool) style.Side {
	if horizontal {
		return Left
	}
	return Top
}

// EndSide returns the trailing side of an axis (right or bottom).
func EndSide(horizontal bool) style.Side {
	if horizontal {
		return Right
	}
	return Bottom
}

// Box holds the calculated geometry of a node, following the CSS box model.
// W and H denote the border box, i.e. content plus padding and border.
// Margins lie outside.
//
// Every field is written by layout and recomputed on every calculation.
type Box struct {
	Label           string   // used in diagnostics only
	w, h            dimen.Px // border box size
	hasW, hasH      bool     // size has been assigned
	X, Y            dimen.Px // offset of the margin box within the parent's content box
	Cell            Cell     // flow position within the parent
	Margins         [4]dimen.Px
	Padding         [4]dimen.Px
	Border          [4]BorderStyle
	Radius          [4]dimen.Px // indexed by style.Corner
	Opacity         float32
	InternalMargin  [4]dimen.Px // justify-content offsets preceding the node
	InternalPadding [4]dimen.Px // insets reserved for scrollbars
}

// --- Handling of box dimensions --------------------------------------------

// W returns the calculated width. It is 0 if no width has been assigned.
func (box *Box) W() dimen.Px {
	return box.w
}

// H returns the calculated height. It is 0 if no height has been assigned.
func (box *Box) H() dimen.Px {
	return box.h
}

// HasW is true if a width has been assigned.
func (box *Box) HasW() bool {
	return box.hasW
}

// HasH is true if a height has been assigned.
func (box *Box) HasH() bool {
	return box.hasH
}

// SetW assigns the border box width. Negative widths are an invariant
// violation and will panic with core.ENEGATIVE.
func (box *Box) SetW(w dimen.Px) {
	box.checkDimension("width", w)
	box.w, box.hasW = w, true
}

// SetH assigns the border box height. Negative heights are an invariant
// violation and will panic with core.ENEGATIVE.
func (box *Box) SetH(h dimen.Px) {
	box.checkDimension("height", h)
	box.h, box.hasH = h, true
}

func (box *Box) checkDimension(dimension string, d dimen.Px) {
	if d < 0 || math.IsNaN(float64(d)) || math.IsInf(float64(d), 0) {
		tracer().Errorf("box %s: illegal %s %v", box.Label, dimension, d)
		core.Violate(core.ENEGATIVE, box.Label, dimension, "illegal %s %v", dimension, d)
	}
}

// Size returns the width for the horizontal axis and the height otherwise.
func (box *Box) Size(horizontal bool) dimen.Px {
	if horizontal {
		return box.w
	}
	return box.h
}

// HasSize tells whether the size on an axis has been assigned.
func (box *Box) HasSize(horizontal bool) bool {
	if horizontal {
		return box.hasW
	}
	return box.hasH
}

// SetSize assigns width or height, depending on the axis.
func (box *Box) SetSize(horizontal bool, d dimen.Px) {
	if horizontal {
		box.SetW(d)
	} else {
		box.SetH(d)
	}
}

// Pos returns X or Y, depending on the axis.
func (box *Box) Pos(horizontal bool) dimen.Px {
	if horizontal {
		return box.X
	}
	return box.Y
}

// SetPos sets X or Y, depending on the axis.
func (box *Box) SetPos(horizontal bool, d dimen.Px) {
	if horizontal {
		box.X = d
	} else {
		box.Y = d
	}
}

// Inset returns the cumulated padding, border and internal padding of the
// box on an axis.
func (box *Box) Inset(horizontal bool) dimen.Px {
	s, e := StartSide(horizontal), EndSide(horizontal)
	return box.Padding[s] + box.Padding[e] +
		box.Border[s].Width + box.Border[e].Width +
		box.InternalPadding[s] + box.InternalPadding[e]
}

// Content returns the size of the content box on an axis, which is the space
// the box offers to its children. It is never negative.
func (box *Box) Content(horizontal bool) dimen.Px {
	return dimen.NonNegative(box.Size(horizontal) - box.Inset(horizontal))
}

// ContentWidth returns the width of the content box.
func (box *Box) ContentWidth() dimen.Px {
	return box.Content(true)
}

// ContentHeight returns the height of the content box.
func (box *Box) ContentHeight() dimen.Px {
	return box.Content(false)
}

// MarginSum returns the cumulated margins of the box on an axis.
func (box *Box) MarginSum(horizontal bool) dimen.Px {
	return box.Margins[StartSide(horizontal)] + box.Margins[EndSide(horizontal)]
}

// Bounding returns the size of the margin box on an axis.
func (box *Box) Bounding(horizontal bool) dimen.Px {
	return box.Size(horizontal) + box.MarginSum(horizontal)
}

// BoundingWidth returns the overall width of a box, including margins.
func (box *Box) BoundingWidth() dimen.Px {
	return box.Bounding(true)
}

// BoundingHeight returns the overall height of a box, including margins.
func (box *Box) BoundingHeight() dimen.Px {
	return box.Bounding(false)
}

// PaddingBoxOrigin returns the offset of the padding box from the margin box
// origin.
func (box *Box) PaddingBoxOrigin() dimen.Point {
	return dimen.Point{
		X: box.Margins[Left] + box.Border[Left].Width,
		Y: box.Margins[Top] + box.Border[Top].Width,
	}
}

// ContentOrigin returns the offset of the content box from the margin box
// origin.
func (box *Box) ContentOrigin() dimen.Point {
	p := box.PaddingBoxOrigin()
	p.X += box.Padding[Left] + box.InternalPadding[Left]
	p.Y += box.Padding[Top] + box.InternalPadding[Top]
	return p
}

// Clear resets all calculated values, except the label.
func (box *Box) Clear() {
	*box = Box{Label: box.Label}
}

// DebugString returns a textual representation of a box's dimensions.
// Intended for debugging.
func (box *Box) DebugString() string {
	s := fmt.Sprintf("box %s {\n   w=%v, h=%v, x=%v, y=%v, cell=%v\n",
		box.Label, box.w, box.h, box.X, box.Y, box.Cell)
	s += fmt.Sprintf("   p.top=%v, p.right=%v, p.bottom=%v, p.left=%v\n",
		box.Padding[Top], box.Padding[Right],
		box.Padding[Bottom], box.Padding[Left])
	s += fmt.Sprintf("   b.top=%v, b.right=%v, b.bottom=%v, b.left=%v\n",
		box.Border[Top].Width, box.Border[Right].Width,
		box.Border[Bottom].Width, box.Border[Left].Width)
	s += fmt.Sprintf("   m.top=%v, m.right=%v, m.bottom=%v, m.left=%v\n",
		box.Margins[Top], box.Margins[Right],
		box.Margins[Bottom], box.Margins[Left])
	if box.InternalPadding[Right] > 0 || box.InternalPadding[Bottom] > 0 {
		s += fmt.Sprintf("   scrollbars: right=%v, bottom=%v\n",
			box.InternalPadding[Right], box.InternalPadding[Bottom])
	}
	s += "}"
	return s
}

// --- Flow positions --------------------------------------------------------

// Cell is the flow position of a node within its parent: either plain linear
// flow or a grid cell of a wrapping container.
type Cell struct {
	Wrapped  bool
	Row, Col int
}

// FlowCell returns the default, linear flow position.
func FlowCell() Cell {
	return Cell{}
}

// WrapCell returns a grid cell position.
func WrapCell(row, col int) Cell {
	return Cell{Wrapped: true, Row: row, Col: col}
}

// Line returns the index of the wrap line the cell belongs to. For rows
// this is the row index, for columns the column index.
func (c Cell) Line(horizontal bool) int {
	if horizontal {
		return c.Row
	}
	return c.Col
}

// Index returns the position of the cell within its wrap line.
func (c Cell) Index(horizontal bool) int {
	if horizontal {
		return c.Col
	}
	return c.Row
}

func (c Cell) String() string {
	if !c.Wrapped {
		return "default"
	}
	return fmt.Sprintf("wrap{%d,%d}", c.Row, c.Col)
}
