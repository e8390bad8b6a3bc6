package layout

import (
	"github.com/npillmayer/boxflow/core/dimen"
	"github.com/npillmayer/boxflow/engine/frame"
	"github.com/npillmayer/boxflow/engine/frame/boxtree"
)

// tableRow is a row of a table together with its cells, as collected by the
// table sizer.
type tableRow struct {
	row      boxtree.Node
	cells    []boxtree.Node
	explicit dimen.Px // maximum explicit height of the row or its cells
	sized    bool     // explicit is valid
}

// layoutTable sizes a table in two passes. The first pass collects explicit
// column widths and row heights. The second one distributes the remaining
// width among the columns, so that column widths always sum up to the
// table's content width. Every cell is then laid out like any other
// container. Head and body sections stack their rows vertically.
func (c *calculation) layoutTable(t *boxtree.Table, a anchor) {
	box := &t.Box
	contentW, contentH := box.ContentWidth(), box.ContentHeight()
	ca := anchorFor(&t.Container, a)
	rows := c.collectRows(t)
	cols := 0
	for _, r := range rows {
		if len(r.cells) > cols {
			cols = len(r.cells)
		}
	}
	colW := make([]dimen.Px, cols)
	explicit := make([]bool, cols)
	provisional := dimen.Zero
	if cols > 0 {
		provisional = contentW / dimen.Px(cols)
	}
	// pass 1: provisional sizes, explicit widths and heights
	for i := range rows {
		r := &rows[i]
		rb := r.row.Base()
		resolveBoxModel(rb, contentW, contentH)
		rb.Box.Margins = [4]dimen.Px{}
		if st := rb.Style.Height; st.IsSet() {
			r.explicit, r.sized = st.Resolve(contentH), true
		}
		for j, cell := range r.cells {
			cb := cell.Base()
			resolveBoxModel(cb, contentW, contentH)
			cb.Box.Margins = [4]dimen.Px{} // cell margins are ignored
			cb.Box.SetW(provisional)
			cb.Box.SetH(c.conf.TableRowHeight)
			if st := cb.Style.Width; st.IsSet() {
				w := st.Resolve(contentW)
				if !explicit[j] || w > colW[j] {
					colW[j] = w
				}
				explicit[j] = true
			}
			if st := cb.Style.Height; st.IsSet() {
				h := st.Resolve(contentH)
				if !r.sized || h > r.explicit {
					r.explicit = h
				}
				r.sized = true
			}
		}
	}
	distributeColumns(colW, explicit, contentW)
	t.ColumnWidths = colW
	tracer().Debugf("%s: %d columns %v", box.Label, cols, colW)
	// pass 2: lay out rows and stack them
	y, inx := dimen.Zero, 0
	for _, ch := range t.Children {
		if ch.Base().IsHidden() {
			continue
		}
		switch {
		case boxtree.IsTableSection(ch):
			sb := ch.Base()
			resolveBoxModel(sb, contentW, contentH)
			sb.Box.Margins = [4]dimen.Px{}
			secY := dimen.Zero
			for inx < len(rows) && rowBelongsTo(rows[inx].row, sb) {
				secY += c.layoutRow(&rows[inx], inx, colW, contentW, secY, ca)
				inx++
			}
			sb.Box.SetW(contentW)
			sb.Box.SetH(secY)
			sb.Box.X, sb.Box.Y = 0, y
			finishBox(sb)
			y += secY
		case boxtree.IsRow(ch):
			y += c.layoutRow(&rows[inx], inx, colW, contentW, y, ca)
			inx++
		}
	}
	if !t.Style.Height.IsSet() && &t.Container != c.root {
		box.SetH(y + box.Inset(false))
	}
}

// distributeColumns fixes the column widths. Leftover width goes to columns
// without explicit width, or to all columns if every column is sized.
// Explicit widths exceeding the content width are scaled down. The last
// column absorbs rounding errors.
func distributeColumns(colW []dimen.Px, explicit []bool, contentW dimen.Px) {
	cols := len(colW)
	if cols == 0 {
		return
	}
	known, unsized := dimen.Zero, 0
	for j := range colW {
		if explicit[j] {
			known += colW[j]
		} else {
			unsized++
		}
	}
	leftover := contentW - known
	switch {
	case leftover >= 0 && unsized > 0:
		share := leftover / dimen.Px(unsized)
		for j := range colW {
			if !explicit[j] {
				colW[j] = share
			}
		}
	case leftover >= 0:
		share := leftover / dimen.Px(cols)
		for j := range colW {
			colW[j] += share
		}
	default:
		scale := contentW / known
		for j := range colW {
			colW[j] *= scale
		}
	}
	sum := dimen.Zero
	for j := 0; j < cols-1; j++ {
		sum += colW[j]
	}
	colW[cols-1] = dimen.NonNegative(contentW - sum)
}

// layoutRow sizes and lays out the cells of a row and returns the row's
// height, which is the maximum of explicit heights and laid out cell heights.
func (c *calculation) layoutRow(r *tableRow, inx int, colW []dimen.Px, contentW, y dimen.Px,
	a anchor) dimen.Px {
	//
	height := c.conf.TableRowHeight
	if r.sized {
		height = r.explicit
	}
	place := func(h dimen.Px) dimen.Px {
		x, tallest := dimen.Zero, h
		for j, cell := range r.cells {
			cb := cell.Base()
			cb.Box.SetW(colW[j])
			cb.Box.SetH(h)
			cb.Box.X, cb.Box.Y = x, 0
			cb.Box.Cell = frame.WrapCell(inx, j)
			x += colW[j]
			c.descend(cell, a)
			tallest = dimen.Max(tallest, cb.Box.H())
		}
		return tallest
	}
	if grown := place(height); grown > height+dimen.Epsilon {
		height = place(grown)
	}
	for _, cell := range r.cells {
		cell.Base().Box.SetH(height)
		finishBox(cell.Base())
	}
	rb := &r.row.Base().Box
	rb.SetW(contentW)
	rb.SetH(height)
	rb.X, rb.Y = 0, y
	finishBox(r.row.Base())
	return height
}

// collectRows gathers the rows of a table in document order, with rows of
// head and body sections flattened.
func (c *calculation) collectRows(t *boxtree.Table) []tableRow {
	var rows []tableRow
	add := func(row boxtree.Node) {
		r := tableRow{row: row}
		for _, cell := range row.Base().Children {
			if !cell.Base().IsHidden() && boxtree.IsTableCell(cell) {
				r.cells = append(r.cells, cell)
			}
		}
		rows = append(rows, r)
	}
	for _, ch := range t.Children {
		if ch.Base().IsHidden() {
			continue
		}
		switch {
		case boxtree.IsTableSection(ch):
			for _, row := range ch.Base().Children {
				if !row.Base().IsHidden() && boxtree.IsRow(row) {
					add(row)
				}
			}
		case boxtree.IsRow(ch):
			add(ch)
		default:
			tracer().Errorf("%s: ignoring %s, which is not a row or section",
				t.Box.Label, boxtree.Label(ch))
		}
	}
	return rows
}

func rowBelongsTo(row boxtree.Node, section *boxtree.Container) bool {
	for _, ch := range section.Children {
		if ch == row {
			return true
		}
	}
	return false
}
