package layout

import (
	"github.com/npillmayer/boxflow/core/dimen"
	"github.com/npillmayer/boxflow/engine/frame"
	"github.com/npillmayer/boxflow/engine/frame/boxtree"
	"github.com/npillmayer/boxflow/engine/style"
)

// resolveOverflow runs after the children of a container have been sized and
// laid out. It assigns wrap cells, grows the container to fit its content if
// its overflow policy says so, and reserves space for scrollbars.
//
// Any change made here influences the next distribution of space, which is
// why the caller iterates until nothing changes anymore.
func (c *calculation) resolveOverflow(n boxtree.Node, flow []boxtree.Node, assigned [2]dimen.Px) {
	base := n.Base()
	h := base.Style.Direction == style.Row
	box := &base.Box
	if base.Style.Wraps() {
		assignCells(base, flow, h)
	}
	contentMain, contentCross := contentExtent(base, flow, h)
	var content [2]dimen.Px
	content[axis(h)], content[axis(!h)] = contentMain, contentCross
	for _, horizontal := range [2]bool{true, false} {
		if !c.mayGrow(n, horizontal, len(flow)) {
			continue
		}
		need := content[axis(horizontal)] + box.Inset(horizontal)
		size := dimen.Max(assigned[axis(horizontal)], need)
		if !dimen.Equal(size, box.Size(horizontal)) {
			tracer().Debugf("%s: size %v → %v to fit content", box.Label, box.Size(horizontal), size)
			box.SetSize(horizontal, size)
		}
	}
	c.reserveScrollbars(base, content)
}

// mayGrow is true for containers with overflow policy show, which have
// children and no explicit size on an axis. The root and the width of table
// cells are never resized.
func (c *calculation) mayGrow(n boxtree.Node, horizontal bool, children int) bool {
	base := n.Base()
	if base == c.root || children == 0 {
		return false
	}
	if base.Style.Overflow(horizontal) != style.OverflowShow || base.Style.Size(horizontal).IsSet() {
		return false
	}
	if horizontal && boxtree.IsTableCell(n) {
		return false
	}
	return true
}

// reserveScrollbars computes the scrollbar insets of a container from
// scratch. A vertical scrollbar takes space on the right, a horizontal one at
// the bottom.
func (c *calculation) reserveScrollbars(base *boxtree.Container, content [2]dimen.Px) {
	box := &base.Box
	sb := c.conf.ScrollbarSize
	vertical := needsScrollbar(base.Style.OverflowY, content[axis(false)], box.ContentHeight())
	horizontal := needsScrollbar(base.Style.OverflowX, content[axis(true)], box.ContentWidth())
	right, bottom := dimen.Zero, dimen.Zero
	if vertical {
		right = sb
	}
	if horizontal {
		bottom = sb
	}
	if right != box.InternalPadding[frame.Right] || bottom != box.InternalPadding[frame.Bottom] {
		tracer().Debugf("%s: scrollbars right=%v, bottom=%v", box.Label, right, bottom)
	}
	box.InternalPadding[frame.Right] = right
	box.InternalPadding[frame.Bottom] = bottom
}

func needsScrollbar(policy style.Overflow, content, available dimen.Px) bool {
	switch policy {
	case style.OverflowScroll:
		return true
	case style.OverflowAuto:
		return content > available+dimen.Epsilon
	}
	return false
}

// assignCells walks the children in flow order, accumulating their main-axis
// extent, and starts a new line whenever the next child would not fit.
// A child which does not fit into an empty line gets a line of its own.
func assignCells(base *boxtree.Container, flow []boxtree.Node, h bool) {
	main := base.Box.Content(h)
	gap := base.Style.Gap.Resolve(main)
	cursor, line, index := dimen.Zero, 0, 0
	for _, ch := range flow {
		b := &ch.Base().Box
		size := b.Bounding(h)
		advance := size
		if index > 0 {
			advance += gap
		}
		if cursor > 0 && cursor+advance > main+dimen.Epsilon {
			line++
			index, cursor, advance = 0, 0, size
		}
		cell := frame.WrapCell(line, index)
		if !h {
			cell = frame.WrapCell(index, line)
		}
		if cell != b.Cell {
			tracer().Debugf("%s moves from %v to %v", b.Label, b.Cell, cell)
			b.Cell = cell
		}
		cursor += advance
		index++
	}
}

// contentExtent measures the content of a container along the main and the
// cross axis, including gaps and the margins of the children.
func contentExtent(base *boxtree.Container, flow []boxtree.Node, h bool) (main, cross dimen.Px) {
	if len(flow) == 0 {
		return 0, 0
	}
	gap := base.Style.Gap.Resolve(base.Box.Content(h))
	if !base.Style.Wraps() {
		for i, ch := range flow {
			b := &ch.Base().Box
			main += b.Bounding(h)
			if i > 0 {
				main += gap
			}
			cross = dimen.Max(cross, b.Bounding(!h))
		}
		return main, cross
	}
	crossGap := base.Style.Gap.Resolve(base.Box.Content(!h))
	forEachLine(flow, h, func(line int, items []boxtree.Node) {
		lineMain, lineCross := dimen.Zero, dimen.Zero
		for i, it := range items {
			b := &it.Base().Box
			lineMain += b.Bounding(h)
			if i > 0 {
				lineMain += gap
			}
			lineCross = dimen.Max(lineCross, b.Bounding(!h))
		}
		main = dimen.Max(main, lineMain)
		cross += lineCross
		if line > 0 {
			cross += crossGap
		}
	})
	return main, cross
}

// forEachLine calls f for runs of consecutive children sharing a wrap line.
// Lines are numbered consecutively from 0, in flow order.
func forEachLine(flow []boxtree.Node, h bool, f func(line int, items []boxtree.Node)) {
	start, line := 0, 0
	for i := 1; i <= len(flow); i++ {
		if i == len(flow) || lineOf(flow[i], h) != lineOf(flow[start], h) {
			f(line, flow[start:i])
			start = i
			line++
		}
	}
}

func lineOf(n boxtree.Node, h bool) int {
	if cell := n.Base().Box.Cell; cell.Wrapped {
		return cell.Line(h)
	}
	return 0
}
