package layout

import (
	"github.com/emirpasic/gods/maps/treemap"
	"github.com/npillmayer/boxflow/core/dimen"
	"github.com/npillmayer/boxflow/engine/frame/boxtree"
	"github.com/npillmayer/boxflow/engine/style"
)

// distribute assigns width and height to every in-flow child of a container.
// On the main axis, children with an explicit size get it, resolved against
// the container's content box. The remaining space is split evenly among
// the others. On the cross axis, children without an explicit size stretch
// to the container (or to their wrap line).
func (c *calculation) distribute(base *boxtree.Container, flow []boxtree.Node) {
	if len(flow) == 0 {
		return
	}
	h := base.Style.Direction == style.Row
	main, cross := base.Box.Content(h), base.Box.Content(!h)
	if base.Style.Wraps() {
		c.distributeWrapped(base, flow, h, main, cross)
		return
	}
	squash := base.Style.MainOverflow() == style.OverflowSquash
	distributeLine(base, flow, h, main, squash)
	for _, ch := range flow {
		sizeCross(ch.Base(), !h, cross, cross)
	}
}

// distributeLine sizes the items of a single line on the main axis. Gaps and
// the margins of all items are subtracted from the available space before
// the remainder is split. With squash set, explicitly sized items shrink
// proportionally if they do not fit.
func distributeLine(base *boxtree.Container, items []boxtree.Node, h bool, main dimen.Px, squash bool) {
	gap := base.Style.Gap.Resolve(main)
	fluff := dimen.Zero // gaps and margins
	if len(items) > 1 {
		fluff = gap * dimen.Px(len(items)-1)
	}
	sized, unsized := dimen.Zero, 0
	for _, it := range items {
		ib := it.Base()
		fluff += ib.Box.MarginSum(h)
		if st := ib.Style.Size(h); st.IsSet() {
			s := st.Resolve(main)
			ib.Box.SetSize(h, s)
			sized += s
		} else {
			unsized++
		}
	}
	remainder := main - sized - fluff
	if squash && remainder < -dimen.Epsilon && sized > 0 {
		scale := dimen.NonNegative(main-fluff) / sized
		tracer().Debugf("%s: squashing sized children by %.3f", base.Box.Label, scale)
		for _, it := range items {
			ib := it.Base()
			if ib.Style.Size(h).IsSet() {
				ib.Box.SetSize(h, ib.Box.Size(h)*scale)
			}
		}
		remainder = 0
	}
	if unsized == 0 {
		return // remainder is left to justify-content
	}
	each := dimen.NonNegative(remainder / dimen.Px(unsized))
	for _, it := range items {
		ib := it.Base()
		if !ib.Style.Size(h).IsSet() {
			ib.Box.SetSize(h, each)
		}
	}
}

// sizeCross sizes an item on the cross axis. Explicit sizes resolve against
// the container's content box, other items stretch to the given extent.
func sizeCross(ib *boxtree.Container, h bool, reference, extent dimen.Px) {
	if st := ib.Style.Size(h); st.IsSet() {
		ib.Box.SetSize(h, st.Resolve(reference))
		return
	}
	ib.Box.SetSize(h, dimen.NonNegative(extent-ib.Box.MarginSum(h)))
}

// distributeWrapped distributes space in a wrapping container. Children are
// bucketed by the wrap line they have been assigned to in the previous
// iteration (or all into one line for the first iteration), and every line
// is distributed on its own. On the cross axis, every line is as thick as
// its thickest explicitly sized item. Lines without sized items share the
// remaining space.
func (c *calculation) distributeWrapped(base *boxtree.Container, flow []boxtree.Node,
	h bool, main, cross dimen.Px) {
	//
	lines := c.bucketLines(flow, h)
	defer c.releaseLines(lines)
	it := lines.Iterator()
	for it.Next() {
		distributeLine(base, it.Value().([]boxtree.Node), h, main, false)
	}
	crossGap := base.Style.Gap.Resolve(cross)
	extents := c.arena.pxSlice()
	defer func() { c.arena.releasePx(extents) }()
	remaining := cross - crossGap*dimen.Px(lines.Size()-1)
	free := 0
	it = lines.Iterator()
	for it.Next() {
		ext, sized := dimen.Zero, false
		for _, item := range it.Value().([]boxtree.Node) {
			ib := item.Base()
			if st := ib.Style.Size(!h); st.IsSet() {
				ext = dimen.Max(ext, st.Resolve(cross)+ib.Box.MarginSum(!h))
				sized = true
			}
		}
		if sized {
			remaining -= ext
		} else {
			ext = -1
			free++
		}
		extents = append(extents, ext)
	}
	share := dimen.Zero
	if free > 0 {
		share = dimen.NonNegative(remaining / dimen.Px(free))
	}
	i := 0
	it = lines.Iterator()
	for it.Next() {
		ext := extents[i]
		if ext < 0 {
			ext = share
		}
		for _, item := range it.Value().([]boxtree.Node) {
			sizeCross(item.Base(), !h, cross, ext)
		}
		i++
	}
}

// bucketLines groups wrapped children by line index, in ascending order.
func (c *calculation) bucketLines(flow []boxtree.Node, h bool) *treemap.Map {
	lines := treemap.NewWithIntComparator()
	for _, ch := range flow {
		line := 0
		if cell := ch.Base().Box.Cell; cell.Wrapped {
			line = cell.Line(h)
		}
		var bucket []boxtree.Node
		if b, found := lines.Get(line); found {
			bucket = b.([]boxtree.Node)
		} else {
			bucket = c.arena.nodeSlice()
		}
		lines.Put(line, append(bucket, ch))
	}
	return lines
}

func (c *calculation) releaseLines(lines *treemap.Map) {
	for _, v := range lines.Values() {
		c.arena.releaseNodes(v.([]boxtree.Node))
	}
}
