package layout

import (
	"github.com/npillmayer/boxflow/core/dimen"
	"github.com/npillmayer/boxflow/engine/frame"
	"github.com/npillmayer/boxflow/engine/frame/boxtree"
	"github.com/npillmayer/boxflow/engine/style"
)

// positionChildren places the children of a container once its overflow
// state is stable. In-flow children are placed relative to the container's
// content box, applying justify-content on the main axis and align-items on
// the cross axis. Absolutely positioned children are placed relative to the
// padding box of the anchor.
func (c *calculation) positionChildren(base *boxtree.Container, flow, abs []boxtree.Node, a anchor) {
	h := base.Style.Direction == style.Row
	main, cross := base.Box.Content(h), base.Box.Content(!h)
	gap := base.Style.Gap.Resolve(main)
	if base.Style.Wraps() {
		crossGap := base.Style.Gap.Resolve(cross)
		crossPos := dimen.Zero
		forEachLine(flow, h, func(line int, items []boxtree.Node) {
			extent := dimen.Zero
			for _, it := range items {
				extent = dimen.Max(extent, it.Base().Box.Bounding(!h))
			}
			placeLine(base, items, h, main, gap, crossPos, extent)
			crossPos += extent + crossGap
		})
	} else {
		placeLine(base, flow, h, main, gap, 0, cross)
	}
	refW, refH := base.Box.ContentWidth(), base.Box.ContentHeight()
	for _, ch := range flow {
		cb := ch.Base()
		if cb.Style.Position == style.PositionRelative {
			shiftRelative(cb, refW, refH)
		}
		finishBox(cb)
	}
	for _, ch := range abs {
		placeAbsolute(ch.Base(), a)
		finishBox(ch.Base())
	}
}

// placeLine places the items of one line (or of a non-wrapping container).
// crossPos is the offset of the line on the cross axis, extent its
// thickness.
func placeLine(base *boxtree.Container, items []boxtree.Node, h bool,
	main, gap, crossPos, extent dimen.Px) {
	//
	if len(items) == 0 {
		return
	}
	content := dimen.Zero
	for _, it := range items {
		content += it.Base().Box.Bounding(h)
	}
	lead, between := justify(base.Style.JustifyContent, main-content, gap, len(items))
	pos := lead
	for i, it := range items {
		b := &it.Base().Box
		offset := lead
		if i > 0 {
			pos += between
			offset = between
		}
		b.SetPos(h, pos)
		b.InternalMargin[frame.StartSide(h)] = offset
		pos += b.Bounding(h)
		off := align(base.Style.AlignItems, extent-b.Bounding(!h))
		b.SetPos(!h, crossPos+off)
		b.InternalMargin[frame.StartSide(!h)] = off
	}
}

// justify computes the offset before the first item and the space between
// items of a line, given the extra space left on the main axis. The gap is
// a minimum for the space between items.
func justify(mode style.Justify, extra, gap dimen.Px, n int) (lead, between dimen.Px) {
	gaps := gap * dimen.Px(n-1)
	switch mode {
	case style.JustifyCenter:
		return (extra - gaps) / 2, gap
	case style.JustifyEnd:
		return extra - gaps, gap
	case style.JustifySpaceBetween:
		if n > 1 {
			between = extra / dimen.Px(n-1)
		}
		return 0, dimen.Max(between, gap)
	case style.JustifySpaceEvenly:
		between = extra / dimen.Px(n+1)
		if between < gap {
			return dimen.NonNegative((extra - gaps) / 2), gap
		}
		return between, between
	}
	return 0, gap
}

// align computes the cross axis offset of an item, given the space left
// between the item and its line.
func align(mode style.Align, extra dimen.Px) dimen.Px {
	switch mode {
	case style.AlignCenter:
		return extra / 2
	case style.AlignEnd:
		return extra
	}
	return 0
}

// shiftRelative moves a relatively positioned child away from its flow
// position. Left and top take precedence over right and bottom.
func shiftRelative(cb *boxtree.Container, refW, refH dimen.Px) {
	b, off := &cb.Box, &cb.Style.Offsets
	if off[frame.Left].IsSet() {
		b.X += off[frame.Left].Resolve(refW)
	} else if off[frame.Right].IsSet() {
		b.X -= off[frame.Right].Resolve(refW)
	}
	if off[frame.Top].IsSet() {
		b.Y += off[frame.Top].Resolve(refH)
	} else if off[frame.Bottom].IsSet() {
		b.Y -= off[frame.Bottom].Resolve(refH)
	}
}

// sizeAbsolutes sizes and lays out the absolutely positioned children of a
// container. They take their explicit size, or else stretch between their
// offsets, or else fill the container's content box.
func (c *calculation) sizeAbsolutes(base *boxtree.Container, abs []boxtree.Node, a anchor) {
	refW, refH := base.Box.ContentWidth(), base.Box.ContentHeight()
	for _, ch := range abs {
		cb := ch.Base()
		for _, h := range [2]bool{true, false} {
			ref := refH
			if h {
				ref = refW
			}
			if st := cb.Style.Size(h); st.IsSet() {
				cb.Box.SetSize(h, st.Resolve(ref))
				continue
			}
			start, end := cb.Style.Offsets[frame.StartSide(h)], cb.Style.Offsets[frame.EndSide(h)]
			size := ref - cb.Box.MarginSum(h)
			if start.IsSet() && end.IsSet() {
				size -= start.Resolve(ref) + end.Resolve(ref)
			}
			cb.Box.SetSize(h, dimen.NonNegative(size))
		}
		c.descend(ch, a)
	}
}

// placeAbsolute positions an out-of-flow child relative to the padding box
// of the anchor. Without an anchor it is placed at the origin.
func placeAbsolute(cb *boxtree.Container, a anchor) {
	b := &cb.Box
	b.Cell = frame.FlowCell()
	if !a.ok {
		b.X, b.Y = 0, 0
		return
	}
	for _, h := range [2]bool{true, false} {
		ref := a.h
		if h {
			ref = a.w
		}
		start, end := cb.Style.Offsets[frame.StartSide(h)], cb.Style.Offsets[frame.EndSide(h)]
		switch {
		case start.IsSet():
			b.SetPos(h, start.Resolve(ref))
		case end.IsSet():
			b.SetPos(h, ref-end.Resolve(ref)-b.Bounding(h))
		default:
			b.SetPos(h, 0)
		}
	}
}
