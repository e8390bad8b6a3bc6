package layout

import (
	"github.com/npillmayer/boxflow/core"
	"github.com/npillmayer/boxflow/core/dimen"
	"github.com/npillmayer/boxflow/engine/frame"
	"github.com/npillmayer/boxflow/engine/frame/boxtree"
	"github.com/npillmayer/boxflow/engine/style"
)

// resolveBoxModel computes margins, padding, borders and opacity of a node.
// Horizontal sides resolve against refW, vertical sides against refH. For
// children these are the dimensions of the parent's content box, the root
// resolves against its own size.
func resolveBoxModel(base *boxtree.Container, refW, refH dimen.Px) {
	b, s := &base.Box, &base.Style
	for side := frame.Top; side <= frame.Left; side++ {
		ref := refH
		if side == frame.Left || side == frame.Right {
			ref = refW
		}
		b.Margins[side] = s.Margin[side].Resolve(ref)
		b.Padding[side] = s.Padding[side].Resolve(ref)
		b.Border[side] = frame.ResolveBorder(s.Border[side], ref)
		if b.Padding[side] < 0 {
			core.Violate(core.ENEGATIVE, b.Label, "padding-"+sideName(side), "negative padding %v", b.Padding[side])
		}
		if b.Border[side].Width < 0 {
			core.Violate(core.ENEGATIVE, b.Label, "border-"+sideName(side), "negative border %v", b.Border[side].Width)
		}
	}
	b.Opacity = float32(s.Opacity.ResolveOr(1, 1))
}

// finishBox resolves values depending on the final size of a node. Corner
// radii resolve against the shorter side of the border box.
func finishBox(base *boxtree.Container) {
	b := &base.Box
	ref := dimen.Min(b.W(), b.H())
	for corner := style.TopLeft; corner <= style.BottomLeft; corner++ {
		b.Radius[corner] = base.Style.Radius[corner].Resolve(ref)
	}
}

// hardSize assigns literal widths and heights to all non-hidden descendants
// of root, top-down, before any space is distributed.
func hardSize(root boxtree.Node) {
	cnt := 0
	boxtree.Walk(root, func(n boxtree.Node, depth int) bool {
		base := n.Base()
		if base.IsHidden() {
			return false
		}
		if depth == 0 {
			return true
		}
		if w, ok := base.Style.Width.Literal(); ok {
			base.Box.SetW(w)
			cnt++
		}
		if h, ok := base.Style.Height.Literal(); ok {
			base.Box.SetH(h)
			cnt++
		}
		return true
	})
	tracer().Debugf("hard-sized %d dimensions", cnt)
}

func sideName(side style.Side) string {
	switch side {
	case frame.Top:
		return "top"
	case frame.Right:
		return "right"
	case frame.Bottom:
		return "bottom"
	}
	return "left"
}
