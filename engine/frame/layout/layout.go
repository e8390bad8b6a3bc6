package layout

import (
	"github.com/npillmayer/boxflow/core"
	"github.com/npillmayer/boxflow/core/dimen"
	"github.com/npillmayer/boxflow/core/parameters"
	"github.com/npillmayer/boxflow/engine/frame"
	"github.com/npillmayer/boxflow/engine/frame/boxtree"
	"github.com/npillmayer/boxflow/engine/style"
)

// Invaluable:
// https://developer.mozilla.org/en-US/docs/Web/CSS/CSS_Flexible_Box_Layout
//
// Layout works top-down: a container always knows its own size before its
// children are sized. Sizes of children may feed back into the container
// (growing to fit, scrollbars, wrapping), which is why every container runs
// a fixed-point loop over its children.

// Calculate computes the geometry of the tree rooted at root. The root must
// have its calculated width and height pre-set to the available space.
//
// Calculate is idempotent: calling it twice on an unchanged tree yields the
// same geometry. Calculated fields of all non-hidden descendants are
// recomputed from scratch; the root's size is left as set by the caller.
func Calculate(root boxtree.Node, conf parameters.Config) {
	if root == nil {
		core.Violate(core.EPRECONDITION, "<nil>", "", "cannot calculate layout without a root")
	}
	if err := conf.Validate(); err != nil {
		core.Violate(core.EPRECONDITION, boxtree.Label(root), "", "%v", err)
	}
	base := root.Base()
	if base.IsHidden() {
		tracer().Debugf("root %s is hidden, nothing to lay out", boxtree.Label(root))
		return
	}
	base.Box.Label = boxtree.Label(root)
	requireSize(base)
	c := newCalculation(root, conf)
	defer c.release()
	c.prepare(root)
	resolveBoxModel(base, base.Box.W(), base.Box.H())
	hardSize(root)
	c.layout(root, anchor{})
	finishBox(base)
	tracer().Infof("layout of %s: %d containers laid out, %d skipped by memo",
		base.Box.Label, c.laidOut, c.memoHits)
}

// calculation is the state of one call to Calculate.
type calculation struct {
	root     *boxtree.Container
	conf     parameters.Config
	arena    *arena
	laidOut  int // statistics
	memoHits int
}

func newCalculation(root boxtree.Node, conf parameters.Config) *calculation {
	return &calculation{
		root:  root.Base(),
		conf:  conf,
		arena: acquireArena(),
	}
}

func (c *calculation) release() {
	releaseArena(c.arena)
	c.arena = nil
}

// anchor is the padding box of the nearest ancestor with position relative,
// against which absolutely positioned descendants are placed. It is passed
// down the recursion as a value.
type anchor struct {
	ok   bool
	w, h dimen.Px
}

func anchorFor(base *boxtree.Container, inherited anchor) anchor {
	if base.Style.Position != style.PositionRelative {
		return inherited
	}
	b := &base.Box
	return anchor{
		ok: true,
		w:  dimen.NonNegative(b.W() - b.Border[frame.Left].Width - b.Border[frame.Right].Width),
		h:  dimen.NonNegative(b.H() - b.Border[frame.Top].Width - b.Border[frame.Bottom].Width),
	}
}

func requireSize(base *boxtree.Container) {
	if !base.Box.HasW() {
		core.Violate(core.EPRECONDITION, base.Box.Label, "width", "available width has not been set")
	}
	if !base.Box.HasH() {
		core.Violate(core.EPRECONDITION, base.Box.Label, "height", "available height has not been set")
	}
}

// prepare resets the calculated fields of all descendants of root. The root
// keeps its size. Hidden nodes lose their geometry, but their subtrees are
// not visited.
func (c *calculation) prepare(root boxtree.Node) {
	boxtree.Walk(root, func(n boxtree.Node, depth int) bool {
		base := n.Base()
		if base.IsHidden() {
			base.Box.Clear()
			base.Box.Label = boxtree.Label(n)
			return false
		}
		if depth == 0 {
			w, h := base.Box.W(), base.Box.H()
			base.Box.Clear()
			base.Box.SetW(w)
			base.Box.SetH(h)
		} else {
			base.Box.Clear()
		}
		base.Box.Label = boxtree.Label(n)
		if t, ok := n.(*boxtree.Table); ok {
			t.ColumnWidths = nil
		}
		return true
	})
}

// descend lays out a child whose size has just been assigned. A child whose
// inputs did not change since its last layout within this calculation keeps
// its previous result.
func (c *calculation) descend(n boxtree.Node, a anchor) {
	base := n.Base()
	if len(base.Children) == 0 && !boxtree.IsTable(n) {
		return
	}
	key := memoKeyFor(base, a)
	if e, ok := c.arena.memo[base]; ok && e.key == key {
		base.Box.SetW(e.w)
		base.Box.SetH(e.h)
		c.memoHits++
		return
	}
	c.layout(n, a)
	c.arena.memo[base] = memoEntry{key: key, w: base.Box.W(), h: base.Box.H()}
}

// layout lays out the children of a container with known size.
func (c *calculation) layout(n boxtree.Node, a anchor) {
	base := n.Base()
	requireSize(base)
	c.laidOut++
	if t, ok := n.(*boxtree.Table); ok {
		c.layoutTable(t, a)
		return
	}
	flow, abs := c.arena.split(base)
	defer c.arena.releaseNodes(abs)
	defer c.arena.releaseNodes(flow)
	box := &base.Box
	box.InternalPadding[frame.Right] = 0
	box.InternalPadding[frame.Bottom] = 0
	for _, ch := range flow {
		ch.Base().Box.Cell = frame.FlowCell()
	}
	assigned := [2]dimen.Px{box.W(), box.H()} // indexed by axis, horizontal first
	snaps := [2][]dimen.Px{c.arena.pxSlice(), c.arena.pxSlice()}
	defer func() {
		c.arena.releasePx(snaps[0])
		c.arena.releasePx(snaps[1])
	}()
	for iter := 0; ; iter++ {
		if iter >= c.conf.MaxIterations {
			core.Violate(core.ECONVERGENCE, box.Label, "",
				"overflow resolution did not settle within %d iterations", c.conf.MaxIterations)
		}
		// Growth to fit content is recomputed from the assigned size in
		// every pass. Percentages of children always refer to the assigned
		// size, never to a size grown in a previous pass.
		box.SetW(assigned[0])
		box.SetH(assigned[1])
		ca := anchorFor(base, a)
		refW, refH := box.ContentWidth(), box.ContentHeight()
		for _, ch := range flow {
			resolveBoxModel(ch.Base(), refW, refH)
		}
		for _, ch := range abs {
			resolveBoxModel(ch.Base(), refW, refH)
		}
		c.distribute(base, flow)
		for _, ch := range flow {
			c.descend(ch, ca)
		}
		c.sizeAbsolutes(base, abs, ca)
		c.resolveOverflow(n, flow, assigned)
		cur := takeSnapshot(base, flow, snaps[iter%2][:0])
		snaps[iter%2] = cur
		if iter > 0 && sameSnapshot(cur, snaps[(iter+1)%2]) {
			tracer().Debugf("%s settled after %d iterations", box.Label, iter+1)
			break
		}
	}
	c.positionChildren(base, flow, abs, anchorFor(base, a))
}

// --- Snapshots -------------------------------------------------------------

// takeSnapshot records everything a further iteration of the overflow loop
// depends on: the container's size and scrollbar insets, and size and cell
// of every in-flow child.
func takeSnapshot(base *boxtree.Container, flow []boxtree.Node, buf []dimen.Px) []dimen.Px {
	box := &base.Box
	buf = append(buf, box.W(), box.H(),
		box.InternalPadding[frame.Right], box.InternalPadding[frame.Bottom])
	for _, ch := range flow {
		b := &ch.Base().Box
		wrapped := dimen.Px(0)
		if b.Cell.Wrapped {
			wrapped = 1
		}
		buf = append(buf, b.W(), b.H(), wrapped, dimen.Px(b.Cell.Row), dimen.Px(b.Cell.Col))
	}
	return buf
}

func sameSnapshot(a, b []dimen.Px) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !dimen.Equal(a[i], b[i]) {
			return false
		}
	}
	return true
}

// axis maps a bool for "horizontal" to an index.
func axis(horizontal bool) int {
	if horizontal {
		return 0
	}
	return 1
}
