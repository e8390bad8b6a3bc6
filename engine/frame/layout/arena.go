package layout

import (
	"sync"

	"github.com/npillmayer/boxflow/core/dimen"
	"github.com/npillmayer/boxflow/engine/frame/boxtree"
	"github.com/npillmayer/boxflow/engine/style"
)

// arena holds the scratch memory of one calculation: slices for child lists,
// wrap lines and snapshots, and the memo of laid out subtrees. Arenas are
// recycled between calculations, but never hold on to tree nodes after a
// calculation has finished.
type arena struct {
	nodes [][]boxtree.Node
	pxs   [][]dimen.Px
	memo  map[*boxtree.Container]memoEntry
}

var arenaPool = sync.Pool{
	New: func() interface{} {
		return &arena{memo: make(map[*boxtree.Container]memoEntry)}
	},
}

func acquireArena() *arena {
	return arenaPool.Get().(*arena)
}

func releaseArena(a *arena) {
	if a == nil {
		return
	}
	for k := range a.memo {
		delete(a.memo, k)
	}
	arenaPool.Put(a)
}

func (a *arena) nodeSlice() []boxtree.Node {
	if n := len(a.nodes); n > 0 {
		s := a.nodes[n-1]
		a.nodes = a.nodes[:n-1]
		return s[:0]
	}
	return make([]boxtree.Node, 0, 8)
}

func (a *arena) releaseNodes(s []boxtree.Node) {
	if cap(s) == 0 {
		return
	}
	s = s[:cap(s)]
	for i := range s {
		s[i] = nil
	}
	a.nodes = append(a.nodes, s[:0])
}

func (a *arena) pxSlice() []dimen.Px {
	if n := len(a.pxs); n > 0 {
		s := a.pxs[n-1]
		a.pxs = a.pxs[:n-1]
		return s[:0]
	}
	return make([]dimen.Px, 0, 32)
}

func (a *arena) releasePx(s []dimen.Px) {
	if cap(s) == 0 {
		return
	}
	a.pxs = append(a.pxs, s[:0])
}

// split returns the non-hidden children of a container, separated into
// in-flow and absolutely positioned ones.
func (a *arena) split(base *boxtree.Container) (flow, abs []boxtree.Node) {
	flow, abs = a.nodeSlice(), a.nodeSlice()
	for _, ch := range base.Children {
		cb := ch.Base()
		if cb.IsHidden() {
			continue
		}
		if cb.Style.IsAbsolute() {
			abs = append(abs, ch)
		} else {
			flow = append(flow, ch)
		}
	}
	return flow, abs
}

// --- Memo ------------------------------------------------------------------

// memoKey collects the inputs of a subtree layout which are set from outside
// the subtree.
type memoKey struct {
	w, h    dimen.Px
	padding [4]dimen.Px
	border  [4]dimen.Px
	anchor  anchor
}

type memoEntry struct {
	key  memoKey
	w, h dimen.Px // resulting size
}

func memoKeyFor(base *boxtree.Container, a anchor) memoKey {
	k := memoKey{
		w:       base.Box.W(),
		h:       base.Box.H(),
		padding: base.Box.Padding,
		anchor:  a,
	}
	for side := style.Top; side <= style.Left; side++ {
		k.border[side] = base.Box.Border[side].Width
	}
	return k
}
