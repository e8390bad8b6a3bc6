package layout

import (
	"sync"

	"github.com/npillmayer/boxflow/core/dimen"
	"github.com/npillmayer/boxflow/core/parameters"
	"github.com/npillmayer/boxflow/engine/frame/boxtree"
)

// Engine guards a box tree for hosts where layout requests and readers of
// the calculated geometry live on different goroutines. Setting the
// available space, calculating and reading results all happen under a single
// lock, so readers never observe a tree in the middle of a calculation.
type Engine struct {
	sync.RWMutex
	root boxtree.Node
	conf parameters.Config
}

// NewEngine creates an engine for a box tree.
func NewEngine(root boxtree.Node, conf parameters.Config) *Engine {
	return &Engine{root: root, conf: conf}
}

// Layout sets the available space of the root and calculates the layout of
// the tree. Violations raised by Calculate are propagated as panics, after
// the lock has been released.
func (e *Engine) Layout(w, h dimen.Px) {
	e.Lock()
	defer e.Unlock()
	base := e.root.Base()
	base.Box.SetW(w)
	base.Box.SetH(h)
	Calculate(e.root, e.conf)
}

// Update lets a client change the tree, e.g. its styles, under the lock.
// The change takes effect with the next call to Layout.
func (e *Engine) Update(f func(root boxtree.Node)) {
	e.Lock()
	defer e.Unlock()
	f(e.root)
}

// View lets a client read the tree under the lock. f must not modify it.
func (e *Engine) View(f func(root boxtree.Node)) {
	e.RLock()
	defer e.RUnlock()
	f(e.root)
}

// SetConfig replaces the layout parameters for subsequent calls to Layout.
func (e *Engine) SetConfig(conf parameters.Config) {
	e.Lock()
	defer e.Unlock()
	e.conf = conf
}
