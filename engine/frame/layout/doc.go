/*
Package layout calculates the geometry of a box tree.

Overview

Clients hand a tree of styled nodes to Calculate, with the root carrying a
pre-set width and height (the available space). Layout then recurses
depth-first, running for every container

    resolve box model → distribute main axis → recurse into children →
    resolve overflow and wrapping → repeat until stable → place children

Tables divert into a column/row sizer instead of the generic distributor.

The outcome is written to the calculated fields (frame.Box) of every
non-hidden node. Hidden nodes are skipped entirely.

Failure modes of layout are caller or algorithm bugs, not environmental
conditions. They are raised as panics with a core.Violation value: a missing
available space (core.EPRECONDITION), a negative dimension (core.ENEGATIVE)
or an overflow resolution failing to converge (core.ECONVERGENCE).

Layout is single-threaded and synchronous and needs exclusive access to the
tree for the duration of a call. Type Engine serializes access for
multi-threaded hosts.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package layout

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'boxflow.layout'.
func tracer() tracing.Trace {
	return tracing.Select("boxflow.layout")
}
