/*
Package boxtree holds the tree of boxes layout operates on.

A box tree consists of nodes of different kinds: generic boxes (divs), text
runs, images, canvases, input elements and the structural kinds of tables.
Every kind wraps a common Container record, holding the style inputs, the
calculated geometry and the ordered list of children. Child order is flow
order.

Box trees are built by clients, either in code or by a markup reader (see
package input/html). Layout mutates the calculated geometry in place.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package boxtree

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'boxflow.boxtree'.
func tracer() tracing.Trace {
	return tracing.Select("boxflow.boxtree")
}
