/*
Package frame deals with layout frames.

Layout may be understood as the process of placing boxes within larger
boxes. This package holds the geometry of a single box as calculated by
layout: its border box size, its offset within the parent, its flow position
and the resolved spacing around it.

Boxes follow the CSS box model. Sub-packages hold the tree of boxes
(boxtree), the engine calculating their geometry (layout) and debugging
helpers (framedebug).

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package frame

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'boxflow.frame'.
func tracer() tracing.Trace {
	return tracing.Select("boxflow.frame")
}
