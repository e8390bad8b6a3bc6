/*
Package style holds the style inputs of layout nodes.

Sizes are given as Numbers: a literal pixel quantity, a percentage of a
reference dimension, or an arithmetic expression over other Numbers
(`calc(100% - 30px)`). Numbers are resolved against a concrete reference
dimension only when layout knows it.

Four-way values (margins, padding, borders, offsets) always start at the top
and travel clockwise, as in CSS.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package style

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'boxflow.style'.
func tracer() tracing.Trace {
	return tracing.Select("boxflow.style")
}
