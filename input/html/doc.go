/*
Package html builds box trees from HTML markup.

Markup is parsed with golang.org/x/net/html. Every element below <body>
becomes a box of the corresponding kind: tables, table sections, rows and
cells map to their table kinds, <img>, <canvas> and <input> to leaf kinds and
everything else to a generic div. Non-blank text becomes a text box.
Elements which carry no layout, such as <script> or <style>, are skipped.

Styles are taken from <style> elements and from inline style attributes,
both parsed with github.com/aymerick/douceur. Style sheet rules are matched
with github.com/andybalholm/cascadia and applied in document order, inline
declarations last. There is no specificity: later declarations win. The
"hidden" attribute hides a box, and width and height attributes of elements
are treated like the corresponding style properties.

Properties unknown to the box model (colors of text, fonts, …) are ignored;
malformed values are collected as errors of the document, but do not stop
the tree from being built.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package html

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'boxflow.html'.
func tracer() tracing.Trace {
	return tracing.Select("boxflow.html")
}
