package html

import (
	"errors"
	"io"
	"strings"

	"github.com/andybalholm/cascadia"
	"github.com/aymerick/douceur/css"
	"github.com/aymerick/douceur/parser"
	"github.com/npillmayer/boxflow/core"
	"github.com/npillmayer/boxflow/engine/frame/boxtree"
	"github.com/npillmayer/boxflow/engine/style"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

var errNoBody = errors.New("markup has no body")

// Document is a box tree together with the markup it has been built from.
type Document struct {
	Root   boxtree.Node
	Errors []error // malformed style declarations, collected while building
	markup *html.Node
	boxes  map[*html.Node]boxtree.Node
}

// Parse reads markup from r and builds a box tree from it.
//
// If the body of the markup consists of a single element, this element's box
// is the root of the tree. Otherwise the body itself becomes a div holding
// the boxes of its children.
func Parse(r io.Reader) (*Document, error) {
	markup, err := html.Parse(r)
	if err != nil {
		return nil, core.WrapError(err, core.EINVALID, "cannot parse markup")
	}
	body := findElement(markup, atom.Body)
	if body == nil {
		return nil, core.WrapError(errNoBody, core.EINVALID, "cannot build box tree")
	}
	doc := &Document{
		markup: markup,
		boxes:  make(map[*html.Node]boxtree.Node),
	}
	top := body
	if el := singleElementChild(body); el != nil {
		top = el
	}
	doc.Root = doc.makeBox(top)
	doc.applyStyleSheets()
	doc.applyInlineStyles()
	tracer().Infof("built box tree of %d boxes from markup, %d style errors",
		len(doc.boxes), len(doc.Errors))
	return doc, nil
}

// ParseString builds a box tree from a string of markup.
func ParseString(markup string) (*Document, error) {
	return Parse(strings.NewReader(markup))
}

// Markup returns the parsed markup tree.
func (doc *Document) Markup() *html.Node {
	return doc.markup
}

// Select returns the boxes of all elements matching a CSS selector, in
// document order. Matching elements without a box (e.g., <head>) are left
// out.
func (doc *Document) Select(selector string) ([]boxtree.Node, error) {
	sel, err := cascadia.Compile(selector)
	if err != nil {
		return nil, core.WrapError(err, core.EINVALID, "illegal selector %q", selector)
	}
	var result []boxtree.Node
	for _, n := range sel.MatchAll(doc.markup) {
		if box, ok := doc.boxes[n]; ok {
			result = append(result, box)
		}
	}
	tracer().Debugf("selector %q matches %d boxes", selector, len(result))
	return result, nil
}

// --- Building boxes --------------------------------------------------------

// makeBox creates the box for a markup node and, recursively, for its
// children. It returns nil for nodes which do not produce a box.
func (doc *Document) makeBox(n *html.Node) boxtree.Node {
	switch n.Type {
	case html.TextNode:
		text := strings.Join(strings.Fields(n.Data), " ")
		if text == "" {
			return nil
		}
		t := boxtree.NewText(text)
		doc.boxes[n] = t
		return t
	case html.ElementNode:
	default:
		return nil
	}
	if skipped(n) {
		tracer().Debugf("element <%s> produces no box", n.Data)
		return nil
	}
	box := newBox(n, attr(n, "id"))
	doc.boxes[n] = box
	base := box.Base()
	if _, ok := attribute(n, "hidden"); ok {
		base.Style.Hidden = true
	}
	for _, dim := range [2]string{"width", "height"} {
		if v, ok := attribute(n, dim); ok {
			doc.set(box, dim, v)
		}
	}
	if isLeaf(n) {
		return box
	}
	for ch := n.FirstChild; ch != nil; ch = ch.NextSibling {
		if child := doc.makeBox(ch); child != nil {
			tracer().Debugf("adding box %s to parent %s", boxtree.Label(child), boxtree.Label(box))
			base.Add(child)
		}
	}
	return box
}

func newBox(n *html.Node, id string) boxtree.Node {
	var box boxtree.Node
	switch n.DataAtom {
	case atom.Img:
		return boxtree.NewImage(id, attr(n, "src"), attr(n, "alt"))
	case atom.Canvas:
		return boxtree.NewCanvas(id)
	case atom.Input:
		return boxtree.NewInput(id, attr(n, "type"), attr(n, "name"), attr(n, "value"))
	case atom.Table:
		return boxtree.NewTable(id)
	case atom.Thead:
		box = boxtree.NewTableHead()
	case atom.Tbody, atom.Tfoot:
		box = boxtree.NewTableBody()
	case atom.Tr:
		box = boxtree.NewRow()
	case atom.Th:
		box = boxtree.NewHeaderCell()
	case atom.Td:
		box = boxtree.NewCell()
	default:
		return boxtree.NewDiv(id)
	}
	box.Base().ID = id
	return box
}

func skipped(n *html.Node) bool {
	switch n.DataAtom {
	case atom.Head, atom.Script, atom.Style, atom.Template, atom.Noscript,
		atom.Title, atom.Meta, atom.Link:
		return true
	}
	return false
}

func isLeaf(n *html.Node) bool {
	switch n.DataAtom {
	case atom.Img, atom.Canvas, atom.Input:
		return true
	}
	return false
}

// --- Styles ----------------------------------------------------------------

// applyStyleSheets applies the rules of all <style> elements, in document
// order. At-rules are not supported.
func (doc *Document) applyStyleSheets() {
	walk(doc.markup, func(n *html.Node) {
		if n.Type != html.ElementNode || n.DataAtom != atom.Style {
			return
		}
		var text strings.Builder
		for ch := n.FirstChild; ch != nil; ch = ch.NextSibling {
			if ch.Type == html.TextNode {
				text.WriteString(ch.Data)
			}
		}
		sheet, err := parser.Parse(text.String())
		if err != nil {
			doc.fail(core.WrapError(err, core.EINVALID, "cannot parse style sheet"))
			return
		}
		for _, rule := range sheet.Rules {
			doc.applyRule(rule)
		}
	})
}

func (doc *Document) applyRule(rule *css.Rule) {
	if rule.Kind != css.QualifiedRule {
		tracer().Infof("ignoring at-rule %s", rule.Name)
		return
	}
	for _, s := range rule.Selectors {
		sel, err := cascadia.Compile(s)
		if err != nil {
			doc.fail(core.WrapError(err, core.EINVALID, "illegal selector %q", s))
			continue
		}
		for _, n := range sel.MatchAll(doc.markup) {
			if box, ok := doc.boxes[n]; ok {
				doc.applyDeclarations(box, rule.Declarations)
			}
		}
	}
}

// applyInlineStyles applies the style attributes of all elements, in
// document order.
func (doc *Document) applyInlineStyles() {
	walk(doc.markup, func(n *html.Node) {
		box, ok := doc.boxes[n]
		if !ok || n.Type != html.ElementNode {
			return
		}
		text, ok := attribute(n, "style")
		if !ok || strings.TrimSpace(text) == "" {
			return
		}
		if !strings.HasSuffix(strings.TrimSpace(text), ";") {
			text += ";" // the declaration parser drops a trailing declaration otherwise
		}
		decls, err := parser.ParseDeclarations(text)
		if err != nil {
			doc.fail(core.WrapError(err, core.EINVALID, "%s: cannot parse style %q",
				boxtree.Label(box), text))
			return
		}
		doc.applyDeclarations(box, decls)
	})
}

func (doc *Document) applyDeclarations(box boxtree.Node, decls []*css.Declaration) {
	for _, d := range decls {
		doc.set(box, d.Property, d.Value)
	}
}

func (doc *Document) set(box boxtree.Node, property, value string) {
	err := box.Base().Style.Set(property, value)
	switch {
	case err == nil:
	case errors.Is(err, style.ErrUnknownProperty):
		tracer().Debugf("%s: ignoring property %s", boxtree.Label(box), property)
	default:
		doc.fail(core.WrapError(err, core.EINVALID, "%s: %s: %s",
			boxtree.Label(box), property, value))
	}
}

func (doc *Document) fail(err error) {
	tracer().Errorf("%s: %v", core.UserMessage(err), errors.Unwrap(err))
	doc.Errors = append(doc.Errors, err)
}

// --- Markup helpers --------------------------------------------------------

func walk(n *html.Node, f func(*html.Node)) {
	f(n)
	for ch := n.FirstChild; ch != nil; ch = ch.NextSibling {
		walk(ch, f)
	}
}

func findElement(n *html.Node, a atom.Atom) *html.Node {
	if n.Type == html.ElementNode && n.DataAtom == a {
		return n
	}
	for ch := n.FirstChild; ch != nil; ch = ch.NextSibling {
		if found := findElement(ch, a); found != nil {
			return found
		}
	}
	return nil
}

// singleElementChild returns the only element child of n, if n has exactly
// one element child and no non-blank text.
func singleElementChild(n *html.Node) *html.Node {
	var el *html.Node
	for ch := n.FirstChild; ch != nil; ch = ch.NextSibling {
		switch ch.Type {
		case html.ElementNode:
			if skipped(ch) {
				continue
			}
			if el != nil {
				return nil
			}
			el = ch
		case html.TextNode:
			if strings.TrimSpace(ch.Data) != "" {
				return nil
			}
		}
	}
	return el
}

func attribute(n *html.Node, key string) (string, bool) {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

func attr(n *html.Node, key string) string {
	v, _ := attribute(n, key)
	return v
}
