/*
Package framedebug provides diagnostic output for laid out box trees.

ToGraphViz writes a box tree in DOT format, suitable as input for Graphviz.
Dump writes an indented plain-text listing of the calculated geometry.
*/
package framedebug

import (
	"fmt"
	"image/color"
	"io"
	"strings"
	"text/template"

	"github.com/npillmayer/boxflow/engine/frame"
	"github.com/npillmayer/boxflow/engine/frame/boxtree"
	"github.com/npillmayer/schuko/tracing"
)

func tracer() tracing.Trace {
	return tracing.Select("boxflow.frame")
}

// Parameters for GraphViz drawing.
type graphParamsType struct {
	Fontname string
	BoxTmpl  *template.Template
	EdgeTmpl *template.Template
	cnt      int
	limit    int
}

// Helper structs
type cbox struct {
	N    boxtree.Node
	Name string
}

type cedge struct {
	N1, N2 cbox
}

// ToGraphViz creates a graphical representation of a box tree, including
// the calculated geometry of each box. Hidden subtrees are drawn greyed out
// and are not descended into.
func ToGraphViz(root boxtree.Node, w io.Writer) error {
	header, err := template.New("boxTree").Parse(graphHeadTmpl)
	if err != nil {
		return err
	}
	gparams := graphParamsType{Fontname: "Helvetica", limit: 4096}
	gparams.BoxTmpl = template.Must(template.New("box").Funcs(
		template.FuncMap{
			"shortstring": shortText,
			"istext":      boxtree.IsText,
			"label":       label,
			"fill":        fill,
			"border":      borderColor,
		}).Parse(boxTmpl))
	gparams.EdgeTmpl = template.Must(template.New("boxedge").Parse(edgeTmpl))
	if err = header.Execute(w, gparams); err != nil {
		return err
	}
	dict := make(map[*boxtree.Container]string, 256)
	if err = boxes(root, w, dict, &gparams); err != nil {
		return err
	}
	_, err = w.Write([]byte("}\n"))
	return err
}

func boxes(n boxtree.Node, w io.Writer, dict map[*boxtree.Container]string, gparams *graphParamsType) error {
	gparams.cnt++
	if gparams.cnt == gparams.limit {
		tracer().Errorf("graphviz: giving up after %d boxes", gparams.limit)
		return nil
	}
	if err := box(n, w, dict, gparams); err != nil {
		return err
	}
	if n.Base().IsHidden() {
		return nil
	}
	for _, ch := range n.Base().Children {
		if ch == nil {
			continue
		}
		if err := boxes(ch, w, dict, gparams); err != nil {
			return err
		}
		e := cedge{cbox{n, dict[n.Base()]}, cbox{ch, dict[ch.Base()]}}
		if err := gparams.EdgeTmpl.Execute(w, e); err != nil {
			return err
		}
	}
	return nil
}

func box(n boxtree.Node, w io.Writer, dict map[*boxtree.Container]string, gparams *graphParamsType) error {
	name := dict[n.Base()]
	if name == "" {
		name = fmt.Sprintf("node%05d", len(dict)+1)
		dict[n.Base()] = name
	}
	return gparams.BoxTmpl.Execute(w, &cbox{n, name})
}

func shortText(box *cbox) string {
	txt := ""
	if t, ok := box.N.(*boxtree.Text); ok {
		txt = t.Value
	}
	s := fmt.Sprintf("\"%s \\\"", "T")
	if r := []rune(txt); len(r) > 10 {
		s += string(r[:10]) + "…\\\"\""
	} else {
		s += txt + "\\\"\""
	}
	s = strings.Replace(s, "\n", `\\n`, -1)
	s = strings.Replace(s, "\t", `\\t`, -1)
	s = strings.Replace(s, " ", "␣", -1)
	return s
}

func label(n boxtree.Node) string {
	b := &n.Base().Box
	if !b.HasW() || !b.HasH() {
		return fmt.Sprintf("%q", boxtree.Label(n))
	}
	l := fmt.Sprintf("%s\\n%v×%v @ (%v,%v)", boxtree.Label(n), b.W(), b.H(), b.X, b.Y)
	if b.Cell.Wrapped {
		l += "\\n" + b.Cell.String()
	}
	return "\"" + l + "\""
}

func fill(n boxtree.Node) string {
	switch {
	case n.Base().IsHidden():
		return "grey80"
	case n.Base().Box.HasW() && n.Base().Box.IsTransparent():
		return "white"
	case boxtree.IsTable(n), boxtree.IsTableSection(n), boxtree.IsRow(n):
		return "lightgoldenrod1"
	case boxtree.IsTableCell(n):
		return "lightgoldenrodyellow"
	}
	return "lightblue3"
}

func borderColor(n boxtree.Node) string {
	for _, b := range n.Base().Box.Border {
		if b.Width > 0 && b.LineColor != nil {
			return colorString(b.LineColor)
		}
	}
	return "black"
}

func colorString(c color.Color) string {
	r, g, b, a := c.RGBA()
	return fmt.Sprintf("#%02x%02x%02x%02x", r>>8, g>>8, b>>8, a>>8)
}

// --- Templates --------------------------------------------------------

const graphHeadTmpl = `digraph g {
  graph [labelloc="t" label="" splines=true overlap=false rankdir = "LR"];
  graph [fontname = "{{ .Fontname }}" fontsize=12] ;
   node [fontname = "{{ .Fontname }}" fontsize=12] ;
   edge [fontname = "{{ .Fontname }}" fontsize=12] ;
`
const boxTmpl = `{{ if istext .N }}
{{ .Name }}	[ label={{ shortstring . }} shape=box style=filled fillcolor=grey95 fontname="Courier" fontsize=11.0 ] ;
{{ else }}
{{ .Name }}	[ label={{ label .N }} shape=box style=filled fillcolor={{ fill .N }} color="{{ border .N }}" ] ;
{{ end }}
`

const edgeTmpl = `{{ .N1.Name }} -> {{ .N2.Name }} [weight=1] ;
`

// ---------------------------------------------------------------------------

// Dump writes the calculated geometry of a box tree as an indented listing,
// one line per non-hidden box.
func Dump(root boxtree.Node, w io.Writer) error {
	var err error
	boxtree.Walk(root, func(n boxtree.Node, depth int) bool {
		if err != nil || n.Base().IsHidden() {
			return false
		}
		_, err = fmt.Fprintf(w, "%s%s\n", strings.Repeat("  ", depth), BoxString(n))
		return true
	})
	return err
}

// BoxString is a one-line description of a box and its geometry.
func BoxString(n boxtree.Node) string {
	b := &n.Base().Box
	var sb strings.Builder
	sb.WriteString(boxtree.Label(n))
	if b.HasW() && b.HasH() {
		fmt.Fprintf(&sb, " %v×%v @ (%v,%v)", b.W(), b.H(), b.X, b.Y)
	} else {
		sb.WriteString(" <not laid out>")
	}
	if b.Cell.Wrapped {
		sb.WriteString(" " + b.Cell.String())
	}
	if ip := b.InternalPadding; ip[frame.Right] > 0 || ip[frame.Bottom] > 0 {
		fmt.Fprintf(&sb, " scrollbars(%v,%v)", ip[frame.Right], ip[frame.Bottom])
	}
	return sb.String()
}
