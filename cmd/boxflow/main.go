/*
Command boxflow loads markup, calculates its layout for a given viewport and
prints the geometry of the resulting boxes.

	boxflow [flags] [file.html]

Markup is read from the given file, or from stdin. With -i, boxflow enters
an interactive mode, where the viewport may be resized and boxes selected
with CSS selectors.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/npillmayer/boxflow/core"
	"github.com/npillmayer/boxflow/core/dimen"
	"github.com/npillmayer/boxflow/core/parameters"
	"github.com/npillmayer/boxflow/engine/frame"
	"github.com/npillmayer/boxflow/engine/frame/boxtree"
	"github.com/npillmayer/boxflow/engine/frame/framedebug"
	"github.com/npillmayer/boxflow/engine/frame/layout"
	"github.com/npillmayer/boxflow/input/html"
	"github.com/npillmayer/schuko"
	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/pterm/pterm"
)

// tracer traces with key 'boxflow.cli'
func tracer() tracing.Trace {
	return tracing.Select("boxflow.cli")
}

var traceKeys = []string{"boxflow.cli", "boxflow.layout", "boxflow.frame",
	"boxflow.boxtree", "boxflow.style", "boxflow.html", "boxflow.core"}

func main() {
	initDisplay()

	// command line flags
	tlevel := flag.String("trace", "Error", "Trace level [Debug|Info|Error]")
	width := flag.Float64("width", 800, "Width of the viewport")
	height := flag.Float64("height", 600, "Height of the viewport")
	confFile := flag.String("config", "", "YAML file with layout parameters")
	scrollbar := flag.Float64("scrollbar", -1, "Process-wide scrollbar size, if >= 0")
	iterations := flag.Int("iterations", 0, "Iteration ceiling of overflow resolution, if > 0")
	dotFile := flag.String("dot", "", "Write box tree in GraphViz DOT format to file")
	selector := flag.String("select", "", "Print only boxes matching a CSS selector")
	interactive := flag.Bool("i", false, "Interactive mode")
	flag.Parse()

	// set up logging
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	conf := testconfig.Conf{
		"tracing.adapter": "go",
	}
	for _, key := range traceKeys {
		conf["trace."+key] = *tlevel
	}
	if *iterations > 0 {
		conf[parameters.KeyMaxIterations] = strconv.Itoa(*iterations)
	}
	if err := trace2go.ConfigureRoot(conf, "trace", trace2go.ReplaceTracers(true)); err != nil {
		fmt.Printf("error configuring tracing")
		os.Exit(1)
	}
	tracing.SetTraceSelector(trace2go.Selector())
	tracer().Infof("Trace level is %s", *tlevel)

	if *scrollbar >= 0 {
		parameters.SetScrollbarSize(dimen.Px(*scrollbar))
	}
	params, err := loadParameters(*confFile, conf)
	if err != nil {
		pterm.Error.Println(errorText(err))
		os.Exit(2)
	}
	doc, err := loadDocument(flag.Arg(0))
	if err != nil {
		pterm.Error.Println(errorText(err))
		os.Exit(3)
	}
	for _, e := range doc.Errors {
		pterm.Warning.Println(errorText(e))
	}
	cli := newCLI(doc, params, dimen.Px(*width), dimen.Px(*height))
	if err = cli.layout(); err != nil {
		pterm.Error.Println(errorText(err))
		os.Exit(4)
	}
	if *dotFile != "" {
		if err = cli.writeDot(*dotFile); err != nil {
			pterm.Error.Println(errorText(err))
			os.Exit(5)
		}
	}
	if *interactive {
		cli.REPL()
		return
	}
	if err = cli.printBoxes(*selector); err != nil {
		pterm.Error.Println(errorText(err))
		os.Exit(6)
	}
}

// errorText prefers the user message of application errors. Violations
// carry all their details in their error text.
func errorText(err error) string {
	var v core.Violation
	if errors.As(err, &v) {
		return v.Error()
	}
	if e := core.AppError(nil); errors.As(err, &e) {
		return e.UserMessage()
	}
	return err.Error()
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.Info.Prefix = pterm.Prefix{
		Text:  " !  ",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  " Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

// loadParameters reads layout parameters from a YAML file. Without a file,
// they are taken from the command line configuration.
func loadParameters(filename string, conf schuko.Configuration) (parameters.Config, error) {
	if filename == "" {
		return parameters.FromConfiguration(conf)
	}
	f, err := os.Open(filename)
	if err != nil {
		return parameters.Config{}, core.WrapError(err, core.EMISSING,
			"cannot open configuration %s", filename)
	}
	defer f.Close()
	return parameters.LoadYAML(f)
}

func loadDocument(filename string) (*html.Document, error) {
	var r io.Reader = os.Stdin
	if filename != "" {
		f, err := os.Open(filename)
		if err != nil {
			return nil, core.WrapError(err, core.EMISSING, "cannot open markup %s", filename)
		}
		defer f.Close()
		r = f
	}
	return html.Parse(r)
}

// CLI holds the state of a boxflow session.
type CLI struct {
	doc    *html.Document
	params parameters.Config
	engine *layout.Engine
	w, h   dimen.Px
}

func newCLI(doc *html.Document, params parameters.Config, w, h dimen.Px) *CLI {
	return &CLI{
		doc:    doc,
		params: params,
		engine: layout.NewEngine(doc.Root, params),
		w:      w,
		h:      h,
	}
}

// layout calculates the layout at the current viewport size. Violations
// raised by the engine are reported as errors.
func (cli *CLI) layout() (err error) {
	defer func() {
		if r := recover(); r != nil {
			v, ok := r.(core.Violation)
			if !ok {
				panic(r)
			}
			err = v
		}
	}()
	cli.engine.Layout(cli.w, cli.h)
	tracer().Infof("laid out at %v × %v", cli.w, cli.h)
	return nil
}

func (cli *CLI) writeDot(filename string) error {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer f.Close()
	cli.engine.View(func(root boxtree.Node) {
		err = framedebug.ToGraphViz(root, f)
	})
	if err == nil {
		pterm.Info.Printfln("box tree written to %s", filename)
	}
	return err
}

// printBoxes prints a table of boxes, either all boxes of the tree or those
// matching a selector.
func (cli *CLI) printBoxes(selector string) error {
	var boxes []boxtree.Node
	if selector != "" {
		var err error
		if boxes, err = cli.doc.Select(selector); err != nil {
			return err
		}
	} else {
		boxtree.Walk(cli.doc.Root, func(n boxtree.Node, _ int) bool {
			boxes = append(boxes, n)
			return !n.Base().IsHidden()
		})
	}
	data := pterm.TableData{
		{"Box", "W", "H", "X", "Y", "Cell", "Scrollbars"},
	}
	cli.engine.View(func(boxtree.Node) {
		for _, n := range boxes {
			data = append(data, boxRow(n))
		}
	})
	return pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}

func boxRow(n boxtree.Node) []string {
	b := &n.Base().Box
	if n.Base().IsHidden() {
		return []string{boxtree.Label(n), "-", "-", "-", "-", "hidden", ""}
	}
	sb := ""
	if r, bot := b.InternalPadding[frame.Right], b.InternalPadding[frame.Bottom]; r > 0 || bot > 0 {
		sb = fmt.Sprintf("%v, %v", r, bot)
	}
	return []string{
		boxtree.Label(n),
		b.W().String(), b.H().String(),
		b.X.String(), b.Y.String(),
		b.Cell.String(), sb,
	}
}
