package main

import (
	"os"
	"strconv"
	"strings"

	"github.com/chzyer/readline"
	"github.com/npillmayer/boxflow/core"
	"github.com/npillmayer/boxflow/core/dimen"
	"github.com/npillmayer/boxflow/engine/frame/boxtree"
	"github.com/npillmayer/boxflow/engine/frame/framedebug"
	"github.com/pterm/pterm"
)

const replHelp = `Commands:
  size W H        lay out again at viewport W × H
  select SEL      print boxes matching CSS selector SEL
  boxes           print all boxes
  dump            print the box tree
  dot FILE        write the box tree in DOT format to FILE
  scrollbar N     set the scrollbar size and lay out again
  help            print this message
  quit            leave interactive mode`

// REPL starts interactive mode.
func (cli *CLI) REPL() {
	repl, err := readline.New("boxflow > ")
	if err != nil {
		tracer().Errorf("%v", err)
		os.Exit(7)
	}
	defer repl.Close()
	pterm.Info.Println("Quit with <ctrl>D or 'quit'") // inform user how to stop the CLI
	for {
		line, err := repl.Readline()
		if err != nil { // io.EOF
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		quit, err := cli.execute(strings.Fields(line))
		if err != nil {
			pterm.Error.Println(errorText(err))
			continue
		}
		if quit {
			break
		}
	}
	pterm.Info.Println("Good bye!")
}

func (cli *CLI) execute(cmd []string) (quit bool, err error) {
	switch cmd[0] {
	case "quit", "exit":
		return true, nil
	case "help":
		pterm.Println(replHelp)
	case "size":
		if len(cmd) != 3 {
			return false, core.Error(core.EINVALID, "usage: size W H")
		}
		w, err := parsePx(cmd[1])
		if err != nil {
			return false, err
		}
		h, err := parsePx(cmd[2])
		if err != nil {
			return false, err
		}
		cli.w, cli.h = w, h
		if err = cli.layout(); err == nil {
			pterm.Info.Printfln("laid out at %v × %v", w, h)
		}
		return false, err
	case "scrollbar":
		if len(cmd) != 2 {
			return false, core.Error(core.EINVALID, "usage: scrollbar N")
		}
		sb, err := parsePx(cmd[1])
		if err != nil {
			return false, err
		}
		cli.params.ScrollbarSize = sb
		cli.engine.SetConfig(cli.params)
		return false, cli.layout()
	case "select":
		if len(cmd) < 2 {
			return false, core.Error(core.EINVALID, "usage: select SEL")
		}
		return false, cli.printBoxes(strings.Join(cmd[1:], " "))
	case "boxes":
		return false, cli.printBoxes("")
	case "dump":
		cli.engine.View(func(root boxtree.Node) {
			err = framedebug.Dump(root, os.Stdout)
		})
		return false, err
	case "dot":
		if len(cmd) != 2 {
			return false, core.Error(core.EINVALID, "usage: dot FILE")
		}
		return false, cli.writeDot(cmd[1])
	default:
		return false, core.Error(core.EINVALID, "unknown command %q, try 'help'", cmd[0])
	}
	return false, nil
}

func parsePx(s string) (dimen.Px, error) {
	f, err := strconv.ParseFloat(strings.TrimSuffix(s, "px"), 32)
	if err != nil || f < 0 {
		return 0, core.Error(core.EINVALID, "not a valid dimension: %q", s)
	}
	return dimen.Px(f), nil
}
