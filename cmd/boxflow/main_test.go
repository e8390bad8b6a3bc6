package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/npillmayer/boxflow/core"
	"github.com/npillmayer/boxflow/core/dimen"
	"github.com/npillmayer/boxflow/core/parameters"
	"github.com/npillmayer/boxflow/engine/frame"
	"github.com/npillmayer/boxflow/input/html"
	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const markup = `<div id="root" style="overflow-x: wrap; overflow-y: auto">
  <div class="c" style="width: 25px; height: 30px"></div>
  <div class="c" style="width: 25px; height: 30px"></div>
  <div class="c" style="width: 25px; height: 30px"></div>
</div>`

func newTestCLI(t *testing.T) *CLI {
	doc, err := html.ParseString(markup)
	require.NoError(t, err)
	params := parameters.Default()
	params.ScrollbarSize = 16
	cli := newCLI(doc, params, 50, 40)
	require.NoError(t, cli.layout())
	return cli
}

func TestCommands(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "boxflow.cli")
	defer teardown()
	//
	cli := newTestCLI(t)
	root := cli.doc.Root.Base()
	assert.Equal(t, dimen.Px(16), root.Box.InternalPadding[frame.Right])
	//
	quit, err := cli.execute([]string{"scrollbar", "0"})
	require.NoError(t, err)
	assert.False(t, quit)
	assert.Equal(t, dimen.Zero, root.Box.InternalPadding[frame.Right])
	//
	_, err = cli.execute([]string{"size", "100px", "200"})
	require.NoError(t, err)
	assert.Equal(t, dimen.Px(100), root.Box.W())
	assert.Equal(t, dimen.Px(200), root.Box.H())
	//
	_, err = cli.execute([]string{"select", "div.c"})
	assert.NoError(t, err)
	_, err = cli.execute([]string{"select", "div["})
	assert.Error(t, err)
	_, err = cli.execute([]string{"size", "-1", "10"})
	assert.Equal(t, core.EINVALID, core.Code(err))
	_, err = cli.execute([]string{"frobnicate"})
	assert.Error(t, err)
	quit, err = cli.execute([]string{"quit"})
	assert.NoError(t, err)
	assert.True(t, quit)
}

func TestDotAndDump(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "boxflow.cli")
	defer teardown()
	//
	cli := newTestCLI(t)
	dot := filepath.Join(t.TempDir(), "boxes.dot")
	_, err := cli.execute([]string{"dot", dot})
	require.NoError(t, err)
	content, err := os.ReadFile(dot)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(content), "digraph g {"))
	_, err = cli.execute([]string{"dump"})
	assert.NoError(t, err)
}

func TestLayoutReportsViolations(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "boxflow.cli")
	defer teardown()
	//
	cli := newTestCLI(t)
	cli.params.MaxIterations = 1
	cli.engine.SetConfig(cli.params)
	err := cli.layout()
	require.Error(t, err)
	assert.Equal(t, core.ECONVERGENCE, core.Code(err))
	assert.Contains(t, errorText(err), "div#root")
}

func TestLoadParameters(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "boxflow.cli")
	defer teardown()
	//
	file := filepath.Join(t.TempDir(), "layout.yaml")
	require.NoError(t, os.WriteFile(file, []byte("layout:\n  scrollbar-size: 12\n"), 0o644))
	conf, err := loadParameters(file, nil)
	require.NoError(t, err)
	assert.Equal(t, dimen.Px(12), conf.ScrollbarSize)
	_, err = loadParameters(filepath.Join(t.TempDir(), "missing.yaml"), nil)
	assert.Equal(t, core.EMISSING, core.Code(err))
	//
	flags := testconfig.Conf{parameters.KeyMaxIterations: "7"}
	conf, err = loadParameters("", flags)
	require.NoError(t, err)
	assert.Equal(t, 7, conf.MaxIterations)
	assert.Equal(t, parameters.DefaultTableRowHeight, conf.TableRowHeight)
	_, err = loadParameters("", testconfig.Conf{parameters.KeyMaxIterations: "0"})
	assert.Equal(t, core.EINVALID, core.Code(err))
}
