package boxtree_test

import (
	"testing"

	"github.com/npillmayer/boxflow/core"
	"github.com/npillmayer/boxflow/engine/frame/boxtree"
	"github.com/npillmayer/boxflow/engine/style"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildTree(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "boxflow.boxtree")
	defer teardown()
	//
	root := buildTree()
	assert.Equal(t, 12, boxtree.Count(root))
	n, err := boxtree.FindByID(root, "logo")
	require.NoError(t, err)
	assert.Equal(t, boxtree.KindImage, n.Kind())
	assert.Equal(t, "img#logo", boxtree.Label(n))
	img := n.(*boxtree.Image)
	assert.Equal(t, "logo.png", img.Source)
	_, err = boxtree.FindByID(root, "nope")
	assert.Equal(t, boxtree.ErrNoSuchNode, err)
}

func TestWalkOrder(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "boxflow.boxtree")
	defer teardown()
	//
	root := buildTree()
	var kinds []boxtree.Kind
	maxDepth := 0
	boxtree.Walk(root, func(n boxtree.Node, depth int) bool {
		kinds = append(kinds, n.Kind())
		if depth > maxDepth {
			maxDepth = depth
		}
		return !boxtree.IsTable(n) // do not descend into tables
	})
	assert.Equal(t, []boxtree.Kind{
		boxtree.KindDiv, boxtree.KindDiv, boxtree.KindImage, boxtree.KindText,
		boxtree.KindInput, boxtree.KindTable,
	}, kinds)
	assert.Equal(t, 2, maxDepth)
}

func TestPredicates(t *testing.T) {
	row := boxtree.NewRow(boxtree.NewHeaderCell(), boxtree.NewCell())
	assert.True(t, boxtree.IsRow(row))
	assert.True(t, boxtree.IsTableCell(row.Children[0]))
	assert.True(t, boxtree.IsTableCell(row.Children[1]))
	assert.True(t, boxtree.IsTableSection(boxtree.NewTableHead()))
	assert.False(t, boxtree.IsTableSection(row))
	assert.True(t, boxtree.IsText(boxtree.NewText("x")))
	assert.Equal(t, "th", boxtree.KindHeaderCell.String())
}

func TestSetStyleAndClear(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "boxflow.boxtree")
	defer teardown()
	//
	d := boxtree.NewDiv("d")
	require.NoError(t, d.SetStyle("width", "50%", "overflow-x", "wrap"))
	assert.True(t, d.Style.Width.IsPercent())
	assert.Equal(t, style.OverflowWrap, d.Style.OverflowX)
	err := d.SetStyle("width")
	assert.Equal(t, core.EINVALID, core.Code(err))
	//
	d.Add(boxtree.NewText("t"), nil)
	assert.Len(t, d.Children, 1)
	d.Box.SetW(10)
	d.Children[0].Base().Box.SetH(5)
	boxtree.ClearCalculated(d)
	assert.False(t, d.Box.HasW())
	assert.False(t, d.Children[0].Base().Box.HasH())
}

func buildTree() boxtree.Node {
	return boxtree.NewDiv("root",
		boxtree.NewDiv("header",
			boxtree.NewImage("logo", "logo.png", "Logo"),
			boxtree.NewText("Title"),
		),
		boxtree.NewInput("q", "text", "query", ""),
		boxtree.NewTable("t",
			boxtree.NewTableHead(boxtree.NewRow(boxtree.NewHeaderCell())),
			boxtree.NewTableBody(boxtree.NewRow(boxtree.NewCell())),
		),
	)
}
