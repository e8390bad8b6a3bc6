package frame

import (
	"testing"

	"github.com/npillmayer/boxflow/core"
	"github.com/npillmayer/boxflow/core/dimen"
	"github.com/npillmayer/boxflow/engine/style"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/colornames"
)

func TestBoxNullbox(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "boxflow.frame")
	defer teardown()
	//
	box := &Box{}
	assert.False(t, box.HasW())
	assert.False(t, box.HasH())
	assert.Equal(t, dimen.Zero, box.ContentWidth())
	assert.Equal(t, "default", box.Cell.String())
}

func TestBoxContent(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "boxflow.frame")
	defer teardown()
	//
	box := &Box{}
	box.SetW(100)
	box.SetH(50)
	box.Padding[Left] = 10
	box.Border[Right] = BorderStyle{LineColor: colornames.Red, Width: 2}
	box.InternalPadding[Right] = 16
	box.Margins[Left] = 5
	box.Margins[Top] = 3
	assert.Equal(t, dimen.Px(72), box.ContentWidth())
	assert.Equal(t, dimen.Px(50), box.ContentHeight())
	assert.Equal(t, dimen.Px(105), box.BoundingWidth())
	assert.Equal(t, dimen.Px(53), box.BoundingHeight())
	assert.Equal(t, dimen.Point{X: 15, Y: 3}, box.ContentOrigin())
	t.Logf(box.DebugString())
	//
	box.InternalPadding[Right] = 200
	assert.Equal(t, dimen.Zero, box.ContentWidth(), "content box is floored at 0")
}

func TestBoxNegativeSize(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "boxflow.frame")
	defer teardown()
	//
	box := &Box{Label: "div#x"}
	defer func() {
		r := recover()
		require.NotNil(t, r)
		v, ok := r.(core.Violation)
		require.True(t, ok)
		assert.Equal(t, core.ENEGATIVE, v.Code)
		assert.Equal(t, "div#x", v.Node)
		assert.Equal(t, "height", v.Dimension)
	}()
	box.SetH(-1)
}

func TestBoxClear(t *testing.T) {
	box := &Box{Label: "a"}
	box.SetW(10)
	box.X = 4
	box.Cell = WrapCell(1, 2)
	box.Clear()
	assert.Equal(t, Box{Label: "a"}, *box)
}

func TestCells(t *testing.T) {
	c := WrapCell(1, 3)
	assert.Equal(t, 1, c.Line(true))
	assert.Equal(t, 3, c.Index(true))
	assert.Equal(t, 3, c.Line(false))
	assert.Equal(t, "wrap{1,3}", c.String())
	assert.Equal(t, style.Left, StartSide(true))
	assert.Equal(t, style.Bottom, EndSide(false))
}

func TestResolveBorder(t *testing.T) {
	b := ResolveBorder(style.Border{Color: colornames.Blue, Width: style.Pct(10)}, 50)
	assert.Equal(t, dimen.Px(5), b.Width)
	assert.Equal(t, "5px #0000ffff", b.String())
}
