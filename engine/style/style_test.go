package style

import (
	"image/color"
	"testing"

	"github.com/npillmayer/boxflow/core"
	"github.com/npillmayer/boxflow/core/dimen"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/colornames"
)

func TestResolveNumbers(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "boxflow.style")
	defer teardown()
	//
	assert.Equal(t, dimen.Px(12), Px(12).Resolve(500))
	assert.Equal(t, dimen.Px(250), Pct(50).Resolve(500))
	assert.Equal(t, dimen.Px(0), Unset().Resolve(500))
	assert.Equal(t, dimen.Px(7), Unset().ResolveOr(500, 7))
	calc := Calc(Pct(100), OpSub, Px(30))
	assert.Equal(t, dimen.Px(70), calc.Resolve(100))
	assert.Equal(t, dimen.Px(0), Calc(Px(1), OpDiv, Px(0)).Resolve(100))
	assert.True(t, Px(3).IsLiteral())
	assert.False(t, calc.IsLiteral())
}

func TestParseNumber(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "boxflow.style")
	defer teardown()
	//
	for _, tc := range []struct {
		input    string
		ref      dimen.Px
		expected dimen.Px
	}{
		{"12", 100, 12},
		{"12px", 100, 12},
		{"50%", 80, 40},
		{"calc(100% - 30px)", 100, 70},
		{"calc(100% / 4)", 200, 50},
		{"calc(2 * (50% + 5px))", 100, 110},
		{"calc(100% - 2 * 15px)", 100, 70},
		{"calc(-10px + 100%)", 100, 90},
	} {
		n, err := ParseNumber(tc.input)
		require.NoError(t, err, tc.input)
		assert.InDelta(t, float64(tc.expected), float64(n.Resolve(tc.ref)), 1e-4, tc.input)
	}
	n, err := ParseNumber("auto")
	assert.NoError(t, err)
	assert.False(t, n.IsSet())
	for _, bad := range []string{"twelve", "calc(100% -30px)", "calc((1px + 2px)", "calc()"} {
		_, err = ParseNumber(bad)
		assert.Error(t, err, bad)
		assert.Equal(t, core.EINVALID, core.Code(err), bad)
	}
}

func TestNumberEquals(t *testing.T) {
	a := MustParseNumber("calc(100% - 30px)")
	b := Calc(Pct(100), OpSub, Px(30))
	assert.True(t, a.Equals(b))
	assert.False(t, a.Equals(Px(70)))
	assert.Equal(t, "calc(100% - 30px)", a.String())
}

func TestSetProperties(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "boxflow.style")
	defer teardown()
	//
	s := &Style{}
	require.NoError(t, s.Set("width", "50%"))
	require.NoError(t, s.Set("flex-direction", "column"))
	require.NoError(t, s.Set("overflow-y", "wrap"))
	require.NoError(t, s.Set("justify-content", "space-between"))
	require.NoError(t, s.Set("margin", "1px 2px"))
	require.NoError(t, s.Set("padding-left", "5"))
	require.NoError(t, s.Set("border", "2px solid rebeccapurple"))
	require.NoError(t, s.Set("position", "absolute"))
	require.NoError(t, s.Set("left", "30px"))
	require.NoError(t, s.Set("opacity", "0.5"))
	assert.True(t, s.Width.IsPercent())
	assert.Equal(t, Column, s.Direction)
	assert.True(t, s.Wraps())
	assert.Equal(t, JustifySpaceBetween, s.JustifyContent)
	assert.Equal(t, dimen.Px(2), s.Margin[Right].Resolve(0))
	assert.Equal(t, dimen.Px(1), s.Margin[Bottom].Resolve(0))
	assert.Equal(t, dimen.Px(5), s.Padding[Left].Resolve(0))
	assert.Equal(t, color.RGBA{R: 0x66, G: 0x33, B: 0x99, A: 0xff}, s.Border[Top].Color)
	assert.Equal(t, dimen.Px(2), s.Border[Left].Width.Resolve(0))
	assert.True(t, s.IsAbsolute())
	assert.Equal(t, dimen.Px(30), s.Offsets[Left].Resolve(0))
	assert.InDelta(t, 0.5, float64(s.Opacity.Resolve(1)), 1e-6)
	//
	assert.Error(t, s.Set("justify-content", "sideways"))
	assert.Error(t, s.Set("colour", "red"))
	require.NoError(t, s.Set("display", "none"))
	assert.True(t, s.Hidden)
}

func TestParseColor(t *testing.T) {
	c, err := ParseColor("#f00")
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{R: 0xff, A: 0xff}, c)
	c, err = ParseColor("#00ff0080")
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{G: 0xff, A: 0x80}, c)
	c, err = ParseColor("Navy")
	require.NoError(t, err)
	assert.Equal(t, colornames.Navy, c)
	c, err = ParseColor("RebeccaPurple")
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{R: 0x66, G: 0x33, B: 0x99, A: 0xff}, c)
	_, err = ParseColor("#12")
	assert.Error(t, err)
}
