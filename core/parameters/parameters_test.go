package parameters

import (
	"strings"
	"testing"

	"github.com/npillmayer/boxflow/core"
	"github.com/npillmayer/boxflow/core/dimen"
	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "boxflow.core")
	defer teardown()
	//
	c := Default()
	assert.Equal(t, DefaultScrollbarSize, c.ScrollbarSize)
	assert.Equal(t, 100, c.MaxIterations)
	assert.Equal(t, dimen.Px(25), c.TableRowHeight)
	assert.NoError(t, c.Validate())
}

func TestProcessWideScrollbar(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "boxflow.core")
	defer teardown()
	//
	defer SetScrollbarSize(ScrollbarSize())
	SetScrollbarSize(10)
	assert.Equal(t, dimen.Px(10), ScrollbarSize())
	assert.Equal(t, dimen.Px(10), Default().ScrollbarSize)
	SetScrollbarSize(-3) // ignored
	assert.Equal(t, dimen.Px(10), ScrollbarSize())
}

func TestFromConfiguration(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "boxflow.core")
	defer teardown()
	//
	conf := testconfig.Conf{
		KeyScrollbarSize: "12px",
		KeyMaxIterations: "42",
	}
	c, err := FromConfiguration(conf)
	require.NoError(t, err)
	assert.Equal(t, dimen.Px(12), c.ScrollbarSize)
	assert.Equal(t, 42, c.MaxIterations)
	assert.Equal(t, DefaultTableRowHeight, c.TableRowHeight)
	//
	_, err = FromConfiguration(testconfig.Conf{KeyScrollbarSize: "10%"})
	assert.Equal(t, core.EINVALID, core.Code(err))
	_, err = FromConfiguration(testconfig.Conf{KeyMaxIterations: "0"})
	assert.Error(t, err)
}

func TestLoadYAML(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "boxflow.core")
	defer teardown()
	//
	doc := `
layout:
  scrollbar-size: 8
  table-row-height: 30
`
	c, err := LoadYAML(strings.NewReader(doc))
	require.NoError(t, err)
	assert.Equal(t, dimen.Px(8), c.ScrollbarSize)
	assert.Equal(t, dimen.Px(30), c.TableRowHeight)
	assert.Equal(t, DefaultMaxIterations, c.MaxIterations)
	//
	_, err = LoadYAML(strings.NewReader("layout:\n  scrollbar: 8\n"))
	assert.Error(t, err, "unknown keys are rejected")
	c, err = LoadYAML(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, Default(), c)
}
