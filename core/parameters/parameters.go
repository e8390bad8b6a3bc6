/*
Package parameters holds the tunables of the layout engine.

The engine itself never reads process-wide state: callers hand a Config to
the entry point. The process-wide scrollbar size exists for the wiring layer
only (applications, the CLI), which will usually call Default() once per
layout request.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package parameters

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"sync/atomic"

	"github.com/npillmayer/boxflow/core"
	"github.com/npillmayer/boxflow/core/dimen"
	"github.com/npillmayer/schuko"
	"github.com/npillmayer/schuko/tracing"
	"gopkg.in/yaml.v3"
)

// tracer traces with key 'boxflow.core'.
func tracer() tracing.Trace {
	return tracing.Select("boxflow.core")
}

// Configuration keys, shared by schuko configurations and YAML documents
// (where the part after "layout." is nested below a `layout` mapping).
const (
	KeyScrollbarSize  = "layout.scrollbar-size"
	KeyMaxIterations  = "layout.max-iterations"
	KeyTableRowHeight = "layout.table-row-height"
)

// Default values.
const (
	DefaultScrollbarSize  dimen.Px = 16
	DefaultMaxIterations  int      = 100
	DefaultTableRowHeight dimen.Px = 25
)

// Config is the set of tunables read by one layout calculation.
type Config struct {
	ScrollbarSize  dimen.Px // inset reserved for a scrollbar
	MaxIterations  int      // ceiling for the overflow fixed-point loop
	TableRowHeight dimen.Px // height of table cells without explicit height
}

// Default returns the default configuration, with the scrollbar size taken
// from the process-wide setting.
func Default() Config {
	return Config{
		ScrollbarSize:  ScrollbarSize(),
		MaxIterations:  DefaultMaxIterations,
		TableRowHeight: DefaultTableRowHeight,
	}
}

// Validate checks a configuration for values the engine cannot work with.
func (conf Config) Validate() error {
	if conf.ScrollbarSize < 0 || conf.ScrollbarSize.IsNaN() {
		return core.Error(core.EINVALID, "scrollbar size must be >= 0, is %v", conf.ScrollbarSize)
	}
	if conf.MaxIterations < 1 {
		return core.Error(core.EINVALID, "max iterations must be >= 1, is %d", conf.MaxIterations)
	}
	if conf.TableRowHeight < 0 || conf.TableRowHeight.IsNaN() {
		return core.Error(core.EINVALID, "table row height must be >= 0, is %v", conf.TableRowHeight)
	}
	return nil
}

// --- Process-wide scrollbar size -------------------------------------------

var scrollbarBits atomic.Uint32

func init() {
	scrollbarBits.Store(math.Float32bits(float32(DefaultScrollbarSize)))
}

// ScrollbarSize returns the process-wide scrollbar size.
func ScrollbarSize() dimen.Px {
	return dimen.Px(math.Float32frombits(scrollbarBits.Load()))
}

// SetScrollbarSize sets the process-wide scrollbar size. It takes effect with
// the next call to Default(). Negative sizes are ignored.
func SetScrollbarSize(size dimen.Px) {
	if size < 0 || size.IsNaN() {
		tracer().Errorf("ignoring illegal scrollbar size %v", size)
		return
	}
	scrollbarBits.Store(math.Float32bits(float32(size)))
}

// --- Loading ---------------------------------------------------------------

// FromConfiguration reads layout parameters from a schuko configuration,
// falling back to Default() for missing keys.
func FromConfiguration(conf schuko.Configuration) (Config, error) {
	c := Default()
	if conf == nil {
		return c, nil
	}
	var err error
	if s := conf.GetString(KeyScrollbarSize); s != "" {
		if c.ScrollbarSize, err = parsePx(KeyScrollbarSize, s); err != nil {
			return c, err
		}
	}
	if s := conf.GetString(KeyMaxIterations); s != "" {
		n, e := strconv.Atoi(strings.TrimSpace(s))
		if e != nil {
			return c, core.WrapError(e, core.EINVALID, "configuration key %s", KeyMaxIterations)
		}
		c.MaxIterations = n
	}
	if s := conf.GetString(KeyTableRowHeight); s != "" {
		if c.TableRowHeight, err = parsePx(KeyTableRowHeight, s); err != nil {
			return c, err
		}
	}
	tracer().Debugf("layout parameters from configuration: %+v", c)
	return c, c.Validate()
}

type yamlDoc struct {
	Layout struct {
		ScrollbarSize  *float32 `yaml:"scrollbar-size"`
		MaxIterations  *int     `yaml:"max-iterations"`
		TableRowHeight *float32 `yaml:"table-row-height"`
	} `yaml:"layout"`
}

// LoadYAML reads layout parameters from a YAML document of the form
//
//     layout:
//       scrollbar-size: 12
//       max-iterations: 50
//       table-row-height: 20
//
// Missing keys fall back to Default().
func LoadYAML(r io.Reader) (Config, error) {
	c := Default()
	var doc yamlDoc
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil && err != io.EOF {
		return c, core.WrapError(err, core.EINVALID, "cannot read layout parameters")
	}
	if doc.Layout.ScrollbarSize != nil {
		c.ScrollbarSize = dimen.Px(*doc.Layout.ScrollbarSize)
	}
	if doc.Layout.MaxIterations != nil {
		c.MaxIterations = *doc.Layout.MaxIterations
	}
	if doc.Layout.TableRowHeight != nil {
		c.TableRowHeight = dimen.Px(*doc.Layout.TableRowHeight)
	}
	return c, c.Validate()
}

func parsePx(key, s string) (dimen.Px, error) {
	d, pcnt, err := dimen.ParseDimen(strings.TrimSpace(s))
	if err != nil {
		return 0, core.WrapError(err, core.EINVALID, "configuration key %s", key)
	}
	if pcnt {
		return 0, core.Error(core.EINVALID, "configuration key %s: percentage not allowed", key)
	}
	return d, nil
}

func (conf Config) String() string {
	return fmt.Sprintf("scrollbar=%v, iterations=%d, row-height=%v",
		conf.ScrollbarSize, conf.MaxIterations, conf.TableRowHeight)
}
