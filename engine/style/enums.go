package style

import "strings"

// Side indexes four-way values, starting at the top and travelling clockwise.
type Side int

// Sides of a box.
const (
	Top Side = iota
	Right
	Bottom
	Left
)

// Corner indexes border radii, starting top-left and travelling clockwise.
type Corner int

// Corners of a box.
const (
	TopLeft Corner = iota
	TopRight
	BottomRight
	BottomLeft
)

// --- Direction -------------------------------------------------------------

// Direction is the main axis of a container.
type Direction uint8

// Directions. Row is the default.
const (
	Row Direction = iota
	Column
)

func (d Direction) String() string {
	if d == Column {
		return "column"
	}
	return "row"
}

// --- Overflow --------------------------------------------------------------

// Overflow is the policy of a container for content exceeding its size on
// one axis.
type Overflow uint8

// Overflow policies. Show is the default: the container grows to fit.
const (
	OverflowShow Overflow = iota
	OverflowAuto
	OverflowScroll
	OverflowSquash
	OverflowWrap
	OverflowHidden
)

var overflowMap = map[Overflow]string{
	OverflowShow:   "show",
	OverflowAuto:   "auto",
	OverflowScroll: "scroll",
	OverflowSquash: "squash",
	OverflowWrap:   "wrap",
	OverflowHidden: "hidden",
}

var overflowStringMap = map[string]Overflow{
	"show":    OverflowShow,
	"visible": OverflowShow,
	"auto":    OverflowAuto,
	"scroll":  OverflowScroll,
	"squash":  OverflowSquash,
	"wrap":    OverflowWrap,
	"hidden":  OverflowHidden,
	"clip":    OverflowHidden,
}

func (o Overflow) String() string {
	return overflowMap[o]
}

// ParseOverflow parses an overflow keyword.
func ParseOverflow(s string) (Overflow, bool) {
	o, ok := overflowStringMap[strings.ToLower(strings.TrimSpace(s))]
	return o, ok
}

// Scrolls is true for policies which may reserve space for a scrollbar.
func (o Overflow) Scrolls() bool {
	return o == OverflowAuto || o == OverflowScroll
}

// --- Justify and Align -----------------------------------------------------

// Justify distributes items along the main axis.
type Justify uint8

// Justification modes.
const (
	JustifyDefault Justify = iota
	JustifyStart
	JustifyCenter
	JustifyEnd
	JustifySpaceBetween
	JustifySpaceEvenly
)

var justifyMap = map[Justify]string{
	JustifyDefault:      "default",
	JustifyStart:        "start",
	JustifyCenter:       "center",
	JustifyEnd:          "end",
	JustifySpaceBetween: "space-between",
	JustifySpaceEvenly:  "space-evenly",
}

var justifyStringMap = map[string]Justify{
	"default":       JustifyDefault,
	"normal":        JustifyDefault,
	"start":         JustifyStart,
	"flex-start":    JustifyStart,
	"center":        JustifyCenter,
	"end":           JustifyEnd,
	"flex-end":      JustifyEnd,
	"space-between": JustifySpaceBetween,
	"space-evenly":  JustifySpaceEvenly,
}

func (j Justify) String() string {
	return justifyMap[j]
}

// ParseJustify parses a justify-content keyword.
func ParseJustify(s string) (Justify, bool) {
	j, ok := justifyStringMap[strings.ToLower(strings.TrimSpace(s))]
	return j, ok
}

// Align positions items on the cross axis.
type Align uint8

// Alignment modes.
const (
	AlignDefault Align = iota
	AlignStart
	AlignCenter
	AlignEnd
)

var alignMap = map[Align]string{
	AlignDefault: "default",
	AlignStart:   "start",
	AlignCenter:  "center",
	AlignEnd:     "end",
}

var alignStringMap = map[string]Align{
	"default":    AlignDefault,
	"normal":     AlignDefault,
	"stretch":    AlignDefault,
	"start":      AlignStart,
	"flex-start": AlignStart,
	"center":     AlignCenter,
	"end":        AlignEnd,
	"flex-end":   AlignEnd,
}

func (a Align) String() string {
	return alignMap[a]
}

// ParseAlign parses an align-items keyword.
func ParseAlign(s string) (Align, bool) {
	a, ok := alignStringMap[strings.ToLower(strings.TrimSpace(s))]
	return a, ok
}

// --- Position and Visibility -----------------------------------------------

// Position is the positioning scheme of a node.
type Position uint8

// Positioning schemes. Static is the default.
const (
	PositionStatic Position = iota
	PositionRelative
	PositionAbsolute
)

var positionMap = map[Position]string{
	PositionStatic:   "static",
	PositionRelative: "relative",
	PositionAbsolute: "absolute",
}

var positionStringMap = map[string]Position{
	"static":   PositionStatic,
	"relative": PositionRelative,
	"absolute": PositionAbsolute,
}

func (p Position) String() string {
	return positionMap[p]
}

// ParsePosition parses a position keyword.
func ParsePosition(s string) (Position, bool) {
	p, ok := positionStringMap[strings.ToLower(strings.TrimSpace(s))]
	return p, ok
}

// Visibility of a node. Invisible nodes take part in layout, but are not
// painted.
type Visibility uint8

// Visibility values.
const (
	Visible Visibility = iota
	Invisible
)

func (v Visibility) String() string {
	if v == Invisible {
		return "invisible"
	}
	return "visible"
}
