package style

import (
	"errors"
	"image/color"
	"strconv"
	"strings"

	"github.com/npillmayer/boxflow/core"
	"golang.org/x/image/colornames"
)

// ErrUnknownProperty is wrapped by errors for properties the box model does
// not know about.
var ErrUnknownProperty = errors.New("unknown style property")

// Set applies a single CSS-like property to s. Unknown properties are
// reported with core.EINVALID, wrapping ErrUnknownProperty; callers building
// trees from foreign markup will usually trace and ignore these.
func (s *Style) Set(property, value string) error {
	property = strings.ToLower(strings.TrimSpace(property))
	value = strings.TrimSpace(value)
	var err error
	switch property {
	case "width":
		s.Width, err = ParseNumber(value)
	case "height":
		s.Height, err = ParseNumber(value)
	case "gap":
		s.Gap, err = ParseNumber(value)
	case "opacity":
		s.Opacity, err = parseOpacity(value)
	case "flex-direction", "direction":
		switch strings.ToLower(value) {
		case "row":
			s.Direction = Row
		case "column":
			s.Direction = Column
		default:
			return keywordError(property, value)
		}
	case "overflow":
		o, ok := ParseOverflow(value)
		if !ok {
			return keywordError(property, value)
		}
		s.OverflowX, s.OverflowY = o, o
	case "overflow-x":
		o, ok := ParseOverflow(value)
		if !ok {
			return keywordError(property, value)
		}
		s.OverflowX = o
	case "overflow-y":
		o, ok := ParseOverflow(value)
		if !ok {
			return keywordError(property, value)
		}
		s.OverflowY = o
	case "flex-wrap":
		if strings.ToLower(value) == "wrap" {
			if s.Direction == Row {
				s.OverflowX = OverflowWrap
			} else {
				s.OverflowY = OverflowWrap
			}
		}
	case "justify-content":
		j, ok := ParseJustify(value)
		if !ok {
			return keywordError(property, value)
		}
		s.JustifyContent = j
	case "align-items":
		a, ok := ParseAlign(value)
		if !ok {
			return keywordError(property, value)
		}
		s.AlignItems = a
	case "position":
		p, ok := ParsePosition(value)
		if !ok {
			return keywordError(property, value)
		}
		s.Position = p
	case "top", "right", "bottom", "left":
		s.Offsets[sideByName[property]], err = ParseNumber(value)
	case "margin":
		err = setFourWay(&s.Margin, value)
	case "margin-top", "margin-right", "margin-bottom", "margin-left":
		s.Margin[sideByName[property[7:]]], err = ParseNumber(value)
	case "padding":
		err = setFourWay(&s.Padding, value)
	case "padding-top", "padding-right", "padding-bottom", "padding-left":
		s.Padding[sideByName[property[8:]]], err = ParseNumber(value)
	case "border":
		var b Border
		if b, err = ParseBorder(value); err == nil {
			s.Border = [4]Border{b, b, b, b}
		}
	case "border-top", "border-right", "border-bottom", "border-left":
		s.Border[sideByName[property[7:]]], err = ParseBorder(value)
	case "border-width":
		var w [4]Number
		if err = setFourWay(&w, value); err == nil {
			for i := range s.Border {
				s.Border[i].Width = w[i]
			}
		}
	case "border-color":
		var c color.Color
		if c, err = ParseColor(value); err == nil {
			for i := range s.Border {
				s.Border[i].Color = c
			}
		}
	case "border-radius":
		err = setFourWay(&s.Radius, value)
	case "visibility":
		switch strings.ToLower(value) {
		case "visible":
			s.Visibility = Visible
		case "hidden", "invisible", "collapse":
			s.Visibility = Invisible
		default:
			return keywordError(property, value)
		}
	case "display":
		s.Hidden = strings.ToLower(value) == "none"
	default:
		return core.WrapError(ErrUnknownProperty, core.EINVALID, "unknown style property %q", property)
	}
	if err != nil {
		tracer().Debugf("style property %s: %v", property, err)
	}
	return err
}

var sideByName = map[string]Side{
	"top":    Top,
	"right":  Right,
	"bottom": Bottom,
	"left":   Left,
}

func keywordError(property, value string) error {
	return core.Error(core.EINVALID, "illegal value %q for property %s", value, property)
}

// setFourWay expands 1 to 4 space-separated values the CSS way
// (top, right, bottom, left).
func setFourWay(target *[4]Number, value string) error {
	fields := strings.Fields(value)
	if len(fields) == 0 || len(fields) > 4 {
		return core.Error(core.EINVALID, "expected 1 to 4 values, have %q", value)
	}
	n := make([]Number, len(fields))
	for i, f := range fields {
		var err error
		if n[i], err = ParseNumber(f); err != nil {
			return err
		}
	}
	switch len(n) {
	case 1:
		*target = [4]Number{n[0], n[0], n[0], n[0]}
	case 2:
		*target = [4]Number{n[0], n[1], n[0], n[1]}
	case 3:
		*target = [4]Number{n[0], n[1], n[2], n[1]}
	case 4:
		*target = [4]Number{n[0], n[1], n[2], n[3]}
	}
	return nil
}

func parseOpacity(value string) (Number, error) {
	if strings.HasSuffix(value, "%") {
		return ParseNumber(value)
	}
	f, err := strconv.ParseFloat(value, 32)
	if err != nil {
		return Unset(), core.WrapError(err, core.EINVALID, "illegal opacity %q", value)
	}
	// opacity resolves against 1.0, so a plain fraction is a percentage of it
	return Pct(float32(f * 100)), nil
}

// ParseBorder parses a border shorthand like "1px solid red". The line style
// keyword is accepted but not recorded.
func ParseBorder(value string) (Border, error) {
	var b Border
	for _, f := range strings.Fields(value) {
		switch strings.ToLower(f) {
		case "solid", "dashed", "dotted", "double", "none":
			continue
		}
		if n, err := ParseNumber(f); err == nil && n.IsSet() {
			b.Width = n
			continue
		}
		c, err := ParseColor(f)
		if err != nil {
			return b, err
		}
		b.Color = c
	}
	return b, nil
}

// ParseColor parses a named color (CSS color keywords) or a hex color of the
// form #rgb, #rrggbb or #rrggbbaa.
func ParseColor(value string) (color.Color, error) {
	value = strings.ToLower(strings.TrimSpace(value))
	if strings.HasPrefix(value, "#") {
		return parseHexColor(value[1:])
	}
	switch value {
	case "transparent":
		return color.RGBA{}, nil
	case "rebeccapurple": // CSS Color Level 4, not in colornames
		return color.RGBA{R: 0x66, G: 0x33, B: 0x99, A: 0xff}, nil
	}
	if c, ok := colornames.Map[value]; ok {
		return c, nil
	}
	return nil, core.Error(core.EINVALID, "unknown color %q", value)
}

func parseHexColor(hex string) (color.Color, error) {
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) == 6 {
		hex += "ff"
	}
	if len(hex) != 8 {
		return nil, core.Error(core.EINVALID, "illegal hex color #%s", hex)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return nil, core.WrapError(err, core.EINVALID, "illegal hex color #%s", hex)
	}
	return color.RGBA{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}, nil
}
