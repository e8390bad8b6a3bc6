package style

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer
All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions are met:

1. Redistributions of source code must retain the above copyright notice, this
   list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright notice,
   this list of conditions and the following disclaimer in the documentation
   and/or other materials provided with the distribution.

3. Neither the name of the copyright holder nor the names of its
   contributors may be used to endorse or promote products derived from
   this software without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS"
AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE
IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE ARE
DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE LIABLE
FOR ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR CONSEQUENTIAL
DAMAGES (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR
SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER
CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY,
OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.
*/

import (
	"image/color"
)

// Border is the style of one side of a box.
type Border struct {
	Color color.Color
	Width Number
}

// Style holds the style inputs of a node. Callers set these before layout;
// the engine never writes to them.
type Style struct {
	Width, Height  Number
	Direction      Direction
	OverflowX      Overflow
	OverflowY      Overflow
	JustifyContent Justify
	AlignItems     Align
	Gap            Number
	Margin         [4]Number // indexed by Side
	Padding        [4]Number // indexed by Side
	Border         [4]Border // indexed by Side
	Radius         [4]Number // indexed by Corner
	Position       Position
	Offsets        [4]Number // top, right, bottom, left; indexed by Side
	Opacity        Number
	Hidden         bool
	Visibility     Visibility
}

// Size returns the width or height style of the axis, where horizontal
// selects width.
func (s *Style) Size(horizontal bool) Number {
	if horizontal {
		return s.Width
	}
	return s.Height
}

// Overflow returns the overflow policy for the horizontal or vertical axis.
func (s *Style) Overflow(horizontal bool) Overflow {
	if horizontal {
		return s.OverflowX
	}
	return s.OverflowY
}

// MainOverflow returns the overflow policy of the main axis, given by the
// flow direction.
func (s *Style) MainOverflow() Overflow {
	return s.Overflow(s.Direction == Row)
}

// Wraps is true if the main axis of s wraps its content.
func (s *Style) Wraps() bool {
	return s.MainOverflow() == OverflowWrap
}

// IsAbsolute is true for out-of-flow nodes.
func (s *Style) IsAbsolute() bool {
	return s.Position == PositionAbsolute
}

// SetMargins sets all four margins.
func (s *Style) SetMargins(n Number) {
	for i := range s.Margin {
		s.Margin[i] = n
	}
}

// SetPaddings sets all four paddings.
func (s *Style) SetPaddings(n Number) {
	for i := range s.Padding {
		s.Padding[i] = n
	}
}

// SetBorders sets all four border sides.
func (s *Style) SetBorders(c color.Color, width Number) {
	for i := range s.Border {
		s.Border[i] = Border{Color: c, Width: width}
	}
}

// SetRadii sets all four corner radii.
func (s *Style) SetRadii(n Number) {
	for i := range s.Radius {
		s.Radius[i] = n
	}
}
