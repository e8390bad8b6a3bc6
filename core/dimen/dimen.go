// Package dimen implements pixel dimensions for layout.
//
/*
BSD License

Copyright (c) 2017–21, Norbert Pillmayer (norbert@pillmayer.com)

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions
are met:

1. Redistributions of source code must retain the above copyright
notice, this list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright
notice, this list of conditions and the following disclaimer in the
documentation and/or other materials provided with the distribution.

3. Neither the name of this software nor the names of its contributors
may be used to endorse or promote products derived from this software
without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS
"AS IS" AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT
LIMITED TO, THE IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR
A PARTICULAR PURPOSE ARE DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT
HOLDER OR CONTRIBUTORS BE LIABLE FOR ANY DIRECT, INDIRECT, INCIDENTAL,
SPECIAL, EXEMPLARY, OR CONSEQUENTIAL DAMAGES (INCLUDING, BUT NOT
LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR SERVICES; LOSS OF USE,
DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER CAUSED AND ON ANY
THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY, OR TORT
(INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.  */
package dimen

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
)

// Px is a dimension in device independent pixels.
type Px float32

// Zero is the empty dimension.
const Zero Px = 0

// Epsilon is the tolerance for comparing computed dimensions. Results of
// repeated divisions will otherwise never compare equal.
const Epsilon Px = 1e-3

// Stringer implementation.
func (d Px) String() string {
	return strconv.FormatFloat(float64(d), 'f', -1, 32) + "px"
}

// Float returns d as a float32.
func (d Px) Float() float32 {
	return float32(d)
}

// IsNaN is true if d is not a number, which is never a valid dimension.
func (d Px) IsNaN() bool {
	return d != d
}

// Equal compares two dimensions with tolerance Epsilon.
func Equal(a, b Px) bool {
	return Abs(a-b) <= Epsilon
}

// Point is a point on a surface.
type Point struct {
	X, Y Px
}

// Origin is origin
var Origin = Point{0, 0}

// Shift a point along a vector.
func (p *Point) Shift(vector Point) *Point {
	p.X += vector.X
	p.Y += vector.Y
	return p
}

// Rect is a rectangle.
type Rect struct {
	TopL, BotR Point
}

// Width returns the width of a rectangle, i.e. the difference between x-coordinates
// of bottom-right and top-left corner.
func (r Rect) Width() Px {
	return r.BotR.X - r.TopL.X
}

// Height returns the height of a rectangle, i.e. the difference between y-coordinates
// of bottom-right and top-left corner.
func (r Rect) Height() Px {
	return r.BotR.Y - r.TopL.Y
}

func (r Rect) String() string {
	return fmt.Sprintf("(%v,%v)-(%v,%v)", r.TopL.X, r.TopL.Y, r.BotR.X, r.BotR.Y)
}

// ---------------------------------------------------------------------------

var dimenPattern = regexp.MustCompile(`^([+\-]?(?:[0-9]+\.?[0-9]*|\.[0-9]+))(%|px|PX)?$`)

// ParseDimen parses a string to return a dimension. Accepted are plain
// numbers (taken as pixels), numbers with unit `px` and percentages.
// If a percentage value is given (`80%`), the second return value will be true
// and the dimension holds the percentage figure.
//
func ParseDimen(s string) (Px, bool, error) {
	d := dimenPattern.FindStringSubmatch(s)
	if len(d) < 2 {
		return 0, false, errors.New("format error parsing dimension")
	}
	n, err := strconv.ParseFloat(d[1], 32)
	if err != nil {
		return 0, false, errors.New("format error parsing dimension")
	}
	return Px(n), len(d) > 2 && d[2] == "%", nil
}

// ---------------------------------------------------------------------------

// Min returns the smaller of two dimensions.
func Min(a, b Px) Px {
	if a < b {
		return a
	}
	return b
}

// Max returns the greater of two dimensions.
func Max(a, b Px) Px {
	if a > b {
		return a
	}
	return b
}

// Abs returns the absolute value of a dimension.
func Abs(a Px) Px {
	if a < 0 {
		return -a
	}
	return a
}

// Clamp restricts d to [lo, hi]. If lo > hi, lo wins.
func Clamp(d, lo, hi Px) Px {
	if d < lo {
		return lo
	}
	if hi >= lo && d > hi {
		return hi
	}
	return d
}

// NonNegative returns d, or zero if d < 0. It is meant for derived spaces
// (e.g., a content area eaten up by padding), never for results a caller
// supplied.
func NonNegative(d Px) Px {
	if d < 0 {
		return 0
	}
	return d
}
