// percent implements a simple and straightforward type for percentage values
package percent

import (
	"math"
	"strconv"
	"strings"

	"github.com/npillmayer/boxflow/core/dimen"
)

// Percent is a simple and straightforward type for percentage values.
// Values are not restricted to [0…100], as layout allows for 150% and
// negative offsets.
type Percent float32

// FromInt creates a percentage from an integer figure.
func FromInt(n int) Percent {
	return Percent(n)
}

// FromFloat creates a percentage from a float figure. NaN is mapped to 0
// and infinite values to the largest representable percentage.
func FromFloat(f float64) Percent {
	switch {
	case math.IsNaN(f):
		return Percent(0)
	case math.IsInf(f, 1):
		return Percent(math.MaxFloat32)
	case math.IsInf(f, -1):
		return Percent(-math.MaxFloat32)
	}
	return Percent(f)
}

// FromString parses strings like "80%" or "12.5".
func FromString(s string) (Percent, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimSuffix(s, "%")
	f, err := strconv.ParseFloat(s, 32)
	return Percent(f), err
}

// Of returns p percent of a reference dimension.
func (p Percent) Of(reference dimen.Px) dimen.Px {
	return reference * dimen.Px(p) / 100
}

// Fraction returns p as a fraction, i.e. 50% => 0.5.
func (p Percent) Fraction() float32 {
	return float32(p) / 100
}

func (p Percent) String() string {
	return strconv.FormatFloat(float64(p), 'f', -1, 32) + "%"
}
