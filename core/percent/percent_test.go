package percent

import (
	"math"
	"testing"

	"github.com/npillmayer/boxflow/core/dimen"
	"github.com/stretchr/testify/assert"
)

func TestPercentOf(t *testing.T) {
	assert.Equal(t, dimen.Px(25), FromInt(50).Of(50))
	assert.Equal(t, dimen.Px(0), FromInt(0).Of(640))
	assert.Equal(t, float32(0.5), FromInt(50).Fraction())
	assert.Equal(t, "12.5%", Percent(12.5).String())
}

func TestPercentFromString(t *testing.T) {
	p, err := FromString(" 80% ")
	assert.NoError(t, err)
	assert.Equal(t, Percent(80), p)
	_, err = FromString("eighty")
	assert.Error(t, err)
	assert.Equal(t, Percent(0), FromFloat(math.NaN()))
}
