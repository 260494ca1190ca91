package textanalysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewRand_SeedIsReproducible(t *testing.T) {
	seed := int64(42)
	a := NewRand(&seed)
	b := NewRand(&seed)

	for i := 0; i < 10; i++ {
		assert.Equal(t, a.Intn(100), b.Intn(100))
		assert.Equal(t, a.Float64(), b.Float64())
	}
}

func TestNewRand_NilSeed(t *testing.T) {
	r := NewRand(nil)
	v := r.Intn(10)
	assert.GreaterOrEqual(t, v, 0)
	assert.Less(t, v, 10)
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 1, Clamp(-3, 1, 10))
	assert.Equal(t, 10, Clamp(11, 1, 10))
	assert.Equal(t, 5, Clamp(5, 1, 10))
}

func TestRoundDiv(t *testing.T) {
	assert.Equal(t, 3, RoundDiv(5, 2))
	assert.Equal(t, 2, RoundDiv(9, 4))
	assert.Equal(t, 6, RoundDiv(23, 4))
	assert.Equal(t, 7, RoundDiv(7, 0))
}

func TestRatio(t *testing.T) {
	assert.Equal(t, 0.0, Ratio(3, 0))
	assert.InDelta(t, 0.25, Ratio(1, 4), 1e-9)
}
