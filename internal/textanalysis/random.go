package textanalysis

import (
	"math"
	"math/rand"
	"time"
)

// Rand is the random source behind score jitter and feedback variety.
// *rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
	Float64() float64
}

// NewRand returns a fresh source for a single analysis call. A nil seed seeds
// from the clock, so repeated calls on the same text vary.
func NewRand(seed *int64) Rand {
	if seed != nil {
		return rand.New(rand.NewSource(*seed))
	}
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}

// Clamp bounds v to [lo, hi].
func Clamp(v, lo, hi int) int {
	return min(max(v, lo), hi)
}

// RoundDiv divides and rounds half away from zero. A non-positive divisor is
// treated as one.
func RoundDiv(num, den int) int {
	if den <= 0 {
		den = 1
	}
	return int(math.Round(float64(num) / float64(den)))
}

// Ratio returns part/whole, or 0 when whole is zero.
func Ratio(part, whole int) float64 {
	if whole <= 0 {
		return 0
	}
	return float64(part) / float64(whole)
}
