package resample

import (
	"math"
	"strconv"
)

// Float is a scalar point on the real line. It is the one-dimensional
// implementation of [PointLike].
type Float float64

func (f Float) String() string {
	return strconv.FormatFloat(float64(f), 'g', -1, 64)
}

// Distance returns the absolute difference between two scalars.
func (f Float) Distance(o Float) float64 {
	return math.Abs(float64(o - f))
}

// Towards returns f moved distance d towards o. The direction is the sign of
// o−f; when f equals o, f is returned unchanged.
func (f Float) Towards(o Float, d float64) Float {
	switch {
	case o > f:
		return f + Float(d)
	case o < f:
		return f - Float(d)
	default:
		return f
	}
}

// Lerp linearly interpolates between two scalars.
func (f Float) Lerp(o Float, t float64) Float {
	return f + (o-f)*Float(t)
}

// IsInf reports whether f is infinite.
func (f Float) IsInf() bool {
	return math.IsInf(float64(f), 0)
}

// IsNaN reports whether f is NaN.
func (f Float) IsNaN() bool {
	return math.IsNaN(float64(f))
}
