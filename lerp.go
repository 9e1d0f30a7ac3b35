package resample

import (
	"fmt"
	"math"
)

// Lerper is a continuous function over [0, 1] obtained by piecewise-linear
// interpolation between uniformly indexed points. The zero value is not
// usable; use [NewLerper].
//
// A Lerper is immutable and safe for concurrent use.
type Lerper[T PointLike[T]] struct {
	points []T
}

// NewLerper returns a Lerper over points. points must contain at least two
// elements; otherwise NewLerper fails with [ErrInvalidArgument]. The slice is
// not copied and must not be modified afterwards.
func NewLerper[T PointLike[T]](points []T) (Lerper[T], error) {
	if len(points) < 2 {
		return Lerper[T]{}, fmt.Errorf("%w: need at least 2 points, got %d", ErrInvalidArgument, len(points))
	}
	return Lerper[T]{points: points}, nil
}

// Eval evaluates the interpolant at u. For exactly two points this is a plain
// linear interpolation by u. For more points, u is mapped to the continuous
// index u*(n-1) and the two neighboring points are interpolated by the
// fractional offset, with the index clamped to the valid range; equal
// neighbors are returned directly, skipping the degenerate interpolation.
func (l Lerper[T]) Eval(u float64) T {
	if len(l.points) == 2 {
		return l.points[0].Lerp(l.points[1], u)
	}
	last := float64(len(l.points) - 1)
	x := u * last
	lo := int(clamp(math.Floor(x), 0, last))
	hi := int(clamp(math.Ceil(x), 0, last))
	if l.points[lo] == l.points[hi] {
		return l.points[lo]
	}
	return l.points[lo].Lerp(l.points[hi], x-float64(lo))
}
