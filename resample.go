package resample

import (
	"fmt"
	"math"
)

// ResampleOptions specifies optional settings for [Resample].
type ResampleOptions struct {
	// TotalLength, if positive, is the approximate arc length of the input
	// polyline, for example as returned by [Length]. It is only used to
	// preallocate the output and has no effect on the result.
	TotalLength float64

	// Carry is the leftover distance of a previous run, as returned by
	// [Resample]. When set, it replaces the step budget of the first march
	// step, exactly once, and the run does not re-emit its starting point.
	// A set carry must be non-negative.
	Carry Carry
}

// Resample walks the polyline defined by points and returns new points spaced
// arc length delta apart along it, together with the leftover distance at the
// end of the walk. A run without a carry-in begins with the first input
// point; a run with a carry-in continues a previous run and does not re-emit
// its start. The final vertex is not emitted unless the march lands points
// on it; the returned [Carry] accounts for the missing distance, so chaining
// runs over consecutive segments keeps the spacing constant across the joins.
//
// points must contain at least two elements and delta must be positive;
// otherwise Resample fails with [ErrInvalidArgument] and the returned Carry
// is unset. On success the Carry is always set, possibly to exactly 0.
//
// Consecutive duplicate input points are skipped and contribute no output.
func Resample[T PointLike[T]](points []T, delta float64, opts ResampleOptions) ([]T, Carry, error) {
	if delta <= 0 {
		return nil, Carry{}, fmt.Errorf("%w: delta must be positive, got %g", ErrInvalidArgument, delta)
	}
	if len(points) < 2 {
		return nil, Carry{}, fmt.Errorf("%w: need at least 2 points, got %d", ErrInvalidArgument, len(points))
	}
	carryIn, haveCarry := opts.Carry.Get()
	if haveCarry && carryIn < 0 {
		return nil, Carry{}, fmt.Errorf("%w: carry must be non-negative, got %g", ErrInvalidArgument, carryIn)
	}

	var out []T
	if opts.TotalLength > 0 {
		n := int(math.Ceil((opts.TotalLength - carryIn) / delta))
		out = make([]T, 0, max(n, 0)+1)
	}

	pos := points[0]
	// budget is the remaining distance until the next emitted point. The
	// carry-in overrides it for the first step only; afterwards it is either
	// a fresh delta or the overshoot left by a consumed segment.
	budget := delta
	if haveCarry {
		budget = carryIn
	} else {
		out = append(out, pos)
	}
	for _, target := range points[1:] {
		for {
			left := pos.Distance(target) - budget
			if left <= 0 {
				// The segment ends before the budget runs out. Snap to the
				// vertex and spend the rest of the budget on the next
				// segment. Zero-length segments land here for any positive
				// budget, so duplicate input points cannot stall the march.
				pos = target
				budget = -left
				break
			}
			pos = pos.Towards(target, budget)
			out = append(out, pos)
			budget = delta
		}
	}
	return out, CarryOf(budget), nil
}

// Chain resamples consecutive polyline segments at a shared spacing,
// threading the leftover distance from each segment into the next so that
// the spacing stays constant across the joins.
//
// Chained segments are inherently sequential; a Chain must not be used
// concurrently.
type Chain[T PointLike[T]] struct {
	delta float64
	carry Carry
}

// NewChain returns a Chain resampling at spacing delta. delta must be
// positive.
func NewChain[T PointLike[T]](delta float64) (*Chain[T], error) {
	if delta <= 0 {
		return nil, fmt.Errorf("%w: delta must be positive, got %g", ErrInvalidArgument, delta)
	}
	return &Chain[T]{delta: delta}, nil
}

// Next resamples the next segment of the chained path. The first segment of
// a chain starts with its first input point; later segments continue the
// spacing of the previous ones. The first input point of each segment should
// coincide with the last input point of the previous segment.
func (c *Chain[T]) Next(points []T) ([]T, error) {
	out, carry, err := Resample(points, c.delta, ResampleOptions{Carry: c.carry})
	if err != nil {
		return nil, err
	}
	c.carry = carry
	return out, nil
}

// Carry returns the distance currently owed at the start of the next
// segment. It is unset until the first call to [Chain.Next] succeeds.
func (c *Chain[T]) Carry() Carry {
	return c.carry
}
