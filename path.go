package resample

import "fmt"

// PathOptions specifies optional settings for [NewPath].
type PathOptions struct {
	// LengthAccuracy, if non-zero, is the sample count used for the arc
	// length estimate, decoupling its cost from the shape fidelity chosen by
	// the accuracy argument. When it differs from accuracy, the curve is
	// baked twice. Must be at least 2 when non-zero.
	LengthAccuracy int
}

// Path is a constant-speed reparameterization of a parametric function. It
// closes over the resampled polyline and holds no mutable state; it is safe
// for concurrent use.
type Path[T PointLike[T]] struct {
	lerp   Lerper[T]
	length float64
}

// NewPath builds the constant-speed form of f. The curve is sampled at
// accuracy equidistant parameters, resampled to points spaced minimumSpeed
// apart along it, and interpolated back into a continuous function.
//
// minimumSpeed must be positive and accuracy at least 2. A curve shorter
// than minimumSpeed yields fewer than two resampled points and fails with
// [ErrInvalidArgument].
func NewPath[T PointLike[T]](f func(t float64) T, minimumSpeed float64, accuracy int, opts PathOptions) (*Path[T], error) {
	if minimumSpeed <= 0 {
		return nil, fmt.Errorf("%w: minimum speed must be positive, got %g", ErrInvalidArgument, minimumSpeed)
	}
	lengthAccuracy := accuracy
	if opts.LengthAccuracy != 0 {
		if opts.LengthAccuracy < 2 {
			return nil, fmt.Errorf("%w: length accuracy must be at least 2, got %d", ErrInvalidArgument, opts.LengthAccuracy)
		}
		lengthAccuracy = opts.LengthAccuracy
	}

	samples, err := Bake(f, lengthAccuracy)
	if err != nil {
		return nil, err
	}
	total := Length(samples)
	if lengthAccuracy != accuracy {
		samples, err = Bake(f, accuracy)
		if err != nil {
			return nil, err
		}
	}
	resampled, _, err := Resample(samples, minimumSpeed, ResampleOptions{TotalLength: total})
	if err != nil {
		return nil, err
	}
	lerp, err := NewLerper(resampled)
	if err != nil {
		return nil, err
	}
	return &Path[T]{
		lerp:   lerp,
		length: Length(resampled),
	}, nil
}

// Eval evaluates the path at u ∈ [0, 1]. The result traces the same curve as
// f, advancing by approximately equal arc length for equal steps of u.
func (p *Path[T]) Eval(u float64) T {
	return p.lerp.Eval(u)
}

// Length returns the arc length of the resampled polyline backing the path.
// Callers that need speed in real units rather than per unit of u should
// scale u by this length.
func (p *Path[T]) Length() float64 {
	return p.length
}
