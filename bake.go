package resample

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// Bake evaluates f at samples equidistant parameters spanning [0, 1] and
// returns the results in evaluation order. The first element is f(0) and the
// last is f(1). samples must be at least 2; otherwise Bake fails with
// [ErrInvalidArgument] before evaluating f.
//
// f is assumed to be pure and total on [0, 1].
func Bake[T any](f func(t float64) T, samples int) ([]T, error) {
	if samples < 2 {
		return nil, fmt.Errorf("%w: need at least 2 samples, got %d", ErrInvalidArgument, samples)
	}
	ts := floats.Span(make([]float64, samples), 0, 1)
	out := make([]T, samples)
	for i, t := range ts {
		out[i] = f(t)
	}
	return out, nil
}
