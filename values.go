package resample

import "fmt"

// Dynamically typed entry points for callers holding points as []any, for
// example values decoded at a script boundary. The element type is determined
// once, from the first element; sequences mixing types are undefined behavior
// and are not validated per element.

// LengthValues is [Length] for dynamically typed points. Supported element
// types are float64, [Float], [Point], and [Point3]; a first element of any
// other type fails with [ErrUnsupportedValueType].
func LengthValues(points []any) (float64, error) {
	if len(points) == 0 {
		return 0, nil
	}
	switch points[0].(type) {
	case float64:
		return Length(scalarsOf(points)), nil
	case Float:
		return Length(valuesTo[Float](points)), nil
	case Point:
		return Length(valuesTo[Point](points)), nil
	case Point3:
		return Length(valuesTo[Point3](points)), nil
	default:
		return 0, fmt.Errorf("%w: %T", ErrUnsupportedValueType, points[0])
	}
}

// ResampleValues is [Resample] for dynamically typed points. Supported
// element types are float64, [Float], [Point], and [Point3]; a first element
// of any other type fails with [ErrUnsupportedValueType]. The output elements
// have the same concrete type as the input elements.
func ResampleValues(points []any, delta float64, opts ResampleOptions) ([]any, Carry, error) {
	if len(points) == 0 {
		return nil, Carry{}, fmt.Errorf("%w: need at least 2 points, got 0", ErrInvalidArgument)
	}
	switch points[0].(type) {
	case float64:
		out, carry, err := Resample(scalarsOf(points), delta, opts)
		if err != nil {
			return nil, Carry{}, err
		}
		res := make([]any, len(out))
		for i, p := range out {
			res[i] = float64(p)
		}
		return res, carry, nil
	case Float:
		return resampleValues[Float](points, delta, opts)
	case Point:
		return resampleValues[Point](points, delta, opts)
	case Point3:
		return resampleValues[Point3](points, delta, opts)
	default:
		return nil, Carry{}, fmt.Errorf("%w: %T", ErrUnsupportedValueType, points[0])
	}
}

func resampleValues[T PointLike[T]](points []any, delta float64, opts ResampleOptions) ([]any, Carry, error) {
	out, carry, err := Resample(valuesTo[T](points), delta, opts)
	if err != nil {
		return nil, Carry{}, err
	}
	res := make([]any, len(out))
	for i, p := range out {
		res[i] = p
	}
	return res, carry, nil
}

func scalarsOf(points []any) []Float {
	out := make([]Float, len(points))
	for i, p := range points {
		out[i] = Float(p.(float64))
	}
	return out
}

func valuesTo[T any](points []any) []T {
	out := make([]T, len(points))
	for i, p := range points {
		out[i] = p.(T)
	}
	return out
}
