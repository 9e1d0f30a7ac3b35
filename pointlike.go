package resample

// PointLike describes the primitives the engine needs from a point type: a
// distance, a directed step, and linear interpolation. The package provides
// [Float], [Point], and [Point3]; callers may supply their own types.
//
// All points in a single pipeline run must share one concrete type.
type PointLike[T any] interface {
	comparable

	// Distance returns the non-negative distance to o. For scalars this is
	// the absolute difference, for vectors the Euclidean magnitude of the
	// difference.
	Distance(o T) float64

	// Towards returns the point moved distance d in the direction of o. If
	// the receiver equals o, the direction is undefined and the point is
	// returned unchanged. d may exceed the distance to o, in which case the
	// result lies past o.
	Towards(o T, d float64) T

	// Lerp linearly interpolates between the receiver (t = 0) and o (t = 1).
	Lerp(o T, t float64) T
}

// clamp limits x to the range [lo, hi].
func clamp(x, lo, hi float64) float64 {
	return min(max(x, lo), hi)
}
