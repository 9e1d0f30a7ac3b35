// Package resample reparametrizes parametric curves to constant speed.
//
// Given an arbitrary function f(t) for t ∈ [0, 1] — which may move through
// space at wildly varying speed — the package produces a function g(u) for
// u ∈ [0, 1] that traces the same curve but advances by (approximately) equal
// arc length for equal steps of u. This is useful for animation easing along
// paths, for placing evenly spaced objects on a curve, and for driving
// anything that should move at uniform speed regardless of how the curve was
// authored.
//
// The package deliberately uses fixed-sample discretization rather than
// adaptive quadrature: accuracy is controlled by explicit sample counts
// supplied by the caller, and all costs are O(samples) or O(output length).
//
// # Pipeline
//
// [NewPath] is the entry point and composes four stages, each of which is also
// usable on its own:
//
//   - [Bake] evaluates f at equidistant parameters and returns the sampled
//     points.
//   - [Length] estimates the arc length of the sampled polyline by summing
//     consecutive pairwise distances.
//   - [Resample] marches along the polyline and emits new points spaced a
//     fixed distance apart, returning the leftover distance as a [Carry] so
//     that consecutive path segments can be chained without breaking the
//     spacing. [Chain] wraps this threading for the common case.
//   - [Lerper] turns the resampled points back into a continuous function via
//     piecewise-linear interpolation.
//
// # Point types
//
// The engine is generic over the point type. [PointLike] names the three
// primitives it needs — distance, a directed step, and linear interpolation —
// and the package provides implementations for scalars ([Float]), the plane
// ([Point]), and space ([Point3]). Callers can supply their own types; all
// points in one pipeline run must share a concrete type.
//
// For callers that only hold dynamically typed values (for example, decoded
// at a script boundary), [LengthValues] and [ResampleValues] dispatch on the
// concrete type of the first element at runtime.
//
// # Concurrency
//
// Every function is pure with respect to its inputs. [Path] and [Lerper]
// values are immutable and safe for concurrent use. Chained resampling is
// inherently sequential: it is the caller's responsibility to serialize the
// hand-off of a [Carry] from one call to the next.
package resample
