package resample

// Length approximates the arc length of the polyline defined by points by
// summing consecutive pairwise distances. Fewer than two points have length
// 0.
//
// When points are samples of a curve, the sum is a lower bound on the true
// arc length and converges upward towards it as the sampling gets denser.
func Length[T PointLike[T]](points []T) float64 {
	var total float64
	for i := 1; i < len(points); i++ {
		total += points[i-1].Distance(points[i])
	}
	return total
}
