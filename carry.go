package resample

import "strconv"

// Carry is the leftover step distance at the end of a resampling run. It is
// an optional value: the zero Carry is unset, which is distinct from a set
// carry of 0. A carry of exactly 0 means the march landed exactly on the
// final vertex, and a chained follow-up segment emits its first point
// immediately.
//
// A Carry produced by one [Resample] call is threaded into the next chained
// call via [ResampleOptions].
type Carry struct {
	value float64
	set   bool
}

// CarryOf returns a set carry of distance d.
func CarryOf(d float64) Carry {
	return Carry{value: d, set: true}
}

// IsSet reports whether the carry holds a value.
func (c Carry) IsSet() bool {
	return c.set
}

// Get returns the carried distance and whether it is set.
func (c Carry) Get() (float64, bool) {
	return c.value, c.set
}

func (c Carry) String() string {
	if !c.set {
		return "<no carry>"
	}
	return strconv.FormatFloat(c.value, 'g', -1, 64)
}
