package resample

import (
	"errors"
	"testing"
)

func TestLerperTwoPoints(t *testing.T) {
	l, err := NewLerper([]Point{Pt(1, 1), Pt(3, 5)})
	if err != nil {
		t.Fatal(err)
	}
	diff(t, Pt(1, 1), l.Eval(0))
	diff(t, Pt(3, 5), l.Eval(1))
	diff(t, Pt(2, 3), l.Eval(0.5))
}

func TestLerperThreePoints(t *testing.T) {
	l, err := NewLerper([]Float{0, 1, 4})
	if err != nil {
		t.Fatal(err)
	}
	diff(t, Float(0), l.Eval(0))
	diff(t, Float(4), l.Eval(1))
	// u = 0.5 hits the middle sample exactly.
	diff(t, Float(1), l.Eval(0.5))
	// In between, the result lies between the two nearest samples.
	diff(t, Float(0.5), l.Eval(0.25))
	diff(t, Float(2.5), l.Eval(0.75))
}

func TestLerperDegenerateInterval(t *testing.T) {
	// Equal neighbors are returned directly instead of interpolating over a
	// zero-length interval.
	l, err := NewLerper([]Point{Pt(1, 1), Pt(1, 1), Pt(2, 2)})
	if err != nil {
		t.Fatal(err)
	}
	diff(t, Pt(1, 1), l.Eval(0.25))
	diff(t, Pt(1.5, 1.5), l.Eval(0.75))
}

func TestLerperClamps(t *testing.T) {
	l, err := NewLerper([]Float{0, 1, 4})
	if err != nil {
		t.Fatal(err)
	}
	diff(t, Float(0), l.Eval(-0.5))
	diff(t, Float(4), l.Eval(1.5))
}

func TestLerperTooFewPoints(t *testing.T) {
	if _, err := NewLerper[Float](nil); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("got error %v for no points, want ErrInvalidArgument", err)
	}
	if _, err := NewLerper([]Float{1}); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("got error %v for a single point, want ErrInvalidArgument", err)
	}
}
