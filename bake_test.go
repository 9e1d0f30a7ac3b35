package resample

import (
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestBake(t *testing.T) {
	got, err := Bake(func(t float64) Float { return Float(t * t) }, 5)
	if err != nil {
		t.Fatal(err)
	}
	want := []Float{0, 0.0625, 0.25, 0.5625, 1}
	diff(t, want, got)
}

func TestBakeEndpoints(t *testing.T) {
	f := func(t float64) Point {
		return Pt(math.Cos(t), math.Sin(t))
	}
	for _, n := range []int{2, 3, 7, 100} {
		got, err := Bake(f, n)
		if err != nil {
			t.Fatal(err)
		}
		if len(got) != n {
			t.Errorf("baked %d samples, want %d", len(got), n)
		}
		diff(t, f(0), got[0], cmpopts.EquateApprox(0, 1e-12))
		diff(t, f(1), got[len(got)-1], cmpopts.EquateApprox(0, 1e-12))
	}
}

func TestBakeTooFewSamples(t *testing.T) {
	for _, n := range []int{1, 0, -3} {
		evaluated := false
		_, err := Bake(func(t float64) Float {
			evaluated = true
			return Float(t)
		}, n)
		if !errors.Is(err, ErrInvalidArgument) {
			t.Errorf("Bake with %d samples: got error %v, want ErrInvalidArgument", n, err)
		}
		if evaluated {
			t.Errorf("Bake with %d samples evaluated f before failing", n)
		}
	}
}
