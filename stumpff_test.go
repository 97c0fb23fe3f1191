package lambert

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/floats/scalar"
)

func TestStumpffSpecialValues(t *testing.T) {
	c, s := Stumpff(0)
	if c != 0.5 || s != 1/6. {
		t.Fatalf("C(0)=%f S(0)=%f", c, s)
	}
	// C(4π²) vanishes: the end of the zero revolution domain.
	if c := StumpffC(4 * math.Pi * math.Pi); !scalar.EqualWithinAbs(c, 0, 1e-15) {
		t.Fatalf("C(4π²)=%g", c)
	}
	if s := StumpffS(4 * math.Pi * math.Pi); !scalar.EqualWithinAbs(s, 1/(4*math.Pi*math.Pi), 1e-15) {
		t.Fatalf("S(4π²)=%g", s)
	}
	// Elliptic and hyperbolic closed forms.
	if c := StumpffC(math.Pi * math.Pi); !scalar.EqualWithinAbs(c, 2/(math.Pi*math.Pi), 1e-15) {
		t.Fatalf("C(π²)=%g", c)
	}
	if c := StumpffC(-1); !scalar.EqualWithinAbs(c, math.Cosh(1)-1, 1e-15) {
		t.Fatalf("C(-1)=%g", c)
	}
	if s := StumpffS(-1); !scalar.EqualWithinAbs(s, math.Sinh(1)-1, 1e-15) {
		t.Fatalf("S(-1)=%g", s)
	}
}

func TestStumpffContinuity(t *testing.T) {
	// Series and closed forms must agree at the threshold.
	for _, z := range []float64{stumpffε, -stumpffε} {
		below := z * (1 - 1e-9)
		cS, sS := Stumpff(below)
		cC, sC := Stumpff(z)
		if !scalar.EqualWithinAbs(cS, cC, 1e-6) {
			t.Fatalf("C discontinuous at z=%g: %.15f vs %.15f", z, cS, cC)
		}
		if !scalar.EqualWithinAbs(sS, sC, 1e-6) {
			t.Fatalf("S discontinuous at z=%g: %.15f vs %.15f", z, sS, sC)
		}
	}
	// And over a wider range than the threshold, the series is still very close.
	for _, z := range []float64{1e-3, -1e-3} {
		series := 1/2. - z/24. + z*z/720. - z*z*z/40320.
		if !scalar.EqualWithinAbs(series, StumpffC(z), 1e-12) {
			t.Fatalf("C(%g) far from its series", z)
		}
	}
}

func TestStumpffMonotonic(t *testing.T) {
	prevC, prevS := Stumpff(-50)
	for z := -49.5; z < 39; z += 0.5 {
		c, s := Stumpff(z)
		if c >= prevC || s >= prevS {
			t.Fatalf("Stumpff functions should decrease with z (z=%f)", z)
		}
		prevC, prevS = c, s
	}
}
