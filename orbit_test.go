package lambert

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/floats/scalar"
)

func TestOrbitFromRV(t *testing.T) {
	r := 7000.
	v := math.Sqrt(Earth.GM() / r)
	o := NewOrbitFromRV(Vector3{r, 0, 0}, Vector3{0, v, 0}, Earth)
	if !scalar.EqualWithinAbs(o.SMA(), r, 1e-6) {
		t.Fatalf("a=%f", o.SMA())
	}
	if !scalar.EqualWithinAbs(o.Eccentricity(), 0, 1e-12) {
		t.Fatalf("e=%f", o.Eccentricity())
	}
	if !scalar.EqualWithinAbs(o.Inclination(), 0, 1e-12) || !o.Prograde() || !o.Elliptical() {
		t.Fatalf("incorrect orbit %s", o)
	}
	if !scalar.EqualWithinAbs(o.Energyξ(), -Earth.GM()/(2*r), 1e-12) {
		t.Fatalf("ξ=%f", o.Energyξ())
	}
	if !scalar.EqualWithinAbs(o.VisViva(r), v, 1e-12) {
		t.Fatalf("vis-viva=%f", o.VisViva(r))
	}
	if !EqualWithin(o.H(), Vector3{0, 0, r * v}, 1e-9) {
		t.Fatalf("h=%s", o.H())
	}
	if !scalar.EqualWithinAbs(o.Period(), 2*math.Pi*math.Sqrt(r*r*r/Earth.GM()), 1e-6) {
		t.Fatalf("T=%f", o.Period())
	}
	// Curtis, Example 4.3
	o = NewOrbitFromRV(Vector3{-6045, -3490, 2500}, Vector3{-3.457, 6.618, 2.533}, Earth)
	if !scalar.EqualWithinAbs(o.Eccentricity(), 0.1712, 1e-4) {
		t.Fatalf("e=%f", o.Eccentricity())
	}
	if !scalar.EqualWithinAbs(Rad2deg(o.Inclination()), 153.2, 0.1) || o.Prograde() {
		t.Fatalf("i=%f", Rad2deg(o.Inclination()))
	}
	if !scalar.EqualWithinAbs(o.SMA(), 8788, 1) {
		t.Fatalf("a=%f", o.SMA())
	}
}

func TestOrbitHyperbolic(t *testing.T) {
	r := 7000.
	v := 1.5 * math.Sqrt(2*Earth.GM()/r)
	o := NewOrbitFromRV(Vector3{r, 0, 0}, Vector3{0, v, 0}, Earth)
	if o.Elliptical() || o.SMA() >= 0 || o.Energyξ() <= 0 {
		t.Fatalf("expected a hyperbolic orbit, got %s", o)
	}
	if !scalar.EqualWithinAbs(o.VisViva(r), v, 1e-9) {
		t.Fatalf("vis-viva=%f expected %f", o.VisViva(r), v)
	}
	if !math.IsInf(o.Period(), 1) {
		t.Fatalf("T=%f for an open orbit", o.Period())
	}
}

func TestOrbitPeriod(t *testing.T) {
	// An eccentric orbit is back at its initial state after one period.
	R0 := Vector3{-6045, -3490, 2500}
	V0 := Vector3{-3.457, 6.618, 2.533}
	o := NewOrbitFromRV(R0, V0, Earth)
	R, V, err := Propagate(R0, V0, o.Period(), Earth.GM())
	if err != nil {
		t.Fatalf("err %s", err)
	}
	if !EqualWithin(R, R0, 1e-5) || !EqualWithin(V, V0, 1e-8) {
		t.Fatalf("after one period: %s %s instead of %s %s", R, V, R0, V0)
	}
}
