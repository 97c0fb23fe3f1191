package lambert

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats/scalar"
)

const (
	eccentricityε = 5e-5 // 0.00005
)

// Orbit is the conic going through a given state, used to characterise a transfer.
type Orbit struct {
	a, e, i float64
	h       Vector3
	ξ       float64 // specific mechanical energy
	R, V    Vector3
	Origin  CelestialObject
}

// NewOrbitFromRV returns the orbit going through R with velocity V around c.
// From Vallado's RV2COE, page 113 (only the elements needed here).
func NewOrbitFromRV(R, V Vector3, c CelestialObject) *Orbit {
	h := Cross(R, V)
	v := V.Norm()
	r := R.Norm()
	ξ := (v*v)/2 - c.μ/r
	eVec := R.Scale(v*v - c.μ/r).Sub(V.Scale(Dot(R, V))).Scale(1 / c.μ)
	cosi := h.Z / h.Norm()
	if abscosi := math.Abs(cosi); abscosi > 1 && scalar.EqualWithinAbs(abscosi, 1, 1e-12) {
		cosi = sign(cosi)
	}
	return &Orbit{
		a:      -c.μ / (2 * ξ),
		e:      eVec.Norm(),
		i:      math.Acos(cosi),
		h:      h,
		ξ:      ξ,
		R:      R,
		V:      V,
		Origin: c,
	}
}

// SMA returns the semi major axis (negative for hyperbolic orbits, infinite for parabolic ones).
func (o Orbit) SMA() float64 {
	return o.a
}

// Eccentricity returns the eccentricity.
func (o Orbit) Eccentricity() float64 {
	return o.e
}

// Inclination returns the inclination in radians.
func (o Orbit) Inclination() float64 {
	return o.i
}

// Energyξ returns the specific mechanical energy ξ.
func (o Orbit) Energyξ() float64 {
	return o.ξ
}

// H returns the orbital angular momentum vector.
func (o Orbit) H() Vector3 {
	return o.h
}

// Prograde returns whether the motion is counterclockwise about +Z.
func (o Orbit) Prograde() bool {
	return o.h.Z >= 0
}

// Elliptical returns whether this orbit is closed.
func (o Orbit) Elliptical() bool {
	return o.e < 1-eccentricityε
}

// VisViva returns the speed expected at radius r from the vis-viva equation.
func (o Orbit) VisViva(r float64) float64 {
	return math.Sqrt(o.Origin.μ * (2/r - 1/o.a))
}

// Period returns the orbital period in seconds, or +Inf for open orbits.
func (o Orbit) Period() float64 {
	if !o.Elliptical() {
		return math.Inf(1)
	}
	return 2 * math.Pi * math.Sqrt(o.a*o.a*o.a/o.Origin.μ)
}

// String implements the stringer interface.
func (o Orbit) String() string {
	return fmt.Sprintf("a=%.1f e=%.4f i=%.3f ξ=%.3f", o.a, o.e, Rad2deg(o.i), o.ξ)
}
