package lambert

import (
	"errors"
	"math"
)

const (
	keplerε          = 1e-10
	keplerIterations = 1000
)

// Propagate returns the state after Δt seconds of two-body motion from (R0, V0).
// It solves the universal Kepler equation (Curtis, Algorithm 3.3) with Newton iterations on χ,
// safeguarded by bisection within a bracket of the root.
func Propagate(R0, V0 Vector3, Δt, μ float64) (R, V Vector3, err error) {
	r0 := R0.Norm()
	if r0 == 0 {
		err = errors.New("initial radius cannot be zero")
		return
	}
	if !(μ > 0) {
		err = errors.New("gravitational parameter must be positive")
		return
	}
	if Δt == 0 {
		return R0, V0, nil
	}
	k := keplerEquation{
		r0:    r0,
		vr0:   Dot(R0, V0) / r0,
		α:     2/r0 - Dot(V0, V0)/μ, // reciprocal of the semi major axis
		sqrtμ: math.Sqrt(μ),
		Δt:    Δt,
	}
	χ, err := k.solve(Dot(R0, V0), μ)
	if err != nil {
		return
	}
	z := k.α * χ * χ
	c, s := Stumpff(z)
	f := 1 - χ*χ/r0*c
	g := Δt - χ*χ*χ/k.sqrtμ*s
	R = R0.Scale(f).Add(V0.Scale(g))
	r := R.Norm()
	fDot := k.sqrtμ / (r * r0) * (k.α*χ*χ*χ*s - χ)
	gDot := 1 - χ*χ/r*c
	V = R0.Scale(fDot).Add(V0.Scale(gDot))
	return
}

// keplerEquation is the universal Kepler equation of a given state and time of flight.
type keplerEquation struct {
	r0, vr0, α, sqrtμ, Δt float64
}

// residual returns F(χ) and dF/dχ, the latter being the radius at χ.
func (k keplerEquation) residual(χ float64) (F, dF float64) {
	c, s := Stumpff(k.α * χ * χ)
	F = k.r0*k.vr0/k.sqrtμ*χ*χ*c + (1-k.α*k.r0)*χ*χ*χ*s + k.r0*χ - k.sqrtμ*k.Δt
	dF = k.r0*k.vr0/k.sqrtμ*χ*(1-k.α*χ*χ*s) + (1-k.α*k.r0)*χ*χ*c + k.r0
	return
}

// guess is the initial χ (Vallado, Algorithm 8); rv is R0·V0.
func (k keplerEquation) guess(rv, μ float64) float64 {
	χ := k.sqrtμ * k.α * k.Δt
	if k.α < 0 {
		a := 1 / k.α
		s := sign(k.Δt)
		χ = s * math.Sqrt(-a) * math.Log(-2*μ*k.α*k.Δt/(rv+s*math.Sqrt(-μ*a)*(1-k.r0*k.α)))
	}
	if χ == 0 || math.IsNaN(χ) || math.IsInf(χ, 0) || sign(χ) != sign(k.Δt) {
		χ = k.sqrtμ * k.Δt / k.r0
	}
	return χ
}

// solve returns the root χ. F is increasing in χ since dF/dχ = r > 0, and F(0) has
// the opposite sign of Δt, so the root is bracketed by 0 and a doubled guess.
func (k keplerEquation) solve(rv, μ float64) (float64, error) {
	s := sign(k.Δt)
	b := k.guess(rv, μ)
	bracketed := false
	for i := 0; i < keplerIterations; i++ {
		if F, _ := k.residual(b); s*F > 0 {
			bracketed = true
			break
		}
		b *= 2
	}
	if !bracketed {
		return 0, errors.New("could not bracket the universal Kepler equation")
	}
	lo, hi := math.Min(0, b), math.Max(0, b)
	χ := b
	for i := 0; i < keplerIterations; i++ {
		F, dF := k.residual(χ)
		if F < 0 {
			lo = χ
		} else {
			hi = χ
		}
		next := χ - F/dF
		if !(next > lo && next < hi) {
			next = (lo + hi) / 2
		}
		if math.Abs(next-χ) < keplerε || hi-lo < keplerε {
			return next, nil
		}
		χ = next
	}
	return 0, errors.New("universal Kepler equation did not converge")
}
