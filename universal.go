package lambert

import (
	"math"
)

const (
	zBound     = 4 * math.Pi * math.Pi // |z| bound of the zero revolution search
	zUpperε    = 1e-6                  // relative inset of the upper bound, since C(4π²) = 0
	maxRepairs = 200                   // halvings allowed when repairing y(z) < 0
)

// iterState is the state of the universal variable iteration.
type iterState struct {
	z, y, c, s, F, dFdz float64
	iteration, repairs  int
}

// y returns y(z) for the provided Stumpff values.
func (g transferGeometry) y(z, c, s float64) float64 {
	return g.r1 + g.r2 + g.A*(z*s-1)/math.Sqrt(c)
}

// residual returns F(z) = (y/C)^1.5·S + A·√y - √μ·Δt.
func (g transferGeometry) residual(y, c, s, sqrtμΔt float64) float64 {
	return math.Pow(y/c, 1.5)*s + g.A*math.Sqrt(y) - sqrtμΔt
}

// dFdz returns the analytical derivative of the residual.
func (g transferGeometry) dFdz(z, y, c, s float64) float64 {
	if math.Abs(z) < stumpffε {
		return math.Sqrt2/40*math.Pow(y, 1.5) + g.A/8*(math.Sqrt(y)+g.A*math.Sqrt(1/(2*y)))
	}
	return math.Pow(y/c, 1.5)*((c-1.5*s/c)/(2*z)+0.75*s*s/c) +
		g.A/8*(3*s/c*math.Sqrt(y)+g.A*math.Sqrt(c/y))
}

// repairY bisects from z, where y(z) < 0, towards 0 (if z < 0) or 2z (otherwise)
// until y is non negative. It returns the repaired z and whether it succeeded.
func (g transferGeometry) repairY(z float64) (float64, bool) {
	bad := z
	other := 2 * z
	if z < 0 {
		other = 0
	}
	for i := 0; i < maxRepairs; i++ {
		mid := (bad + other) / 2
		c, s := Stumpff(mid)
		if g.y(mid, c, s) >= 0 {
			return mid, true
		}
		bad = mid
	}
	return bad, false
}

// iterate finds the root z of the universal time equation with a damped and
// step limited Newton method.
func (s *Solver) iterate(g transferGeometry, Δt float64) (st iterState, err *SolveError) {
	conf := s.conf
	zUpper := zBound * (1 - zUpperε)
	sqrtμΔt := math.Sqrt(s.μ) * Δt
	st.z = zUpper
	if g.Δθ > math.Pi {
		st.z = -zBound
	}
	diverged := func(reason string) *SolveError {
		return &SolveError{Kind: ErrNumericalDivergence, Reason: reason, Iteration: st.iteration, Z: st.z, Y: st.y, F: st.F}
	}
	for st.iteration < conf.MaxIterations {
		st.iteration++
		st.c, st.s = Stumpff(st.z)
		st.y = g.y(st.z, st.c, st.s)
		if st.y < 0 {
			z, ok := g.repairY(st.z)
			if !ok {
				return st, diverged("could not repair y(z) < 0")
			}
			st.z = z
			st.repairs++
			st.c, st.s = Stumpff(st.z)
			st.y = g.y(st.z, st.c, st.s)
			st.F = g.residual(st.y, st.c, st.s, sqrtμΔt)
			st.dFdz = g.dFdz(st.z, st.y, st.c, st.s)
			conf.observe(st, true, false)
			continue
		}
		st.F = g.residual(st.y, st.c, st.s, sqrtμΔt)
		if math.Abs(st.F) < conf.Tolerance {
			st.dFdz = g.dFdz(st.z, st.y, st.c, st.s)
			conf.observe(st, false, true)
			return st, nil
		}
		st.dFdz = g.dFdz(st.z, st.y, st.c, st.s)
		Δz := conf.Damping * st.F / st.dFdz
		if math.Abs(Δz) > conf.MaxStep {
			Δz = math.Copysign(conf.MaxStep, Δz)
		}
		st.z -= Δz
		if math.IsNaN(st.z) {
			return st, diverged("z is not a number")
		}
		if math.Abs(st.z) > conf.DivergenceBound {
			return st, diverged("z exceeded reasonable bounds")
		}
		st.z = math.Max(-zBound, math.Min(st.z, zUpper))
		conf.observe(st, false, false)
	}
	return st, &SolveError{Kind: ErrNonConvergence, Reason: "iteration budget exhausted", Iteration: st.iteration, Z: st.z, Y: st.y, F: st.F}
}
