package lambert

import "math"

// lagrangeCoeffs are the f, g and ġ Lagrange coefficients of the transfer.
type lagrangeCoeffs struct {
	f, g, gDot float64
}

// lagrange computes the Lagrange coefficients from the converged y.
func lagrange(geo transferGeometry, y, μ float64) (lagrangeCoeffs, *SolveError) {
	lg := lagrangeCoeffs{
		f:    1 - y/geo.r1,
		g:    geo.A * math.Sqrt(y/μ),
		gDot: 1 - y/geo.r2,
	}
	if lg.g == 0 || math.IsNaN(lg.g) || math.IsInf(lg.g, 0) {
		return lg, &SolveError{Kind: ErrDegenerateGeometry, Reason: "Lagrange coefficient g vanishes"}
	}
	return lg, nil
}

// velocities returns v1 = (r2 - f·r1)/g and v2 = (ġ·r2 - r1)/g.
func (lg lagrangeCoeffs) velocities(R1, R2 Vector3) (V1, V2 Vector3) {
	V1 = R2.Sub(R1.Scale(lg.f)).Scale(1 / lg.g)
	V2 = R2.Scale(lg.gDot).Sub(R1).Scale(1 / lg.g)
	return
}
