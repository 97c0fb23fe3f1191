package lambert

import (
	"math"
)

// geometryε is the smallest |sin Δθ| accepted, below which the endpoints are considered collinear.
const geometryε = 1e-8

// transferGeometry is the scalar reduction of the two position vectors.
type transferGeometry struct {
	r1, r2 float64 // norms of the position vectors
	cosΔθ  float64
	sinΔθ  float64
	Δθ     float64 // in [0, 2π)
	A      float64
}

// resolveGeometry computes the transfer angle and the A parameter.
// The sign of sin(Δθ) follows the z component of r1×r2 and the requested direction of motion.
func resolveGeometry(R1, R2 Vector3, prograde bool) (g transferGeometry, err *SolveError) {
	g.r1 = R1.Norm()
	g.r2 = R2.Norm()
	if g.r1 == 0 || g.r2 == 0 {
		return g, &SolveError{Kind: ErrInvalidInput, Reason: "position vectors cannot be zero"}
	}
	g.cosΔθ = math.Max(-1, math.Min(1, Dot(R1, R2)/(g.r1*g.r2)))
	h := Cross(R1, R2)
	g.sinΔθ = h.Norm() / (g.r1 * g.r2)
	if prograde == (h.Z < 0) {
		g.sinΔθ = -g.sinΔθ
	}
	g.Δθ = math.Atan2(g.sinΔθ, g.cosΔθ)
	if g.Δθ < 0 {
		g.Δθ += 2 * math.Pi
	}
	g.A = g.sinΔθ * math.Sqrt(g.r1*g.r2/(1-g.cosΔθ))
	// r1 == r2 leads to 0·∞ hence the NaN check.
	if g.A == 0 || math.IsNaN(g.A) || math.IsInf(g.A, 0) {
		return g, &SolveError{Kind: ErrDegenerateGeometry, Reason: "cannot compute A"}
	}
	if math.Abs(g.sinΔθ) < geometryε {
		return g, &SolveError{Kind: ErrDegenerateGeometry, Reason: "collinear position vectors"}
	}
	return g, nil
}

// TransferAngle returns the transfer angle Δθ in [0, 2π) for the requested direction of motion.
func TransferAngle(R1, R2 Vector3, prograde bool) (float64, error) {
	g, err := resolveGeometry(R1, R2, prograde)
	if err != nil {
		err.R1, err.R2, err.Prograde = R1, R2, prograde
		return g.Δθ, err
	}
	return g.Δθ, nil
}
