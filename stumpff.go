package lambert

import "math"

// stumpffε is the |z| below which the Maclaurin series are used.
const stumpffε = 1e-6

// StumpffC returns the Stumpff function C(z).
func StumpffC(z float64) float64 {
	if math.Abs(z) < stumpffε {
		return 1/2. - z/24. + z*z/720. - z*z*z/40320.
	}
	if z > 0 {
		return (1 - math.Cos(math.Sqrt(z))) / z
	}
	return (math.Cosh(math.Sqrt(-z)) - 1) / (-z)
}

// StumpffS returns the Stumpff function S(z).
func StumpffS(z float64) float64 {
	if math.Abs(z) < stumpffε {
		return 1/6. - z/120. + z*z/5040. - z*z*z/362880.
	}
	if z > 0 {
		sz := math.Sqrt(z)
		return (sz - math.Sin(sz)) / math.Pow(z, 1.5)
	}
	sz := math.Sqrt(-z)
	return (math.Sinh(sz) - sz) / math.Pow(-z, 1.5)
}

// Stumpff returns both C(z) and S(z).
func Stumpff(z float64) (c, s float64) {
	return StumpffC(z), StumpffS(z)
}
