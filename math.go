package lambert

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/floats/scalar"
	"gonum.org/v1/gonum/mat"
)

const (
	deg2rad = math.Pi / 180
)

// Vector3 is a Cartesian vector, in km for positions and km/s for velocities.
type Vector3 struct {
	X, Y, Z float64
}

// NewVector3 returns a Vector3 from the first three components of a slice.
func NewVector3(s []float64) Vector3 {
	if len(s) != 3 {
		panic(fmt.Errorf("expected three components, got %d", len(s)))
	}
	return Vector3{s[0], s[1], s[2]}
}

// ParseVector3 parses "x,y,z" (spaces are ignored).
func ParseVector3(s string) (Vector3, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return Vector3{}, fmt.Errorf("expected x,y,z and got '%s'", s)
	}
	var comps [3]float64
	for i, p := range parts {
		fl, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return Vector3{}, fmt.Errorf("invalid component %d of '%s': %w", i, s, err)
		}
		comps[i] = fl
	}
	return Vector3{comps[0], comps[1], comps[2]}, nil
}

// Slice returns the components as a new slice.
func (v Vector3) Slice() []float64 {
	return []float64{v.X, v.Y, v.Z}
}

// Vec returns this vector as a gonum vector.
func (v Vector3) Vec() *mat.VecDense {
	return mat.NewVecDense(3, v.Slice())
}

// Norm returns the Euclidean norm.
func (v Vector3) Norm() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// Add returns v+w.
func (v Vector3) Add(w Vector3) Vector3 {
	return Vector3{v.X + w.X, v.Y + w.Y, v.Z + w.Z}
}

// Sub returns v-w.
func (v Vector3) Sub(w Vector3) Vector3 {
	return Vector3{v.X - w.X, v.Y - w.Y, v.Z - w.Z}
}

// Scale returns f·v.
func (v Vector3) Scale(f float64) Vector3 {
	return Vector3{f * v.X, f * v.Y, f * v.Z}
}

// Unit returns the unit vector, or the zero vector if v is (nearly) nil.
func (v Vector3) Unit() Vector3 {
	n := v.Norm()
	if scalar.EqualWithinAbs(n, 0, 1e-12) {
		return Vector3{}
	}
	return v.Scale(1 / n)
}

// IsZero returns whether all the components are exactly zero.
func (v Vector3) IsZero() bool {
	return v == Vector3{}
}

// String implements the Stringer interface.
func (v Vector3) String() string {
	return fmt.Sprintf("(%.6g, %.6g, %.6g)", v.X, v.Y, v.Z)
}

// Norm returns the norm of a given vector.
func Norm(v Vector3) float64 {
	return v.Norm()
}

// Dot performs the inner product via mat/BLAS.
func Dot(a, b Vector3) float64 {
	return mat.Dot(a.Vec(), b.Vec())
}

// Cross performs the right handed cross product.
func Cross(a, b Vector3) Vector3 {
	return Vector3{a.Y*b.Z - a.Z*b.Y,
		a.Z*b.X - a.X*b.Z,
		a.X*b.Y - a.Y*b.X}
}

// EqualWithin returns whether both vectors are componentwise equal within the absolute tolerance tol.
func EqualWithin(a, b Vector3, tol float64) bool {
	return scalar.EqualWithinAbs(a.X, b.X, tol) &&
		scalar.EqualWithinAbs(a.Y, b.Y, tol) &&
		scalar.EqualWithinAbs(a.Z, b.Z, tol)
}

// sign returns the sign of a given number.
func sign(v float64) float64 {
	if scalar.EqualWithinAbs(v, 0, 1e-12) {
		return 1
	}
	return v / math.Abs(v)
}

// Deg2rad converts degrees to radians, and enforced only positive numbers.
func Deg2rad(a float64) float64 {
	if a < 0 {
		a += 360
	}
	return math.Mod(a*deg2rad, 2*math.Pi)
}

// Rad2deg converts radians to degrees, and enforced only positive numbers.
func Rad2deg(a float64) float64 {
	if a < 0 {
		a += 2 * math.Pi
	}
	return math.Mod(a/deg2rad, 360)
}
