package lambert

import (
	"errors"
	"math"
	"testing"

	"gonum.org/v1/gonum/floats/scalar"
)

func TestTransferAngleTruthTable(t *testing.T) {
	R1 := Vector3{7000, 0, 0}
	ccw := Vector3{0, 7000, 0}  // r1×r2 along +Z
	cw := Vector3{0, -7000, 0}  // r1×r2 along -Z
	for _, tc := range []struct {
		R2       Vector3
		prograde bool
		Δθ       float64
	}{
		{ccw, true, math.Pi / 2},
		{cw, true, 3 * math.Pi / 2},
		{ccw, false, 3 * math.Pi / 2},
		{cw, false, math.Pi / 2},
	} {
		g, err := resolveGeometry(R1, tc.R2, tc.prograde)
		if err != nil {
			t.Fatalf("err %s", err)
		}
		if !scalar.EqualWithinAbs(g.Δθ, tc.Δθ, 1e-12) {
			t.Fatalf("R2=%s prograde=%t: Δθ=%f expected %f", tc.R2, tc.prograde, g.Δθ, tc.Δθ)
		}
		if math.Signbit(g.sinΔθ) != (tc.Δθ > math.Pi) || math.Signbit(g.A) != (tc.Δθ > math.Pi) {
			t.Fatalf("R2=%s prograde=%t: sinΔθ=%f A=%f", tc.R2, tc.prograde, g.sinΔθ, g.A)
		}
		if g.r1 != 7000 || g.r2 != 7000 {
			t.Fatal("incorrect norms")
		}
	}
}

func TestTransferAngleA(t *testing.T) {
	g, err := resolveGeometry(Vector3{7000, 0, 0}, Vector3{0, 7000, 0}, true)
	if err != nil {
		t.Fatalf("err %s", err)
	}
	// A = sin(Δθ)·sqrt(r1·r2/(1-cos(Δθ))) = 7000 for a quarter transfer.
	if !scalar.EqualWithinAbs(g.A, 7000, 1e-9) {
		t.Fatalf("A=%f", g.A)
	}
	Δθ, aerr := TransferAngle(Vector3{7000, 0, 0}, Vector3{-7000, 7000, 0}, true)
	if aerr != nil {
		t.Fatalf("err %s", aerr)
	}
	if !scalar.EqualWithinAbs(Δθ, 3*math.Pi/4, 1e-12) {
		t.Fatalf("Δθ=%f", Δθ)
	}
}

func TestTransferAngleDegenerate(t *testing.T) {
	R := Vector3{-6045, -3490, 2500}
	Δθ, err := TransferAngle(R, R, true)
	if !errors.Is(err, ErrDegenerateGeometry) {
		t.Fatalf("expected a degenerate geometry, got %v", err)
	}
	if Δθ != 0 {
		t.Fatalf("Δθ=%f for identical vectors", Δθ)
	}
	if _, err := TransferAngle(R, R.Scale(-1), true); !errors.Is(err, ErrDegenerateGeometry) {
		t.Fatalf("expected a degenerate geometry for antipodal vectors, got %v", err)
	}
	// Nearly antipodal endpoints are too ill conditioned to solve.
	if _, err := TransferAngle(Vector3{7000, 0, 0}, Vector3{-7000, 1e-6, 0}, true); !errors.Is(err, ErrDegenerateGeometry) {
		t.Fatalf("expected a degenerate geometry for nearly antipodal vectors, got %v", err)
	}
	if _, err := TransferAngle(Vector3{7000, 0, 0}, Vector3{-7000, 1e-2, 0}, true); err != nil {
		t.Fatalf("err %s for well separated endpoints", err)
	}
	if _, err := TransferAngle(Vector3{}, R, true); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected an invalid input, got %v", err)
	}
}

func TestRepairY(t *testing.T) {
	g, err := resolveGeometry(Vector3{7000, 0, 0}, Vector3{0, 7000, 0}, true)
	if err != nil {
		t.Fatalf("err %s", err)
	}
	z := -zBound
	c, s := Stumpff(z)
	if g.y(z, c, s) >= 0 {
		t.Fatal("test case should start with y < 0")
	}
	zr, ok := g.repairY(z)
	if !ok {
		t.Fatal("could not repair")
	}
	c, s = Stumpff(zr)
	if g.y(zr, c, s) < 0 || zr <= z || zr > 0 {
		t.Fatalf("invalid repair z=%f y=%f", zr, g.y(zr, c, s))
	}
}

func TestDFDZ(t *testing.T) {
	g, err := resolveGeometry(Vector3{7000, 0, 0}, Vector3{0, 7000, 0}, true)
	if err != nil {
		t.Fatalf("err %s", err)
	}
	F := func(z float64) float64 {
		c, s := Stumpff(z)
		return g.residual(g.y(z, c, s), c, s, 0)
	}
	for _, z := range []float64{0, 1, -1, 20, -1.5} {
		h := 1e-3
		numerical := (F(z+h) - F(z-h)) / (2 * h)
		c, s := Stumpff(z)
		if analytical := g.dFdz(z, g.y(z, c, s), c, s); !scalar.EqualWithinRel(analytical, numerical, 1e-6) {
			t.Fatalf("dF/dz(%f)=%f but the central difference is %f", z, analytical, numerical)
		}
	}
}
