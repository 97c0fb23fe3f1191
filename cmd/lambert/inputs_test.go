package main

import (
	"math"
	"testing"

	"github.com/ChristopherRabotin/lambert"
)

func TestScenarios(t *testing.T) {
	solver, err := lambert.NewSolverFromBody(lambert.Earth, lambert.Config{})
	if err != nil {
		t.Fatalf("err %s", err)
	}
	for _, name := range scenarioNames() {
		sc, err := lookupScenario(name)
		if err != nil {
			t.Fatalf("err %s", err)
		}
		V1, V2, err := solver.Solve(sc.R1, sc.R2, sc.tof, true)
		if err != nil {
			t.Fatalf("[%s] err %s", name, err)
		}
		R, V, err := lambert.Propagate(sc.R1, V1, sc.tof, solver.GM())
		if err != nil {
			t.Fatalf("[%s] err %s", name, err)
		}
		if !lambert.EqualWithin(R, sc.R2, 1e-5) || !lambert.EqualWithin(V, V2, 1e-8) {
			t.Fatalf("[%s] propagation lands on %s instead of %s", name, R, sc.R2)
		}
		if o := lambert.NewOrbitFromRV(sc.R1, V1, lambert.Earth); !o.Elliptical() || o.Period() < sc.tof {
			t.Fatalf("[%s] unexpected transfer orbit %s", name, o)
		}
	}
	if _, err := lookupScenario("MOON"); err != nil {
		t.Fatalf("err %s", err)
	}
	if _, err := lookupScenario("mars"); err == nil {
		t.Fatal("err should not be nil for an unknown scenario")
	}
}

func TestTimeOfFlight(t *testing.T) {
	tof, err := timeOfFlight(1800, 0, 0)
	if err != nil || tof != 1800 {
		t.Fatalf("tof=%f (%v)", tof, err)
	}
	tof, err = timeOfFlight(1800, 2451545.0, 2451545.5)
	if err != nil || math.Abs(tof-43200) > 1e-3 {
		t.Fatalf("tof=%f (%v) for half a day", tof, err)
	}
	for _, jd := range [][2]float64{{2451545.0, 0}, {0, 2451545.0}, {2451545.5, 2451545.0}} {
		if _, err := timeOfFlight(1800, jd[0], jd[1]); err == nil {
			t.Fatalf("err should not be nil for depart=%f arrive=%f", jd[0], jd[1])
		}
	}
}
