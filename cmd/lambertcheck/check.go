package main

import (
	"fmt"
	"io"

	"github.com/ChristopherRabotin/lambert"
)

// check runs every case and reports to w. It returns the number of passed and failed cases.
func check(solver *lambert.Solver, cases []Case, tol float64, w io.Writer) (passed, failed int) {
	for _, c := range cases {
		if checkCase(solver, c, tol, w) {
			passed++
		} else {
			failed++
		}
	}
	fmt.Fprintf(w, "\n%d passed, %d failed\n", passed, failed)
	return
}

func checkCase(solver *lambert.Solver, c Case, tol float64, w io.Writer) bool {
	fmt.Fprintf(w, "\nRunning test case: %s\n", c.Description)
	R1, R2, V1exp, V2exp, err := c.Vectors()
	if err != nil {
		fmt.Fprintf(w, "Invalid case: %s\n", err)
		return false
	}
	V1, V2, err := solver.Solve(R1, R2, c.TOF, c.IsPrograde())
	if err != nil {
		fmt.Fprintf(w, "Solver failed: %s\n", err)
		return false
	}
	fmt.Fprintf(w, "Computed v1: %s km/s\nComputed v2: %s km/s\n", V1, V2)
	if V1exp.IsZero() {
		fmt.Fprintln(w, "Test passed (no expected velocities provided).")
		return true
	}
	if lambert.EqualWithin(V1, V1exp, tol) && lambert.EqualWithin(V2, V2exp, tol) {
		fmt.Fprintln(w, "Test passed!")
		return true
	}
	fmt.Fprintf(w, "Test failed.\nExpected v1: %s km/s, Got: %s km/s\nExpected v2: %s km/s, Got: %s km/s\n", V1exp, V1, V2exp, V2)
	return false
}
