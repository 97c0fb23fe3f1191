package lambert

import (
	"errors"
	"fmt"
)

// Error kinds returned by the solver. Use errors.Is to tell them apart.
var (
	// ErrInvalidInput is returned for a zero position vector, a non positive time of flight or gravitational parameter.
	ErrInvalidInput = errors.New("lambert: invalid input")
	// ErrDegenerateGeometry is returned when the transfer parameter A (or the Lagrange g) vanishes.
	ErrDegenerateGeometry = errors.New("lambert: degenerate geometry")
	// ErrNumericalDivergence is returned when z leaves the safety bound.
	ErrNumericalDivergence = errors.New("lambert: numerical divergence")
	// ErrNonConvergence is returned when the iteration budget is exhausted.
	ErrNonConvergence = errors.New("lambert: did not converge")
)

// SolveError wraps one of the error kinds with the inputs of the solve call
// and the last iteration state, if any iteration happened.
type SolveError struct {
	Kind      error
	Reason    string
	R1, R2    Vector3
	TOF       float64
	Prograde  bool
	Iteration int
	Z, Y, F   float64
}

func (e *SolveError) Error() string {
	msg := fmt.Sprintf("%s: %s", e.Kind, e.Reason)
	if e.Iteration > 0 {
		msg += fmt.Sprintf(" (iteration %d: z=%g y=%g F=%g)", e.Iteration, e.Z, e.Y, e.F)
	}
	return msg + fmt.Sprintf(" [r1=%s r2=%s tof=%g prograde=%t]", e.R1, e.R2, e.TOF, e.Prograde)
}

func (e *SolveError) Unwrap() error {
	return e.Kind
}
