package lambert

import (
	"fmt"
	"math"
)

// Default solver settings.
const (
	DefaultTolerance       = 1e-8
	DefaultMaxIterations   = 1000
	DefaultDamping         = 0.5
	DefaultMaxStep         = 10.0
	DefaultDivergenceBound = 1e6
	DefaultObserveEvery    = 10
)

// Config tunes the universal variable iteration. The zero value of any field selects its default.
type Config struct {
	Tolerance       float64  // on |F(z)|
	MaxIterations   int      // iteration budget
	Damping         float64  // factor applied to every Newton step
	MaxStep         float64  // largest |Δz| per iteration
	DivergenceBound float64  // largest |z| before giving up
	ObserveEvery    int      // Observer granularity, in iterations
	Observer        Observer // may be nil
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		Tolerance:       DefaultTolerance,
		MaxIterations:   DefaultMaxIterations,
		Damping:         DefaultDamping,
		MaxStep:         DefaultMaxStep,
		DivergenceBound: DefaultDivergenceBound,
		ObserveEvery:    DefaultObserveEvery,
	}
}

func (c Config) withDefaults() Config {
	d := DefaultConfig()
	if c.Tolerance <= 0 {
		c.Tolerance = d.Tolerance
	}
	if c.MaxIterations <= 0 {
		c.MaxIterations = d.MaxIterations
	}
	if c.Damping <= 0 {
		c.Damping = d.Damping
	}
	if c.MaxStep <= 0 {
		c.MaxStep = d.MaxStep
	}
	if c.DivergenceBound <= 0 {
		c.DivergenceBound = d.DivergenceBound
	}
	if c.ObserveEvery <= 0 {
		c.ObserveEvery = d.ObserveEvery
	}
	return c
}

// Solver solves Lambert's problem around a central body of fixed gravitational parameter.
// A Solver is immutable and may be used concurrently.
type Solver struct {
	μ    float64
	conf Config
}

// NewSolver returns a solver with the default configuration. μ is in km^3/s^2.
func NewSolver(μ float64) (*Solver, error) {
	return NewSolverWithConfig(μ, DefaultConfig())
}

// NewSolverWithConfig returns a solver with the provided configuration.
func NewSolverWithConfig(μ float64, conf Config) (*Solver, error) {
	if !(μ > 0) || math.IsInf(μ, 0) {
		return nil, fmt.Errorf("%w: gravitational parameter must be positive, got %g", ErrInvalidInput, μ)
	}
	return &Solver{μ: μ, conf: conf.withDefaults()}, nil
}

// NewSolverFromBody returns a solver around the provided celestial object.
func NewSolverFromBody(body CelestialObject, conf Config) (*Solver, error) {
	return NewSolverWithConfig(body.GM(), conf)
}

// GM returns the gravitational parameter of this solver.
func (s *Solver) GM() float64 {
	return s.μ
}

// Config returns the configuration of this solver.
func (s *Solver) Config() Config {
	return s.conf
}

// Solution is the detailed result of a solve call.
type Solution struct {
	V1, V2     Vector3 // velocities at R1 and R2
	Δθ         float64 // transfer angle in [0, 2π)
	A          float64
	Z, Y       float64 // converged universal variable and y(z)
	F, G, GDot float64 // Lagrange coefficients
	Iterations int
	Repairs    int // number of y<0 repairs
}

// Solve returns the velocities at R1 and R2 of the ballistic trajectory from R1 to R2 in tof seconds.
func (s *Solver) Solve(R1, R2 Vector3, tof float64, prograde bool) (V1, V2 Vector3, err error) {
	sol, err := s.SolveDetailed(R1, R2, tof, prograde)
	if err != nil {
		return
	}
	return sol.V1, sol.V2, nil
}

// SolveDetailed is like Solve but also returns the converged iteration state.
func (s *Solver) SolveDetailed(R1, R2 Vector3, tof float64, prograde bool) (sol Solution, err error) {
	defer func() {
		if so, ok := s.conf.Observer.(SolveObserver); ok {
			so.Solved(sol, err)
		}
	}()
	fail := func(e *SolveError) error {
		e.R1, e.R2, e.TOF, e.Prograde = R1, R2, tof, prograde
		return e
	}
	if !(tof > 0) || math.IsInf(tof, 0) {
		err = fail(&SolveError{Kind: ErrInvalidInput, Reason: "time of flight must be positive"})
		return
	}
	geo, gerr := resolveGeometry(R1, R2, prograde)
	if gerr != nil {
		err = fail(gerr)
		return
	}
	sol.Δθ = geo.Δθ
	sol.A = geo.A
	it, ierr := s.iterate(geo, tof)
	sol.Z, sol.Y, sol.Iterations, sol.Repairs = it.z, it.y, it.iteration, it.repairs
	if ierr != nil {
		err = fail(ierr)
		return
	}
	lg, lerr := lagrange(geo, it.y, s.μ)
	if lerr != nil {
		err = fail(lerr)
		return
	}
	sol.F, sol.G, sol.GDot = lg.f, lg.g, lg.gDot
	sol.V1, sol.V2 = lg.velocities(R1, R2)
	return
}
