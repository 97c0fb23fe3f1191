package lambert

import (
	kitlog "github.com/go-kit/log"
)

// IterationState is a snapshot of the universal variable iteration.
type IterationState struct {
	Iteration int
	Z, C, S   float64 // universal variable and its Stumpff functions
	Y, F      float64
	DFDZ      float64
	Repaired  bool // this iteration only repaired y(z) < 0
	Converged bool
}

// Observer is notified of the progress of the iteration.
type Observer interface {
	Iteration(IterationState)
}

// SolveObserver may optionally be implemented by an Observer to be notified of every solve outcome.
type SolveObserver interface {
	Solved(Solution, error)
}

// ObserverFunc adapts a function to an Observer.
type ObserverFunc func(IterationState)

// Iteration implements the Observer interface.
func (f ObserverFunc) Iteration(s IterationState) {
	f(s)
}

// Observers fans out the notifications to several observers.
type Observers []Observer

// Iteration implements the Observer interface.
func (obs Observers) Iteration(s IterationState) {
	for _, o := range obs {
		o.Iteration(s)
	}
}

// Solved implements the SolveObserver interface.
func (obs Observers) Solved(sol Solution, err error) {
	for _, o := range obs {
		if so, ok := o.(SolveObserver); ok {
			so.Solved(sol, err)
		}
	}
}

// observe notifies the observer every ObserveEvery iterations, on repairs and upon convergence.
func (c Config) observe(st iterState, repaired, converged bool) {
	if c.Observer == nil {
		return
	}
	if !repaired && !converged && st.iteration%c.ObserveEvery != 0 {
		return
	}
	c.Observer.Iteration(IterationState{
		Iteration: st.iteration,
		Z:         st.z,
		C:         st.c,
		S:         st.s,
		Y:         st.y,
		F:         st.F,
		DFDZ:      st.dFdz,
		Repaired:  repaired,
		Converged: converged,
	})
}

// LogObserver logs the iterations in logfmt.
type LogObserver struct {
	logger kitlog.Logger
}

// NewLogObserver returns an observer which logs to the provided logger.
func NewLogObserver(logger kitlog.Logger) *LogObserver {
	return &LogObserver{logger: kitlog.With(logger, "subsys", "lambert")}
}

// Iteration implements the Observer interface.
func (o *LogObserver) Iteration(s IterationState) {
	status := "iterating"
	if s.Repaired {
		status = "repaired"
	} else if s.Converged {
		status = "converged"
	}
	o.logger.Log("level", "debug", "status", status, "iteration", s.Iteration, "z", s.Z, "C", s.C, "S", s.S, "y", s.Y, "F", s.F, "dF/dz", s.DFDZ)
}

// Solved implements the SolveObserver interface.
func (o *LogObserver) Solved(sol Solution, err error) {
	if err != nil {
		o.logger.Log("level", "warning", "status", "failed", "err", err)
		return
	}
	o.logger.Log("level", "info", "status", "solved", "iterations", sol.Iterations, "z", sol.Z, "Δθ(deg)", Rad2deg(sol.Δθ))
}
