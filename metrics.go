package lambert

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
)

// MetricsObserver exports the solver activity as Prometheus metrics.
type MetricsObserver struct {
	iterations prometheus.Counter
	repairs    prometheus.Counter
	residual   prometheus.Gauge
	solves     *prometheus.CounterVec
	perSolve   prometheus.Histogram
}

// NewMetricsObserver returns an observer whose metrics are registered with reg.
// Note that Iteration is only called every Config.ObserveEvery iterations, so the
// iteration counter is exact only with ObserveEvery set to 1; the histogram is always exact.
func NewMetricsObserver(reg prometheus.Registerer) *MetricsObserver {
	m := &MetricsObserver{
		iterations: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "lambert_observed_iterations_total",
			Help: "Observed universal variable iterations",
		}),
		repairs: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "lambert_repairs_total",
			Help: "Iterations which repaired a negative y(z)",
		}),
		residual: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "lambert_last_residual",
			Help: "Last observed time equation residual F(z)",
		}),
		solves: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "lambert_solves_total",
			Help: "Solve calls by outcome",
		}, []string{"outcome"}),
		perSolve: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "lambert_iterations_per_solve",
			Help:    "Iterations needed per successful solve",
			Buckets: prometheus.ExponentialBuckets(1, 2, 11),
		}),
	}
	reg.MustRegister(m.iterations, m.repairs, m.residual, m.solves, m.perSolve)
	return m
}

// Iteration implements the Observer interface.
func (m *MetricsObserver) Iteration(s IterationState) {
	m.iterations.Inc()
	if s.Repaired {
		m.repairs.Inc()
		return
	}
	m.residual.Set(s.F)
}

// Solved implements the SolveObserver interface.
func (m *MetricsObserver) Solved(sol Solution, err error) {
	m.solves.WithLabelValues(outcome(err)).Inc()
	if err == nil {
		m.perSolve.Observe(float64(sol.Iterations))
	}
}

// outcome returns the metric label of a solve error.
func outcome(err error) string {
	switch {
	case err == nil:
		return "solved"
	case errors.Is(err, ErrInvalidInput):
		return "invalid_input"
	case errors.Is(err, ErrDegenerateGeometry):
		return "degenerate_geometry"
	case errors.Is(err, ErrNumericalDivergence):
		return "divergence"
	case errors.Is(err, ErrNonConvergence):
		return "non_convergence"
	default:
		return "unknown"
	}
}
