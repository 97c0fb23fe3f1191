package lambert

import (
	"errors"
	"math"

	"github.com/ChristopherRabotin/lambert/integrator"
)

// twoBody is an integrator.Integrable of the unperturbed two body problem.
type twoBody struct {
	μ     float64
	state []float64
	steps uint64
}

// GetState gets the state.
func (b *twoBody) GetState() []float64 {
	return b.state
}

// SetState sets the next state at iteration i.
func (b *twoBody) SetState(i uint64, s []float64) {
	b.state = s
}

// Stop returns whether we should stop the integration.
func (b *twoBody) Stop(i uint64) bool {
	return i >= b.steps
}

// Func does the math. Returns the derivative of the state.
func (b *twoBody) Func(t float64, f []float64) (fDot []float64) {
	fDot = make([]float64, 6)
	r := math.Sqrt(f[0]*f[0] + f[1]*f[1] + f[2]*f[2])
	bodyAcc := -b.μ / (r * r * r)
	// d\vec{R}/dt
	fDot[0] = f[3]
	fDot[1] = f[4]
	fDot[2] = f[5]
	// d\vec{V}/dt
	fDot[3] = bodyAcc * f[0]
	fDot[4] = bodyAcc * f[1]
	fDot[5] = bodyAcc * f[2]
	return
}

// PropagateRK4 numerically integrates the two body motion from (R0, V0) for Δt seconds.
// The step is shortened so that an integer number of steps covers Δt exactly.
func PropagateRK4(R0, V0 Vector3, Δt, step, μ float64) (R, V Vector3, err error) {
	if !(step > 0) || !(Δt > 0) {
		err = errors.New("time of flight and step must be positive")
		return
	}
	steps := uint64(math.Ceil(Δt / step))
	b := &twoBody{μ: μ, state: append(R0.Slice(), V0.Slice()...), steps: steps}
	rk, err := integrator.NewRK4(0, Δt/float64(steps), b)
	if err != nil {
		return
	}
	rk.Solve()
	return NewVector3(b.state[:3]), NewVector3(b.state[3:]), nil
}
