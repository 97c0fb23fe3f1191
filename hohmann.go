package lambert

import (
	"math"
)

// Hohmann computes an Hohmann transfer between two coplanar circular orbits of radii rI and rF.
// It returns the departure and arrival velocities on the transfer orbit, and the time of flight in seconds.
// To get the maneuvers:
// ΔvInit = vDeparture - vI
// ΔvFinal = vArrival - vF
func Hohmann(rI, rF float64, body CelestialObject) (vDeparture, vArrival, tof float64) {
	aTransfer := 0.5 * (rI + rF)
	vDeparture = math.Sqrt((2 * body.μ / rI) - (body.μ / aTransfer))
	vArrival = math.Sqrt((2 * body.μ / rF) - (body.μ / aTransfer))
	tof = math.Pi * math.Sqrt(math.Pow(aTransfer, 3)/body.μ)
	return
}
