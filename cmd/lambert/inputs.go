package main

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/ChristopherRabotin/lambert"
	"github.com/soniakeys/meeus/v3/julian"
)

const moonDistance = 384400 // km

// scenario is a preset transfer around the Earth.
type scenario struct {
	description string
	R1, R2      lambert.Vector3
	tof         float64 // seconds
}

// ten degrees of the way along a circle of radius r.
func tenDegrees(r float64) lambert.Vector3 {
	θ := lambert.Deg2rad(10)
	return lambert.Vector3{X: r * math.Cos(θ), Y: r * math.Sin(θ)}
}

var scenarios = map[string]scenario{
	"leo": {
		description: "Earth surface to a 400 km LEO",
		R1:          lambert.Vector3{X: lambert.Earth.Radius},
		R2:          tenDegrees(lambert.Earth.Radius + 400),
		tof:         1000,
	},
	"geo": {
		description: "400 km LEO to GEO",
		R1:          lambert.Vector3{X: lambert.Earth.Radius + 400},
		R2:          tenDegrees(lambert.Earth.Radius + 35786),
		tof:         5 * 3600,
	},
	"moon": {
		description: "Earth surface to the Moon's orbit",
		R1:          lambert.Vector3{X: lambert.Earth.Radius},
		R2:          tenDegrees(moonDistance),
		tof:         300000,
	},
}

// scenarioNames returns the sorted names of the preset transfers.
func scenarioNames() []string {
	names := make([]string, 0, len(scenarios))
	for name := range scenarios {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// lookupScenario returns the preset transfer of that name.
func lookupScenario(name string) (scenario, error) {
	sc, ok := scenarios[strings.ToLower(name)]
	if !ok {
		return sc, fmt.Errorf("unknown scenario '%s' (expected one of %s)", name, strings.Join(scenarioNames(), ", "))
	}
	return sc, nil
}

// timeOfFlight returns the time of flight in seconds, from the Julian dates if they are set.
func timeOfFlight(tof, departJD, arriveJD float64) (float64, error) {
	if departJD == 0 && arriveJD == 0 {
		return tof, nil
	}
	if departJD == 0 || arriveJD == 0 {
		return 0, errors.New("-depart and -arrive must be set together")
	}
	if arriveJD <= departJD {
		return 0, fmt.Errorf("arrival (JD %f) must be after departure (JD %f)", arriveJD, departJD)
	}
	return julian.JDToTime(arriveJD).Sub(julian.JDToTime(departJD)).Seconds(), nil
}
