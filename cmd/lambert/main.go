package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/ChristopherRabotin/lambert"
	kitlog "github.com/go-kit/log"
)

// NOTE: This tool solves a single Lambert problem and prints the departure and arrival velocities.

var (
	r1Str, r2Str   string
	tof            float64
	departJD       float64
	arriveJD       float64
	retrograde     bool
	scenarioName   string
	bodyName       string
	confDir        string
	debug          bool
	verify         bool
	verifyStepSize float64
)

func init() {
	// Read flags
	flag.StringVar(&r1Str, "r1", "7000,0,0", "initial position vector x,y,z (km)")
	flag.StringVar(&r2Str, "r2", "0,7000,0", "final position vector x,y,z (km)")
	flag.Float64Var(&tof, "tof", 1800, "time of flight (s), ignored if -depart and -arrive are set")
	flag.Float64Var(&departJD, "depart", 0, "departure Julian date")
	flag.Float64Var(&arriveJD, "arrive", 0, "arrival Julian date")
	flag.BoolVar(&retrograde, "retrograde", false, "retrograde transfer")
	flag.StringVar(&scenarioName, "scenario", "", "preset Earth transfer, one of "+strings.Join(scenarioNames(), ", ")+" (overrides -r1, -r2 and -tof)")
	flag.StringVar(&bodyName, "body", "", "central body (overrides the configuration)")
	flag.StringVar(&confDir, "config", "", "directory of conf.toml (defaults to $"+lambert.ConfigEnv+")")
	flag.BoolVar(&debug, "debug", false, "log the iterations")
	flag.BoolVar(&verify, "verify", false, "propagate the solution and report the errors")
	flag.Float64Var(&verifyStepSize, "step", 1, "RK4 step size (s) for -verify")
}

func main() {
	flag.Parse()
	settings, err := lambert.LoadConfig(confDir)
	if err != nil {
		log.Fatalf("[error] %s", err)
	}
	if bodyName != "" {
		if settings.Body, err = lambert.CelestialObjectFromString(bodyName); err != nil {
			log.Fatalf("[error] %s", err)
		}
	}
	if debug || settings.Debug {
		logger := kitlog.NewLogfmtLogger(kitlog.NewSyncWriter(os.Stdout))
		settings.Conf.Observer = lambert.NewLogObserver(kitlog.With(logger, "body", settings.Body.Name))
	}
	R1, err := lambert.ParseVector3(r1Str)
	if err != nil {
		log.Fatalf("[error] -r1: %s", err)
	}
	R2, err := lambert.ParseVector3(r2Str)
	if err != nil {
		log.Fatalf("[error] -r2: %s", err)
	}
	if tof, err = timeOfFlight(tof, departJD, arriveJD); err != nil {
		log.Fatalf("[error] %s", err)
	}
	if scenarioName != "" {
		sc, err := lookupScenario(scenarioName)
		if err != nil {
			log.Fatalf("[error] %s", err)
		}
		fmt.Printf("%s\n", sc.description)
		settings.Body = lambert.Earth
		R1, R2, tof = sc.R1, sc.R2, sc.tof
	}
	solver, err := settings.Solver()
	if err != nil {
		log.Fatalf("[error] %s", err)
	}
	sol, err := solver.SolveDetailed(R1, R2, tof, !retrograde)
	if err != nil {
		fmt.Printf("r1 = %s km\nr2 = %s km\ntof = %g s\nprograde = %t\n", R1, R2, tof, !retrograde)
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
	fmt.Printf("v1 = %s km/s\nv2 = %s km/s\n", sol.V1, sol.V2)
	fmt.Printf("Δθ = %.6g deg\tz = %.6g\t(%d iterations)\n", lambert.Rad2deg(sol.Δθ), sol.Z, sol.Iterations)
	if !verify {
		return
	}
	μ := solver.GM()
	orbitI := lambert.NewOrbitFromRV(R1, sol.V1, settings.Body)
	orbitF := lambert.NewOrbitFromRV(R2, sol.V2, settings.Body)
	fmt.Printf("transfer orbit: %s\n", orbitI)
	if orbitI.Elliptical() {
		fmt.Printf("transfer period: %.1f s\n", orbitI.Period())
	}
	fmt.Printf("energy difference: %.2e km^2/s^2\n", orbitI.Energyξ()-orbitF.Energyξ())
	R, V, err := lambert.Propagate(R1, sol.V1, tof, μ)
	if err != nil {
		log.Fatalf("[error] %s", err)
	}
	fmt.Printf("Kepler: position error %.3e km\tvelocity error %.3e km/s\n", R.Sub(R2).Norm(), V.Sub(sol.V2).Norm())
	R, V, err = lambert.PropagateRK4(R1, sol.V1, tof, verifyStepSize, μ)
	if err != nil {
		log.Fatalf("[error] %s", err)
	}
	fmt.Printf("RK4: position error %.3e km\tvelocity error %.3e km/s\n", R.Sub(R2).Norm(), V.Sub(sol.V2).Norm())
}
