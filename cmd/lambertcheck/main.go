package main

import (
	"flag"
	"log"
	"os"

	"github.com/ChristopherRabotin/lambert"
	"github.com/prometheus/client_golang/prometheus"
)

// NOTE: This tool checks the solver against a YAML case table and exits with a failure status if any case fails.

var (
	tablePath   string
	tolerance   float64
	confDir     string
	metricsPath string
)

func init() {
	// Read flags
	flag.StringVar(&tablePath, "cases", "testdata/cases.yaml", "YAML case table")
	flag.Float64Var(&tolerance, "tol", 1e-3, "componentwise velocity tolerance (km/s)")
	flag.StringVar(&confDir, "config", "", "directory of conf.toml (defaults to $"+lambert.ConfigEnv+")")
	flag.StringVar(&metricsPath, "metrics", "", "write the solver metrics to this Prometheus text file")
}

func main() {
	flag.Parse()
	table, err := ReadTableFile(tablePath)
	if err != nil {
		log.Fatalf("[error] %s", err)
	}
	settings, err := lambert.LoadConfig(confDir)
	if err != nil {
		log.Fatalf("[error] %s", err)
	}
	if settings.Body, err = table.CentralBody(); err != nil {
		log.Fatalf("[error] %s", err)
	}
	reg := prometheus.NewRegistry()
	if metricsPath != "" {
		settings.Conf.ObserveEvery = 1
		settings.Conf.Observer = lambert.NewMetricsObserver(reg)
	}
	solver, err := settings.Solver()
	if err != nil {
		log.Fatalf("[error] %s", err)
	}
	log.Printf("[info] %d cases around %s (μ=%g km^3/s^2)", len(table.Cases), settings.Body.Name, solver.GM())
	_, failed := check(solver, table.Cases, tolerance, os.Stdout)
	if metricsPath != "" {
		if err := prometheus.WriteToTextfile(metricsPath, reg); err != nil {
			log.Fatalf("[error] %s", err)
		}
	}
	if failed > 0 {
		os.Exit(1)
	}
}
