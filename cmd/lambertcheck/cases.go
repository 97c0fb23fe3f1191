package main

import (
	"fmt"
	"io"
	"os"

	"github.com/ChristopherRabotin/lambert"
	"gopkg.in/yaml.v3"
)

// Case is one record of the case table.
type Case struct {
	Description string    `yaml:"description"`
	R1          []float64 `yaml:"r1"`
	R2          []float64 `yaml:"r2"`
	TOF         float64   `yaml:"tof"`
	Prograde    *bool     `yaml:"prograde"` // defaults to true
	V1          []float64 `yaml:"v1"`       // all zero or missing: no expectation
	V2          []float64 `yaml:"v2"`
}

// Table is a case table and the central body its cases are around.
type Table struct {
	Body  string  `yaml:"body"`
	Mu    float64 `yaml:"mu"`
	Cases []Case  `yaml:"cases"`
}

// vector converts an optional three component slice.
func vector(s []float64, name string) (lambert.Vector3, error) {
	if len(s) == 0 {
		return lambert.Vector3{}, nil
	}
	if len(s) != 3 {
		return lambert.Vector3{}, fmt.Errorf("%s must have three components", name)
	}
	return lambert.NewVector3(s), nil
}

// IsPrograde returns the requested direction of motion.
func (c Case) IsPrograde() bool {
	return c.Prograde == nil || *c.Prograde
}

// Vectors returns r1, r2, v1 and v2 of this case.
func (c Case) Vectors() (R1, R2, V1, V2 lambert.Vector3, err error) {
	if len(c.R1) != 3 || len(c.R2) != 3 {
		err = fmt.Errorf("case '%s': r1 and r2 must have three components", c.Description)
		return
	}
	R1, R2 = lambert.NewVector3(c.R1), lambert.NewVector3(c.R2)
	if V1, err = vector(c.V1, "v1"); err != nil {
		return
	}
	V2, err = vector(c.V2, "v2")
	return
}

// ReadTable decodes a YAML case table.
func ReadTable(r io.Reader) (Table, error) {
	var t Table
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&t); err != nil {
		return t, fmt.Errorf("could not decode case table: %w", err)
	}
	if len(t.Cases) == 0 {
		return t, fmt.Errorf("case table is empty")
	}
	return t, nil
}

// ReadTableFile decodes the YAML case table in path.
func ReadTableFile(path string) (Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return Table{}, err
	}
	defer f.Close()
	return ReadTable(f)
}

// CentralBody returns the central body of this table.
func (t Table) CentralBody() (lambert.CelestialObject, error) {
	name := t.Body
	if name == "" {
		name = lambert.Earth.Name
	}
	body, err := lambert.CelestialObjectFromString(name)
	if err != nil {
		return body, err
	}
	if t.Mu != 0 {
		body = lambert.NewCelestialObject(body.Name, body.Radius, t.Mu)
	}
	return body, nil
}
