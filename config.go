package lambert

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/viper"
)

// ConfigEnv is the environment variable holding the directory of conf.toml.
const ConfigEnv = "LAMBERT_CONFIG"

// Settings is the solver configuration read from conf.toml.
type Settings struct {
	Body   CelestialObject
	Conf   Config
	Debug  bool
	Source string // configuration file used, empty if none
}

// Solver returns a solver built from these settings.
func (s Settings) Solver() (*Solver, error) {
	return NewSolverFromBody(s.Body, s.Conf)
}

// LoadConfig reads conf.toml from dir, or from $LAMBERT_CONFIG if dir is empty.
// Without any configuration directory, the defaults around the Earth are returned.
//
//	[solver]
//	body = "Earth"
//	mu = 398600.4418 # overrides the body's
//	tolerance = 1e-8
//	max_iterations = 1000
//	damping = 0.5
//	max_step = 10.0
//	observe_every = 10
//
//	[log]
//	debug = false
func LoadConfig(dir string) (Settings, error) {
	if dir == "" {
		dir = os.Getenv(ConfigEnv)
	}
	v := viper.New()
	v.SetDefault("solver.body", Earth.Name)
	v.SetDefault("solver.tolerance", DefaultTolerance)
	v.SetDefault("solver.max_iterations", DefaultMaxIterations)
	v.SetDefault("solver.damping", DefaultDamping)
	v.SetDefault("solver.max_step", DefaultMaxStep)
	v.SetDefault("solver.divergence_bound", DefaultDivergenceBound)
	v.SetDefault("solver.observe_every", DefaultObserveEvery)
	v.SetDefault("log.debug", false)
	if dir != "" {
		v.SetConfigName("conf")
		v.AddConfigPath(dir)
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if errors.As(err, &notFound) {
				return Settings{}, fmt.Errorf("%s/conf.toml not found", dir)
			}
			return Settings{}, fmt.Errorf("could not read configuration in %s: %w", dir, err)
		}
	}
	body, err := CelestialObjectFromString(v.GetString("solver.body"))
	if err != nil {
		return Settings{}, err
	}
	if v.IsSet("solver.mu") {
		body = NewCelestialObject(body.Name, body.Radius, v.GetFloat64("solver.mu"))
	}
	if !(body.GM() > 0) {
		return Settings{}, fmt.Errorf("%w: solver.mu must be positive", ErrInvalidInput)
	}
	return Settings{
		Body: body,
		Conf: Config{
			Tolerance:       v.GetFloat64("solver.tolerance"),
			MaxIterations:   v.GetInt("solver.max_iterations"),
			Damping:         v.GetFloat64("solver.damping"),
			MaxStep:         v.GetFloat64("solver.max_step"),
			DivergenceBound: v.GetFloat64("solver.divergence_bound"),
			ObserveEvery:    v.GetInt("solver.observe_every"),
		},
		Debug:  v.GetBool("log.debug"),
		Source: v.ConfigFileUsed(),
	}, nil
}
