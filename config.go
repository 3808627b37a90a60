package landing

import (
	"fmt"

	"github.com/spf13/viper"
)

// Default simulation settings, used when a scenario file leaves them out.
const (
	DefaultTimeStep        = 0.05 // seconds
	DefaultSafetyTimeLimit = 1000 // seconds
)

// ScenarioConfig holds the constants of one optimization run: the vehicle,
// the initial conditions and the integration settings.
type ScenarioConfig struct {
	InitialHeight   float64       // meters
	InitialVelocity float64       // m/s, negative means descending
	VehicleMass     float64       // kg
	MaxThrust       float64       // Newtons
	TimeStep        float64       // seconds
	SafetyTimeLimit float64       // seconds, abort threshold for divergent runs
	Body            CelestialBody // body landed onto
}

// Validate returns a descriptive error if the configuration cannot be
// simulated. A zero MaxThrust is valid: it means the vehicle has no active
// propulsion and yields an unpowered outcome.
func (cfg ScenarioConfig) Validate() error {
	if cfg.VehicleMass <= 0 {
		return fmt.Errorf("vehicle mass must be positive, got %f kg", cfg.VehicleMass)
	}
	if cfg.MaxThrust < 0 {
		return fmt.Errorf("max thrust must not be negative, got %f N", cfg.MaxThrust)
	}
	if cfg.TimeStep <= 0 {
		return fmt.Errorf("time step must be positive, got %f s", cfg.TimeStep)
	}
	if cfg.SafetyTimeLimit <= 0 {
		return fmt.Errorf("safety time limit must be positive, got %f s", cfg.SafetyTimeLimit)
	}
	if cfg.Body.Mass <= 0 || cfg.Body.Radius <= 0 {
		return fmt.Errorf("celestial body `%s` needs a positive mass and radius", cfg.Body.Name)
	}
	return nil
}

// LoadScenario reads a scenario TOML file. The file must carry a [scenario]
// table (initial_height, initial_velocity, mass, max_thrust and optionally
// time_step, safety_time_limit) and a [body] table naming a known body or
// providing mass and radius directly. Further tables, e.g. the grid or
// genetic settings of the cmds, stay readable through viper afterwards.
func LoadScenario(path string) (ScenarioConfig, error) {
	viper.SetConfigFile(path)
	if err := viper.ReadInConfig(); err != nil {
		return ScenarioConfig{}, fmt.Errorf("could not read scenario `%s`: %s", path, err)
	}
	cfg := ScenarioConfig{
		InitialHeight:   viper.GetFloat64("scenario.initial_height"),
		InitialVelocity: viper.GetFloat64("scenario.initial_velocity"),
		VehicleMass:     viper.GetFloat64("scenario.mass"),
		MaxThrust:       viper.GetFloat64("scenario.max_thrust"),
		TimeStep:        viper.GetFloat64("scenario.time_step"),
		SafetyTimeLimit: viper.GetFloat64("scenario.safety_time_limit"),
	}
	if cfg.TimeStep == 0 {
		cfg.TimeStep = DefaultTimeStep
	}
	if cfg.SafetyTimeLimit == 0 {
		cfg.SafetyTimeLimit = DefaultSafetyTimeLimit
	}
	if name := viper.GetString("body.name"); name != "" {
		body, err := CelestialBodyFromString(name)
		if err != nil {
			return ScenarioConfig{}, err
		}
		cfg.Body = body
	} else {
		cfg.Body = CelestialBody{
			Name:   "custom",
			Mass:   viper.GetFloat64("body.mass"),
			Radius: viper.GetFloat64("body.radius"),
		}
	}
	if err := cfg.Validate(); err != nil {
		return ScenarioConfig{}, err
	}
	return cfg, nil
}
