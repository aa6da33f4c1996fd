// Package physics simulates the flight of a struck golf ball: carry,
// apex, flight time and landing angle as a function of launch
// parameters and ambient weather.
//
// Every entry point is a pure function of its arguments. There is no
// global state, no I/O and no locking, so concurrent simulations need
// no coordination: a parameter sweep can run one call per goroutine.
package physics

// Simulate integrates a shot from launch to landing and summarizes it.
//
// Both inputs are validated first; an out-of-range field returns a
// *ValidationError and no trajectory. A run that fails to land inside
// the time cutoff returns the partial trajectory and a
// *ComputationError: that indicates a defect, not a transient, and
// must not be retried.
func Simulate(launch LaunchConditions, env EnvironmentalConditions, opts Options) ([]TrajectoryPoint, SimulationResult, error) {
	if err := launch.Validate(); err != nil {
		return nil, SimulationResult{}, err
	}
	if err := env.Validate(); err != nil {
		return nil, SimulationResult{}, err
	}

	opts = opts.withDefaults()

	trajectory, final := integrate(launch, env, opts)
	if final != Landed {
		return trajectory, SimulationResult{}, &ComputationError{
			Launch:  launch,
			Env:     env,
			MaxTime: opts.MaxTime,
		}
	}

	return trajectory, summarize(trajectory, env.AltitudeFactor()), nil
}
