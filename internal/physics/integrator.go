package physics

// BallState is the mutable state the integrator advances. It lives for
// exactly one simulation call and is never shared.
type BallState struct {
	Position Vec3
	Velocity Vec3
	Time     float64
}

// TrajectoryPoint is an immutable snapshot appended once per step. The
// terminal point is the first one below ground level, unclamped, so the
// crossing is preserved for the summarizer.
type TrajectoryPoint struct {
	Time     float64
	Position Vec3
	Velocity Vec3
}

// FlightState is the integrator's terminal condition.
type FlightState int

const (
	Flying FlightState = iota
	Landed
	Aborted
)

func (s FlightState) String() string {
	switch s {
	case Flying:
		return "flying"
	case Landed:
		return "landed"
	case Aborted:
		return "aborted"
	}
	return "unknown"
}

// Options tunes the integration without changing the physics.
type Options struct {
	// Dt is the fixed timestep in seconds.
	Dt float64
	// MaxTime is the safety cutoff in seconds. Every input inside the
	// documented validation ranges lands well before the default; the
	// worst ballooning flight (max speed and spin into a 50 mph
	// headwind in dense cold air) stays airborne about 29 s.
	MaxTime float64
	// Coefficients overrides the calibrated aerodynamic constant set.
	Coefficients *Coefficients
}

const (
	DefaultDt      = 0.001
	DefaultMaxTime = 45.0
)

func (o Options) withDefaults() Options {
	if o.Dt <= 0 {
		o.Dt = DefaultDt
	}
	if o.MaxTime <= 0 {
		o.MaxTime = DefaultMaxTime
	}
	if o.Coefficients == nil {
		c := DefaultCoefficients()
		o.Coefficients = &c
	}
	return o
}

// integrate advances the ball from launch until it crosses the ground
// plane or the time cutoff hits. Semi-implicit Euler: the velocity
// update uses the current force, the position update uses the updated
// velocity.
func integrate(launch LaunchConditions, env EnvironmentalConditions, opts Options) ([]TrajectoryPoint, FlightState) {
	coeff := *opts.Coefficients
	dt := opts.Dt

	airDensity := env.AirDensity()
	headwind, crosswind := env.WindComponents()
	// Headwind blows against the shot, so its velocity vector points
	// in -X. Crosswind blows toward +Z.
	surfaceWind := Vec3{X: -MSFromMPH(headwind), Z: MSFromMPH(crosswind)}

	state := BallState{Velocity: launch.InitialVelocity()}

	capacity := int(opts.MaxTime/dt) + 1
	if capacity > 64*1024 {
		capacity = 64 * 1024
	}
	trajectory := make([]TrajectoryPoint, 0, capacity)
	trajectory = append(trajectory, TrajectoryPoint{
		Time:     state.Time,
		Position: state.Position,
		Velocity: state.Velocity,
	})

	for state.Time < opts.MaxTime {
		wind := surfaceWind.Scale(coeff.WindAtHeight(state.Position.Y))
		relative := state.Velocity.Sub(wind)

		forces := coeff.ComputeForces(relative, launch.SpinRate, airDensity)
		total := forces.Total().Add(Vec3{Y: -BallMass * Gravity})

		state.Velocity = state.Velocity.Add(total.Scale(dt / BallMass))
		state.Position = state.Position.Add(state.Velocity.Scale(dt))
		state.Time += dt

		trajectory = append(trajectory, TrajectoryPoint{
			Time:     state.Time,
			Position: state.Position,
			Velocity: state.Velocity,
		})

		if state.Position.Y < 0 {
			return trajectory, Landed
		}
	}

	return trajectory, Aborted
}
