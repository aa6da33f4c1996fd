package physics

import (
	"errors"
	"fmt"
)

// Sentinel errors for errors.Is checks.
var (
	// ErrOutOfRange indicates an input outside its documented domain.
	ErrOutOfRange = errors.New("physics: input out of valid range")

	// ErrNotConverged indicates the integrator hit the time cutoff
	// before the ball landed. This is a defect in the inputs or the
	// force model, never a transient condition; callers must not retry.
	ErrNotConverged = errors.New("physics: simulation did not reach landing")
)

// ValidationError reports which field violated which bound. Raised
// before any ball state is constructed; nothing is clamped.
type ValidationError struct {
	Field string
	Value float64
	Min   float64
	Max   float64
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("physics: %s = %g outside [%g, %g]", e.Field, e.Value, e.Min, e.Max)
}

func (e *ValidationError) Unwrap() error { return ErrOutOfRange }

// ComputationError carries the full input set so a non-converging run
// can be reproduced and diagnosed.
type ComputationError struct {
	Launch  LaunchConditions
	Env     EnvironmentalConditions
	MaxTime float64
}

func (e *ComputationError) Error() string {
	return fmt.Sprintf(
		"physics: ball still airborne after %.1fs (speed=%.2f m/s angle=%.2f° spin=%.0f rpm temp=%.1f°F pressure=%.2f inHg humidity=%.0f%% altitude=%.0f ft wind=%.1f mph @ %.0f°)",
		e.MaxTime,
		e.Launch.BallSpeed, e.Launch.LaunchAngle, e.Launch.SpinRate,
		e.Env.Temperature, e.Env.Pressure, e.Env.Humidity,
		e.Env.Altitude, e.Env.WindSpeed, e.Env.WindDirection,
	)
}

func (e *ComputationError) Unwrap() error { return ErrNotConverged }
