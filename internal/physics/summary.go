package physics

import "math"

// SimulationResult is the scalar summary of a finished trajectory.
type SimulationResult struct {
	CarryDistance   float64 // yards, altitude-adjusted
	LateralDistance float64 // yards, positive right of the target line
	MaxHeight       float64 // meters
	FlightTime      float64 // seconds
	FinalVelocity   float64 // m/s at impact
	ImpactAngle     float64 // degrees below horizontal
}

// summarize derives the result from the trajectory in one scan. No
// forces are recomputed; only the recorded points matter. The altitude
// factor scales horizontal carry but not apex height or timing.
func summarize(trajectory []TrajectoryPoint, altitudeFactor float64) SimulationResult {
	last := trajectory[len(trajectory)-1]

	maxHeight := 0.0
	for _, p := range trajectory {
		if p.Position.Y > maxHeight {
			maxHeight = p.Position.Y
		}
	}

	v := last.Velocity
	return SimulationResult{
		CarryDistance:   YardsFromMeters(last.Position.X) * altitudeFactor,
		LateralDistance: YardsFromMeters(last.Position.Z) * altitudeFactor,
		MaxHeight:       maxHeight,
		FlightTime:      last.Time,
		FinalVelocity:   v.Magnitude(),
		ImpactAngle:     math.Atan2(-v.Y, v.X) * 180 / math.Pi,
	}
}
