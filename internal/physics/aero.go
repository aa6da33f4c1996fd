package physics

import "math"

// AerodynamicForces is the per-step force triple in newtons. It is
// recomputed every integration step and never outlives it.
type AerodynamicForces struct {
	Drag   Vec3
	Lift   Vec3
	Magnus Vec3
}

// Total sums the three aerodynamic contributions.
func (f AerodynamicForces) Total() Vec3 {
	return f.Drag.Add(f.Lift).Add(f.Magnus)
}

// backspinAxis is the spin axis of a pure backspin strike: horizontal,
// perpendicular to the target line. Its cross product with the velocity
// direction gives the Magnus force direction.
var backspinAxis = Vec3{Z: 1}

// ReynoldsNumber characterizes the flow regime around the ball for the
// given airspeed (m/s) and air density (kg/m³).
func ReynoldsNumber(speed, airDensity float64) float64 {
	return airDensity * speed * BallDiameter / AirViscosity
}

// DragCoefficient is piecewise in Reynolds number: a laminar plateau, a
// linear blend through the drag crisis, and a turbulent plateau, plus
// an additive spin penalty.
func (c Coefficients) DragCoefficient(re, spinRPM float64) float64 {
	var base float64
	switch {
	case re < c.ReLaminar:
		base = c.DragLaminar
	case re < c.ReTurbulent:
		frac := (re - c.ReLaminar) / (c.ReTurbulent - c.ReLaminar)
		base = c.DragLaminar + (c.DragTurbulent-c.DragLaminar)*frac
	default:
		base = c.DragTurbulent
	}
	return base + (spinRPM/3000)*c.SpinDragPer3000
}

// LiftCoefficient grows logarithmically with Reynolds number above the
// knee and saturates with spin.
func (c Coefficients) LiftCoefficient(re, spinRPM float64) float64 {
	base := c.LiftBase
	if re > c.ReLiftKnee {
		base += c.LiftLogGain * math.Log10(re/c.ReLiftKnee)
	}
	return base * math.Min(1, spinRPM/c.LiftSpinSaturation)
}

// MagnusCoefficient scales with the spin parameter ωd/2v.
func (c Coefficients) MagnusCoefficient(spinRPM, speed float64) float64 {
	if speed <= 0 {
		return 0
	}
	omega := spinRPM * 2 * math.Pi / 60
	spinParameter := omega * BallDiameter / (2 * speed)
	return c.MagnusGain * spinParameter
}

// WindAtHeight scales the surface wind up with height above the ground
// using a logarithmic shear profile. Height is in meters; the factor is
// dimensionless and 1.0 at ground level.
func (c Coefficients) WindAtHeight(heightM float64) float64 {
	if heightM <= 0 {
		return 1
	}
	return 1 + c.WindShearGain*math.Log1p(heightM)
}

// ComputeForces evaluates drag, lift and Magnus for one step. The
// velocity passed in must already be relative to the local wind; drag
// opposes it, lift acts vertically, and the Magnus force follows the
// backspin axis crossed with the airflow direction.
func (c Coefficients) ComputeForces(relativeVelocity Vec3, spinRPM, airDensity float64) AerodynamicForces {
	speed := relativeVelocity.Magnitude()
	if speed < 1e-9 {
		return AerodynamicForces{}
	}

	re := ReynoldsNumber(speed, airDensity)
	q := 0.5 * airDensity * speed * speed
	area := CrossSectionalArea()
	dir := relativeVelocity.Scale(1 / speed)

	return AerodynamicForces{
		Drag:   dir.Scale(-c.DragCoefficient(re, spinRPM) * q * area),
		Lift:   Vec3{Y: c.LiftCoefficient(re, spinRPM) * q * area},
		Magnus: backspinAxis.Cross(dir).Scale(c.MagnusCoefficient(spinRPM, speed) * q * area),
	}
}
