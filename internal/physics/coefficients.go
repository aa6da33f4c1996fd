package physics

import "math"

// Ball and air properties (SI units).
const (
	BallMass           = 0.04593 // kg, USGA conforming ball
	BallDiameter       = 0.0427  // m
	AirViscosity       = 1.81e-5 // kg/(m·s)
	SeaLevelAirDensity = 1.225   // kg/m³
	Gravity            = 9.81    // m/s²
)

// Standard atmospheric reference conditions.
const (
	StandardTemperatureF = 59.0
	StandardPressureInHg = 29.92
	StandardHumidityPct  = 50.0
	rankineOffset        = 459.67
)

// Coefficients is the canonical aerodynamic constant set. The source
// material shipped several mutually incompatible sets; this one is
// calibrated so a PGA-average driver strike (74.8 m/s, 10.9°, 2686 rpm)
// carries 260–290 yards in a standard calm atmosphere. Keeping it a
// value type lets callers recalibrate without touching the integrator.
type Coefficients struct {
	// Drag: laminar plateau below ReLaminar, linear blend down to the
	// turbulent plateau at ReTurbulent, plus an additive spin penalty
	// of SpinDragPer3000 per 3000 rpm.
	DragLaminar     float64
	DragTurbulent   float64
	ReLaminar       float64
	ReTurbulent     float64
	SpinDragPer3000 float64

	// Lift: LiftBase plus LiftLogGain·log10(Re/ReLiftKnee) above the
	// knee, scaled by min(1, spin/LiftSpinSaturation).
	LiftBase           float64
	LiftLogGain        float64
	ReLiftKnee         float64
	LiftSpinSaturation float64

	// Magnus: MagnusGain times the spin parameter ωd/2v.
	MagnusGain float64

	// Wind shear: wind at height h is surface wind times
	// 1 + WindShearGain·ln(1+h).
	WindShearGain float64
}

// DefaultCoefficients returns the calibrated constant set.
func DefaultCoefficients() Coefficients {
	return Coefficients{
		DragLaminar:        0.22,
		DragTurbulent:      0.19,
		ReLaminar:          40000,
		ReTurbulent:        400000,
		SpinDragPer3000:    0.01,
		LiftBase:           0.19,
		LiftLogGain:        0.05,
		ReLiftKnee:         100000,
		LiftSpinSaturation: 5000,
		MagnusGain:         0.24,
		WindShearGain:      0.15,
	}
}

// CrossSectionalArea returns the ball's frontal area in m².
func CrossSectionalArea() float64 {
	r := BallDiameter / 2
	return math.Pi * r * r
}
