package physics

// Unit conversions. The integrator works in SI; inputs and summary
// figures use the units golfers actually quote.
const (
	MetersPerYard = 0.9144
	MPHToMS       = 0.44704
	FeetPerMeter  = 3.28084
)

// YardsFromMeters converts a distance in meters to yards.
func YardsFromMeters(m float64) float64 { return m / MetersPerYard }

// MSFromMPH converts a speed in mph to m/s.
func MSFromMPH(mph float64) float64 { return mph * MPHToMS }
