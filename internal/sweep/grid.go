package sweep

import "github.com/tfunk1030/Test-yardage-sub000/internal/physics"

// Grid expands ranges of weather variables into the cartesian product
// of environments. Empty axes keep the base value.
type Grid struct {
	Base           physics.EnvironmentalConditions
	WindSpeeds     []float64
	WindDirections []float64
	Altitudes      []float64
	Temperatures   []float64
}

// Expand builds every combination, varying the last axis fastest.
func (g Grid) Expand() []physics.EnvironmentalConditions {
	speeds := orBase(g.WindSpeeds, g.Base.WindSpeed)
	directions := orBase(g.WindDirections, g.Base.WindDirection)
	altitudes := orBase(g.Altitudes, g.Base.Altitude)
	temperatures := orBase(g.Temperatures, g.Base.Temperature)

	envs := make([]physics.EnvironmentalConditions, 0,
		len(speeds)*len(directions)*len(altitudes)*len(temperatures))

	for _, ws := range speeds {
		for _, wd := range directions {
			for _, alt := range altitudes {
				for _, temp := range temperatures {
					env := g.Base
					env.WindSpeed = ws
					env.WindDirection = wd
					env.Altitude = alt
					env.Temperature = temp
					envs = append(envs, env)
				}
			}
		}
	}
	return envs
}

// Steps builds an inclusive range for an axis.
func Steps(from, to, step float64) []float64 {
	if step <= 0 || to < from {
		return []float64{from}
	}
	var vals []float64
	for v := from; v <= to+step/2; v += step {
		vals = append(vals, v)
	}
	return vals
}

func orBase(axis []float64, base float64) []float64 {
	if len(axis) == 0 {
		return []float64{base}
	}
	return axis
}
