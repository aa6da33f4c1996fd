// Package viz renders trajectories and summaries for the terminal.
package viz

import (
	"fmt"
	"strings"

	"github.com/guptarohit/asciigraph"

	"github.com/tfunk1030/Test-yardage-sub000/internal/physics"
)

// HeightSeries resamples the trajectory's height profile (meters) down
// to n points so the plot width stays readable.
func HeightSeries(trajectory []physics.TrajectoryPoint, n int) []float64 {
	if n < 2 || len(trajectory) == 0 {
		return nil
	}
	if len(trajectory) < n {
		n = len(trajectory)
	}

	series := make([]float64, n)
	for i := 0; i < n; i++ {
		idx := i * (len(trajectory) - 1) / (n - 1)
		y := trajectory[idx].Position.Y
		if y < 0 {
			y = 0
		}
		series[i] = y
	}
	return series
}

// FlightPlot draws the height profile with a carry caption.
func FlightPlot(trajectory []physics.TrajectoryPoint, result physics.SimulationResult) string {
	series := HeightSeries(trajectory, 80)
	if series == nil {
		return ""
	}
	caption := fmt.Sprintf("height (m) — carry %.0f yd, apex %.0f m, %.1f s",
		result.CarryDistance, result.MaxHeight, result.FlightTime)
	return asciigraph.Plot(series,
		asciigraph.Height(12),
		asciigraph.Width(80),
		asciigraph.Caption(caption),
	)
}

// CarryCurve plots carry distance against a swept variable.
func CarryCurve(values, carries []float64, label string) string {
	if len(carries) == 0 {
		return ""
	}
	caption := fmt.Sprintf("carry (yd) vs %s [%g .. %g]", label, values[0], values[len(values)-1])
	return asciigraph.Plot(carries,
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.Caption(caption),
	)
}

// Summary formats one result as a styled block.
func Summary(club string, result physics.SimulationResult) string {
	var b strings.Builder

	b.WriteString(TitleStyle.Render(club) + "\n")

	rows := []struct {
		label string
		value string
	}{
		{"carry", fmt.Sprintf("%.1f yd", result.CarryDistance)},
		{"lateral", fmt.Sprintf("%+.1f yd", result.LateralDistance)},
		{"apex", fmt.Sprintf("%.1f m", result.MaxHeight)},
		{"flight time", fmt.Sprintf("%.2f s", result.FlightTime)},
		{"impact speed", fmt.Sprintf("%.1f m/s", result.FinalVelocity)},
		{"impact angle", fmt.Sprintf("%.1f°", result.ImpactAngle)},
	}
	for _, r := range rows {
		b.WriteString(fmt.Sprintf("  %s %s\n", LabelStyle.Render(fmt.Sprintf("%-13s", r.label)), ValueStyle.Render(r.value)))
	}
	return b.String()
}
