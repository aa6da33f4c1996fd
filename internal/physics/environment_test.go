package physics

import (
	"errors"
	"math"
	"testing"
)

func TestDensityRatioStandardConditions(t *testing.T) {
	ratio := StandardConditions().DensityRatio()
	if ratio != 1.0 {
		t.Errorf("expected exactly 1.0 at standard conditions, got %.17f", ratio)
	}

	// Same check through a value the compiler cannot constant-fold: the
	// temperature ratio must compare equal bits against itself.
	env := StandardConditions()
	env.Temperature = 58 + math.Sqrt(1)
	if ratio := env.DensityRatio(); ratio != 1.0 {
		t.Errorf("expected exactly 1.0 for runtime-built standard temperature, got %.17f", ratio)
	}
}

func TestDensityRatioMonotoneInTemperature(t *testing.T) {
	env := StandardConditions()
	prev := math.Inf(1)
	for temp := MinTemperatureF; temp <= MaxTemperatureF; temp += 10 {
		env.Temperature = temp
		ratio := env.DensityRatio()
		if ratio >= prev {
			t.Fatalf("density ratio not strictly decreasing at %.0f°F: %.6f >= %.6f", temp, ratio, prev)
		}
		prev = ratio
	}
}

func TestDensityRatioMonotoneInPressure(t *testing.T) {
	env := StandardConditions()
	prev := 0.0
	for p := MinPressureInHg; p <= MaxPressureInHg; p += 0.5 {
		env.Pressure = p
		ratio := env.DensityRatio()
		if ratio <= prev {
			t.Fatalf("density ratio not strictly increasing at %.2f inHg: %.6f <= %.6f", p, ratio, prev)
		}
		prev = ratio
	}
}

func TestDensityRatioHumidAirIsLighter(t *testing.T) {
	dry := StandardConditions()
	dry.Humidity = 0
	wet := StandardConditions()
	wet.Humidity = 100

	if wet.DensityRatio() >= dry.DensityRatio() {
		t.Errorf("humid air should be lighter: wet=%.6f dry=%.6f", wet.DensityRatio(), dry.DensityRatio())
	}
}

func TestAltitudeFactorSeaLevel(t *testing.T) {
	if f := altitudeFactor(0); f != 1.0 {
		t.Errorf("expected exactly 1.0 at sea level, got %.15f", f)
	}
}

func TestAltitudeFactorStrictlyIncreasing(t *testing.T) {
	prev := 0.0
	for alt := 0.0; alt <= MaxAltitudeFt; alt += 250 {
		f := altitudeFactor(alt)
		if f <= prev {
			t.Fatalf("altitude factor not strictly increasing at %.0f ft: %.6f <= %.6f", alt, f, prev)
		}
		prev = f
	}
}

func TestAltitudeFactorDenver(t *testing.T) {
	// Canonical constant set puts Denver at ~10.2% extra carry.
	const denver = 5280.0
	const expected = 1.102
	f := altitudeFactor(denver)
	if math.Abs(f-expected)/expected > 0.01 {
		t.Errorf("Denver factor %.4f not within 1%% of %.3f", f, expected)
	}
}

func TestWindComponents(t *testing.T) {
	tests := []struct {
		name      string
		direction float64
		headwind  float64
		crosswind float64
	}{
		{"headwind", 0, 10, 0},
		{"crosswind right", 90, 0, 10},
		{"tailwind", 180, -10, 0},
		{"crosswind left", 270, 0, -10},
	}

	for _, tt := range tests {
		env := StandardConditions()
		env.WindSpeed = 10
		env.WindDirection = tt.direction

		head, cross := env.WindComponents()
		if math.Abs(head-tt.headwind) > 1e-9 {
			t.Errorf("%s: headwind = %.6f, expected %.6f", tt.name, head, tt.headwind)
		}
		if math.Abs(cross-tt.crosswind) > 1e-9 {
			t.Errorf("%s: crosswind = %.6f, expected %.6f", tt.name, cross, tt.crosswind)
		}
	}
}

func TestValidateRejectsOutOfRange(t *testing.T) {
	tests := []struct {
		field  string
		mutate func(*EnvironmentalConditions)
	}{
		{"temperature", func(e *EnvironmentalConditions) { e.Temperature = 150 }},
		{"temperature", func(e *EnvironmentalConditions) { e.Temperature = -60 }},
		{"pressure", func(e *EnvironmentalConditions) { e.Pressure = 24 }},
		{"pressure", func(e *EnvironmentalConditions) { e.Pressure = 33 }},
		{"humidity", func(e *EnvironmentalConditions) { e.Humidity = 101 }},
		{"humidity", func(e *EnvironmentalConditions) { e.Humidity = -1 }},
		{"altitude", func(e *EnvironmentalConditions) { e.Altitude = 25000 }},
		{"altitude", func(e *EnvironmentalConditions) { e.Altitude = -10 }},
		{"wind_speed", func(e *EnvironmentalConditions) { e.WindSpeed = 51 }},
		{"wind_speed", func(e *EnvironmentalConditions) { e.WindSpeed = math.NaN() }},
	}

	for _, tt := range tests {
		env := StandardConditions()
		tt.mutate(&env)

		err := env.Validate()
		if err == nil {
			t.Errorf("expected validation error for %s", tt.field)
			continue
		}

		var verr *ValidationError
		if !errors.As(err, &verr) {
			t.Errorf("expected *ValidationError, got %T", err)
			continue
		}
		if verr.Field != tt.field {
			t.Errorf("expected field %q, got %q", tt.field, verr.Field)
		}
		if !errors.Is(err, ErrOutOfRange) {
			t.Errorf("%s: error does not wrap ErrOutOfRange", tt.field)
		}
	}
}

func TestValidateAcceptsBoundaries(t *testing.T) {
	env := EnvironmentalConditions{
		Temperature:   MinTemperatureF,
		Pressure:      MaxPressureInHg,
		Humidity:      MaxHumidityPct,
		Altitude:      MaxAltitudeFt,
		WindSpeed:     MaxWindSpeedMPH,
		WindDirection: 359,
	}
	if err := env.Validate(); err != nil {
		t.Errorf("boundary values should pass validation: %v", err)
	}
}
