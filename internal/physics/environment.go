package physics

import "math"

// EnvironmentalConditions describes the weather at the tee. Units match
// what US weather feeds report: °F, inHg, percent, feet, mph. Wind
// direction follows the headwind convention: 0° blows straight at the
// golfer, 180° is a pure tailwind, 90°/270° are crosswinds of opposite
// lateral sign.
type EnvironmentalConditions struct {
	Temperature   float64 `yaml:"temperature"`    // °F
	Pressure      float64 `yaml:"pressure"`       // inHg
	Humidity      float64 `yaml:"humidity"`       // %
	Altitude      float64 `yaml:"altitude"`       // ft
	WindSpeed     float64 `yaml:"wind_speed"`     // mph
	WindDirection float64 `yaml:"wind_direction"` // deg, 0 = headwind
}

// StandardConditions returns the reference atmosphere: every
// environmental multiplier equals exactly 1.0 under it.
func StandardConditions() EnvironmentalConditions {
	return EnvironmentalConditions{
		Temperature: StandardTemperatureF,
		Pressure:    StandardPressureInHg,
		Humidity:    StandardHumidityPct,
	}
}

// Documented domains for each environmental input.
const (
	MinTemperatureF = -40.0
	MaxTemperatureF = 120.0
	MinPressureInHg = 25.0
	MaxPressureInHg = 32.0
	MinHumidityPct  = 0.0
	MaxHumidityPct  = 100.0
	MinAltitudeFt   = 0.0
	MaxAltitudeFt   = 20000.0
	MinWindSpeedMPH = 0.0
	MaxWindSpeedMPH = 50.0
)

// Validate rejects any field outside its documented domain. The first
// violation wins; nothing is clamped.
func (c EnvironmentalConditions) Validate() error {
	checks := []struct {
		field    string
		value    float64
		min, max float64
	}{
		{"temperature", c.Temperature, MinTemperatureF, MaxTemperatureF},
		{"pressure", c.Pressure, MinPressureInHg, MaxPressureInHg},
		{"humidity", c.Humidity, MinHumidityPct, MaxHumidityPct},
		{"altitude", c.Altitude, MinAltitudeFt, MaxAltitudeFt},
		{"wind_speed", c.WindSpeed, MinWindSpeedMPH, MaxWindSpeedMPH},
	}
	for _, ck := range checks {
		if math.IsNaN(ck.value) || ck.value < ck.min || ck.value > ck.max {
			return &ValidationError{Field: ck.field, Value: ck.value, Min: ck.min, Max: ck.max}
		}
	}
	return nil
}

// DensityRatio converts temperature, pressure and humidity into the air
// density divided by the sea-level standard. Exactly 1.0 at standard
// conditions; decreasing in temperature, increasing in pressure. Humid
// air is lighter than dry air, hence the small negative humidity slope.
func (c EnvironmentalConditions) DensityRatio() float64 {
	pressureRatio := c.Pressure / StandardPressureInHg
	temperatureRatio := rankine(StandardTemperatureF) / rankine(c.Temperature)
	humidityFactor := 1 - (c.Humidity-StandardHumidityPct)/100*0.008
	return math.Pow(pressureRatio, 0.45) * math.Sqrt(temperatureRatio) * humidityFactor
}

// rankine converts °F to °R. Both sides of the temperature ratio must
// go through this same runtime addition: folding one side at constant
// precision shifts the ratio off 1.0 by an ulp at standard conditions.
func rankine(f float64) float64 {
	return f + rankineOffset
}

// AirDensity returns the absolute air density in kg/m³.
func (c EnvironmentalConditions) AirDensity() float64 {
	return SeaLevelAirDensity * c.DensityRatio()
}

// AltitudeFactor is the multiplicative carry-distance scalar for the
// course elevation. Exactly 1.0 at sea level, strictly increasing, with
// a progressive band above 2000/4000/6000 ft and an exponential taper
// that keeps extreme elevations from running away. Denver (5280 ft)
// evaluates to about 1.102.
func (c EnvironmentalConditions) AltitudeFactor() float64 {
	return altitudeFactor(c.Altitude)
}

func altitudeFactor(altitudeFt float64) float64 {
	base := math.Log(altitudeFt/1000+1) * 0.045

	band := 0.0
	if altitudeFt > 2000 {
		band += (altitudeFt - 2000) / 120000
	}
	if altitudeFt > 4000 {
		band += (altitudeFt - 4000) / 110000
	}
	if altitudeFt > 6000 {
		band += (altitudeFt - 6000) / 100000
	}

	return 1 + (base+band)*math.Exp(-altitudeFt/30000)
}

// WindComponents resolves the wind into a headwind component (positive
// opposes the shot) and a crosswind component (positive pushes the ball
// toward positive Z), both in mph.
func (c EnvironmentalConditions) WindComponents() (headwind, crosswind float64) {
	rad := c.WindDirection * math.Pi / 180
	return c.WindSpeed * math.Cos(rad), c.WindSpeed * math.Sin(rad)
}
