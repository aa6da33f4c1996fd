package config

import "github.com/tfunk1030/Test-yardage-sub000/internal/physics"

// Presets are recognizable playing conditions for quick comparisons.
var Presets = map[string]physics.EnvironmentalConditions{
	"sea-level": {
		Temperature: 59, Pressure: 29.92, Humidity: 50,
	},
	"denver": {
		Temperature: 70, Pressure: 29.92, Humidity: 30, Altitude: 5280,
	},
	"mexico-city": {
		Temperature: 66, Pressure: 29.92, Humidity: 40, Altitude: 7350,
	},
	"links-gale": {
		Temperature: 55, Pressure: 29.70, Humidity: 80,
		WindSpeed: 25, WindDirection: 0,
	},
	"desert-summer": {
		Temperature: 105, Pressure: 29.85, Humidity: 10, Altitude: 1100,
	},
	"winter-morning": {
		Temperature: 34, Pressure: 30.20, Humidity: 65,
	},
	"tailwind-helper": {
		Temperature: 75, Pressure: 29.92, Humidity: 50,
		WindSpeed: 15, WindDirection: 180,
	},
}

// GetPreset returns the named preset, or false when it does not exist.
func GetPreset(name string) (physics.EnvironmentalConditions, bool) {
	env, ok := Presets[name]
	return env, ok
}

// ListPresets returns the preset names.
func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	return names
}
