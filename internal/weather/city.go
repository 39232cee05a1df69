package weather

import "strings"

// CityConfig describes how readings are generated for one city: numeric
// ranges for temperature and humidity plus a discrete set of conditions.
// The table is immutable after startup.
type CityConfig struct {
	Name        string
	TempMin     float64
	TempMax     float64
	Conditions  []string
	HumidityMin float64
	HumidityMax float64
}

// Normalize converts a city path segment to its table key. Lookups are
// case-insensitive; keys are lowercase.
func Normalize(city string) string {
	return strings.ToLower(city)
}

// DefaultCities returns the built-in city table, keyed by lowercase
// identifier. Temperatures are Celsius, humidity is percent.
func DefaultCities() map[string]CityConfig {
	return map[string]CityConfig{
		"new_york": {
			Name:        "New York",
			TempMin:     0,
			TempMax:     35,
			Conditions:  []string{"Sunny", "Cloudy", "Rainy", "Snowy"},
			HumidityMin: 30,
			HumidityMax: 90,
		},
		"london": {
			Name:        "London",
			TempMin:     -5,
			TempMax:     25,
			Conditions:  []string{"Cloudy", "Rainy", "Foggy", "Clear"},
			HumidityMin: 40,
			HumidityMax: 95,
		},
		"tokyo": {
			Name:        "Tokyo",
			TempMin:     2,
			TempMax:     36,
			Conditions:  []string{"Sunny", "Cloudy", "Rainy", "Clear"},
			HumidityMin: 35,
			HumidityMax: 90,
		},
		"sydney": {
			Name:        "Sydney",
			TempMin:     8,
			TempMax:     40,
			Conditions:  []string{"Sunny", "Windy", "Rainy", "Clear"},
			HumidityMin: 25,
			HumidityMax: 85,
		},
	}
}
