package weather

import (
	"math"
	"math/rand/v2"
	"time"
)

// Reading is one generated weather observation. Nothing is stored; every
// request produces a fresh reading.
type Reading struct {
	City        string  `json:"city"`
	Temperature float64 `json:"temperature"`
	Conditions  string  `json:"conditions"`
	Humidity    float64 `json:"humidity"`
	Timestamp   float64 `json:"timestamp"` // epoch seconds, fractional
}

// Generate produces a random reading within the city's configured domain.
// Temperature and humidity are rounded to one decimal. Safe for concurrent
// use; math/rand/v2 package-level functions are goroutine-safe.
func Generate(cfg CityConfig) Reading {
	return Reading{
		City:        cfg.Name,
		Temperature: round1(uniform(cfg.TempMin, cfg.TempMax)),
		Conditions:  cfg.Conditions[rand.IntN(len(cfg.Conditions))],
		Humidity:    round1(uniform(cfg.HumidityMin, cfg.HumidityMax)),
		Timestamp:   float64(time.Now().UnixNano()) / float64(time.Second),
	}
}

func uniform(min, max float64) float64 {
	return min + rand.Float64()*(max-min)
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
