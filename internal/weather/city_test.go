package weather

import (
	"strings"
	"testing"
)

// TestNormalize verifies case-insensitive lookups map to lowercase keys.
func TestNormalize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"london", "london"},
		{"London", "london"},
		{"LONDON", "london"},
		{"New_York", "new_york"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := Normalize(tt.in); got != tt.want {
			t.Errorf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

// TestDefaultCities_TableIsWellFormed verifies every entry has a lowercase
// key, a display name, non-inverted ranges, and a non-empty conditions set.
func TestDefaultCities_TableIsWellFormed(t *testing.T) {
	cities := DefaultCities()
	if len(cities) == 0 {
		t.Fatal("DefaultCities() returned empty table")
	}
	for key, cfg := range cities {
		if key != strings.ToLower(key) {
			t.Errorf("city key %q is not lowercase", key)
		}
		if cfg.Name == "" {
			t.Errorf("city %q has empty display name", key)
		}
		if cfg.TempMin > cfg.TempMax {
			t.Errorf("city %q has inverted temperature range [%v, %v]", key, cfg.TempMin, cfg.TempMax)
		}
		if cfg.HumidityMin > cfg.HumidityMax {
			t.Errorf("city %q has inverted humidity range [%v, %v]", key, cfg.HumidityMin, cfg.HumidityMax)
		}
		if len(cfg.Conditions) == 0 {
			t.Errorf("city %q has no conditions configured", key)
		}
	}
	for _, key := range []string{"new_york", "london"} {
		if _, ok := cities[key]; !ok {
			t.Errorf("DefaultCities() missing %q", key)
		}
	}
}
