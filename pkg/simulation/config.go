package simulation

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/RohanPhadnis/ElectricFieldHockey/pkg/physics"
)

// --- Tuning config file ---
//
// Optional JSON file overriding the physics constants. Fields left out
// keep their defaults; levels are compiled in and not configurable.
type tuningConfig struct {
	CoulombK *float64 `json:"coulomb_k"`
	GravityG *float64 `json:"gravity_g"`
	SoftCore *float64 `json:"soft_core"`
}

// LoadTuning reads a tuning file and applies it over the defaults.
// On error the defaults are returned alongside it.
func LoadTuning(path string) (physics.Tuning, error) {
	t := physics.DefaultTuning()

	data, err := os.ReadFile(path)
	if err != nil {
		return t, fmt.Errorf("read tuning file: %w", err)
	}
	var cfg tuningConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return t, fmt.Errorf("parse tuning file %s: %w", path, err)
	}

	if cfg.CoulombK != nil {
		t.CoulombK = *cfg.CoulombK
	}
	if cfg.GravityG != nil {
		t.GravityG = *cfg.GravityG
	}
	if cfg.SoftCore != nil {
		t.SoftCore = *cfg.SoftCore
	}
	if t.CoulombK <= 0 || t.GravityG <= 0 || t.SoftCore <= 0 {
		return physics.DefaultTuning(), fmt.Errorf("tuning file %s: constants must be positive", path)
	}
	return t, nil
}
