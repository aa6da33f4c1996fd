package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Club != "driver" {
		t.Errorf("expected club driver, got %s", cfg.Club)
	}
	if cfg.SkillPct != 100 {
		t.Errorf("expected 100%% skill, got %f", cfg.SkillPct)
	}
	if cfg.Env.DensityRatio() != 1.0 {
		t.Error("default environment should be the standard atmosphere")
	}
}

func TestLoadPartialFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "shot.yaml")
	data := []byte(`
club: 7-iron
environment:
  temperature: 85
  pressure: 29.92
  humidity: 50
  altitude: 5280
`)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Club != "7-iron" {
		t.Errorf("expected 7-iron, got %s", cfg.Club)
	}
	if cfg.SkillPct != 100 {
		t.Errorf("unset skill should keep default, got %f", cfg.SkillPct)
	}
	if cfg.Env.Altitude != 5280 || cfg.Env.Temperature != 85 {
		t.Errorf("environment not applied: %+v", cfg.Env)
	}
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.yaml")

	cfg := DefaultConfig()
	cfg.Club = "pitching-wedge"
	cfg.Env.WindSpeed = 12

	if err := Save(path, cfg); err != nil {
		t.Fatal(err)
	}
	loaded, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if loaded.Club != cfg.Club || loaded.Env.WindSpeed != cfg.Env.WindSpeed {
		t.Errorf("round trip lost data: %+v", loaded)
	}
}

func TestGetPreset(t *testing.T) {
	env, ok := GetPreset("denver")
	if !ok {
		t.Fatal("denver preset should exist")
	}
	if env.Altitude != 5280 {
		t.Errorf("denver altitude = %f", env.Altitude)
	}
	if err := env.Validate(); err != nil {
		t.Errorf("preset should validate: %v", err)
	}

	if _, ok := GetPreset("the-moon"); ok {
		t.Error("expected miss for unknown preset")
	}
}

func TestAllPresetsValidate(t *testing.T) {
	for _, name := range ListPresets() {
		env, _ := GetPreset(name)
		if err := env.Validate(); err != nil {
			t.Errorf("preset %s does not validate: %v", name, err)
		}
	}
}
