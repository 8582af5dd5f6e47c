package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tuning.yaml")
	body := `
pet:
  lifecycle:
    sick_below_health: 40
  evolution:
    experience_to_evolve: 50
slots:
  bets: [1, 2]
  pair_rate: 0.25
reaction:
  target_seconds: 5.0
`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Pet.Lifecycle.SickBelowHealth != 40 {
		t.Errorf("SickBelowHealth = %d, want 40", cfg.Pet.Lifecycle.SickBelowHealth)
	}
	if cfg.Pet.Evolution.ExperienceToEvolve != 50 {
		t.Errorf("ExperienceToEvolve = %d, want 50", cfg.Pet.Evolution.ExperienceToEvolve)
	}
	if !reflect.DeepEqual(cfg.Slots.Bets, []int{1, 2}) {
		t.Errorf("Bets = %v, want [1 2]", cfg.Slots.Bets)
	}
	if cfg.Reaction.TargetSeconds != 5.0 {
		t.Errorf("TargetSeconds = %v, want 5.0", cfg.Reaction.TargetSeconds)
	}
}

func TestLoadMissingCustomPathFails(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("Load() with a missing explicit path should fail")
	}
}

func TestLoadMalformedCustomPathFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("pet: [not a map"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("Load() with malformed YAML should fail")
	}
}

func TestEmbeddedDefaultMatchesHardcoded(t *testing.T) {
	var embedded Tuning
	if err := yaml.Unmarshal(defaultTuningYAML, &embedded); err != nil {
		t.Fatalf("embedded YAML does not parse: %v", err)
	}
	if !reflect.DeepEqual(embedded, DefaultTuning()) {
		t.Errorf("embedded tuning = %+v, want the hardcoded default %+v", embedded, DefaultTuning())
	}
}

func TestDefaultTuningIsSane(t *testing.T) {
	cfg := DefaultTuning()

	if cfg.Pet.Lifecycle.SleepBelowRest >= cfg.Pet.Lifecycle.WakeAboveRest {
		t.Error("sleep threshold must sit below the wake threshold")
	}
	if cfg.Pet.Evolution.ExperienceToEvolve <= 0 {
		t.Error("evolution must cost experience")
	}
	if len(cfg.Slots.Bets) == 0 {
		t.Error("slots need at least one bet size")
	}
	for i := 1; i < len(cfg.Slots.Bets); i++ {
		if cfg.Slots.Bets[i] <= cfg.Slots.Bets[i-1] {
			t.Errorf("bets %v must be strictly increasing", cfg.Slots.Bets)
		}
	}
	for symbol, mult := range cfg.Slots.Paytable {
		if mult <= 0 {
			t.Errorf("paytable multiplier for %q = %v, must be positive", symbol, mult)
		}
	}
	if cfg.Reaction.TargetSeconds <= 0 {
		t.Error("reaction target must be positive")
	}
}
