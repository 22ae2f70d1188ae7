package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") error: %v", err)
	}

	if cfg.Field.Width != 700 || cfg.Field.Height != 450 {
		t.Errorf("field = %dx%d, want 700x450", cfg.Field.Width, cfg.Field.Height)
	}
	if cfg.Field.Boundary != 100 {
		t.Errorf("boundary = %d, want 100", cfg.Field.Boundary)
	}
	if cfg.Movement.WanderRadius != 100 {
		t.Errorf("wander_radius = %d, want 100", cfg.Movement.WanderRadius)
	}
	if cfg.Reproduction.MateGrowth != MateGrowthClamp {
		t.Errorf("mate_growth = %q, want %q", cfg.Reproduction.MateGrowth, MateGrowthClamp)
	}

	// Screen falls back to the field size
	if cfg.Derived.ScreenW != 700 || cfg.Derived.ScreenH != 450 {
		t.Errorf("derived screen = %dx%d, want 700x450", cfg.Derived.ScreenW, cfg.Derived.ScreenH)
	}
}

func TestLoadOverridesOnlyPresentFields(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	data := "predation:\n  chase_radius: 150\nreproduction:\n  mate_growth: uncapped\n"
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}

	if cfg.Predation.ChaseRadius != 150 {
		t.Errorf("chase_radius = %v, want 150", cfg.Predation.ChaseRadius)
	}
	if cfg.Predation.FleeDistance != 100 {
		t.Errorf("flee_distance = %v, want default 100", cfg.Predation.FleeDistance)
	}
	if cfg.Reproduction.MateGrowth != MateGrowthUncapped {
		t.Errorf("mate_growth = %q, want uncapped", cfg.Reproduction.MateGrowth)
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want string
	}{
		{"boundary too large", "field:\n  boundary: 400\n", "boundary"},
		{"zero base speed", "movement:\n  base_speed: 0\n", "base_speed"},
		{"unknown policy", "reproduction:\n  mate_growth: sometimes\n", "mate_growth"},
		{"negative chase", "predation:\n  chase_radius: -1\n", "radii"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.yaml")
			if err := os.WriteFile(path, []byte(tt.yaml), 0644); err != nil {
				t.Fatal(err)
			}
			_, err := Load(path)
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q does not mention %q", err, tt.want)
			}
		})
	}
}

func TestWriteYAMLRoundtrip(t *testing.T) {
	cfg := Defaults()
	cfg.Population.Wolves = 7

	path := filepath.Join(t.TempDir(), "out.yaml")
	if err := cfg.WriteYAML(path); err != nil {
		t.Fatalf("WriteYAML error: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if loaded.Population.Wolves != 7 {
		t.Errorf("wolves = %d, want 7", loaded.Population.Wolves)
	}
}

func TestMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}
