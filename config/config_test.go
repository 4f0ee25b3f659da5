package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Simulation.IncidentIntensity != 1.0 {
		t.Errorf("expected incident intensity 1.0, got %g", cfg.Simulation.IncidentIntensity)
	}
	if cfg.Simulation.PolarizerCount != 2 {
		t.Errorf("expected 2 polarizers, got %d", cfg.Simulation.PolarizerCount)
	}
	if len(cfg.Simulation.Angles) != cfg.Simulation.PolarizerCount-1 {
		t.Errorf("expected %d angles, got %d", cfg.Simulation.PolarizerCount-1, len(cfg.Simulation.Angles))
	}
	if cfg.Simulation.Angles[0] != 45 {
		t.Errorf("expected first angle 45, got %g", cfg.Simulation.Angles[0])
	}
	if !cfg.Audio.Enabled {
		t.Error("expected audio enabled by default")
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("expected log level info, got %s", cfg.Logging.Level)
	}
}

func TestLoadMissingDefaultFile(t *testing.T) {
	// No file anywhere: defaults, no error
	dir := t.TempDir()
	oldWd, _ := os.Getwd()
	defer os.Chdir(oldWd)
	os.Chdir(dir)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load with no file failed: %v", err)
	}
	if cfg.Simulation.IncidentIntensity != 1.0 {
		t.Errorf("expected default intensity, got %g", cfg.Simulation.IncidentIntensity)
	}
}

func TestLoadExplicitMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for missing explicit config path")
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := []byte(`
simulation:
  incident_intensity: 2.5
  polarizer_count: 3
  angles: [30, 60]
audio:
  enabled: false
`)
	if err := os.WriteFile(path, content, 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Simulation.IncidentIntensity != 2.5 {
		t.Errorf("expected intensity 2.5, got %g", cfg.Simulation.IncidentIntensity)
	}
	if cfg.Simulation.PolarizerCount != 3 {
		t.Errorf("expected 3 polarizers, got %d", cfg.Simulation.PolarizerCount)
	}
	if len(cfg.Simulation.Angles) != 2 || cfg.Simulation.Angles[1] != 60 {
		t.Errorf("expected angles [30 60], got %v", cfg.Simulation.Angles)
	}
	if cfg.Audio.Enabled {
		t.Error("expected audio disabled")
	}
	// Untouched section keeps defaults
	if cfg.Logging.Level != "info" {
		t.Errorf("expected default log level, got %s", cfg.Logging.Level)
	}
}

func TestSaveToRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "config.yaml")

	cfg := Default()
	cfg.Simulation.IncidentIntensity = 7.5
	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("SaveTo failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded.Simulation.IncidentIntensity != 7.5 {
		t.Errorf("expected 7.5 after round trip, got %g", loaded.Simulation.IncidentIntensity)
	}
}
