package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/vovakirdan/tui-tetra/internal/engine"
)

func TestDefaultMatchesEmbedded(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	// Loading with no file present anywhere still has to produce the
	// hardcoded defaults via the embedded YAML.
	want := Default()
	if cfg != want {
		t.Errorf("Loaded default config %+v, want %+v", cfg, want)
	}
}

func TestToEngine(t *testing.T) {
	ecfg, err := Default().ToEngine(77)
	if err != nil {
		t.Fatalf("ToEngine failed: %v", err)
	}
	if ecfg.RotationSystem != engine.RotationOcular {
		t.Errorf("Rotation system = %v, want ocular", ecfg.RotationSystem)
	}
	if ecfg.Generator == nil || ecfg.Generator.Kind() != engine.GenRecency {
		t.Errorf("Generator = %+v, want recency", ecfg.Generator)
	}
	if ecfg.DelayedAutoShift != 167*time.Millisecond {
		t.Errorf("DAS = %v, want 167ms", ecfg.DelayedAutoShift)
	}
	if ecfg.HardDropDelay != 100*time.Microsecond {
		t.Errorf("Hard drop delay = %v, want 100µs", ecfg.HardDropDelay)
	}
	if ecfg.Seed != 77 {
		t.Errorf("Seed = %d, want 77", ecfg.Seed)
	}
}

func TestToEngineRejectsUnknownNames(t *testing.T) {
	cfg := Default()
	cfg.Game.RotationSystem = "gamboy"
	if _, err := cfg.ToEngine(1); err == nil {
		t.Error("Expected error for unknown rotation system")
	}

	cfg = Default()
	cfg.Game.Generator = "psychic"
	if _, err := cfg.ToEngine(1); err == nil {
		t.Error("Expected error for unknown generator")
	}
}

func TestLoadCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	body := []byte("game:\n  rotation_system: super\n  generator: bag\n  bag_multiplicity: 2\n  preview_count: 4\n")
	if err := os.WriteFile(path, body, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Game.RotationSystem != "super" || cfg.Game.PreviewCount != 4 {
		t.Errorf("Unexpected game settings %+v", cfg.Game)
	}
	gen, err := cfg.Game.NewGenerator()
	if err != nil {
		t.Fatalf("NewGenerator failed: %v", err)
	}
	if gen.Kind() != engine.GenBag {
		t.Errorf("Generator kind = %v, want bag", gen.Kind())
	}

	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("Expected error for a missing explicit config path")
	}
}
