package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	// The embedded YAML and the hardcoded fallback must agree
	cfg, err := LoadBomber("")
	if err != nil {
		t.Fatalf("LoadBomber() failed: %v", err)
	}

	def := DefaultBomberConfig()
	if cfg != def {
		t.Errorf("Loaded defaults %+v differ from hardcoded %+v", cfg, def)
	}
}

func TestLoadCustomConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bomber.yaml")
	yaml := `grid:
  width: 40
  height: 20
bombs:
  max: 5
  fuse_ms: 2000
  blast_range: 2
enemies:
  density_divisor: 6
  move_period: 8
traps:
  density_divisor: 12
`
	if err := os.WriteFile(path, []byte(yaml), 0o644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	cfg, err := LoadBomber(path)
	if err != nil {
		t.Fatalf("LoadBomber() failed: %v", err)
	}

	if cfg.Grid.Width != 40 || cfg.Grid.Height != 20 {
		t.Errorf("Grid = %+v, want 40x20", cfg.Grid)
	}
	if cfg.Bombs.Max != 5 || cfg.Bombs.FuseMillis != 2000 || cfg.Bombs.BlastRange != 2 {
		t.Errorf("Bombs = %+v", cfg.Bombs)
	}
	if cfg.Enemies.DensityDivisor != 6 || cfg.Enemies.MovePeriod != 8 {
		t.Errorf("Enemies = %+v", cfg.Enemies)
	}
	if cfg.Traps.DensityDivisor != 12 {
		t.Errorf("Traps = %+v", cfg.Traps)
	}
}

func TestLoadMissingCustomConfig(t *testing.T) {
	_, err := LoadBomber(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Error("Expected error for missing custom config")
	}
}

func TestLoadPartialConfigNormalized(t *testing.T) {
	// An empty section falls back to defaults instead of a degenerate world
	dir := t.TempDir()
	path := filepath.Join(dir, "bomber.yaml")
	yaml := `grid:
  width: 50
  height: 25
`
	if err := os.WriteFile(path, []byte(yaml), 0o644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	cfg, err := LoadBomber(path)
	if err != nil {
		t.Fatalf("LoadBomber() failed: %v", err)
	}

	def := DefaultBomberConfig()
	if cfg.Grid.Width != 50 || cfg.Grid.Height != 25 {
		t.Errorf("Grid = %+v, want 50x25", cfg.Grid)
	}
	if cfg.Bombs != def.Bombs {
		t.Errorf("Bombs = %+v, want defaults %+v", cfg.Bombs, def.Bombs)
	}
	if cfg.Enemies != def.Enemies {
		t.Errorf("Enemies = %+v, want defaults %+v", cfg.Enemies, def.Enemies)
	}
}

func TestNormalizeClampsDegenerate(t *testing.T) {
	cfg := BomberConfig{
		Grid:  GridConfig{Width: 2, Height: -1},
		Bombs: BombConfig{Max: 0, FuseMillis: -5, BlastRange: 0},
	}
	cfg.Normalize()

	def := DefaultBomberConfig()
	if cfg.Grid != def.Grid {
		t.Errorf("Grid = %+v, want defaults %+v", cfg.Grid, def.Grid)
	}
	if cfg.Bombs != def.Bombs {
		t.Errorf("Bombs = %+v, want defaults %+v", cfg.Bombs, def.Bombs)
	}
	if cfg.Enemies != def.Enemies || cfg.Traps != def.Traps {
		t.Errorf("Zero sections not defaulted: %+v", cfg)
	}
}
