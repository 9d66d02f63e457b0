package config

import (
	_ "embed"
)

//go:embed defaults/bomber.yaml
var defaultBomberYAML []byte

// DefaultBomberConfig returns the default bomber configuration.
// Kept in sync with defaults/bomber.yaml; used as the last-resort fallback.
func DefaultBomberConfig() BomberConfig {
	return BomberConfig{
		Grid: GridConfig{
			Width:  60,
			Height: 30,
		},
		Bombs: BombConfig{
			Max:        3,
			FuseMillis: 3000,
			BlastRange: 3,
		},
		Enemies: EnemyConfig{
			DensityDivisor: 10,
			MovePeriod:     11,
		},
		Traps: TrapConfig{
			DensityDivisor: 10,
		},
	}
}
