// Package config provides YAML-based tuning for the bomber game.
package config

// BomberConfig contains all tunable parameters for the bomber game.
type BomberConfig struct {
	Grid    GridConfig  `yaml:"grid"`
	Bombs   BombConfig  `yaml:"bombs"`
	Enemies EnemyConfig `yaml:"enemies"`
	Traps   TrapConfig  `yaml:"traps"`
}

// GridConfig defines the map dimensions, border included.
type GridConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// BombConfig defines bomb capacity and blast behavior.
type BombConfig struct {
	Max        int `yaml:"max"`         // Bombs the player may have planted at once
	FuseMillis int `yaml:"fuse_ms"`     // Time from planting to detonation
	BlastRange int `yaml:"blast_range"` // Cells the blast reaches in each direction
}

// EnemyConfig defines enemy population and pacing.
type EnemyConfig struct {
	// DensityDivisor controls the enemy count:
	// count = (width + height) / DensityDivisor.
	DensityDivisor int `yaml:"density_divisor"`
	// MovePeriod is the number of ticks between enemy movement attempts.
	MovePeriod int `yaml:"move_period"`
}

// TrapConfig defines trap population.
type TrapConfig struct {
	// DensityDivisor controls the trap count:
	// count = (width + height) / DensityDivisor.
	DensityDivisor int `yaml:"density_divisor"`
}

// Normalize clamps values that would make the world degenerate.
// Zero values (an empty YAML section) fall back to defaults.
func (c *BomberConfig) Normalize() {
	def := DefaultBomberConfig()

	if c.Grid.Width < 5 {
		c.Grid.Width = def.Grid.Width
	}
	if c.Grid.Height < 5 {
		c.Grid.Height = def.Grid.Height
	}
	if c.Bombs.Max <= 0 {
		c.Bombs.Max = def.Bombs.Max
	}
	if c.Bombs.FuseMillis <= 0 {
		c.Bombs.FuseMillis = def.Bombs.FuseMillis
	}
	if c.Bombs.BlastRange <= 0 {
		c.Bombs.BlastRange = def.Bombs.BlastRange
	}
	if c.Enemies.DensityDivisor <= 0 {
		c.Enemies.DensityDivisor = def.Enemies.DensityDivisor
	}
	if c.Enemies.MovePeriod <= 0 {
		c.Enemies.MovePeriod = def.Enemies.MovePeriod
	}
	if c.Traps.DensityDivisor <= 0 {
		c.Traps.DensityDivisor = def.Traps.DensityDivisor
	}
}
