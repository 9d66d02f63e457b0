package bomber

import "time"

// Position is a 2D grid coordinate, 0-based.
type Position struct {
	X, Y int
}

// MovePattern selects how an enemy roams.
type MovePattern int

const (
	PatternHorizontal MovePattern = iota
	PatternVertical
	PatternBoth
)

// String returns a human-readable name for the pattern.
func (p MovePattern) String() string {
	switch p {
	case PatternHorizontal:
		return "horizontal"
	case PatternVertical:
		return "vertical"
	case PatternBoth:
		return "both"
	default:
		return "unknown"
	}
}

// Player is the single controllable character.
// Capacity is the number of bombs still available for planting.
type Player struct {
	Pos      Position
	Capacity int
}

// Enemy roams the map following its movement pattern.
// step counts ticks since the last movement attempt.
type Enemy struct {
	Pos     Position
	Pattern MovePattern
	step    int
}

// Bomb is a planted explosive waiting for its fuse to run out.
type Bomb struct {
	Pos       Position
	PlantedAt time.Time
}

// Door is the level exit. Visible flips to true when the carrier brick is
// destroyed and never reverts.
type Door struct {
	Pos     Position
	Visible bool
}

// Registry owns all live entities of a world: the player, the enemy and bomb
// collections, and the exit door singleton.
type Registry struct {
	Player       Player
	Enemies      []Enemy
	Bombs        []Bomb
	Door         Door
	BombsPlanted int // total planted over the whole run, for the HUD

	maxBombs int
}

// newRegistry creates a registry with the player at the spawn cell holding
// full bomb capacity.
func newRegistry(maxBombs int) *Registry {
	return &Registry{
		Player:   Player{Pos: spawn, Capacity: maxBombs},
		maxBombs: maxBombs,
	}
}

// PlantBomb places a bomb at pos if the player has capacity and a bomb slot
// is free. Returns false (a silent no-op for the caller) otherwise.
func (r *Registry) PlantBomb(pos Position, now time.Time) bool {
	if r.Player.Capacity <= 0 || len(r.Bombs) >= r.maxBombs {
		return false
	}
	r.Bombs = append(r.Bombs, Bomb{Pos: pos, PlantedAt: now})
	r.Player.Capacity--
	r.BombsPlanted++
	return true
}

// RemoveBomb removes the bomb at index i by swapping with the last element
// and restores one unit of player capacity. Only one player exists, so it
// does not matter which specific bomb detonated.
func (r *Registry) RemoveBomb(i int) {
	last := len(r.Bombs) - 1
	r.Bombs[i] = r.Bombs[last]
	r.Bombs = r.Bombs[:last]
	r.Player.Capacity++
}

// RemoveEnemy removes the enemy at index i by swapping with the last
// element. Enemy ordering is not meaningful.
func (r *Registry) RemoveEnemy(i int) {
	last := len(r.Enemies) - 1
	r.Enemies[i] = r.Enemies[last]
	r.Enemies = r.Enemies[:last]
}

// EnemyAt returns the index of an enemy occupying pos, or -1.
func (r *Registry) EnemyAt(pos Position) int {
	for i := range r.Enemies {
		if r.Enemies[i].Pos == pos {
			return i
		}
	}
	return -1
}
