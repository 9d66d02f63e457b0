package bomber

import (
	"errors"
	"math/rand"

	"github.com/vovakirdan/tui-bomber/internal/config"
)

// CellKind identifies what occupies a grid cell.
type CellKind uint8

const (
	CellEmpty CellKind = iota
	CellBrick          // destructible block
	CellWall           // indestructible block
	CellTrap
	CellDoor // revealed exit door
)

// Cell is one grid position's occupant state.
type Cell struct {
	Kind CellKind
	// HidesDoor marks the single brick that conceals the exit door.
	// Only meaningful when Kind is CellBrick.
	HidesDoor bool
}

// Grid is the fixed-size game board. The border ring is always CellWall.
type Grid struct {
	width  int
	height int
	cells  [][]Cell
}

// NewGrid creates an empty grid with the given dimensions.
func NewGrid(width, height int) *Grid {
	g := &Grid{width: width, height: height}
	g.cells = make([][]Cell, height)
	for y := range g.cells {
		g.cells[y] = make([]Cell, width)
	}
	return g
}

// Width returns the grid width in cells.
func (g *Grid) Width() int { return g.width }

// Height returns the grid height in cells.
func (g *Grid) Height() int { return g.height }

// InBounds reports whether (x, y) lies on the board at all.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// Interior reports whether (x, y) lies strictly inside the border ring.
func (g *Grid) Interior(x, y int) bool {
	return x > 0 && x < g.width-1 && y > 0 && y < g.height-1
}

// At returns the cell at (x, y). Out-of-bounds positions read as walls so
// callers never walk off the board.
func (g *Grid) At(x, y int) Cell {
	if !g.InBounds(x, y) {
		return Cell{Kind: CellWall}
	}
	return g.cells[y][x]
}

// Set replaces the cell at (x, y). Out-of-bounds writes are ignored.
func (g *Grid) Set(x, y int, c Cell) {
	if !g.InBounds(x, y) {
		return
	}
	g.cells[y][x] = c
}

// spawn is the player's fixed starting position.
var spawn = Position{X: 1, Y: 1}

// errGridSaturated is returned when rejection sampling cannot find a free
// interior cell within the attempt bound.
var errGridSaturated = errors.New("bomber: no free cell for placement")

// generateWorld builds a fresh world: bordered grid with randomly scattered
// blocks, traps, enemies, a cleared 3x3 spawn area, and the exit door hidden
// under a single carrier brick.
//
// Interior block placement rolls a 1-in-width chance for a wall, then a
// 1-in-height chance for a brick, per cell.
func generateWorld(rng *rand.Rand, conf config.BomberConfig) (*Grid, []Enemy, Door, error) {
	w, h := conf.Grid.Width, conf.Grid.Height
	grid := NewGrid(w, h)

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			switch {
			case y == 0 || y == h-1 || x == 0 || x == w-1:
				grid.Set(x, y, Cell{Kind: CellWall})
			case rng.Intn(w) == 0:
				grid.Set(x, y, Cell{Kind: CellWall})
			case rng.Intn(h) == 0:
				grid.Set(x, y, Cell{Kind: CellBrick})
			}
		}
	}

	// Traps on random free interior cells.
	trapCount := (w + h) / conf.Traps.DensityDivisor
	for i := 0; i < trapCount; i++ {
		pos, err := randomFreeCell(rng, grid)
		if err != nil {
			return nil, nil, Door{}, err
		}
		grid.Set(pos.X, pos.Y, Cell{Kind: CellTrap})
	}

	// Enemies on random free interior cells, cycling movement patterns.
	enemyCount := (w + h) / conf.Enemies.DensityDivisor
	enemies := make([]Enemy, 0, enemyCount)
	for i := 0; i < enemyCount; i++ {
		pos, err := randomFreeCell(rng, grid)
		if err != nil {
			return nil, nil, Door{}, err
		}
		enemies = append(enemies, Enemy{Pos: pos, Pattern: MovePattern(i % 3)})
	}

	// Clear the player's starting area around the spawn cell.
	for y := 1; y <= 3; y++ {
		for x := 1; x <= 3; x++ {
			grid.Set(x, y, Cell{})
		}
	}

	// Hide the exit door under a carrier brick on a free cell. The cleared
	// spawn area must stay walkable, so the carrier cannot land there.
	doorPos, err := randomFreeCellOutsideSpawn(rng, grid)
	if err != nil {
		return nil, nil, Door{}, err
	}
	grid.Set(doorPos.X, doorPos.Y, Cell{Kind: CellBrick, HidesDoor: true})
	door := Door{Pos: doorPos}

	return grid, enemies, door, nil
}

// inSpawnArea reports whether pos lies in the cleared 3x3 around the spawn.
func inSpawnArea(pos Position) bool {
	return pos.X >= 1 && pos.X <= 3 && pos.Y >= 1 && pos.Y <= 3
}

// randomFreeCellOutsideSpawn draws free cells until one falls outside the
// cleared spawn area, with the same attempt bound as randomFreeCell.
func randomFreeCellOutsideSpawn(rng *rand.Rand, grid *Grid) (Position, error) {
	maxAttempts := grid.Width() * grid.Height() * 10
	for attempt := 0; attempt < maxAttempts; attempt++ {
		pos, err := randomFreeCell(rng, grid)
		if err != nil {
			return Position{}, err
		}
		if !inSpawnArea(pos) {
			return pos, nil
		}
	}
	return Position{}, errGridSaturated
}

// randomFreeCell draws random interior positions until it finds an empty
// non-spawn cell. Sampling is bounded so a saturated grid fails explicitly
// instead of looping forever.
func randomFreeCell(rng *rand.Rand, grid *Grid) (Position, error) {
	maxAttempts := grid.Width() * grid.Height() * 10
	for attempt := 0; attempt < maxAttempts; attempt++ {
		pos := Position{
			X: rng.Intn(grid.Width()-2) + 1,
			Y: rng.Intn(grid.Height()-2) + 1,
		}
		if pos == spawn {
			continue
		}
		if grid.At(pos.X, pos.Y).Kind != CellEmpty {
			continue
		}
		return pos, nil
	}
	return Position{}, errGridSaturated
}
