package bomber

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/vovakirdan/tui-bomber/internal/config"
)

// Grid symbols of the save format. Stable across versions.
const (
	symEmpty = ' '
	symBrick = '#'
	symWall  = 'X'
	symTrap  = 'T'
	symDoor  = 'D'
)

// encodeWorld writes the save format:
//
//	player x y
//	total bombs planted
//	enemy count, then per enemy: x y pattern
//	bomb count, then per bomb: x y
//	door x y visible
//	the grid as height rows of width symbols
//
// Bomb fuse age is deliberately not persisted; reloaded bombs restart their
// full countdown.
func encodeWorld(w io.Writer, grid *Grid, reg *Registry) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "%d %d\n", reg.Player.Pos.X, reg.Player.Pos.Y)
	fmt.Fprintf(bw, "%d\n", reg.BombsPlanted)

	fmt.Fprintf(bw, "%d\n", len(reg.Enemies))
	for _, e := range reg.Enemies {
		fmt.Fprintf(bw, "%d %d %d\n", e.Pos.X, e.Pos.Y, int(e.Pattern))
	}

	fmt.Fprintf(bw, "%d\n", len(reg.Bombs))
	for _, b := range reg.Bombs {
		fmt.Fprintf(bw, "%d %d\n", b.Pos.X, b.Pos.Y)
	}

	visible := 0
	if reg.Door.Visible {
		visible = 1
	}
	fmt.Fprintf(bw, "%d %d %d\n", reg.Door.Pos.X, reg.Door.Pos.Y, visible)

	for y := 0; y < grid.Height(); y++ {
		for x := 0; x < grid.Width(); x++ {
			bw.WriteRune(cellSymbol(grid.At(x, y)))
		}
		bw.WriteRune('\n')
	}

	return bw.Flush()
}

// cellSymbol maps a cell to its save-format symbol.
func cellSymbol(c Cell) rune {
	switch c.Kind {
	case CellBrick:
		return symBrick
	case CellWall:
		return symWall
	case CellTrap:
		return symTrap
	case CellDoor:
		return symDoor
	default:
		return symEmpty
	}
}

// decodeWorld reads the save format and reconstructs a complete world.
// Entities are rebuilt first, then the grid; the door symbol in the grid
// refers to the already-reconstructed door singleton, and a hidden door is
// re-covered with its carrier brick (that cell state is derived from the
// door record, never stored in the grid). Player capacity is derived so
// capacity + planted bombs always equals the bomb maximum. Reloaded bombs
// restart their fuse at now.
func decodeWorld(r io.Reader, conf config.BomberConfig, now time.Time) (*Grid, *Registry, error) {
	lines := bufio.NewScanner(r)
	lines.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	next := func() (string, error) {
		if !lines.Scan() {
			if err := lines.Err(); err != nil {
				return "", err
			}
			return "", io.ErrUnexpectedEOF
		}
		return lines.Text(), nil
	}
	w, h := conf.Grid.Width, conf.Grid.Height

	reg := newRegistry(conf.Bombs.Max)

	// Player
	line, err := next()
	if err != nil {
		return nil, nil, fmt.Errorf("bomber: reading player: %w", err)
	}
	var px, py int
	if _, err := fmt.Sscanf(line, "%d %d", &px, &py); err != nil {
		return nil, nil, fmt.Errorf("bomber: parsing player position: %w", err)
	}
	reg.Player.Pos = Position{X: px, Y: py}

	// Planted-bomb counter
	if line, err = next(); err != nil {
		return nil, nil, fmt.Errorf("bomber: reading bomb counter: %w", err)
	}
	if _, err := fmt.Sscanf(line, "%d", &reg.BombsPlanted); err != nil {
		return nil, nil, fmt.Errorf("bomber: parsing bomb counter: %w", err)
	}

	// Enemies
	if line, err = next(); err != nil {
		return nil, nil, fmt.Errorf("bomber: reading enemy count: %w", err)
	}
	var enemyCount int
	if _, err := fmt.Sscanf(line, "%d", &enemyCount); err != nil || enemyCount < 0 {
		return nil, nil, fmt.Errorf("bomber: invalid enemy count %q", line)
	}
	for i := 0; i < enemyCount; i++ {
		if line, err = next(); err != nil {
			return nil, nil, fmt.Errorf("bomber: reading enemy %d: %w", i, err)
		}
		var x, y, pattern int
		if _, err := fmt.Sscanf(line, "%d %d %d", &x, &y, &pattern); err != nil {
			return nil, nil, fmt.Errorf("bomber: parsing enemy %d: %w", i, err)
		}
		if pattern < 0 || pattern > int(PatternBoth) {
			return nil, nil, fmt.Errorf("bomber: invalid enemy pattern %d", pattern)
		}
		reg.Enemies = append(reg.Enemies, Enemy{Pos: Position{X: x, Y: y}, Pattern: MovePattern(pattern)})
	}

	// Bombs (fuse restarts from now)
	if line, err = next(); err != nil {
		return nil, nil, fmt.Errorf("bomber: reading bomb count: %w", err)
	}
	var bombCount int
	if _, err := fmt.Sscanf(line, "%d", &bombCount); err != nil || bombCount < 0 || bombCount > conf.Bombs.Max {
		return nil, nil, fmt.Errorf("bomber: invalid bomb count %q", line)
	}
	for i := 0; i < bombCount; i++ {
		if line, err = next(); err != nil {
			return nil, nil, fmt.Errorf("bomber: reading bomb %d: %w", i, err)
		}
		var x, y int
		if _, err := fmt.Sscanf(line, "%d %d", &x, &y); err != nil {
			return nil, nil, fmt.Errorf("bomber: parsing bomb %d: %w", i, err)
		}
		reg.Bombs = append(reg.Bombs, Bomb{Pos: Position{X: x, Y: y}, PlantedAt: now})
	}
	reg.Player.Capacity = conf.Bombs.Max - bombCount

	// Door
	if line, err = next(); err != nil {
		return nil, nil, fmt.Errorf("bomber: reading door: %w", err)
	}
	var dx, dy, visible int
	if _, err := fmt.Sscanf(line, "%d %d %d", &dx, &dy, &visible); err != nil {
		return nil, nil, fmt.Errorf("bomber: parsing door: %w", err)
	}
	reg.Door = Door{Pos: Position{X: dx, Y: dy}, Visible: visible != 0}

	// Grid
	grid := NewGrid(w, h)
	for y := 0; y < h; y++ {
		if line, err = next(); err != nil {
			return nil, nil, fmt.Errorf("bomber: reading grid row %d: %w", y, err)
		}
		row := []rune(line)
		for x := 0; x < w; x++ {
			sym := symEmpty
			if x < len(row) {
				sym = row[x]
			}
			cell, ok := cellFromSymbol(sym)
			if !ok {
				return nil, nil, fmt.Errorf("bomber: unknown grid symbol %q at (%d,%d)", sym, x, y)
			}
			grid.Set(x, y, cell)
		}
	}

	// A hidden door is covered by its carrier brick; the revealed door owns
	// its cell. Either way the grid cell is derived from the door record.
	if reg.Door.Visible {
		grid.Set(dx, dy, Cell{Kind: CellDoor})
	} else {
		grid.Set(dx, dy, Cell{Kind: CellBrick, HidesDoor: true})
	}

	if err := validateWorld(grid, reg); err != nil {
		return nil, nil, err
	}
	return grid, reg, nil
}

// cellFromSymbol maps a save-format symbol back to a cell.
func cellFromSymbol(sym rune) (Cell, bool) {
	switch sym {
	case symEmpty:
		return Cell{}, true
	case symBrick:
		return Cell{Kind: CellBrick}, true
	case symWall:
		return Cell{Kind: CellWall}, true
	case symTrap:
		return Cell{Kind: CellTrap}, true
	case symDoor:
		return Cell{Kind: CellDoor}, true
	default:
		return Cell{}, false
	}
}

// validateWorld rejects saves whose entities sit outside the interior.
func validateWorld(grid *Grid, reg *Registry) error {
	if !grid.Interior(reg.Player.Pos.X, reg.Player.Pos.Y) {
		return fmt.Errorf("bomber: player position %v outside interior", reg.Player.Pos)
	}
	if !grid.Interior(reg.Door.Pos.X, reg.Door.Pos.Y) {
		return fmt.Errorf("bomber: door position %v outside interior", reg.Door.Pos)
	}
	for _, e := range reg.Enemies {
		if !grid.Interior(e.Pos.X, e.Pos.Y) {
			return fmt.Errorf("bomber: enemy position %v outside interior", e.Pos)
		}
	}
	for _, b := range reg.Bombs {
		if !grid.Interior(b.Pos.X, b.Pos.Y) {
			return fmt.Errorf("bomber: bomb position %v outside interior", b.Pos)
		}
	}
	return nil
}

// SaveTo writes the current world to path. On failure the file may be
// incomplete but the in-memory world is untouched.
func (g *Game) SaveTo(path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("bomber: creating save directory: %w", err)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("bomber: creating save file: %w", err)
	}
	if err := encodeWorld(f, g.grid, g.reg); err != nil {
		f.Close()
		return fmt.Errorf("bomber: writing save file: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("bomber: closing save file: %w", err)
	}
	return nil
}

// LoadFrom replaces the world with the one stored at path. The new world is
// staged fully before the old one is discarded, so a failed load leaves the
// previous world intact.
func (g *Game) LoadFrom(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("bomber: opening save file: %w", err)
	}
	defer f.Close()

	grid, reg, err := decodeWorld(f, g.conf, g.clock())
	if err != nil {
		return err
	}

	g.grid = grid
	g.reg = reg
	return nil
}

// EncodeTo writes the current world to an arbitrary writer.
// Exposed for inspection tooling; gameplay saving goes through SaveTo.
func (g *Game) EncodeTo(w io.Writer) error {
	return encodeWorld(w, g.grid, g.reg)
}

// DebugGrid renders the grid symbols only, for debugging.
func (g *Game) DebugGrid() string {
	var sb strings.Builder
	for y := 0; y < g.grid.Height(); y++ {
		for x := 0; x < g.grid.Width(); x++ {
			sb.WriteRune(cellSymbol(g.grid.At(x, y)))
		}
		sb.WriteRune('\n')
	}
	return sb.String()
}
