package bomber

import (
	"bytes"
	"math/rand"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestSaveLoadRoundTrip(t *testing.T) {
	conf := testConf(60, 30)
	rng := rand.New(rand.NewSource(77))
	grid, enemies, door, err := generateWorld(rng, conf)
	if err != nil {
		t.Fatalf("generateWorld failed: %v", err)
	}

	reg := newRegistry(conf.Bombs.Max)
	reg.Enemies = enemies
	reg.Door = door
	reg.Player.Pos = Position{X: 3, Y: 2}
	planted := time.Unix(100, 0)
	reg.PlantBomb(Position{X: 2, Y: 2}, planted)
	reg.PlantBomb(Position{X: 3, Y: 3}, planted)
	reg.BombsPlanted = 7 // planted across the whole run, not just active

	var buf bytes.Buffer
	if err := encodeWorld(&buf, grid, reg); err != nil {
		t.Fatalf("encodeWorld failed: %v", err)
	}

	now := time.Unix(500, 0)
	grid2, reg2, err := decodeWorld(&buf, conf, now)
	if err != nil {
		t.Fatalf("decodeWorld failed: %v", err)
	}

	if reg2.Player.Pos != reg.Player.Pos {
		t.Errorf("Player = %+v, want %+v", reg2.Player.Pos, reg.Player.Pos)
	}
	if reg2.BombsPlanted != 7 {
		t.Errorf("BombsPlanted = %d, want 7", reg2.BombsPlanted)
	}
	if reg2.Door != reg.Door {
		t.Errorf("Door = %+v, want %+v", reg2.Door, reg.Door)
	}

	if len(reg2.Enemies) != len(reg.Enemies) {
		t.Fatalf("Enemy count = %d, want %d", len(reg2.Enemies), len(reg.Enemies))
	}
	for i := range reg.Enemies {
		if reg2.Enemies[i].Pos != reg.Enemies[i].Pos || reg2.Enemies[i].Pattern != reg.Enemies[i].Pattern {
			t.Errorf("Enemy %d = %+v, want %+v", i, reg2.Enemies[i], reg.Enemies[i])
		}
	}

	// Bomb positions survive; fuse restarts at load time
	if len(reg2.Bombs) != 2 {
		t.Fatalf("Bomb count = %d, want 2", len(reg2.Bombs))
	}
	for i := range reg.Bombs {
		if reg2.Bombs[i].Pos != reg.Bombs[i].Pos {
			t.Errorf("Bomb %d = %+v, want %+v", i, reg2.Bombs[i].Pos, reg.Bombs[i].Pos)
		}
		if !reg2.Bombs[i].PlantedAt.Equal(now) {
			t.Errorf("Bomb %d fuse not restarted: %v", i, reg2.Bombs[i].PlantedAt)
		}
	}

	// Capacity is derived, never stored
	if want := conf.Bombs.Max - 2; reg2.Player.Capacity != want {
		t.Errorf("Capacity = %d, want %d", reg2.Player.Capacity, want)
	}

	for y := 0; y < grid.Height(); y++ {
		for x := 0; x < grid.Width(); x++ {
			if grid2.At(x, y) != grid.At(x, y) {
				t.Errorf("Cell (%d,%d) = %+v, want %+v", x, y, grid2.At(x, y), grid.At(x, y))
			}
		}
	}
}

func TestDecodeHiddenDoorRecovered(t *testing.T) {
	// The save never marks the carrier brick in the grid rows; the cell is
	// derived from the door record on load
	conf := testConf(60, 30)
	grid, enemies, door, err := generateWorld(rand.New(rand.NewSource(5)), conf)
	if err != nil {
		t.Fatalf("generateWorld failed: %v", err)
	}
	reg := newRegistry(conf.Bombs.Max)
	reg.Enemies = enemies
	reg.Door = door

	var buf bytes.Buffer
	if err := encodeWorld(&buf, grid, reg); err != nil {
		t.Fatalf("encodeWorld failed: %v", err)
	}

	grid2, reg2, err := decodeWorld(&buf, conf, time.Unix(0, 0))
	if err != nil {
		t.Fatalf("decodeWorld failed: %v", err)
	}

	cell := grid2.At(door.Pos.X, door.Pos.Y)
	if cell.Kind != CellBrick || !cell.HidesDoor {
		t.Errorf("Carrier cell = %+v, want hidden-door brick", cell)
	}
	if reg2.Door.Visible {
		t.Error("Hidden door loaded as visible")
	}
}

func TestDecodeVisibleDoor(t *testing.T) {
	conf := testConf(60, 30)
	grid, enemies, door, err := generateWorld(rand.New(rand.NewSource(5)), conf)
	if err != nil {
		t.Fatalf("generateWorld failed: %v", err)
	}
	reg := newRegistry(conf.Bombs.Max)
	reg.Enemies = enemies
	reg.Door = door

	// Reveal the door before saving
	grid.Set(door.Pos.X, door.Pos.Y, Cell{Kind: CellDoor})
	reg.Door.Visible = true

	var buf bytes.Buffer
	if err := encodeWorld(&buf, grid, reg); err != nil {
		t.Fatalf("encodeWorld failed: %v", err)
	}

	grid2, reg2, err := decodeWorld(&buf, conf, time.Unix(0, 0))
	if err != nil {
		t.Fatalf("decodeWorld failed: %v", err)
	}
	if grid2.At(door.Pos.X, door.Pos.Y).Kind != CellDoor {
		t.Errorf("Door cell = %+v, want door", grid2.At(door.Pos.X, door.Pos.Y))
	}
	if !reg2.Door.Visible {
		t.Error("Visible door loaded as hidden")
	}
}

func TestDecodeTruncated(t *testing.T) {
	conf := testConf(60, 30)
	grid, enemies, door, err := generateWorld(rand.New(rand.NewSource(9)), conf)
	if err != nil {
		t.Fatalf("generateWorld failed: %v", err)
	}
	reg := newRegistry(conf.Bombs.Max)
	reg.Enemies = enemies
	reg.Door = door

	var buf bytes.Buffer
	if err := encodeWorld(&buf, grid, reg); err != nil {
		t.Fatalf("encodeWorld failed: %v", err)
	}
	full := buf.String()

	// Cutting the save anywhere must produce an error, never a partial world
	for _, frac := range []int{0, 1, 2, 4, 8} {
		cut := len(full) * frac / 10
		_, _, err := decodeWorld(strings.NewReader(full[:cut]), conf, time.Unix(0, 0))
		if err == nil {
			t.Errorf("Truncation at %d bytes decoded without error", cut)
		}
	}
}

func TestDecodeRejectsBadValues(t *testing.T) {
	conf := testConf(60, 30)

	cases := []struct {
		name  string
		input string
	}{
		{"garbage player line", "x y\n0\n0\n0\n5 5 0\n"},
		{"negative enemy count", "1 1\n0\n-1\n0\n5 5 0\n"},
		{"bad enemy pattern", "1 1\n0\n1\n5 5 9\n0\n5 5 0\n"},
		{"bomb count over max", "1 1\n0\n0\n4\n"},
		{"player outside interior", "0 0\n0\n0\n0\n5 5 0\n" + strings.Repeat(strings.Repeat("X", 60)+"\n", 30)},
	}

	for _, c := range cases {
		if _, _, err := decodeWorld(strings.NewReader(c.input), conf, time.Unix(0, 0)); err == nil {
			t.Errorf("%s: decoded without error", c.name)
		}
	}
}

func TestDecodeUnknownSymbol(t *testing.T) {
	conf := testConf(60, 30)
	grid, enemies, door, err := generateWorld(rand.New(rand.NewSource(3)), conf)
	if err != nil {
		t.Fatalf("generateWorld failed: %v", err)
	}
	reg := newRegistry(conf.Bombs.Max)
	reg.Enemies = enemies
	reg.Door = door

	var buf bytes.Buffer
	if err := encodeWorld(&buf, grid, reg); err != nil {
		t.Fatalf("encodeWorld failed: %v", err)
	}
	corrupted := strings.Replace(buf.String(), "X", "?", 1)

	if _, _, err := decodeWorld(strings.NewReader(corrupted), conf, time.Unix(0, 0)); err == nil {
		t.Error("Unknown grid symbol decoded without error")
	}
}

func TestFailedLoadLeavesWorldIntact(t *testing.T) {
	g := New()
	g.clock = func() time.Time { return time.Unix(100, 0) }
	g.Reset(testRuntimeCfg())

	before := g.Snapshot()

	if err := g.LoadFrom(filepath.Join(t.TempDir(), "missing.txt")); err == nil {
		t.Fatal("LoadFrom on a missing file succeeded")
	}

	after := g.Snapshot()
	if before.PlayerX != after.PlayerX || before.PlayerY != after.PlayerY ||
		before.DoorX != after.DoorX || before.DoorY != after.DoorY ||
		len(before.Enemies) != len(after.Enemies) {
		t.Errorf("Failed load mutated the world: %+v vs %+v", before, after)
	}
}

func TestSaveToAndLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "saves", "game.txt")

	g := New()
	g.clock = func() time.Time { return time.Unix(100, 0) }
	g.Reset(testRuntimeCfg())
	g.reg.PlantBomb(g.reg.Player.Pos, g.clock())

	if err := g.SaveTo(path); err != nil {
		t.Fatalf("SaveTo failed: %v", err)
	}

	loaded := New()
	loaded.clock = func() time.Time { return time.Unix(200, 0) }
	SetLoadPath(path)
	loaded.Reset(testRuntimeCfg())

	if loaded.reg.Player.Pos != g.reg.Player.Pos {
		t.Errorf("Player = %+v, want %+v", loaded.reg.Player.Pos, g.reg.Player.Pos)
	}
	if len(loaded.reg.Bombs) != 1 {
		t.Errorf("Bomb count = %d, want 1", len(loaded.reg.Bombs))
	}
	if loaded.reg.Player.Capacity != loaded.conf.Bombs.Max-1 {
		t.Errorf("Capacity = %d, want %d", loaded.reg.Player.Capacity, loaded.conf.Bombs.Max-1)
	}
	if loadPath != "" {
		t.Error("Load path not cleared after Reset")
	}
}
