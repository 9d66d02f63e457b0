// Package bomber implements the grid Bomberman simulation: a bounded map of
// destructible bricks, walls, traps and roaming enemies, a hidden exit door,
// and timed bombs with a cardinal blast. The package is pure game logic; the
// platform layer owns input, pacing and display.
package bomber

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/tui-bomber/internal/config"
	"github.com/vovakirdan/tui-bomber/internal/core"
	"github.com/vovakirdan/tui-bomber/internal/registry"
)

// Outcome is the terminal result of a run.
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeCaughtByEnemy
	OutcomeSteppedOnTrap
	OutcomeBlownUp
	OutcomeWon
)

// String returns a stable identifier used in run records.
func (o Outcome) String() string {
	switch o {
	case OutcomeCaughtByEnemy:
		return "caught_by_enemy"
	case OutcomeSteppedOnTrap:
		return "stepped_on_trap"
	case OutcomeBlownUp:
		return "blown_up"
	case OutcomeWon:
		return "won"
	default:
		return "none"
	}
}

// Message returns the end-of-game text shown to the player.
func (o Outcome) Message() string {
	switch o {
	case OutcomeCaughtByEnemy:
		return "Player was caught by an enemy!"
	case OutcomeSteppedOnTrap:
		return "Player stepped on a trap!"
	case OutcomeBlownUp:
		return "Player was blown up by a bomb!"
	case OutcomeWon:
		return "YOU WIN!"
	default:
		return ""
	}
}

// Scoring.
const (
	scorePerEnemy = 25
	winBonus      = 100
)

// statusDuration is how many ticks a transient status line stays on screen
// (~2s at 20 ticks/s).
const statusDuration = 40

// Package-level knobs set by the CLI/platform before game creation.
var (
	configPath string
	loadPath   string
)

// SetConfigPath sets a custom config file path for the next game.
func SetConfigPath(path string) {
	configPath = path
}

// SetLoadPath requests that the next Reset restore the world from the given
// save file instead of generating a fresh one. Cleared after use.
func SetLoadPath(path string) {
	loadPath = path
}

// Game implements the Bomber game.
type Game struct {
	cfg   core.RuntimeConfig
	conf  config.BomberConfig
	rng   *rand.Rand
	clock func() time.Time // stubbed in tests
	tick  uint64

	grid *Grid
	reg  *Registry

	outcome         Outcome
	score           int
	enemiesDefeated int
	paused          bool
	tooSmall        bool
	initErr         error

	// Transient HUD status (save feedback)
	statusLine  string
	statusTicks int

	// Screen layout
	hudHeight  int
	mapOffsetX int
	mapOffsetY int
}

// New creates a new Bomber game.
func New() *Game {
	return &Game{}
}

func init() {
	registry.Register("bomber", func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "bomber"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Bomber"
}

// Reset initializes/restarts the game. If a load path was requested it
// restores the saved world; otherwise it generates a fresh one from the seed.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	conf, err := config.LoadBomber(configPath)
	if err != nil {
		conf = config.DefaultBomberConfig()
	}

	g.cfg = cfg
	g.conf = conf
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	if g.clock == nil {
		g.clock = time.Now
	}
	g.tick = 0
	g.score = 0
	g.enemiesDefeated = 0
	g.outcome = OutcomeNone
	g.paused = false
	g.initErr = nil
	g.statusLine = ""
	g.statusTicks = 0
	g.hudHeight = 2

	g.layoutScreen()

	if loadPath != "" {
		path := loadPath
		loadPath = ""
		if loadErr := g.LoadFrom(path); loadErr == nil {
			return
		}
		// Unreadable save: fall through to a fresh world.
	}

	grid, enemies, door, genErr := generateWorld(g.rng, conf)
	if genErr != nil {
		g.initErr = genErr
		return
	}
	g.grid = grid
	g.reg = newRegistry(conf.Bombs.Max)
	g.reg.Enemies = enemies
	g.reg.Door = door
}

// layoutScreen computes map placement and the too-small flag.
func (g *Game) layoutScreen() {
	requiredW := g.conf.Grid.Width
	requiredH := g.conf.Grid.Height + g.hudHeight + 1 // +1 status line
	g.tooSmall = g.cfg.ScreenW < requiredW || g.cfg.ScreenH < requiredH
	g.mapOffsetX = (g.cfg.ScreenW - g.conf.Grid.Width) / 2
	g.mapOffsetY = g.hudHeight
}

// Step advances the game by one tick, consuming at most one command.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	// Handle restart after a terminal outcome
	if in.Has(core.ActionRestart) && g.outcome != OutcomeNone {
		g.Reset(core.RuntimeConfig{
			Seed:     g.rng.Int63(),
			ScreenW:  g.cfg.ScreenW,
			ScreenH:  g.cfg.ScreenH,
			TickRate: g.cfg.TickRate,
			SavePath: g.cfg.SavePath,
		})
		return core.StepResult{State: g.State()}
	}

	// Handle pause toggle
	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}

	if g.outcome != OutcomeNone || g.paused || g.tooSmall || g.initErr != nil {
		return core.StepResult{State: g.State()}
	}

	if g.statusTicks > 0 {
		g.statusTicks--
		if g.statusTicks == 0 {
			g.statusLine = ""
		}
	}

	g.applyCommand(in)
	g.updateWorld()

	return core.StepResult{State: g.State()}
}

// applyCommand dispatches the tick's single external command.
func (g *Game) applyCommand(in core.InputFrame) {
	switch {
	case in.Has(core.ActionUp):
		g.movePlayer(0, -1)
	case in.Has(core.ActionDown):
		g.movePlayer(0, 1)
	case in.Has(core.ActionLeft):
		g.movePlayer(-1, 0)
	case in.Has(core.ActionRight):
		g.movePlayer(1, 0)
	case in.Has(core.ActionBomb):
		// Rejection (no capacity or slots full) is a silent no-op.
		g.reg.PlantBomb(g.reg.Player.Pos, g.clock())
	case in.Has(core.ActionSave):
		g.saveRequested()
	}
}

// movePlayer attempts to move the player; an invalid target is a silent
// no-op with no state change.
func (g *Game) movePlayer(dx, dy int) {
	next := Position{X: g.reg.Player.Pos.X + dx, Y: g.reg.Player.Pos.Y + dy}
	if canEnter(g.grid, next) {
		g.reg.Player.Pos = next
	}
}

// updateWorld runs the fixed per-tick update order: enemy contact, trap
// underfoot, enemy movement, due bombs, exit check.
func (g *Game) updateWorld() {
	now := g.clock()
	player := g.reg.Player.Pos

	if g.reg.EnemyAt(player) >= 0 {
		g.outcome = OutcomeCaughtByEnemy
		return
	}

	if g.grid.At(player.X, player.Y).Kind == CellTrap {
		g.outcome = OutcomeSteppedOnTrap
		return
	}

	g.updateEnemies()

	if g.explodeDue(now) {
		g.outcome = OutcomeBlownUp
		return
	}

	if g.reg.Door.Visible && g.reg.Player.Pos == g.reg.Door.Pos {
		g.score += winBonus
		g.outcome = OutcomeWon
	}
}

// updateEnemies advances every enemy's tick counter and moves the eligible
// ones one cell along their pattern. An invalid target leaves the enemy in
// place for that attempt.
func (g *Game) updateEnemies() {
	period := g.conf.Enemies.MovePeriod
	for i := range g.reg.Enemies {
		e := &g.reg.Enemies[i]
		e.step++
		if e.step < period {
			continue
		}
		e.step = 0

		next := e.Pos
		roll := g.rng.Intn(4)
		switch e.Pattern {
		case PatternHorizontal:
			if roll < 2 {
				next.X++
			} else {
				next.X--
			}
		case PatternVertical:
			if roll < 2 {
				next.Y--
			} else {
				next.Y++
			}
		case PatternBoth:
			// Horizontal and vertical mappings applied together.
			if roll < 2 {
				next.X++
				next.Y--
			} else {
				next.X--
				next.Y++
			}
		}

		if canEnter(g.grid, next) {
			e.Pos = next
		}
	}
}

// saveRequested writes the world to the configured save file and surfaces
// the result on the status line. The world itself is never mutated.
func (g *Game) saveRequested() {
	if g.cfg.SavePath == "" {
		g.setStatus("No save path configured")
		return
	}
	if err := g.SaveTo(g.cfg.SavePath); err != nil {
		g.setStatus("Unable to save game!")
		return
	}
	g.setStatus("Game saved successfully!")
}

func (g *Game) setStatus(line string) {
	g.statusLine = line
	g.statusTicks = statusDuration
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.outcome != OutcomeNone || g.initErr != nil,
		Paused:   g.paused,
	}
}

// Outcome returns how the run ended, or OutcomeNone while it is live.
func (g *Game) Outcome() Outcome {
	return g.outcome
}

// RunSummary reports the finished run for record keeping.
func (g *Game) RunSummary() core.RunSummary {
	summary := core.RunSummary{
		Outcome:         g.outcome.String(),
		Score:           g.score,
		EnemiesDefeated: g.enemiesDefeated,
	}
	if g.reg != nil {
		summary.BombsPlanted = g.reg.BombsPlanted
	}
	return summary
}
