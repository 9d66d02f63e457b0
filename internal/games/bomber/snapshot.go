package bomber

// GamePhase represents the coarse state of the game.
type GamePhase string

const (
	PhasePlaying     GamePhase = "playing"
	PhasePaused      GamePhase = "paused"
	PhaseGameOver    GamePhase = "game_over"
	PhaseWon         GamePhase = "won"
	PhasePausedSmall GamePhase = "paused_small_window"
)

// EnemyView is one enemy's externally visible state.
type EnemyView struct {
	X, Y    int
	Pattern MovePattern
}

// Snapshot captures the observable world state for rendering hosts,
// determinism testing and replay.
type Snapshot struct {
	Tick            uint64
	Score           int
	Outcome         Outcome
	Phase           GamePhase
	PlayerX         int
	PlayerY         int
	Capacity        int
	ActiveBombs     int
	BombsPlanted    int
	Enemies         []EnemyView
	EnemiesDefeated int
	DoorX           int
	DoorY           int
	DoorVisible     bool
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	phase := PhasePlaying
	switch {
	case g.tooSmall:
		phase = PhasePausedSmall
	case g.outcome == OutcomeWon:
		phase = PhaseWon
	case g.outcome != OutcomeNone:
		phase = PhaseGameOver
	case g.paused:
		phase = PhasePaused
	}

	snap := Snapshot{
		Tick:            g.tick,
		Score:           g.score,
		Outcome:         g.outcome,
		Phase:           phase,
		EnemiesDefeated: g.enemiesDefeated,
	}
	if g.reg == nil {
		return snap
	}

	snap.PlayerX = g.reg.Player.Pos.X
	snap.PlayerY = g.reg.Player.Pos.Y
	snap.Capacity = g.reg.Player.Capacity
	snap.ActiveBombs = len(g.reg.Bombs)
	snap.BombsPlanted = g.reg.BombsPlanted
	snap.DoorX = g.reg.Door.Pos.X
	snap.DoorY = g.reg.Door.Pos.Y
	snap.DoorVisible = g.reg.Door.Visible

	snap.Enemies = make([]EnemyView, len(g.reg.Enemies))
	for i, e := range g.reg.Enemies {
		snap.Enemies[i] = EnemyView{X: e.Pos.X, Y: e.Pos.Y, Pattern: e.Pattern}
	}
	return snap
}
