package tui

import (
	"fmt"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-bomber/internal/core"
	"github.com/vovakirdan/tui-bomber/internal/games/bomber"
	"github.com/vovakirdan/tui-bomber/internal/registry"
	"github.com/vovakirdan/tui-bomber/internal/storage"
)

// mode is the top-level UI state.
type mode int

const (
	modeMenu mode = iota
	modePlaying
)

// menuChoice identifies a menu entry.
type menuChoice int

const (
	menuNewGame menuChoice = iota
	menuLoadGame
	menuQuit
)

var menuLabels = []string{"Start a new game", "Load previous game", "Exit"}

// Menu styling.
var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11"))
	selectedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	noteStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	helpStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

// Model is the Bubble Tea model driving the menu and game flow.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	config     core.RuntimeConfig
	keys       KeyMap
	inputFrame core.InputFrame
	gameState  core.GameState

	mode      mode
	cursor    int
	menuNote  string
	startedAt time.Time

	quitting    bool
	runRecorded bool // Whether the finished run has been written to storage
	seedFixed   bool // An explicit seed repeats the same level every start
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig) Model {
	// Use time-based seed if not specified
	seedFixed := cfg.Seed != 0
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	return Model{
		seedFixed:  seedFixed,
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		config:     cfg,
		keys:       DefaultKeyMap(),
		inputFrame: core.NewInputFrame(),
		mode:       modeMenu,
	}
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.mode == modeMenu {
			return m.handleMenuKey(msg)
		}
		return m.handleGameKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		if m.mode == modePlaying {
			return m.handleTick()
		}
	}

	return m, nil
}

// handleMenuKey processes keyboard input on the menu.
func (m Model) handleMenuKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action, isQuit := m.keys.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}

	switch action {
	case core.ActionUp:
		if m.cursor > 0 {
			m.cursor--
		}
	case core.ActionDown:
		if m.cursor < len(menuLabels)-1 {
			m.cursor++
		}
	case core.ActionConfirm, core.ActionBomb: // enter or space selects
		return m.selectMenuItem(menuChoice(m.cursor))
	}

	return m, nil
}

// selectMenuItem acts on a confirmed menu entry.
func (m Model) selectMenuItem(choice menuChoice) (tea.Model, tea.Cmd) {
	switch choice {
	case menuNewGame:
		return m.startGame(false)

	case menuLoadGame:
		if m.config.SavePath == "" {
			m.menuNote = "No save path configured."
			return m, nil
		}
		if _, err := os.Stat(m.config.SavePath); err != nil {
			m.menuNote = "No saved game found."
			return m, nil
		}
		return m.startGame(true)

	case menuQuit:
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// startGame resets the game (optionally from the save file) and switches to
// gameplay.
func (m Model) startGame(fromSave bool) (tea.Model, tea.Cmd) {
	if fromSave {
		bomber.SetLoadPath(m.config.SavePath)
	}
	if !m.seedFixed {
		m.config.Seed = time.Now().UnixNano()
	}
	m.game.Reset(m.config)
	m.gameState = m.game.State()
	m.mode = modePlaying
	m.menuNote = ""
	m.startedAt = time.Now()
	m.runRecorded = false
	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickRate)
}

// handleGameKey processes keyboard input during gameplay.
func (m Model) handleGameKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action, isQuit := m.keys.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}

	switch action {
	case core.ActionBack:
		if m.gameState.GameOver {
			// Back to menu after a finished run
			m.mode = modeMenu
			m.cursor = 0
			m.inputFrame.Clear()
			return m, nil
		}
		m.inputFrame.Set(core.ActionPause)
	case core.ActionRestart:
		if m.gameState.GameOver {
			m.inputFrame.Set(core.ActionRestart)
			m.runRecorded = false
			m.startedAt = time.Now()
		}
	case core.ActionNone, core.ActionConfirm:
		// Ignored during gameplay
	default:
		m.inputFrame.Set(action)
	}

	return m, nil
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	// Record the run once when it finishes
	if m.gameState.GameOver && !m.runRecorded {
		m.recordRun()
		m.runRecorded = true
	}

	// Clear input for next frame
	m.inputFrame.Clear()

	return m, tickCmd(m.config.TickRate)
}

// recordRun writes the score and the run record to storage, best effort.
func (m *Model) recordRun() {
	if m.store == nil {
		return
	}

	if m.gameState.Score > 0 {
		//nolint:errcheck // Best-effort save, game continues regardless
		m.store.SaveScore(m.game.ID(), m.gameState.Score)
	}

	if summarizer, ok := m.game.(core.RunSummarizer); ok {
		summary := summarizer.RunSummary()
		//nolint:errcheck // Best-effort save, game continues regardless
		m.store.SaveRun(storage.RunRecord{
			GameID:          m.game.ID(),
			Outcome:         summary.Outcome,
			Score:           summary.Score,
			EnemiesDefeated: summary.EnemiesDefeated,
			BombsPlanted:    summary.BombsPlanted,
			DurationSecs:    int(time.Since(m.startedAt).Seconds()),
		})
	}
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	if m.mode == modeMenu {
		return m.menuView()
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// menuView renders the start menu.
func (m Model) menuView() string {
	var sb strings.Builder

	title := titleStyle.Render(m.game.Title())
	lines := []string{"", title, ""}

	for i, label := range menuLabels {
		prefix := "  "
		line := fmt.Sprintf("%d. %s", i+1, label)
		if i == m.cursor {
			lines = append(lines, selectedStyle.Render("> "+line))
		} else {
			lines = append(lines, prefix+line)
		}
	}

	if m.menuNote != "" {
		lines = append(lines, "", noteStyle.Render(m.menuNote))
	}
	lines = append(lines, "", helpStyle.Render("w/s move · enter select · q quit"))

	block := lipgloss.JoinVertical(lipgloss.Left, lines...)
	sb.WriteString(lipgloss.Place(m.config.ScreenW, m.config.ScreenH, lipgloss.Center, lipgloss.Center, block))
	return sb.String()
}

// Run starts the Bubble Tea program with the given model.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig) error {
	model := NewModel(game, store, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
