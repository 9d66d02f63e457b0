package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-bomber/internal/core"
)

// KeyMap defines the key bindings for gameplay and the menu.
// Centralized so bindings stay consistent between local and SSH play.
type KeyMap struct {
	Up      key.Binding
	Down    key.Binding
	Left    key.Binding
	Right   key.Binding
	Bomb    key.Binding
	Save    key.Binding
	Pause   key.Binding
	Restart key.Binding
	Confirm key.Binding
	Back    key.Binding
	Quit    key.Binding
}

// DefaultKeyMap returns the standard bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("w", "up", "k"),
			key.WithHelp("w/↑", "move up"),
		),
		Down: key.NewBinding(
			key.WithKeys("s", "down", "j"),
			key.WithHelp("s/↓", "move down"),
		),
		Left: key.NewBinding(
			key.WithKeys("a", "left", "h"),
			key.WithHelp("a/←", "move left"),
		),
		Right: key.NewBinding(
			key.WithKeys("d", "right", "l"),
			key.WithHelp("d/→", "move right"),
		),
		Bomb: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "plant bomb"),
		),
		Save: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "save game"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "pause"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restart"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "select"),
		),
		Back: key.NewBinding(
			key.WithKeys("b", "esc"),
			key.WithHelp("esc", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// MapKey translates a key message to a game action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (k KeyMap) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	switch {
	case key.Matches(msg, k.Quit):
		return core.ActionQuit, true
	case key.Matches(msg, k.Up):
		return core.ActionUp, false
	case key.Matches(msg, k.Down):
		return core.ActionDown, false
	case key.Matches(msg, k.Left):
		return core.ActionLeft, false
	case key.Matches(msg, k.Right):
		return core.ActionRight, false
	case key.Matches(msg, k.Bomb):
		return core.ActionBomb, false
	case key.Matches(msg, k.Save):
		return core.ActionSave, false
	case key.Matches(msg, k.Pause):
		return core.ActionPause, false
	case key.Matches(msg, k.Restart):
		return core.ActionRestart, false
	case key.Matches(msg, k.Confirm):
		return core.ActionConfirm, false
	case key.Matches(msg, k.Back):
		return core.ActionBack, false
	}
	return core.ActionNone, false
}
