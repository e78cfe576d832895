package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-tetra/internal/engine"
)

// KeyMapper translates Bubble Tea key messages to game buttons.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKeyToButton translates a key message to an engine button.
// Returns the button and whether the key was bound at all.
func (km *KeyMapper) MapKeyToButton(msg tea.KeyMsg) (engine.Button, bool) {
	switch msg.String() {
	case "left", "h":
		return engine.ButtonMoveLeft, true
	case "right", "l":
		return engine.ButtonMoveRight, true
	case "z":
		return engine.ButtonRotateLeft, true
	case "up", "x":
		return engine.ButtonRotateRight, true
	case "s":
		return engine.ButtonRotateAround, true
	case "down", "j":
		return engine.ButtonDropSoft, true
	case " ":
		return engine.ButtonDropHard, true
	case "enter", "c":
		return engine.ButtonDropSonic, true
	}
	return 0, false
}

// MapKeyToTaps marks the button for a key in the given tap frame.
// Returns true if the key mapped to a button.
func (km *KeyMapper) MapKeyToTaps(msg tea.KeyMsg, taps *engine.ButtonsPressed) bool {
	button, ok := km.MapKeyToButton(msg)
	if ok {
		taps[button] = true
	}
	return ok
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionScoreboard
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k": // vim-style k for up
		return MenuActionUp
	case "s", "down", "j": // vim-style j for down
		return MenuActionDown
	case "enter", " ":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	case "tab":
		return MenuActionScoreboard
	}

	return MenuActionNone
}
