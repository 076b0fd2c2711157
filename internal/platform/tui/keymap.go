package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/shmup/internal/core"
)

// KeyMapper translates Bubble Tea key messages to handheld buttons.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to a button. ok is false for keys
// that are not buttons.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (btn core.Button, ok bool) {
	switch msg.String() {
	case "left", "a", "h":
		return core.ButtonLeft, true
	case "right", "d", "l":
		return core.ButtonRight, true
	case "up", "w", "k":
		return core.ButtonUp, true
	case "down", "s", "j":
		return core.ButtonDown, true
	case " ", "z":
		return core.ButtonA, true
	case "x":
		return core.ButtonB, true
	case "enter":
		return core.ButtonStart, true
	case "backspace":
		return core.ButtonSelect, true
	}
	return 0, false
}

// IsQuit reports whether the key ends the program.
func (km *KeyMapper) IsQuit(msg tea.KeyMsg) bool {
	switch msg.String() {
	case "ctrl+c", "q":
		return true
	}
	return false
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionHistory
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
		return MenuActionHistory
	}

	return MenuActionNone
}
