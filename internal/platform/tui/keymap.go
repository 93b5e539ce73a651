package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/vanguard/internal/core"
)

// KeyMapper accumulates key presses between simulation ticks and folds them
// into a normalized input frame. Terminals deliver key presses, not held
// state, so each press counts toward the next tick only; opposed directions
// pressed in the same window cancel to zero.
type KeyMapper struct {
	left, right bool
	up, down    bool
	fire        bool
}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// HandleKey records a key press for the next frame.
// Returns true if the key was a quit request.
func (km *KeyMapper) HandleKey(msg tea.KeyMsg) bool {
	switch msg.String() {
	case "ctrl+c", "q", "esc":
		return true
	case "left", "a":
		km.left = true
	case "right", "d":
		km.right = true
	case "up", "w":
		km.up = true
	case "down", "s":
		km.down = true
	case " ":
		km.fire = true
	}
	return false
}

// Frame folds the accumulated presses into an input frame and resets the
// accumulator for the next tick window.
func (km *KeyMapper) Frame() core.InputFrame {
	frame := core.InputFrame{
		DX:   core.Axis(km.left, km.right),
		DY:   core.Axis(km.up, km.down),
		Fire: km.fire,
	}
	*km = KeyMapper{}
	return frame
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
