package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/leap-arcade/internal/core"
)

// KeyMapper translates Bubble Tea key and mouse messages to game actions.
// This centralizes bindings and makes them testable.
type KeyMapper struct {
	pressed tea.MouseButton // button held since the last press, if any
}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to an action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	key := msg.String()

	switch key {
	case "ctrl+c", "q":
		return core.ActionQuit, true
	}

	switch key {
	case "left", "a", "j":
		return core.ActionStepOne, false
	case "right", "d", "k":
		return core.ActionStepTwo, false
	case "enter", " ":
		return core.ActionConfirm, false
	case "p", "esc":
		return core.ActionPause, false
	case "b":
		return core.ActionBack, false
	}

	return core.ActionNone, false
}

// MapKeyToFrame updates an input frame based on a key message.
// Returns true if the key was a quit request.
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame) bool {
	action, isQuit := km.MapKey(msg)
	if action != core.ActionNone {
		frame.Set(action)
	}
	return isQuit
}

// MapMouse classifies a mouse click on a width x height screen. Clicks fire
// on release, at the release position; terminals that report releases
// without a button fall back to the button of the last press.
// A left click is both a button (one step) and a touch in the half of the
// screen it landed in; the game keeps whichever its input mode listens to.
// A left click also confirms, standing in for the start button.
func (km *KeyMapper) MapMouse(msg tea.MouseMsg, width, height int) []core.Action {
	if msg.Action == tea.MouseActionPress {
		if msg.Button == tea.MouseButtonLeft || msg.Button == tea.MouseButtonRight {
			km.pressed = msg.Button
		}
		return nil
	}
	if msg.Action != tea.MouseActionRelease {
		return nil
	}

	button := msg.Button
	if button == tea.MouseButtonNone {
		button = km.pressed
	}
	km.pressed = tea.MouseButtonNone

	switch button {
	case tea.MouseButtonLeft:
		zone := core.ActionTouchRight
		left, _ := core.NewRect(0, 0, width, height).SplitH()
		if left.Contains(msg.X, msg.Y) {
			zone = core.ActionTouchLeft
		}
		return []core.Action{core.ActionConfirm, core.ActionStepOne, zone}
	case tea.MouseButtonRight:
		return []core.Action{core.ActionStepTwo}
	}
	return nil
}

// MapMouseToFrame updates an input frame based on a mouse message.
func (km *KeyMapper) MapMouseToFrame(msg tea.MouseMsg, width, height int, frame *core.InputFrame) {
	for _, a := range km.MapMouse(msg, width, height) {
		frame.Set(a)
	}
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
	key := msg.String()

	switch key {
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
