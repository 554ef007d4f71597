package core

// Action represents a semantic game action, abstracted from physical key presses.
// Games work with intents; the platform decides which keys and buttons map to them.
type Action int

const (
	ActionNone       Action = iota
	ActionStepOne           // Left arrow, J, left mouse button - hop one segment
	ActionStepTwo           // Right arrow, K, right mouse button - hop two segments
	ActionTouchLeft         // Press in the left screen zone (touch-style input)
	ActionTouchRight        // Press in the right screen zone (touch-style input)
	ActionConfirm           // Enter, Space - confirm / start
	ActionBack              // B, Escape - go back to menu
	ActionQuit              // Q, Ctrl+C - exit game/session
	ActionPause             // P - pause/unpause game
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionStepOne:
		return "StepOne"
	case ActionStepTwo:
		return "StepTwo"
	case ActionTouchLeft:
		return "TouchLeft"
	case ActionTouchRight:
		return "TouchRight"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionQuit:
		return "Quit"
	case ActionPause:
		return "Pause"
	default:
		return "Unknown"
	}
}

// InputFrame represents the input collected during one simulation tick.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}
