package leap

// InputMode selects which device events a listener accepts.
type InputMode int

const (
	InputKeyboardMouse InputMode = iota // left/right keys and mouse buttons
	InputTouch                          // presses in the left/right screen zones
)

// String returns the mode name.
func (m InputMode) String() string {
	switch m {
	case InputKeyboardMouse:
		return "KeyboardAndMouse"
	case InputTouch:
		return "Touch"
	default:
		return "Unknown"
	}
}

// ParseInputMode converts a config value to a mode. "auto" and unknown
// values resolve to keyboard and mouse, the only device class a terminal has.
func ParseInputMode(s string) InputMode {
	if s == "touch" {
		return InputTouch
	}
	return InputKeyboardMouse
}

// Signal is a device event already classified by the platform.
type Signal int

const (
	SignalNone      Signal = iota
	SignalPrimary          // left key or left mouse button
	SignalSecondary        // right key or right mouse button
	SignalZoneLeft         // press in the left touch zone
	SignalZoneRight        // press in the right touch zone
)

// InputHandle is an active listener registration. Releasing it detaches the
// listener; release is idempotent.
type InputHandle struct {
	router *InputRouter
	mode   InputMode
	active bool
}

// Mode returns the device mode this handle listens to.
func (h *InputHandle) Mode() InputMode {
	return h.mode
}

// Active reports whether the handle is still attached.
func (h *InputHandle) Active() bool {
	return h != nil && h.active
}

// Release detaches the listener.
func (h *InputHandle) Release() {
	if h == nil || !h.active {
		return
	}
	h.active = false
	if h.router.current == h {
		h.router.current = nil
	}
}

// InputRouter turns device signals into step commands for at most one
// attached listener at a time.
type InputRouter struct {
	current *InputHandle
	onStep  func(step int)
}

// NewInputRouter creates a router that delivers steps to onStep.
func NewInputRouter(onStep func(step int)) *InputRouter {
	return &InputRouter{onStep: onStep}
}

// Activate attaches a listener for mode, releasing any previous one.
func (r *InputRouter) Activate(mode InputMode) *InputHandle {
	if r.current != nil {
		r.current.Release()
	}
	h := &InputHandle{router: r, mode: mode, active: true}
	r.current = h
	return h
}

// Active reports whether any listener is attached.
func (r *InputRouter) Active() bool {
	return r.current != nil
}

// Dispatch delivers a signal. It returns the step it produced, or 0 when the
// signal was dropped because nothing listens or it belongs to another mode.
func (r *InputRouter) Dispatch(sig Signal) int {
	if r.current == nil {
		return 0
	}
	step := stepFor(r.current.mode, sig)
	if step == 0 {
		return 0
	}
	if r.onStep != nil {
		r.onStep(step)
	}
	return step
}

func stepFor(mode InputMode, sig Signal) int {
	switch mode {
	case InputKeyboardMouse:
		switch sig {
		case SignalPrimary:
			return 1
		case SignalSecondary:
			return 2
		}
	case InputTouch:
		switch sig {
		case SignalZoneLeft:
			return 1
		case SignalZoneRight:
			return 2
		}
	}
	return 0
}
