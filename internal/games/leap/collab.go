// Package leap implements a "jump the gap" game: a random road of blocks and
// gaps that the player crosses with one- and two-segment hops.
//
// The package splits the game into three parts. RoadGenerator produces the
// level, JumpMotion turns hop commands into timed movement, and Flow runs the
// Init/Playing phases and judges each landing. Drawing, animation assets and
// input devices are collaborators behind small interfaces; Game wires them to
// the arcade platform.
package leap

import (
	"io"

	"github.com/charmbracelet/log"
)

// Clip names queried from the Animator for each step size.
const (
	ClipOneStep = "oneStep"
	ClipTwoStep = "twoStep"
)

// Animator looks up and plays jump animation clips.
// ClipDuration reports ok=false when the clip asset is missing.
type Animator interface {
	ClipDuration(name string) (seconds float64, ok bool)
	Play(name string)
}

// Display receives the visible game state: the step counter and whether the
// start panel is shown.
type Display interface {
	SetStepCount(n int)
	SetStartPanelVisible(visible bool)
}

// Tickable is advanced once per frame by the scheduler.
type Tickable interface {
	Advance(dt float64)
}

// clipForStep maps a step size to its animation clip.
func clipForStep(step int) string {
	if step == 2 {
		return ClipTwoStep
	}
	return ClipOneStep
}

func orDiscard(l *log.Logger) *log.Logger {
	if l != nil {
		return l
	}
	return log.New(io.Discard)
}
