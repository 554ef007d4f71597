package leap

import (
	"github.com/go-gl/mathgl/mgl64"
)

// CommandOutcome tells why CommandStep did or did not start a jump.
// None of the rejections are errors.
type CommandOutcome int

const (
	Accepted            CommandOutcome = iota
	RejectedBusy                       // a jump is already in flight
	RejectedInvalidStep                // step is not 1 or 2
	MissingClip                        // no animation clip for the step
)

// String returns the outcome name.
func (o CommandOutcome) String() string {
	switch o {
	case Accepted:
		return "Accepted"
	case RejectedBusy:
		return "RejectedBusy"
	case RejectedInvalidStep:
		return "RejectedInvalidStep"
	case MissingClip:
		return "MissingClip"
	default:
		return "Unknown"
	}
}

// travelAxis is the direction the player moves along the road.
var travelAxis = mgl64.Vec3{1, 0, 0}

// PlayerState is a snapshot of the jumping player.
type PlayerState struct {
	Position       mgl64.Vec3 // visual position, y and z stay 0
	GridIndex      int        // logical segment index used for landing checks
	Jumping        bool
	Elapsed        float64 // seconds since the current jump started
	JumpDuration   float64
	JumpSpeed      float64 // units per second along the travel axis
	TargetPosition mgl64.Vec3
	Step           int // size of the current or last jump
}

// JumpMotion moves the player between grid positions. The grid index advances
// as soon as a jump is accepted; the visual position catches up over the clip
// duration and snaps to the target when the jump completes.
type JumpMotion struct {
	state      PlayerState
	unitSize   float64
	animator   Animator
	onComplete []func(gridIndex int)
}

// NewJumpMotion creates an idle player at the origin.
func NewJumpMotion(animator Animator, unitSize float64) *JumpMotion {
	return &JumpMotion{
		animator: animator,
		unitSize: unitSize,
	}
}

// OnJumpComplete registers a listener called once per finished jump with the
// player's grid index.
func (m *JumpMotion) OnJumpComplete(fn func(gridIndex int)) {
	m.onComplete = append(m.onComplete, fn)
}

// Reset puts the player back at the origin, idle, at grid index 0.
func (m *JumpMotion) Reset() {
	m.state = PlayerState{}
}

// State returns a copy of the player state.
func (m *JumpMotion) State() PlayerState {
	return m.state
}

// GridIndex returns the logical position of the player.
func (m *JumpMotion) GridIndex() int {
	return m.state.GridIndex
}

// Jumping reports whether a jump is in flight.
func (m *JumpMotion) Jumping() bool {
	return m.state.Jumping
}

// Position returns the visual position along the travel axis.
func (m *JumpMotion) Position() float64 {
	return m.state.Position.X()
}

// Progress returns how far the current jump is, from 0 to 1.
// Idle players report 0.
func (m *JumpMotion) Progress() float64 {
	if !m.state.Jumping || m.state.JumpDuration <= 0 {
		return 0
	}
	p := m.state.Elapsed / m.state.JumpDuration
	if p > 1 {
		return 1
	}
	return p
}

// CommandStep starts a jump of one or two segments. At most one jump is in
// flight; further commands are dropped until it completes.
func (m *JumpMotion) CommandStep(step int) CommandOutcome {
	if m.state.Jumping {
		return RejectedBusy
	}
	if step != 1 && step != 2 {
		return RejectedInvalidStep
	}
	if m.animator == nil {
		return MissingClip
	}

	clip := clipForStep(step)
	duration, ok := m.animator.ClipDuration(clip)
	if !ok || duration <= 0 {
		return MissingClip
	}

	distance := float64(step) * m.unitSize
	origin := m.state.Position

	m.state.Jumping = true
	m.state.Step = step
	m.state.Elapsed = 0
	m.state.JumpDuration = duration
	m.state.JumpSpeed = distance / duration
	m.state.TargetPosition = origin.Add(travelAxis.Mul(distance))

	m.animator.Play(clip)

	m.state.GridIndex += step
	return Accepted
}

// Advance moves the player by dt seconds. The first call whose accumulated
// time exceeds the jump duration snaps to the target and fires the completion
// listeners.
func (m *JumpMotion) Advance(dt float64) {
	if !m.state.Jumping {
		return
	}

	m.state.Elapsed += dt
	if m.state.Elapsed <= m.state.JumpDuration {
		m.state.Position = m.state.Position.Add(travelAxis.Mul(m.state.JumpSpeed * dt))
		return
	}

	m.state.Position = m.state.TargetPosition
	m.state.Jumping = false

	index := m.state.GridIndex
	for _, fn := range m.onComplete {
		fn(index)
	}
}
