package leap

import (
	"github.com/charmbracelet/log"
)

// Phase is the top-level game state.
type Phase int

const (
	PhaseInit    Phase = iota // road built, start panel shown, input off
	PhasePlaying              // input armed, landings judged
	PhaseEnd                  // reserved; nothing enters it yet
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseInit:
		return "Init"
	case PhasePlaying:
		return "Playing"
	case PhaseEnd:
		return "End"
	default:
		return "Unknown"
	}
}

// CanTransitionTo reports whether the flow allows moving from p to target.
// Init may be re-entered from anywhere.
func (p Phase) CanTransitionTo(target Phase) bool {
	switch target {
	case PhaseInit:
		return true
	case PhasePlaying:
		return p == PhaseInit
	default:
		return false
	}
}

// RunResult describes one finished attempt at the road.
type RunResult struct {
	Steps     int     // segments reached, capped at the road length
	Completed bool    // true when the player went past the last segment
	Course    string  // fingerprint of the road played
	Jumps     int     // accepted jump commands
	Elapsed   float64 // seconds spent in Playing
}

// RoadSource builds the road for each level. RoadGenerator is the
// production source.
type RoadSource interface {
	Generate(length int) (Road, error)
}

// FlowConfig holds the tunables of a Flow.
type FlowConfig struct {
	RoadLength int
	InputDelay float64 // seconds between Start and input being armed
	InputMode  InputMode
}

// Flow orchestrates a level: it owns the road, arms input while playing and
// judges every landing reported by the JumpMotion.
type Flow struct {
	cfg       FlowConfig
	phase     Phase
	generator RoadSource
	motion    *JumpMotion
	router    *InputRouter
	display   Display
	logger    *log.Logger

	road   Road
	timers timerQueue
	input  *InputHandle

	steps   int
	jumps   int
	elapsed float64

	onRunEnd []func(RunResult)
}

// NewFlow wires a flow to its generator, motion and display. display may be
// nil. The flow starts in Init with no road; call Init to build one.
func NewFlow(cfg FlowConfig, generator RoadSource, motion *JumpMotion, display Display, logger *log.Logger) *Flow {
	f := &Flow{
		cfg:       cfg,
		phase:     PhaseInit,
		generator: generator,
		motion:    motion,
		display:   display,
		logger:    orDiscard(logger),
	}
	f.router = NewInputRouter(f.handleStep)
	motion.OnJumpComplete(f.handleLanding)
	return f
}

// OnRunEnd registers a listener called when a run ends, before the flow
// returns to Init.
func (f *Flow) OnRunEnd(fn func(RunResult)) {
	f.onRunEnd = append(f.onRunEnd, fn)
}

// Configure replaces the tunables. The new road length applies on the next Init.
func (f *Flow) Configure(cfg FlowConfig) {
	f.cfg = cfg
}

// Phase returns the current phase.
func (f *Flow) Phase() Phase {
	return f.phase
}

// Road returns the current road.
func (f *Flow) Road() Road {
	return f.road
}

// Motion returns the player's motion.
func (f *Flow) Motion() *JumpMotion {
	return f.motion
}

// Steps returns the step counter shown to the player.
func (f *Flow) Steps() int {
	return f.steps
}

// InputActive reports whether a listener is attached.
func (f *Flow) InputActive() bool {
	return f.input.Active()
}

// Init (re)enters the Init phase: a fresh road, the player back at the
// origin, the start panel shown and input detached. Safe to call from any phase.
func (f *Flow) Init() {
	f.leavePlaying()
	f.phase = PhaseInit

	road, err := f.generator.Generate(f.cfg.RoadLength)
	if err != nil {
		f.logger.Error("road generation failed", "err", err)
		road = Road{}
	}
	f.road = road
	f.motion.Reset()

	if f.display != nil {
		f.display.SetStartPanelVisible(true)
	}
	f.logger.Debug("phase init", "course", road.Fingerprint(), "length", road.Len())
}

// Start moves from Init to Playing. Input is armed after the configured delay
// so the event that triggered Start is not taken as a jump. It returns false
// when not in Init or when there is no road to play.
func (f *Flow) Start() bool {
	if !f.phase.CanTransitionTo(PhasePlaying) || f.road.Len() == 0 {
		return false
	}
	f.phase = PhasePlaying
	f.steps = 0
	f.jumps = 0
	f.elapsed = 0

	if f.display != nil {
		f.display.SetStartPanelVisible(false)
		f.display.SetStepCount(0)
	}

	f.timers.After(f.cfg.InputDelay, func() {
		if f.phase == PhasePlaying {
			f.SetInputActive(true, f.cfg.InputMode)
		}
	})
	f.logger.Debug("phase playing", "input_delay", f.cfg.InputDelay)
	return true
}

// SetInputActive attaches a listener for mode, or detaches the current one.
func (f *Flow) SetInputActive(active bool, mode InputMode) {
	if !active {
		f.input.Release()
		f.input = nil
		return
	}
	f.input = f.router.Activate(mode)
	f.logger.Debug("input armed", "mode", f.input.Mode())
}

// Dispatch forwards a classified device signal. Signals are dropped unless
// input is armed and matches the configured mode.
func (f *Flow) Dispatch(sig Signal) int {
	return f.router.Dispatch(sig)
}

// Advance runs pending timers and then moves the player by dt seconds.
func (f *Flow) Advance(dt float64) {
	if f.phase == PhasePlaying {
		f.elapsed += dt
	}
	f.timers.Advance(dt)
	f.motion.Advance(dt)
}

func (f *Flow) leavePlaying() {
	f.timers.CancelAll()
	f.SetInputActive(false, f.cfg.InputMode)
}

func (f *Flow) handleStep(step int) {
	if f.phase != PhasePlaying {
		return
	}
	outcome := f.motion.CommandStep(step)
	switch outcome {
	case Accepted:
		f.jumps++
	case MissingClip:
		f.logger.Debug("jump skipped, clip missing", "clip", clipForStep(step))
	}
}

func (f *Flow) handleLanding(gridIndex int) {
	if f.phase != PhasePlaying {
		return
	}

	length := f.road.Len()
	f.steps = min(gridIndex, length)
	if f.display != nil {
		f.display.SetStepCount(f.steps)
	}

	switch {
	case gridIndex >= length:
		f.endRun(true)
	case f.road.At(gridIndex) == Empty:
		f.endRun(false)
	}
}

func (f *Flow) endRun(completed bool) {
	result := RunResult{
		Steps:     f.steps,
		Completed: completed,
		Course:    f.road.Fingerprint(),
		Jumps:     f.jumps,
		Elapsed:   f.elapsed,
	}
	f.logger.Info("run ended", "steps", result.Steps, "completed", completed, "course", result.Course)

	for _, fn := range f.onRunEnd {
		fn(result)
	}
	f.Init()
}
