package leap

import (
	"math"
	"testing"
)

// fakeAnimator serves fixed clip durations and records played clips.
type fakeAnimator struct {
	durations map[string]float64
	played    []string
}

func newFakeAnimator() *fakeAnimator {
	return &fakeAnimator{durations: map[string]float64{
		ClipOneStep: 0.1,
		ClipTwoStep: 0.2,
	}}
}

func (a *fakeAnimator) ClipDuration(name string) (float64, bool) {
	d, ok := a.durations[name]
	return d, ok
}

func (a *fakeAnimator) Play(name string) {
	a.played = append(a.played, name)
}

const frame = 1.0 / 60.0

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

// runFrames advances m until the jump lands or the frame limit is hit.
func runFrames(m *JumpMotion, limit int) int {
	n := 0
	for m.Jumping() && n < limit {
		m.Advance(frame)
		n++
	}
	return n
}

func TestCommandStepAdvancesGridIndexImmediately(t *testing.T) {
	anim := newFakeAnimator()
	m := NewJumpMotion(anim, 40)

	if got := m.CommandStep(1); got != Accepted {
		t.Fatalf("expected Accepted, got %v", got)
	}

	st := m.State()
	if st.GridIndex != 1 {
		t.Errorf("grid index should advance on command, got %d", st.GridIndex)
	}
	if !st.Jumping {
		t.Error("expected jumping")
	}
	if st.Position.X() != 0 {
		t.Errorf("visual position should not move before Advance, got %v", st.Position.X())
	}
	if !approx(st.JumpSpeed, 400) {
		t.Errorf("expected speed 40/0.1=400, got %v", st.JumpSpeed)
	}
	if len(anim.played) != 1 || anim.played[0] != ClipOneStep {
		t.Errorf("expected oneStep clip played, got %v", anim.played)
	}
}

func TestAdvanceSnapsToTargetAndFiresOnce(t *testing.T) {
	for _, step := range []int{1, 2} {
		m := NewJumpMotion(newFakeAnimator(), 40)

		var events []int
		m.OnJumpComplete(func(idx int) { events = append(events, idx) })

		m.CommandStep(step)

		m.Advance(frame)
		if m.Position() <= 0 || m.Position() >= float64(step)*40 {
			t.Errorf("step %d: expected position between 0 and target mid-jump, got %v", step, m.Position())
		}

		runFrames(m, 1000)
		for i := 0; i < 30; i++ {
			m.Advance(frame)
		}

		if m.Position() != float64(step)*40 {
			t.Errorf("step %d: expected exact snap to %v, got %v", step, float64(step)*40, m.Position())
		}
		if len(events) != 1 || events[0] != step {
			t.Errorf("step %d: expected one completion with index %d, got %v", step, step, events)
		}
	}
}

func TestAdvanceLargeDeltaCompletes(t *testing.T) {
	m := NewJumpMotion(newFakeAnimator(), 40)
	fired := 0
	m.OnJumpComplete(func(int) { fired++ })

	m.CommandStep(2)
	m.Advance(5)

	if m.Jumping() || m.Position() != 80 || fired != 1 {
		t.Errorf("expected landed at 80 with one event, got jumping=%v pos=%v events=%d", m.Jumping(), m.Position(), fired)
	}
}

func TestCommandStepWhileJumpingIsDropped(t *testing.T) {
	anim := newFakeAnimator()
	m := NewJumpMotion(anim, 40)

	m.CommandStep(1)
	before := m.State()

	if got := m.CommandStep(2); got != RejectedBusy {
		t.Fatalf("expected RejectedBusy, got %v", got)
	}
	if m.State() != before {
		t.Errorf("state changed by rejected command: %+v vs %+v", m.State(), before)
	}
	if len(anim.played) != 1 {
		t.Errorf("rejected command must not play a clip, played %v", anim.played)
	}

	runFrames(m, 1000)
	if m.GridIndex() != 1 {
		t.Errorf("expected grid index 1, got %d", m.GridIndex())
	}
	if got := m.CommandStep(2); got != Accepted {
		t.Errorf("expected Accepted after landing, got %v", got)
	}
	if m.GridIndex() != 3 {
		t.Errorf("expected grid index 3, got %d", m.GridIndex())
	}
}

func TestCommandStepInvalid(t *testing.T) {
	for _, step := range []int{0, 3, -1} {
		m := NewJumpMotion(newFakeAnimator(), 40)
		if got := m.CommandStep(step); got != RejectedInvalidStep {
			t.Errorf("step %d: expected RejectedInvalidStep, got %v", step, got)
		}
		if m.Jumping() || m.GridIndex() != 0 {
			t.Errorf("step %d: state changed", step)
		}
	}
}

func TestCommandStepMissingClip(t *testing.T) {
	tests := []struct {
		name      string
		durations map[string]float64
		step      int
	}{
		{"absent", map[string]float64{ClipOneStep: 0.1}, 2},
		{"zero duration", map[string]float64{ClipOneStep: 0}, 1},
		{"negative duration", map[string]float64{ClipTwoStep: -1}, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			anim := &fakeAnimator{durations: tt.durations}
			m := NewJumpMotion(anim, 40)
			before := m.State()

			if got := m.CommandStep(tt.step); got != MissingClip {
				t.Fatalf("expected MissingClip, got %v", got)
			}
			if m.State() != before {
				t.Errorf("missing clip must be a no-op, state %+v", m.State())
			}
			if len(anim.played) != 0 {
				t.Errorf("nothing should play, got %v", anim.played)
			}
		})
	}

	if got := NewJumpMotion(nil, 40).CommandStep(1); got != MissingClip {
		t.Errorf("nil animator: expected MissingClip, got %v", got)
	}
}

func TestProgressAndReset(t *testing.T) {
	m := NewJumpMotion(newFakeAnimator(), 40)
	if m.Progress() != 0 {
		t.Error("idle progress should be 0")
	}

	m.CommandStep(1)
	m.Advance(0.05)
	if p := m.Progress(); p < 0.49 || p > 0.51 {
		t.Errorf("expected progress near 0.5, got %v", p)
	}

	m.Reset()
	if m.Jumping() || m.GridIndex() != 0 || m.Position() != 0 || m.Progress() != 0 {
		t.Errorf("reset should return to origin, got %+v", m.State())
	}
}

func TestIdleAdvanceDoesNothing(t *testing.T) {
	m := NewJumpMotion(newFakeAnimator(), 40)
	fired := false
	m.OnJumpComplete(func(int) { fired = true })

	m.Advance(1)
	if fired || m.Position() != 0 {
		t.Error("idle advance should not move or fire")
	}
}
