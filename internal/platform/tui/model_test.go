package tui

import (
	"io"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/leap-arcade/internal/core"
	"github.com/vovakirdan/leap-arcade/internal/storage"
)

// scriptedGame finishes one run on the tick given by finishAt.
type scriptedGame struct {
	ticks    int
	finishAt int
	resets   int
	closed   bool
	inputs   []core.InputFrame
}

func (g *scriptedGame) ID() string    { return "scripted" }
func (g *scriptedGame) Title() string { return "Scripted" }

func (g *scriptedGame) Reset(core.RuntimeConfig) {
	g.resets++
	g.ticks = 0
}

func (g *scriptedGame) Step(in core.InputFrame) core.StepResult {
	g.ticks++
	frame := core.NewInputFrame()
	for a := range in.Actions {
		frame.Set(a)
	}
	g.inputs = append(g.inputs, frame)

	res := core.StepResult{State: g.State()}
	if g.ticks == g.finishAt {
		res.Finished = []core.RunSummary{{Score: 6, Course: "abcd", Jumps: 4, Elapsed: 1.5}}
	}
	return res
}

func (g *scriptedGame) Render(dst *core.Screen) { dst.DrawText(0, 0, "scripted") }
func (g *scriptedGame) State() core.GameState   { return core.GameState{Score: g.ticks} }
func (g *scriptedGame) Close() error            { g.closed = true; return nil }

func newTestModel(t *testing.T, game *scriptedGame) (Model, *storage.Store) {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "runs.db"))
	if err != nil {
		t.Fatalf("storage.Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	cfg := core.RuntimeConfig{ScreenW: 40, ScreenH: 10, TickRate: 60, Seed: 1}
	m := NewModel(game, store, cfg, log.New(io.Discard))
	m.Init()
	return m, store
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return nm
}

func TestModelSavesFinishedRuns(t *testing.T) {
	game := &scriptedGame{finishAt: 3}
	m, store := newTestModel(t, game)

	if game.resets != 1 {
		t.Fatalf("expected one reset on init, got %d", game.resets)
	}

	for i := 0; i < 5; i++ {
		m = update(t, m, TickMsg{})
	}

	if m.SavedRuns() != 1 {
		t.Fatalf("expected 1 saved run, got %d", m.SavedRuns())
	}

	runs, err := store.TopRuns("scripted", 10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("expected 1 stored run, got %d", len(runs))
	}
	if runs[0].Score != 6 || runs[0].Course != "abcd" || runs[0].Jumps != 4 {
		t.Errorf("unexpected stored run: %+v", runs[0])
	}
}

func TestModelWithoutStore(t *testing.T) {
	game := &scriptedGame{finishAt: 1}
	m := NewModel(game, nil, core.RuntimeConfig{ScreenW: 20, ScreenH: 5, TickRate: 60}, nil)
	m.Init()

	m = update(t, m, TickMsg{})
	if m.SavedRuns() != 0 {
		t.Errorf("expected nothing saved without a store, got %d", m.SavedRuns())
	}
}

func TestModelInputReachesGameOnce(t *testing.T) {
	game := &scriptedGame{}
	m, _ := newTestModel(t, game)

	m = update(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	m = update(t, m, TickMsg{})
	m = update(t, m, TickMsg{})

	if len(game.inputs) != 2 {
		t.Fatalf("expected 2 steps, got %d", len(game.inputs))
	}
	if !game.inputs[0].Has(core.ActionStepOne) {
		t.Error("expected StepOne on first tick")
	}
	if game.inputs[1].Has(core.ActionStepOne) {
		t.Error("input should be cleared after a tick")
	}
}

func TestModelMouseUsesScreenHalves(t *testing.T) {
	game := &scriptedGame{}
	m, _ := newTestModel(t, game)

	m = update(t, m, tea.MouseMsg{X: 35, Y: 2, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	m = update(t, m, tea.MouseMsg{X: 35, Y: 2, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft})
	m = update(t, m, TickMsg{})

	in := game.inputs[0]
	if !in.Has(core.ActionTouchRight) || in.Has(core.ActionTouchLeft) {
		t.Errorf("expected a right-zone touch, got %v", in.Actions)
	}
}

func TestModelResizeKeepsRun(t *testing.T) {
	game := &scriptedGame{}
	m, _ := newTestModel(t, game)

	m = update(t, m, TickMsg{})
	m = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})

	if game.resets != 1 {
		t.Errorf("resize should not reset the game, resets = %d", game.resets)
	}
	if m.screen.Width() != 100 || m.screen.Height() != 30 {
		t.Errorf("screen not resized: %dx%d", m.screen.Width(), m.screen.Height())
	}
}

func TestModelBackAndQuit(t *testing.T) {
	game := &scriptedGame{}
	m, _ := newTestModel(t, game)

	back := update(t, m, runeKey("b"))
	if !back.BackToMenu() || back.IsQuitting() {
		t.Error("expected back to menu")
	}

	quit := update(t, m, runeKey("q"))
	if !quit.IsQuitting() {
		t.Error("expected quit")
	}
	if quit.View() != "" {
		t.Error("quitting model should render nothing")
	}
}

func TestModelViewRendersGame(t *testing.T) {
	game := &scriptedGame{}
	m, _ := newTestModel(t, game)

	if got := m.View(); got == "" {
		t.Fatal("View() returned empty output")
	}
}

func TestCloseGame(t *testing.T) {
	game := &scriptedGame{}
	closeGame(game, nil)
	if !game.closed {
		t.Error("expected game to be closed")
	}
}
