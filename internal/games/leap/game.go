package leap

import (
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/leap-arcade/internal/config"
	"github.com/vovakirdan/leap-arcade/internal/core"
	"github.com/vovakirdan/leap-arcade/internal/registry"
)

// Variant selects which road length a game instance plays.
type Variant int

const (
	VariantClassic Variant = iota // road.length from config
	VariantSprint                 // road.sprint_length from config
)

var (
	configPath       string
	difficultyPreset config.DifficultyPreset
	inputOverride    string
	gameLogger       *log.Logger
)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.ParsePreset(preset)
}

// SetInputMode overrides the config's input mode ("auto", "keyboard", "touch").
// An empty string keeps the config value.
func SetInputMode(mode string) {
	inputOverride = mode
}

// SetLogger sets the logger used by games created afterwards.
func SetLogger(l *log.Logger) {
	gameLogger = l
}

// Game adapts the leap flow to the arcade platform.
type Game struct {
	variant Variant
	runtime core.RuntimeConfig
	cfg     config.LeapConfig
	logger  *log.Logger

	difficulty *config.DifficultyManager
	clips      *clipLibrary
	blocks     *blockLayer
	hud        *hud
	flow       *Flow
	watcher    *config.Watcher

	paused   bool
	ticks    int
	best     int
	lastRun  *RunResult
	finished []core.RunSummary
}

// New creates a new Leap game instance.
func New(variant Variant) *Game {
	return &Game{variant: variant}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	if g.variant == VariantSprint {
		return "leap_sprint"
	}
	return "leap"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	if g.variant == VariantSprint {
		return "Leap Sprint"
	}
	return "Leap"
}

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.logger = orDiscard(gameLogger).With("game", g.ID())
	g.cfg = g.loadConfig()

	g.paused = false
	g.ticks = 0
	g.lastRun = nil
	g.finished = nil

	g.difficulty = config.NewDifficultyManager(g.cfg.Difficulty)
	g.blocks = &blockLayer{}
	g.hud = &hud{}
	g.clips = newClipLibrary(g.cfg.Clips, g.difficulty)

	rng := rand.New(rand.NewSource(runtime.Seed))
	generator := NewRoadGenerator(rng, g.blocks, g.cfg.Road.UnitSize, g.logger)
	motion := NewJumpMotion(g.clips, g.cfg.Road.UnitSize)
	g.flow = NewFlow(g.flowConfig(), generator, motion, g.hud, g.logger)
	g.flow.OnRunEnd(g.recordRun)

	g.clips.progress = func() (int, int) {
		return motion.GridIndex(), g.ticks
	}

	g.watch()
	g.flow.Init()
}

// Close stops the config watcher.
func (g *Game) Close() error {
	if g.watcher == nil {
		return nil
	}
	err := g.watcher.Close()
	g.watcher = nil
	return err
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if in.Has(core.ActionPause) && g.flow.Phase() == PhasePlaying {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	g.ticks++

	if in.Has(core.ActionConfirm) && g.flow.Phase() == PhaseInit && g.flow.Start() {
		g.ticks = 0
	}

	for _, b := range signalBindings {
		if in.Has(b.action) {
			g.flow.Dispatch(b.signal)
		}
	}

	g.flow.Advance(g.runtime.FrameDelta())

	result := core.StepResult{
		State:    g.State(),
		Finished: g.finished,
	}
	g.finished = nil
	return result
}

// signalBindings maps platform actions to device signals, in dispatch order.
// When two step actions arrive in one frame the second hits the jump guard.
var signalBindings = []struct {
	action core.Action
	signal Signal
}{
	{core.ActionStepOne, SignalPrimary},
	{core.ActionStepTwo, SignalSecondary},
	{core.ActionTouchLeft, SignalZoneLeft},
	{core.ActionTouchRight, SignalZoneRight},
}

// State returns the current game state. The game never ends on its own:
// every run loops back to the start panel.
func (g *Game) State() core.GameState {
	score := 0
	if g.flow != nil {
		score = g.flow.Steps()
	}
	return core.GameState{
		Score:  score,
		Paused: g.paused,
	}
}

// Flow exposes the underlying flow for inspection.
func (g *Game) Flow() *Flow {
	return g.flow
}

func (g *Game) loadConfig() config.LeapConfig {
	cfg, err := config.LoadLeap(configPath)
	if err != nil {
		g.logger.Warn("using default config", "err", err)
		cfg = config.DefaultLeapConfig()
	}
	if difficultyPreset != "" {
		config.ApplyLeapPreset(&cfg, difficultyPreset)
	}
	if inputOverride != "" {
		cfg.Input.Mode = inputOverride
	}
	return cfg
}

func (g *Game) flowConfig() FlowConfig {
	length := g.cfg.Road.Length
	if g.variant == VariantSprint {
		length = g.cfg.Road.SprintLength
	}
	return FlowConfig{
		RoadLength: length,
		InputDelay: g.cfg.Flow.InputDelay,
		InputMode:  ParseInputMode(g.cfg.Input.Mode),
	}
}

// watch starts a watcher on the config file in use, if it is a real file.
func (g *Game) watch() {
	if g.watcher != nil {
		return
	}
	path := config.ResolveLeapPath(configPath)
	if path == "" {
		return
	}
	w, err := config.NewWatcher(path)
	if err != nil {
		g.logger.Warn("config watch disabled", "path", path, "err", err)
		return
	}
	g.watcher = w
}

// reloadIfChanged applies an edited config before the next road is built.
// Unit size and cell width only change on a full Reset.
func (g *Game) reloadIfChanged() {
	if g.watcher == nil {
		return
	}
	select {
	case err := <-g.watcher.Errors():
		g.logger.Warn("config watch error", "err", err)
	default:
	}
	if !g.watcher.Changed() {
		return
	}
	unit, cell := g.cfg.Road.UnitSize, g.cfg.Road.CellWidth
	g.cfg = g.loadConfig()
	g.cfg.Road.UnitSize, g.cfg.Road.CellWidth = unit, cell

	g.difficulty = config.NewDifficultyManager(g.cfg.Difficulty)
	g.clips.configure(g.cfg.Clips, g.difficulty)
	g.flow.Configure(g.flowConfig())
	g.logger.Info("config reloaded", "path", g.watcher.Path())
}

func (g *Game) recordRun(r RunResult) {
	g.lastRun = &r
	if r.Steps > g.best {
		g.best = r.Steps
	}
	g.finished = append(g.finished, core.RunSummary{
		Score:     r.Steps,
		Completed: r.Completed,
		Course:    r.Course,
		Jumps:     r.Jumps,
		Elapsed:   r.Elapsed,
	})
	g.reloadIfChanged()
}

// clipLibrary serves jump clip durations from config, sped up by difficulty.
type clipLibrary struct {
	base       map[string]float64
	difficulty *config.DifficultyManager
	progress   func() (steps, ticks int)
	playing    string
	plays      int
}

func newClipLibrary(clips map[string]float64, d *config.DifficultyManager) *clipLibrary {
	c := &clipLibrary{}
	c.configure(clips, d)
	return c
}

func (c *clipLibrary) configure(clips map[string]float64, d *config.DifficultyManager) {
	c.base = make(map[string]float64, len(clips))
	for name, secs := range clips {
		c.base[name] = secs
	}
	c.difficulty = d
}

// ClipDuration implements Animator.
func (c *clipLibrary) ClipDuration(name string) (float64, bool) {
	d, ok := c.base[name]
	if !ok || d <= 0 {
		return 0, false
	}
	if c.difficulty != nil && c.progress != nil {
		steps, ticks := c.progress()
		d = c.difficulty.ClipDuration(d, steps, ticks)
	}
	return d, true
}

// Play implements Animator. The renderer reads the clip to shape the hop.
func (c *clipLibrary) Play(name string) {
	c.playing = name
	c.plays++
}

// blockLayer keeps the x positions of spawned blocks for drawing.
type blockLayer struct {
	xs []float64
}

// Spawn implements Spawner. Only solid segments are materialized.
func (b *blockLayer) Spawn(seg Segment, x float64) (int, bool) {
	if seg != Solid {
		return 0, false
	}
	b.xs = append(b.xs, x)
	return len(b.xs) - 1, true
}

// ClearBlocks implements BlockClearer.
func (b *blockLayer) ClearBlocks() {
	b.xs = b.xs[:0]
}

// hud holds what the Display collaborator was told to show.
type hud struct {
	steps        int
	panelVisible bool
}

func (h *hud) SetStepCount(n int) {
	h.steps = n
}

func (h *hud) SetStartPanelVisible(visible bool) {
	h.panelVisible = visible
}

var (
	_ registry.Game = (*Game)(nil)
	_ RoadSource    = (*RoadGenerator)(nil)
	_ Tickable      = (*Flow)(nil)
	_ Tickable      = (*JumpMotion)(nil)
	_ Animator      = (*clipLibrary)(nil)
	_ Spawner       = (*blockLayer)(nil)
	_ BlockClearer  = (*blockLayer)(nil)
	_ Display       = (*hud)(nil)
)

// Register the game with the registry
func init() {
	registry.Register("leap", func() registry.Game {
		return New(VariantClassic)
	})
	registry.Register("leap_sprint", func() registry.Game {
		return New(VariantSprint)
	})
}
