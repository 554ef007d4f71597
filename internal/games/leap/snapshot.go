package leap

// Snapshot captures the game state for determinism testing and replay.
type Snapshot struct {
	Tick      int
	Phase     Phase
	Course    string // fingerprint of the current road
	RoadLen   int
	GridIndex int
	Position  float64
	Jumping   bool
	Steps     int
	Best      int
	Blocks    int // spawned blocks
	Clip      string
	Input     bool // input armed
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	if g.flow == nil {
		return Snapshot{}
	}
	road := g.flow.Road()
	m := g.flow.Motion()
	return Snapshot{
		Tick:      g.ticks,
		Phase:     g.flow.Phase(),
		Course:    road.Fingerprint(),
		RoadLen:   road.Len(),
		GridIndex: m.GridIndex(),
		Position:  m.Position(),
		Jumping:   m.Jumping(),
		Steps:     g.flow.Steps(),
		Best:      g.best,
		Blocks:    len(g.blocks.xs),
		Clip:      g.clips.playing,
		Input:     g.flow.InputActive(),
	}
}
