package leap

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math/rand"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/zeebo/xxh3"
)

// Segment is one grid cell of the road.
type Segment uint8

const (
	Empty Segment = iota // a gap
	Solid                // a walkable block
)

// String returns the segment name.
func (s Segment) String() string {
	if s == Solid {
		return "Solid"
	}
	return "Empty"
}

// ErrInvalidLength is wrapped by ConfigError when a road length is not positive.
var ErrInvalidLength = errors.New("road length must be at least 1")

// ConfigError reports invalid generation parameters. Generation is aborted.
type ConfigError struct {
	Length int
	Err    error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("leap: invalid road length %d: %v", e.Length, e.Err)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// Road is an immutable sequence of segments. Index 0 is always Solid and an
// Empty segment is always followed by a Solid one.
type Road struct {
	segments []Segment
}

// NewRoad builds a road from explicit segments. Used for fixed layouts;
// the caller is responsible for the layout being playable.
func NewRoad(segments ...Segment) Road {
	s := make([]Segment, len(segments))
	copy(s, segments)
	return Road{segments: s}
}

// Len returns the number of segments.
func (r Road) Len() int {
	return len(r.segments)
}

// At returns the segment at index i. Out-of-range indices read as Empty.
func (r Road) At(i int) Segment {
	if i < 0 || i >= len(r.segments) {
		return Empty
	}
	return r.segments[i]
}

// Segments returns a copy of the underlying sequence.
func (r Road) Segments() []Segment {
	s := make([]Segment, len(r.segments))
	copy(s, r.segments)
	return s
}

// SolidCount returns the number of walkable segments.
func (r Road) SolidCount() int {
	n := 0
	for _, s := range r.segments {
		if s == Solid {
			n++
		}
	}
	return n
}

// GapCount returns the number of gaps.
func (r Road) GapCount() int {
	return len(r.segments) - r.SolidCount()
}

// String renders the road as '#' for Solid and '_' for Empty.
func (r Road) String() string {
	var sb strings.Builder
	sb.Grow(len(r.segments))
	for _, s := range r.segments {
		if s == Solid {
			sb.WriteByte('#')
		} else {
			sb.WriteByte('_')
		}
	}
	return sb.String()
}

// Fingerprint returns a course code that identifies this exact layout.
// Roads with equal segments always share a code.
func (r Road) Fingerprint() string {
	if len(r.segments) == 0 {
		return ""
	}
	buf := make([]byte, 4, 4+len(r.segments))
	binary.LittleEndian.PutUint32(buf, uint32(len(r.segments)))
	for _, s := range r.segments {
		buf = append(buf, byte(s))
	}
	return fmt.Sprintf("%016x", xxh3.Hash(buf))
}

// Spawner materializes a walkable block at a position along the travel axis.
// ok is false when nothing could be spawned (for example a missing prefab).
type Spawner interface {
	Spawn(seg Segment, x float64) (handle int, ok bool)
}

// BlockClearer is implemented by spawners that keep the blocks of the
// previous road. Generate clears them before spawning a new road.
type BlockClearer interface {
	ClearBlocks()
}

// RoadGenerator builds roads from an injected random source.
type RoadGenerator struct {
	rng      *rand.Rand
	spawner  Spawner
	unitSize float64
	logger   *log.Logger
}

// NewRoadGenerator creates a generator. spawner may be nil, in which case
// blocks are not materialized.
func NewRoadGenerator(rng *rand.Rand, spawner Spawner, unitSize float64, logger *log.Logger) *RoadGenerator {
	return &RoadGenerator{
		rng:      rng,
		spawner:  spawner,
		unitSize: unitSize,
		logger:   orDiscard(logger),
	}
}

// Generate builds a road of the given length and spawns a block for every
// Solid segment at index*unitSize.
func (g *RoadGenerator) Generate(length int) (Road, error) {
	if length <= 0 {
		return Road{}, &ConfigError{Length: length, Err: ErrInvalidLength}
	}

	segments := make([]Segment, length)
	segments[0] = Solid
	for i := 1; i < length; i++ {
		if segments[i-1] == Empty {
			segments[i] = Solid
			continue
		}
		segments[i] = Segment(g.rng.Intn(2))
	}
	road := Road{segments: segments}

	g.spawn(road)
	return road, nil
}

func (g *RoadGenerator) spawn(road Road) {
	if g.spawner == nil {
		return
	}
	if c, ok := g.spawner.(BlockClearer); ok {
		c.ClearBlocks()
	}
	for i, s := range road.segments {
		if s != Solid {
			continue
		}
		if _, ok := g.spawner.Spawn(s, float64(i)*g.unitSize); !ok {
			g.logger.Debug("block not spawned", "index", i)
		}
	}
}
