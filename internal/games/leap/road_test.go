package leap

import (
	"errors"
	"math/rand"
	"testing"
)

// recordingSpawner records every spawn call.
type recordingSpawner struct {
	xs     []float64
	segs   []Segment
	clears int
	fail   bool
}

func (s *recordingSpawner) Spawn(seg Segment, x float64) (int, bool) {
	if s.fail {
		return 0, false
	}
	s.xs = append(s.xs, x)
	s.segs = append(s.segs, seg)
	return len(s.xs) - 1, true
}

func (s *recordingSpawner) ClearBlocks() {
	s.clears++
	s.xs = nil
	s.segs = nil
}

func newGenerator(seed int64, spawner Spawner) *RoadGenerator {
	return NewRoadGenerator(rand.New(rand.NewSource(seed)), spawner, 40, nil)
}

func TestGenerateInvariants(t *testing.T) {
	lengths := []int{1, 2, 3, 10, 100}

	for seed := int64(1); seed <= 50; seed++ {
		gen := newGenerator(seed, nil)
		for _, length := range lengths {
			road, err := gen.Generate(length)
			if err != nil {
				t.Fatalf("seed %d length %d: unexpected error %v", seed, length, err)
			}
			if road.Len() != length {
				t.Fatalf("seed %d: expected length %d, got %d", seed, length, road.Len())
			}
			if road.At(0) != Solid {
				t.Fatalf("seed %d length %d: first segment must be Solid, road %s", seed, length, road)
			}
			for i := 1; i < road.Len(); i++ {
				if road.At(i-1) == Empty && road.At(i) == Empty {
					t.Fatalf("seed %d: consecutive gaps at %d in %s", seed, i, road)
				}
			}
		}
	}
}

func TestGenerateLengthOne(t *testing.T) {
	road, err := newGenerator(7, nil).Generate(1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if road.String() != "#" {
		t.Errorf("expected [Solid], got %s", road)
	}
}

func TestGenerateDeterministic(t *testing.T) {
	a, _ := newGenerator(12345, nil).Generate(64)
	b, _ := newGenerator(12345, nil).Generate(64)

	if a.String() != b.String() {
		t.Errorf("same seed produced different roads:\n%s\n%s", a, b)
	}
	if a.Fingerprint() != b.Fingerprint() {
		t.Errorf("fingerprint mismatch: %s vs %s", a.Fingerprint(), b.Fingerprint())
	}
}

func TestGenerateInvalidLength(t *testing.T) {
	spawner := &recordingSpawner{}
	gen := newGenerator(1, spawner)

	for _, length := range []int{0, -1, -40} {
		road, err := gen.Generate(length)
		if err == nil {
			t.Fatalf("length %d: expected error", length)
		}
		if !errors.Is(err, ErrInvalidLength) {
			t.Errorf("length %d: expected ErrInvalidLength, got %v", length, err)
		}
		var cfgErr *ConfigError
		if !errors.As(err, &cfgErr) || cfgErr.Length != length {
			t.Errorf("length %d: expected ConfigError carrying the length, got %v", length, err)
		}
		if road.Len() != 0 {
			t.Errorf("length %d: expected empty road, got %s", length, road)
		}
	}

	if spawner.clears != 0 || len(spawner.xs) != 0 {
		t.Error("invalid length must not touch the spawner")
	}
}

func TestGenerateSpawnsSolidSegmentsOnly(t *testing.T) {
	spawner := &recordingSpawner{}
	road, err := newGenerator(99, spawner).Generate(40)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(spawner.xs) != road.SolidCount() {
		t.Fatalf("expected %d spawns, got %d", road.SolidCount(), len(spawner.xs))
	}

	n := 0
	for i := 0; i < road.Len(); i++ {
		if road.At(i) != Solid {
			continue
		}
		if spawner.segs[n] != Solid {
			t.Errorf("spawn %d: expected Solid, got %v", n, spawner.segs[n])
		}
		if want := float64(i) * 40; spawner.xs[n] != want {
			t.Errorf("spawn %d: expected x=%v, got %v", n, want, spawner.xs[n])
		}
		n++
	}
}

func TestGenerateClearsPreviousBlocks(t *testing.T) {
	spawner := &recordingSpawner{}
	gen := newGenerator(5, spawner)

	gen.Generate(20)
	second, _ := gen.Generate(10)

	if spawner.clears != 2 {
		t.Errorf("expected ClearBlocks before each road, got %d calls", spawner.clears)
	}
	if len(spawner.xs) != second.SolidCount() {
		t.Errorf("expected only the second road's %d blocks, got %d", second.SolidCount(), len(spawner.xs))
	}
}

func TestGenerateSpawnFailureKeepsRoad(t *testing.T) {
	road, err := newGenerator(3, &recordingSpawner{fail: true}).Generate(12)
	if err != nil {
		t.Fatalf("spawn failures must not abort generation: %v", err)
	}
	if road.Len() != 12 {
		t.Errorf("expected length 12, got %d", road.Len())
	}
}

func TestRoadAccessors(t *testing.T) {
	road := NewRoad(Solid, Empty, Solid, Solid)

	if road.String() != "#_##" {
		t.Errorf("expected #_##, got %s", road)
	}
	if road.SolidCount() != 3 || road.GapCount() != 1 {
		t.Errorf("expected 3 solid / 1 gap, got %d / %d", road.SolidCount(), road.GapCount())
	}
	if road.At(-1) != Empty || road.At(4) != Empty {
		t.Error("out of range indices should read as Empty")
	}

	segs := road.Segments()
	segs[0] = Empty
	if road.At(0) != Solid {
		t.Error("Segments should return a copy")
	}
}

func TestRoadFingerprint(t *testing.T) {
	a := NewRoad(Solid, Empty, Solid)
	b := NewRoad(Solid, Empty, Solid)
	c := NewRoad(Solid, Solid, Solid)
	d := NewRoad(Solid, Empty, Solid, Solid)

	if a.Fingerprint() != b.Fingerprint() {
		t.Error("equal roads should share a fingerprint")
	}
	if a.Fingerprint() == c.Fingerprint() || a.Fingerprint() == d.Fingerprint() {
		t.Error("different roads should have different fingerprints")
	}
	if len(a.Fingerprint()) != 16 {
		t.Errorf("expected 16 hex chars, got %q", a.Fingerprint())
	}
	if (Road{}).Fingerprint() != "" {
		t.Error("empty road should have no fingerprint")
	}
}
