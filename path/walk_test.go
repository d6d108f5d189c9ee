package path

import (
	"testing"

	"github.com/nical/lyon/geom"
)

// TestWalkRegularIntervalSquare covers a 6x6 square walked at interval 2.0
// starting from offset 0: the callback should fire at every 2 units of
// arc length around the 24-unit perimeter, landing back on the start.
func TestWalkRegularIntervalSquare(t *testing.T) {
	b := NewBuilder()
	b.Begin(geom.Pt(0, 0))
	b.LineTo(geom.Pt(6, 0))
	b.LineTo(geom.Pt(6, 6))
	b.LineTo(geom.Pt(0, 6))
	b.End(true)
	p := b.Build()

	var positions []geom.Point
	var distances []float32
	Walk(p, 0.01, 0, 2.0, func(pos geom.Point, tangent geom.Vector, distance float32) bool {
		positions = append(positions, pos)
		distances = append(distances, distance)
		return true
	})

	want := []geom.Point{
		geom.Pt(0, 0), geom.Pt(2, 0), geom.Pt(4, 0), geom.Pt(6, 0),
		geom.Pt(6, 2), geom.Pt(6, 4), geom.Pt(6, 6),
		geom.Pt(4, 6), geom.Pt(2, 6), geom.Pt(0, 6),
		geom.Pt(0, 4), geom.Pt(0, 2), geom.Pt(0, 0),
	}
	if len(positions) != len(want) {
		t.Fatalf("got %d steps, want %d: %v", len(positions), len(want), positions)
	}
	for i, p := range want {
		if !positions[i].NearEq(p, 1e-4) {
			t.Errorf("step %d: got %v, want %v", i, positions[i], p)
		}
		if distances[i] != float32(i)*2 {
			t.Errorf("step %d: got distance %v, want %v", i, distances[i], float32(i)*2)
		}
	}
}

// TestWalkStartOffsetBeyondLength covers walking a single 5-unit segment
// starting at an offset past its length: the callback must never fire.
func TestWalkStartOffsetBeyondLength(t *testing.T) {
	b := NewBuilder()
	b.Begin(geom.Pt(0, 0))
	b.LineTo(geom.Pt(5, 0))
	b.End(false)
	p := b.Build()

	calls := 0
	Walk(p, 0.01, 10.0, 2.0, func(pos geom.Point, tangent geom.Vector, distance float32) bool {
		calls++
		return true
	})

	if calls != 0 {
		t.Fatalf("got %d calls, want 0", calls)
	}
}

// TestWalkStopsEarly verifies that returning false from the callback
// halts the walk.
func TestWalkStopsEarly(t *testing.T) {
	b := NewBuilder()
	b.Begin(geom.Pt(0, 0))
	b.LineTo(geom.Pt(10, 0))
	b.End(false)
	p := b.Build()

	calls := 0
	Walk(p, 0.01, 0, 1.0, func(pos geom.Point, tangent geom.Vector, distance float32) bool {
		calls++
		return calls < 3
	})

	if calls != 3 {
		t.Fatalf("got %d calls, want 3", calls)
	}
}
