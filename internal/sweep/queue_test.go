package sweep

import (
	"testing"

	"github.com/nical/lyon/geom"
)

func TestEventQueueOrdersTopToBottomThenLeftToRight(t *testing.T) {
	q := NewEventQueue()
	// A triangle: apex at (2,0), base corners at (0,3) and (4,3), fed
	// out of order to make sure the queue itself does the sorting.
	q.AddEdge(geom.Pt(4, 3), geom.Pt(2, 0))
	q.AddEdge(geom.Pt(2, 0), geom.Pt(0, 3))
	q.AddEdge(geom.Pt(0, 3), geom.Pt(4, 3))

	events := q.Events()
	if len(events) != 3 {
		t.Fatalf("got %d events, want 3", len(events))
	}

	want := []geom.Point{geom.Pt(2, 0), geom.Pt(0, 3), geom.Pt(4, 3)}
	for i, ev := range events {
		if ev.Point != want[i] {
			t.Errorf("event %d = %v, want %v", i, ev.Point, want[i])
		}
	}
}

func TestEventQueueDropsZeroLengthEdges(t *testing.T) {
	q := NewEventQueue()
	q.AddEdge(geom.Pt(1, 1), geom.Pt(1, 1))
	if got := len(q.Events()); got != 0 {
		t.Errorf("got %d events for a zero-length edge, want 0", got)
	}
}

func TestEventQueueWindingDeltaReflectsReorientation(t *testing.T) {
	q := NewEventQueue()
	// This edge already runs top-to-bottom: no flip needed.
	q.AddEdge(geom.Pt(0, 0), geom.Pt(0, 5))
	// This one runs bottom-to-top in call order and must be flipped.
	q.AddEdge(geom.Pt(5, 5), geom.Pt(5, 0))

	var deltas []int
	for _, ev := range q.Events() {
		for _, e := range ev.StartingEdges {
			deltas = append(deltas, e.WindingDelta)
		}
	}

	sawPositive, sawNegative := false, false
	for _, d := range deltas {
		if d == 1 {
			sawPositive = true
		}
		if d == -1 {
			sawNegative = true
		}
	}
	if !sawPositive || !sawNegative {
		t.Errorf("deltas = %v, want one +1 (unflipped) and one -1 (flipped)", deltas)
	}
}
