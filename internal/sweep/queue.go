// Package sweep implements the fill tessellator's sweep-line pass
// (spec §4.2-§4.3): it walks the event queue top to bottom, classifies
// each vertex, maintains the active edge list, and feeds vertices to a
// monotone.Triangulator per interior region as soon as each region's
// shape is known.
package sweep

import (
	"github.com/google/btree"
	"github.com/nical/lyon/geom"
)

// vertexKey orders event points the way the sweep visits them:
// top to bottom (increasing Y), then left to right (increasing X) on
// ties.
type vertexKey struct {
	point geom.Point
}

func (k vertexKey) Less(than btree.Item) bool {
	o := than.(vertexKey)
	if k.point.Y != o.point.Y {
		return k.point.Y < o.point.Y
	}
	return k.point.X < o.point.X
}

// EdgeRef is a directed edge of the input contours, reoriented so From
// is never after To in sweep order. WindingDelta is +1 if the original
// contour direction agreed with this reorientation, -1 if it was
// flipped, matching the nonzero-rule convention of spec §3.
type EdgeRef struct {
	From, To     geom.Point
	WindingDelta int
}

func newEdgeRef(a, b geom.Point) EdgeRef {
	if before(a, b) {
		return EdgeRef{From: a, To: b, WindingDelta: 1}
	}
	return EdgeRef{From: b, To: a, WindingDelta: -1}
}

// before reports whether a is strictly earlier than b in sweep order.
func before(a, b geom.Point) bool {
	if a.Y != b.Y {
		return a.Y < b.Y
	}
	return a.X < b.X
}

// EventQueue groups the contour edges of one fill operation by their
// upper (sweep-earlier) endpoint.
type EventQueue struct {
	tree   *btree.BTree
	starts map[geom.Point][]EdgeRef
}

// NewEventQueue creates an empty queue.
func NewEventQueue() *EventQueue {
	return &EventQueue{tree: btree.New(16), starts: make(map[geom.Point][]EdgeRef)}
}

// AddEdge inserts one contour edge. a and b need not already be in
// sweep order; zero-length edges are silently dropped.
func (q *EventQueue) AddEdge(a, b geom.Point) {
	if a.NearEq(b, 1e-9) {
		return
	}
	e := newEdgeRef(a, b)
	q.ensurePoint(e.From)
	q.ensurePoint(e.To)
	q.starts[e.From] = append(q.starts[e.From], e)
}

func (q *EventQueue) ensurePoint(p geom.Point) {
	if _, ok := q.starts[p]; !ok {
		q.starts[p] = nil
		q.tree.ReplaceOrInsert(vertexKey{point: p})
	}
}

// EventPoint is one stop of the sweep.
type EventPoint struct {
	Point         geom.Point
	StartingEdges []EdgeRef
}

// Events returns the distinct event points in sweep order, without
// consuming the queue. Used by tests that want a static snapshot; the
// engine itself drives the sweep through PopMin so that intersections
// discovered mid-pass (InsertIntersection) are picked up in order.
func (q *EventQueue) Events() []EventPoint {
	out := make([]EventPoint, 0, q.tree.Len())
	q.tree.Ascend(func(it btree.Item) bool {
		p := it.(vertexKey).point
		out = append(out, EventPoint{Point: p, StartingEdges: q.starts[p]})
		return true
	})
	return out
}

// Push ensures p is a pending event point, with no starting edges of its
// own beyond whatever AddEdge/InsertIntersection already registered.
func (q *EventQueue) Push(p geom.Point) {
	q.ensurePoint(p)
}

// PeekMinPosition reports the position of the next event without
// removing it, or false if the queue is empty.
func (q *EventQueue) PeekMinPosition() (geom.Point, bool) {
	item := q.tree.Min()
	if item == nil {
		return geom.Point{}, false
	}
	return item.(vertexKey).point, true
}

// PopMin removes and returns the next event in sweep order, or false if
// the queue is empty.
func (q *EventQueue) PopMin() (EventPoint, bool) {
	item := q.tree.Min()
	if item == nil {
		return EventPoint{}, false
	}
	p := item.(vertexKey).point
	q.tree.Delete(item)
	starts := q.starts[p]
	delete(q.starts, p)
	return EventPoint{Point: p, StartingEdges: starts}, true
}

// InsertIntersection records a crossing found between two active edges
// at pos (spec §4.3 step 4): it truncates both edges to end at pos and
// registers their continuations as new starting edges at pos, so the
// sweep re-sorts the active list the next time it reaches that point.
// Continuations already registered for pos (e.g. a second detection of
// the same crossing before the sweep reaches it) are not duplicated.
func (q *EventQueue) InsertIntersection(pos geom.Point, a, b EdgeRef) (truncA, truncB EdgeRef) {
	truncA = EdgeRef{From: a.From, To: pos, WindingDelta: a.WindingDelta}
	truncB = EdgeRef{From: b.From, To: pos, WindingDelta: b.WindingDelta}
	contA := EdgeRef{From: pos, To: a.To, WindingDelta: a.WindingDelta}
	contB := EdgeRef{From: pos, To: b.To, WindingDelta: b.WindingDelta}

	q.ensurePoint(pos)
	q.ensurePoint(contA.To)
	q.ensurePoint(contB.To)
	q.starts[pos] = appendEdgeIfAbsent(q.starts[pos], contA)
	q.starts[pos] = appendEdgeIfAbsent(q.starts[pos], contB)
	return truncA, truncB
}

func appendEdgeIfAbsent(edges []EdgeRef, e EdgeRef) []EdgeRef {
	for _, o := range edges {
		if o == e {
			return edges
		}
	}
	return append(edges, e)
}
