package sweep

import (
	"github.com/nical/lyon/geom"
	"github.com/nical/lyon/internal/monotone"
)

// xAt returns the edge's X coordinate at the given sweep Y, which must
// lie within [From.Y, To.Y].
func (e EdgeRef) xAt(y float32) float32 {
	if e.To.Y == e.From.Y {
		return e.From.X
	}
	t := (y - e.From.Y) / (e.To.Y - e.From.Y)
	return e.From.X + t*(e.To.X-e.From.X)
}

// region is the in-progress monotone triangulation for one interior
// span of the sweep. It lives on the active edge that bounds it on the
// left; an edge with a nil region bounds exterior space on its right.
type region struct {
	tri *monotone.Triangulator
}

// activeEdge is one edge of the input currently straddling the sweep
// line.
type activeEdge struct {
	EdgeRef
	windingAfter int
	region       *region
}

// activeList is the sweep status: the edges currently straddling the
// sweep line, kept sorted left to right by their X position at the
// current sweep Y.
type activeList struct {
	edges []*activeEdge
}

// indexOfEnding returns the index of the active edge whose To point is
// p, or -1.
func (l *activeList) indexOfEnding(p geom.Point) int {
	for i, e := range l.edges {
		if e.To == p {
			return i
		}
	}
	return -1
}

// insertAt inserts e into the active list at the position appropriate
// for sweep position y, in left-to-right order.
func (l *activeList) insertAt(e *activeEdge, y, x float32) int {
	idx := len(l.edges)
	for i, o := range l.edges {
		if o.xAt(y) > x {
			idx = i
			break
		}
	}
	l.edges = append(l.edges, nil)
	copy(l.edges[idx+1:], l.edges[idx:])
	l.edges[idx] = e
	return idx
}

// removeAt removes the edge at index idx.
func (l *activeList) removeAt(idx int) {
	l.edges = append(l.edges[:idx], l.edges[idx+1:]...)
}

// recomputeWindings recomputes, for every active edge, the accumulated
// winding number of the span immediately to its right.
func (l *activeList) recomputeWindings() {
	acc := 0
	for _, e := range l.edges {
		acc += e.WindingDelta
		e.windingAfter = acc
	}
}
