package sweep

import (
	"errors"
	"log/slog"

	"github.com/nical/lyon"
	"github.com/nical/lyon/builder"
	"github.com/nical/lyon/geom"
	"github.com/nical/lyon/internal/monotone"
)

// FillRule selects which winding numbers are considered inside the
// shape (spec §3/§4.3).
type FillRule uint8

const (
	NonZero FillRule = iota
	EvenOdd
)

func (r FillRule) interior(winding int) bool {
	if r == EvenOdd {
		return ((winding % 2) + 2) % 2 != 0
	}
	return winding != 0
}

// ErrNumerical is returned by Engine.Run when the sweep exceeds its
// iteration budget. This only happens on malformed input (e.g. a
// contour with many exactly-coincident vertices at one sweep
// position); well-formed paths always terminate in O(n log n) events.
var ErrNumerical = errors.New("sweep: exceeded iteration budget")

// Engine runs the sweep-line pass of fill tessellation: it consumes an
// EventQueue and writes triangles to out via one or more
// internal/monotone.Triangulators, one per interior region.
type Engine struct {
	rule          FillRule
	out           builder.GeometryBuilder
	active        activeList
	maxIterations int
	normals       map[builder.VertexId]geom.Vector
}

// NewEngine creates a sweep engine writing triangles for regions
// selected by rule into out.
func NewEngine(rule FillRule, out builder.GeometryBuilder) *Engine {
	return &Engine{rule: rule, out: out, maxIterations: 2_000_000, normals: make(map[builder.VertexId]geom.Vector)}
}

// Normals returns the per-vertex normal computed for every vertex AddVertex
// produced during the most recent Run, keyed by the VertexId it returned.
// fill.Tessellator uses this to back-fill FillVertex.Normal after the
// session completes, since the sweep is the only place with enough
// adjacent-edge context to compute it.
func (e *Engine) Normals() map[builder.VertexId]geom.Vector {
	return e.normals
}

// Run executes the sweep, popping events from queue one at a time so
// that intersections discovered mid-pass (step 4 of spec §4.3) can
// insert new events ahead of whatever remains and be picked up in
// correct sweep order.
func (e *Engine) Run(queue *EventQueue) error {
	e.out.BeginGeometry()

	iterations := 0
	for {
		ev, ok := queue.PopMin()
		if !ok {
			break
		}
		iterations++
		if iterations > e.maxIterations {
			e.out.AbortGeometry()
			lyon.Logger().Debug("sweep exceeded iteration budget, aborting geometry", slog.Int("budget", e.maxIterations))
			return ErrNumerical
		}
		e.processEvent(ev)
		e.detectIntersections(queue, ev.Point.Y)
	}

	e.out.EndGeometry()
	return nil
}

func (e *Engine) processEvent(ev EventPoint) {
	v := ev.Point
	endingIdx := e.findEnding(v)
	starting := ev.StartingEdges

	switch {
	case len(endingIdx) == 1 && len(starting) == 1:
		e.processRegular(v, endingIdx[0], starting[0])
	case len(endingIdx) == 0 && len(starting) == 2:
		e.processStartOrSplit(v, starting[0], starting[1])
	case len(endingIdx) == 2 && len(starting) == 0:
		e.processEndOrMerge(v, endingIdx[0], endingIdx[1])
	default:
		// Degenerate event: more than two edges meet at exactly the same
		// point (coincident vertices from distinct contours, a
		// self-touching contour, or a freshly split edge pair from
		// detectIntersections: the two truncated edges ending here and
		// their two continuations starting here). Handled conservatively:
		// close whatever regions the ending edges bounded, drop them, then
		// re-insert the starting edges sorted by angle (this is the
		// active-list "reorder" step 4 calls for) and open fresh regions
		// for whatever the fill rule says is interior among them. Getting
		// the monotone shape bit-perfect in this case is not attempted;
		// see the open question on overlapping/coincident geometry.
		e.processDegenerate(v, endingIdx, starting)
	}
}

// detectIntersections checks every pair of edges that ended up adjacent
// in the active list after processing the event at sweepY for a crossing
// strictly below the sweep line. Only adjacent pairs can cross without
// another edge crossing first, since the active list stays sorted by X
// between events. A detected crossing truncates both edges (so the
// sweep's normal end-detection picks them up once it reaches the
// crossing) and registers the continuations as a fresh event.
func (e *Engine) detectIntersections(queue *EventQueue, sweepY float32) {
	for i := 0; i+1 < len(e.active.edges); i++ {
		a := e.active.edges[i]
		b := e.active.edges[i+1]
		pos, ok := geom.SegmentsIntersection(a.From, a.To, b.From, b.To)
		if !ok || pos.Y <= sweepY {
			continue
		}
		truncA, truncB := queue.InsertIntersection(pos, a.EdgeRef, b.EdgeRef)
		a.EdgeRef = truncA
		b.EdgeRef = truncB
	}
}

func (e *Engine) findEnding(v geom.Point) []int {
	var idx []int
	for i, a := range e.active.edges {
		if a.To == v {
			idx = append(idx, i)
		}
	}
	return idx
}

func (e *Engine) vertex(v geom.Point, ending, starting []EdgeRef) builder.VertexId {
	id := e.out.AddVertex(v)
	e.normals[id] = vertexNormal(v, ending, starting)
	return id
}

// vertexNormal approximates the outward normal at v as the bisector of
// the unit perpendiculars of its incident edges, the same
// tangent.Perp() idiom internal/joins uses for stroke offsets. It has no
// claim to correctness under the fill rule's interior/exterior
// classification; it is a direction for anti-aliased extrusion, per
// spec §6's FillVertex.normal.
func vertexNormal(v geom.Point, ending, starting []EdgeRef) geom.Vector {
	var sum geom.Vector
	for _, e := range ending {
		if u := v.Sub(e.From).Normalize(); u != (geom.Vector{}) {
			sum = sum.Add(u.Perp())
		}
	}
	for _, e := range starting {
		if u := e.To.Sub(v).Normalize(); u != (geom.Vector{}) {
			sum = sum.Add(u.Perp())
		}
	}
	return sum.Normalize()
}

// processRegular handles a vertex with exactly one neighbor above and
// one below: the edge ending here is replaced in place by the edge
// starting here.
func (e *Engine) processRegular(v geom.Point, endIdx int, startEdge EdgeRef) {
	old := e.active.edges[endIdx]
	id := e.vertex(v, []EdgeRef{old.EdgeRef}, []EdgeRef{startEdge})

	next := &activeEdge{EdgeRef: startEdge}

	switch {
	case old.region != nil:
		// old was the left boundary of its region: v continues as a
		// left-chain vertex, and the replacement edge inherits the
		// region.
		old.region.tri.AddVertex(monotone.Left, v, id)
		next.region = old.region
	case endIdx > 0 && e.active.edges[endIdx-1].region != nil:
		// old was the right boundary of its left neighbor's region: v
		// continues as a right-chain vertex.
		e.active.edges[endIdx-1].region.tri.AddVertex(monotone.Right, v, id)
	}

	e.active.edges[endIdx] = next
	e.active.recomputeWindings()
}

// processStartOrSplit handles a vertex with both neighbors below it:
// two new edges are inserted. If v falls inside an already-interior
// region, a diagonal connects it to that region's current helper
// (split vertex); if the wedge directly between the two new edges is
// itself interior, a fresh region begins there (start vertex).
func (e *Engine) processStartOrSplit(v geom.Point, a, b EdgeRef) {
	id := e.vertex(v, nil, []EdgeRef{a, b})

	left, right := orderByLeft(v, a, b)
	leftEdge := &activeEdge{EdgeRef: left}
	rightEdge := &activeEdge{EdgeRef: right}

	idx := e.active.insertAt(leftEdge, v.Y, v.X)
	e.active.insertAt(rightEdge, v.Y, v.X)
	e.active.recomputeWindings()

	var leftNeighborRegion *region
	if idx > 0 {
		leftNeighborRegion = e.active.edges[idx-1].region
	}

	if leftNeighborRegion != nil {
		_, _, side := leftNeighborRegion.tri.Last()
		leftNeighborRegion.tri.AddVertex(side, v, id)
	}

	midInterior := e.rule.interior(leftEdge.windingAfter)
	if midInterior {
		r := &region{tri: monotone.NewTriangulator(e.out)}
		r.tri.Begin(v, id)
		leftEdge.region = r
	}
}

// processEndOrMerge handles a vertex with both neighbors above it: the
// two edges ending here are removed. If they bounded an interior
// region, it is finished here. If the span that becomes adjacent after
// their removal is (still, or newly) interior, it either continues an
// existing region or begins a fresh one rooted at v, ready to receive a
// future split vertex's diagonal.
func (e *Engine) processEndOrMerge(v geom.Point, idxA, idxB int) {
	id := e.vertex(v, []EdgeRef{e.active.edges[idxA].EdgeRef, e.active.edges[idxB].EdgeRef}, nil)

	lo, hi := idxA, idxB
	if lo > hi {
		lo, hi = hi, lo
	}
	left := e.active.edges[lo]

	if left.region != nil {
		left.region.tri.End(v, id)
	}

	e.active.removeAt(hi)
	e.active.removeAt(lo)
	e.active.recomputeWindings()

	if lo == 0 || lo > len(e.active.edges) {
		return
	}
	leftOuter := e.active.edges[lo-1]
	if !e.rule.interior(leftOuter.windingAfter) {
		return
	}
	if leftOuter.region != nil {
		leftOuter.region.tri.AddVertex(monotone.Right, v, id)
		return
	}
	// Note: the removed right edge's own region, if it had one bounding
	// space further to its right, is not preserved across this merge.
	r := &region{tri: monotone.NewTriangulator(e.out)}
	r.tri.Begin(v, id)
	leftOuter.region = r
}

// processDegenerate is the fallback for more than two edges meeting
// exactly at one point: remove the ending edges, close any region they
// bounded, insert the starting edges sorted by angle, and open fresh
// regions for whichever new adjacent spans the fill rule calls
// interior.
func (e *Engine) processDegenerate(v geom.Point, endingIdx []int, starting []EdgeRef) {
	ending := make([]EdgeRef, len(endingIdx))
	for i, idx := range endingIdx {
		ending[i] = e.active.edges[idx].EdgeRef
	}
	id := e.vertex(v, ending, starting)

	for _, idx := range endingIdx {
		if r := e.active.edges[idx].region; r != nil {
			r.tri.End(v, id)
		}
	}
	for i := len(endingIdx) - 1; i >= 0; i-- {
		e.active.removeAt(endingIdx[i])
	}

	sorted := sortByLeft(v, starting)
	at := 0
	for _, s := range sorted {
		idx := e.active.insertAt(&activeEdge{EdgeRef: s}, v.Y, v.X)
		if idx <= at {
			at = idx + 1
		}
	}
	e.active.recomputeWindings()

	for i := 0; i+1 < len(e.active.edges); i++ {
		if e.active.edges[i].region != nil {
			continue
		}
		if e.rule.interior(e.active.edges[i].windingAfter) {
			r := &region{tri: monotone.NewTriangulator(e.out)}
			r.tri.Begin(v, id)
			e.active.edges[i].region = r
		}
	}
}

// orderByLeft returns a and b ordered so the first emanates more to the
// left when both start at the same point and head downward.
func orderByLeft(from geom.Point, a, b EdgeRef) (left, right EdgeRef) {
	da := a.To.Sub(from)
	db := b.To.Sub(from)
	cross := da.X*db.Y - da.Y*db.X
	if cross > 0 {
		return a, b
	}
	return b, a
}

func sortByLeft(from geom.Point, edges []EdgeRef) []EdgeRef {
	out := append([]EdgeRef(nil), edges...)
	for i := 1; i < len(out); i++ {
		for j := i; j > 0; j-- {
			l, _ := orderByLeft(from, out[j-1], out[j])
			if l == out[j-1] {
				break
			}
			out[j-1], out[j] = out[j], out[j-1]
		}
	}
	return out
}
