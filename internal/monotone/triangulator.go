// Package monotone implements the stack-based triangulation of
// y-monotone polygons described in spec §4.4. It is driven by
// internal/sweep, which determines each monotone region's boundary and
// feeds its vertices here in top-to-bottom order.
package monotone

import (
	"github.com/nical/lyon/builder"
	"github.com/nical/lyon/geom"
)

// Side names which of the two monotone chains a vertex belongs to.
type Side uint8

const (
	Left Side = iota
	Right
)

type stackItem struct {
	point geom.Point
	id    builder.VertexId
	side  Side
}

// Triangulator accumulates the vertices of one y-monotone polygon, in
// sweep order, and emits triangles to a GeometryBuilder as soon as a
// run of same-chain vertices can be resolved into ears, or a
// chain-switch lets the whole opposite run fan out at once.
type Triangulator struct {
	out   builder.GeometryBuilder
	stack []stackItem
}

// NewTriangulator creates a Triangulator writing into out.
func NewTriangulator(out builder.GeometryBuilder) *Triangulator {
	return &Triangulator{out: out}
}

// Begin starts a new monotone polygon at its topmost vertex.
func (t *Triangulator) Begin(p geom.Point, id builder.VertexId) {
	t.stack = append(t.stack[:0], stackItem{point: p, id: id})
}

// AddVertex feeds the next vertex down the polygon's boundary, tagged
// with the chain (Left or Right) it belongs to.
func (t *Triangulator) AddVertex(side Side, p geom.Point, id builder.VertexId) {
	if len(t.stack) == 0 {
		t.stack = append(t.stack, stackItem{point: p, id: id, side: side})
		return
	}
	if len(t.stack) == 1 {
		// The apex has no side of its own; treat it as belonging to the
		// opposite chain of whichever vertex arrives first, so the next
		// comparison below is well defined.
		t.stack[0].side = opposite(side)
		t.stack = append(t.stack, stackItem{point: p, id: id, side: side})
		return
	}

	top := t.stack[len(t.stack)-1]
	if side != top.side {
		// Crossing to the opposite chain: every vertex remaining on the
		// stack can see the new vertex across the polygon's interior, so
		// each consecutive pair forms a triangle with it.
		for i := len(t.stack) - 1; i > 0; i-- {
			t.out.AddTriangle(t.stack[i-1].id, t.stack[i].id, id)
		}
		last := t.stack[len(t.stack)-1]
		t.stack = append(t.stack[:0], last, stackItem{point: p, id: id, side: side})
		return
	}

	// Same chain as the top of the stack: pop while the diagonal from
	// the new vertex to the vertex below top stays inside the polygon.
	for len(t.stack) >= 2 {
		a := t.stack[len(t.stack)-2]
		b := t.stack[len(t.stack)-1]
		if !turnsInward(a.point, b.point, p, side) {
			break
		}
		t.out.AddTriangle(a.id, b.id, id)
		t.stack = t.stack[:len(t.stack)-1]
	}
	t.stack = append(t.stack, stackItem{point: p, id: id, side: side})
}

// End finishes the polygon at its bottommost vertex, flushing whatever
// remains on the stack.
func (t *Triangulator) End(p geom.Point, id builder.VertexId) {
	for i := len(t.stack) - 1; i > 0; i-- {
		t.out.AddTriangle(t.stack[i-1].id, t.stack[i].id, id)
	}
	t.stack = t.stack[:0]
}

// Last returns the most recently added vertex (the polygon's current
// "helper" in sweep terminology) along with the chain side it was
// tagged with. Used by internal/sweep to connect a split vertex's
// diagonal to the right point.
func (t *Triangulator) Last() (geom.Point, builder.VertexId, Side) {
	top := t.stack[len(t.stack)-1]
	return top.point, top.id, top.side
}

func opposite(s Side) Side {
	if s == Left {
		return Right
	}
	return Left
}

// turnsInward reports whether the triangle (a, b, c) turns the way that
// keeps the diagonal a-c inside the polygon, given b lies on the named
// chain between a and c. Points use the y-down convention of geom.Point.
func turnsInward(a, b, c geom.Point, side Side) bool {
	cross := (b.X-a.X)*(c.Y-a.Y) - (b.Y-a.Y)*(c.X-a.X)
	if side == Left {
		return cross < 0
	}
	return cross > 0
}
