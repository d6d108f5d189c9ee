// Package joins expands a stroked path into the filled outline that
// covers it: two offset rails connected by joins at interior vertices
// and caps at open endpoints (spec §5). The outline is emitted straight
// into a path.Builder so it can be tessellated by the fill package like
// any other shape.
package joins

import (
	"log/slog"
	"math"

	"github.com/nical/lyon"
	"github.com/nical/lyon/geom"
	"github.com/nical/lyon/path"
)

// Cap selects the shape used to close an open sub-path's endpoints.
type Cap uint8

const (
	CapButt Cap = iota
	CapRound
	CapSquare
)

// Join selects the shape used to connect consecutive segments at an
// interior vertex.
type Join uint8

const (
	JoinMiter Join = iota
	JoinRound
	JoinBevel
)

// Style configures stroke outline expansion.
type Style struct {
	Width      float32
	StartCap   Cap
	EndCap     Cap
	Join       Join
	MiterLimit float32
	Tolerance  float32
}

// VertexMeta is the stroke-specific per-point data the fill tessellator
// has no concept of: the lateral direction a point was offset along,
// which rail it belongs to (-1 forward, +1 backward, 0 a cap that joins
// the two), and the arc length along the original centerline at the
// point the offset was taken from (spec §6's StrokeVertex fields).
//
// It travels parallel to the outline path rather than through it:
// Expander records one entry per emitted point, keyed by position, and
// the caller looks entries up after fill tessellates the outline.
// Interior points a curve flattens between recorded endpoints, and any
// vertex the fill sweep synthesizes at a self-intersection, have no
// entry and read back as the zero value.
type VertexMeta struct {
	Normal      geom.Vector
	Side        float32
	Advancement float32
}

const (
	sideForward  = -1
	sideBackward = 1
	sideCap      = 0
)

// DefaultStyle returns a 1-unit-wide butt-capped miter-joined style.
func DefaultStyle() Style {
	return Style{Width: 1, Join: JoinMiter, MiterLimit: 4, Tolerance: 0.1}
}

// Expander walks the flattened segments of a stroked sub-path and
// builds the forward and backward offset rails, joining them into a
// closed outline contour per sub-path. It is grounded on the
// forward/backward-rail construction used throughout offset-curve
// stroking implementations: the outer rail is wound forward, the inner
// rail reversed, and caps or closing joins connect the two.
type Expander struct {
	style Style
	out   *path.Builder

	forward, backward *rail

	startPt, lastPt    geom.Point
	startTan, lastTan   geom.Vector
	startNorm, lastNorm geom.Vector
	joinThresh          float32

	meta        map[geom.Point]VertexMeta
	advancement float32
}

// NewExpander creates an Expander writing its outline into out.
func NewExpander(style Style, out *path.Builder) *Expander {
	if style.Tolerance <= 0 {
		style.Tolerance = 0.1
	}
	return &Expander{
		style:      style,
		out:        out,
		forward:    newRail(),
		backward:   newRail(),
		joinThresh: 2 * style.Tolerance / style.Width,
		meta:       make(map[geom.Point]VertexMeta),
	}
}

// Meta returns the VertexMeta recorded for every outline point emitted
// so far, keyed by position. Points a curve flattens between recorded
// endpoints have no entry.
func (e *Expander) Meta() map[geom.Point]VertexMeta {
	return e.meta
}

// record stores the stroke metadata for an outline point at p.
func (e *Expander) record(p geom.Point, normal geom.Vector, side float32) {
	n := normal
	if l := n.Length(); l > 0 {
		n = n.Mul(1 / l)
	}
	e.meta[p] = VertexMeta{Normal: n, Side: side, Advancement: e.advancement}
}

// rail accumulates one offset side of a stroke as a simple polyline
// (curves are pre-flattened by the caller, except for join/cap arcs
// which rail.cubicTo appends as cubic Beziers).
type rail struct {
	points []geom.Point
	curves []curveSeg // parallel optional curve overlay; empty when straight
}

type curveSeg struct {
	afterIndex   int // index into points this curve ends at
	ctrl1, ctrl2 geom.Point
}

func newRail() *rail { return &rail{} }

func (r *rail) isEmpty() bool { return len(r.points) == 0 }

func (r *rail) moveTo(p geom.Point) {
	r.points = append(r.points, p)
}

func (r *rail) lineTo(p geom.Point) {
	r.points = append(r.points, p)
}

func (r *rail) cubicTo(c1, c2, p geom.Point) {
	r.points = append(r.points, p)
	r.curves = append(r.curves, curveSeg{afterIndex: len(r.points) - 1, ctrl1: c1, ctrl2: c2})
}

// emitForward writes the rail's points (and curves) in order into b,
// assuming b.Begin has already placed the cursor at r.points[0].
func (r *rail) emitForward(b *path.Builder) {
	curveAt := 0
	for i := 1; i < len(r.points); i++ {
		if curveAt < len(r.curves) && r.curves[curveAt].afterIndex == i {
			c := r.curves[curveAt]
			b.CubicBezierTo(c.ctrl1, c.ctrl2, r.points[i])
			curveAt++
			continue
		}
		b.LineTo(r.points[i])
	}
}

// emitReversed writes the rail's points (and curves) in reverse order.
func (r *rail) emitReversed(b *path.Builder) {
	curveSet := make(map[int]curveSeg, len(r.curves))
	for _, c := range r.curves {
		curveSet[c.afterIndex] = c
	}
	for i := len(r.points) - 1; i >= 1; i-- {
		if c, ok := curveSet[i]; ok {
			b.CubicBezierTo(c.ctrl2, c.ctrl1, r.points[i-1])
			continue
		}
		b.LineTo(r.points[i-1])
	}
}

func (r *rail) lastPoint() geom.Point { return r.points[len(r.points)-1] }

// Begin starts a new sub-path at p.
func (e *Expander) Begin(p geom.Point) {
	e.forward = newRail()
	e.backward = newRail()
	e.startPt = p
	e.lastPt = p
	e.advancement = 0
}

// LineTo extends the sub-path with a straight segment.
func (e *Expander) LineTo(p geom.Point) {
	if p.NearEq(e.lastPt, 1e-9) {
		return
	}
	tangent := p.Sub(e.lastPt)
	e.doJoin(tangent)
	e.lastTan = tangent
	e.doLine(tangent, p)
}

// QuadraticBezierTo flattens and extends the sub-path with a quadratic
// Bezier segment.
func (e *Expander) QuadraticBezierTo(ctrl, p geom.Point) {
	seg := geom.QuadraticBezierSegment{FromP: e.lastPt, Ctrl: ctrl, ToP: p}
	seg.ForEachFlattened(e.style.Tolerance, func(pt geom.Point) {
		e.LineTo(pt)
	})
}

// CubicBezierTo flattens and extends the sub-path with a cubic Bezier
// segment.
func (e *Expander) CubicBezierTo(ctrl1, ctrl2, p geom.Point) {
	seg := geom.CubicBezierSegment{FromP: e.lastPt, Ctrl1: ctrl1, Ctrl2: ctrl2, ToP: p}
	seg.ForEachFlattened(e.style.Tolerance, func(pt geom.Point) {
		e.LineTo(pt)
	})
}

// End closes out the current sub-path, writing its outline into out. If
// closed is true the sub-path is joined back to its start instead of
// capped.
func (e *Expander) End(closed bool) {
	if e.forward.isEmpty() {
		return
	}
	if closed {
		e.finishClosed()
	} else {
		e.finishOpen()
	}
}

func (e *Expander) doJoin(tan0 geom.Vector) {
	scale := 0.5 * e.style.Width / tan0.Length()
	norm := tan0.Perp().Mul(scale)
	p0 := e.lastPt

	if e.forward.isEmpty() {
		fp := p0.Add(norm.Neg())
		bp := p0.Add(norm)
		e.forward.moveTo(fp)
		e.backward.moveTo(bp)
		e.record(fp, norm.Neg(), sideForward)
		e.record(bp, norm, sideBackward)
		e.startTan = tan0
		e.startNorm = norm
		return
	}
	e.joinWithPrevious(p0, norm, tan0)
}

func (e *Expander) joinWithPrevious(p0 geom.Point, norm, tan0 geom.Vector) {
	ab := e.lastTan
	cd := tan0
	cross := ab.Cross(cd)
	dot := ab.Dot(cd)
	hypot := float32(math.Hypot(float64(cross), float64(dot)))

	if dot > 0 && abs32(cross) < hypot*e.joinThresh {
		fp := p0.Add(norm.Neg())
		bp := p0.Add(norm)
		e.forward.lineTo(fp)
		e.backward.lineTo(bp)
		e.record(fp, norm.Neg(), sideForward)
		e.record(bp, norm, sideBackward)
		return
	}

	switch e.style.Join {
	case JoinBevel:
		fp := p0.Add(norm.Neg())
		bp := p0.Add(norm)
		e.forward.lineTo(fp)
		e.backward.lineTo(bp)
		e.record(fp, norm.Neg(), sideForward)
		e.record(bp, norm, sideBackward)
	case JoinMiter:
		e.applyMiterJoin(p0, norm, ab, cd, cross, dot, hypot)
	case JoinRound:
		e.applyRoundJoin(p0, norm, cross, dot)
	}
}

func (e *Expander) applyMiterJoin(p0 geom.Point, norm, ab, cd geom.Vector, cross, dot, hypot float32) {
	limitSq := e.style.MiterLimit * e.style.MiterLimit
	if 2*hypot < (hypot+dot)*limitSq {
		e.computeMiterPoint(p0, norm, ab, cd, cross)
		return
	}
	lyon.Logger().Debug("miter join exceeded miter limit, falling back to bevel", slog.Float64("limit", float64(e.style.MiterLimit)))
	fp := p0.Add(norm.Neg())
	bp := p0.Add(norm)
	e.forward.lineTo(fp)
	e.backward.lineTo(bp)
	e.record(fp, norm.Neg(), sideForward)
	e.record(bp, norm, sideBackward)
}

func (e *Expander) computeMiterPoint(p0 geom.Point, norm, ab, cd geom.Vector, cross float32) {
	lastScale := 0.5 * e.style.Width / ab.Length()
	lastNorm := ab.Perp().Mul(lastScale)

	switch {
	case cross > 0:
		fpLast := p0.Add(lastNorm.Neg())
		fpThis := p0.Add(norm.Neg())
		h := ab.Cross(fpThis.Sub(fpLast)) / cross
		miterPt := fpThis.Add(cd.Mul(-h))
		e.forward.lineTo(miterPt)
		e.backward.lineTo(p0)
		e.record(miterPt, miterPt.Sub(p0), sideForward)
		e.record(p0, norm, sideBackward)
	case cross < 0:
		fpLast := p0.Add(lastNorm)
		fpThis := p0.Add(norm)
		h := ab.Cross(fpThis.Sub(fpLast)) / cross
		miterPt := fpThis.Add(cd.Mul(-h))
		e.backward.lineTo(miterPt)
		e.forward.lineTo(p0)
		e.record(miterPt, miterPt.Sub(p0), sideBackward)
		e.record(p0, norm.Neg(), sideForward)
	}
}

func (e *Expander) applyRoundJoin(p0 geom.Point, norm geom.Vector, cross, dot float32) {
	lastScale := 0.5 * e.style.Width / e.lastTan.Length()
	lastNorm := e.lastTan.Perp().Mul(lastScale)

	angle := float32(math.Atan2(float64(cross), float64(dot)))
	if angle > 0 {
		bp := p0.Add(norm)
		e.backward.lineTo(bp)
		e.record(bp, norm, sideBackward)
		e.arc(e.forward, p0, lastNorm.Neg(), angle, sideForward)
	} else {
		fp := p0.Add(norm.Neg())
		e.forward.lineTo(fp)
		e.record(fp, norm.Neg(), sideForward)
		e.arc(e.backward, p0, lastNorm, -angle, sideBackward)
	}
}

func (e *Expander) doLine(tangent geom.Vector, p1 geom.Point) {
	segLen := tangent.Length()
	scale := 0.5 * e.style.Width / segLen
	norm := tangent.Perp().Mul(scale)
	e.advancement += segLen

	fp := p1.Add(norm.Neg())
	bp := p1.Add(norm)
	e.forward.lineTo(fp)
	e.backward.lineTo(bp)
	e.record(fp, norm.Neg(), sideForward)
	e.record(bp, norm, sideBackward)
	e.lastPt = p1
	e.lastNorm = norm
}

func (e *Expander) finishOpen() {
	e.out.Begin(e.forward.points[0])
	e.forward.emitForward(e.out)

	if !e.backward.isEmpty() {
		e.applyCap(e.style.EndCap, e.lastPt, e.lastNorm.Neg())
	}
	e.backward.emitReversed(e.out)

	e.applyStartCap(e.style.StartCap, e.startPt, e.startNorm)
	e.out.End(true)
}

func (e *Expander) finishClosed() {
	e.doJoin(e.startTan)

	e.out.Begin(e.forward.points[0])
	e.forward.emitForward(e.out)
	e.out.End(true)

	if !e.backward.isEmpty() {
		e.out.Begin(e.backward.lastPoint())
		e.backward.emitReversed(e.out)
		e.out.End(true)
	}
}

// applyCap appends the end cap's geometry, continuing directly into the
// backward rail (no explicit close; the caller closes the whole
// contour).
func (e *Expander) applyCap(cap Cap, center geom.Point, norm geom.Vector) {
	switch cap {
	case CapButt:
		p := center.Add(norm.Neg())
		e.out.LineTo(p)
		e.record(p, norm.Neg(), sideCap)
	case CapRound:
		e.arcInto(e.out, center, norm, math.Pi, sideCap)
	case CapSquare:
		p1 := transformPoint(center, norm, geom.Pt(1, 1))
		p2 := transformPoint(center, norm, geom.Pt(-1, 1))
		e.out.LineTo(p1)
		e.out.LineTo(p2)
		e.record(p1, p1.Sub(center), sideCap)
		e.record(p2, p2.Sub(center), sideCap)
	}
}

// applyStartCap mirrors applyCap for the start of an open sub-path: the
// path is already positioned at the backward rail's terminal point, so
// only the cap geometry back to the forward rail's start is needed.
func (e *Expander) applyStartCap(cap Cap, center geom.Point, norm geom.Vector) {
	switch cap {
	case CapButt:
		// End(true) draws the closing line back to the forward start.
	case CapRound:
		e.arcInto(e.out, center, norm, math.Pi, sideCap)
	case CapSquare:
		p1 := transformPoint(center, norm, geom.Pt(1, 1))
		p2 := transformPoint(center, norm, geom.Pt(-1, 1))
		e.out.LineTo(p1)
		e.out.LineTo(p2)
		e.record(p1, p1.Sub(center), sideCap)
		e.record(p2, p2.Sub(center), sideCap)
	}
}

// arc appends a join's arc geometry to rail r (used while still
// accumulating a rail, before it has been emitted to the builder).
func (e *Expander) arc(r *rail, center geom.Point, norm geom.Vector, angle float32, side float32) {
	segments := int(math.Ceil(float64(abs32(angle)) / (math.Pi / 2)))
	if segments < 1 {
		segments = 1
	}
	step := angle / float32(segments)
	cur := norm.Angle()
	radius := norm.Length()
	for i := 0; i < segments; i++ {
		a0, a1 := cur, cur+step
		c1, c2, end := arcCubic(center, radius, a0, a1)
		r.cubicTo(c1, c2, end)
		e.record(end, end.Sub(center), side)
		cur = a1
	}
}

// arcInto appends a cap's arc geometry directly to a Builder already
// positioned at the arc's start.
func (e *Expander) arcInto(b *path.Builder, center geom.Point, norm geom.Vector, angle float32, side float32) {
	segments := int(math.Ceil(float64(abs32(angle)) / (math.Pi / 2)))
	if segments < 1 {
		segments = 1
	}
	step := angle / float32(segments)
	cur := norm.Angle()
	radius := norm.Length()
	for i := 0; i < segments; i++ {
		a0, a1 := cur, cur+step
		c1, c2, end := arcCubic(center, radius, a0, a1)
		b.CubicBezierTo(c1, c2, end)
		e.record(end, end.Sub(center), side)
		cur = a1
	}
}

// arcCubic approximates the arc [a0, a1] (at most a quarter turn) of a
// circle of the given radius around center with a single cubic Bezier.
func arcCubic(center geom.Point, radius, a0, a1 float32) (ctrl1, ctrl2, end geom.Point) {
	da := float64(a1 - a0)
	alpha := float32(math.Sin(da) * (math.Sqrt(4+3*math.Pow(math.Tan(da/2), 2)) - 1) / 3)

	cos0, sin0 := float32(math.Cos(float64(a0))), float32(math.Sin(float64(a0)))
	cos1, sin1 := float32(math.Cos(float64(a1))), float32(math.Sin(float64(a1)))

	p1 := geom.Pt(center.X+radius*cos0, center.Y+radius*sin0)
	p2 := geom.Pt(center.X+radius*cos1, center.Y+radius*sin1)

	c1 := geom.Pt(p1.X-alpha*radius*sin0, p1.Y+alpha*radius*cos0)
	c2 := geom.Pt(p2.X+alpha*radius*sin1, p2.Y-alpha*radius*cos1)
	return c1, c2, p2
}

func transformPoint(center geom.Point, norm geom.Vector, p geom.Point) geom.Point {
	return geom.Pt(
		norm.X*p.X-norm.Y*p.Y+center.X,
		norm.Y*p.X+norm.X*p.Y+center.Y,
	)
}

func abs32(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
