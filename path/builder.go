package path

import "github.com/nical/lyon/geom"

// VertexId identifies an endpoint within a path under construction. It is
// a simple monotonically increasing counter of emitted endpoints;
// InvalidVertexId distinguishes "no vertex yet".
type VertexId uint32

// InvalidVertexId is the sentinel VertexId meaning "no vertex".
const InvalidVertexId VertexId = ^VertexId(0)

// Builder is the imperative front end for constructing a Path, modeled
// after a typical canvas/SVG path API: move, line/curve-to, close.
type Builder struct {
	events  []PathEvent
	start   geom.Point
	current geom.Point
	nextId  VertexId
	open    bool
}

// NewBuilder creates an empty Builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// Reserve hints at the number of endpoints and control points the
// caller expects to add, to avoid reallocations.
func (b *Builder) Reserve(endpoints, ctrlPoints int) {
	if cap(b.events)-len(b.events) < endpoints+ctrlPoints {
		grown := make([]PathEvent, len(b.events), len(b.events)+endpoints+ctrlPoints+4)
		copy(grown, b.events)
		b.events = grown
	}
}

func (b *Builder) allocId() VertexId {
	id := b.nextId
	b.nextId++
	return id
}

// Begin starts a new sub-path at p, closing the previous one (without an
// explicit close) if it was left open.
func (b *Builder) Begin(p geom.Point) VertexId {
	if b.open {
		b.End(false)
	}
	b.events = append(b.events, BeginEvent(p))
	b.start = p
	b.current = p
	b.open = true
	return b.allocId()
}

// LineTo draws a straight segment to p.
func (b *Builder) LineTo(p geom.Point) VertexId {
	b.events = append(b.events, LineEvent(b.current, p))
	b.current = p
	return b.allocId()
}

// QuadraticBezierTo draws a quadratic Bezier segment to p with the given
// control point.
func (b *Builder) QuadraticBezierTo(ctrl, p geom.Point) VertexId {
	b.events = append(b.events, QuadraticEvent(b.current, ctrl, p))
	b.current = p
	return b.allocId()
}

// CubicBezierTo draws a cubic Bezier segment to p with the given control
// points.
func (b *Builder) CubicBezierTo(ctrl1, ctrl2, p geom.Point) VertexId {
	b.events = append(b.events, CubicEvent(b.current, ctrl1, ctrl2, p))
	b.current = p
	return b.allocId()
}

// End terminates the current sub-path. If close is true an implicit line
// back to the sub-path's start is part of the contour.
func (b *Builder) End(close bool) {
	if !b.open {
		return
	}
	b.events = append(b.events, EndEvent(b.current, b.start, close))
	b.open = false
}

// Build finalizes and returns the constructed Path, closing any
// still-open sub-path without an implicit closing line.
func (b *Builder) Build() *Path {
	if b.open {
		b.End(false)
	}
	return &Path{events: b.events}
}

// CurrentPosition returns the position the next drawing command will
// start from.
func (b *Builder) CurrentPosition() geom.Point {
	return b.current
}

// AddPolygon appends a closed or open polygon from the given points.
func (b *Builder) AddPolygon(points []geom.Point, closed bool) {
	if len(points) == 0 {
		return
	}
	b.Begin(points[0])
	for _, p := range points[1:] {
		b.LineTo(p)
	}
	b.End(closed)
}

// AddLineSegment appends a single open two-point sub-path.
func (b *Builder) AddLineSegment(from, to geom.Point) {
	b.Begin(from)
	b.LineTo(to)
	b.End(false)
}

// AddRectangle appends a rectangle sub-path with the given winding
// direction (Positive = clockwise in this package's y-down convention).
func (b *Builder) AddRectangle(rect geom.Rect, winding Winding) {
	min, max := rect.Min, rect.Max
	b.Begin(min)
	if winding == Positive {
		b.LineTo(geom.Pt(max.X, min.Y))
		b.LineTo(max)
		b.LineTo(geom.Pt(min.X, max.Y))
	} else {
		b.LineTo(geom.Pt(min.X, max.Y))
		b.LineTo(max)
		b.LineTo(geom.Pt(max.X, min.Y))
	}
	b.End(true)
}

// AddCircle appends a circle approximated by four cubic Bezier arcs.
func (b *Builder) AddCircle(center geom.Point, radius float32, winding Winding) {
	b.AddEllipse(center, geom.Vec(radius, radius), winding)
}

// AddEllipse appends an ellipse approximated by four cubic Bezier arcs.
func (b *Builder) AddEllipse(center geom.Point, radii geom.Vector, winding Winding) {
	const k = float32(0.5522847498307936) // 4/3 * (sqrt(2) - 1)
	kx, ky := radii.X*k, radii.Y*k

	top := geom.Pt(center.X, center.Y-radii.Y)
	right := geom.Pt(center.X+radii.X, center.Y)
	bottom := geom.Pt(center.X, center.Y+radii.Y)
	left := geom.Pt(center.X-radii.X, center.Y)

	b.Begin(right)
	if winding == Positive {
		b.CubicBezierTo(geom.Pt(right.X, right.Y+ky), geom.Pt(bottom.X+kx, bottom.Y), bottom)
		b.CubicBezierTo(geom.Pt(bottom.X-kx, bottom.Y), geom.Pt(left.X, left.Y+ky), left)
		b.CubicBezierTo(geom.Pt(left.X, left.Y-ky), geom.Pt(top.X-kx, top.Y), top)
		b.CubicBezierTo(geom.Pt(top.X+kx, top.Y), geom.Pt(right.X, right.Y-ky), right)
	} else {
		b.CubicBezierTo(geom.Pt(right.X, right.Y-ky), geom.Pt(top.X+kx, top.Y), top)
		b.CubicBezierTo(geom.Pt(top.X-kx, top.Y), geom.Pt(left.X, left.Y-ky), left)
		b.CubicBezierTo(geom.Pt(left.X, left.Y+ky), geom.Pt(bottom.X-kx, bottom.Y), bottom)
		b.CubicBezierTo(geom.Pt(bottom.X+kx, bottom.Y), geom.Pt(right.X, right.Y+ky), right)
	}
	b.End(true)
}

// Winding describes the orientation to emit a generated shape with.
type Winding uint8

const (
	Positive Winding = iota
	Negative
)

// AddRoundedRectangle appends a rectangle with circular-arc corners of
// the given radius, in the requested winding direction.
func (b *Builder) AddRoundedRectangle(rect geom.Rect, radius float32, winding Winding) {
	w, h := rect.Width(), rect.Height()
	maxR := w
	if h < w {
		maxR = h
	}
	maxR /= 2
	if radius > maxR {
		radius = maxR
	}
	const k = float32(0.5522847498307936)
	off := radius * k

	x0, y0 := rect.Min.X, rect.Min.Y
	x1, y1 := rect.Max.X, rect.Max.Y

	if winding == Positive {
		b.Begin(geom.Pt(x0+radius, y0))
		b.LineTo(geom.Pt(x1-radius, y0))
		b.CubicBezierTo(geom.Pt(x1-radius+off, y0), geom.Pt(x1, y0+radius-off), geom.Pt(x1, y0+radius))
		b.LineTo(geom.Pt(x1, y1-radius))
		b.CubicBezierTo(geom.Pt(x1, y1-radius+off), geom.Pt(x1-radius+off, y1), geom.Pt(x1-radius, y1))
		b.LineTo(geom.Pt(x0+radius, y1))
		b.CubicBezierTo(geom.Pt(x0+radius-off, y1), geom.Pt(x0, y1-radius+off), geom.Pt(x0, y1-radius))
		b.LineTo(geom.Pt(x0, y0+radius))
		b.CubicBezierTo(geom.Pt(x0, y0+radius-off), geom.Pt(x0+radius-off, y0), geom.Pt(x0+radius, y0))
	} else {
		b.Begin(geom.Pt(x0+radius, y0))
		b.CubicBezierTo(geom.Pt(x0+radius-off, y0), geom.Pt(x0, y0+radius-off), geom.Pt(x0, y0+radius))
		b.LineTo(geom.Pt(x0, y1-radius))
		b.CubicBezierTo(geom.Pt(x0, y1-radius+off), geom.Pt(x0+radius-off, y1), geom.Pt(x0+radius, y1))
		b.LineTo(geom.Pt(x1-radius, y1))
		b.CubicBezierTo(geom.Pt(x1-radius+off, y1), geom.Pt(x1, y1-radius+off), geom.Pt(x1, y1-radius))
		b.LineTo(geom.Pt(x1, y0+radius))
		b.CubicBezierTo(geom.Pt(x1, y0+radius-off), geom.Pt(x1-radius+off, y0), geom.Pt(x1-radius, y0))
		b.LineTo(geom.Pt(x0+radius, y0))
	}
	b.End(true)
}
