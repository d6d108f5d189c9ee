package geom

import "math"

// Segment is the capability set shared by all curve types the tessellator
// pipeline understands: lines, quadratic and cubic Beziers, and arcs.
//
// Flattening never fails: a non-positive tolerance is a programmer error,
// and degenerate curves (coincident control points, or a chord shorter
// than 1e-5) simply emit their endpoint.
type Segment interface {
	From() Point
	To() Point

	// Sample returns the position at parameter t in [0, 1].
	Sample(t float32) Point

	// Derivative returns the tangent vector at parameter t.
	Derivative(t float32) Vector

	// ForEachFlattened emits the points p1..pn = To() of a polyline
	// approximating the segment to within tolerance, via push-style
	// callback. Restartability is not required.
	ForEachFlattened(tolerance float32, cb func(Point))

	// FastBoundingRangeX/Y return a conservative (cheap to compute) range.
	FastBoundingRangeX() (min, max float32)
	FastBoundingRangeY() (min, max float32)

	// BoundingRangeX/Y return the bounding range. It is tight for lines
	// and quadratic Beziers; CubicBezierSegment and Arc return the same
	// conservative range as FastBoundingRangeX/Y, not a tight one.
	BoundingRangeX() (min, max float32)
	BoundingRangeY() (min, max float32)

	// ApproximateLength estimates the arc length via flattening.
	ApproximateLength(tolerance float32) float32
}

// Rect is an axis-aligned rectangle, normalized so Min <= Max.
type Rect struct {
	Min, Max Point
}

// NewRect builds a normalized rectangle from two corner points.
func NewRect(a, b Point) Rect {
	return Rect{
		Min: Point{X: float32(math.Min(float64(a.X), float64(b.X))), Y: float32(math.Min(float64(a.Y), float64(b.Y)))},
		Max: Point{X: float32(math.Max(float64(a.X), float64(b.X))), Y: float32(math.Max(float64(a.Y), float64(b.Y)))},
	}
}

// Width returns the rectangle's width.
func (r Rect) Width() float32 { return r.Max.X - r.Min.X }

// Height returns the rectangle's height.
func (r Rect) Height() float32 { return r.Max.Y - r.Min.Y }

// Union returns the smallest rectangle containing both r and s.
func (r Rect) Union(s Rect) Rect {
	return Rect{
		Min: Point{X: float32(math.Min(float64(r.Min.X), float64(s.Min.X))), Y: float32(math.Min(float64(r.Min.Y), float64(s.Min.Y)))},
		Max: Point{X: float32(math.Max(float64(r.Max.X), float64(s.Max.X))), Y: float32(math.Max(float64(r.Max.Y), float64(s.Max.Y)))},
	}
}

// approximateLengthByFlattening is the default ApproximateLength
// implementation shared by the curve segment types: it sums chord
// lengths of the flattened polyline.
func approximateLengthByFlattening(s Segment, tolerance float32) float32 {
	var length float32
	prev := s.From()
	s.ForEachFlattened(tolerance, func(p Point) {
		length += prev.Distance(p)
		prev = p
	})
	return length
}
