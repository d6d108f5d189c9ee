package geom

import "math"

// CubicBezierSegment is a cubic Bezier curve defined by an endpoint, two
// control points, and a second endpoint.
type CubicBezierSegment struct {
	FromP, Ctrl1, Ctrl2, ToP Point
}

// Cubic builds a CubicBezierSegment.
func Cubic(from, ctrl1, ctrl2, to Point) CubicBezierSegment {
	return CubicBezierSegment{FromP: from, Ctrl1: ctrl1, Ctrl2: ctrl2, ToP: to}
}

func (c CubicBezierSegment) From() Point { return c.FromP }
func (c CubicBezierSegment) To() Point   { return c.ToP }

func (c CubicBezierSegment) Sample(t float32) Point {
	t1 := 1 - t
	a := t1 * t1 * t1
	b := 3 * t1 * t1 * t
	cc := 3 * t1 * t * t
	d := t * t * t
	return Point{
		X: a*c.FromP.X + b*c.Ctrl1.X + cc*c.Ctrl2.X + d*c.ToP.X,
		Y: a*c.FromP.Y + b*c.Ctrl1.Y + cc*c.Ctrl2.Y + d*c.ToP.Y,
	}
}

func (c CubicBezierSegment) Derivative(t float32) Vector {
	t1 := 1 - t
	return Vector{
		X: 3*t1*t1*(c.Ctrl1.X-c.FromP.X) + 6*t1*t*(c.Ctrl2.X-c.Ctrl1.X) + 3*t*t*(c.ToP.X-c.Ctrl2.X),
		Y: 3*t1*t1*(c.Ctrl1.Y-c.FromP.Y) + 6*t1*t*(c.Ctrl2.Y-c.Ctrl1.Y) + 3*t*t*(c.ToP.Y-c.Ctrl2.Y),
	}
}

// Split divides the curve at t into (before, after) via De Casteljau's
// algorithm.
func (c CubicBezierSegment) Split(t float32) (before, after CubicBezierSegment) {
	ab := c.FromP.Lerp(c.Ctrl1, t)
	bc := c.Ctrl1.Lerp(c.Ctrl2, t)
	cd := c.Ctrl2.Lerp(c.ToP, t)
	abc := ab.Lerp(bc, t)
	bcd := bc.Lerp(cd, t)
	mid := abc.Lerp(bcd, t)

	return CubicBezierSegment{FromP: c.FromP, Ctrl1: ab, Ctrl2: abc, ToP: mid},
		CubicBezierSegment{FromP: mid, Ctrl1: bcd, Ctrl2: cd, ToP: c.ToP}
}

// SplitRange returns the sub-curve spanning [t0, t1].
func (c CubicBezierSegment) SplitRange(t0, t1 float32) CubicBezierSegment {
	_, after := c.Split(t0)
	rescaled := float32(0)
	if t1 > t0 {
		rescaled = (t1 - t0) / (1 - t0)
	}
	before, _ := after.Split(rescaled)
	return before
}

// Flip reverses the curve's direction.
func (c CubicBezierSegment) Flip() CubicBezierSegment {
	return CubicBezierSegment{FromP: c.ToP, Ctrl1: c.Ctrl2, Ctrl2: c.Ctrl1, ToP: c.FromP}
}

func (c CubicBezierSegment) FastBoundingRangeX() (float32, float32) {
	return minMax4(c.FromP.X, c.Ctrl1.X, c.Ctrl2.X, c.ToP.X)
}

func (c CubicBezierSegment) FastBoundingRangeY() (float32, float32) {
	return minMax4(c.FromP.Y, c.Ctrl1.Y, c.Ctrl2.Y, c.ToP.Y)
}

// BoundingRangeX/Y fall back to the fast (control-polygon) bound: solving
// the cubic derivative's roots in closed form is not worth the
// complexity for a conservative-enough tight bound in this library.
func (c CubicBezierSegment) BoundingRangeX() (float32, float32) { return c.FastBoundingRangeX() }
func (c CubicBezierSegment) BoundingRangeY() (float32, float32) { return c.FastBoundingRangeY() }

func (c CubicBezierSegment) ApproximateLength(tolerance float32) float32 {
	return approximateLengthByFlattening(c, tolerance)
}

func minMax4(a, b, cc, d float32) (float32, float32) {
	lo, hi := minMax3(a, b, cc)
	if d < lo {
		lo = d
	}
	if d > hi {
		hi = d
	}
	return lo, hi
}

// quadraticApprox returns the single quadratic Bezier that best
// approximates c over its full parameter range, using the standard
// least-squares control point (3*(ctrl1+ctrl2) - from - to) / 4.
func (c CubicBezierSegment) quadraticApprox() QuadraticBezierSegment {
	return QuadraticBezierSegment{
		FromP: c.FromP,
		Ctrl: Point{
			X: (3*(c.Ctrl1.X+c.Ctrl2.X) - c.FromP.X - c.ToP.X) / 4,
			Y: (3*(c.Ctrl1.Y+c.Ctrl2.Y) - c.FromP.Y - c.ToP.Y) / 4,
		},
		ToP: c.ToP,
	}
}

// approxError estimates the maximum deviation between c and its single
// quadratic approximation, using the cubic coefficient's norm scaled by
// sqrt(3)/36 (Hain, Langlois & Donikian).
func (c CubicBezierSegment) approxError() float32 {
	dx := c.ToP.X - 3*c.Ctrl2.X + 3*c.Ctrl1.X - c.FromP.X
	dy := c.ToP.Y - 3*c.Ctrl2.Y + 3*c.Ctrl1.Y - c.FromP.Y
	norm := float32(math.Sqrt(float64(dx*dx + dy*dy)))
	return norm * float32(math.Sqrt(3)) / 36
}

// ForEachFlattened emits a polyline approximation to within tolerance by
// adaptively reducing the cubic to a sequence of quadratic Beziers, each
// within tolerance/2 of the cubic, then flattening each quadratic with
// the closed-form step of QuadraticBezierSegment.ForEachFlattened at
// tolerance/2, so the two errors together stay within tolerance.
// Endpoints match the cubic's From()/To() exactly.
func (c CubicBezierSegment) ForEachFlattened(tolerance float32, cb func(Point)) {
	if tolerance <= 0 {
		tolerance = 1e-3
	}
	c.forEachFlattenedRec(tolerance, cb, 0)
}

func (c CubicBezierSegment) forEachFlattenedRec(tolerance float32, cb func(Point), depth int) {
	if c.FromP.Distance(c.ToP) < 1e-5 && c.FromP.Distance(c.Ctrl1) < 1e-5 && c.FromP.Distance(c.Ctrl2) < 1e-5 {
		cb(c.ToP)
		return
	}

	if depth >= 24 || c.approxError() <= tolerance/2 {
		c.quadraticApprox().ForEachFlattened(tolerance/2, cb)
		return
	}

	before, after := c.Split(0.5)
	before.forEachFlattenedRec(tolerance, cb, depth+1)
	after.forEachFlattenedRec(tolerance, cb, depth+1)
}
