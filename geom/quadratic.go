package geom

import "math"

// QuadraticBezierSegment is a quadratic Bezier curve defined by an
// endpoint, a single control point, and a second endpoint.
type QuadraticBezierSegment struct {
	FromP, Ctrl, ToP Point
}

// Quadratic builds a QuadraticBezierSegment.
func Quadratic(from, ctrl, to Point) QuadraticBezierSegment {
	return QuadraticBezierSegment{FromP: from, Ctrl: ctrl, ToP: to}
}

func (q QuadraticBezierSegment) From() Point { return q.FromP }
func (q QuadraticBezierSegment) To() Point   { return q.ToP }

func (q QuadraticBezierSegment) Sample(t float32) Point {
	t1 := 1 - t
	a := t1 * t1
	b := 2 * t1 * t
	c := t * t
	return Point{
		X: a*q.FromP.X + b*q.Ctrl.X + c*q.ToP.X,
		Y: a*q.FromP.Y + b*q.Ctrl.Y + c*q.ToP.Y,
	}
}

func (q QuadraticBezierSegment) Derivative(t float32) Vector {
	return Vector{
		X: 2 * (1 - t) * (q.Ctrl.X - q.FromP.X) + 2*t*(q.ToP.X-q.Ctrl.X),
		Y: 2 * (1 - t) * (q.Ctrl.Y - q.FromP.Y) + 2*t*(q.ToP.Y-q.Ctrl.Y),
	}
}

// Split divides the curve at t into (before, after), each itself a
// quadratic Bezier, via De Casteljau's algorithm.
func (q QuadraticBezierSegment) Split(t float32) (before, after QuadraticBezierSegment) {
	ctrl1a := q.FromP.Lerp(q.Ctrl, t)
	ctrl1b := q.Ctrl.Lerp(q.ToP, t)
	mid := ctrl1a.Lerp(ctrl1b, t)
	return QuadraticBezierSegment{FromP: q.FromP, Ctrl: ctrl1a, ToP: mid},
		QuadraticBezierSegment{FromP: mid, Ctrl: ctrl1b, ToP: q.ToP}
}

// SplitRange returns the sub-curve spanning [t0, t1].
func (q QuadraticBezierSegment) SplitRange(t0, t1 float32) QuadraticBezierSegment {
	_, after := q.Split(t0)
	// Rescale t1 into after's parameter space.
	rescaled := float32(0)
	if t1 > t0 {
		rescaled = (t1 - t0) / (1 - t0)
	}
	before, _ := after.Split(rescaled)
	return before
}

// Flip reverses the curve's direction.
func (q QuadraticBezierSegment) Flip() QuadraticBezierSegment {
	return QuadraticBezierSegment{FromP: q.ToP, Ctrl: q.Ctrl, ToP: q.FromP}
}

func (q QuadraticBezierSegment) FastBoundingRangeX() (float32, float32) {
	return minMax3(q.FromP.X, q.Ctrl.X, q.ToP.X)
}

func (q QuadraticBezierSegment) FastBoundingRangeY() (float32, float32) {
	return minMax3(q.FromP.Y, q.Ctrl.Y, q.ToP.Y)
}

// BoundingRangeX computes the tight bound by solving for the extremum of
// the quadratic derivative.
func (q QuadraticBezierSegment) BoundingRangeX() (float32, float32) {
	return tightRange(q.FromP.X, q.Ctrl.X, q.ToP.X)
}

func (q QuadraticBezierSegment) BoundingRangeY() (float32, float32) {
	return tightRange(q.FromP.Y, q.Ctrl.Y, q.ToP.Y)
}

func (q QuadraticBezierSegment) ApproximateLength(tolerance float32) float32 {
	return approximateLengthByFlattening(q, tolerance)
}

func minMax3(a, b, c float32) (float32, float32) {
	lo, hi := minMax(a, b)
	if c < lo {
		lo = c
	}
	if c > hi {
		hi = c
	}
	return lo, hi
}

// tightRange finds the extremum of a quadratic Bezier along one axis and
// returns the min/max of the endpoints and that extremum (if it lies in
// (0, 1)).
func tightRange(p0, p1, p2 float32) (float32, float32) {
	lo, hi := minMax(p0, p2)
	denom := p0 - 2*p1 + p2
	if denom != 0 {
		t := (p0 - p1) / denom
		if t > 0 && t < 1 {
			t1 := 1 - t
			v := t1*t1*p0 + 2*t1*t*p1 + t*t*p2
			if v < lo {
				lo = v
			}
			if v > hi {
				hi = v
			}
		}
	}
	return lo, hi
}

// ForEachFlattened emits a polyline approximation to within tolerance
// using the closed-form step of Hain, Langlois & Donikian: "Fast,
// precise flattening of cubic Bezier segment offset curves". Each step
// computes the largest t for which the deviation between the chord and
// the curve is still within tolerance, splits there, and repeats on the
// remainder. This produces fewer segments than recursive midpoint
// subdivision for the same tolerance.
func (q QuadraticBezierSegment) ForEachFlattened(tolerance float32, cb func(Point)) {
	q.forEachFlattenedImpl(tolerance, cb, true)
}

// forEachFlattenedImpl does the flattening; emitFinal controls whether
// the segment's own endpoint To() is emitted as the last point.
// ForEachFlattened always passes true.
func (q QuadraticBezierSegment) forEachFlattenedImpl(tolerance float32, cb func(Point), emitFinal bool) {
	if tolerance <= 0 {
		tolerance = 1e-3
	}

	from, ctrl, to := q.FromP, q.Ctrl, q.ToP

	for iter := 0; iter < 1024; iter++ {
		if from.Distance(to) < 1e-5 {
			if emitFinal {
				cb(to)
			}
			return
		}

		v1 := ctrl.Sub(from)
		v2 := to.Sub(from)
		cross := v2.X*v1.Y - v2.Y*v1.X
		v1Len := v1.Length()

		if float32(math.Abs(float64(cross)))*v1Len <= 1e-9 {
			// Effectively a line.
			if emitFinal {
				cb(to)
			}
			return
		}

		denom := 3 * float32(math.Abs(float64(cross)))
		t := float32(2) * float32(math.Sqrt(float64(tolerance*v1Len/denom)))
		if t >= 1 || math.IsNaN(float64(t)) {
			if emitFinal {
				cb(to)
			}
			return
		}

		sub := QuadraticBezierSegment{FromP: from, Ctrl: ctrl, ToP: to}
		splitBefore, splitAfter := sub.Split(t)
		cb(splitBefore.ToP)

		from = splitAfter.FromP
		ctrl = splitAfter.Ctrl
		to = splitAfter.ToP
	}
	if emitFinal {
		cb(to)
	}
}
