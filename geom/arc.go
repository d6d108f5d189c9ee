package geom

import "math"

// Arc is an elliptic arc segment, parametrized the way SVG describes
// arcs: a center, two radii, an x-axis rotation, and a start/sweep angle
// (both in radians; positive sweep is counter-clockwise in the
// mathematical sense before the rotation is applied).
type Arc struct {
	Center     Point
	Radii      Vector // RX, RY
	XRotation  float32
	StartAngle float32
	SweepAngle float32
}

func (a Arc) pointAt(angle float32) Point {
	cosRot := float32(math.Cos(float64(a.XRotation)))
	sinRot := float32(math.Sin(float64(a.XRotation)))
	cosA := float32(math.Cos(float64(angle)))
	sinA := float32(math.Sin(float64(angle)))
	x := a.Radii.X * cosA
	y := a.Radii.Y * sinA
	return Point{
		X: a.Center.X + x*cosRot - y*sinRot,
		Y: a.Center.Y + x*sinRot + y*cosRot,
	}
}

func (a Arc) tangentAt(angle float32) Vector {
	cosRot := float32(math.Cos(float64(a.XRotation)))
	sinRot := float32(math.Sin(float64(a.XRotation)))
	cosA := float32(math.Cos(float64(angle)))
	sinA := float32(math.Sin(float64(angle)))
	dx := -a.Radii.X * sinA
	dy := a.Radii.Y * cosA
	return Vector{
		X: dx*cosRot - dy*sinRot,
		Y: dx*sinRot + dy*cosRot,
	}
}

func (a Arc) From() Point { return a.pointAt(a.StartAngle) }
func (a Arc) To() Point   { return a.pointAt(a.StartAngle + a.SweepAngle) }

func (a Arc) Sample(t float32) Point {
	return a.pointAt(a.StartAngle + a.SweepAngle*t)
}

func (a Arc) Derivative(t float32) Vector {
	return a.tangentAt(a.StartAngle + a.SweepAngle*t).Mul(a.SweepAngle)
}

// Split divides the arc at t into (before, after), each itself an Arc.
func (a Arc) Split(t float32) (before, after Arc) {
	mid := a.StartAngle + a.SweepAngle*t
	before = Arc{Center: a.Center, Radii: a.Radii, XRotation: a.XRotation, StartAngle: a.StartAngle, SweepAngle: mid - a.StartAngle}
	after = Arc{Center: a.Center, Radii: a.Radii, XRotation: a.XRotation, StartAngle: mid, SweepAngle: a.StartAngle + a.SweepAngle - mid}
	return
}

// SplitRange returns the sub-arc spanning [t0, t1].
func (a Arc) SplitRange(t0, t1 float32) Arc {
	start := a.StartAngle + a.SweepAngle*t0
	end := a.StartAngle + a.SweepAngle*t1
	return Arc{Center: a.Center, Radii: a.Radii, XRotation: a.XRotation, StartAngle: start, SweepAngle: end - start}
}

// Flip reverses the arc's direction.
func (a Arc) Flip() Arc {
	return Arc{Center: a.Center, Radii: a.Radii, XRotation: a.XRotation, StartAngle: a.StartAngle + a.SweepAngle, SweepAngle: -a.SweepAngle}
}

func (a Arc) FastBoundingRangeX() (float32, float32) {
	r := a.Radii.X
	if a.Radii.Y > r {
		r = a.Radii.Y
	}
	return a.Center.X - r, a.Center.X + r
}

func (a Arc) FastBoundingRangeY() (float32, float32) {
	r := a.Radii.X
	if a.Radii.Y > r {
		r = a.Radii.Y
	}
	return a.Center.Y - r, a.Center.Y + r
}

func (a Arc) BoundingRangeX() (float32, float32) { return a.FastBoundingRangeX() }
func (a Arc) BoundingRangeY() (float32, float32) { return a.FastBoundingRangeY() }

func (a Arc) ApproximateLength(tolerance float32) float32 {
	return approximateLengthByFlattening(a, tolerance)
}

// ForEachFlattened adaptively subdivides the arc into line segments so
// the chord-to-arc distance is within tolerance, converting each small
// sub-arc to a quadratic Bezier first and flattening that (matching the
// ambient flattening contract used for the other curve types).
//
// Arc flattening step counts at extreme aspect ratios (radii ratios near
// 0 or far above 1) are not guaranteed to be bit-exact across tolerance
// values close to each other; only the tolerance bound itself is
// guaranteed.
func (a Arc) ForEachFlattened(tolerance float32, cb func(Point)) {
	if tolerance <= 0 {
		tolerance = 1e-3
	}
	a.forEachFlattenedRec(tolerance, cb, 0)
}

func (a Arc) forEachFlattenedRec(tolerance float32, cb func(Point), depth int) {
	if a.From().Distance(a.To()) < 1e-5 {
		cb(a.To())
		return
	}

	maxR := a.Radii.X
	if a.Radii.Y > maxR {
		maxR = a.Radii.Y
	}
	sweep := a.SweepAngle
	if sweep < 0 {
		sweep = -sweep
	}

	// Sagitta of the chord: maxR * (1 - cos(sweep/2)) bounds the
	// deviation between the arc and its chord for a circular arc; using
	// the larger radius keeps this a conservative (over-) estimate for
	// ellipses too.
	halfSweep := float64(sweep) / 2
	sagitta := maxR * float32(1-math.Cos(halfSweep))

	if depth >= 20 || sagitta <= tolerance {
		quad := arcToQuadratic(a)
		quad.ForEachFlattened(tolerance, cb)
		return
	}

	before, after := a.Split(0.5)
	before.forEachFlattenedRec(tolerance, cb, depth+1)
	after.forEachFlattenedRec(tolerance, cb, depth+1)
}

// arcToQuadratic approximates a small arc with a single quadratic Bezier
// whose control point is placed at the intersection of the tangent lines
// at the arc's endpoints. Endpoints match exactly.
func arcToQuadratic(a Arc) QuadraticBezierSegment {
	from, to := a.From(), a.To()
	t0 := a.tangentAt(a.StartAngle).Normalize()
	t1 := a.tangentAt(a.StartAngle + a.SweepAngle).Normalize()

	// Solve for the intersection of from + s*t0 and to + r*t1.
	denom := t0.Cross(t1)
	if float64(denom) == 0 || math.IsNaN(float64(denom)) {
		mid := from.Lerp(to, 0.5)
		return QuadraticBezierSegment{FromP: from, Ctrl: mid, ToP: to}
	}
	diff := to.Sub(from)
	s := diff.Cross(t1) / denom
	ctrl := from.Add(t0.Mul(s))
	return QuadraticBezierSegment{FromP: from, Ctrl: ctrl, ToP: to}
}

// SvgArcToCenter converts the SVG arc parametrization (endpoints, radii,
// x-axis rotation, large-arc/sweep flags) to the center parametrization
// used by Arc, following the SVG 1.1 Implementation Notes (F.6.5).
func SvgArcToCenter(from, to Point, radii Vector, xRotationRadians float32, largeArc, sweep bool) Arc {
	rx, ry := radii.X, radii.Y
	if rx == 0 || ry == 0 {
		return Arc{Center: from, Radii: Vector{}, StartAngle: 0, SweepAngle: 0}
	}
	rx = float32(math.Abs(float64(rx)))
	ry = float32(math.Abs(float64(ry)))

	cosPhi := float32(math.Cos(float64(xRotationRadians)))
	sinPhi := float32(math.Sin(float64(xRotationRadians)))

	dx2 := (from.X - to.X) / 2
	dy2 := (from.Y - to.Y) / 2
	x1p := cosPhi*dx2 + sinPhi*dy2
	y1p := -sinPhi*dx2 + cosPhi*dy2

	lambda := (x1p*x1p)/(rx*rx) + (y1p*y1p)/(ry*ry)
	if lambda > 1 {
		scale := float32(math.Sqrt(float64(lambda)))
		rx *= scale
		ry *= scale
	}

	sign := float32(1)
	if largeArc == sweep {
		sign = -1
	}
	num := rx*rx*ry*ry - rx*rx*y1p*y1p - ry*ry*x1p*x1p
	den := rx*rx*y1p*y1p + ry*ry*x1p*x1p
	coef := float32(0)
	if den != 0 && num > 0 {
		coef = sign * float32(math.Sqrt(float64(num/den)))
	}
	cxp := coef * (rx * y1p / ry)
	cyp := coef * -(ry * x1p / rx)

	cx := cosPhi*cxp - sinPhi*cyp + (from.X+to.X)/2
	cy := sinPhi*cxp + cosPhi*cyp + (from.Y+to.Y)/2

	angle := func(ux, uy, vx, vy float32) float32 {
		dot := ux*vx + uy*vy
		lenU := float32(math.Sqrt(float64(ux*ux + uy*uy)))
		lenV := float32(math.Sqrt(float64(vx*vx + vy*vy)))
		denom := lenU * lenV
		a := float32(0)
		if denom != 0 {
			cosv := dot / denom
			if cosv > 1 {
				cosv = 1
			}
			if cosv < -1 {
				cosv = -1
			}
			a = float32(math.Acos(float64(cosv)))
		}
		if ux*vy-uy*vx < 0 {
			a = -a
		}
		return a
	}

	theta1 := angle(1, 0, (x1p-cxp)/rx, (y1p-cyp)/ry)
	dTheta := angle((x1p-cxp)/rx, (y1p-cyp)/ry, (-x1p-cxp)/rx, (-y1p-cyp)/ry)

	twoPi := float32(2 * math.Pi)
	if !sweep && dTheta > 0 {
		dTheta -= twoPi
	} else if sweep && dTheta < 0 {
		dTheta += twoPi
	}

	return Arc{
		Center:     Point{X: cx, Y: cy},
		Radii:      Vector{X: rx, Y: ry},
		XRotation:  xRotationRadians,
		StartAngle: theta1,
		SweepAngle: dTheta,
	}
}
