package geom

// LineSegment is a straight segment between two points.
type LineSegment struct {
	FromP, ToP Point
}

// Line builds a LineSegment.
func Line(from, to Point) LineSegment {
	return LineSegment{FromP: from, ToP: to}
}

func (l LineSegment) From() Point { return l.FromP }
func (l LineSegment) To() Point   { return l.ToP }

func (l LineSegment) Sample(t float32) Point {
	return l.FromP.Lerp(l.ToP, t)
}

func (l LineSegment) Derivative(float32) Vector {
	return l.ToP.Sub(l.FromP)
}

// ForEachFlattened emits the single endpoint: a line needs no subdivision.
func (l LineSegment) ForEachFlattened(_ float32, cb func(Point)) {
	cb(l.ToP)
}

// Split divides the segment at t into (before, after).
func (l LineSegment) Split(t float32) (before, after LineSegment) {
	mid := l.Sample(t)
	return LineSegment{FromP: l.FromP, ToP: mid}, LineSegment{FromP: mid, ToP: l.ToP}
}

// SplitRange returns the sub-segment spanning [t0, t1].
func (l LineSegment) SplitRange(t0, t1 float32) LineSegment {
	return LineSegment{FromP: l.Sample(t0), ToP: l.Sample(t1)}
}

// Flip reverses the segment's direction.
func (l LineSegment) Flip() LineSegment {
	return LineSegment{FromP: l.ToP, ToP: l.FromP}
}

func (l LineSegment) FastBoundingRangeX() (float32, float32) { return minMax(l.FromP.X, l.ToP.X) }
func (l LineSegment) FastBoundingRangeY() (float32, float32) { return minMax(l.FromP.Y, l.ToP.Y) }
func (l LineSegment) BoundingRangeX() (float32, float32)     { return l.FastBoundingRangeX() }
func (l LineSegment) BoundingRangeY() (float32, float32)     { return l.FastBoundingRangeY() }

func (l LineSegment) ApproximateLength(float32) float32 {
	return l.FromP.Distance(l.ToP)
}

func minMax(a, b float32) (float32, float32) {
	if a < b {
		return a, b
	}
	return b, a
}
