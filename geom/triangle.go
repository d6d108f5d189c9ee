package geom

// Triangle is three points defining a filled triangle. It is mostly used
// to describe a single output triangle from a tessellation, for hit
// testing or winding/orientation checks.
type Triangle struct {
	A, B, C Point
}

// SignedArea returns twice the signed area of the triangle. The sign is
// positive when A, B, C are wound counter-clockwise in a y-up coordinate
// system (equivalently clockwise in the y-down convention the rest of
// this package uses for screen space).
func (t Triangle) SignedArea() float32 {
	ab := t.B.Sub(t.A)
	ac := t.C.Sub(t.A)
	return ab.Cross(ac)
}

// Area returns the unsigned area of the triangle.
func (t Triangle) Area() float32 {
	a := t.SignedArea()
	if a < 0 {
		return -a / 2
	}
	return a / 2
}

// ContainsPoint reports whether p lies inside or on the boundary of the
// triangle, using barycentric sign tests. Degenerate (zero-area)
// triangles never contain any point.
func (t Triangle) ContainsPoint(p Point) bool {
	if t.SignedArea() == 0 {
		return false
	}
	d1 := sign(p, t.A, t.B)
	d2 := sign(p, t.B, t.C)
	d3 := sign(p, t.C, t.A)

	hasNeg := d1 < 0 || d2 < 0 || d3 < 0
	hasPos := d1 > 0 || d2 > 0 || d3 > 0

	return !(hasNeg && hasPos)
}

func sign(p, a, b Point) float32 {
	return (p.X-b.X)*(a.Y-b.Y) - (a.X-b.X)*(p.Y-b.Y)
}
