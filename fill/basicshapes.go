package fill

import (
	"math"

	"github.com/nical/lyon/builder"
	"github.com/nical/lyon/geom"
)

// Rectangle tessellates an axis-aligned rectangle directly, without
// running the sweep-line algorithm: two triangles always suffice. A
// fast path for the single most common fill shape (spec §E).
func Rectangle(rect geom.Rect, out builder.GeometryBuilder) {
	out.BeginGeometry()
	a := out.AddVertex(rect.Min)
	b := out.AddVertex(geom.Pt(rect.Min.X, rect.Max.Y))
	c := out.AddVertex(rect.Max)
	d := out.AddVertex(geom.Pt(rect.Max.X, rect.Min.Y))
	out.AddTriangle(a, b, c)
	out.AddTriangle(a, c, d)
	out.EndGeometry()
}

// ConvexPolygon tessellates a convex polygon directly via triangle-fan
// from its first vertex, without running the general sweep algorithm.
// Behavior is undefined if points describes a non-convex polygon.
func ConvexPolygon(points []geom.Point, out builder.GeometryBuilder) {
	if len(points) < 3 {
		return
	}
	out.BeginGeometry()
	first := out.AddVertex(points[0])
	prev := out.AddVertex(points[1])
	for _, p := range points[2:] {
		cur := out.AddVertex(p)
		out.AddTriangle(first, prev, cur)
		prev = cur
	}
	out.EndGeometry()
}

// Circle tessellates a circle as a triangle fan around its center,
// approximating the boundary with enough segments to stay within
// tolerance of the true circle (spec §E).
func Circle(center geom.Point, radius, tolerance float32, out builder.GeometryBuilder) {
	if radius <= 0 {
		return
	}
	if tolerance <= 0 {
		tolerance = 0.1
	}
	clamped := tolerance
	if clamped > radius {
		clamped = radius
	}
	// Number of segments such that the sagitta of each arc slice stays
	// within tolerance: segments = ceil(pi / acos(1 - tolerance/radius)).
	ratio := 1 - clamped/radius
	if ratio < -1 {
		ratio = -1
	}
	segments := int(math.Ceil(math.Pi / math.Acos(float64(ratio))))
	if segments < 8 {
		segments = 8
	}

	out.BeginGeometry()
	centerId := out.AddVertex(center)
	first := out.AddVertex(geom.Pt(center.X+radius, center.Y))
	prev := first
	for i := 1; i < segments; i++ {
		angle := 2 * math.Pi * float64(i) / float64(segments)
		p := geom.Pt(center.X+radius*float32(math.Cos(angle)), center.Y+radius*float32(math.Sin(angle)))
		cur := out.AddVertex(p)
		out.AddTriangle(centerId, prev, cur)
		prev = cur
	}
	out.AddTriangle(centerId, prev, first)
	out.EndGeometry()
}
