package path

import "github.com/nical/lyon/geom"

// Polygon builds a standalone Path for a polygon through points, open or
// closed. A thin convenience wrapper over Builder.AddPolygon for callers
// that don't need to accumulate multiple sub-paths.
func Polygon(points []geom.Point, closed bool) *Path {
	b := NewBuilder()
	b.AddPolygon(points, closed)
	return b.Build()
}

// Rectangle builds a standalone Path for an axis-aligned rectangle.
func Rectangle(rect geom.Rect, winding Winding) *Path {
	b := NewBuilder()
	b.AddRectangle(rect, winding)
	return b.Build()
}

// Circle builds a standalone Path for a circle approximated by four
// cubic Bezier arcs.
func Circle(center geom.Point, radius float32, winding Winding) *Path {
	b := NewBuilder()
	b.AddCircle(center, radius, winding)
	return b.Build()
}

// Ellipse builds a standalone Path for an ellipse approximated by four
// cubic Bezier arcs.
func Ellipse(center geom.Point, radii geom.Vector, winding Winding) *Path {
	b := NewBuilder()
	b.AddEllipse(center, radii, winding)
	return b.Build()
}

// RoundedRectangle builds a standalone Path for a rectangle with
// circular-arc corners.
func RoundedRectangle(rect geom.Rect, radius float32, winding Winding) *Path {
	b := NewBuilder()
	b.AddRoundedRectangle(rect, radius, winding)
	return b.Build()
}
