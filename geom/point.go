// Package geom provides the 2D geometry primitives shared by the path,
// fill and stroke packages: points, vectors, segments and the curve
// flattening contract.
package geom

import "math"

// Point is a position in 2D space.
type Point struct {
	X, Y float32
}

// Vector is a displacement in 2D space.
type Vector struct {
	X, Y float32
}

// Pt creates a Point from coordinates.
func Pt(x, y float32) Point {
	return Point{X: x, Y: y}
}

// Vec creates a Vector from components.
func Vec(x, y float32) Vector {
	return Vector{X: x, Y: y}
}

// Sub returns the vector from q to p (p - q).
func (p Point) Sub(q Point) Vector {
	return Vector{X: p.X - q.X, Y: p.Y - q.Y}
}

// Add returns the point translated by v.
func (p Point) Add(v Vector) Point {
	return Point{X: p.X + v.X, Y: p.Y + v.Y}
}

// Lerp linearly interpolates between p and q at parameter t.
func (p Point) Lerp(q Point, t float32) Point {
	return Point{
		X: p.X + (q.X-p.X)*t,
		Y: p.Y + (q.Y-p.Y)*t,
	}
}

// Distance returns the Euclidean distance between p and q.
func (p Point) Distance(q Point) float32 {
	return p.Sub(q).Length()
}

// NearEq reports whether p and q are closer than eps in each axis.
func (p Point) NearEq(q Point, eps float32) bool {
	return float32(math.Abs(float64(p.X-q.X))) <= eps && float32(math.Abs(float64(p.Y-q.Y))) <= eps
}

// Add returns the sum of two vectors.
func (v Vector) Add(w Vector) Vector {
	return Vector{X: v.X + w.X, Y: v.Y + w.Y}
}

// Sub returns the difference of two vectors.
func (v Vector) Sub(w Vector) Vector {
	return Vector{X: v.X - w.X, Y: v.Y - w.Y}
}

// Mul scales the vector by s.
func (v Vector) Mul(s float32) Vector {
	return Vector{X: v.X * s, Y: v.Y * s}
}

// Neg returns the negated vector.
func (v Vector) Neg() Vector {
	return Vector{X: -v.X, Y: -v.Y}
}

// Dot returns the dot product of v and w.
func (v Vector) Dot(w Vector) float32 {
	return v.X*w.X + v.Y*w.Y
}

// Cross returns the 2D cross product (the z-component of the 3D cross
// product of the two vectors extended into the XY plane).
func (v Vector) Cross(w Vector) float32 {
	return v.X*w.Y - v.Y*w.X
}

// Length returns the Euclidean length of v.
func (v Vector) Length() float32 {
	return float32(math.Sqrt(float64(v.X*v.X + v.Y*v.Y)))
}

// SquareLength returns the squared length of v, avoiding the sqrt.
func (v Vector) SquareLength() float32 {
	return v.X*v.X + v.Y*v.Y
}

// Normalize returns a unit vector in the same direction as v.
// The zero vector normalizes to itself.
func (v Vector) Normalize() Vector {
	l := v.Length()
	if l < 1e-12 {
		return Vector{}
	}
	return Vector{X: v.X / l, Y: v.Y / l}
}

// Perp returns v rotated 90 degrees counter-clockwise in a y-up
// coordinate system; in the y-down screen convention it is the
// perpendicular on the right-hand side of v.
func (v Vector) Perp() Vector {
	return Vector{X: -v.Y, Y: v.X}
}

// ToPoint reinterprets the vector as a point relative to the origin.
func (v Vector) ToPoint() Point {
	return Point{X: v.X, Y: v.Y}
}

// Angle returns the angle of v in radians, as returned by math.Atan2.
func (v Vector) Angle() float32 {
	return float32(math.Atan2(float64(v.Y), float64(v.X)))
}
