// Package stroke implements the stroke tessellator's public surface
// (spec §5): it expands a path's outline at a given width, join and cap
// style into a filled contour, then hands that contour to the fill
// package for triangulation, matching the "stroke becomes fill" approach
// used throughout vector-graphics tessellation libraries.
package stroke

import "github.com/nical/lyon/internal/joins"

// LineCap selects the shape used to close an open sub-path's endpoints.
type LineCap = joins.Cap

const (
	CapButt   = joins.CapButt
	CapRound  = joins.CapRound
	CapSquare = joins.CapSquare
)

// LineJoin selects the shape used to connect consecutive segments.
type LineJoin = joins.Join

const (
	JoinMiter = joins.JoinMiter
	JoinRound = joins.JoinRound
	JoinBevel = joins.JoinBevel
)

// Options configures a stroke tessellation pass.
type Options struct {
	Width      float32
	StartCap   LineCap
	EndCap     LineCap
	Join       LineJoin
	MiterLimit float32
	Tolerance  float32
}

// DefaultOptions returns a 1-unit-wide, butt-capped, miter-joined style
// at a 0.1-unit flattening tolerance.
func DefaultOptions() Options {
	return Options{
		Width:      1,
		StartCap:   CapButt,
		EndCap:     CapButt,
		Join:       JoinMiter,
		MiterLimit: 4,
		Tolerance:  0.1,
	}
}

// WithWidth returns a copy of o with Width set to w.
func (o Options) WithWidth(w float32) Options {
	o.Width = w
	return o
}

// WithCaps returns a copy of o with both start and end caps set to c.
func (o Options) WithCaps(c LineCap) Options {
	o.StartCap = c
	o.EndCap = c
	return o
}

// WithJoin returns a copy of o with Join set to j.
func (o Options) WithJoin(j LineJoin) Options {
	o.Join = j
	return o
}

// WithTolerance returns a copy of o with Tolerance set to t.
func (o Options) WithTolerance(t float32) Options {
	o.Tolerance = t
	return o
}

func (o Options) toStyle() joins.Style {
	return joins.Style{
		Width:      o.Width,
		StartCap:   o.StartCap,
		EndCap:     o.EndCap,
		Join:       o.Join,
		MiterLimit: o.MiterLimit,
		Tolerance:  o.Tolerance,
	}
}
