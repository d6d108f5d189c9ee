package fill

import "github.com/nical/lyon/internal/sweep"

// Rule selects which winding numbers are considered inside a shape
// (spec §3). It is an alias of the sweep engine's own FillRule so the
// two packages share one definition instead of converting back and
// forth at the package boundary.
type Rule = sweep.FillRule

const (
	NonZero = sweep.NonZero
	EvenOdd = sweep.EvenOdd
)

// SweepOrientation selects the axis the fill sweep advances along (spec
// §6's FillOptions.sweep_orientation).
type SweepOrientation uint8

const (
	// Vertical sweeps top to bottom, the only orientation internal/sweep
	// currently implements.
	Vertical SweepOrientation = iota
	// Horizontal sweeps left to right. Requesting it produces
	// lyon.ErrUnsupported: internal/sweep's active-edge ordering,
	// xAt(sweepY), and vertexKey comparisons are all hard-coded to the
	// vertical axis convention (see SPEC_FULL.md's open questions).
	Horizontal
)

// Options configures a fill tessellation pass.
type Options struct {
	Rule             Rule
	Tolerance        float32
	SweepOrientation SweepOrientation
}

// DefaultOptions returns even-odd fill with a 0.1-unit flattening
// tolerance and a vertical sweep, matching spec §6's documented default.
func DefaultOptions() Options {
	return Options{Rule: EvenOdd, Tolerance: 0.1, SweepOrientation: Vertical}
}

// WithRule returns a copy of o with Rule set to r.
func (o Options) WithRule(r Rule) Options {
	o.Rule = r
	return o
}

// WithTolerance returns a copy of o with Tolerance set to t.
func (o Options) WithTolerance(t float32) Options {
	o.Tolerance = t
	return o
}

// WithSweepOrientation returns a copy of o with SweepOrientation set to s.
func (o Options) WithSweepOrientation(s SweepOrientation) Options {
	o.SweepOrientation = s
	return o
}
