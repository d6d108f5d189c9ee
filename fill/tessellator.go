// Package fill implements the fill tessellator's public surface: it
// flattens a path, feeds its contours to the internal sweep-line
// engine, and collects the resulting triangles into a
// builder.GeometryBuilder (spec §4.2-§4.4, §6).
package fill

import (
	"errors"
	"math"

	"github.com/nical/lyon"
	"github.com/nical/lyon/builder"
	"github.com/nical/lyon/geom"
	"github.com/nical/lyon/internal/sweep"
	"github.com/nical/lyon/path"
)

// Buffers is the ready-to-use output type for Tessellate: a
// VertexBuffers of fill Vertices plus a BuffersBuilder sink. Pass
// Sink to Tessellate and read the assembled triangles back out of
// Buffers.
type Buffers struct {
	Buffers builder.VertexBuffers[Vertex]
	Sink    *builder.BuffersBuilder[Vertex, geom.Vector]
}

// NewBuffers creates an empty Buffers/Sink pair.
func NewBuffers() *Buffers {
	b := &Buffers{}
	b.Sink = builder.NewBuffersBuilder[Vertex, geom.Vector](&b.Buffers, VertexCtor{})
	return b
}

// Tessellator converts filled paths into triangle meshes.
type Tessellator struct {
	options Options
}

// NewTessellator creates a Tessellator with DefaultOptions.
func NewTessellator() *Tessellator {
	return &Tessellator{options: DefaultOptions()}
}

// SetOptions replaces the tessellator's options.
func (t *Tessellator) SetOptions(o Options) {
	t.options = o
}

// Tessellate flattens p at the configured tolerance, builds every
// contour's edges (closing each one implicitly if it isn't already
// closed, matching common fill semantics), and runs the sweep-line
// algorithm, writing vertices and triangles into out.
func (t *Tessellator) Tessellate(p *path.Path, out builder.GeometryBuilder) error {
	if t.options.SweepOrientation != Vertical {
		return &lyon.TessellationError{Kind: lyon.ErrUnsupported, Err: errors.New("fill: horizontal sweep orientation is not implemented")}
	}

	queue := sweep.NewEventQueue()

	var contourStart, prev geom.Point
	open := false
	invalid := false
	path.Flatten(p, t.options.Tolerance, func(ev path.FlattenedEvent) {
		switch ev.Kind {
		case path.FlattenedBegin:
			if !finite(ev.At) {
				invalid = true
			}
			contourStart = ev.At
			prev = ev.At
			open = true
		case path.FlattenedLine:
			if !finite(ev.To) {
				invalid = true
			}
			queue.AddEdge(ev.From, ev.To)
			prev = ev.To
		case path.FlattenedEnd:
			if open && !prev.NearEq(contourStart, 1e-9) {
				queue.AddEdge(prev, contourStart)
			}
			open = false
		}
	})
	if invalid {
		return &lyon.TessellationError{Kind: lyon.ErrInvalidInput, Err: errors.New("fill: path contains a non-finite coordinate")}
	}

	engine := sweep.NewEngine(t.options.Rule, out)
	base := 0
	if bb, ok := out.(*builder.BuffersBuilder[Vertex, geom.Vector]); ok {
		base = len(bb.Buffers.Vertices)
	}
	if err := engine.Run(queue); err != nil {
		if errors.Is(err, sweep.ErrNumerical) {
			return &lyon.TessellationError{Kind: lyon.ErrNumerical, Err: err}
		}
		return err
	}

	if eb, ok := out.(interface{ Err() error }); ok {
		if err := eb.Err(); err != nil {
			out.AbortGeometry()
			return &lyon.TessellationError{Kind: lyon.ErrGeometryBuilder, Err: err}
		}
	}
	if bb, ok := out.(*builder.BuffersBuilder[Vertex, geom.Vector]); ok {
		for id, n := range engine.Normals() {
			bb.Buffers.Vertices[base+int(id)].Normal = n
		}
	}
	return nil
}

func finite(p geom.Point) bool {
	return !math.IsNaN(float64(p.X)) && !math.IsInf(float64(p.X), 0) &&
		!math.IsNaN(float64(p.Y)) && !math.IsInf(float64(p.Y), 0)
}
