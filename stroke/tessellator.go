package stroke

import (
	"github.com/nical/lyon/builder"
	"github.com/nical/lyon/fill"
	"github.com/nical/lyon/geom"
	"github.com/nical/lyon/internal/joins"
	"github.com/nical/lyon/path"
)

// Buffers is the ready-to-use output type for Tessellate.
type Buffers struct {
	Buffers builder.VertexBuffers[Vertex]
	Sink    *builder.BuffersBuilder[Vertex, vertexAux]
}

// NewBuffers creates an empty Buffers/Sink pair.
func NewBuffers() *Buffers {
	b := &Buffers{}
	b.Sink = builder.NewBuffersBuilder[Vertex, vertexAux](&b.Buffers, VertexCtor{})
	return b
}

// Tessellator converts stroked paths into triangle meshes: it first
// expands the path into its filled outline, then tessellates that
// outline with the even-odd fill rule (the two rails of a closed
// sub-path's outline wind oppositely, so only the band between them is
// interior and the area inside the inner rail stays unfilled).
type Tessellator struct {
	options Options
	fill    fill.Tessellator
}

// NewTessellator creates a Tessellator with DefaultOptions.
func NewTessellator() *Tessellator {
	t := &Tessellator{options: DefaultOptions()}
	t.fill.SetOptions(fill.DefaultOptions().WithRule(fill.EvenOdd).WithTolerance(t.options.Tolerance))
	return t
}

// SetOptions replaces the tessellator's options.
func (t *Tessellator) SetOptions(o Options) {
	t.options = o
	t.fill.SetOptions(fill.DefaultOptions().WithRule(fill.EvenOdd).WithTolerance(o.Tolerance))
}

// Tessellate expands p at the configured stroke style and writes the
// resulting triangle mesh into out. Each outline vertex's Normal, Side
// and Advancement are threaded through from the expander that built the
// outline via a metaSink wrapping out, so out must ultimately be a
// *builder.BuffersBuilder[Vertex, vertexAux] (e.g. one returned by
// NewBuffers) for that data to come through; any other sink still
// receives correct positions and triangles, just with zero-valued
// Normal/Side/Advancement.
func (t *Tessellator) Tessellate(p *path.Path, out builder.GeometryBuilder) error {
	outline, meta := t.OutlineWithMeta(p)
	return t.fill.Tessellate(outline, newMetaSink(out, meta))
}

// Outline expands p into the filled path.Path that covers its stroke,
// without tessellating it. Exposed so callers can inspect or further
// process the outline (e.g. render it directly as a filled shape).
func (t *Tessellator) Outline(p *path.Path) *path.Path {
	outline, _ := t.OutlineWithMeta(p)
	return outline
}

// OutlineWithMeta is Outline plus the per-point stroke metadata
// (lateral normal, rail side, centerline advancement) the expander
// recorded while building the outline, keyed by outline position.
func (t *Tessellator) OutlineWithMeta(p *path.Path) (*path.Path, map[geom.Point]joins.VertexMeta) {
	b := path.NewBuilder()
	expander := joins.NewExpander(t.options.toStyle(), b)

	for _, ev := range p.Events() {
		switch ev.Kind {
		case path.EventBegin:
			expander.Begin(ev.At)
		case path.EventLine:
			expander.LineTo(ev.To)
		case path.EventQuadratic:
			expander.QuadraticBezierTo(ev.Ctrl, ev.To)
		case path.EventCubic:
			expander.CubicBezierTo(ev.Ctrl1, ev.Ctrl2, ev.To)
		case path.EventEnd:
			expander.End(ev.Close)
		}
	}

	return b.Build(), expander.Meta()
}
