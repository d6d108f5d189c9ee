package stroke

import (
	"github.com/nical/lyon/builder"
	"github.com/nical/lyon/geom"
	"github.com/nical/lyon/internal/joins"
)

// metaSink wraps a fill-tessellator output sink and attaches the
// internal/joins.VertexMeta recorded for each outline position, so the
// fill tessellator's position-only AddVertex calls still end up
// producing full stroke.Vertex values (Normal/Side/Advancement).
//
// It only does this for the one concrete sink type stroke.Tessellator
// actually constructs (*builder.BuffersBuilder[Vertex, vertexAux]); any
// other GeometryBuilder is passed through unwrapped, since there would
// be nowhere to route the auxiliary data.
type metaSink struct {
	inner *builder.BuffersBuilder[Vertex, vertexAux]
	meta  map[geom.Point]joins.VertexMeta
}

// newMetaSink returns a GeometryBuilder that enriches inner's vertices
// with meta, or inner itself unchanged if it isn't the expected
// concrete sink type.
func newMetaSink(inner builder.GeometryBuilder, meta map[geom.Point]joins.VertexMeta) builder.GeometryBuilder {
	bb, ok := inner.(*builder.BuffersBuilder[Vertex, vertexAux])
	if !ok {
		return inner
	}
	return &metaSink{inner: bb, meta: meta}
}

func (s *metaSink) BeginGeometry() { s.inner.BeginGeometry() }

func (s *metaSink) AddVertex(position geom.Point) builder.VertexId {
	m := s.meta[position]
	return s.inner.AddVertexWithAux(position, vertexAux{
		Normal:      m.Normal,
		Side:        m.Side,
		Advancement: m.Advancement,
	})
}

func (s *metaSink) AddTriangle(a, b, c builder.VertexId) { s.inner.AddTriangle(a, b, c) }

func (s *metaSink) EndGeometry() (vertexCount, indexCount int) { return s.inner.EndGeometry() }

func (s *metaSink) AbortGeometry() { s.inner.AbortGeometry() }

// Err forwards the inner sink's capacity error so fill.Tessellator can
// still detect and report it through a wrapping metaSink.
func (s *metaSink) Err() error { return s.inner.Err() }
