package stroke

import "github.com/nical/lyon/geom"

// Vertex is the per-vertex output of the stroke tessellator (spec §6):
// the outline position, the lateral offset direction it was extruded
// along, which rail it came from, and how far along the sub-path's
// original centerline it sits.
type Vertex struct {
	Position    geom.Point
	Normal      geom.Vector
	Side        float32
	Advancement float32
}

// vertexAux is the auxiliary data internal/joins.VertexMeta is copied
// into on its way through builder.AddVertexWithAux.
type vertexAux struct {
	Normal      geom.Vector
	Side        float32
	Advancement float32
}

// VertexCtor is the builder.VertexConstructor used to turn raw
// positions into stroke Vertices.
type VertexCtor struct{}

// NewVertex implements builder.VertexConstructor.
func (VertexCtor) NewVertex(position geom.Point, aux vertexAux) Vertex {
	return Vertex{Position: position, Normal: aux.Normal, Side: aux.Side, Advancement: aux.Advancement}
}
