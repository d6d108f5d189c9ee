package fill

import "github.com/nical/lyon/geom"

// Vertex is the per-vertex output of the fill tessellator (spec §6): a
// position plus the outward normal the sweep computed from its incident
// edges, for anti-aliased extrusion.
type Vertex struct {
	Position geom.Point
	Normal   geom.Vector
}

// VertexCtor is the builder.VertexConstructor used to turn raw
// positions into fill Vertices; the auxiliary data is the vertex's
// normal. The sweep engine adds vertices through plain AddVertex (zero
// normal), and Tessellator.Tessellate writes the normals internal/sweep
// computed into the buffer afterwards.
type VertexCtor struct{}

// NewVertex implements builder.VertexConstructor.
func (VertexCtor) NewVertex(position geom.Point, normal geom.Vector) Vertex {
	return Vertex{Position: position, Normal: normal}
}
