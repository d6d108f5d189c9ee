// Package builder defines the output contract tessellators write into:
// the GeometryBuilder interface, its VertexId/index-buffer conventions,
// and a ready-to-use BuffersBuilder that assembles a VertexBuffers.
package builder

import (
	"errors"

	"github.com/nical/lyon/geom"
)

// ErrVertexCapacityExceeded is recorded by BuffersBuilder.Err when a
// session tries to add more vertices than MaxVertices allows (e.g. a
// 16-bit index buffer that can only address 65536 distinct vertices).
var ErrVertexCapacityExceeded = errors.New("builder: vertex capacity exceeded")

// VertexId identifies a vertex written into a geometry sink. It is local
// to a single begin/end-geometry session: a sink is free to reuse ids
// across sessions, and callers must not retain a VertexId past the
// matching EndGeometry/AbortGeometry call.
type VertexId uint32

// GeometryBuilder is the sink every tessellator writes its output
// through. A session is bracketed by BeginGeometry/EndGeometry (or
// AbortGeometry on error); AddVertex returns an id that AddTriangle
// references, so callers never see or manage raw buffer offsets.
type GeometryBuilder interface {
	// BeginGeometry starts a new output session, resetting the id
	// numbering used by AddVertex/AddTriangle for this session.
	BeginGeometry()

	// AddVertex records a new vertex and returns the id later calls to
	// AddTriangle must use to reference it.
	AddVertex(position geom.Point) VertexId

	// AddTriangle records a triangle by the ids of its three vertices,
	// in the tessellator's winding order (counter-clockwise in this
	// package's y-down convention, i.e. screen-space clockwise).
	AddTriangle(a, b, c VertexId)

	// EndGeometry finishes the session and returns the number of
	// vertices and indices written since BeginGeometry.
	EndGeometry() (vertexCount, indexCount int)

	// AbortGeometry discards everything written since BeginGeometry,
	// called by a tessellator that hit an unrecoverable error mid-session.
	AbortGeometry()
}

// VertexConstructor builds a tessellator-specific vertex type (e.g. a
// FillVertex or StrokeVertex) from the raw position a tessellator
// produces, plus any extra per-vertex attributes the tessellator passes
// through AuxData. Implementations are typically small structs closing
// over whatever uniform data (color, layer, attribute index) the caller
// wants baked into every vertex.
type VertexConstructor[V any, A any] interface {
	NewVertex(position geom.Point, aux A) V
}

// VertexBuffers is the flattened output of a tessellation session: a
// contiguous vertex slice and a triangle-list index slice (three indices
// per triangle, referencing Vertices).
type VertexBuffers[V any] struct {
	Vertices []V
	Indices  []uint32
}

// Reserve grows the underlying slices' capacity to fit additional
// vertices and indices without reallocating mid-session.
func (b *VertexBuffers[V]) Reserve(vertices, indices int) {
	if cap(b.Vertices)-len(b.Vertices) < vertices {
		grown := make([]V, len(b.Vertices), len(b.Vertices)+vertices)
		copy(grown, b.Vertices)
		b.Vertices = grown
	}
	if cap(b.Indices)-len(b.Indices) < indices {
		grown := make([]uint32, len(b.Indices), len(b.Indices)+indices)
		copy(grown, b.Indices)
		b.Indices = grown
	}
}

// BuffersBuilder is a GeometryBuilder that appends into a VertexBuffers,
// translating tessellator-local VertexIds (always starting at 0 within a
// session) into absolute offsets into Buffers.Vertices. A is the
// auxiliary per-vertex data type a tessellator threads through
// AddVertexWithAux (e.g. a curve-ness flag for anti-aliasing, or nothing
// via struct{}).
type BuffersBuilder[V any, A any] struct {
	Buffers     *VertexBuffers[V]
	constructor VertexConstructor[V, A]

	vertexOffset VertexId
	indexOffset  int
	aborted      bool
	maxVertices  int
	err          error
}

// NewBuffersBuilder creates a BuffersBuilder writing into buffers using
// ctor to turn positions into vertices.
func NewBuffersBuilder[V any, A any](buffers *VertexBuffers[V], ctor VertexConstructor[V, A]) *BuffersBuilder[V, A] {
	return &BuffersBuilder[V, A]{Buffers: buffers, constructor: ctor}
}

// SetMaxVertices caps the number of vertices a single session may add; 0
// (the default) leaves the session unlimited. Exceeding it does not
// panic: AddVertexWithAux stops appending and records
// ErrVertexCapacityExceeded in Err, so a tessellator can finish its pass
// without an out-of-band failure mode and then abort the whole geometry
// once it notices.
func (b *BuffersBuilder[V, A]) SetMaxVertices(n int) { b.maxVertices = n }

// Err returns the error recorded by the most recent session, if any.
func (b *BuffersBuilder[V, A]) Err() error { return b.err }

// BeginGeometry implements GeometryBuilder.
func (b *BuffersBuilder[V, A]) BeginGeometry() {
	b.vertexOffset = VertexId(len(b.Buffers.Vertices))
	b.indexOffset = len(b.Buffers.Indices)
	b.aborted = false
	b.err = nil
}

// AddVertex implements GeometryBuilder for callers with no auxiliary
// per-vertex data (A = struct{}).
func (b *BuffersBuilder[V, A]) AddVertex(position geom.Point) VertexId {
	var aux A
	return b.AddVertexWithAux(position, aux)
}

// AddVertexWithAux is AddVertex plus tessellator-supplied auxiliary data
// forwarded to the VertexConstructor.
func (b *BuffersBuilder[V, A]) AddVertexWithAux(position geom.Point, aux A) VertexId {
	id := VertexId(len(b.Buffers.Vertices)) - b.vertexOffset
	if b.maxVertices > 0 && int(id) >= b.maxVertices {
		if b.err == nil {
			b.err = ErrVertexCapacityExceeded
		}
		return id
	}
	b.Buffers.Vertices = append(b.Buffers.Vertices, b.constructor.NewVertex(position, aux))
	return id
}

// AddTriangle implements GeometryBuilder, translating session-local ids
// into absolute buffer offsets before appending to Buffers.Indices.
func (b *BuffersBuilder[V, A]) AddTriangle(a, c, d VertexId) {
	b.Buffers.Indices = append(b.Buffers.Indices,
		uint32(a+b.vertexOffset),
		uint32(c+b.vertexOffset),
		uint32(d+b.vertexOffset),
	)
}

// EndGeometry implements GeometryBuilder.
func (b *BuffersBuilder[V, A]) EndGeometry() (vertexCount, indexCount int) {
	return len(b.Buffers.Vertices) - int(b.vertexOffset), len(b.Buffers.Indices) - b.indexOffset
}

// AbortGeometry implements GeometryBuilder, truncating the buffers back
// to their state at the last BeginGeometry.
func (b *BuffersBuilder[V, A]) AbortGeometry() {
	b.aborted = true
	b.Buffers.Vertices = b.Buffers.Vertices[:b.vertexOffset]
	b.Buffers.Indices = b.Buffers.Indices[:b.indexOffset]
}

// Aborted reports whether the most recent session ended via AbortGeometry.
func (b *BuffersBuilder[V, A]) Aborted() bool {
	return b.aborted
}
