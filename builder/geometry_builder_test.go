package builder

import (
	"testing"

	"github.com/nical/lyon/geom"
)

type testAux struct{ layer uint8 }

type testVertex struct {
	Position geom.Point
	Layer    uint8
}

type testVertexCtor struct{}

func (testVertexCtor) NewVertex(position geom.Point, aux testAux) testVertex {
	return testVertex{Position: position, Layer: aux.layer}
}

func TestBuffersBuilderSessionIsLocalToZero(t *testing.T) {
	var buf VertexBuffers[testVertex]
	b := NewBuffersBuilder[testVertex, testAux](&buf, testVertexCtor{})

	b.BeginGeometry()
	b.AddVertexWithAux(geom.Pt(0, 0), testAux{layer: 1})
	b.AddVertexWithAux(geom.Pt(1, 0), testAux{layer: 1})
	b.AddVertexWithAux(geom.Pt(0, 1), testAux{layer: 1})
	b.AddTriangle(0, 1, 2)
	vcount, icount := b.EndGeometry()
	if vcount != 3 || icount != 3 {
		t.Fatalf("first session: got (%d, %d), want (3, 3)", vcount, icount)
	}

	b.BeginGeometry()
	b.AddVertexWithAux(geom.Pt(5, 5), testAux{layer: 2})
	b.AddVertexWithAux(geom.Pt(6, 5), testAux{layer: 2})
	b.AddVertexWithAux(geom.Pt(5, 6), testAux{layer: 2})
	b.AddTriangle(0, 1, 2)
	vcount, icount = b.EndGeometry()
	if vcount != 3 || icount != 3 {
		t.Fatalf("second session: got (%d, %d), want (3, 3)", vcount, icount)
	}

	if len(buf.Vertices) != 6 {
		t.Fatalf("total vertices = %d, want 6", len(buf.Vertices))
	}
	// The second session's triangle references absolute offset 3,4,5.
	if buf.Indices[3] != 3 || buf.Indices[4] != 4 || buf.Indices[5] != 5 {
		t.Errorf("second session indices = %v, want [3 4 5]", buf.Indices[3:6])
	}
}

func TestBuffersBuilderAbortDiscardsSession(t *testing.T) {
	var buf VertexBuffers[testVertex]
	b := NewBuffersBuilder[testVertex, testAux](&buf, testVertexCtor{})

	b.BeginGeometry()
	b.AddVertexWithAux(geom.Pt(0, 0), testAux{})
	b.AddVertexWithAux(geom.Pt(1, 0), testAux{})
	b.EndGeometry()

	b.BeginGeometry()
	b.AddVertexWithAux(geom.Pt(9, 9), testAux{})
	b.AbortGeometry()

	if !b.Aborted() {
		t.Fatal("Aborted() = false after AbortGeometry")
	}
	if len(buf.Vertices) != 2 {
		t.Fatalf("vertices after abort = %d, want 2 (aborted session discarded)", len(buf.Vertices))
	}
}

func TestVertexBuffersReserveDoesNotGrowLength(t *testing.T) {
	var buf VertexBuffers[testVertex]
	buf.Reserve(10, 30)
	if len(buf.Vertices) != 0 || len(buf.Indices) != 0 {
		t.Fatalf("Reserve changed length: vertices=%d indices=%d", len(buf.Vertices), len(buf.Indices))
	}
	if cap(buf.Vertices) < 10 || cap(buf.Indices) < 30 {
		t.Errorf("Reserve did not grow capacity: cap(vertices)=%d cap(indices)=%d", cap(buf.Vertices), cap(buf.Indices))
	}
}
