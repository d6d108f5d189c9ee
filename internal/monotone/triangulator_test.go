package monotone

import (
	"testing"

	"github.com/nical/lyon/builder"
	"github.com/nical/lyon/geom"
)

// fakeBuilder is a minimal builder.GeometryBuilder that just records
// vertex positions and triangle indices, for area-sum assertions.
type fakeBuilder struct {
	positions []geom.Point
	triangles [][3]builder.VertexId
}

func (f *fakeBuilder) BeginGeometry() {}

func (f *fakeBuilder) AddVertex(p geom.Point) builder.VertexId {
	id := builder.VertexId(len(f.positions))
	f.positions = append(f.positions, p)
	return id
}

func (f *fakeBuilder) AddTriangle(a, b, c builder.VertexId) {
	f.triangles = append(f.triangles, [3]builder.VertexId{a, b, c})
}

func (f *fakeBuilder) EndGeometry() (int, int) { return len(f.positions), len(f.triangles) * 3 }

func (f *fakeBuilder) AbortGeometry() {}

func (f *fakeBuilder) area() float32 {
	var total float32
	for _, tri := range f.triangles {
		a, b, c := f.positions[tri[0]], f.positions[tri[1]], f.positions[tri[2]]
		cross := b.Sub(a).Cross(c.Sub(a))
		if cross < 0 {
			cross = -cross
		}
		total += cross / 2
	}
	return total
}

// TestTriangulatorHexagonAreaMatchesShoelace feeds a known y-monotone
// hexagon (an elongated house shape, apex and bottom tip plus two
// vertices per side) through the triangulator in top-to-bottom sweep
// order and checks the emitted triangles' total area against the
// polygon's shoelace area.
func TestTriangulatorHexagonAreaMatchesShoelace(t *testing.T) {
	fb := &fakeBuilder{}
	tri := NewTriangulator(fb)

	apex := geom.Pt(2, 0)
	left1 := geom.Pt(0, 2)
	right1 := geom.Pt(4, 3)
	left2 := geom.Pt(0, 5)
	right2 := geom.Pt(4, 6)
	bottom := geom.Pt(2, 8)

	apexId := fb.AddVertex(apex)
	tri.Begin(apex, apexId)

	left1Id := fb.AddVertex(left1)
	tri.AddVertex(Left, left1, left1Id)

	right1Id := fb.AddVertex(right1)
	tri.AddVertex(Right, right1, right1Id)

	left2Id := fb.AddVertex(left2)
	tri.AddVertex(Left, left2, left2Id)

	right2Id := fb.AddVertex(right2)
	tri.AddVertex(Right, right2, right2Id)

	bottomId := fb.AddVertex(bottom)
	tri.End(bottom, bottomId)

	const wantArea = 22
	if got := fb.area(); got != wantArea {
		t.Errorf("triangulated area = %v, want %v", got, wantArea)
	}
	if len(fb.triangles) != 4 {
		t.Errorf("a monotone hexagon should yield 4 triangles (n-2 for n=6); got %d", len(fb.triangles))
	}
}
