package fill_test

import (
	"testing"

	"github.com/nical/lyon/fill"
	"github.com/nical/lyon/geom"
	"github.com/nical/lyon/path"
)

func TestTessellateSquareCoversArea(t *testing.T) {
	rect := geom.NewRect(geom.Pt(0, 0), geom.Pt(6, 6))
	p := path.Rectangle(rect, path.Positive)

	tess := fill.NewTessellator()
	tess.SetOptions(fill.DefaultOptions().WithRule(fill.EvenOdd))

	out := fill.NewBuffers()
	if err := tess.Tessellate(p, out.Sink); err != nil {
		t.Fatalf("Tessellate: %v", err)
	}

	if got, want := len(out.Buffers.Indices)/3, 2; got != want {
		t.Fatalf("got %d triangles, want %d", got, want)
	}

	var area float32
	verts := out.Buffers.Vertices
	idx := out.Buffers.Indices
	for i := 0; i+2 < len(idx); i += 3 {
		a, b, c := verts[idx[i]].Position, verts[idx[i+1]].Position, verts[idx[i+2]].Position
		cross := b.Sub(a).Cross(c.Sub(a))
		if cross < 0 {
			cross = -cross
		}
		area += cross / 2
	}
	if area != 36 {
		t.Errorf("total area = %v, want 36", area)
	}
}

func TestHitTestNestedSquares(t *testing.T) {
	b := path.NewBuilder()
	b.AddRectangle(geom.NewRect(geom.Pt(0, 0), geom.Pt(1, 1)), path.Positive)
	b.AddRectangle(geom.NewRect(geom.Pt(0.25, 0.25), geom.Pt(0.75, 0.75)), path.Positive)
	p := b.Build()

	cases := []struct {
		name  string
		point geom.Point
		rule  fill.Rule
		want  bool
	}{
		{"center evenodd hole", geom.Pt(0.5, 0.5), fill.EvenOdd, false},
		{"center nonzero filled", geom.Pt(0.5, 0.5), fill.NonZero, true},
		{"outer ring evenodd", geom.Pt(0.2, 0.5), fill.EvenOdd, true},
		{"outer ring nonzero", geom.Pt(0.2, 0.5), fill.NonZero, true},
	}
	for _, c := range cases {
		if got := fill.HitTest(c.point, p, c.rule, 0.01); got != c.want {
			t.Errorf("%s: HitTest(%v) = %v, want %v", c.name, c.point, got, c.want)
		}
	}
}

func TestWindingNumberDoubleTracedSquare(t *testing.T) {
	b := path.NewBuilder()
	rect := geom.NewRect(geom.Pt(0, 0), geom.Pt(1, 1))
	b.AddRectangle(rect, path.Positive)
	b.AddRectangle(rect, path.Positive)
	p := b.Build()

	got := fill.WindingNumberAt(geom.Pt(0.5, 0.5), p, 0.01)
	if got < 0 {
		got = -got
	}
	if got != 2 {
		t.Errorf("WindingNumberAt magnitude = %d, want 2", got)
	}
}

// TestTessellateBowtieSelfIntersectionSplitsAtCrossing drives a
// genuinely self-intersecting contour (a bowtie) through the real
// sweep engine, not HitTest/WindingNumberAt. The two wings are equal
// right isosceles triangles (hypotenuse 10, height 5, area 25 each)
// meeting at (5,5) and never overlap, so their
// total area is rule-independent: both NonZero and EvenOdd must
// produce ~50 once the crossing is detected and split.
func TestTessellateBowtieSelfIntersectionSplitsAtCrossing(t *testing.T) {
	b := path.NewBuilder()
	b.Begin(geom.Pt(0, 0))
	b.LineTo(geom.Pt(10, 0))
	b.LineTo(geom.Pt(0, 10))
	b.LineTo(geom.Pt(10, 10))
	b.End(true)
	p := b.Build()

	for _, rule := range []fill.Rule{fill.NonZero, fill.EvenOdd} {
		tess := fill.NewTessellator()
		tess.SetOptions(fill.DefaultOptions().WithRule(rule))

		out := fill.NewBuffers()
		if err := tess.Tessellate(p, out.Sink); err != nil {
			t.Fatalf("rule %v: Tessellate: %v", rule, err)
		}
		if len(out.Buffers.Indices) == 0 {
			t.Fatalf("rule %v: no triangles produced for self-intersecting bowtie", rule)
		}

		var area float32
		verts := out.Buffers.Vertices
		idx := out.Buffers.Indices
		for i := 0; i+2 < len(idx); i += 3 {
			a, bb, c := verts[idx[i]].Position, verts[idx[i+1]].Position, verts[idx[i+2]].Position
			cross := bb.Sub(a).Cross(c.Sub(a))
			if cross < 0 {
				cross = -cross
			}
			area += cross / 2
		}
		if diff := area - 50; diff > 1 || diff < -1 {
			t.Errorf("rule %v: bowtie tessellated area = %v, want close to 50", rule, area)
		}
	}
}

func TestTessellateConvexPolygonFastPath(t *testing.T) {
	pts := []geom.Point{geom.Pt(0, 0), geom.Pt(4, 0), geom.Pt(4, 4), geom.Pt(0, 4)}
	out := fill.NewBuffers()
	fill.ConvexPolygon(pts, out.Sink)

	if got, want := len(out.Buffers.Indices)/3, 2; got != want {
		t.Fatalf("got %d triangles, want %d", got, want)
	}
}

func TestTessellateRectangleFastPath(t *testing.T) {
	rect := geom.NewRect(geom.Pt(1, 1), geom.Pt(5, 3))
	out := fill.NewBuffers()
	fill.Rectangle(rect, out.Sink)

	if got, want := len(out.Buffers.Vertices), 4; got != want {
		t.Fatalf("got %d vertices, want %d", got, want)
	}
	if got, want := len(out.Buffers.Indices)/3, 2; got != want {
		t.Fatalf("got %d triangles, want %d", got, want)
	}
}

func TestTessellateCircleFastPathApproximatesArea(t *testing.T) {
	center := geom.Pt(0, 0)
	radius := float32(10)
	out := fill.NewBuffers()
	fill.Circle(center, radius, 0.01, out.Sink)

	var area float32
	verts := out.Buffers.Vertices
	idx := out.Buffers.Indices
	for i := 0; i+2 < len(idx); i += 3 {
		a, b, c := verts[idx[i]].Position, verts[idx[i+1]].Position, verts[idx[i+2]].Position
		cross := b.Sub(a).Cross(c.Sub(a))
		if cross < 0 {
			cross = -cross
		}
		area += cross / 2
	}

	expected := float32(3.14159265) * radius * radius
	if diff := area - expected; diff > 1 || diff < -1 {
		t.Errorf("circle fast-path area = %v, want close to %v", area, expected)
	}
}
