package stroke_test

import (
	"math"
	"testing"

	"github.com/nical/lyon/geom"
	"github.com/nical/lyon/path"
	"github.com/nical/lyon/stroke"
)

func meshArea(buf *stroke.Buffers) float32 {
	var total float32
	idx := buf.Buffers.Indices
	verts := buf.Buffers.Vertices
	for i := 0; i+2 < len(idx); i += 3 {
		a := verts[idx[i]].Position
		b := verts[idx[i+1]].Position
		c := verts[idx[i+2]].Position
		cross := b.Sub(a).Cross(c.Sub(a))
		if cross < 0 {
			cross = -cross
		}
		total += cross / 2
	}
	return total
}

func TestStrokeStraightLineButtCapAreaMatchesLengthTimesWidth(t *testing.T) {
	b := path.NewBuilder()
	b.AddLineSegment(geom.Pt(0, 0), geom.Pt(10, 0))
	p := b.Build()

	opts := stroke.DefaultOptions().WithWidth(2).WithCaps(stroke.CapButt)
	tess := stroke.NewTessellator()
	tess.SetOptions(opts)

	out := stroke.NewBuffers()
	if err := tess.Tessellate(p, out.Sink); err != nil {
		t.Fatalf("Tessellate: %v", err)
	}

	const want = 20 // length 10 * width 2
	if got := meshArea(out); math.Abs(float64(got-want)) > 0.5 {
		t.Errorf("stroked line area = %v, want close to %v", got, want)
	}
}

func TestStrokeSquareCapExtendsBeyondEndpoints(t *testing.T) {
	b := path.NewBuilder()
	b.AddLineSegment(geom.Pt(0, 0), geom.Pt(10, 0))
	p := b.Build()

	opts := stroke.DefaultOptions().WithWidth(2).WithCaps(stroke.CapSquare)
	outline := stroke.NewTessellator()
	outline.SetOptions(opts)
	out := outline.Outline(p)

	var minX, maxX float32 = math.MaxFloat32, -math.MaxFloat32
	grow := func(pt geom.Point) {
		if pt.X < minX {
			minX = pt.X
		}
		if pt.X > maxX {
			maxX = pt.X
		}
	}
	for _, ev := range out.Events() {
		switch ev.Kind {
		case path.EventBegin:
			grow(ev.At)
		case path.EventLine, path.EventQuadratic, path.EventCubic:
			grow(ev.To)
		}
	}

	// A square cap extends the outline by half the stroke width past
	// each endpoint: [0,10] with width 2 becomes roughly [-1, 11].
	if minX > -0.9 || maxX < 10.9 {
		t.Errorf("square-capped outline X range = [%v, %v], want roughly [-1, 11]", minX, maxX)
	}
}

func TestStrokeClosedLoopProducesHollowAnnulus(t *testing.T) {
	rect := geom.NewRect(geom.Pt(0, 0), geom.Pt(20, 20))
	p := path.Rectangle(rect, path.Positive)

	opts := stroke.DefaultOptions().WithWidth(2)
	tess := stroke.NewTessellator()
	tess.SetOptions(opts)

	out := stroke.NewBuffers()
	if err := tess.Tessellate(p, out.Sink); err != nil {
		t.Fatalf("Tessellate: %v", err)
	}

	// A stroked 20x20 square with width 2 covers a ring between the
	// 18x18 inner square and the 22x22 outer square: area 484-324=160.
	const want = 160
	if got := meshArea(out); math.Abs(float64(got-want)) > 4 {
		t.Errorf("stroked square ring area = %v, want close to %v", got, want)
	}
}
