package fill_test

import (
	"image"
	"math"
	"testing"

	"golang.org/x/image/vector"

	"github.com/nical/lyon/builder"
	"github.com/nical/lyon/fill"
	"github.com/nical/lyon/geom"
	"github.com/nical/lyon/path"
)

// triangleArea returns the unsigned area of the triangle a,b,c.
func triangleArea(a, b, c geom.Point) float32 {
	cross := b.Sub(a).Cross(c.Sub(a))
	if cross < 0 {
		cross = -cross
	}
	return cross / 2
}

// meshArea sums the unsigned area of every triangle in buf.
func meshArea(buf *fill.Buffers) float32 {
	var total float32
	idx := buf.Buffers.Indices
	verts := buf.Buffers.Vertices
	for i := 0; i+2 < len(idx); i += 3 {
		a := verts[idx[i]].Position
		b := verts[idx[i+1]].Position
		c := verts[idx[i+2]].Position
		total += triangleArea(a, b, c)
	}
	return total
}

// rasterCoverageArea rasterizes p at a given pixel resolution with
// golang.org/x/image/vector and sums the resulting alpha coverage,
// giving an independent estimate of the filled area to cross-check the
// sweep tessellator's triangle mesh against.
func rasterCoverageArea(t *testing.T, p *path.Path, width, height int) float64 {
	t.Helper()
	r := vector.NewRasterizer(width, height)

	path.Flatten(p, 0.1, func(ev path.FlattenedEvent) {
		switch ev.Kind {
		case path.FlattenedBegin:
			r.MoveTo(ev.At.X, ev.At.Y)
		case path.FlattenedLine:
			r.LineTo(ev.To.X, ev.To.Y)
		case path.FlattenedEnd:
			r.ClosePath()
		}
	})

	dst := image.NewAlpha(image.Rect(0, 0, width, height))
	r.Draw(dst, dst.Bounds(), image.Opaque, image.Point{})

	var sum float64
	for _, v := range dst.Pix {
		sum += float64(v) / 255
	}
	return sum
}

func TestFillAreaMatchesRasterCoverage(t *testing.T) {
	rect := geom.NewRect(geom.Pt(4, 4), geom.Pt(44, 24))
	p := path.Rectangle(rect, path.Positive)

	tess := fill.NewTessellator()
	out := fill.NewBuffers()
	if err := tess.Tessellate(p, out.Sink); err != nil {
		t.Fatalf("Tessellate: %v", err)
	}

	meshA := float64(meshArea(out))
	rasterA := rasterCoverageArea(t, p, 48, 32)

	if math.Abs(meshA-rasterA) > 1.5 {
		t.Fatalf("mesh area %v too far from rasterized coverage %v", meshA, rasterA)
	}
}

func TestFillAreaMatchesRasterCoverageCircle(t *testing.T) {
	center := geom.Pt(20, 20)
	radius := float32(15)
	p := path.Circle(center, radius, path.Positive)

	tess := fill.NewTessellator()
	out := fill.NewBuffers()
	if err := tess.Tessellate(p, out.Sink); err != nil {
		t.Fatalf("Tessellate: %v", err)
	}

	meshA := float64(meshArea(out))
	rasterA := rasterCoverageArea(t, p, 40, 40)
	expected := math.Pi * float64(radius) * float64(radius)

	if math.Abs(meshA-rasterA) > 3 {
		t.Fatalf("mesh area %v too far from rasterized coverage %v", meshA, rasterA)
	}
	if math.Abs(meshA-expected) > 3 {
		t.Fatalf("mesh area %v too far from the analytical circle area %v", meshA, expected)
	}
}
