package geom

import "testing"

func TestCubicSplitIdentity(t *testing.T) {
	c := Cubic(Pt(0, 0), Pt(2, 8), Pt(8, 8), Pt(10, 0))
	for _, tt := range []float32{0.1, 0.33, 0.5, 0.8} {
		before, after := c.Split(tt)
		mid := c.Sample(tt)
		if !before.To().NearEq(mid, 1e-3) {
			t.Errorf("t=%v: before.To() = %v, want %v", tt, before.To(), mid)
		}
		if !after.From().NearEq(mid, 1e-3) {
			t.Errorf("t=%v: after.From() = %v, want %v", tt, after.From(), mid)
		}
	}
}

func TestCubicFlatteningEndpoints(t *testing.T) {
	c := Cubic(Pt(0, 0), Pt(2, 8), Pt(8, 8), Pt(10, 0))
	var points []Point
	c.ForEachFlattened(0.05, func(p Point) {
		points = append(points, p)
	})
	if len(points) == 0 {
		t.Fatal("expected at least one flattened point")
	}
	if points[len(points)-1] != c.To() {
		t.Errorf("last point = %v, want %v", points[len(points)-1], c.To())
	}
}

func TestCubicDegenerate(t *testing.T) {
	c := Cubic(Pt(2, 2), Pt(2, 2), Pt(2, 2), Pt(2, 2))
	var points []Point
	c.ForEachFlattened(0.01, func(p Point) {
		points = append(points, p)
	})
	if len(points) != 1 || points[0] != Pt(2, 2) {
		t.Errorf("degenerate cubic should emit only the endpoint, got %v", points)
	}
}
