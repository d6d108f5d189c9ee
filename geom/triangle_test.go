package geom

import "testing"

func TestTriangleContainsPoint(t *testing.T) {
	tri := Triangle{A: Pt(0, 0), B: Pt(10, 0), C: Pt(0, 10)}

	cases := []struct {
		p    Point
		want bool
	}{
		{Pt(1, 1), true},
		{Pt(20, 20), false},
		{Pt(-1, 1), false},
		{Pt(0, 0), true}, // vertex
	}
	for _, c := range cases {
		if got := tri.ContainsPoint(c.p); got != c.want {
			t.Errorf("ContainsPoint(%v) = %v, want %v", c.p, got, c.want)
		}
	}
}

func TestTriangleArea(t *testing.T) {
	tri := Triangle{A: Pt(0, 0), B: Pt(10, 0), C: Pt(0, 10)}
	if got := tri.Area(); got != 50 {
		t.Errorf("Area() = %v, want 50", got)
	}
}
