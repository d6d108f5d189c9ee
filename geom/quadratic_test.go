package geom

import "testing"

func TestQuadraticFlatteningDeterminism(t *testing.T) {
	q := Quadratic(Pt(0, 0), Pt(1, 0), Pt(1, 1))
	tolerance := float32(0.01)

	var first []Point
	q.ForEachFlattened(tolerance, func(p Point) {
		first = append(first, p)
	})

	var second []Point
	q.ForEachFlattened(tolerance, func(p Point) {
		second = append(second, p)
	})

	if len(first) != len(second) {
		t.Fatalf("flattening is not deterministic: got %d then %d points", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("flattening is not deterministic at point %d: %v != %v", i, first[i], second[i])
		}
	}

	if len(first) == 0 || first[len(first)-1] != q.To() {
		t.Fatalf("last flattened point must equal To(), got %v", first)
	}

	prev := q.From()
	for i, p := range first {
		// Sample a handful of points along the chord and check the max
		// deviation from the analytic curve stays within tolerance.
		maxDev := float32(0)
		for s := 1; s < 10; s++ {
			frac := float32(s) / 10
			onChord := prev.Lerp(p, frac)
			// Find closest analytic point by a dense search: the spacing
			// between samples must stay well below the tolerance, or the
			// search error alone would exceed the bound being checked.
			best := float32(1e9)
			for k := 0; k <= 2000; k++ {
				tt := float32(k) / 2000
				d := q.Sample(tt).Distance(onChord)
				if d < best {
					best = d
				}
			}
			if best > maxDev {
				maxDev = best
			}
		}
		if maxDev > tolerance*1.5 {
			t.Errorf("segment %d deviates from curve by %f, tolerance is %f", i, maxDev, tolerance)
		}
		prev = p
	}
}

func TestQuadraticSplitIdentity(t *testing.T) {
	q := Quadratic(Pt(0, 0), Pt(5, 10), Pt(10, 0))
	for _, tt := range []float32{0.1, 0.25, 0.5, 0.75, 0.9} {
		before, after := q.Split(tt)
		mid := q.Sample(tt)
		if !before.To().NearEq(mid, 1e-4) {
			t.Errorf("t=%v: before.To() = %v, want %v", tt, before.To(), mid)
		}
		if !after.From().NearEq(mid, 1e-4) {
			t.Errorf("t=%v: after.From() = %v, want %v", tt, after.From(), mid)
		}
	}
}

func TestQuadraticDegenerate(t *testing.T) {
	q := Quadratic(Pt(1, 1), Pt(1, 1), Pt(1, 1))
	var points []Point
	q.ForEachFlattened(0.01, func(p Point) {
		points = append(points, p)
	})
	if len(points) != 1 || points[0] != Pt(1, 1) {
		t.Errorf("degenerate curve should emit only the endpoint, got %v", points)
	}
}

func TestQuadraticLineFastPath(t *testing.T) {
	// from, ctrl, to colinear: should flatten to a single point (To()).
	q := Quadratic(Pt(0, 0), Pt(5, 0), Pt(10, 0))
	var points []Point
	q.ForEachFlattened(0.01, func(p Point) {
		points = append(points, p)
	})
	if len(points) != 1 {
		t.Errorf("colinear quadratic should flatten to a single segment, got %d points: %v", len(points), points)
	}
}
