package geom

// SegmentsIntersection returns the point where the open segments (a0,a1)
// and (b0,b1) cross, using float64 accumulation even though Point is
// float32-backed: near-parallel edges amplify the rounding error of a
// float32 cross product enough to flip its sign, which would misclassify
// a real crossing as none (or vice versa).
//
// Only a proper interior crossing counts: segments that merely touch at
// a shared endpoint, or are parallel (including collinear-overlapping),
// report false. Shared endpoints are already events in the sweep; they
// need no synthesized intersection, and collinear overlap is preserved
// as non-intersecting per the open question on overlapping geometry.
func SegmentsIntersection(a0, a1, b0, b1 Point) (Point, bool) {
	ax, ay := float64(a1.X-a0.X), float64(a1.Y-a0.Y)
	bx, by := float64(b1.X-b0.X), float64(b1.Y-b0.Y)

	denom := ax*by - ay*bx
	if denom == 0 {
		return Point{}, false
	}

	dx, dy := float64(b0.X-a0.X), float64(b0.Y-a0.Y)
	t := (dx*by - dy*bx) / denom
	u := (dx*ay - dy*ax) / denom

	const eps = 1e-9
	if t <= eps || t >= 1-eps || u <= eps || u >= 1-eps {
		return Point{}, false
	}

	x := float64(a0.X) + t*ax
	y := float64(a0.Y) + t*ay
	return Pt(float32(x), float32(y)), true
}
