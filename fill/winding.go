package fill

import (
	"github.com/nical/lyon/geom"
	"github.com/nical/lyon/path"
)

// HitTest reports whether point lies inside p under the given fill
// rule, at the given flattening tolerance.
func HitTest(point geom.Point, p *path.Path, rule Rule, tolerance float32) bool {
	w := WindingNumberAt(point, p, tolerance)
	if rule == EvenOdd {
		return ((w % 2) + 2) % 2 != 0
	}
	return w != 0
}

// WindingNumberAt computes the winding number of point with respect to
// p: a horizontal ray is cast from point to -infinity X, and every edge
// crossing it to the left of point contributes +1 or -1 depending on
// whether it crosses downward or upward.
func WindingNumberAt(point geom.Point, p *path.Path, tolerance float32) int {
	winding := 0
	var prevWinding int
	havePrevWinding := false

	test := func(from, to geom.Point) {
		crossed, w := testSegment(point, from, to)
		if !crossed {
			havePrevWinding = false
			return
		}
		// Consecutive affecting edges of the same sign within one
		// sub-path double-count a ray that grazes a shared vertex;
		// skip the repeat.
		if !havePrevWinding || prevWinding != w {
			winding += w
		}
		prevWinding = w
		havePrevWinding = true
	}

	var contourStart, prev geom.Point
	open := false
	path.Flatten(p, tolerance, func(ev path.FlattenedEvent) {
		switch ev.Kind {
		case path.FlattenedBegin:
			contourStart = ev.At
			prev = ev.At
			open = true
			havePrevWinding = false
		case path.FlattenedLine:
			test(ev.From, ev.To)
			prev = ev.To
		case path.FlattenedEnd:
			if open {
				test(prev, contourStart)
			}
			open = false
		}
	})

	return winding
}

// testSegment reports whether the horizontal ray from point toward
// -infinity X crosses segment (from, to), and if so, the winding
// contribution of that crossing.
func testSegment(point, from, to geom.Point) (crossed bool, winding int) {
	y0, y1 := from.Y, to.Y
	minY, maxY := y0, y1
	if minY > maxY {
		minY, maxY = maxY, minY
	}
	minX := from.X
	if to.X < minX {
		minX = to.X
	}
	if minY > point.Y || maxY < point.Y || minX > point.X {
		return false, 0
	}
	if y0 == y1 {
		return false, 0
	}

	t := (point.Y - y0) / (y1 - y0)
	x := from.X + t*(to.X-from.X)
	if x >= point.X {
		return false, 0
	}

	switch {
	case to.Y > from.Y:
		return true, 1
	case to.Y < from.Y:
		return true, -1
	case to.X > from.X:
		return true, 1
	default:
		return true, -1
	}
}
