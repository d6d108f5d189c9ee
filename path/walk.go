package path

import "github.com/nical/lyon/geom"

// WalkCallback is invoked at each step while walking a path. It receives
// the current position, the unit tangent of the segment being walked,
// and the cumulative distance traveled along the path so far. Returning
// false stops the walk.
type WalkCallback func(position geom.Point, tangent geom.Vector, distance float32) bool

// walker is the regular-interval path walker: it advances a pattern
// (here, a fixed interval) along a flattened path, invoking cb every
// `interval` units of arc length starting from `start`.
//
// Mirrors the source library's PathWalker / RegularPattern: walking
// begins at offset `start` (clamped to >= 0); the callback fires as soon
// as the accumulated distance reaches the next requested offset, and the
// leftover distance carries over between segments and sub-paths.
type walker struct {
	prev         geom.Point
	first        geom.Point
	advancement  float32
	leftover     float32
	nextDistance float32
	needMoveTo   bool
	done         bool
	interval     float32
	cb           WalkCallback
}

func newWalker(start, interval float32, cb WalkCallback) *walker {
	if start < 0 {
		start = 0
	}
	return &walker{nextDistance: start, needMoveTo: true, interval: interval, cb: cb}
}

func (w *walker) moveTo(to geom.Point) {
	w.needMoveTo = false
	w.first = to
	w.prev = to
}

func (w *walker) lineTo(to geom.Point) {
	if w.needMoveTo {
		w.moveTo(w.first)
	}
	if w.done {
		return
	}

	v := to.Sub(w.prev)
	d := v.Length()
	if d < 1e-5 {
		return
	}
	tangent := v.Mul(1 / d)

	distance := w.leftover + d
	for distance >= w.nextDistance {
		position := w.prev.Add(tangent.Mul(w.nextDistance - w.leftover))
		w.prev = position
		w.leftover = 0
		w.advancement += w.nextDistance
		distance -= w.nextDistance

		if !w.cb(position, tangent, w.advancement) {
			w.done = true
			return
		}
		w.nextDistance = w.interval
	}

	w.prev = to
	w.leftover = distance
}

func (w *walker) close() {
	first := w.first
	w.lineTo(first)
	w.needMoveTo = true
}

// Walk traverses p at a fixed arc-length interval, starting at offset
// start (distance from the beginning of the path, clamped to >= 0),
// invoking cb once per step. If start is beyond the path's total length,
// cb is never invoked.
func Walk(p *Path, tolerance, start, interval float32, cb WalkCallback) {
	w := newWalker(start, interval, cb)
	Flatten(p, tolerance, func(e FlattenedEvent) {
		if w.done {
			return
		}
		switch e.Kind {
		case FlattenedBegin:
			w.moveTo(e.At)
		case FlattenedLine:
			w.lineTo(e.To)
		case FlattenedEnd:
			if e.Close {
				w.close()
			} else {
				w.needMoveTo = true
			}
		}
	})
}
