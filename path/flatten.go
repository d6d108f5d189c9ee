package path

import "github.com/nical/lyon/geom"

// Flatten consumes a Path's events and calls cb once per resulting
// FlattenedEvent: every Quadratic/Cubic event is replaced by one or more
// Line events so that the maximum distance between the polyline and the
// original curve is at most tolerance.
//
// This is the push-style half of the flattening contract (§4.1 /
// §9); Flattened below provides the pull-style cursor for callers that
// want to drive iteration themselves.
func Flatten(p *Path, tolerance float32, cb func(FlattenedEvent)) {
	for _, e := range p.events {
		flattenEvent(e, tolerance, cb)
	}
}

func flattenEvent(e PathEvent, tolerance float32, cb func(FlattenedEvent)) {
	switch e.Kind {
	case EventBegin:
		cb(FlattenedEvent{Kind: FlattenedBegin, At: e.At})

	case EventLine:
		cb(FlattenedEvent{Kind: FlattenedLine, From: e.From, To: e.To})

	case EventQuadratic:
		seg := geom.Quadratic(e.From, e.Ctrl, e.To)
		from := e.From
		seg.ForEachFlattened(tolerance, func(p geom.Point) {
			cb(FlattenedEvent{Kind: FlattenedLine, From: from, To: p})
			from = p
		})

	case EventCubic:
		seg := geom.Cubic(e.From, e.Ctrl1, e.Ctrl2, e.To)
		from := e.From
		seg.ForEachFlattened(tolerance, func(p geom.Point) {
			cb(FlattenedEvent{Kind: FlattenedLine, From: from, To: p})
			from = p
		})

	case EventEnd:
		cb(FlattenedEvent{Kind: FlattenedEnd, Last: e.Last, First: e.First, Close: e.Close})
	}
}

// Flattened is a pull-style cursor over a Path's flattened events: it
// owns the remaining path and advances on demand via Next. Restartability
// is not required by the contract, matching the source library's
// iterator-shaped APIs (§9).
type Flattened struct {
	remaining []PathEvent
	tolerance float32

	pending []FlattenedEvent
}

// NewFlattened creates a cursor over p's flattened events.
func NewFlattened(p *Path, tolerance float32) *Flattened {
	return &Flattened{remaining: p.events, tolerance: tolerance}
}

// Next advances the cursor and returns the next FlattenedEvent, or false
// once the path is exhausted.
func (f *Flattened) Next() (FlattenedEvent, bool) {
	for len(f.pending) == 0 {
		if len(f.remaining) == 0 {
			return FlattenedEvent{}, false
		}
		e := f.remaining[0]
		f.remaining = f.remaining[1:]
		flattenEvent(e, f.tolerance, func(fe FlattenedEvent) {
			f.pending = append(f.pending, fe)
		})
	}
	next := f.pending[0]
	f.pending = f.pending[1:]
	return next, true
}

// Collect drains the cursor into a slice. Intended for tests and small
// paths; production pipelines should use the push-style Flatten or Next.
func (f *Flattened) Collect() []FlattenedEvent {
	var out []FlattenedEvent
	for {
		e, ok := f.Next()
		if !ok {
			return out
		}
		out = append(out, e)
	}
}
