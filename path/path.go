package path

import "github.com/nical/lyon/geom"

// Path is an immutable sequence of PathEvents, produced by a Builder (or
// by the shape helpers in shapes.go) and consumed by the flattener and
// tessellators.
type Path struct {
	events []PathEvent
}

// Events returns the path's events in order.
func (p *Path) Events() []PathEvent {
	return p.events
}

// IsEmpty reports whether the path has no events.
func (p *Path) IsEmpty() bool {
	return len(p.events) == 0
}

// ForEach calls cb for every event in order. Iteration stops early if cb
// returns false.
func (p *Path) ForEach(cb func(PathEvent) bool) {
	for _, e := range p.events {
		if !cb(e) {
			return
		}
	}
}

// Transform returns a new Path with every point mapped through fn.
func (p *Path) Transform(fn func(geom.Point) geom.Point) *Path {
	out := make([]PathEvent, len(p.events))
	for i, e := range p.events {
		switch e.Kind {
		case EventBegin:
			e.At = fn(e.At)
		case EventLine:
			e.From, e.To = fn(e.From), fn(e.To)
		case EventQuadratic:
			e.From, e.Ctrl, e.To = fn(e.From), fn(e.Ctrl), fn(e.To)
		case EventCubic:
			e.From, e.Ctrl1, e.Ctrl2, e.To = fn(e.From), fn(e.Ctrl1), fn(e.Ctrl2), fn(e.To)
		case EventEnd:
			e.Last, e.First = fn(e.Last), fn(e.First)
		}
		out[i] = e
	}
	return &Path{events: out}
}
