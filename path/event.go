// Package path provides the PathEvent data model, an immutable Path
// type, the imperative path Builder, curve flattening, and regular
// arc-length walking.
package path

import "github.com/nical/lyon/geom"

// PathEvent is a tagged union describing one element of a path: the
// start of a sub-path, a straight or curved segment, or the end of a
// sub-path. Within a sub-path, the To of each event equals the From of
// the next.
type PathEvent struct {
	Kind EventKind

	// Begin
	At geom.Point

	// Line / Quadratic / Cubic
	From geom.Point
	To   geom.Point

	// Quadratic
	Ctrl geom.Point

	// Cubic
	Ctrl1, Ctrl2 geom.Point

	// End
	First geom.Point
	Last  geom.Point
	Close bool
}

// EventKind identifies which variant of PathEvent is populated.
type EventKind uint8

const (
	EventBegin EventKind = iota
	EventLine
	EventQuadratic
	EventCubic
	EventEnd
)

func (k EventKind) String() string {
	switch k {
	case EventBegin:
		return "Begin"
	case EventLine:
		return "Line"
	case EventQuadratic:
		return "Quadratic"
	case EventCubic:
		return "Cubic"
	case EventEnd:
		return "End"
	default:
		return "Unknown"
	}
}

// BeginEvent starts a new sub-path at at.
func BeginEvent(at geom.Point) PathEvent {
	return PathEvent{Kind: EventBegin, At: at}
}

// LineEvent draws a straight segment from -> to.
func LineEvent(from, to geom.Point) PathEvent {
	return PathEvent{Kind: EventLine, From: from, To: to}
}

// QuadraticEvent draws a quadratic Bezier segment.
func QuadraticEvent(from, ctrl, to geom.Point) PathEvent {
	return PathEvent{Kind: EventQuadratic, From: from, Ctrl: ctrl, To: to}
}

// CubicEvent draws a cubic Bezier segment.
func CubicEvent(from, ctrl1, ctrl2, to geom.Point) PathEvent {
	return PathEvent{Kind: EventCubic, From: from, Ctrl1: ctrl1, Ctrl2: ctrl2, To: to}
}

// EndEvent terminates a sub-path. If close is true, an implicit line
// from last to first is considered part of the contour.
func EndEvent(last, first geom.Point, close bool) PathEvent {
	return PathEvent{Kind: EventEnd, Last: last, First: first, Close: close}
}

// FlattenedEvent is a restricted PathEvent with only Begin, Line and End
// variants, produced by the flattener.
type FlattenedEvent struct {
	Kind  FlattenedKind
	At    geom.Point
	From  geom.Point
	To    geom.Point
	First geom.Point
	Last  geom.Point
	Close bool
}

// FlattenedKind identifies which variant of FlattenedEvent is populated.
type FlattenedKind uint8

const (
	FlattenedBegin FlattenedKind = iota
	FlattenedLine
	FlattenedEnd
)
