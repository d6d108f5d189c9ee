package svgpath

import (
	"testing"

	"github.com/nical/lyon/geom"
	"github.com/nical/lyon/path"
)

func TestParseBasicLineAndClose(t *testing.T) {
	p, err := Parse("M0 0 L10 0 L10 10 Z")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	events := p.Events()

	want := []path.EventKind{path.EventBegin, path.EventLine, path.EventLine, path.EventEnd}
	if len(events) != len(want) {
		t.Fatalf("got %d events, want %d", len(events), len(want))
	}
	for i, k := range want {
		if events[i].Kind != k {
			t.Errorf("event %d kind = %v, want %v", i, events[i].Kind, k)
		}
	}
	last := events[len(events)-1]
	if !last.Close {
		t.Error("trailing Z should produce a closed sub-path")
	}
}

func TestParseRelativeCoordinates(t *testing.T) {
	p, err := Parse("m0 0 l10 0 l0 10 z")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	events := p.Events()
	// Second line, starting at (10,0), relative (0,10) -> (10,10).
	got := events[2].To
	want := geom.Pt(10, 10)
	if got != want {
		t.Errorf("relative lineto ended at %v, want %v", got, want)
	}
}

func TestParseImplicitRepeat(t *testing.T) {
	p, err := Parse("M0 0 L10 0 10 10 0 10")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	events := p.Events()
	// Begin + 3 implicit-repeat linetos.
	lineCount := 0
	for _, ev := range events {
		if ev.Kind == path.EventLine {
			lineCount++
		}
	}
	if lineCount != 3 {
		t.Errorf("got %d line events from implicit repeat, want 3", lineCount)
	}
}

func TestParseSmoothCubicReflection(t *testing.T) {
	p, err := Parse("M0 0 C0 10 10 10 10 0 S20 -10 20 0")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	events := p.Events()
	var cubics []path.PathEvent
	for _, ev := range events {
		if ev.Kind == path.EventCubic {
			cubics = append(cubics, ev)
		}
	}
	if len(cubics) != 2 {
		t.Fatalf("got %d cubic events, want 2", len(cubics))
	}
	// S's first control point reflects the previous cubic's second
	// control point (10,10) through the current point (10,0):
	// reflected = current + (current - lastCtrl) = (10,-10).
	want := geom.Pt(10, -10)
	if got := cubics[1].Ctrl1; got != want {
		t.Errorf("reflected control point = %v, want %v", got, want)
	}
}

func TestParseRejectsPathNotStartingWithMoveto(t *testing.T) {
	_, err := Parse("L10 0")
	if err == nil {
		t.Fatal("expected an error for a path not starting with M/m")
	}
}

func TestParseHorizontalAndVerticalShorthand(t *testing.T) {
	p, err := Parse("M0 0 H10 V10")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	events := p.Events()
	if got, want := events[1].To, geom.Pt(10, 0); got != want {
		t.Errorf("H shorthand ended at %v, want %v", got, want)
	}
	if got, want := events[2].To, geom.Pt(10, 10); got != want {
		t.Errorf("V shorthand ended at %v, want %v", got, want)
	}
}

func TestParseIntoAppendsToExistingBuilder(t *testing.T) {
	b := path.NewBuilder()
	b.AddRectangle(geom.NewRect(geom.Pt(0, 0), geom.Pt(5, 5)), path.Positive)

	if err := ParseInto("M20 20 L30 20 L30 30 Z", b); err != nil {
		t.Fatalf("ParseInto: %v", err)
	}

	p := b.Build()
	beginCount := 0
	for _, ev := range p.Events() {
		if ev.Kind == path.EventBegin {
			beginCount++
		}
	}
	if beginCount != 2 {
		t.Errorf("got %d sub-paths, want 2", beginCount)
	}
}
