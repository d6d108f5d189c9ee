// Package svgpath parses the SVG path mini-language ("d" attribute data)
// into a path.Builder (spec §6 / SPEC_FULL.md §D). It follows the
// command-at-a-time tokenizing style used by the pack's SVG path
// parsers, rewritten to drive this module's own path.Builder instead of
// a bespoke path type.
package svgpath

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/nical/lyon/geom"
	"github.com/nical/lyon/path"
)

// ParseError reports a malformed path string, with the byte offset the
// parser had reached.
type ParseError struct {
	Offset int
	Msg    string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("svgpath: at offset %d: %s", e.Offset, e.Msg)
}

// Parse parses an SVG path data string and appends the resulting
// sub-paths to a fresh path.Builder, returning the built Path. A path
// that does not begin with a moveto command is rejected, matching the
// SVG specification's requirement that the first command always be
// M/m.
func Parse(d string) (*path.Path, error) {
	b := path.NewBuilder()
	if err := ParseInto(d, b); err != nil {
		return nil, err
	}
	return b.Build(), nil
}

// ParseInto parses path data and replays it into an existing Builder.
func ParseInto(d string, b *path.Builder) error {
	p := &parser{src: d}
	return p.run(b)
}

type parser struct {
	src string
	pos int
}

type state struct {
	current, start     geom.Point
	hasSubpath         bool
	lastCmd            byte
	lastCubicCtrl      geom.Point
	lastQuadCtrl       geom.Point
}

func (p *parser) run(b *path.Builder) error {
	var st state
	first := true

	for {
		p.skipWhitespaceAndCommas()
		if p.atEnd() {
			break
		}

		c := p.src[p.pos]
		if !isCommandLetter(c) {
			return &ParseError{Offset: p.pos, Msg: fmt.Sprintf("expected a command letter, found %q", c)}
		}
		if first && c != 'M' && c != 'm' {
			return &ParseError{Offset: p.pos, Msg: "path data must begin with a moveto command"}
		}
		first = false
		p.pos++

		if err := p.runCommand(c, b, &st); err != nil {
			return err
		}
	}

	if st.hasSubpath {
		b.End(false)
	}
	return nil
}

func (p *parser) runCommand(cmd byte, b *path.Builder, st *state) error {
	relative := unicode.IsLower(rune(cmd))
	upper := byte(unicode.ToUpper(rune(cmd)))

	switch upper {
	case 'M':
		return p.runRepeated(st, func() error {
			pt, err := p.readPoint(st.current, relative)
			if err != nil {
				return err
			}
			if st.hasSubpath {
				b.End(false)
			}
			b.Begin(pt)
			st.current, st.start = pt, pt
			st.hasSubpath = true
			st.lastCmd = 'M'
			return nil
		})

	case 'L':
		return p.runRepeated(st, func() error {
			pt, err := p.readPoint(st.current, relative)
			if err != nil {
				return err
			}
			b.LineTo(pt)
			st.current = pt
			st.lastCmd = 'L'
			return nil
		})

	case 'H':
		return p.runRepeated(st, func() error {
			x, err := p.readNumber()
			if err != nil {
				return err
			}
			if relative {
				x += st.current.X
			}
			pt := geom.Pt(x, st.current.Y)
			b.LineTo(pt)
			st.current = pt
			st.lastCmd = 'L'
			return nil
		})

	case 'V':
		return p.runRepeated(st, func() error {
			y, err := p.readNumber()
			if err != nil {
				return err
			}
			if relative {
				y += st.current.Y
			}
			pt := geom.Pt(st.current.X, y)
			b.LineTo(pt)
			st.current = pt
			st.lastCmd = 'L'
			return nil
		})

	case 'C':
		return p.runRepeated(st, func() error {
			c1, err := p.readPoint(st.current, relative)
			if err != nil {
				return err
			}
			c2, err := p.readPoint(st.current, relative)
			if err != nil {
				return err
			}
			to, err := p.readPoint(st.current, relative)
			if err != nil {
				return err
			}
			b.CubicBezierTo(c1, c2, to)
			st.current = to
			st.lastCubicCtrl = c2
			st.lastCmd = 'C'
			return nil
		})

	case 'S':
		return p.runRepeated(st, func() error {
			c1 := reflect(st.current, st.lastCubicCtrl, st.lastCmd == 'C')
			c2, err := p.readPoint(st.current, relative)
			if err != nil {
				return err
			}
			to, err := p.readPoint(st.current, relative)
			if err != nil {
				return err
			}
			b.CubicBezierTo(c1, c2, to)
			st.current = to
			st.lastCubicCtrl = c2
			st.lastCmd = 'C'
			return nil
		})

	case 'Q':
		return p.runRepeated(st, func() error {
			ctrl, err := p.readPoint(st.current, relative)
			if err != nil {
				return err
			}
			to, err := p.readPoint(st.current, relative)
			if err != nil {
				return err
			}
			b.QuadraticBezierTo(ctrl, to)
			st.current = to
			st.lastQuadCtrl = ctrl
			st.lastCmd = 'Q'
			return nil
		})

	case 'T':
		return p.runRepeated(st, func() error {
			ctrl := reflect(st.current, st.lastQuadCtrl, st.lastCmd == 'Q')
			to, err := p.readPoint(st.current, relative)
			if err != nil {
				return err
			}
			b.QuadraticBezierTo(ctrl, to)
			st.current = to
			st.lastQuadCtrl = ctrl
			st.lastCmd = 'Q'
			return nil
		})

	case 'A':
		return p.runRepeated(st, func() error {
			rx, err := p.readNumber()
			if err != nil {
				return err
			}
			ry, err := p.readNumber()
			if err != nil {
				return err
			}
			xRot, err := p.readNumber()
			if err != nil {
				return err
			}
			largeArc, err := p.readFlag()
			if err != nil {
				return err
			}
			sweep, err := p.readFlag()
			if err != nil {
				return err
			}
			to, err := p.readPoint(st.current, relative)
			if err != nil {
				return err
			}
			arc := geom.SvgArcToCenter(st.current, to, geom.Vec(rx, ry), degToRad(xRot), largeArc, sweep)
			arc.ForEachFlattened(0.1, func(pt geom.Point) {
				b.LineTo(pt)
			})
			st.current = to
			st.lastCmd = 'A'
			return nil
		})

	case 'Z':
		if st.hasSubpath {
			b.End(true)
			st.hasSubpath = false
		}
		st.current = st.start
		st.lastCmd = 'Z'
		return nil

	default:
		return &ParseError{Offset: p.pos - 1, Msg: fmt.Sprintf("unsupported command %q", cmd)}
	}
}

// runRepeated consumes additional argument groups for a command letter
// without requiring it to be repeated in the source, per the SVG
// grammar ("implicit" repetition of the last command).
func (p *parser) runRepeated(st *state, step func() error) error {
	if err := step(); err != nil {
		return err
	}
	for {
		p.skipWhitespaceAndCommas()
		if p.atEnd() || isCommandLetter(p.src[p.pos]) {
			return nil
		}
		if err := step(); err != nil {
			return err
		}
	}
}

func reflect(current, lastCtrl geom.Point, hadMatchingPrev bool) geom.Point {
	if !hadMatchingPrev {
		return current
	}
	return current.Add(current.Sub(lastCtrl))
}

func degToRad(deg float32) float32 {
	const pi = 3.14159265358979323846
	return deg * pi / 180
}

func isCommandLetter(c byte) bool {
	switch unicode.ToUpper(rune(c)) {
	case 'M', 'L', 'H', 'V', 'C', 'S', 'Q', 'T', 'A', 'Z':
		return true
	}
	return false
}

func (p *parser) atEnd() bool { return p.pos >= len(p.src) }

func (p *parser) skipWhitespaceAndCommas() {
	for !p.atEnd() {
		c := p.src[p.pos]
		if c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == ',' {
			p.pos++
			continue
		}
		break
	}
}

func (p *parser) readPoint(current geom.Point, relative bool) (geom.Point, error) {
	x, err := p.readNumber()
	if err != nil {
		return geom.Point{}, err
	}
	y, err := p.readNumber()
	if err != nil {
		return geom.Point{}, err
	}
	pt := geom.Pt(x, y)
	if relative {
		pt = current.Add(geom.Vec(pt.X, pt.Y))
	}
	return pt, nil
}

func (p *parser) readFlag() (bool, error) {
	p.skipWhitespaceAndCommas()
	if p.atEnd() {
		return false, &ParseError{Offset: p.pos, Msg: "expected a flag (0 or 1)"}
	}
	c := p.src[p.pos]
	if c != '0' && c != '1' {
		return false, &ParseError{Offset: p.pos, Msg: fmt.Sprintf("expected a flag (0 or 1), found %q", c)}
	}
	p.pos++
	return c == '1', nil
}

func (p *parser) readNumber() (float32, error) {
	p.skipWhitespaceAndCommas()
	start := p.pos
	n := len(p.src)

	if p.pos < n && (p.src[p.pos] == '+' || p.src[p.pos] == '-') {
		p.pos++
	}
	hasDigits := false
	for p.pos < n && isDigit(p.src[p.pos]) {
		p.pos++
		hasDigits = true
	}
	if p.pos < n && p.src[p.pos] == '.' {
		p.pos++
		for p.pos < n && isDigit(p.src[p.pos]) {
			p.pos++
			hasDigits = true
		}
	}
	if !hasDigits {
		return 0, &ParseError{Offset: start, Msg: "expected a number"}
	}
	if p.pos < n && (p.src[p.pos] == 'e' || p.src[p.pos] == 'E') {
		save := p.pos
		p.pos++
		if p.pos < n && (p.src[p.pos] == '+' || p.src[p.pos] == '-') {
			p.pos++
		}
		expDigits := false
		for p.pos < n && isDigit(p.src[p.pos]) {
			p.pos++
			expDigits = true
		}
		if !expDigits {
			p.pos = save
		}
	}

	text := p.src[start:p.pos]
	v, err := strconv.ParseFloat(strings.TrimSpace(text), 32)
	if err != nil {
		return 0, &ParseError{Offset: start, Msg: fmt.Sprintf("invalid number %q", text)}
	}
	return float32(v), nil
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }
