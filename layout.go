package btxt

import "github.com/ekelse/btxt/font"
import "github.com/ekelse/btxt/geom"

// A single glyph placement produced by [Layout]: the source rect of
// the glyph on its sheet image and the destination rect on the
// target surface, always of equal size.
//
// Placements are ephemeral: they are meant to be consumed by a
// backend right away and hold no reference back to the font.
type PlacedGlyph struct {
	// Location of the glyph on the sheet image.
	Src geom.Rect

	// Location of the glyph on the destination surface.
	Dst geom.Rect

	// Whether the glyph should be drawn from the sheet image or as
	// a solid block. [Layout] always emits textured placements;
	// flat-mode renderers clear the flag before drawing.
	Textured bool
}

const unbounded = int(^uint(0) >> 1)

// Computes the placement of every visible glyph of text, walking its
// bytes in order from the given origin and applying the given bound
// policy against bound. The returned placements never overrun the
// bound: glyphs that can't fit are truncated (or wrapped first, with
// the [Wrap] policy).
//
// Layout is a pure function: identical inputs yield identical
// placements, nothing is retained across calls, and concurrent calls
// over the same metrics are safe.
//
// Carriage returns move the pen back to origin.X; line feeds
// additionally move it down one line. Neither emits a placement.
// Every other byte resolves through the metrics' glyph table, which
// is total: bytes outside the font's coverage come out as the
// fallback glyph rather than failing.
//
// A bound with a negative size is a caller contract violation and
// panics. Layout with nil metrics panics too.
func Layout(metrics *font.Metrics, text string, origin geom.Point, bound geom.Rect, policy BoundPolicy) []PlacedGlyph {
	pass := newLayoutPass(metrics, origin, bound, policy, true)
	pass.run(text)
	return pass.out
}

// Returns the dimensions of the area taken by the given text: the
// width of its widest line and the height of all its lines.
//
// Proportional advances mean there is no shortcut for measuring a
// string: Measure performs the exact same byte walk as [Layout] with
// an unbounded layout area, only skipping the glyph emission, so
// measured and rendered text can never disagree.
func Measure(metrics *font.Metrics, text string) geom.Size {
	bound := geom.Rect{ Size: geom.Size{ W: unbounded, H: unbounded } }
	pass := newLayoutPass(metrics, geom.Point{}, bound, Truncate, false)
	pass.run(text)
	return pass.contentSize()
}

// ---- underlying implementation ----

// The transient cursor state of a single [Layout] or [Measure] call.
// Both operations share this walk; see the Measure docs for why
// that's load-bearing rather than incidental.
type layoutPass struct {
	metrics  *font.Metrics
	origin   geom.Point
	bound    geom.Rect
	policy   BoundPolicy
	emit     bool

	pen      geom.Point
	maxX     int
	prev     byte
	hasPrev  bool
	consumed bool
	out      []PlacedGlyph
}

func newLayoutPass(metrics *font.Metrics, origin geom.Point, bound geom.Rect, policy BoundPolicy, emit bool) layoutPass {
	if metrics == nil {
		panic("can't lay out text with metrics == nil (tip: font.Spec.Compile())")
	}
	if bound.Size.W < 0 || bound.Size.H < 0 {
		panic("negative bound size " + bound.Size.String())
	}
	return layoutPass{
		metrics: metrics,
		origin : origin,
		bound  : bound,
		policy : policy,
		emit   : emit,
		pen    : origin,
		maxX   : origin.X,
	}
}

func (self *layoutPass) run(text string) {
	for i := 0; i < len(text); i += 1 {
		if !self.step(text[i]) { return }
	}
}

// Advances the pass by one byte. Returns false on truncation.
func (self *layoutPass) step(b byte) bool {
	self.consumed = true
	switch b {
	case '\r':
		self.lineReturn()
		return true
	case '\n':
		self.lineFeed()
		return true
	}

	glyph := self.metrics.Glyph(b)

	// inter-glyph spacing applies between the previous glyph and
	// this one; line starts have no left neighbor
	if self.hasPrev {
		self.pen.X += self.metrics.Kerning(self.prev, b)
	}

	candidate := geom.Rect{
		Min : self.pen,
		Size: geom.Size{ W: glyph.Advance, H: self.metrics.CharSize().H },
	}
	if candidate.Right() > self.bound.Right() {
		if self.policy != Wrap { return false }
		self.lineFeed()
		candidate.Min = self.pen
		if candidate.Right() > self.bound.Right() { return false } // wider than the bound itself
	}
	if candidate.Bottom() > self.bound.Bottom() { return false }

	if self.emit {
		self.out = append(self.out, PlacedGlyph{
			Src: geom.Rect{ Min: glyph.SheetOffset, Size: candidate.Size },
			Dst: candidate,
			Textured: true,
		})
	}
	self.pen.X = candidate.Right()
	self.prev, self.hasPrev = b, true
	return true
}

func (self *layoutPass) lineReturn() {
	if self.pen.X > self.maxX { self.maxX = self.pen.X }
	self.pen.X = self.origin.X
	self.hasPrev = false
}

func (self *layoutPass) lineFeed() {
	self.lineReturn()
	self.pen.Y += self.metrics.LineHeight()
}

// Returns the dimensions of the content walked so far: the widest
// line and the full line height of every line started. Empty input
// has zero size, not one empty line.
func (self *layoutPass) contentSize() geom.Size {
	if !self.consumed { return geom.Size{} }
	width := self.pen.X
	if self.maxX > width { width = self.maxX }
	return geom.Size{
		W: width - self.origin.X,
		H: self.pen.Y + self.metrics.LineHeight() - self.origin.Y,
	}
}
