package font

import "github.com/ekelse/btxt/geom"

// The number of glyph columns on a sheet. Sheets are laid out as a
// fixed grid of padded cells, with byte value b living at cell
// ([SheetCol](b), [SheetRow](b)).
const SheetCols = 32

// The byte that [Spec.Compile]() designates as the fallback glyph
// when the spec doesn't name one itself.
const DefaultFallback byte = '?'

// Returns the sheet column of the glyph for the given byte.
func SheetCol(b byte) int { return int(b) % SheetCols }

// Returns the sheet row of the glyph for the given byte.
func SheetRow(b byte) int { return int(b) / SheetCols }

// The location and advance of a single glyph.
type GlyphMetric struct {
	// Top-left corner of the glyph on the sheet image.
	SheetOffset geom.Point

	// Horizontal distance the pen moves after placing the glyph,
	// excluding inter-glyph spacing. Always > 0 on compiled metrics.
	Advance int
}

// A compiled metrics set for a proportional bitmap font.
//
// Metrics are immutable once compiled (see [Spec.Compile]()) and can
// be shared across any number of goroutines and layout operations
// without synchronization.
//
// The glyph table is total: every byte resolves to a metric, with
// bytes outside the font's coverage resolving to the fallback glyph.
// Layout code can therefore never fail on unexpected input bytes.
type Metrics struct {
	char     geom.Size
	pad      geom.Point
	glyphs   [256]GlyphMetric
	mapped   [256]bool
	kernings map[uint16]int
	fallback byte
	id       uint64
}

// Returns the dimensions of one glyph cell, without padding. The
// height is shared by every glyph in the font; the width is the
// default advance for glyphs without a width override.
func (self *Metrics) CharSize() geom.Size { return self.char }

// Returns the inter-glyph padding. Pad.X is the default horizontal
// spacing between consecutive glyphs (see [Metrics.Kerning]());
// Pad.Y is the vertical spacing between lines.
func (self *Metrics) Pad() geom.Point { return self.pad }

// Returns the width of one padded sheet cell. This is the horizontal
// stride between sheet columns, and also the worst-case advance for
// aligning content on a character grid.
func (self *Metrics) PaddedW() int { return self.char.W + self.pad.X }

// Returns the vertical distance between the tops of two consecutive
// lines: the glyph height plus the vertical padding.
func (self *Metrics) LineHeight() int { return self.char.H + self.pad.Y }

// Returns the byte whose glyph stands in for bytes outside the
// font's coverage.
func (self *Metrics) Fallback() byte { return self.fallback }

// Returns whether the given byte is part of the font's coverage.
// Unmapped bytes still resolve through [Metrics.Glyph](), but to the
// fallback glyph's metric.
func (self *Metrics) Mapped(b byte) bool { return self.mapped[b] }

// Returns the metric for the given byte. This is a total function:
// bytes outside the font's coverage return the fallback glyph's
// metric instead of failing.
func (self *Metrics) Glyph(b byte) GlyphMetric { return self.glyphs[b] }

// Returns the horizontal spacing to apply between the two given
// bytes. Unless the font defines a kerning override for the pair,
// this is Pad().X. Overrides are absolute: they replace the default
// spacing rather than adjusting it.
func (self *Metrics) Kerning(left, right byte) int {
	if self.kernings != nil {
		spacing, found := self.kernings[kernKey(left, right)]
		if found { return spacing }
	}
	return self.pad.X
}

// Returns the signed maximal width of a horizontal span the given
// number of characters wide, ignoring proportionality. Useful for
// aligning items on a character grid, but an overestimate for
// proportional fonts; measure the actual string when accuracy
// matters.
func (self *Metrics) SpanW(chars int) int { return self.PaddedW()*chars }

// Returns the signed maximal height of a vertical span the given
// number of characters tall.
func (self *Metrics) SpanH(chars int) int { return self.LineHeight()*chars }

// Converts a size in characters to a size in pixels, as if on a
// uniform character grid. See [Metrics.SpanW]() for caveats on
// proportional fonts.
func (self *Metrics) TextSize(wChars, hChars int) geom.Size {
	return geom.Size{ W: self.SpanW(wChars), H: self.SpanH(hChars) }
}

// Returns the exact width in pixels of the given text: the widest of
// its lines, with proportional advances, kerning overrides and
// inter-glyph spacing applied the same way laying the text out would.
// Carriage returns and line feeds both rewind the pen.
func (self *Metrics) StringWidth(text string) int {
	width, pen := 0, 0
	hasPrev := false
	var prev byte
	for i := 0; i < len(text); i += 1 {
		b := text[i]
		if b == '\r' || b == '\n' {
			if pen > width { width = pen }
			pen, hasPrev = 0, false
			continue
		}
		if hasPrev { pen += self.Kerning(prev, b) }
		pen += self.glyphs[b].Advance
		prev, hasPrev = b, true
	}
	if pen > width { width = pen }
	return width
}

// Returns an identifier unique to this compiled metrics set within
// the process. Caches use it to key measurements without retaining
// the metrics themselves.
func (self *Metrics) CacheID() uint64 { return self.id }

func kernKey(left, right byte) uint16 {
	return uint16(left)<<8 | uint16(right)
}
