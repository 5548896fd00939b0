package font

import "sync/atomic"

import "github.com/pkg/errors"

import "github.com/ekelse/btxt/geom"

// An on-disk description of a bitmap font's metrics, typically
// decoded from a small JSON file living next to the sheet image.
// Specs are compiled into a proper [Metrics] set before consumption;
// see [Spec.Compile]().
type Spec struct {
	// Name of the font, used as its key in a [Library].
	Name string `json:"name,omitempty"`

	// Dimensions of one glyph without padding. This is also the
	// size of one cell in the sheet grid.
	Char geom.Size `json:"char"`

	// Padding between glyphs: X horizontally between glyphs on a
	// line, Y vertically between lines.
	Pad geom.Point `json:"pad"`

	// The characters actually present in the font. Bytes outside
	// the coverage resolve to the fallback glyph. When empty, the
	// coverage defaults to bytes 0x20..0xFF.
	//
	// Only characters below codepoint 256 are allowed.
	Coverage string `json:"coverage,omitempty"`

	// The character standing in for bytes outside the coverage.
	// Must be a single character within the coverage. When empty,
	// '?' is used.
	Fallback string `json:"fallback,omitempty"`

	// Class-based width overrides. Each entry maps every character
	// of its key string to the given advance. The sheet grid is
	// determined by Char, so an override can't make a character
	// wider than Char.W.
	WidthOverrides map[string]int `json:"width_overrides,omitempty"`

	// Class-based kerning overrides between character pairs.
	Kerning KerningSpec `json:"kerning,omitempty"`
}

// A class-based kerning specification, vaguely similar to OpenType
// class kerning: characters are grouped into left and right classes,
// and pairs of classes get spacing overrides.
//
// Spacing overrides are absolute: they replace the default
// inter-glyph padding for the pair, they don't adjust it.
type KerningSpec struct {
	// Left classes, grouping characters by how they kern on their
	// right edge.
	Left map[string]string `json:"left,omitempty"`

	// Right classes, grouping characters by how they kern on their
	// left edge.
	Right map[string]string `json:"right,omitempty"`

	// Spacing overrides between a left and a right class.
	Pairs []KerningPair `json:"pairs,omitempty"`
}

// A single class pair spacing override. See [KerningSpec].
type KerningPair struct {
	Left    string `json:"left"`
	Right   string `json:"right"`
	Spacing int    `json:"spacing"`
}

var metricsIDSequence uint64

// Compiles the spec into an immutable [Metrics] set, expanding the
// coverage, width override and kerning tables.
//
// All spec problems are reported here, once, at construction time:
// non-positive glyph dimensions, negative padding, a fallback glyph
// outside the coverage, width overrides exceeding the grid width and
// kerning pairs referring to missing classes all fail compilation.
// After a successful compile, glyph lookup is total and layout can
// never fail on input bytes.
func (self *Spec) Compile() (*Metrics, error) {
	if self.Char.W <= 0 || self.Char.H <= 0 {
		return nil, errors.Errorf("char size must be positive, got %s", self.Char)
	}
	if self.Pad.X < 0 || self.Pad.Y < 0 {
		return nil, errors.Errorf("pad can't be negative, got %s", self.Pad)
	}

	metrics := &Metrics{
		char: self.Char,
		pad : self.Pad,
		id  : atomic.AddUint64(&metricsIDSequence, 1),
	}

	covered, err := self.coverage()
	if err != nil { return nil, err }

	fallback, err := self.fallbackByte()
	if err != nil { return nil, err }
	if !covered[fallback] {
		return nil, errors.Errorf("fallback glyph %q outside font coverage", string(rune(fallback)))
	}
	metrics.fallback = fallback

	advances, err := self.advances()
	if err != nil { return nil, err }

	// populate the glyph table for the covered bytes first, then
	// resolve everything else to the fallback metric so that lookup
	// stays total and branch-free
	paddedW, paddedH := self.Char.W + self.Pad.X, self.Char.H + self.Pad.Y
	for b := 0; b < 256; b += 1 {
		if !covered[b] { continue }
		advance := self.Char.W
		if override, found := advances[byte(b)]; found { advance = override }
		metrics.glyphs[b] = GlyphMetric{
			SheetOffset: geom.Pt(SheetCol(byte(b))*paddedW, SheetRow(byte(b))*paddedH),
			Advance: advance,
		}
		metrics.mapped[b] = true
	}
	fallbackMetric := metrics.glyphs[fallback]
	for b := 0; b < 256; b += 1 {
		if !covered[b] { metrics.glyphs[b] = fallbackMetric }
	}

	metrics.kernings, err = self.Kerning.compile()
	if err != nil { return nil, err }
	return metrics, nil
}

func (self *Spec) coverage() (*[256]bool, error) {
	var covered [256]bool
	if self.Coverage == "" {
		for b := 0x20; b <= 0xFF; b += 1 { covered[b] = true }
		return &covered, nil
	}
	bytes, err := classBytes(self.Coverage)
	if err != nil { return nil, errors.Wrap(err, "invalid coverage") }
	for _, b := range bytes { covered[b] = true }
	return &covered, nil
}

func (self *Spec) fallbackByte() (byte, error) {
	if self.Fallback == "" { return DefaultFallback, nil }
	bytes, err := classBytes(self.Fallback)
	if err != nil { return 0, errors.Wrap(err, "invalid fallback") }
	if len(bytes) != 1 {
		return 0, errors.Errorf("fallback must be a single character, got %q", self.Fallback)
	}
	return bytes[0], nil
}

func (self *Spec) advances() (map[byte]int, error) {
	overrides := make(map[byte]int, len(self.WidthOverrides)*4)
	for class, width := range self.WidthOverrides {
		if width <= 0 {
			return nil, errors.Errorf("width override for %q must be positive, got %d", class, width)
		}
		if width > self.Char.W {
			return nil, errors.Errorf("width override for %q exceeds grid width (%d > %d)", class, width, self.Char.W)
		}
		bytes, err := classBytes(class)
		if err != nil { return nil, errors.Wrap(err, "invalid width override class") }
		for _, b := range bytes { overrides[b] = width }
	}
	return overrides, nil
}

func (self *KerningSpec) compile() (map[uint16]int, error) {
	if len(self.Pairs) == 0 { return nil, nil }

	kernings := make(map[uint16]int, len(self.Pairs)*4)
	for _, pair := range self.Pairs {
		leftClass, found := self.Left[pair.Left]
		if !found { return nil, errors.Errorf("kerning pair refers to missing left class %q", pair.Left) }
		rightClass, found := self.Right[pair.Right]
		if !found { return nil, errors.Errorf("kerning pair refers to missing right class %q", pair.Right) }

		lefts, err := classBytes(leftClass)
		if err != nil { return nil, errors.Wrapf(err, "invalid left class %q", pair.Left) }
		rights, err := classBytes(rightClass)
		if err != nil { return nil, errors.Wrapf(err, "invalid right class %q", pair.Right) }
		for _, left := range lefts {
			for _, right := range rights {
				kernings[kernKey(left, right)] = pair.Spacing
			}
		}
	}
	return kernings, nil
}

// Expands a class string into the bytes it names. Bitmap fonts only
// address the single-byte range, so characters above codepoint 255
// are rejected.
func classBytes(class string) ([]byte, error) {
	bytes := make([]byte, 0, len(class))
	for _, codePoint := range class {
		if codePoint > 0xFF {
			return nil, errors.Errorf("character %q outside the byte range", string(codePoint))
		}
		bytes = append(bytes, byte(codePoint))
	}
	return bytes, nil
}
