package btxt

import "github.com/ekelse/btxt/geom"
import "github.com/ekelse/btxt/colour"

// Lays out the given text (see [Renderer.Layout]()) and blits every
// resulting placement onto the renderer's target.
//
// Drawing without a target panics. Outside [Flat] mode, drawing
// also requires the font's sheet image (see [Renderer.SetSheet]()).
func (self *Renderer) Draw(text string, origin geom.Point, bound geom.Rect) {
	if self.target == nil {
		panic("can't draw with target == nil (tip: Renderer.SetTarget())")
	}
	if self.mode != Flat && self.sheet == nil {
		panic("can't draw textured glyphs with sheet == nil (tip: Renderer.SetSheet())")
	}
	for _, placement := range self.Layout(text, origin, bound) {
		drawGlyph(self.target, self.sheet, placement, self.color, self.mode, self.scale)
	}
}

// Fills the given rect on the renderer's target with the given
// colour. The colour is passed through to the backend unchanged. In
// [ScaledTextured] mode the rect is scaled like glyph placements
// are.
func (self *Renderer) FillRect(rect geom.Rect, color colour.Definition) {
	if self.target == nil {
		panic("can't fill with target == nil (tip: Renderer.SetTarget())")
	}
	if self.mode == ScaledTextured { rect = rect.Scale(self.scale) }
	fillRect(self.target, rect, color)
}
