package btxt

import "github.com/ekelse/btxt/geom"

// Returns the dimensions of the area taken by the given text, like
// the package-level [Measure], but going through the renderer's
// measure cache when one has been set (see [Renderer.SetCache]()).
func (self *Renderer) Measure(text string) geom.Size {
	if self.metrics == nil {
		panic("can't measure text with metrics == nil (tip: Renderer.SetMetrics())")
	}
	if self.cache != nil {
		size, found := self.cache.GetSize(self.metrics.CacheID(), text)
		if found { return size }
	}
	size := Measure(self.metrics, text)
	if self.cache != nil {
		self.cache.PassSize(self.metrics.CacheID(), text, size)
	}
	return size
}

// Computes glyph placements like the package-level [Layout], but
// using the renderer's metrics, bound policy and alignment. With a
// non-left alignment the placements shift so that the given origin
// marks the right edge or center of the text instead of its left
// edge. In [Flat] mode the returned placements are untextured.
func (self *Renderer) Layout(text string, origin geom.Point, bound geom.Rect) []PlacedGlyph {
	if self.metrics == nil {
		panic("can't lay out text with metrics == nil (tip: Renderer.SetMetrics())")
	}
	if self.align != geom.Left {
		// no need for any layout calculations when already at the left
		origin.X -= self.align.Offset(self.Measure(text).W)
	}
	placements := Layout(self.metrics, text, origin, bound, self.policy)
	if self.mode == Flat {
		for i := range placements { placements[i].Textured = false }
	}
	return placements
}
