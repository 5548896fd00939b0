//go:build gtxt

package btxt

import "image"
import "image/draw"

import xdraw "golang.org/x/image/draw"

import "github.com/ekelse/btxt/geom"
import "github.com/ekelse/btxt/colour"

type Target = draw.Image
type Sheet = image.Image

// Blits a single glyph placement onto the target. Flat mode and
// untextured placements fall back to solid fills; scaled mode uses
// nearest-neighbour scaling, as anything smoother would smear pixel
// glyphs.
func drawGlyph(target Target, sheet Sheet, placement PlacedGlyph, color colour.Definition, mode RenderMode, scale int) {
	dst := placement.Dst
	if mode == ScaledTextured { dst = dst.Scale(scale) }
	if !placement.Textured || mode == Flat {
		fillRect(target, dst, color)
		return
	}

	if mode == ScaledTextured {
		xdraw.NearestNeighbor.Scale(target, dst.ImageRect(), sheet, placement.Src.ImageRect(), draw.Over, nil)
		return
	}
	draw.Draw(target, dst.ImageRect(), sheet, placement.Src.Min.ImagePoint(), draw.Over)
}

// Fills a rect on the target with the given colour, as is.
func fillRect(target Target, rect geom.Rect, color colour.Definition) {
	if rect.Empty() { return }
	draw.Draw(target, rect.ImageRect(), image.NewUniform(color), image.Point{}, draw.Over)
}
