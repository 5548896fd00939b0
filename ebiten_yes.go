//go:build !gtxt

package btxt

import "github.com/hajimehoshi/ebiten/v2"

import "github.com/ekelse/btxt/geom"
import "github.com/ekelse/btxt/colour"

// Alias to allow compiling the package without Ebitengine (gtxt
// version).
//
// Without Ebitengine, Target defaults to [image/draw.Image].
type Target = *ebiten.Image

// The image holding every glyph of a font at fixed height, addressed
// through the source rects that [Layout] emits.
//
// Without Ebitengine (gtxt version), Sheet defaults to [image.Image].
type Sheet = *ebiten.Image

// Blits a single glyph placement onto the target. Flat mode and
// untextured placements fall back to solid fills.
func drawGlyph(target Target, sheet Sheet, placement PlacedGlyph, color colour.Definition, mode RenderMode, scale int) {
	dst := placement.Dst
	if mode == ScaledTextured { dst = dst.Scale(scale) }
	if !placement.Textured || mode == Flat {
		fillRect(target, dst, color)
		return
	}

	glyph := sheet.SubImage(placement.Src.ImageRect()).(*ebiten.Image)
	opts := ebiten.DrawImageOptions{}
	if mode == ScaledTextured {
		opts.GeoM.Scale(float64(scale), float64(scale))
	}
	opts.GeoM.Translate(float64(dst.Min.X), float64(dst.Min.Y))
	r, g, b, a := color.Floats()
	opts.ColorM.Scale(r, g, b, a)
	target.DrawImage(glyph, &opts)
}

// Fills a rect on the target with the given colour, as is. Any
// gamma or clip-space conversion happens later, in Ebitengine's own
// shading stage.
func fillRect(target Target, rect geom.Rect, color colour.Definition) {
	if rect.Empty() { return }
	target.SubImage(rect.ImageRect()).(*ebiten.Image).Fill(color)
}
