// The colour subpackage provides the plain RGBA colour definitions
// used for glyph tinting and rect fills, plus a default EGA palette.
//
// btxt passes colours through to the rendering backend unchanged:
// any gamma or colour-space conversion belongs to the backend's
// shading stage, never to layout or draw calls.
package colour

import "image/color"

// A plain, non-premultiplied RGBA colour definition.
//
// The zero value is transparent black.
type Definition struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
	A uint8 `json:"a"`
}

// Creates an opaque colour definition from the given channels.
func RGB(r, g, b uint8) Definition {
	return Definition{ R: r, G: g, B: b, A: 255 }
}

// Creates a colour definition from the given channels.
func RGBA(r, g, b, a uint8) Definition {
	return Definition{ R: r, G: g, B: b, A: a }
}

// Implements [color.Color] with the usual alpha-premultiplied
// conversion, so definitions can be used directly with stdlib
// image operations.
func (self Definition) RGBA() (r, g, b, a uint32) {
	return color.NRGBA{ R: self.R, G: self.G, B: self.B, A: self.A }.RGBA()
}

// Returns the colour channels as premultiplied floats in [0, 1],
// the form expected by colour matrices on GPU backends.
func (self Definition) Floats() (r, g, b, a float64) {
	a = float64(self.A)/255.0
	r = (float64(self.R)/255.0)*a
	g = (float64(self.G)/255.0)*a
	b = (float64(self.B)/255.0)*a
	return r, g, b, a
}
