package colour

import "testing"
import "image/color"

func TestDefinitionAsColor(t *testing.T) {
	var _ color.Color = Definition{} // interface conformance

	opaque := RGB(0xAA, 0x55, 0x00)
	r, g, b, a := opaque.RGBA()
	want := color.NRGBA{ R: 0xAA, G: 0x55, B: 0x00, A: 0xFF }
	wr, wg, wb, wa := want.RGBA()
	if r != wr || g != wg || b != wb || a != wa {
		t.Fatal("RGBA conversion mismatch with color.NRGBA")
	}
}

func TestDefinitionFloats(t *testing.T) {
	r, g, b, a := RGBA(255, 0, 255, 255).Floats()
	if r != 1 || g != 0 || b != 1 || a != 1 { t.Fatal("bad opaque floats") }

	r, g, b, a = RGBA(255, 255, 255, 0).Floats()
	if r != 0 || g != 0 || b != 0 || a != 0 {
		t.Fatal("fully transparent must premultiply to zero")
	}
}

func TestEGAPalette(t *testing.T) {
	if EGA.Dark.Yellow != RGB(0xAA, 0x55, 0x00) { t.Fatal("dark yellow must be the EGA brown") }
	if EGA.Bright.White != RGB(0xFF, 0xFF, 0xFF) { t.Fatal("bad bright white") }
	if EGA.Dark.Black.A != 255 { t.Fatal("palette colours must be opaque") }
}
