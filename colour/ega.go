package colour

// An eight-colour base palette. See [EGA].
type Base struct {
	Black   Definition
	Blue    Definition
	Green   Definition
	Cyan    Definition
	Red     Definition
	Magenta Definition
	Yellow  Definition
	White   Definition
}

// An EGA-style palette with dark and bright variants of each base
// colour.
type Palette struct {
	Dark   Base
	Bright Base
}

// The default EGA palette. This is both an example of how one might
// set up a colour map and a useful set of defaults in its own right.
var EGA = Palette{
	Dark: Base{
		Black  : RGB(0x00, 0x00, 0x00),
		Blue   : RGB(0x00, 0x00, 0xAA),
		Green  : RGB(0x00, 0xAA, 0x00),
		Cyan   : RGB(0x00, 0xAA, 0xAA),
		Red    : RGB(0xAA, 0x00, 0x00),
		Magenta: RGB(0xAA, 0x00, 0xAA),
		Yellow : RGB(0xAA, 0x55, 0x00),
		White  : RGB(0xAA, 0xAA, 0xAA),
	},
	Bright: Base{
		Black  : RGB(0x55, 0x55, 0x55),
		Blue   : RGB(0x55, 0x55, 0xFF),
		Green  : RGB(0x55, 0xFF, 0x55),
		Cyan   : RGB(0x55, 0xFF, 0xFF),
		Red    : RGB(0xFF, 0x55, 0x55),
		Magenta: RGB(0xFF, 0x55, 0xFF),
		Yellow : RGB(0xFF, 0xFF, 0x55),
		White  : RGB(0xFF, 0xFF, 0xFF),
	},
}
