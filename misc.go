package btxt

// Helper types shared across the package.

// Bound policies decide what happens when a glyph would exceed the
// right edge of the layout bound. See [Layout].
type BoundPolicy uint8
const (
	// Stop emitting glyphs at the first one that doesn't fit
	// horizontally. This is the default, and the right choice for
	// single-line rendering within a fixed-width field.
	Truncate BoundPolicy = iota

	// Move overflowing glyphs to the start of a new line. Glyphs
	// that don't fit vertically after wrapping are still truncated.
	Wrap
)

func (self BoundPolicy) String() string {
	switch self {
	case Truncate: return "Truncate"
	case Wrap: return "Wrap"
	default:
		return "UnknownBoundPolicy"
	}
}

// Render modes describe the capability of a backend target, selected
// once when the backend is set up. The layout engine itself is
// agnostic to the mode; only drawing differs.
type RenderMode uint8
const (
	// Glyph and fill rects are drawn as solid blocks of the
	// renderer's colour, ignoring the sheet image.
	Flat RenderMode = iota

	// Glyphs are blitted 1:1 from the sheet image. The default.
	Textured

	// Like Textured, but with an integer scale factor applied to
	// all destination rects. See [Renderer.SetScale].
	ScaledTextured
)

func (self RenderMode) String() string {
	switch self {
	case Flat: return "Flat"
	case Textured: return "Textured"
	case ScaledTextured: return "ScaledTextured"
	default:
		return "UnknownRenderMode"
	}
}
