// The font subpackage models proportional bitmap fonts: fixed-height
// glyphs stored on a single sheet image, with per-byte advance widths
// and optional pair kerning.
//
// The main type is [Metrics], an immutable table mapping byte values
// to glyph sheet locations and advances. A [Metrics] is compiled once
// from a [Spec] (typically parsed from a small JSON file living next
// to the sheet image) and can then be shared freely across goroutines
// and renderers.
//
// A [Library] is also provided to manage multiple metrics sets by
// name. Using a Library is rather uncommon, as most programs use only
// a couple fonts and will generally be better off avoiding the
// abstraction.
package font
