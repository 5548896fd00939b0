// btxt is a package for laying out and rendering proportional bitmap
// (pixel) fonts: fixed-height glyphs stored on a single sheet image,
// with per-byte advance widths, optional pair kerning and a
// truncate-or-wrap bounding policy.
//
// Common usage depends only on a couple types and a few functions.
// First, you compile the font metrics and grab the sheet image:
//   metrics, _, err := font.ParseFromPath("assets/fonts/medium.json")
//   if err != nil { ... }
//
// Then, you create a [Renderer]:
//   txtRenderer := btxt.NewRenderer()
//   txtRenderer.SetMetrics(metrics)
//   txtRenderer.SetSheet(sheet)
//
// Finally, you set a target and start drawing:
//   txtRenderer.SetTarget(screen)
//   txtRenderer.Draw("Hello world!", origin, bound)
//
// If you only need the glyph placements (e.g. to feed a custom
// backend), use [Layout] and [Measure] directly; both are pure
// functions over an immutable metrics set and are safe to call
// concurrently.
//
// Layout works on raw bytes in the ASCII and high-ASCII range.
// There is no Unicode shaping, hinting or anti-aliasing: bitmap
// fonts are drawn exactly as they appear on their sheets.
package btxt
