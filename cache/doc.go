// The cache subpackage provides an optional cache for text
// measurements.
//
// Measuring a proportional bitmap string requires the same
// byte-by-byte walk as rendering it, so UIs that re-measure the same
// labels every frame can save that walk by setting a cache on their
// renderer (see btxt's Renderer.SetCache). This is a pure
// optimization: cached and uncached measurements are always
// identical.
//
// Most programs are fine with [NewDefaultCache]. The [MeasureCache]
// interface exists for the rare cases where a custom policy is
// needed.
package cache
