package btxt

import "testing"

import "github.com/ekelse/btxt/font"
import "github.com/ekelse/btxt/geom"

// An 8x10 font with 1px horizontal and 2px vertical padding, so
// every glyph advances by 8 and lines are 12 apart.
func uniformMetrics(t testing.TB) *font.Metrics {
	t.Helper()
	spec := font.Spec{
		Char: geom.Size{ W: 8, H: 10 },
		Pad : geom.Pt(1, 2),
	}
	metrics, err := spec.Compile()
	if err != nil { t.Fatalf("unexpected compile error: %s", err) }
	return metrics
}

// Like uniformMetrics, but with narrow 'i'/'l' glyphs and a kerning
// override collapsing the space in "To"-like pairs.
func propKernedMetrics(t testing.TB) *font.Metrics {
	t.Helper()
	spec := font.Spec{
		Char: geom.Size{ W: 8, H: 10 },
		Pad : geom.Pt(1, 2),
		WidthOverrides: map[string]int{ "il.": 3 },
		Kerning: font.KerningSpec{
			Left : map[string]string{ "overhang": "TfF" },
			Right: map[string]string{ "short": "aeo." },
			Pairs: []font.KerningPair{
				{ Left: "overhang", Right: "short", Spacing: 0 },
			},
		},
	}
	metrics, err := spec.Compile()
	if err != nil { t.Fatalf("unexpected compile error: %s", err) }
	return metrics
}

// A generously sized layout area for tests that shouldn't truncate.
func wideBound() geom.Rect {
	return geom.NewRect(0, 0, 10_000, 10_000)
}
