package btxt

import "testing"

import "github.com/ekelse/btxt/cache"
import "github.com/ekelse/btxt/geom"

const benchText = "The quick brown fox\njumps over\nthe lazy dog."

func BenchmarkLayout(b *testing.B) {
	metrics := propKernedMetrics(b)
	bound := geom.NewRect(0, 0, 200, 200)
	b.ResetTimer()
	for i := 0; i < b.N; i += 1 {
		_ = Layout(metrics, benchText, geom.Pt(0, 0), bound, Wrap)
	}
}

func BenchmarkMeasure(b *testing.B) {
	metrics := propKernedMetrics(b)
	b.ResetTimer()
	for i := 0; i < b.N; i += 1 {
		_ = Measure(metrics, benchText)
	}
}

func BenchmarkMeasureCached(b *testing.B) {
	renderer := NewRenderer()
	renderer.SetMetrics(propKernedMetrics(b))
	renderer.SetCache(cache.NewDefaultCache(1024*1024))
	_ = renderer.Measure(benchText) // warm the cache
	b.ResetTimer()
	for i := 0; i < b.N; i += 1 {
		_ = renderer.Measure(benchText)
	}
}

// Alternating strings defeat any single-entry memoization, which is
// closer to how interactive programs re-lay-out changing text.
func BenchmarkLayoutAlternating(b *testing.B) {
	metrics := propKernedMetrics(b)
	bound := geom.NewRect(0, 0, 200, 200)
	texts := [2]string{ "Hello, world!", "Goodbye, world?" }
	b.ResetTimer()
	for i := 0; i < b.N; i += 1 {
		_ = Layout(metrics, texts[i%2], geom.Pt(0, 0), bound, Truncate)
	}
}
