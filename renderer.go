package btxt

import "github.com/ekelse/btxt/font"
import "github.com/ekelse/btxt/geom"
import "github.com/ekelse/btxt/cache"
import "github.com/ekelse/btxt/colour"

// This file contains the Renderer type definition and all the getter
// and setter methods. Actual operations are split in other files.

// The [Renderer] wraps the pure [Layout] and [Measure] functions
// with the state that practical text drawing needs: a metrics set, a
// sheet image, a target, alignment, colour, bound policy and an
// optional measure cache.
//
// The zero value is not directly usable; create renderers through
// [NewRenderer]() and set a metrics set before operating. To draw
// you will also need a target and, except in [Flat] mode, the
// font's sheet image.
//
// Renderers are not concurrent-safe. Use one per goroutine, or stick
// to the stateless [Layout]/[Measure] functions, which are.
type Renderer struct {
	metrics *font.Metrics
	target  Target
	sheet   Sheet
	cache   cache.MeasureCache
	color   colour.Definition
	align   geom.AnchorX
	policy  BoundPolicy
	mode    RenderMode
	scale   int
}

// Creates a new [Renderer] with the following defaults: white
// colour, left alignment, [Truncate] bound policy, [Textured]
// render mode and a scale of 1.
func NewRenderer() *Renderer {
	return &Renderer{
		color : colour.RGB(255, 255, 255),
		align : geom.Left,
		policy: Truncate,
		mode  : Textured,
		scale : 1,
	}
}

// Sets the font metrics to be used on subsequent operations.
func (self *Renderer) SetMetrics(metrics *font.Metrics) { self.metrics = metrics }

// Returns the current font metrics, which may be nil.
func (self *Renderer) GetMetrics() *font.Metrics { return self.metrics }

// Sets the glyph sheet image for the current font. Required for
// drawing in any mode other than [Flat].
func (self *Renderer) SetSheet(sheet Sheet) { self.sheet = sheet }

// Sets the rendering target. See also [Renderer.SetRenderMode]().
func (self *Renderer) SetTarget(target Target) { self.target = target }

// Sets the render mode. The mode is a capability of the backend
// target, so set it once when configuring the backend, not per draw
// call.
func (self *Renderer) SetRenderMode(mode RenderMode) { self.mode = mode }

// Returns the current render mode.
func (self *Renderer) GetRenderMode() RenderMode { return self.mode }

// Sets the integer scale factor applied in [ScaledTextured] mode.
// Scales below 1 will panic.
func (self *Renderer) SetScale(scale int) {
	if scale < 1 { panic("scale < 1") } // likely a dev mistake
	self.scale = scale
}

// Sets the horizontal alignment for drawing and layout operations.
// With [geom.Right], the given origin marks the right edge of the
// text; with [geom.CenterX], its center.
func (self *Renderer) SetAlign(align geom.AnchorX) { self.align = align }

// Sets the bound policy for drawing and layout operations.
func (self *Renderer) SetPolicy(policy BoundPolicy) { self.policy = policy }

// Sets the colour used for [Flat] drawing, glyph tinting (where the
// backend supports it) and nothing else. Layout ignores colours, and
// btxt never converts them: they reach the backend exactly as given.
func (self *Renderer) SetColor(color colour.Definition) { self.color = color }

// Returns the current drawing colour.
func (self *Renderer) GetColor() colour.Definition { return self.color }

// Sets the cache consulted by [Renderer.Measure](). A nil cache
// (the default) disables caching. Caching is a pure optimization;
// results are identical either way.
func (self *Renderer) SetCache(measureCache cache.MeasureCache) { self.cache = measureCache }
