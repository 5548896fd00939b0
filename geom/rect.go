package geom

import "image"

// An axis-aligned rectangle, stored as a top-left corner plus a
// [Size]. Unlike [image.Rectangle] there is no Max field: the right
// and bottom edges are always computed from the size, so they can't
// drift. The behavior for rects with negative sizes is undefined.
type Rect struct {
	Min  Point
	Size Size
}

// Creates a rect with top-left at (x, y) and the given dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{
		Min : Point{ X: x, Y: y },
		Size: Size{ W: w, H: h },
	}
}

// Creates a rect spanning the two given corners. If max is not to
// the bottom-right of min, the offending dimensions clamp to zero.
func FromPoints(min, max Point) Rect {
	size := Size{ W: max.X - min.X, H: max.Y - min.Y }
	return Rect{ Min: min, Size: size.Clamp() }
}

// Creates a rect from an [image.Rectangle] stdlib value.
func FromImageRect(rect image.Rectangle) Rect {
	return FromPoints(FromImagePoint(rect.Min), FromImagePoint(rect.Max))
}

// Returns the rect as an [image.Rectangle] stdlib value.
func (self Rect) ImageRect() image.Rectangle {
	return image.Rect(self.Min.X, self.Min.Y, self.Right(), self.Bottom())
}

// Returns the x coordinate of the right edge. Like [image.Rectangle],
// the right edge is exclusive: a one-pixel-wide rect at x = 0 has
// Right() == 1.
func (self Rect) Right() int {
	return self.Min.X + self.Size.W
}

// Returns the y coordinate of the bottom edge (exclusive).
func (self Rect) Bottom() int {
	return self.Min.Y + self.Size.H
}

// Returns the bottom-right corner (exclusive on both axes).
func (self Rect) Max() Point {
	return Point{ X: self.Right(), Y: self.Bottom() }
}

// Returns the center of the rect, rounding towards the top-left on
// odd dimensions.
func (self Rect) Center() Point {
	return self.Min.Offset(self.Size.W/2, self.Size.H/2)
}

// Returns whether either dimension of the rect is zero or below.
func (self Rect) Empty() bool {
	return self.Size.Empty()
}

// Returns the position of the given anchor on the rect. For example,
// Anchor([BottomRight]) is equivalent to [Rect.Max]().
func (self Rect) Anchor(anchor Anchor) Point {
	return self.Min.Offset(anchor.X.Offset(self.Size.W), anchor.Y.Offset(self.Size.H))
}

// Returns the result of translating the rect by the given point.
func (self Rect) Add(point Point) Rect {
	self.Min = self.Min.Add(point)
	return self
}

// Returns the result of growing the rect by the given amount on each
// side. To shrink, grow by a negative amount.
func (self Rect) Grow(amount int) Rect {
	self.Min = self.Min.Offset(-amount, -amount)
	self.Size = self.Size.Grow(amount*2)
	return self
}

// Returns the result of scaling the rect by the given integer factor,
// about the coordinate origin (both corner and size are scaled).
func (self Rect) Scale(factor int) Rect {
	self.Min = self.Min.Scale(factor)
	self.Size = self.Size.Scale(factor)
	return self
}

// Returns the result of scaling the rect by the given float factor,
// about the coordinate origin. Coordinates round half away from zero.
func (self Rect) ScaleF(factor float64) Rect {
	self.Min = self.Min.ScaleF(factor)
	self.Size = self.Size.ScaleF(factor)
	return self
}

// Returns whether the given point falls inside the rect. Points on
// the right or bottom edges are outside, matching [image.Rectangle]
// conventions.
func (self Rect) Contains(point Point) bool {
	return point.X >= self.Min.X && point.X < self.Right() &&
		point.Y >= self.Min.Y && point.Y < self.Bottom()
}

// Returns whether the two rects have any point in common.
func (self Rect) Overlaps(other Rect) bool {
	return !self.Intersect(other).Empty()
}

// Returns the largest rect contained by both given rects. If the
// rects don't overlap, the result will be empty.
func (self Rect) Intersect(other Rect) Rect {
	min := Point{ X: maxInt(self.Min.X, other.Min.X), Y: maxInt(self.Min.Y, other.Min.Y) }
	max := Point{ X: minInt(self.Right(), other.Right()), Y: minInt(self.Bottom(), other.Bottom()) }
	return FromPoints(min, max)
}

// Returns the smallest rect containing both given rects.
func (self Rect) Union(other Rect) Rect {
	min := Point{ X: minInt(self.Min.X, other.Min.X), Y: minInt(self.Min.Y, other.Min.Y) }
	max := Point{ X: maxInt(self.Right(), other.Right()), Y: maxInt(self.Bottom(), other.Bottom()) }
	return FromPoints(min, max)
}

// Returns a textual representation of the rect
// (e.g.: "(0, 0) 8x10").
func (self Rect) String() string {
	return self.Min.String() + " " + self.Size.String()
}

func minInt(a, b int) int {
	if a < b { return a }
	return b
}

func maxInt(a, b int) int {
	if a > b { return a }
	return b
}
