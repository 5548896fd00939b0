package geom

import "image"
import "strconv"

// A pair of integer pixel coordinates. Commonly used to keep track
// of the pen position while laying out text on a target surface.
//
// Coordinates can be negative, which allows points to double as
// relative offsets.
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Creates a point from a pair of ints.
func Pt(x, y int) Point {
	return Point{ X: x, Y: y }
}

// Creates a point from an [image.Point] stdlib value.
func FromImagePoint(point image.Point) Point {
	return Point{ X: point.X, Y: point.Y }
}

// Returns the point as an [image.Point] stdlib value.
func (self Point) ImagePoint() image.Point {
	return image.Pt(self.X, self.Y)
}

// Returns the result of adding the two points.
func (self Point) Add(point Point) Point {
	self.X += point.X
	self.Y += point.Y
	return self
}

// Returns the result of subtracting the given point.
func (self Point) Sub(point Point) Point {
	self.X -= point.X
	self.Y -= point.Y
	return self
}

// Returns the result of offsetting the point by the given deltas.
func (self Point) Offset(dx, dy int) Point {
	self.X += dx
	self.Y += dy
	return self
}

// Returns the result of multiplying both coordinates by the given
// integer factor.
func (self Point) Scale(factor int) Point {
	self.X *= factor
	self.Y *= factor
	return self
}

// Returns the result of multiplying both coordinates by the given
// float factor, rounding half away from zero. Backends use this for
// DPI scale adjustment; layout code sticks to exact integer math.
func (self Point) ScaleF(factor float64) Point {
	self.X = roundHalfAway(float64(self.X)*factor)
	self.Y = roundHalfAway(float64(self.Y)*factor)
	return self
}

// Returns whether the point falls inside the given [Rect].
func (self Point) In(rect Rect) bool {
	return rect.Contains(self)
}

// Lifts the point to a [Rect] of the given size, with the point
// placed at the given anchor of the new rect. For example, with
// [BottomRight] the new rect extends above and to the left of
// the point.
func (self Point) ToRect(size Size, anchor Anchor) Rect {
	min := self.Offset(-anchor.X.Offset(size.W), -anchor.Y.Offset(size.H))
	return Rect{ Min: min, Size: size }
}

// Returns a textual representation of the point (e.g.: "(3, -4)").
func (self Point) String() string {
	return "(" + strconv.Itoa(self.X) + ", " + strconv.Itoa(self.Y) + ")"
}

func roundHalfAway(value float64) int {
	if value >= 0 { return int(value + 0.5) }
	return -int(-value + 0.5)
}
