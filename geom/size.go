package geom

import "strconv"

// A two-dimensional size in pixels. Sizes are expected to be
// non-negative; operations that could produce a negative dimension
// clamp it to zero instead.
type Size struct {
	W int `json:"w"`
	H int `json:"h"`
}

// Returns whether either dimension is zero or below.
func (self Size) Empty() bool {
	return self.W <= 0 || self.H <= 0
}

// Returns the size with any negative dimension clamped to zero.
func (self Size) Clamp() Size {
	if self.W < 0 { self.W = 0 }
	if self.H < 0 { self.H = 0 }
	return self
}

// Returns the result of growing both dimensions by the given amount.
// To shrink, grow by a negative amount. Neither dimension will shrink
// past zero.
func (self Size) Grow(amount int) Size {
	self.W += amount
	self.H += amount
	return self.Clamp()
}

// Returns the result of multiplying both dimensions by the given
// integer factor.
func (self Size) Scale(factor int) Size {
	self.W *= factor
	self.H *= factor
	return self
}

// Returns the result of multiplying both dimensions by the given
// float factor, rounding half away from zero.
func (self Size) ScaleF(factor float64) Size {
	self.W = roundHalfAway(float64(self.W)*factor)
	self.H = roundHalfAway(float64(self.H)*factor)
	return self
}

// Returns a size that is the maximum of both sizes horizontally and
// their sum vertically, as if the two were stacked in a column.
func (self Size) StackVert(other Size) Size {
	if other.W > self.W { self.W = other.W }
	self.H += other.H
	return self
}

// Returns a size that is the maximum of both sizes vertically and
// their sum horizontally, as if the two were placed in a row.
func (self Size) StackHorz(other Size) Size {
	self.W += other.W
	if other.H > self.H { self.H = other.H }
	return self
}

// Returns a textual representation of the size (e.g.: "8x10").
func (self Size) String() string {
	return strconv.Itoa(self.W) + "x" + strconv.Itoa(self.H)
}
