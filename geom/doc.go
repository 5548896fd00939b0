// geom provides the integer pixel geometry used throughout btxt:
// [Point], [Size], [Rect] and [Anchor].
//
// All values are plain pixel coordinates and all operations are exact
// integer arithmetic. Every operation returns a new value; nothing is
// mutated in place. The only place where rounding can happen is the
// *F float scaling variants, which round half away from zero and say
// so in their documentation.
//
// Unlike [image.Rectangle], a [Rect] is stored as a top-left corner
// plus a size. The right and bottom edges are always derived, never
// stored, so they can't drift out of sync with the size.
package geom
