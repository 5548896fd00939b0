package geom

// Horizontal anchors. See [Anchor].
type AnchorX uint8
const (
	Left AnchorX = iota
	CenterX
	Right
)

// Returns the offset from the left edge of this anchor within an
// object of the given width. Centering on odd widths rounds towards
// the left.
func (self AnchorX) Offset(width int) int {
	switch self {
	case Left: return 0
	case CenterX: return width/2
	default: return width
	}
}

func (self AnchorX) String() string {
	switch self {
	case Left: return "Left"
	case CenterX: return "CenterX"
	case Right: return "Right"
	default:
		return "UnknownAnchorX"
	}
}

// Vertical anchors. See [Anchor].
type AnchorY uint8
const (
	Top AnchorY = iota
	CenterY
	Bottom
)

// Returns the offset from the top edge of this anchor within an
// object of the given height. Centering on odd heights rounds
// towards the top.
func (self AnchorY) Offset(height int) int {
	switch self {
	case Top: return 0
	case CenterY: return height/2
	default: return height
	}
}

func (self AnchorY) String() string {
	switch self {
	case Top: return "Top"
	case CenterY: return "CenterY"
	case Bottom: return "Bottom"
	default:
		return "UnknownAnchorY"
	}
}

// A two-dimensional anchor, naming a reference position on a rect
// (or on an object about to be lifted to a rect, see [Point.ToRect]).
//
// The zero anchor is top-left, which is the natural reference for
// left-to-right text flowing from the top of its bounding area.
type Anchor struct {
	X AnchorX
	Y AnchorY
}

var (
	TopLeft     = Anchor{ X: Left , Y: Top    }
	TopRight    = Anchor{ X: Right, Y: Top    }
	BottomLeft  = Anchor{ X: Left , Y: Bottom }
	BottomRight = Anchor{ X: Right, Y: Bottom }
	Center      = Anchor{ X: CenterX, Y: CenterY }
)
