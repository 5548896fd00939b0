package geom

import "testing"

func TestRectDerivedEdges(t *testing.T) {
	r := NewRect(2, 3, 8, 10)
	if r.Right() != 10 { t.Fatalf("expected right 10, got %d", r.Right()) }
	if r.Bottom() != 13 { t.Fatalf("expected bottom 13, got %d", r.Bottom()) }
	if r.Max() != Pt(10, 13) { t.Fatalf("expected max (10, 13), got %s", r.Max()) }
	if r.Center() != Pt(6, 8) { t.Fatalf("expected center (6, 8), got %s", r.Center()) }
}

func TestRectFromPoints(t *testing.T) {
	tl, br := Pt(20, 45), Pt(55, 70)
	r := FromPoints(tl, br)
	if r.Min != tl { t.Fatal("bad min") }
	if r.Max() != br { t.Fatal("bad max") }

	// inverted corners clamp to a zero size
	r = FromPoints(br, tl)
	if !r.Empty() { t.Fatalf("expected empty rect, got %s", r) }
}

func TestRectAnchor(t *testing.T) {
	r := NewRect(0, 0, 320, 240)
	if r.Anchor(TopLeft) != Pt(0, 0) { t.Fatal("bad TopLeft") }
	if r.Anchor(BottomRight) != Pt(320, 240) { t.Fatal("bad BottomRight") }
	if r.Anchor(Center) != Pt(160, 120) { t.Fatal("bad Center") }
	if r.Anchor(Anchor{ X: Right, Y: Top }) != Pt(320, 0) { t.Fatal("bad TopRight") }
}

func TestRectAddGrowScale(t *testing.T) {
	r := NewRect(1, 2, 4, 6)
	if r.Add(Pt(10, 20)) != NewRect(11, 22, 4, 6) { t.Fatal("bad Add") }
	if r != NewRect(1, 2, 4, 6) { t.Fatal("Add must not mutate the receiver") }

	if r.Grow(2) != NewRect(-1, 0, 8, 10) { t.Fatal("bad Grow") }
	if NewRect(0, 0, 4, 6).Grow(-4) != NewRect(4, 4, 0, 0) {
		t.Fatal("Grow must clamp sizes at zero")
	}

	if r.Scale(2) != NewRect(2, 4, 8, 12) { t.Fatal("bad Scale") }
	if r.ScaleF(1.5) != NewRect(2, 3, 6, 9) { t.Fatal("bad ScaleF") }
}

func TestRectContains(t *testing.T) {
	r := NewRect(2, 2, 4, 4)
	if !r.Contains(Pt(2, 2)) { t.Fatal("min corner must be inside") }
	if !r.Contains(Pt(5, 5)) { t.Fatal("last pixel must be inside") }
	if r.Contains(Pt(6, 5)) { t.Fatal("right edge must be exclusive") }
	if r.Contains(Pt(5, 6)) { t.Fatal("bottom edge must be exclusive") }
	if !Pt(3, 3).In(r) { t.Fatal("Point.In must agree with Rect.Contains") }
}

func TestRectIntersectUnion(t *testing.T) {
	a := NewRect(0, 0, 10, 10)
	b := NewRect(5, 5, 10, 10)
	if a.Intersect(b) != NewRect(5, 5, 5, 5) { t.Fatal("bad Intersect") }
	if a.Union(b) != NewRect(0, 0, 15, 15) { t.Fatal("bad Union") }
	if !a.Overlaps(b) { t.Fatal("expected overlap") }

	c := NewRect(20, 20, 2, 2)
	if a.Overlaps(c) { t.Fatal("expected no overlap") }
	if !a.Intersect(c).Empty() { t.Fatal("disjoint intersection must be empty") }
}

func TestRectImageInterop(t *testing.T) {
	r := NewRect(1, 2, 3, 4)
	if FromImageRect(r.ImageRect()) != r { t.Fatal("image.Rectangle round trip failed") }
}
