package graphics

import "testing"

func TestRectAccessors(t *testing.T) {
	rect := RectFromLTWH(10, 20, 100, 50)
	if rect.Width() != 100 || rect.Height() != 50 {
		t.Fatalf("size = %v x %v", rect.Width(), rect.Height())
	}
	if rect.Center() != (Offset{X: 60, Y: 45}) {
		t.Fatalf("center = %+v", rect.Center())
	}
	if rect.ShortestSide() != 50 {
		t.Fatalf("shortest side = %v, want 50", rect.ShortestSide())
	}
}

func TestRectDeflateInflate(t *testing.T) {
	rect := RectFromLTWH(0, 0, 100, 50)
	deflated := rect.Deflate(10)
	if deflated != (Rect{Left: 10, Top: 10, Right: 90, Bottom: 40}) {
		t.Fatalf("deflated = %+v", deflated)
	}
	if deflated.Inflate(10) != rect {
		t.Fatalf("inflate should undo deflate")
	}
	if !rect.Deflate(30).IsEmpty() {
		t.Fatalf("over-deflated rect should be empty")
	}
}

func TestRectFromCircle(t *testing.T) {
	rect := RectFromCircle(Offset{X: 50, Y: 30}, 20)
	if rect != (Rect{Left: 30, Top: 10, Right: 70, Bottom: 50}) {
		t.Fatalf("rect = %+v", rect)
	}
}

func TestRectIntersectUnion(t *testing.T) {
	a := RectFromLTWH(0, 0, 50, 50)
	b := RectFromLTWH(25, 25, 50, 50)

	if a.Intersect(b) != (Rect{Left: 25, Top: 25, Right: 50, Bottom: 50}) {
		t.Fatalf("intersect = %+v", a.Intersect(b))
	}
	if a.Union(b) != (Rect{Left: 0, Top: 0, Right: 75, Bottom: 75}) {
		t.Fatalf("union = %+v", a.Union(b))
	}
	disjoint := RectFromLTWH(100, 100, 10, 10)
	if !a.Intersect(disjoint).IsEmpty() {
		t.Fatalf("disjoint intersect should be empty")
	}
}

func TestRRectDeflateFloorsRadii(t *testing.T) {
	rrect := RRectFromRectAndRadius(RectFromLTWH(0, 0, 100, 100), CircularRadius(8))

	deflated := rrect.Deflate(3)
	if deflated.Rect != (Rect{Left: 3, Top: 3, Right: 97, Bottom: 97}) {
		t.Fatalf("deflated rect = %+v", deflated.Rect)
	}
	if deflated.TopLeft.X != 5 {
		t.Fatalf("deflated radius = %v, want 5", deflated.TopLeft.X)
	}

	square := rrect.Deflate(12)
	if square.TopLeft.X != 0 || square.BottomRight.Y != 0 {
		t.Fatalf("radii deflated past zero should floor at a square corner, got %+v", square)
	}
}

func TestRRectUniformRadius(t *testing.T) {
	uniform := RRectFromRectAndRadius(RectFromLTWH(0, 0, 10, 10), CircularRadius(4))
	if uniform.UniformRadius() != 4 {
		t.Fatalf("uniform radius = %v, want 4", uniform.UniformRadius())
	}

	mixed := uniform
	mixed.TopRight = CircularRadius(2)
	if mixed.UniformRadius() != 0 {
		t.Fatalf("mixed corners should report 0, got %v", mixed.UniformRadius())
	}
}

func TestLerp(t *testing.T) {
	if Lerp(0, 10, 0.5) != 5 {
		t.Errorf("Lerp(0, 10, 0.5) = %v", Lerp(0, 10, 0.5))
	}
	if Lerp(4, 8, 0) != 4 || Lerp(4, 8, 1) != 8 {
		t.Errorf("lerp endpoints should be exact")
	}
	if Lerp(10, 0, 0.25) != 7.5 {
		t.Errorf("Lerp(10, 0, 0.25) = %v", Lerp(10, 0, 0.25))
	}
}
