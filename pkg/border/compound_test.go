package border

import (
	"testing"

	"github.com/go-drift/outline/pkg/graphics"
	"github.com/go-drift/outline/pkg/layout"
)

func TestCombineNestsUnmergeableOutlines(t *testing.T) {
	b := All(graphics.ColorRed, 2)
	c := NewCircle(NewSide(graphics.ColorBlue, 3))

	combined := Combine(b, c)
	compound, ok := combined.(compoundBorder)
	if !ok {
		t.Fatalf("unmergeable outlines should nest, got %T", combined)
	}
	if len(compound.shapes) != 2 {
		t.Fatalf("nested %d members, want 2", len(compound.shapes))
	}
	if _, ok := compound.shapes[0].(Border); !ok {
		t.Fatalf("first operand should be the outermost member, got %T", compound.shapes[0])
	}
	if _, ok := compound.shapes[1].(Circle); !ok {
		t.Fatalf("second operand should nest inside, got %T", compound.shapes[1])
	}
}

func TestCombineFlattensCompounds(t *testing.T) {
	inner := Combine(All(graphics.ColorRed, 1), NewCircle(NewSide(graphics.ColorBlue, 2)))
	outer := Combine(inner, NewRoundedRect(NewSide(graphics.ColorGreen, 3), RadiusCircular(4)))

	compound := outer.(compoundBorder)
	if len(compound.shapes) != 3 {
		t.Fatalf("flattened to %d members, want 3", len(compound.shapes))
	}
	for i, s := range compound.shapes {
		if _, ok := s.(compoundBorder); ok {
			t.Fatalf("member %d is a nested compound; the list must stay flat", i)
		}
	}
}

func TestCompoundAddPrependsWhenReversed(t *testing.T) {
	compound := Combine(All(graphics.ColorRed, 1), NewCircle(NewSide(graphics.ColorBlue, 2)))
	rounded := NewRoundedRect(NewSide(graphics.ColorGreen, 3), RadiusCircular(4))

	// Combine(rounded, compound): rounded declines, the compound absorbs
	// the rounded rect in reversed position, so it lands outermost.
	merged := Combine(rounded, compound).(compoundBorder)
	if len(merged.shapes) != 3 {
		t.Fatalf("merged %d members, want 3", len(merged.shapes))
	}
	if _, ok := merged.shapes[0].(RoundedRect); !ok {
		t.Fatalf("first operand should stay outermost, got %T", merged.shapes[0])
	}
}

func TestCompoundDimensionsSum(t *testing.T) {
	compound := Combine(All(graphics.ColorRed, 2), NewCircle(NewSide(graphics.ColorBlue, 3)))

	insets := compound.Dimensions().Resolve(layout.TextDirectionLTR)
	if insets != layout.EdgeInsetsAll(5) {
		t.Fatalf("summed insets = %+v, want uniform 5", insets)
	}
}

func TestCompoundIsUniform(t *testing.T) {
	uniform := Combine(All(graphics.ColorRed, 2), NewCircle(NewSide(graphics.ColorBlue, 3)))
	if !uniform.IsUniform() {
		t.Errorf("all members uniform, compound should report uniform")
	}

	lopsided := NewBorder(NewSide(graphics.ColorRed, 2), SideNone, SideNone, SideNone)
	mixed := Combine(lopsided, NewCircle(NewSide(graphics.ColorBlue, 3)))
	if mixed.IsUniform() {
		t.Errorf("a non-uniform member should make the compound non-uniform")
	}
}

func TestCompoundPaintNestsMembers(t *testing.T) {
	compound := Combine(All(graphics.ColorRed, 2), NewCircle(NewSide(graphics.ColorBlue, 4)))
	rect := graphics.RectFromLTWH(0, 0, 100, 60)

	ops := record(compound, rect, PaintOptions{})
	if len(ops) != 2 {
		t.Fatalf("recorded %d ops, want one per member", len(ops))
	}

	rectOp, ok := ops[0].(graphics.OpDrawRect)
	if !ok {
		t.Fatalf("first op is %T, want the border's OpDrawRect", ops[0])
	}
	if rectOp.Rect != rect.Deflate(1) {
		t.Fatalf("border stroke rect = %+v, want %+v", rectOp.Rect, rect.Deflate(1))
	}

	circleOp, ok := ops[1].(graphics.OpDrawCircle)
	if !ok {
		t.Fatalf("second op is %T, want the circle's OpDrawCircle", ops[1])
	}
	// The circle paints inside the border's 2px inset: a 96x56 rect.
	if circleOp.Center != (graphics.Offset{X: 50, Y: 30}) {
		t.Fatalf("circle center = %+v, want (50, 30)", circleOp.Center)
	}
	if circleOp.Radius != 26 {
		t.Fatalf("circle radius = %v, want (56-4)/2 = 26", circleOp.Radius)
	}
}

func TestCompoundPaintDropsHints(t *testing.T) {
	compound := Combine(All(graphics.ColorRed, 2), NewCircle(NewSide(graphics.ColorBlue, 4)))
	radius := RadiusCircular(8)

	// Hints apply to a lone rectangular border; members of a compound
	// define their own geometry, so the hint must not reach them (a
	// propagated radius would panic the nested circle pairing).
	ops := record(compound, graphics.RectFromLTWH(0, 0, 100, 60), PaintOptions{Radius: &radius})
	if len(ops) != 2 {
		t.Fatalf("recorded %d ops, want 2", len(ops))
	}
	if _, ok := ops[0].(graphics.OpDrawRect); !ok {
		t.Fatalf("border member should ignore the hint, got %T", ops[0])
	}
}

func TestCompoundPaths(t *testing.T) {
	compound := Combine(All(graphics.ColorRed, 2), NewCircle(NewSide(graphics.ColorBlue, 4)))
	rect := graphics.RectFromLTWH(0, 0, 100, 60)

	outer := pathBounds(t, compound.OuterPath(rect, layout.TextDirectionLTR))
	if outer != rect {
		t.Fatalf("outer path should come from the first member, bounds = %+v", outer)
	}

	// Inner path: rect deflated by the border's 2, then the circle's
	// inner circle of radius (56/2 - 4) = 24 centered at (50, 30).
	inner := pathBounds(t, compound.InnerPath(rect, layout.TextDirectionLTR))
	want := graphics.Rect{Left: 26, Top: 6, Right: 74, Bottom: 54}
	if inner != want {
		t.Fatalf("inner bounds = %+v, want %+v", inner, want)
	}
}

func TestLerpCompoundPairwise(t *testing.T) {
	a := Combine(All(graphics.ColorBlack, 2), NewCircle(NewSide(graphics.ColorBlack, 2)))
	b := Combine(All(graphics.ColorBlack, 6), NewCircle(NewSide(graphics.ColorBlack, 6)))

	mid := Lerp(a, b, 0.5).(compoundBorder)
	if len(mid.shapes) != 2 {
		t.Fatalf("pairwise lerp produced %d members, want 2", len(mid.shapes))
	}
	border, ok := mid.shapes[0].(Border)
	if !ok {
		t.Fatalf("first member is %T, want Border", mid.shapes[0])
	}
	if border.Top.Width != 4 {
		t.Fatalf("border width = %v, want 4", border.Top.Width)
	}
	circle, ok := mid.shapes[1].(Circle)
	if !ok {
		t.Fatalf("second member is %T, want Circle", mid.shapes[1])
	}
	if circle.Side.Width != 4 {
		t.Fatalf("circle width = %v, want 4", circle.Side.Width)
	}
}

func TestLerpCompoundUnpairableEmitsBoth(t *testing.T) {
	a := Combine(All(graphics.ColorRed, 2), NewCircle(NewSide(graphics.ColorRed, 2)))
	b := Combine(NewCircle(NewSide(graphics.ColorBlue, 4)), All(graphics.ColorBlue, 4))

	// Index 0 pairs a Border with a Circle; neither interpolates with the
	// other, so both appear: the incoming shape scaled by t first, then
	// the outgoing shape scaled by 1-t.
	mid := Lerp(a, b, 0.25).(compoundBorder)
	if len(mid.shapes) != 4 {
		t.Fatalf("lerp produced %d members, want 4", len(mid.shapes))
	}
	incoming, ok := mid.shapes[0].(Circle)
	if !ok {
		t.Fatalf("member 0 is %T, want the incoming Circle", mid.shapes[0])
	}
	if incoming.Side.Width != 1 {
		t.Fatalf("incoming width = %v, want 4 * 0.25 = 1", incoming.Side.Width)
	}
	outgoing, ok := mid.shapes[1].(Border)
	if !ok {
		t.Fatalf("member 1 is %T, want the outgoing Border", mid.shapes[1])
	}
	if outgoing.Top.Width != 1.5 {
		t.Fatalf("outgoing width = %v, want 2 * 0.75 = 1.5", outgoing.Top.Width)
	}
}

func TestLerpCompoundLengthMismatch(t *testing.T) {
	a := Combine(All(graphics.ColorBlack, 2), NewCircle(NewSide(graphics.ColorBlack, 2)))
	b := NewCircle(NewSide(graphics.ColorBlack, 6))

	// b expands to a singleton: index 0 lerps border-to-circle (which
	// fails pairwise and emits both), index 1 has only the outgoing
	// circle, which fades out.
	mid := Lerp(a, b, 0.5).(compoundBorder)
	if len(mid.shapes) != 3 {
		t.Fatalf("lerp produced %d members, want 3", len(mid.shapes))
	}
	fading, ok := mid.shapes[2].(Circle)
	if !ok {
		t.Fatalf("member 2 is %T, want the fading Circle", mid.shapes[2])
	}
	if fading.Side.Width != 1 {
		t.Fatalf("fading width = %v, want 2 * 0.5 = 1", fading.Side.Width)
	}
}

func TestLerpCompoundFromNil(t *testing.T) {
	c := Combine(All(graphics.ColorBlack, 4), NewCircle(NewSide(graphics.ColorBlack, 4)))

	mid := Lerp(nil, c, 0.5).(compoundBorder)
	if len(mid.shapes) != 2 {
		t.Fatalf("lerp from nothing produced %d members, want 2", len(mid.shapes))
	}
	border := mid.shapes[0].(Border)
	if border.Top.Width != 2 {
		t.Fatalf("border width = %v, want scaled to 2", border.Top.Width)
	}
}
