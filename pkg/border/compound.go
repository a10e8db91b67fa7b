package border

import (
	"github.com/go-drift/outline/pkg/graphics"
	"github.com/go-drift/outline/pkg/layout"
)

// compoundBorder is an ordered sequence of outlines that could not be
// merged algebraically. Members are nested: each paints inside the
// previous member's inset. The list is always flat; the constructor
// splices any compound operand's members in place of the operand.
type compoundBorder struct {
	shapes []Shape
}

func newCompound(shapes []Shape) compoundBorder {
	flat := make([]Shape, 0, len(shapes))
	for _, s := range shapes {
		switch member := s.(type) {
		case nil:
		case compoundBorder:
			flat = append(flat, member.shapes...)
		default:
			flat = append(flat, s)
		}
	}
	return compoundBorder{shapes: flat}
}

// Dimensions is the sum of all member insets; successive members are
// nested, each painted inside the previous one's inset.
func (c compoundBorder) Dimensions() layout.InsetsGeometry {
	parts := make([]layout.InsetsGeometry, len(c.shapes))
	for i, s := range c.shapes {
		parts[i] = s.Dimensions()
	}
	return layout.SumInsets(parts...)
}

// IsUniform reports whether every member is uniform.
func (c compoundBorder) IsUniform() bool {
	for _, s := range c.shapes {
		if !s.IsUniform() {
			return false
		}
	}
	return true
}

// Add nests the other outline into the member list: appended when this
// compound is the first operand, prepended when reversed.
func (c compoundBorder) Add(other Shape, reversed bool) (Shape, bool) {
	var merged []Shape
	if reversed {
		merged = append(merged, other)
		merged = append(merged, c.shapes...)
	} else {
		merged = append(merged, c.shapes...)
		merged = append(merged, other)
	}
	return newCompound(merged), true
}

// Scale scales every member.
func (c compoundBorder) Scale(t float64) Shape {
	scaled := make([]Shape, len(c.shapes))
	for i, s := range c.shapes {
		scaled[i] = s.Scale(t)
	}
	return compoundBorder{shapes: scaled}
}

// LerpFrom always succeeds; lerpCompound absorbs any operand kind.
func (c compoundBorder) LerpFrom(a Shape, t float64) (Shape, bool) {
	return lerpCompound(a, c, t), true
}

// LerpTo always succeeds; lerpCompound absorbs any operand kind.
func (c compoundBorder) LerpTo(b Shape, t float64) (Shape, bool) {
	return lerpCompound(c, b, t), true
}

// lerpCompound interpolates two outlines when at least one is compound.
// Both operands expand to member lists (a non-compound operand is a
// singleton, nil is empty) and are walked index-aligned. Pairs that
// interpolate directly produce one member; otherwise the incoming shape
// scaled by t is emitted before the outgoing shape scaled by 1-t, so the
// new outline's outer boundary takes priority earlier in the transition.
func lerpCompound(a, b Shape, t float64) Shape {
	aList := expandShapes(a)
	bList := expandShapes(b)
	length := len(aList)
	if len(bList) > length {
		length = len(bList)
	}
	results := make([]Shape, 0, length)
	for i := 0; i < length; i++ {
		var localA, localB Shape
		if i < len(aList) {
			localA = aList[i]
		}
		if i < len(bList) {
			localB = bList[i]
		}
		if localA != nil && localB != nil {
			if result, ok := localA.LerpTo(localB, t); ok {
				results = append(results, result)
				continue
			}
			if result, ok := localB.LerpFrom(localA, t); ok {
				results = append(results, result)
				continue
			}
		}
		if localB != nil {
			results = append(results, localB.Scale(t))
		}
		if localA != nil {
			results = append(results, localA.Scale(1-t))
		}
	}
	return newCompound(results)
}

func expandShapes(s Shape) []Shape {
	switch shape := s.(type) {
	case nil:
		return nil
	case compoundBorder:
		return shape.shapes
	default:
		return []Shape{s}
	}
}

// OuterPath is the first member's outer path; the outermost boundary wins.
func (c compoundBorder) OuterPath(rect graphics.Rect, direction layout.TextDirection) *graphics.Path {
	if len(c.shapes) == 0 {
		return graphics.NewPath()
	}
	return c.shapes[0].OuterPath(rect, direction)
}

// InnerPath deflates the rect by every member's inset except the last,
// then takes the last member's inner path.
func (c compoundBorder) InnerPath(rect graphics.Rect, direction layout.TextDirection) *graphics.Path {
	if len(c.shapes) == 0 {
		return graphics.NewPath()
	}
	for _, s := range c.shapes[:len(c.shapes)-1] {
		rect = s.Dimensions().Resolve(direction).DeflateRect(rect)
	}
	return c.shapes[len(c.shapes)-1].InnerPath(rect, direction)
}

// Paint paints each member into a progressively deflated rect. Shape
// hints do not propagate; nested members define their own geometry.
func (c compoundBorder) Paint(canvas graphics.Canvas, rect graphics.Rect, opts PaintOptions) {
	for _, s := range c.shapes {
		s.Paint(canvas, rect, PaintOptions{Direction: opts.Direction})
		rect = s.Dimensions().Resolve(opts.Direction).DeflateRect(rect)
	}
}
