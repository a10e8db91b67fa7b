package border

import (
	"math"

	"github.com/go-drift/outline/pkg/graphics"
	"github.com/go-drift/outline/pkg/layout"
)

// Circle is a circular outline with a single side, drawn inscribed in
// the target rectangle.
type Circle struct {
	Side Side
}

// NewCircle creates a circular outline with the given side.
func NewCircle(side Side) Circle {
	return Circle{Side: side}
}

// Dimensions reports the side width uniformly on all four sides. A
// circle has no sides in the rectangular sense, but the uniform inset
// keeps padding computations meaningful.
func (c Circle) Dimensions() layout.InsetsGeometry {
	return layout.EdgeInsetsAll(c.Side.Width)
}

// IsUniform always reports true; a circle has a single side.
func (c Circle) IsUniform() bool {
	return true
}

// Add declines; circular outlines do not combine algebraically.
func (c Circle) Add(other Shape, reversed bool) (Shape, bool) {
	return nil, false
}

// Scale scales the single side.
func (c Circle) Scale(t float64) Shape {
	return Circle{Side: c.Side.Scale(t)}
}

// LerpFrom interpolates side-wise from another circular outline.
// Interpolation with rounded rectangles is negotiated by the rounded
// rectangle side, which produces the transitional morph outline.
func (c Circle) LerpFrom(a Shape, t float64) (Shape, bool) {
	if a == nil {
		return c.Scale(t), true
	}
	if from, ok := a.(Circle); ok {
		return Circle{Side: LerpSides(from.Side, c.Side, t)}, true
	}
	return nil, false
}

// LerpTo interpolates side-wise to another circular outline.
func (c Circle) LerpTo(other Shape, t float64) (Shape, bool) {
	if other == nil {
		return c.Scale(1 - t), true
	}
	if to, ok := other.(Circle); ok {
		return Circle{Side: LerpSides(c.Side, to.Side, t)}, true
	}
	return nil, false
}

// OuterPath is the circle inscribed in rect's shortest side.
func (c Circle) OuterPath(rect graphics.Rect, direction layout.TextDirection) *graphics.Path {
	path := graphics.NewPath()
	path.AddOval(graphics.RectFromCircle(rect.Center(), rect.ShortestSide()*0.5))
	return path
}

// InnerPath is the outer circle shrunk by the side width, floored at a
// zero radius.
func (c Circle) InnerPath(rect graphics.Rect, direction layout.TextDirection) *graphics.Path {
	radius := math.Max(0, rect.ShortestSide()*0.5-c.Side.Width)
	path := graphics.NewPath()
	path.AddOval(graphics.RectFromCircle(rect.Center(), radius))
	return path
}

// Paint strokes the circle with the side's paint configuration.
func (c Circle) Paint(canvas graphics.Canvas, rect graphics.Rect, opts PaintOptions) {
	switch c.Side.Style {
	case StyleNone:
	case StyleSolid:
		radius := math.Max(0, (rect.ShortestSide()-c.Side.Width)*0.5)
		canvas.DrawCircle(rect.Center(), radius, c.Side.toPaint())
	}
}
