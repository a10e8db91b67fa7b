package border

import (
	"math"

	"github.com/go-drift/outline/pkg/graphics"
	"github.com/go-drift/outline/pkg/layout"
)

// Border is a rectangular outline with four independently configured
// sides. Sides are physically addressed (top/right/bottom/left); the
// text direction does not reassign them.
type Border struct {
	Top    Side
	Right  Side
	Bottom Side
	Left   Side
}

// NewBorder creates a border from four explicit sides.
func NewBorder(top, right, bottom, left Side) Border {
	return Border{Top: top, Right: right, Bottom: bottom, Left: left}
}

// All creates a uniform border with the same solid side on all four edges.
func All(color graphics.Color, width float64) Border {
	return FromSide(NewSide(color, width))
}

// FromSide creates a border using the given side for all four edges.
func FromSide(side Side) Border {
	return Border{Top: side, Right: side, Bottom: side, Left: side}
}

// Symmetric creates a border with one side for top/bottom and another
// for left/right.
func Symmetric(vertical, horizontal Side) Border {
	return Border{Top: vertical, Right: horizontal, Bottom: vertical, Left: horizontal}
}

// Dimensions returns each side's width as physical insets.
func (b Border) Dimensions() layout.InsetsGeometry {
	return layout.EdgeInsetsFromLTRB(b.Left.Width, b.Top.Width, b.Right.Width, b.Bottom.Width)
}

// IsUniform reports whether all four sides share color, width, and style.
func (b Border) IsUniform() bool {
	return b.Top == b.Right && b.Top == b.Bottom && b.Top == b.Left
}

// Add combines with another rectangular border when every side pair is
// mergeable. Any other outline kind declines.
func (b Border) Add(other Shape, reversed bool) (Shape, bool) {
	otherBorder, ok := other.(Border)
	if !ok {
		return nil, false
	}
	if !CanMerge(b.Top, otherBorder.Top) ||
		!CanMerge(b.Right, otherBorder.Right) ||
		!CanMerge(b.Bottom, otherBorder.Bottom) ||
		!CanMerge(b.Left, otherBorder.Left) {
		return nil, false
	}
	return Border{
		Top:    MergeSides(b.Top, otherBorder.Top),
		Right:  MergeSides(b.Right, otherBorder.Right),
		Bottom: MergeSides(b.Bottom, otherBorder.Bottom),
		Left:   MergeSides(b.Left, otherBorder.Left),
	}, true
}

// Scale scales all four sides independently.
func (b Border) Scale(t float64) Shape {
	return Border{
		Top:    b.Top.Scale(t),
		Right:  b.Right.Scale(t),
		Bottom: b.Bottom.Scale(t),
		Left:   b.Left.Scale(t),
	}
}

// LerpFrom interpolates side-by-side from another rectangular border.
func (b Border) LerpFrom(a Shape, t float64) (Shape, bool) {
	if a == nil {
		return b.Scale(t), true
	}
	if from, ok := a.(Border); ok {
		return LerpBorders(from, b, t), true
	}
	return nil, false
}

// LerpTo interpolates side-by-side to another rectangular border.
func (b Border) LerpTo(other Shape, t float64) (Shape, bool) {
	if other == nil {
		return b.Scale(1 - t), true
	}
	if to, ok := other.(Border); ok {
		return LerpBorders(b, to, t), true
	}
	return nil, false
}

// LerpBorders interpolates two rectangular borders side-by-side.
func LerpBorders(a, b Border, t float64) Border {
	if t == 0 {
		return a
	}
	if t == 1 {
		return b
	}
	return Border{
		Top:    LerpSides(a.Top, b.Top, t),
		Right:  LerpSides(a.Right, b.Right, t),
		Bottom: LerpSides(a.Bottom, b.Bottom, t),
		Left:   LerpSides(a.Left, b.Left, t),
	}
}

// OuterPath is the full target rectangle.
func (b Border) OuterPath(rect graphics.Rect, direction layout.TextDirection) *graphics.Path {
	path := graphics.NewPath()
	path.AddRect(rect)
	return path
}

// InnerPath is the target rectangle deflated by the four side widths.
func (b Border) InnerPath(rect graphics.Rect, direction layout.TextDirection) *graphics.Path {
	path := graphics.NewPath()
	path.AddRect(b.Dimensions().Resolve(direction).DeflateRect(rect))
	return path
}

// Paint renders the border into rect.
//
// Uniform borders take a fast path: a stroked rectangle, a rounded ring
// when opts.Radius is set, or a stroked circle when opts.Shape is
// BoxShapeCircle. Non-uniform borders are painted side-by-side with
// mitred corners and accept neither hint.
func (b Border) Paint(canvas graphics.Canvas, rect graphics.Rect, opts PaintOptions) {
	if b.IsUniform() {
		switch b.Top.Style {
		case StyleNone:
			return
		case StyleSolid:
			switch opts.Shape {
			case BoxShapeCircle:
				if opts.Radius != nil {
					panic("border: a corner radius cannot be given when the shape is a circle")
				}
				b.paintUniformCircle(canvas, rect)
			case BoxShapeRectangle:
				if opts.Radius != nil {
					b.paintUniformWithRadius(canvas, rect, *opts.Radius)
					return
				}
				b.paintUniformRectangle(canvas, rect)
			}
			return
		}
	}

	if opts.Radius != nil {
		panic("border: a corner radius can only be given for a uniform border")
	}
	if opts.Shape != BoxShapeRectangle {
		panic("border: a non-rectangle shape can only be given for a uniform border")
	}
	PaintSides(canvas, rect, b.Top, b.Right, b.Bottom, b.Left)
}

func (b Border) paintUniformCircle(canvas graphics.Canvas, rect graphics.Rect) {
	side := b.Top
	radius := math.Max(0, (rect.ShortestSide()-side.Width)*0.5)
	canvas.DrawCircle(rect.Center(), radius, side.toPaint())
}

func (b Border) paintUniformWithRadius(canvas graphics.Canvas, rect graphics.Rect, radius Radius) {
	side := b.Top
	if side.Width == 0 {
		paint := graphics.Paint{
			Color:       side.Color,
			Style:       graphics.PaintStyleStroke,
			StrokeWidth: 0,
			AntiAlias:   true,
		}
		canvas.DrawRRect(radius.ToRRect(rect), paint)
		return
	}
	outer := radius.ToRRect(rect)
	inner := outer.Deflate(side.Width)
	paint := graphics.Paint{
		Color:     side.Color,
		Style:     graphics.PaintStyleFill,
		AntiAlias: true,
	}
	canvas.DrawDRRect(outer, inner, paint)
}

func (b Border) paintUniformRectangle(canvas graphics.Canvas, rect graphics.Rect) {
	side := b.Top
	canvas.DrawRect(rect.Deflate(side.Width*0.5), side.toPaint())
}
