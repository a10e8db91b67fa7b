package border

import (
	"fmt"

	"github.com/go-drift/outline/pkg/graphics"
	"github.com/go-drift/outline/pkg/layout"
)

// BoxShape selects the overall geometry used when painting a rectangular
// Border with a uniform side.
type BoxShape int

const (
	// BoxShapeRectangle paints into the target rectangle as-is.
	BoxShapeRectangle BoxShape = iota

	// BoxShapeCircle paints a circle inscribed in the target rectangle.
	// Only valid for uniform borders without a corner radius.
	BoxShapeCircle
)

// String returns a human-readable representation of the box shape.
func (s BoxShape) String() string {
	switch s {
	case BoxShapeRectangle:
		return "rectangle"
	case BoxShapeCircle:
		return "circle"
	default:
		return fmt.Sprintf("BoxShape(%d)", int(s))
	}
}

// PaintOptions carries the optional rendering hints accepted by
// Shape.Paint. The zero value paints a left-to-right rectangle with no
// corner rounding.
type PaintOptions struct {
	// Direction resolves any direction-dependent geometry.
	Direction layout.TextDirection

	// Shape switches a uniform rectangular Border to circular rendering.
	// Ignored by outline kinds that define their own geometry.
	Shape BoxShape

	// Radius rounds the corners of a uniform rectangular Border.
	// Ignored by outline kinds that define their own geometry.
	Radius *Radius
}

// Shape is an outline around a painted region: it measures the thickness
// a consumer must inset child content by, combines algebraically with
// other outlines, interpolates toward other outline kinds, and paints
// itself into a target rectangle.
//
// All implementations are immutable values; every operation returns a
// new Shape.
type Shape interface {
	// Dimensions returns the widths of the outline on each side. Consumers
	// deflate their content rect by the resolved insets before painting
	// children.
	Dimensions() layout.InsetsGeometry

	// IsUniform reports whether all sides of the outline share an
	// identical color, width, and style. Uniform outlines can take faster
	// paint paths.
	IsUniform() bool

	// Add attempts to combine this outline with another of the same kind
	// into a single outline. The second result is false when no algebraic
	// combination exists; callers fall back to nesting (see Combine).
	// reversed indicates the receiver is the second operand.
	Add(other Shape, reversed bool) (Shape, bool)

	// Scale returns the outline with all linear dimensions multiplied by t.
	Scale(t float64) Shape

	// LerpFrom interpolates from another outline to this one, with t=0
	// fully a and t=1 fully this outline. A nil a is treated as nothing,
	// producing this outline scaled by t. The second result is false when
	// this outline does not know how to interpolate with a's kind.
	LerpFrom(a Shape, t float64) (Shape, bool)

	// LerpTo interpolates from this outline to another, with t=0 fully
	// this outline and t=1 fully b. A nil b is treated as nothing,
	// producing this outline scaled by 1-t. The second result is false
	// when this outline does not know how to interpolate with b's kind.
	LerpTo(b Shape, t float64) (Shape, bool)

	// OuterPath returns the outside boundary of the border band within rect.
	OuterPath(rect graphics.Rect, direction layout.TextDirection) *graphics.Path

	// InnerPath returns the inside boundary of the border band within rect.
	// It never crosses OuterPath for the same rect.
	InnerPath(rect graphics.Rect, direction layout.TextDirection) *graphics.Path

	// Paint renders the outline into rect on the canvas.
	Paint(canvas graphics.Canvas, rect graphics.Rect, opts PaintOptions)
}

// Combine merges two outlines into one. It first asks a to absorb b,
// then b to absorb a in reversed position; if neither combination exists
// the outlines are nested, a outermost.
func Combine(a, b Shape) Shape {
	if combined, ok := a.Add(b, false); ok {
		return combined
	}
	if combined, ok := b.Add(a, true); ok {
		return combined
	}
	return newCompound([]Shape{a, b})
}

// Lerp interpolates between two outlines of possibly different kinds.
// Either operand may be nil, meaning no outline: the other operand
// scales toward nothing. At t=0 the result is a, at t=1 it is b.
//
// Interpolation is negotiated: b is asked to interpolate from a, then a
// to interpolate to b. When both decline the result switches discretely
// from a to b at t=0.5.
func Lerp(a, b Shape, t float64) Shape {
	if a == nil && b == nil {
		return nil
	}
	if t == 0 {
		return a
	}
	if t == 1 {
		return b
	}
	if b != nil {
		if result, ok := b.LerpFrom(a, t); ok {
			return result
		}
	}
	if a != nil {
		if result, ok := a.LerpTo(b, t); ok {
			return result
		}
	}
	if t < 0.5 {
		return a
	}
	return b
}
