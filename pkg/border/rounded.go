package border

import (
	"github.com/go-drift/outline/pkg/graphics"
	"github.com/go-drift/outline/pkg/layout"
)

// RoundedRect is a rounded-rectangle outline with a single side and a
// per-corner radius descriptor.
type RoundedRect struct {
	Side   Side
	Radius Radius
}

// NewRoundedRect creates a rounded-rectangle outline.
func NewRoundedRect(side Side, radius Radius) RoundedRect {
	return RoundedRect{Side: side, Radius: radius}
}

// Dimensions reports the side width uniformly on all four sides.
func (r RoundedRect) Dimensions() layout.InsetsGeometry {
	return layout.EdgeInsetsAll(r.Side.Width)
}

// IsUniform always reports true; a rounded rectangle has a single side.
func (r RoundedRect) IsUniform() bool {
	return true
}

// Add declines; rounded-rectangle outlines do not combine algebraically.
func (r RoundedRect) Add(other Shape, reversed bool) (Shape, bool) {
	return nil, false
}

// Scale scales the side and multiplies the corner radii by t.
func (r RoundedRect) Scale(t float64) Shape {
	return RoundedRect{
		Side:   r.Side.Scale(t),
		Radius: r.Radius.Scale(t),
	}
}

// LerpFrom interpolates from another rounded rectangle (side and radius
// lerp) or from a circle, which yields the transitional morph outline:
// at t=0 the morph looks fully circular, at t=1 fully rounded-rect.
func (r RoundedRect) LerpFrom(a Shape, t float64) (Shape, bool) {
	if a == nil {
		return r.Scale(t), true
	}
	switch from := a.(type) {
	case RoundedRect:
		return RoundedRect{
			Side:   LerpSides(from.Side, r.Side, t),
			Radius: LerpRadii(from.Radius, r.Radius, t),
		}, true
	case Circle:
		return roundedRectToCircle{
			side:       LerpSides(from.Side, r.Side, t),
			radius:     r.Radius,
			circleness: 1 - t,
		}, true
	}
	return nil, false
}

// LerpTo interpolates to another rounded rectangle or to a circle; the
// circle pairing yields the morph outline with circleness t.
func (r RoundedRect) LerpTo(other Shape, t float64) (Shape, bool) {
	if other == nil {
		return r.Scale(1 - t), true
	}
	switch to := other.(type) {
	case RoundedRect:
		return RoundedRect{
			Side:   LerpSides(r.Side, to.Side, t),
			Radius: LerpRadii(r.Radius, to.Radius, t),
		}, true
	case Circle:
		return roundedRectToCircle{
			side:       LerpSides(r.Side, to.Side, t),
			radius:     r.Radius,
			circleness: t,
		}, true
	}
	return nil, false
}

// OuterPath is the rounded rectangle at the configured corner radii.
func (r RoundedRect) OuterPath(rect graphics.Rect, direction layout.TextDirection) *graphics.Path {
	path := graphics.NewPath()
	path.AddRRect(r.Radius.ToRRect(rect))
	return path
}

// InnerPath is the outer rounded rectangle deflated by the side width.
func (r RoundedRect) InnerPath(rect graphics.Rect, direction layout.TextDirection) *graphics.Path {
	path := graphics.NewPath()
	path.AddRRect(r.Radius.ToRRect(rect).Deflate(r.Side.Width))
	return path
}

// Paint fills the ring between the rounded rectangle and its inward
// deflation by the side width, or strokes a hairline when the width is
// zero.
func (r RoundedRect) Paint(canvas graphics.Canvas, rect graphics.Rect, opts PaintOptions) {
	paintRRectBorder(canvas, r.Radius.ToRRect(rect), r.Side)
}

// paintRRectBorder paints a single-sided rounded-rectangle band, shared
// by RoundedRect and the morph outline.
func paintRRectBorder(canvas graphics.Canvas, outer graphics.RRect, side Side) {
	switch side.Style {
	case StyleNone:
	case StyleSolid:
		if side.Width == 0 {
			paint := graphics.Paint{
				Color:       side.Color,
				Style:       graphics.PaintStyleStroke,
				StrokeWidth: 0,
				AntiAlias:   true,
			}
			canvas.DrawRRect(outer, paint)
			return
		}
		paint := graphics.Paint{
			Color:     side.Color,
			Style:     graphics.PaintStyleFill,
			AntiAlias: true,
		}
		canvas.DrawDRRect(outer, outer.Deflate(side.Width), paint)
	}
}

// roundedRectToCircle is the transitional outline between a rounded
// rectangle and a circle. It is only ever produced by interpolation.
// circleness is 0 for a pure rounded rectangle and 1 for a pure circle.
type roundedRectToCircle struct {
	side       Side
	radius     Radius
	circleness float64
}

// Dimensions reports the side width uniformly on all four sides.
func (m roundedRectToCircle) Dimensions() layout.InsetsGeometry {
	return layout.EdgeInsetsAll(m.side.Width)
}

// IsUniform always reports true; the morph has a single side.
func (m roundedRectToCircle) IsUniform() bool {
	return true
}

// Add declines; transitional outlines do not combine algebraically.
func (m roundedRectToCircle) Add(other Shape, reversed bool) (Shape, bool) {
	return nil, false
}

// Scale scales side and radii; circleness follows t so the outline
// collapses to a plain rounded rectangle as it scales toward nothing.
func (m roundedRectToCircle) Scale(t float64) Shape {
	return roundedRectToCircle{
		side:       m.side.Scale(t),
		radius:     m.radius.Scale(t),
		circleness: t,
	}
}

// LerpFrom rescales circleness toward the incoming shape's end of the
// rounded-rect/circle axis, which lets chained morphs (rect to circle to
// rect) stay continuous through rapid shape changes.
func (m roundedRectToCircle) LerpFrom(a Shape, t float64) (Shape, bool) {
	if a == nil {
		return m.Scale(t), true
	}
	switch from := a.(type) {
	case RoundedRect:
		return roundedRectToCircle{
			side:       LerpSides(from.Side, m.side, t),
			radius:     LerpRadii(from.Radius, m.radius, t),
			circleness: m.circleness * t,
		}, true
	case Circle:
		return roundedRectToCircle{
			side:       LerpSides(from.Side, m.side, t),
			radius:     m.radius,
			circleness: m.circleness + (1-m.circleness)*(1-t),
		}, true
	case roundedRectToCircle:
		return roundedRectToCircle{
			side:       LerpSides(from.side, m.side, t),
			radius:     LerpRadii(from.radius, m.radius, t),
			circleness: graphics.Lerp(from.circleness, m.circleness, t),
		}, true
	}
	return nil, false
}

// LerpTo rescales circleness toward the outgoing shape's end of the
// rounded-rect/circle axis.
func (m roundedRectToCircle) LerpTo(other Shape, t float64) (Shape, bool) {
	if other == nil {
		return m.Scale(1 - t), true
	}
	switch to := other.(type) {
	case RoundedRect:
		return roundedRectToCircle{
			side:       LerpSides(m.side, to.Side, t),
			radius:     LerpRadii(m.radius, to.Radius, t),
			circleness: m.circleness * (1 - t),
		}, true
	case Circle:
		return roundedRectToCircle{
			side:       LerpSides(m.side, to.Side, t),
			radius:     m.radius,
			circleness: m.circleness + (1-m.circleness)*t,
		}, true
	case roundedRectToCircle:
		return roundedRectToCircle{
			side:       LerpSides(m.side, to.side, t),
			radius:     LerpRadii(m.radius, to.radius, t),
			circleness: graphics.Lerp(m.circleness, to.circleness, t),
		}, true
	}
	return nil, false
}

// adjustRect squares up a non-square rect in proportion to circleness by
// shrinking the longer dimension toward the shorter one symmetrically,
// so the shape can legitimately become a circle at circleness 1.
func (m roundedRectToCircle) adjustRect(rect graphics.Rect) graphics.Rect {
	if m.circleness == 0 || rect.Width() == rect.Height() {
		return rect
	}
	if rect.Width() < rect.Height() {
		delta := m.circleness * (rect.Height() - rect.Width()) * 0.5
		return graphics.Rect{
			Left:   rect.Left,
			Top:    rect.Top + delta,
			Right:  rect.Right,
			Bottom: rect.Bottom - delta,
		}
	}
	delta := m.circleness * (rect.Width() - rect.Height()) * 0.5
	return graphics.Rect{
		Left:   rect.Left + delta,
		Top:    rect.Top,
		Right:  rect.Right - delta,
		Bottom: rect.Bottom,
	}
}

// adjustRadius interpolates the configured corner radii toward the fully
// circular radius of the adjusted rect by circleness.
func (m roundedRectToCircle) adjustRadius(adjusted graphics.Rect) Radius {
	circular := RadiusCircular(adjusted.ShortestSide() * 0.5)
	return LerpRadii(m.radius, circular, m.circleness)
}

// OuterPath is the rounded rectangle of the adjusted rect at the
// effective corner radii.
func (m roundedRectToCircle) OuterPath(rect graphics.Rect, direction layout.TextDirection) *graphics.Path {
	adjusted := m.adjustRect(rect)
	path := graphics.NewPath()
	path.AddRRect(m.adjustRadius(adjusted).ToRRect(adjusted))
	return path
}

// InnerPath is the outer geometry deflated by the side width.
func (m roundedRectToCircle) InnerPath(rect graphics.Rect, direction layout.TextDirection) *graphics.Path {
	adjusted := m.adjustRect(rect)
	path := graphics.NewPath()
	path.AddRRect(m.adjustRadius(adjusted).ToRRect(adjusted).Deflate(m.side.Width))
	return path
}

// Paint renders the morph exactly as a rounded rectangle over the
// adjusted rect and effective radius.
func (m roundedRectToCircle) Paint(canvas graphics.Canvas, rect graphics.Rect, opts PaintOptions) {
	adjusted := m.adjustRect(rect)
	paintRRectBorder(canvas, m.adjustRadius(adjusted).ToRRect(adjusted), m.side)
}
