package layout

import "github.com/go-drift/outline/pkg/graphics"

// InsetsGeometry is an inset amount that may depend on the text
// direction. EdgeInsets resolves to itself; EdgeInsetsDirectional maps
// its start/end values onto left/right.
type InsetsGeometry interface {
	Resolve(direction TextDirection) EdgeInsets
}

// EdgeInsets describes physical offsets from the four sides of a rectangle.
type EdgeInsets struct {
	Left   float64
	Top    float64
	Right  float64
	Bottom float64
}

// EdgeInsetsAll creates insets with the same value on all four sides.
func EdgeInsetsAll(value float64) EdgeInsets {
	return EdgeInsets{Left: value, Top: value, Right: value, Bottom: value}
}

// EdgeInsetsSymmetric creates insets with the given horizontal value on
// left/right and vertical value on top/bottom.
func EdgeInsetsSymmetric(horizontal, vertical float64) EdgeInsets {
	return EdgeInsets{Left: horizontal, Top: vertical, Right: horizontal, Bottom: vertical}
}

// EdgeInsetsFromLTRB creates insets from explicit left, top, right, bottom values.
func EdgeInsetsFromLTRB(left, top, right, bottom float64) EdgeInsets {
	return EdgeInsets{Left: left, Top: top, Right: right, Bottom: bottom}
}

// Resolve returns the insets unchanged; EdgeInsets is already physical.
func (e EdgeInsets) Resolve(direction TextDirection) EdgeInsets {
	return e
}

// Add returns the componentwise sum of two insets.
func (e EdgeInsets) Add(other EdgeInsets) EdgeInsets {
	return EdgeInsets{
		Left:   e.Left + other.Left,
		Top:    e.Top + other.Top,
		Right:  e.Right + other.Right,
		Bottom: e.Bottom + other.Bottom,
	}
}

// Horizontal returns the total horizontal inset (left + right).
func (e EdgeInsets) Horizontal() float64 {
	return e.Left + e.Right
}

// Vertical returns the total vertical inset (top + bottom).
func (e EdgeInsets) Vertical() float64 {
	return e.Top + e.Bottom
}

// IsZero reports whether all four sides are zero.
func (e EdgeInsets) IsZero() bool {
	return e.Left == 0 && e.Top == 0 && e.Right == 0 && e.Bottom == 0
}

// DeflateRect returns rect shrunk by the insets on each side.
func (e EdgeInsets) DeflateRect(rect graphics.Rect) graphics.Rect {
	return graphics.Rect{
		Left:   rect.Left + e.Left,
		Top:    rect.Top + e.Top,
		Right:  rect.Right - e.Right,
		Bottom: rect.Bottom - e.Bottom,
	}
}

// InflateRect returns rect grown by the insets on each side.
func (e EdgeInsets) InflateRect(rect graphics.Rect) graphics.Rect {
	return graphics.Rect{
		Left:   rect.Left - e.Left,
		Top:    rect.Top - e.Top,
		Right:  rect.Right + e.Right,
		Bottom: rect.Bottom + e.Bottom,
	}
}

// EdgeInsetsDirectional describes insets whose horizontal components are
// given relative to the reading direction rather than physically.
type EdgeInsetsDirectional struct {
	Start  float64
	Top    float64
	End    float64
	Bottom float64
}

// Resolve maps start/end onto left/right for the given direction.
func (e EdgeInsetsDirectional) Resolve(direction TextDirection) EdgeInsets {
	if direction == TextDirectionRTL {
		return EdgeInsets{Left: e.End, Top: e.Top, Right: e.Start, Bottom: e.Bottom}
	}
	return EdgeInsets{Left: e.Start, Top: e.Top, Right: e.End, Bottom: e.Bottom}
}

// SumInsets combines inset geometries so the result resolves to the sum
// of all parts. Used for nested outlines whose per-layer insets stack.
func SumInsets(parts ...InsetsGeometry) InsetsGeometry {
	return sumInsets(parts)
}

type sumInsets []InsetsGeometry

func (s sumInsets) Resolve(direction TextDirection) EdgeInsets {
	var total EdgeInsets
	for _, part := range s {
		total = total.Add(part.Resolve(direction))
	}
	return total
}
