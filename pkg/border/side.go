// Package border implements composable, interpolatable shape outlines:
// rectangular borders with independently styled sides, circular and
// rounded-rectangle outlines, and the machinery to combine them
// algebraically and morph between them for animation.
package border

import (
	"fmt"
	"math"

	"github.com/go-drift/outline/pkg/graphics"
)

// Style describes whether a side is painted.
type Style int

const (
	// StyleNone skips painting the side. The width still participates in
	// dimension calculations, so retained widths keep layout stable.
	StyleNone Style = iota

	// StyleSolid paints the side as a solid line or band.
	StyleSolid
)

// String returns a human-readable representation of the style.
func (s Style) String() string {
	switch s {
	case StyleNone:
		return "none"
	case StyleSolid:
		return "solid"
	default:
		return fmt.Sprintf("Style(%d)", int(s))
	}
}

// Side describes one side of a border: its color, width, and style.
// Side is an immutable value; derived values are produced by the With*
// and Scale methods.
type Side struct {
	Color graphics.Color
	Width float64
	Style Style
}

// SideNone is the absent side: zero width, not painted.
var SideNone = Side{Color: graphics.ColorBlack, Width: 0, Style: StyleNone}

// NewSide creates a solid side. Panics if width is negative.
func NewSide(color graphics.Color, width float64) Side {
	if width < 0 {
		panic(fmt.Sprintf("border: negative side width %v", width))
	}
	return Side{Color: color, Width: width, Style: StyleSolid}
}

// WithColor returns a copy of the side with the given color.
func (s Side) WithColor(color graphics.Color) Side {
	return Side{Color: color, Width: s.Width, Style: s.Style}
}

// WithWidth returns a copy of the side with the given width.
// Panics if width is negative.
func (s Side) WithWidth(width float64) Side {
	if width < 0 {
		panic(fmt.Sprintf("border: negative side width %v", width))
	}
	return Side{Color: s.Color, Width: width, Style: s.Style}
}

// WithStyle returns a copy of the side with the given style.
func (s Side) WithStyle(style Style) Side {
	return Side{Color: s.Color, Width: s.Width, Style: style}
}

// Scale returns the side with its width multiplied by t, floored at zero.
// A side scaled to nothing must not paint a hairline, so the style is
// forced to none when t <= 0.
func (s Side) Scale(t float64) Side {
	style := s.Style
	if t <= 0 {
		style = StyleNone
	}
	return Side{
		Color: s.Color,
		Width: math.Max(0, s.Width*t),
		Style: style,
	}
}

// isNone reports whether the side is conceptually absent.
func (s Side) isNone() bool {
	return s.Style == StyleNone && s.Width == 0
}

// CanMerge reports whether two sides can be merged into one. Sides merge
// when either is absent, or when both share the same color and style
// (widths need not match; merging sums them).
func CanMerge(a, b Side) bool {
	if a.isNone() || b.isNone() {
		return true
	}
	return a.Style == b.Style && a.Color == b.Color
}

// MergeSides combines two sides by summing their widths. Panics if the
// sides are not mergeable.
func MergeSides(a, b Side) Side {
	if !CanMerge(a, b) {
		panic("border: cannot merge sides with differing color or style")
	}
	aIsNone := a.isNone()
	bIsNone := b.isNone()
	if aIsNone && bIsNone {
		return SideNone
	}
	if aIsNone {
		return b
	}
	if bIsNone {
		return a
	}
	return Side{
		Color: a.Color,
		Width: a.Width + b.Width,
		Style: a.Style,
	}
}

// LerpSides linearly interpolates between two sides. At t=0 the result is
// a, at t=1 it is b. When the styles differ, the non-drawn side's color is
// treated as fully transparent and the result is always solid, so an edge
// materializes or dematerializes instead of flipping at an arbitrary t.
func LerpSides(a, b Side, t float64) Side {
	if t == 0 {
		return a
	}
	if t == 1 {
		return b
	}
	width := math.Max(0, graphics.Lerp(a.Width, b.Width, t))
	if a.Style == b.Style {
		return Side{
			Color: graphics.LerpColor(a.Color, b.Color, t),
			Width: width,
			Style: a.Style,
		}
	}
	colorA := a.Color
	if a.Style == StyleNone {
		colorA = a.Color.WithAlpha8(0)
	}
	colorB := b.Color
	if b.Style == StyleNone {
		colorB = b.Color.WithAlpha8(0)
	}
	return Side{
		Color: graphics.LerpColor(colorA, colorB, t),
		Width: width,
		Style: StyleSolid,
	}
}

// toPaint returns the stroke paint for drawing the side as an outline.
// A zero width yields a hairline stroke.
func (s Side) toPaint() graphics.Paint {
	switch s.Style {
	case StyleSolid:
		return graphics.Paint{
			Color:       s.Color,
			Style:       graphics.PaintStyleStroke,
			StrokeWidth: s.Width,
			AntiAlias:   true,
		}
	default:
		return graphics.Paint{
			Color:       graphics.ColorTransparent,
			Style:       graphics.PaintStyleStroke,
			StrokeWidth: 0,
			AntiAlias:   true,
		}
	}
}
