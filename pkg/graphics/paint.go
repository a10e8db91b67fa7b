package graphics

import "fmt"

// PaintStyle describes how shapes are filled or stroked.
type PaintStyle int

const (
	// PaintStyleFill fills the shape interior.
	PaintStyleFill PaintStyle = iota

	// PaintStyleStroke draws only the outline.
	PaintStyleStroke
)

// String returns a human-readable representation of the paint style.
func (s PaintStyle) String() string {
	switch s {
	case PaintStyleFill:
		return "fill"
	case PaintStyleStroke:
		return "stroke"
	default:
		return fmt.Sprintf("PaintStyle(%d)", int(s))
	}
}

// Paint describes how a shape is drawn: its color, whether it is filled
// or stroked, and the stroke width when stroked.
//
// A stroke width of zero is a hairline: the thinnest line the backend
// can draw, centered on the geometry.
type Paint struct {
	Color       Color
	Style       PaintStyle
	StrokeWidth float64
	AntiAlias   bool
}

// DefaultPaint returns an opaque black fill paint with antialiasing.
func DefaultPaint() Paint {
	return Paint{
		Color:     ColorBlack,
		Style:     PaintStyleFill,
		AntiAlias: true,
	}
}
