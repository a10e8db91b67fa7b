package border

import "github.com/go-drift/outline/pkg/graphics"

// Radius describes the corner rounding of a rectangular outline, one
// radius per corner.
type Radius struct {
	TopLeft     graphics.Radius
	TopRight    graphics.Radius
	BottomRight graphics.Radius
	BottomLeft  graphics.Radius
}

// RadiusAll creates a border radius with the same radius on every corner.
func RadiusAll(radius graphics.Radius) Radius {
	return Radius{
		TopLeft:     radius,
		TopRight:    radius,
		BottomRight: radius,
		BottomLeft:  radius,
	}
}

// RadiusCircular creates a border radius with the same circular radius
// on every corner.
func RadiusCircular(value float64) Radius {
	return RadiusAll(graphics.CircularRadius(value))
}

// Scale returns the radius with every corner multiplied by t.
func (r Radius) Scale(t float64) Radius {
	return Radius{
		TopLeft:     scaleRadius(r.TopLeft, t),
		TopRight:    scaleRadius(r.TopRight, t),
		BottomRight: scaleRadius(r.BottomRight, t),
		BottomLeft:  scaleRadius(r.BottomLeft, t),
	}
}

func scaleRadius(radius graphics.Radius, t float64) graphics.Radius {
	return graphics.Radius{X: radius.X * t, Y: radius.Y * t}
}

// LerpRadii interpolates each corner's radius componentwise.
func LerpRadii(a, b Radius, t float64) Radius {
	return Radius{
		TopLeft:     graphics.LerpRadius(a.TopLeft, b.TopLeft, t),
		TopRight:    graphics.LerpRadius(a.TopRight, b.TopRight, t),
		BottomRight: graphics.LerpRadius(a.BottomRight, b.BottomRight, t),
		BottomLeft:  graphics.LerpRadius(a.BottomLeft, b.BottomLeft, t),
	}
}

// ToRRect applies the radius to a rectangle.
func (r Radius) ToRRect(rect graphics.Rect) graphics.RRect {
	return graphics.RRect{
		Rect:        rect,
		TopLeft:     r.TopLeft,
		TopRight:    r.TopRight,
		BottomRight: r.BottomRight,
		BottomLeft:  r.BottomLeft,
	}
}
