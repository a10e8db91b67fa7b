// Package animation provides value interpolators for driving outline
// transitions from an external animation system. It deliberately has no
// clock or controller: callers own timing and feed progress values in
// [0, 1].
package animation

import (
	"github.com/go-drift/outline/pkg/border"
	"github.com/go-drift/outline/pkg/graphics"
	"github.com/go-drift/outline/pkg/layout"
)

// Tween interpolates between Begin and End values based on progress.
//
// Use the helper constructors (TweenFloat64, TweenColor, TweenShape) for
// common types, or create custom tweens with a Lerp function.
type Tween[T any] struct {
	// Begin is the starting value (when t = 0).
	Begin T
	// End is the ending value (when t = 1).
	End T
	// Lerp linearly interpolates between Begin and End. Receives the begin
	// value, end value, and progress t in [0, 1].
	Lerp func(a, b T, t float64) T
}

// Evaluate returns the interpolated value at t (0.0 to 1.0).
func (tw *Tween[T]) Evaluate(t float64) T {
	if tw.Lerp == nil {
		return tw.End
	}
	return tw.Lerp(tw.Begin, tw.End, t)
}

// TweenFloat64 creates a tween for float64 values.
func TweenFloat64(begin, end float64) *Tween[float64] {
	return &Tween[float64]{
		Begin: begin,
		End:   end,
		Lerp:  graphics.Lerp,
	}
}

// TweenColor creates a tween for Color values.
func TweenColor(begin, end graphics.Color) *Tween[graphics.Color] {
	return &Tween[graphics.Color]{
		Begin: begin,
		End:   end,
		Lerp:  graphics.LerpColor,
	}
}

// TweenSide creates a tween for border sides.
func TweenSide(begin, end border.Side) *Tween[border.Side] {
	return &Tween[border.Side]{
		Begin: begin,
		End:   end,
		Lerp:  border.LerpSides,
	}
}

// TweenShape creates a tween for outlines of possibly different kinds,
// using the shape-polymorphic interpolation protocol. Either endpoint
// may be nil, meaning no outline.
func TweenShape(begin, end border.Shape) *Tween[border.Shape] {
	return &Tween[border.Shape]{
		Begin: begin,
		End:   end,
		Lerp:  border.Lerp,
	}
}

// TweenRadius creates a tween for border radii.
func TweenRadius(begin, end border.Radius) *Tween[border.Radius] {
	return &Tween[border.Radius]{
		Begin: begin,
		End:   end,
		Lerp:  border.LerpRadii,
	}
}

// LerpEdgeInsets linearly interpolates between two EdgeInsets values.
func LerpEdgeInsets(a, b layout.EdgeInsets, t float64) layout.EdgeInsets {
	return layout.EdgeInsets{
		Left:   graphics.Lerp(a.Left, b.Left, t),
		Top:    graphics.Lerp(a.Top, b.Top, t),
		Right:  graphics.Lerp(a.Right, b.Right, t),
		Bottom: graphics.Lerp(a.Bottom, b.Bottom, t),
	}
}

// TweenEdgeInsets creates a tween for edge insets.
func TweenEdgeInsets(begin, end layout.EdgeInsets) *Tween[layout.EdgeInsets] {
	return &Tween[layout.EdgeInsets]{
		Begin: begin,
		End:   end,
		Lerp:  LerpEdgeInsets,
	}
}
