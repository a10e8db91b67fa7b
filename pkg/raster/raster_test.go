package raster

import (
	"image/color"
	"testing"

	"github.com/go-drift/outline/pkg/graphics"
)

func fillPaint(c graphics.Color) graphics.Paint {
	return graphics.Paint{Color: c, Style: graphics.PaintStyleFill, AntiAlias: true}
}

func strokePaint(c graphics.Color, width float64) graphics.Paint {
	return graphics.Paint{Color: c, Style: graphics.PaintStyleStroke, StrokeWidth: width, AntiAlias: true}
}

func pixel(t *testing.T, c *Canvas, x, y int) color.RGBA {
	t.Helper()
	return c.Image().RGBAAt(x, y)
}

func TestFillRect(t *testing.T) {
	c := New(40, 40)
	c.DrawRect(graphics.RectFromLTWH(10, 10, 20, 20), fillPaint(graphics.ColorRed))

	if got := pixel(t, c, 20, 20); got != (color.RGBA{R: 0xFF, A: 0xFF}) {
		t.Fatalf("center pixel = %+v, want opaque red", got)
	}
	if got := pixel(t, c, 2, 2); got.A != 0 {
		t.Fatalf("pixel outside the rect = %+v, want untouched", got)
	}
}

func TestStrokeRectLeavesInteriorEmpty(t *testing.T) {
	c := New(40, 40)
	c.DrawRect(graphics.RectFromLTWH(10, 10, 20, 20), strokePaint(graphics.ColorBlack, 2))

	if got := pixel(t, c, 20, 10); got.A == 0 {
		t.Fatalf("pixel on the stroked edge should be painted")
	}
	if got := pixel(t, c, 20, 20); got.A != 0 {
		t.Fatalf("interior pixel = %+v, want untouched", got)
	}
}

func TestDrawDRRectRing(t *testing.T) {
	c := New(60, 60)
	outer := graphics.RRectFromRectAndRadius(graphics.RectFromLTWH(10, 10, 40, 40), graphics.CircularRadius(6))
	inner := outer.Deflate(8)
	c.DrawDRRect(outer, inner, fillPaint(graphics.ColorBlue))

	if got := pixel(t, c, 30, 14); got.A == 0 {
		t.Fatalf("pixel in the ring should be painted")
	}
	if got := pixel(t, c, 30, 30); got.A != 0 {
		t.Fatalf("pixel in the hole = %+v, want untouched", got)
	}
	if got := pixel(t, c, 5, 30); got.A != 0 {
		t.Fatalf("pixel outside the ring = %+v, want untouched", got)
	}
}

func TestDrawCircle(t *testing.T) {
	c := New(60, 60)
	c.DrawCircle(graphics.Offset{X: 30, Y: 30}, 20, fillPaint(graphics.ColorGreen))

	if got := pixel(t, c, 30, 30); got.A == 0 {
		t.Fatalf("circle center should be painted")
	}
	if got := pixel(t, c, 4, 4); got.A != 0 {
		t.Fatalf("corner pixel = %+v, want untouched", got)
	}
}

func TestStrokeCircleLeavesCenterEmpty(t *testing.T) {
	c := New(60, 60)
	c.DrawCircle(graphics.Offset{X: 30, Y: 30}, 20, strokePaint(graphics.ColorBlack, 4))

	if got := pixel(t, c, 30, 10); got.A == 0 {
		t.Fatalf("pixel on the stroke centerline should be painted")
	}
	if got := pixel(t, c, 30, 30); got.A != 0 {
		t.Fatalf("circle center = %+v, want untouched", got)
	}
}

func TestDrawLine(t *testing.T) {
	c := New(40, 40)
	c.DrawLine(graphics.Offset{X: 0, Y: 20}, graphics.Offset{X: 40, Y: 20}, strokePaint(graphics.ColorBlack, 4))

	if got := pixel(t, c, 20, 20); got.A == 0 {
		t.Fatalf("pixel on the line should be painted")
	}
	if got := pixel(t, c, 20, 5); got.A != 0 {
		t.Fatalf("pixel off the line = %+v, want untouched", got)
	}
}

func TestTranslateAndScale(t *testing.T) {
	c := New(40, 40)
	c.Save()
	c.Translate(10, 10)
	c.Scale(2, 2)
	c.DrawRect(graphics.RectFromLTWH(0, 0, 10, 10), fillPaint(graphics.ColorRed))
	c.Restore()

	// The unit rect lands at (10, 10) with size 20x20.
	if got := pixel(t, c, 20, 20); got.A == 0 {
		t.Fatalf("pixel inside the transformed rect should be painted")
	}
	if got := pixel(t, c, 5, 5); got.A != 0 {
		t.Fatalf("pixel before the translation = %+v, want untouched", got)
	}

	// Restore must bring back the identity transform.
	c.DrawRect(graphics.RectFromLTWH(0, 0, 4, 4), fillPaint(graphics.ColorBlue))
	if got := pixel(t, c, 1, 1); got.A == 0 {
		t.Fatalf("pixel after restore should use the identity transform")
	}
}

func TestClipRect(t *testing.T) {
	c := New(40, 40)
	c.Save()
	c.ClipRect(graphics.RectFromLTWH(0, 0, 20, 40))
	c.DrawRect(graphics.RectFromLTWH(0, 0, 40, 40), fillPaint(graphics.ColorRed))
	c.Restore()

	if got := pixel(t, c, 10, 20); got.A == 0 {
		t.Fatalf("pixel inside the clip should be painted")
	}
	if got := pixel(t, c, 30, 20); got.A != 0 {
		t.Fatalf("pixel outside the clip = %+v, want untouched", got)
	}
}

func TestClipRectAwayFromOrigin(t *testing.T) {
	c := New(40, 40)
	c.Save()
	c.ClipRect(graphics.RectFromLTWH(10, 10, 20, 20))
	c.DrawRect(graphics.RectFromLTWH(0, 0, 10, 10), fillPaint(graphics.ColorRed))
	c.Restore()

	// A shape entirely outside the clip must not shift into it.
	if got := pixel(t, c, 15, 15); got.A != 0 {
		t.Fatalf("pixel inside the clip = %+v, want untouched", got)
	}
	if got := pixel(t, c, 5, 5); got.A != 0 {
		t.Fatalf("pixel outside the clip = %+v, want untouched", got)
	}

	c.Save()
	c.ClipRect(graphics.RectFromLTWH(10, 10, 20, 20))
	c.DrawRect(graphics.RectFromLTWH(0, 0, 40, 40), fillPaint(graphics.ColorBlue))
	c.Restore()

	if got := pixel(t, c, 15, 15); got != (color.RGBA{B: 0xFF, A: 0xFF}) {
		t.Fatalf("pixel inside the clip = %+v, want opaque blue", got)
	}
	if got := pixel(t, c, 35, 35); got.A != 0 {
		t.Fatalf("pixel past the clip = %+v, want untouched", got)
	}
}

func TestDrawPathEvenOddLeavesHole(t *testing.T) {
	c := New(40, 40)
	path := graphics.NewPathWithFillRule(graphics.FillRuleEvenOdd)
	path.AddRect(graphics.RectFromLTWH(5, 5, 30, 30))
	path.AddRect(graphics.RectFromLTWH(15, 15, 10, 10))
	c.DrawPath(path, fillPaint(graphics.ColorRed))

	if got := pixel(t, c, 10, 20); got.A == 0 {
		t.Fatalf("pixel in the ring should be painted")
	}
	if got := pixel(t, c, 20, 20); got.A != 0 {
		t.Fatalf("pixel in the hole = %+v, want untouched", got)
	}
	if got := pixel(t, c, 2, 2); got.A != 0 {
		t.Fatalf("pixel outside the ring = %+v, want untouched", got)
	}
}

func TestHairlineStroke(t *testing.T) {
	c := New(40, 40)
	c.DrawPath(hairlinePath(), strokePaint(graphics.ColorBlack, 0))

	if got := pixel(t, c, 20, 10); got.A == 0 {
		t.Fatalf("hairline should paint along the path")
	}
}

func hairlinePath() *graphics.Path {
	p := graphics.NewPath()
	p.MoveTo(5, 10)
	p.LineTo(35, 10)
	return p
}

func TestTransparentPaintDrawsNothing(t *testing.T) {
	c := New(20, 20)
	c.DrawRect(graphics.RectFromLTWH(0, 0, 20, 20), fillPaint(graphics.ColorTransparent))

	if got := pixel(t, c, 10, 10); got.A != 0 {
		t.Fatalf("transparent fill should leave the image untouched, got %+v", got)
	}
}
