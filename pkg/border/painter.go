package border

import "github.com/go-drift/outline/pkg/graphics"

// PaintSides draws four independently styled sides into rect, in the
// fixed order top, right, bottom, left.
//
// Each solid side with a nonzero width fills a quadrilateral: its full
// outer edge plus two inner points inset by the widths of the adjacent
// sides, which mitres corners where sides of different widths meet. A
// zero-width solid side is stroked as a hairline along the outer edge.
// Sides styled none paint nothing, but their widths still shape the
// neighbouring mitres.
//
// Pathological width combinations (one side much wider than its
// neighbours) can produce self-overlapping fill geometry; this is
// accepted, not corrected.
func PaintSides(canvas graphics.Canvas, rect graphics.Rect, top, right, bottom, left Side) {
	if top.Style == StyleSolid {
		paint := graphics.Paint{Color: top.Color, AntiAlias: true}
		path := graphics.NewPath()
		path.MoveTo(rect.Left, rect.Top)
		path.LineTo(rect.Right, rect.Top)
		if top.Width == 0 {
			paint.Style = graphics.PaintStyleStroke
			paint.StrokeWidth = 0
		} else {
			paint.Style = graphics.PaintStyleFill
			path.LineTo(rect.Right-right.Width, rect.Top+top.Width)
			path.LineTo(rect.Left+left.Width, rect.Top+top.Width)
			path.Close()
		}
		canvas.DrawPath(path, paint)
	}

	if right.Style == StyleSolid {
		paint := graphics.Paint{Color: right.Color, AntiAlias: true}
		path := graphics.NewPath()
		path.MoveTo(rect.Right, rect.Top)
		path.LineTo(rect.Right, rect.Bottom)
		if right.Width == 0 {
			paint.Style = graphics.PaintStyleStroke
			paint.StrokeWidth = 0
		} else {
			paint.Style = graphics.PaintStyleFill
			path.LineTo(rect.Right-right.Width, rect.Bottom-bottom.Width)
			path.LineTo(rect.Right-right.Width, rect.Top+top.Width)
			path.Close()
		}
		canvas.DrawPath(path, paint)
	}

	if bottom.Style == StyleSolid {
		paint := graphics.Paint{Color: bottom.Color, AntiAlias: true}
		path := graphics.NewPath()
		path.MoveTo(rect.Right, rect.Bottom)
		path.LineTo(rect.Left, rect.Bottom)
		if bottom.Width == 0 {
			paint.Style = graphics.PaintStyleStroke
			paint.StrokeWidth = 0
		} else {
			paint.Style = graphics.PaintStyleFill
			path.LineTo(rect.Left+left.Width, rect.Bottom-bottom.Width)
			path.LineTo(rect.Right-right.Width, rect.Bottom-bottom.Width)
			path.Close()
		}
		canvas.DrawPath(path, paint)
	}

	if left.Style == StyleSolid {
		paint := graphics.Paint{Color: left.Color, AntiAlias: true}
		path := graphics.NewPath()
		path.MoveTo(rect.Left, rect.Bottom)
		path.LineTo(rect.Left, rect.Top)
		if left.Width == 0 {
			paint.Style = graphics.PaintStyleStroke
			paint.StrokeWidth = 0
		} else {
			paint.Style = graphics.PaintStyleFill
			path.LineTo(rect.Left+left.Width, rect.Top+top.Width)
			path.LineTo(rect.Left+left.Width, rect.Bottom-bottom.Width)
			path.Close()
		}
		canvas.DrawPath(path, paint)
	}
}
