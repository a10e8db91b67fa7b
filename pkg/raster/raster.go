// Package raster renders canvas operations into an image.RGBA using the
// scanline rasterizer from golang.org/x/image/vector.
//
// The transform stack supports translation and scaling, which covers
// everything the outline engine emits. Rounded-rectangle clips are
// applied as their bounding rectangle.
package raster

import (
	"image"
	"image/color"
	"math"

	"golang.org/x/image/vector"

	"github.com/go-drift/outline/pkg/graphics"
)

// flattenTolerance is the maximum chord deviation, in pixels, when
// subdividing bezier curves into line segments.
const flattenTolerance = 0.1

// point is a transformed device-space coordinate.
type point struct {
	x, y float64
}

type state struct {
	dx, dy float64
	sx, sy float64
	clip   image.Rectangle
}

var _ graphics.Canvas = (*Canvas)(nil)

// Canvas rasterizes drawing commands into an RGBA image.
type Canvas struct {
	img    *image.RGBA
	width  int
	height int
	state  state
	stack  []state
}

// New creates a raster canvas with the given pixel dimensions.
func New(width, height int) *Canvas {
	return &Canvas{
		img:    image.NewRGBA(image.Rect(0, 0, width, height)),
		width:  width,
		height: height,
		state: state{
			sx:   1,
			sy:   1,
			clip: image.Rect(0, 0, width, height),
		},
	}
}

// Image returns the rendered image.
func (c *Canvas) Image() *image.RGBA {
	return c.img
}

// Size returns the canvas dimensions in pixels.
func (c *Canvas) Size() graphics.Size {
	return graphics.Size{Width: float64(c.width), Height: float64(c.height)}
}

// Save pushes the current transform and clip state.
func (c *Canvas) Save() {
	c.stack = append(c.stack, c.state)
}

// Restore pops the most recent transform and clip state.
func (c *Canvas) Restore() {
	if len(c.stack) == 0 {
		return
	}
	c.state = c.stack[len(c.stack)-1]
	c.stack = c.stack[:len(c.stack)-1]
}

// Translate moves the origin by the given offset.
func (c *Canvas) Translate(dx, dy float64) {
	c.state.dx += c.state.sx * dx
	c.state.dy += c.state.sy * dy
}

// Scale scales the coordinate system by the given factors.
func (c *Canvas) Scale(sx, sy float64) {
	c.state.sx *= sx
	c.state.sy *= sy
}

// ClipRect restricts future drawing to the given rectangle.
func (c *Canvas) ClipRect(rect graphics.Rect) {
	tl := c.transform(rect.Left, rect.Top)
	br := c.transform(rect.Right, rect.Bottom)
	device := image.Rect(
		int(math.Floor(tl.x)), int(math.Floor(tl.y)),
		int(math.Ceil(br.x)), int(math.Ceil(br.y)),
	)
	c.state.clip = c.state.clip.Intersect(device)
}

// ClipRRect restricts future drawing to the rounded rectangle's bounds.
// Corner rounding is not honoured by the clip.
func (c *Canvas) ClipRRect(rrect graphics.RRect) {
	c.ClipRect(rrect.Rect)
}

// DrawRect draws a rectangle with the provided paint.
func (c *Canvas) DrawRect(rect graphics.Rect, paint graphics.Paint) {
	switch paint.Style {
	case graphics.PaintStyleFill:
		path := graphics.NewPath()
		path.AddRect(rect)
		c.fill(c.flatten(path), paint.Color)
	case graphics.PaintStyleStroke:
		w := c.strokeWidth(paint)
		outer := graphics.NewPath()
		outer.AddRect(rect.Inflate(w * 0.5))
		inner := graphics.NewPath()
		inner.AddRect(rect.Deflate(w * 0.5))
		c.fillRing(c.flatten(outer), c.flatten(inner), paint.Color)
	}
}

// DrawRRect draws a rounded rectangle with the provided paint.
func (c *Canvas) DrawRRect(rrect graphics.RRect, paint graphics.Paint) {
	switch paint.Style {
	case graphics.PaintStyleFill:
		path := graphics.NewPath()
		path.AddRRect(rrect)
		c.fill(c.flatten(path), paint.Color)
	case graphics.PaintStyleStroke:
		w := c.strokeWidth(paint)
		outer := graphics.NewPath()
		outer.AddRRect(rrect.Deflate(-w * 0.5))
		inner := graphics.NewPath()
		inner.AddRRect(rrect.Deflate(w * 0.5))
		c.fillRing(c.flatten(outer), c.flatten(inner), paint.Color)
	}
}

// DrawDRRect fills the ring between an outer and an inner rounded rectangle.
func (c *Canvas) DrawDRRect(outer, inner graphics.RRect, paint graphics.Paint) {
	outerPath := graphics.NewPath()
	outerPath.AddRRect(outer)
	innerPath := graphics.NewPath()
	innerPath.AddRRect(inner)
	c.fillRing(c.flatten(outerPath), c.flatten(innerPath), paint.Color)
}

// DrawCircle draws a circle with the provided paint.
func (c *Canvas) DrawCircle(center graphics.Offset, radius float64, paint graphics.Paint) {
	if radius <= 0 {
		return
	}
	switch paint.Style {
	case graphics.PaintStyleFill:
		path := graphics.NewPath()
		path.AddOval(graphics.RectFromCircle(center, radius))
		c.fill(c.flatten(path), paint.Color)
	case graphics.PaintStyleStroke:
		w := c.strokeWidth(paint)
		outer := graphics.NewPath()
		outer.AddOval(graphics.RectFromCircle(center, radius+w*0.5))
		polys := c.flatten(outer)
		if innerRadius := radius - w*0.5; innerRadius > 0 {
			inner := graphics.NewPath()
			inner.AddOval(graphics.RectFromCircle(center, innerRadius))
			c.fillRing(polys, c.flatten(inner), paint.Color)
			return
		}
		c.fill(polys, paint.Color)
	}
}

// DrawLine draws a line segment with the provided paint.
func (c *Canvas) DrawLine(start, end graphics.Offset, paint graphics.Paint) {
	w := c.strokeWidth(paint)
	quad := segmentQuad(point{start.X, start.Y}, point{end.X, end.Y}, w)
	for i := range quad {
		quad[i] = c.transform(quad[i].x, quad[i].y)
	}
	c.fill([][]point{quad}, paint.Color)
}

// DrawPath draws a path with the provided paint. Stroked paths are
// rendered segment-by-segment with butt caps, which is exact for the
// hairline outlines this engine emits and approximate for wide strokes.
func (c *Canvas) DrawPath(path *graphics.Path, paint graphics.Paint) {
	polys := c.flatten(path)
	switch paint.Style {
	case graphics.PaintStyleFill:
		if path.FillRule == graphics.FillRuleEvenOdd {
			polys = orientEvenOdd(polys)
		}
		c.fill(polys, paint.Color)
	case graphics.PaintStyleStroke:
		w := c.strokeWidth(paint)
		var quads [][]point
		for _, poly := range polys {
			for i := 0; i+1 < len(poly); i++ {
				quads = append(quads, segmentQuad(poly[i], poly[i+1], w))
			}
		}
		c.fill(quads, paint.Color)
	}
}

// strokeWidth maps the paint's stroke width to device pixels; a zero
// width is a hairline, one device pixel wide.
func (c *Canvas) strokeWidth(paint graphics.Paint) float64 {
	if paint.StrokeWidth <= 0 {
		scale := math.Max(math.Abs(c.state.sx), math.Abs(c.state.sy))
		if scale <= 0 {
			return 0
		}
		return 1 / scale
	}
	return paint.StrokeWidth
}

func (c *Canvas) transform(x, y float64) point {
	return point{
		x: c.state.sx*x + c.state.dx,
		y: c.state.sy*y + c.state.dy,
	}
}

// flatten converts path commands to transformed polygonal subpaths.
func (c *Canvas) flatten(path *graphics.Path) [][]point {
	var polys [][]point
	var current []point
	var startPoint point
	var cursor point

	flush := func() {
		if len(current) > 1 {
			polys = append(polys, current)
		}
		current = nil
	}

	for _, cmd := range path.Commands {
		switch cmd.Op {
		case graphics.PathOpMoveTo:
			flush()
			cursor = c.transform(cmd.Args[0], cmd.Args[1])
			startPoint = cursor
			current = []point{cursor}
		case graphics.PathOpLineTo:
			cursor = c.transform(cmd.Args[0], cmd.Args[1])
			current = append(current, cursor)
		case graphics.PathOpQuadTo:
			ctrl := c.transform(cmd.Args[0], cmd.Args[1])
			end := c.transform(cmd.Args[2], cmd.Args[3])
			current = appendQuad(current, cursor, ctrl, end)
			cursor = end
		case graphics.PathOpCubicTo:
			ctrl1 := c.transform(cmd.Args[0], cmd.Args[1])
			ctrl2 := c.transform(cmd.Args[2], cmd.Args[3])
			end := c.transform(cmd.Args[4], cmd.Args[5])
			current = appendCubic(current, cursor, ctrl1, ctrl2, end)
			cursor = end
		case graphics.PathOpClose:
			if len(current) > 0 {
				current = append(current, startPoint)
				cursor = startPoint
			}
			flush()
		}
	}
	flush()
	return polys
}

// appendQuad subdivides a quadratic bezier into line segments.
func appendQuad(dst []point, p0, p1, p2 point) []point {
	n := segmentCount(dist(p0, p1) + dist(p1, p2))
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		mt := 1 - t
		dst = append(dst, point{
			x: mt*mt*p0.x + 2*mt*t*p1.x + t*t*p2.x,
			y: mt*mt*p0.y + 2*mt*t*p1.y + t*t*p2.y,
		})
	}
	return dst
}

// appendCubic subdivides a cubic bezier into line segments.
func appendCubic(dst []point, p0, p1, p2, p3 point) []point {
	n := segmentCount(dist(p0, p1) + dist(p1, p2) + dist(p2, p3))
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		mt := 1 - t
		dst = append(dst, point{
			x: mt*mt*mt*p0.x + 3*mt*mt*t*p1.x + 3*mt*t*t*p2.x + t*t*t*p3.x,
			y: mt*mt*mt*p0.y + 3*mt*mt*t*p1.y + 3*mt*t*t*p2.y + t*t*t*p3.y,
		})
	}
	return dst
}

// segmentCount picks a subdivision count so the control polygon is
// approximated within flattenTolerance.
func segmentCount(controlLength float64) int {
	n := int(math.Ceil(math.Sqrt(controlLength / flattenTolerance)))
	if n < 1 {
		return 1
	}
	if n > 64 {
		return 64
	}
	return n
}

func dist(a, b point) float64 {
	return math.Hypot(b.x-a.x, b.y-a.y)
}

// segmentQuad expands a line segment into a filled quad of width w
// centered on the segment, with butt caps.
func segmentQuad(a, b point, w float64) []point {
	dx := b.x - a.x
	dy := b.y - a.y
	length := math.Hypot(dx, dy)
	if length == 0 {
		return nil
	}
	nx := -dy / length * w * 0.5
	ny := dx / length * w * 0.5
	return []point{
		{a.x + nx, a.y + ny},
		{b.x + nx, b.y + ny},
		{b.x - nx, b.y - ny},
		{a.x - nx, a.y - ny},
		{a.x + nx, a.y + ny},
	}
}

// fill rasterizes closed polygons with the nonzero winding rule,
// restricted to the current clip. The rasterizer mask is sized to the
// clip and Draw aligns its origin with clip.Min, so device coordinates
// shift into clip space before rasterization.
func (c *Canvas) fill(polys [][]point, col graphics.Color) {
	clip := c.state.clip
	if clip.Empty() || col == graphics.ColorTransparent {
		return
	}
	ox := float32(clip.Min.X)
	oy := float32(clip.Min.Y)
	r := vector.NewRasterizer(clip.Dx(), clip.Dy())
	for _, poly := range polys {
		if len(poly) < 3 {
			continue
		}
		r.MoveTo(float32(poly[0].x)-ox, float32(poly[0].y)-oy)
		for _, p := range poly[1:] {
			r.LineTo(float32(p.x)-ox, float32(p.y)-oy)
		}
		r.ClosePath()
	}
	r.Draw(c.img, clip, image.NewUniform(toNRGBA(col)), image.Point{})
}

// fillRing fills the area between outer and inner polygons by reversing
// the inner contours, so the nonzero winding rule leaves a hole.
func (c *Canvas) fillRing(outer, inner [][]point, col graphics.Color) {
	polys := make([][]point, 0, len(outer)+len(inner))
	polys = append(polys, outer...)
	for _, poly := range inner {
		polys = append(polys, reversed(poly))
	}
	c.fill(polys, col)
}

// orientEvenOdd rewinds contours so the nonzero rule matches the
// even-odd rule for non-intersecting contours: a contour nested at odd
// depth winds opposite to the contours enclosing it, leaving a hole.
func orientEvenOdd(polys [][]point) [][]point {
	out := make([][]point, len(polys))
	for i, poly := range polys {
		if len(poly) < 3 {
			out[i] = poly
			continue
		}
		depth := 0
		for j, other := range polys {
			if j != i && len(other) >= 3 && containsPoint(other, poly[0]) {
				depth++
			}
		}
		clockwise := signedArea(poly) > 0
		if clockwise != (depth%2 == 0) {
			out[i] = reversed(poly)
		} else {
			out[i] = poly
		}
	}
	return out
}

// signedArea is the shoelace area of a polygon; positive means
// clockwise in the y-down device space.
func signedArea(poly []point) float64 {
	var sum float64
	for i := range poly {
		j := (i + 1) % len(poly)
		sum += poly[i].x*poly[j].y - poly[j].x*poly[i].y
	}
	return sum / 2
}

// containsPoint is an even-odd ray cast.
func containsPoint(poly []point, p point) bool {
	inside := false
	for i, j := 0, len(poly)-1; i < len(poly); j, i = i, i+1 {
		pi, pj := poly[i], poly[j]
		if (pi.y > p.y) != (pj.y > p.y) &&
			p.x < (pj.x-pi.x)*(p.y-pi.y)/(pj.y-pi.y)+pi.x {
			inside = !inside
		}
	}
	return inside
}

func reversed(poly []point) []point {
	out := make([]point, len(poly))
	for i, p := range poly {
		out[len(poly)-1-i] = p
	}
	return out
}

func toNRGBA(c graphics.Color) color.NRGBA {
	a, r, g, b := c.Components()
	return color.NRGBA{R: r, G: g, B: b, A: a}
}
