// Package svg writes canvas operations as an SVG document, so painted
// outlines can be inspected in any browser without a pixel diff.
//
// Rectangles, rounded rectangles with a uniform radius, circles, and
// lines map to native SVG elements; everything else serializes to path
// data. Save/Restore and transforms map onto nested <g> elements;
// rounded-rectangle clips are applied as their bounding rectangle.
package svg

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/go-drift/outline/pkg/graphics"
)

var _ graphics.Canvas = (*Canvas)(nil)

// Canvas accumulates SVG elements.
type Canvas struct {
	size    graphics.Size
	body    bytes.Buffer
	depth   int // open <g> elements per Save, tracked for Restore
	opened  []int
	clipSeq int
}

// New creates an SVG canvas with the given logical size.
func New(size graphics.Size) *Canvas {
	return &Canvas{size: size}
}

// Size returns the canvas size.
func (c *Canvas) Size() graphics.Size {
	return c.size
}

// Bytes returns the complete SVG document.
func (c *Canvas) Bytes() []byte {
	var doc bytes.Buffer
	fmt.Fprintf(&doc,
		`<svg xmlns="http://www.w3.org/2000/svg" width="%s" height="%s" viewBox="0 0 %s %s">`+"\n",
		num(c.size.Width), num(c.size.Height), num(c.size.Width), num(c.size.Height))
	doc.Write(c.body.Bytes())
	for i := 0; i < c.depth; i++ {
		doc.WriteString("</g>\n")
	}
	doc.WriteString("</svg>\n")
	return doc.Bytes()
}

// Save marks the current group depth so Restore can close any groups
// opened since.
func (c *Canvas) Save() {
	c.opened = append(c.opened, c.depth)
}

// Restore closes groups opened since the matching Save.
func (c *Canvas) Restore() {
	if len(c.opened) == 0 {
		return
	}
	target := c.opened[len(c.opened)-1]
	c.opened = c.opened[:len(c.opened)-1]
	for c.depth > target {
		c.body.WriteString("</g>\n")
		c.depth--
	}
}

// Translate opens a translated group.
func (c *Canvas) Translate(dx, dy float64) {
	fmt.Fprintf(&c.body, `<g transform="translate(%s %s)">`+"\n", num(dx), num(dy))
	c.depth++
}

// Scale opens a scaled group.
func (c *Canvas) Scale(sx, sy float64) {
	fmt.Fprintf(&c.body, `<g transform="scale(%s %s)">`+"\n", num(sx), num(sy))
	c.depth++
}

// ClipRect opens a group clipped to the given rectangle.
func (c *Canvas) ClipRect(rect graphics.Rect) {
	c.clipSeq++
	id := fmt.Sprintf("clip%d", c.clipSeq)
	fmt.Fprintf(&c.body,
		`<clipPath id="%s"><rect x="%s" y="%s" width="%s" height="%s"/></clipPath>`+"\n",
		id, num(rect.Left), num(rect.Top), num(rect.Width()), num(rect.Height()))
	fmt.Fprintf(&c.body, `<g clip-path="url(#%s)">`+"\n", id)
	c.depth++
}

// ClipRRect clips to the rounded rectangle's bounds.
func (c *Canvas) ClipRRect(rrect graphics.RRect) {
	c.ClipRect(rrect.Rect)
}

// DrawRect draws a rectangle.
func (c *Canvas) DrawRect(rect graphics.Rect, paint graphics.Paint) {
	fmt.Fprintf(&c.body, `<rect x="%s" y="%s" width="%s" height="%s" %s/>`+"\n",
		num(rect.Left), num(rect.Top), num(rect.Width()), num(rect.Height()), paintAttrs(paint))
}

// DrawRRect draws a rounded rectangle. Per-corner radii collapse to the
// uniform radius when they match, and to path data otherwise.
func (c *Canvas) DrawRRect(rrect graphics.RRect, paint graphics.Paint) {
	if r := rrect.UniformRadius(); r > 0 || uniformZero(rrect) {
		rect := rrect.Rect
		fmt.Fprintf(&c.body, `<rect x="%s" y="%s" width="%s" height="%s" rx="%s" %s/>`+"\n",
			num(rect.Left), num(rect.Top), num(rect.Width()), num(rect.Height()), num(r), paintAttrs(paint))
		return
	}
	path := graphics.NewPath()
	path.AddRRect(rrect)
	c.DrawPath(path, paint)
}

// DrawDRRect fills the ring between two rounded rectangles using the
// even-odd fill rule.
func (c *Canvas) DrawDRRect(outer, inner graphics.RRect, paint graphics.Paint) {
	path := graphics.NewPathWithFillRule(graphics.FillRuleEvenOdd)
	path.AddRRect(outer)
	path.AddRRect(inner)
	c.DrawPath(path, paint)
}

// DrawCircle draws a circle.
func (c *Canvas) DrawCircle(center graphics.Offset, radius float64, paint graphics.Paint) {
	fmt.Fprintf(&c.body, `<circle cx="%s" cy="%s" r="%s" %s/>`+"\n",
		num(center.X), num(center.Y), num(radius), paintAttrs(paint))
}

// DrawLine draws a line segment.
func (c *Canvas) DrawLine(start, end graphics.Offset, paint graphics.Paint) {
	stroke := paint
	stroke.Style = graphics.PaintStyleStroke
	fmt.Fprintf(&c.body, `<line x1="%s" y1="%s" x2="%s" y2="%s" %s/>`+"\n",
		num(start.X), num(start.Y), num(end.X), num(end.Y), paintAttrs(stroke))
}

// DrawPath draws a path.
func (c *Canvas) DrawPath(path *graphics.Path, paint graphics.Paint) {
	attrs := paintAttrs(paint)
	if path.FillRule == graphics.FillRuleEvenOdd && paint.Style == graphics.PaintStyleFill {
		attrs = `fill-rule="evenodd" ` + attrs
	}
	fmt.Fprintf(&c.body, `<path d="%s" %s/>`+"\n", pathData(path), attrs)
}

// pathData serializes path commands to an SVG path data string.
func pathData(path *graphics.Path) string {
	var d strings.Builder
	for i, cmd := range path.Commands {
		if i > 0 {
			d.WriteByte(' ')
		}
		switch cmd.Op {
		case graphics.PathOpMoveTo:
			fmt.Fprintf(&d, "M%s %s", num(cmd.Args[0]), num(cmd.Args[1]))
		case graphics.PathOpLineTo:
			fmt.Fprintf(&d, "L%s %s", num(cmd.Args[0]), num(cmd.Args[1]))
		case graphics.PathOpQuadTo:
			fmt.Fprintf(&d, "Q%s %s %s %s",
				num(cmd.Args[0]), num(cmd.Args[1]), num(cmd.Args[2]), num(cmd.Args[3]))
		case graphics.PathOpCubicTo:
			fmt.Fprintf(&d, "C%s %s %s %s %s %s",
				num(cmd.Args[0]), num(cmd.Args[1]), num(cmd.Args[2]),
				num(cmd.Args[3]), num(cmd.Args[4]), num(cmd.Args[5]))
		case graphics.PathOpClose:
			d.WriteByte('Z')
		}
	}
	return d.String()
}

// paintAttrs renders a paint as SVG fill/stroke attributes.
func paintAttrs(paint graphics.Paint) string {
	a, r, g, b := paint.Color.Components()
	rgb := fmt.Sprintf("#%02x%02x%02x", r, g, b)
	opacity := ""
	if a < 0xFF {
		opacity = fmt.Sprintf(` opacity="%s"`, num(float64(a)/255))
	}
	switch paint.Style {
	case graphics.PaintStyleStroke:
		width := paint.StrokeWidth
		if width <= 0 {
			width = 1 // hairline
		}
		return fmt.Sprintf(`fill="none" stroke="%s" stroke-width="%s"%s`, rgb, num(width), opacity)
	default:
		return fmt.Sprintf(`fill="%s"%s`, rgb, opacity)
	}
}

func uniformZero(rrect graphics.RRect) bool {
	zero := graphics.Radius{}
	return rrect.TopLeft == zero && rrect.TopRight == zero &&
		rrect.BottomRight == zero && rrect.BottomLeft == zero
}

// num formats a coordinate compactly, trimming trailing zeros.
func num(v float64) string {
	s := fmt.Sprintf("%.3f", v)
	s = strings.TrimRight(s, "0")
	s = strings.TrimRight(s, ".")
	if s == "" || s == "-" {
		return "0"
	}
	return s
}
