package graphics

import (
	"fmt"
	"math"
)

// PathOp represents a path drawing operation type.
type PathOp int

const (
	PathOpMoveTo  PathOp = iota // Start new subpath at point (x, y)
	PathOpLineTo                // Draw line to point (x, y)
	PathOpQuadTo                // Draw quadratic curve to (x2, y2) via control (x1, y1)
	PathOpCubicTo               // Draw cubic curve to (x3, y3) via controls (x1, y1), (x2, y2)
	PathOpClose                 // Close subpath with line to start point
)

// String returns a human-readable representation of the path operation.
func (o PathOp) String() string {
	switch o {
	case PathOpMoveTo:
		return "move_to"
	case PathOpLineTo:
		return "line_to"
	case PathOpQuadTo:
		return "quad_to"
	case PathOpCubicTo:
		return "cubic_to"
	case PathOpClose:
		return "close"
	default:
		return fmt.Sprintf("PathOp(%d)", int(o))
	}
}

// PathFillRule determines how path interiors are calculated for filling.
type PathFillRule int

const (
	// FillRuleNonZero fills regions with nonzero winding count.
	// A point is inside if a ray from it crosses more left-to-right edges
	// than right-to-left edges (or vice versa).
	FillRuleNonZero PathFillRule = iota

	// FillRuleEvenOdd fills regions crossed an odd number of times.
	// Useful for creating holes: nested shapes alternate between filled/unfilled.
	FillRuleEvenOdd
)

// String returns a human-readable representation of the path fill rule.
func (r PathFillRule) String() string {
	switch r {
	case FillRuleNonZero:
		return "nonzero"
	case FillRuleEvenOdd:
		return "evenodd"
	default:
		return fmt.Sprintf("PathFillRule(%d)", int(r))
	}
}

// PathCommand represents a single path operation with its coordinate arguments.
type PathCommand struct {
	Op   PathOp    // The operation type
	Args []float64 // Coordinates: MoveTo/LineTo=[x,y], QuadTo=[x1,y1,x2,y2], CubicTo=[x1,y1,x2,y2,x3,y3]
}

// Path represents a vector path for drawing or clipping arbitrary shapes.
//
// Build paths using MoveTo, LineTo, QuadTo, CubicTo, and Close, or the
// AddRect, AddOval, and AddRRect shape helpers.
// Use with Canvas.DrawPath to stroke/fill.
type Path struct {
	Commands []PathCommand
	FillRule PathFillRule
}

// NewPath creates a new empty path with nonzero fill rule.
func NewPath() *Path {
	return &Path{FillRule: FillRuleNonZero}
}

// NewPathWithFillRule creates a new empty path with the specified fill rule.
func NewPathWithFillRule(fillRule PathFillRule) *Path {
	return &Path{FillRule: fillRule}
}

// MoveTo starts a new subpath at the given point.
func (p *Path) MoveTo(x, y float64) {
	p.Commands = append(p.Commands, PathCommand{
		Op:   PathOpMoveTo,
		Args: []float64{x, y},
	})
}

// LineTo adds a line segment from the current point to (x, y).
func (p *Path) LineTo(x, y float64) {
	p.Commands = append(p.Commands, PathCommand{
		Op:   PathOpLineTo,
		Args: []float64{x, y},
	})
}

// QuadTo adds a quadratic bezier curve from the current point to (x2, y2)
// with control point (x1, y1).
func (p *Path) QuadTo(x1, y1, x2, y2 float64) {
	p.Commands = append(p.Commands, PathCommand{
		Op:   PathOpQuadTo,
		Args: []float64{x1, y1, x2, y2},
	})
}

// CubicTo adds a cubic bezier curve from the current point to (x3, y3)
// with control points (x1, y1) and (x2, y2).
func (p *Path) CubicTo(x1, y1, x2, y2, x3, y3 float64) {
	p.Commands = append(p.Commands, PathCommand{
		Op:   PathOpCubicTo,
		Args: []float64{x1, y1, x2, y2, x3, y3},
	})
}

// Close closes the current subpath by drawing a line to the starting point.
func (p *Path) Close() {
	p.Commands = append(p.Commands, PathCommand{
		Op: PathOpClose,
	})
}

// kappa is the control-point distance factor approximating a quarter
// circle with a single cubic bezier: 4*(sqrt(2)-1)/3.
const kappa = 0.55228475

// AddRect adds a closed rectangular subpath.
func (p *Path) AddRect(rect Rect) {
	p.MoveTo(rect.Left, rect.Top)
	p.LineTo(rect.Right, rect.Top)
	p.LineTo(rect.Right, rect.Bottom)
	p.LineTo(rect.Left, rect.Bottom)
	p.Close()
}

// AddOval adds a closed elliptical subpath inscribed in rect, built from
// four cubic bezier quarter arcs.
func (p *Path) AddOval(rect Rect) {
	cx, cy := rect.Center().X, rect.Center().Y
	rx := rect.Width() * 0.5
	ry := rect.Height() * 0.5
	dx := rx * kappa
	dy := ry * kappa

	p.MoveTo(cx+rx, cy)
	p.CubicTo(cx+rx, cy+dy, cx+dx, cy+ry, cx, cy+ry)
	p.CubicTo(cx-dx, cy+ry, cx-rx, cy+dy, cx-rx, cy)
	p.CubicTo(cx-rx, cy-dy, cx-dx, cy-ry, cx, cy-ry)
	p.CubicTo(cx+dx, cy-ry, cx+rx, cy-dy, cx+rx, cy)
	p.Close()
}

// AddRRect adds a closed rounded-rectangle subpath. Corner radii are
// clamped so opposing corners never overlap.
func (p *Path) AddRRect(rrect RRect) {
	r := rrect.Rect
	w := r.Width()
	h := r.Height()

	tlx, tly := clampRadius(rrect.TopLeft, w, h)
	trx, try := clampRadius(rrect.TopRight, w, h)
	brx, bry := clampRadius(rrect.BottomRight, w, h)
	blx, bly := clampRadius(rrect.BottomLeft, w, h)

	p.MoveTo(r.Left+tlx, r.Top)
	p.LineTo(r.Right-trx, r.Top)
	p.CubicTo(r.Right-trx*(1-kappa), r.Top, r.Right, r.Top+try*(1-kappa), r.Right, r.Top+try)
	p.LineTo(r.Right, r.Bottom-bry)
	p.CubicTo(r.Right, r.Bottom-bry*(1-kappa), r.Right-brx*(1-kappa), r.Bottom, r.Right-brx, r.Bottom)
	p.LineTo(r.Left+blx, r.Bottom)
	p.CubicTo(r.Left+blx*(1-kappa), r.Bottom, r.Left, r.Bottom-bly*(1-kappa), r.Left, r.Bottom-bly)
	p.LineTo(r.Left, r.Top+tly)
	p.CubicTo(r.Left, r.Top+tly*(1-kappa), r.Left+tlx*(1-kappa), r.Top, r.Left+tlx, r.Top)
	p.Close()
}

func clampRadius(radius Radius, w, h float64) (x, y float64) {
	x = math.Max(0, math.Min(radius.X, w*0.5))
	y = math.Max(0, math.Min(radius.Y, h*0.5))
	return x, y
}

// IsEmpty returns true if the path has no commands.
func (p *Path) IsEmpty() bool {
	return len(p.Commands) == 0
}

// Clear removes all commands from the path.
func (p *Path) Clear() {
	p.Commands = p.Commands[:0]
}
