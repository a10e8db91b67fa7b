// Package config loads YAML scene descriptions for the outline CLI and
// converts them into outline values.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/go-drift/outline/pkg/border"
	"github.com/go-drift/outline/pkg/graphics"
	"github.com/go-drift/outline/pkg/layout"
)

// Scene describes a rendering target and the outlines painted into it.
type Scene struct {
	Width      float64   `yaml:"width"`
	Height     float64   `yaml:"height"`
	Margin     float64   `yaml:"margin,omitempty"`
	MarginX    *float64  `yaml:"marginX,omitempty"`
	MarginY    *float64  `yaml:"marginY,omitempty"`
	Background string    `yaml:"background,omitempty"`
	Direction  string    `yaml:"direction,omitempty"`
	Outlines   []Outline `yaml:"outlines"`
}

// Outline describes a single outline in a scene.
type Outline struct {
	// Kind selects the outline type: border, circle, or rounded.
	Kind string `yaml:"kind"`

	// Side configures the single side of circle and rounded outlines,
	// and all four sides of a border outline unless Sides overrides them.
	Side *SideSpec `yaml:"side,omitempty"`

	// Sides configures individual sides of a border outline.
	Sides *SidesSpec `yaml:"sides,omitempty"`

	// Corner is the corner radius of a rounded outline.
	Corner float64 `yaml:"corner,omitempty"`

	// Shape is the paint hint for border outlines: rectangle or circle.
	Shape string `yaml:"shape,omitempty"`

	// Radius is the corner-radius paint hint for uniform border outlines.
	Radius *float64 `yaml:"radius,omitempty"`
}

// SidesSpec configures the four sides of a border outline. Absent sides
// are not painted.
type SidesSpec struct {
	Top    *SideSpec `yaml:"top,omitempty"`
	Right  *SideSpec `yaml:"right,omitempty"`
	Bottom *SideSpec `yaml:"bottom,omitempty"`
	Left   *SideSpec `yaml:"left,omitempty"`
}

// SideSpec configures one side.
type SideSpec struct {
	Color string  `yaml:"color"`
	Width float64 `yaml:"width"`
}

// Load reads and parses a scene file.
func Load(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scene: %w", err)
	}
	var scene Scene
	if err := yaml.Unmarshal(data, &scene); err != nil {
		return nil, fmt.Errorf("failed to parse scene: %w", err)
	}
	if err := scene.validate(); err != nil {
		return nil, err
	}
	return &scene, nil
}

func (s *Scene) validate() error {
	if s.Width <= 0 || s.Height <= 0 {
		return fmt.Errorf("scene size must be positive, got %gx%g", s.Width, s.Height)
	}
	if len(s.Outlines) == 0 {
		return fmt.Errorf("scene has no outlines")
	}
	for i := range s.Outlines {
		if _, err := s.Outlines[i].Build(); err != nil {
			return fmt.Errorf("outline %d: %w", i, err)
		}
	}
	return nil
}

// Size returns the scene dimensions.
func (s *Scene) Size() graphics.Size {
	return graphics.Size{Width: s.Width, Height: s.Height}
}

// Rect returns the paint target: the scene bounds deflated by the
// margins. MarginX and MarginY override the uniform margin per axis.
func (s *Scene) Rect() graphics.Rect {
	h, v := s.Margin, s.Margin
	if s.MarginX != nil {
		h = *s.MarginX
	}
	if s.MarginY != nil {
		v = *s.MarginY
	}
	margin := layout.EdgeInsetsSymmetric(h, v)
	return margin.DeflateRect(graphics.RectFromLTWH(0, 0, s.Width, s.Height))
}

// BackgroundColor returns the configured background, defaulting to white.
func (s *Scene) BackgroundColor() (graphics.Color, error) {
	if s.Background == "" {
		return graphics.ColorWhite, nil
	}
	return ParseColor(s.Background)
}

// TextDirection returns the configured direction, defaulting to LTR.
func (s *Scene) TextDirection() (layout.TextDirection, error) {
	switch s.Direction {
	case "", "ltr":
		return layout.TextDirectionLTR, nil
	case "rtl":
		return layout.TextDirectionRTL, nil
	default:
		return 0, fmt.Errorf("unknown direction %q (want ltr or rtl)", s.Direction)
	}
}

// Shape combines all configured outlines into one.
func (s *Scene) Shape() (border.Shape, error) {
	var combined border.Shape
	for i := range s.Outlines {
		shape, err := s.Outlines[i].Build()
		if err != nil {
			return nil, fmt.Errorf("outline %d: %w", i, err)
		}
		if combined == nil {
			combined = shape
		} else {
			combined = border.Combine(combined, shape)
		}
	}
	return combined, nil
}

// Options returns the paint options for the scene. Paint hints apply
// only to single-outline scenes; nested outlines define their own
// geometry.
func (s *Scene) Options() (border.PaintOptions, error) {
	direction, err := s.TextDirection()
	if err != nil {
		return border.PaintOptions{}, err
	}
	opts := border.PaintOptions{Direction: direction}
	if len(s.Outlines) != 1 {
		return opts, nil
	}
	o := s.Outlines[0]
	switch o.Shape {
	case "", "rectangle":
	case "circle":
		opts.Shape = border.BoxShapeCircle
	default:
		return opts, fmt.Errorf("unknown shape hint %q (want rectangle or circle)", o.Shape)
	}
	if o.Radius != nil {
		radius := border.RadiusCircular(*o.Radius)
		opts.Radius = &radius
	}
	return opts, nil
}

// Build converts the outline description to an outline value.
func (o *Outline) Build() (border.Shape, error) {
	switch o.Kind {
	case "border":
		return o.buildBorder()
	case "circle":
		side, err := o.requireSide()
		if err != nil {
			return nil, err
		}
		return border.NewCircle(side), nil
	case "rounded":
		side, err := o.requireSide()
		if err != nil {
			return nil, err
		}
		return border.NewRoundedRect(side, border.RadiusCircular(o.Corner)), nil
	default:
		return nil, fmt.Errorf("unknown outline kind %q (want border, circle, or rounded)", o.Kind)
	}
}

func (o *Outline) buildBorder() (border.Shape, error) {
	if o.Sides != nil {
		top, err := buildSide(o.Sides.Top)
		if err != nil {
			return nil, fmt.Errorf("top: %w", err)
		}
		right, err := buildSide(o.Sides.Right)
		if err != nil {
			return nil, fmt.Errorf("right: %w", err)
		}
		bottom, err := buildSide(o.Sides.Bottom)
		if err != nil {
			return nil, fmt.Errorf("bottom: %w", err)
		}
		left, err := buildSide(o.Sides.Left)
		if err != nil {
			return nil, fmt.Errorf("left: %w", err)
		}
		return border.NewBorder(top, right, bottom, left), nil
	}
	side, err := o.requireSide()
	if err != nil {
		return nil, err
	}
	return border.FromSide(side), nil
}

func (o *Outline) requireSide() (border.Side, error) {
	if o.Side == nil {
		return border.Side{}, fmt.Errorf("outline kind %q requires a side", o.Kind)
	}
	return buildSide(o.Side)
}

func buildSide(spec *SideSpec) (border.Side, error) {
	if spec == nil {
		return border.SideNone, nil
	}
	if spec.Width < 0 {
		return border.Side{}, fmt.Errorf("negative side width %g", spec.Width)
	}
	color, err := ParseColor(spec.Color)
	if err != nil {
		return border.Side{}, err
	}
	return border.NewSide(color, spec.Width), nil
}

// ParseColor parses "#RRGGBB" or "#AARRGGBB" hex colors.
func ParseColor(s string) (graphics.Color, error) {
	hex := strings.TrimPrefix(s, "#")
	switch len(hex) {
	case 6:
		hex = "FF" + hex
	case 8:
	default:
		return 0, fmt.Errorf("invalid color %q (want #RRGGBB or #AARRGGBB)", s)
	}
	value, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid color %q: %w", s, err)
	}
	return graphics.Color(value), nil
}
