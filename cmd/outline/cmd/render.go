package cmd

import (
	"fmt"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-drift/outline/cmd/outline/internal/config"
	"github.com/go-drift/outline/pkg/errors"
	"github.com/go-drift/outline/pkg/graphics"
	"github.com/go-drift/outline/pkg/raster"
	"github.com/go-drift/outline/pkg/svg"
)

func init() {
	RegisterCommand(&Command{
		Name:  "render",
		Short: "Render a scene file to PNG or SVG",
		Long: `Render reads a YAML scene description and paints its outlines
into an image. The output format is chosen by the output file
extension: .png uses the software rasterizer, .svg writes a
vector document.`,
		Usage: "outline render <scene.yaml> -o <output.png|output.svg>",
		Run:   runRender,
	})
}

func runRender(args []string) error {
	scenePath, output, err := parseRenderArgs(args)
	if err != nil {
		return err
	}

	scene, err := config.Load(scenePath)
	if err != nil {
		return &errors.Error{Op: "render.load", Kind: errors.KindScene, Err: err, Path: scenePath}
	}
	shape, err := scene.Shape()
	if err != nil {
		return &errors.Error{Op: "render.build", Kind: errors.KindScene, Err: err, Path: scenePath}
	}
	opts, err := scene.Options()
	if err != nil {
		return &errors.Error{Op: "render.build", Kind: errors.KindScene, Err: err, Path: scenePath}
	}

	switch strings.ToLower(filepath.Ext(output)) {
	case ".png":
		if err := writePNG(scene, output, func(canvas graphics.Canvas) {
			shape.Paint(canvas, scene.Rect(), opts)
		}); err != nil {
			return err
		}
	case ".svg":
		canvas := svg.New(scene.Size())
		shape.Paint(canvas, scene.Rect(), opts)
		if err := os.WriteFile(output, canvas.Bytes(), 0o644); err != nil {
			return &errors.Error{Op: "render.writeSVG", Kind: errors.KindEncode, Err: err, Path: output}
		}
	default:
		return fmt.Errorf("unsupported output format %q (want .png or .svg)", filepath.Ext(output))
	}

	fmt.Printf("Rendered %s -> %s\n", scenePath, output)
	return nil
}

func parseRenderArgs(args []string) (scenePath, output string, err error) {
	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "-o", "--output":
			if i+1 >= len(args) {
				return "", "", fmt.Errorf("-o requires an output path")
			}
			output = args[i+1]
			i++
		default:
			if scenePath != "" {
				return "", "", fmt.Errorf("unexpected argument %q", args[i])
			}
			scenePath = args[i]
		}
	}
	if scenePath == "" {
		return "", "", fmt.Errorf("a scene file is required")
	}
	if output == "" {
		return "", "", fmt.Errorf("an output path is required (-o)")
	}
	return scenePath, output, nil
}

// writePNG rasterizes via the given paint callback and encodes a PNG.
func writePNG(scene *config.Scene, path string, paint func(graphics.Canvas)) error {
	background, err := scene.BackgroundColor()
	if err != nil {
		return &errors.Error{Op: "render.background", Kind: errors.KindScene, Err: err}
	}
	canvas := raster.New(int(scene.Width), int(scene.Height))
	fill := graphics.DefaultPaint()
	fill.Color = background
	canvas.DrawRect(graphics.RectFromLTWH(0, 0, scene.Width, scene.Height), fill)
	paint(canvas)

	file, err := os.Create(path)
	if err != nil {
		return &errors.Error{Op: "render.writePNG", Kind: errors.KindEncode, Err: err, Path: path}
	}
	defer file.Close()
	if err := png.Encode(file, canvas.Image()); err != nil {
		return &errors.Error{Op: "render.writePNG", Kind: errors.KindEncode, Err: err, Path: path}
	}
	return nil
}
