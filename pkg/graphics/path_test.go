package graphics

import (
	"math"
	"testing"
)

func TestAddRect(t *testing.T) {
	path := NewPath()
	path.AddRect(RectFromLTWH(0, 0, 10, 20))

	if len(path.Commands) != 5 {
		t.Fatalf("recorded %d commands, want move + 3 lines + close", len(path.Commands))
	}
	if path.Commands[0].Op != PathOpMoveTo {
		t.Fatalf("first command = %v, want move_to", path.Commands[0].Op)
	}
	if path.Commands[4].Op != PathOpClose {
		t.Fatalf("last command = %v, want close", path.Commands[4].Op)
	}
}

func TestAddOvalStaysInBounds(t *testing.T) {
	rect := RectFromLTWH(10, 10, 40, 20)
	path := NewPath()
	path.AddOval(rect)

	for _, cmd := range path.Commands {
		for i := 0; i+1 < len(cmd.Args); i += 2 {
			x, y := cmd.Args[i], cmd.Args[i+1]
			if x < rect.Left-epsilon || x > rect.Right+epsilon ||
				y < rect.Top-epsilon || y > rect.Bottom+epsilon {
				t.Fatalf("oval point (%v, %v) escapes %+v", x, y, rect)
			}
		}
	}

	// The four quarter arcs start on the rect's right edge midline.
	start := path.Commands[0]
	if start.Op != PathOpMoveTo || start.Args[0] != rect.Right || start.Args[1] != rect.Center().Y {
		t.Fatalf("oval start = %+v, want right edge midline", start)
	}
}

func TestAddRRectClampsRadii(t *testing.T) {
	path := NewPath()
	// Radius larger than half the rect; corners must clamp instead of
	// crossing each other.
	path.AddRRect(RRectFromRectAndRadius(RectFromLTWH(0, 0, 20, 20), CircularRadius(50)))

	for _, cmd := range path.Commands {
		for i := 0; i+1 < len(cmd.Args); i += 2 {
			x, y := cmd.Args[i], cmd.Args[i+1]
			if x < -epsilon || x > 20+epsilon || y < -epsilon || y > 20+epsilon {
				t.Fatalf("clamped rrect point (%v, %v) escapes the rect", x, y)
			}
		}
	}
}

func TestAddRRectZeroRadiusHitsCorners(t *testing.T) {
	path := NewPath()
	path.AddRRect(RRectFromRectAndRadius(RectFromLTWH(0, 0, 10, 10), Radius{}))

	corners := []Offset{{0, 0}, {10, 0}, {10, 10}, {0, 10}}
	for _, corner := range corners {
		found := false
		for _, cmd := range path.Commands {
			for i := 0; i+1 < len(cmd.Args); i += 2 {
				if math.Abs(cmd.Args[i]-corner.X) <= epsilon &&
					math.Abs(cmd.Args[i+1]-corner.Y) <= epsilon {
					found = true
				}
			}
		}
		if !found {
			t.Fatalf("zero-radius rrect should pass through corner %+v", corner)
		}
	}
}

func TestPathClear(t *testing.T) {
	path := NewPath()
	path.MoveTo(0, 0)
	path.LineTo(1, 1)
	if path.IsEmpty() {
		t.Fatalf("path with commands reported empty")
	}
	path.Clear()
	if !path.IsEmpty() {
		t.Fatalf("cleared path should be empty")
	}
}
