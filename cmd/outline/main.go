// Command outline renders shape-outline scenes described in YAML to PNG
// or SVG files, and emits interpolation frame sequences for inspecting
// shape morphs.
package main

import (
	"os"

	"github.com/go-drift/outline/cmd/outline/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
