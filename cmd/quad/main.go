package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"runtime"

	"glquad/internal/renderer"
	"glquad/pkg/gfx"
)

// The GL context is bound to the thread that created it.
func init() {
	runtime.LockOSThread()
}

var quad = renderer.MeshData{
	Vertices: []float32{
		-0.5, -0.5,
		0.5, -0.5,
		0.5, 0.5,
		-0.5, 0.5,
	},
	Indices: []uint32{
		0, 1, 2,
		2, 3, 0,
	},
}

func main() {
	var (
		width      = flag.Int("width", 640, "window width in pixels")
		height     = flag.Int("height", 480, "window height in pixels")
		title      = flag.String("title", "Hello World", "window title")
		shaderPath = flag.String("shader", "res/shaders/basic.shader", "combined vertex/fragment shader file")
		vsync      = flag.Bool("vsync", true, "synchronize buffer swaps with the display")
	)
	flag.Parse()

	conf := gfx.WindowConfig{
		Width:  *width,
		Height: *height,
		Title:  *title,
		VSync:  *vsync,
	}
	if err := run(conf, *shaderPath); err != nil {
		slog.Error("startup failed", "err", err)
		os.Exit(1)
	}
}

func run(conf gfx.WindowConfig, shaderPath string) error {
	source, err := gfx.LoadShaderFile(shaderPath)
	if err != nil {
		return err
	}

	window, err := gfx.NewWindow(conf)
	if err != nil {
		return err
	}
	defer window.Close()

	quadRenderer, err := renderer.New(source, quad)
	if err != nil {
		return err
	}
	window.SetRenderer(quadRenderer)

	window.Run(context.Background())
	return nil
}
