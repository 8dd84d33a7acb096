package gfx

import (
	"context"

	"glquad/internal/platform"
)

type WindowConfig struct {
	Width  int
	Height int
	Title  string
	VSync  bool
}

func (c WindowConfig) convert() platform.WindowConfig {
	return platform.WindowConfig{Width: c.Width, Height: c.Height, Title: c.Title, VSync: c.VSync}
}

// Window owns the platform window and drives the render loop. All methods
// must be called from the thread that created the window.
type Window struct {
	platformWinWrapper platform.PlatformWindowWrapper
	renderer           Renderer
	width              int
	height             int
}

func NewWindow(conf WindowConfig) (*Window, error) {
	wrapper, err := platform.NewPlatformWindowWrapper(conf.convert())
	if err != nil {
		return nil, err
	}
	return &Window{
		platformWinWrapper: wrapper,
		width:              conf.Width,
		height:             conf.Height,
	}, nil
}

func (w *Window) Size() (int, int) {
	if w == nil {
		return 0, 0
	}
	return w.width, w.height
}

func (w *Window) SetRenderer(renderer Renderer) {
	if w == nil {
		return
	}
	if w.renderer != nil {
		w.renderer.Close()
	}
	w.renderer = renderer
}

// Run blocks until the window is closed or ctx is cancelled. Each iteration
// renders one frame, swaps buffers, then processes pending window events.
func (w *Window) Run(ctx context.Context) {
	for !w.platformWinWrapper.ShouldClose() {
		select {
		case <-ctx.Done():
			return
		default:
		}
		if w.renderer != nil {
			w.renderer.Render(w)
		}
		w.platformWinWrapper.SwapBuffers()
		w.platformWinWrapper.PollEvents()
	}
}

func (w *Window) Close() {
	if w.renderer != nil {
		w.renderer.Close()
		w.renderer = nil
	}
	w.platformWinWrapper.Close()
}
