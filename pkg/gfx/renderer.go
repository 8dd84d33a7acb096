package gfx

// Renderer draws one frame into the window's current GL context.
type Renderer interface {
	Render(w *Window)
	Close()
}
