package platform

type WindowConfig struct {
	Width  int
	Height int
	Title  string
	VSync  bool
}

// PlatformWindowWrapper hides the windowing backend from the rest of the
// program. The wrapper owns the native window and its GL context; the
// context is current on the calling thread from creation until Close.
type PlatformWindowWrapper interface {
	ShouldClose() bool
	SwapBuffers()
	PollEvents()
	Size() (int, int)
	Close()
}
