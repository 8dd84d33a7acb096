package platform

import (
	"fmt"

	"github.com/go-gl/glfw/v3.3/glfw"
)

type glfwWindowWrapper struct {
	window *glfw.Window
}

// NewPlatformWindowWrapper creates the native window and its OpenGL 3.3
// core context, and makes the context current on the calling thread.
func NewPlatformWindowWrapper(conf WindowConfig) (PlatformWindowWrapper, error) {
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("glfw.Init failed: %w", err)
	}

	glfw.WindowHint(glfw.ContextVersionMajor, 3)
	glfw.WindowHint(glfw.ContextVersionMinor, 3)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Resizable, glfw.False)

	window, err := glfw.CreateWindow(conf.Width, conf.Height, conf.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("glfw.CreateWindow failed: %w", err)
	}

	window.MakeContextCurrent()
	if conf.VSync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}

	return &glfwWindowWrapper{window: window}, nil
}

func (w *glfwWindowWrapper) ShouldClose() bool {
	return w.window.ShouldClose()
}

func (w *glfwWindowWrapper) SwapBuffers() {
	w.window.SwapBuffers()
}

func (w *glfwWindowWrapper) PollEvents() {
	glfw.PollEvents()
}

func (w *glfwWindowWrapper) Size() (int, int) {
	return w.window.GetSize()
}

func (w *glfwWindowWrapper) Close() {
	w.window.Destroy()
	glfw.Terminate()
}
