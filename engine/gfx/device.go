package gfx

import "github.com/hubastard/glade/engine/colors"

// Texture is an opaque GPU image handle.
type Texture interface {
	Size() (w, h int)
	Release()
}

// Shader is an opaque GPU program handle. Programs must bind the
// standard vertex layout (position, texcoord, color) by location.
type Shader interface {
	Release()
}

// Canvas is an offscreen render target whose color attachment can be
// drawn like any texture.
type Canvas interface {
	Texture() Texture
	Size() (w, h int)
	Release()
}

// Device is the graphics backend boundary. Implementations are not safe
// for concurrent use; everything runs on the render thread.
//
// Handles returned by the New* methods are owned by the caller and must
// be released exactly once.
type Device interface {
	// NewTexture uploads w*h tightly packed premultiplied RGBA8 pixels.
	// A nil pixels slice allocates uninitialized storage.
	NewTexture(w, h int, pixels []byte) (Texture, error)
	NewShader(vertexSrc, fragmentSrc string) (Shader, error)
	NewCanvas(w, h int) (Canvas, error)

	// SetCanvas redirects rendering to c, or to the window framebuffer
	// when c is nil. Adjusts viewport and projection to the target size.
	SetCanvas(c Canvas)

	// SetWindowSize tells the device the window framebuffer size, used
	// for the nil-canvas projection. Called on resize events.
	SetWindowSize(w, h int)

	Clear(c colors.Color)

	// Draw submits one batch: indexed triangles over verts under state.
	// A nil state.Shader draws with the default sprite shader.
	Draw(verts []Vertex, indices []uint32, state DrawState) error

	Release()
}
