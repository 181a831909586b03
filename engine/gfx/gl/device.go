// Package glbackend implements the gfx.Device boundary on OpenGL 3.3
// core. The GL context must be current on the calling thread; the
// platform window guarantees that for the main thread.
package glbackend

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v3.3-core/gl"

	"github.com/hubastard/glade/engine/colors"
	"github.com/hubastard/glade/engine/core"
	"github.com/hubastard/glade/engine/gfx"
)

// Device streams every batch through one VAO/VBO/IBO trio and keeps the
// projection for the bound render target.
type Device struct {
	vao uint32
	vbo uint32
	ibo uint32

	vboCap int // bytes
	iboCap int // bytes

	sprite *shader

	windowW, windowH int
	target           *canvas // nil = window framebuffer
	proj             [16]float32
}

// New builds the device against the window's current GL context. The
// batch vertex ceiling sizes the streaming buffers.
func New(win core.Window, cfg core.Config) (*Device, error) {
	d := &Device{}
	d.windowW, d.windowH = win.FramebufferSize()

	var err error
	d.sprite, err = newShader(spriteVertexSrc, spriteFragmentSrc)
	if err != nil {
		return nil, &gfx.DeviceError{Op: "init", Err: err}
	}

	d.vboCap = cfg.MaxBatchVertices * gfx.VertexStride
	d.iboCap = cfg.MaxBatchVertices / 4 * 6 * 4

	gl.GenVertexArrays(1, &d.vao)
	gl.BindVertexArray(d.vao)

	gl.GenBuffers(1, &d.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, d.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, d.vboCap, nil, gl.STREAM_DRAW)

	gl.GenBuffers(1, &d.ibo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, d.ibo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, d.iboCap, nil, gl.STREAM_DRAW)

	// layout(location = 0) in vec2 aPos;
	// layout(location = 1) in vec2 aUV;
	// layout(location = 2) in vec4 aColor;
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, gfx.VertexStride, unsafe.Pointer(uintptr(0)))
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointer(1, 2, gl.FLOAT, false, gfx.VertexStride, unsafe.Pointer(uintptr(2*4)))
	gl.EnableVertexAttribArray(2)
	gl.VertexAttribPointer(2, 4, gl.FLOAT, false, gfx.VertexStride, unsafe.Pointer(uintptr(4*4)))

	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)

	gl.Enable(gl.BLEND)
	gl.Disable(gl.DEPTH_TEST)

	d.applyTarget()
	return d, nil
}

// SetCanvas redirects rendering to c, or back to the window framebuffer
// when c is nil.
func (d *Device) SetCanvas(c gfx.Canvas) {
	if c == nil {
		d.target = nil
	} else {
		d.target = c.(*canvas)
	}
	d.applyTarget()
}

func (d *Device) SetWindowSize(w, h int) {
	if w < 1 || h < 1 {
		return // minimized
	}
	d.windowW, d.windowH = w, h
	if d.target == nil {
		d.applyTarget()
	}
}

// applyTarget binds the current render target and rebuilds the
// projection for its size. Canvas targets flip Y so row zero of the
// attachment holds the top of the image; drawing the attachment with
// plain UVs then comes out upright.
func (d *Device) applyTarget() {
	if d.target == nil {
		gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
		gl.Viewport(0, 0, int32(d.windowW), int32(d.windowH))
		d.proj = ortho(d.windowW, d.windowH, false)
		return
	}
	gl.BindFramebuffer(gl.FRAMEBUFFER, d.target.fbo)
	gl.Viewport(0, 0, int32(d.target.tex.w), int32(d.target.tex.h))
	d.proj = ortho(d.target.tex.w, d.target.tex.h, true)
}

// ortho maps pixel coordinates with a top-left origin onto clip space.
func ortho(w, h int, flip bool) [16]float32 {
	var m [16]float32
	m[0] = 2 / float32(w)
	m[10] = -1
	m[12] = -1
	m[15] = 1
	if flip {
		m[5] = 2 / float32(h)
		m[13] = -1
	} else {
		m[5] = -2 / float32(h)
		m[13] = 1
	}
	return m
}

func (d *Device) Clear(c colors.Color) {
	gl.Disable(gl.SCISSOR_TEST)
	gl.ClearColor(c[0], c[1], c[2], c[3])
	gl.Clear(gl.COLOR_BUFFER_BIT)
}

func (d *Device) Draw(verts []gfx.Vertex, indices []uint32, state gfx.DrawState) error {
	if len(verts) == 0 || len(indices) == 0 {
		return nil
	}
	tex, ok := state.Texture.(*texture)
	if !ok {
		return &gfx.DeviceError{Op: "draw", Err: fmt.Errorf("foreign texture handle %T", state.Texture)}
	}
	sh := d.sprite
	if state.Shader != nil {
		s, ok := state.Shader.(*shader)
		if !ok {
			return &gfx.DeviceError{Op: "draw", Err: fmt.Errorf("foreign shader handle %T", state.Shader)}
		}
		sh = s
	}

	gl.UseProgram(sh.program)
	if sh.projLoc >= 0 {
		gl.UniformMatrix4fv(sh.projLoc, 1, false, &d.proj[0])
	}
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, tex.id)

	d.applyBlend(state.Blend)
	d.applyScissor(state.Clip)

	gl.BindVertexArray(d.vao)
	d.stream(verts, indices)
	gl.DrawElements(gl.TRIANGLES, int32(len(indices)), gl.UNSIGNED_INT, unsafe.Pointer(uintptr(0)))
	gl.BindVertexArray(0)

	if e := gl.GetError(); e != gl.NO_ERROR {
		return &gfx.DeviceError{Op: "draw", Err: fmt.Errorf("GL error 0x%04x", e)}
	}
	return nil
}

// stream orphans the old storage and uploads this batch.
func (d *Device) stream(verts []gfx.Vertex, indices []uint32) {
	vn := len(verts) * gfx.VertexStride
	if vn > d.vboCap {
		d.vboCap = vn * 2
	}
	gl.BindBuffer(gl.ARRAY_BUFFER, d.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, d.vboCap, nil, gl.STREAM_DRAW)
	gl.BufferSubData(gl.ARRAY_BUFFER, 0, vn, gl.Ptr(verts))

	in := len(indices) * 4
	if in > d.iboCap {
		d.iboCap = in * 2
	}
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, d.ibo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, d.iboCap, nil, gl.STREAM_DRAW)
	gl.BufferSubData(gl.ELEMENT_ARRAY_BUFFER, 0, in, gl.Ptr(indices))
}

// Batches carry premultiplied alpha, so straight source factors never
// reach the blender.
func (d *Device) applyBlend(mode gfx.BlendMode) {
	switch mode {
	case gfx.BlendAdd:
		gl.BlendEquation(gl.FUNC_ADD)
		gl.BlendFunc(gl.ONE, gl.ONE)
	case gfx.BlendMultiply:
		gl.BlendEquation(gl.FUNC_ADD)
		gl.BlendFunc(gl.DST_COLOR, gl.ONE_MINUS_SRC_ALPHA)
	case gfx.BlendSubtract:
		gl.BlendEquation(gl.FUNC_REVERSE_SUBTRACT)
		gl.BlendFunc(gl.ONE, gl.ONE)
	default:
		gl.BlendEquation(gl.FUNC_ADD)
		gl.BlendFunc(gl.ONE, gl.ONE_MINUS_SRC_ALPHA)
	}
}

// applyScissor converts the top-left clip rect to GL's bottom-left
// origin. Canvas targets already render flipped, so their rects pass
// through unchanged.
func (d *Device) applyScissor(clip gfx.Scissor) {
	if !clip.Enabled {
		gl.Disable(gl.SCISSOR_TEST)
		return
	}
	w := max(clip.W, 0)
	h := max(clip.H, 0)
	y := clip.Y
	if d.target == nil {
		y = int32(d.windowH) - clip.Y - h
	}
	gl.Enable(gl.SCISSOR_TEST)
	gl.Scissor(clip.X, y, w, h)
}

func (d *Device) Release() {
	if d.sprite != nil {
		d.sprite.Release()
		d.sprite = nil
	}
	if d.ibo != 0 {
		gl.DeleteBuffers(1, &d.ibo)
		d.ibo = 0
	}
	if d.vbo != 0 {
		gl.DeleteBuffers(1, &d.vbo)
		d.vbo = 0
	}
	if d.vao != 0 {
		gl.DeleteVertexArrays(1, &d.vao)
		d.vao = 0
	}
}
