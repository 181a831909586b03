package glbackend

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v3.3-core/gl"

	"github.com/hubastard/glade/engine/gfx"
)

type texture struct {
	id   uint32
	w, h int
}

func (t *texture) Size() (int, int) { return t.w, t.h }

func (t *texture) Release() {
	if t.id != 0 {
		gl.DeleteTextures(1, &t.id)
		t.id = 0
	}
}

// NewTexture uploads premultiplied RGBA8 pixels, sampled with nearest
// filtering and edge clamping.
func (d *Device) NewTexture(w, h int, pixels []byte) (gfx.Texture, error) {
	if w < 1 || h < 1 {
		return nil, &gfx.DeviceError{Op: "texture", Err: fmt.Errorf("size %dx%d", w, h)}
	}
	if pixels != nil && len(pixels) != w*h*4 {
		return nil, &gfx.DeviceError{Op: "texture", Err: fmt.Errorf("%dx%d wants %d bytes, got %d", w, h, w*h*4, len(pixels))}
	}

	t := &texture{w: w, h: h}
	gl.GenTextures(1, &t.id)
	gl.BindTexture(gl.TEXTURE_2D, t.id)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)

	var ptr unsafe.Pointer
	if pixels != nil {
		ptr = gl.Ptr(pixels)
	}
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8, int32(w), int32(h), 0, gl.RGBA, gl.UNSIGNED_BYTE, ptr)
	return t, nil
}

type shader struct {
	program uint32
	projLoc int32
}

func (s *shader) Release() {
	if s.program != 0 {
		gl.DeleteProgram(s.program)
		s.program = 0
	}
}

// NewShader compiles and links a program. Programs read the standard
// vertex layout at locations 0..2, take the target projection from
// "uProjection" and sample the batch texture via "uTexture" on unit
// zero.
func (d *Device) NewShader(vertexSrc, fragmentSrc string) (gfx.Shader, error) {
	s, err := newShader(vertexSrc, fragmentSrc)
	if err != nil {
		return nil, &gfx.DeviceError{Op: "shader", Err: err}
	}
	return s, nil
}

func newShader(vertexSrc, fragmentSrc string) (*shader, error) {
	prog, err := makeProgram(nullTerminated(vertexSrc), nullTerminated(fragmentSrc))
	if err != nil {
		return nil, err
	}
	s := &shader{program: prog}
	s.projLoc = gl.GetUniformLocation(prog, gl.Str("uProjection\x00"))
	if loc := gl.GetUniformLocation(prog, gl.Str("uTexture\x00")); loc >= 0 {
		gl.UseProgram(prog)
		gl.Uniform1i(loc, 0)
	}
	return s, nil
}

type canvas struct {
	fbo uint32
	tex *texture
}

func (c *canvas) Texture() gfx.Texture { return c.tex }
func (c *canvas) Size() (int, int)     { return c.tex.w, c.tex.h }

func (c *canvas) Release() {
	if c.fbo != 0 {
		gl.DeleteFramebuffers(1, &c.fbo)
		c.fbo = 0
	}
	c.tex.Release()
}

// NewCanvas builds an offscreen target with an RGBA8 color attachment.
func (d *Device) NewCanvas(w, h int) (gfx.Canvas, error) {
	t, err := d.NewTexture(w, h, nil)
	if err != nil {
		return nil, err
	}
	c := &canvas{tex: t.(*texture)}
	gl.GenFramebuffers(1, &c.fbo)
	gl.BindFramebuffer(gl.FRAMEBUFFER, c.fbo)
	gl.FramebufferTexture2D(gl.FRAMEBUFFER, gl.COLOR_ATTACHMENT0, gl.TEXTURE_2D, c.tex.id, 0)
	status := gl.CheckFramebufferStatus(gl.FRAMEBUFFER)
	d.applyTarget() // put the previous target back
	if status != gl.FRAMEBUFFER_COMPLETE {
		c.Release()
		return nil, &gfx.DeviceError{Op: "canvas", Err: fmt.Errorf("framebuffer status 0x%04x", status)}
	}
	return c, nil
}
