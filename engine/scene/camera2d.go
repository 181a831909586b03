// Package scene carries camera helpers for the 2D draw surface.
package scene

import "github.com/hubastard/glade/engine/gfx"

const minZoom = 0.05

// Camera2D pans, rotates and zooms the scene around a focus point. Its
// view transform maps world coordinates onto the virtual canvas with
// the focus at the canvas center; feed it to Engine.SetTransform.
type Camera2D struct {
	X, Y     float32 // world focus
	Rotation float32 // radians
	Zoom     float32 // 1 = no zoom

	canvasW, canvasH float32
}

func NewCamera2D(canvasW, canvasH int) *Camera2D {
	return &Camera2D{Zoom: 1, canvasW: float32(canvasW), canvasH: float32(canvasH)}
}

func (c *Camera2D) SetCanvasSize(w, h int) {
	c.canvasW, c.canvasH = float32(w), float32(h)
}

func (c *Camera2D) Move(dx, dy float32) { c.X += dx; c.Y += dy }
func (c *Camera2D) Rotate(d float32)    { c.Rotation += d }

func (c *Camera2D) SetZoom(z float32) {
	if z < minZoom {
		z = minZoom
	}
	c.Zoom = z
}

// View is the world-to-canvas transform.
func (c *Camera2D) View() gfx.Affine {
	m := gfx.Translation(c.canvasW/2, c.canvasH/2)
	if c.Zoom != 1 {
		m = m.Mul(gfx.Scaling(c.Zoom, c.Zoom))
	}
	if c.Rotation != 0 {
		m = m.Mul(gfx.Rotation(-c.Rotation))
	}
	return m.Mul(gfx.Translation(-c.X, -c.Y))
}

// CanvasToWorld maps a canvas point (virtual coordinates, as returned
// by Engine.Mouse) back into world space.
func (c *Camera2D) CanvasToWorld(x, y float32) (float32, float32) {
	m := gfx.Translation(c.X, c.Y)
	if c.Rotation != 0 {
		m = m.Mul(gfx.Rotation(c.Rotation))
	}
	if c.Zoom != 1 {
		m = m.Mul(gfx.Scaling(1/c.Zoom, 1/c.Zoom))
	}
	m = m.Mul(gfx.Translation(-c.canvasW/2, -c.canvasH/2))
	return m.Apply(x, y)
}
