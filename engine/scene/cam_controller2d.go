package scene

import (
	"math"
	"time"

	"github.com/hubastard/glade/engine/core"
)

// Controller2D drives a Camera2D from the keyboard: WASD pans, Q/E
// rotates, Z/X zooms. Call Update from a fixed-step update hook.
type Controller2D struct {
	PanSpeed  float32 // canvas units per second at zoom 1
	RotSpeed  float32 // radians per second
	ZoomSpeed float32 // zoom factor per second
	Camera    *Camera2D
}

func NewController2D(cam *Camera2D) *Controller2D {
	return &Controller2D{
		PanSpeed:  300,
		RotSpeed:  2,
		ZoomSpeed: 1.5,
		Camera:    cam,
	}
}

func (cc *Controller2D) Update(e *core.Engine, dt time.Duration) {
	in := e.Input
	step := float32(dt.Seconds())
	pan := cc.PanSpeed * step / cc.Camera.Zoom

	if in.IsKeyDown(core.KeyW) {
		cc.Camera.Move(0, -pan)
	}
	if in.IsKeyDown(core.KeyS) {
		cc.Camera.Move(0, pan)
	}
	if in.IsKeyDown(core.KeyA) {
		cc.Camera.Move(-pan, 0)
	}
	if in.IsKeyDown(core.KeyD) {
		cc.Camera.Move(pan, 0)
	}

	if in.IsKeyDown(core.KeyQ) {
		cc.Camera.Rotate(-cc.RotSpeed * step)
	}
	if in.IsKeyDown(core.KeyE) {
		cc.Camera.Rotate(cc.RotSpeed * step)
	}

	if in.IsKeyDown(core.KeyZ) {
		cc.Camera.SetZoom(cc.Camera.Zoom * zoomStep(cc.ZoomSpeed, step))
	}
	if in.IsKeyDown(core.KeyX) {
		cc.Camera.SetZoom(cc.Camera.Zoom / zoomStep(cc.ZoomSpeed, step))
	}
}

func zoomStep(perSecond, dt float32) float32 {
	return float32(math.Pow(float64(perSecond), float64(dt)))
}
