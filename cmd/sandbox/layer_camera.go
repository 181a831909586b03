package main

import (
	"math"
	"time"

	"github.com/spf13/cobra"

	"github.com/hubastard/glade/engine/colors"
	"github.com/hubastard/glade/engine/core"
	"github.com/hubastard/glade/engine/gfx"
	"github.com/hubastard/glade/engine/scene"
	"github.com/hubastard/glade/engine/scratch"
)

func cameraCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "camera",
		Short: "2D camera over a tiled world: WASD pans, Q/E rotates, Z/X zooms",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := sceneConfig(cmd, "camera")
			if err != nil {
				return err
			}
			l := &cameraLayer{}
			return runScene(cfg, l, newOverlay(l.status))
		},
	}
}

type cameraLayer struct {
	cam  *scene.Camera2D
	ctrl *scene.Controller2D
	tex  gfx.Texture
	anim *gfx.Animation
}

func (l *cameraLayer) OnAttach(e *core.Engine) {
	l.cam = scene.NewCamera2D(e.VirtualSize())
	l.ctrl = scene.NewController2D(l.cam)

	var err error
	l.tex, err = pulseTexture(e.Device)
	if err != nil {
		panic(err)
	}
	l.anim = gfx.NewAnimation(l.tex, gfx.Row(0, 0, pulseFrame, pulseFrame, pulseFrames), 150*time.Millisecond)
}

func (l *cameraLayer) OnDetach(e *core.Engine) { l.tex.Release() }

func (l *cameraLayer) OnUpdate(e *core.Engine, dt time.Duration) error {
	l.ctrl.Update(e, dt)
	l.anim.Advance(dt)
	return nil
}

func (l *cameraLayer) OnRender(e *core.Engine, blend float64) error {
	e.SetTransform(l.cam.View())
	defer e.ResetTransform()

	var err error
	fill := func(x, y, w, h float32, c colors.Color) {
		if err == nil {
			err = e.FillRect(x, y, w, h, c)
		}
	}

	// checkerboard world around the origin
	for gy := -6; gy <= 6; gy++ {
		for gx := -6; gx <= 6; gx++ {
			c := colors.Color{0.16, 0.18, 0.22, 1}
			if (gx+gy)%2 == 0 {
				c = colors.Color{0.10, 0.11, 0.14, 1}
			}
			fill(float32(gx)*64-30, float32(gy)*64-30, 60, 60, c)
		}
	}
	// world axes
	fill(-2, -200, 4, 400, colors.Green.WithAlpha(0.4))
	fill(-200, -2, 400, 4, colors.Red.WithAlpha(0.4))
	if err != nil {
		return err
	}

	p := gfx.At(-pulseFrame*2, -pulseFrame*2)
	p.ScaleX, p.ScaleY = 4, 4
	return e.Draw(l.anim.Source(), p)
}

func (l *cameraLayer) OnEvent(e *core.Engine, ev core.Event) bool { return false }

func (l *cameraLayer) status(e *core.Engine, b *scratch.Buffer) {
	mx, my := e.Mouse()
	wx, wy := l.cam.CanvasToWorld(float32(mx), float32(my))
	b.S("cam ").F(float64(l.cam.X), 0).C(',').F(float64(l.cam.Y), 0)
	b.S("  zoom ").F(float64(l.cam.Zoom), 2).S("  rot ").F(float64(l.cam.Rotation), 2)
	b.S("  world ").F(float64(wx), 0).C(',').F(float64(wy), 0)
}

const (
	pulseFrame  = 16
	pulseFrames = 4
)

// pulseTexture is a horizontal strip of discs stepping up in radius,
// the animation's frames.
func pulseTexture(d gfx.Device) (gfx.Texture, error) {
	w, h := pulseFrame*pulseFrames, pulseFrame
	pix := make([]byte, w*h*4)
	for f := 0; f < pulseFrames; f++ {
		r := 3 + float32(f)*1.6
		cx := float32(f*pulseFrame) + (pulseFrame-1)/2.0
		cy := (float32(pulseFrame) - 1) / 2
		for y := 0; y < h; y++ {
			for x := f * pulseFrame; x < (f+1)*pulseFrame; x++ {
				dx, dy := float32(x)-cx, float32(y)-cy
				a := r - float32(math.Sqrt(float64(dx*dx+dy*dy))) + 0.5
				a = min(max(a, 0), 1)
				v := byte(a * 255)
				i := (y*w + x) * 4
				pix[i], pix[i+1], pix[i+2], pix[i+3] = v, v, v, v
			}
		}
	}
	return d.NewTexture(w, h, pix)
}
