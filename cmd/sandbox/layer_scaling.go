package main

import (
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/hubastard/glade/engine/colors"
	"github.com/hubastard/glade/engine/core"
	"github.com/hubastard/glade/engine/gfx"
	"github.com/hubastard/glade/engine/gfx/scaling"
	"github.com/hubastard/glade/engine/scratch"
)

func scalingCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "scaling",
		Short: "cycle canvas scaling modes over a low-res canvas",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := sceneConfig(cmd, "scaling")
			if err != nil {
				return err
			}
			// A canvas smaller than the window makes the modes obvious.
			cfg.CanvasWidth, cfg.CanvasHeight = 640, 360
			cfg.Background = colors.DarkGray
			l := &scalingLayer{}
			return runScene(cfg, l, newOverlay(l.status))
		},
	}
}

// scalingLayer draws a reference pattern on the canvas so stretching,
// bars and cropping are visible, plus a crosshair at the mouse's
// virtual position to eyeball the coordinate mapping.
type scalingLayer struct{}

func (l *scalingLayer) OnAttach(e *core.Engine) {}
func (l *scalingLayer) OnDetach(e *core.Engine) {}

func (l *scalingLayer) OnUpdate(e *core.Engine, dt time.Duration) error {
	if e.Input.IsKeyPressed(core.KeySpace) {
		mode := nextScalingMode(e.ScalingPolicy())
		e.SetScalingPolicy(mode)
		e.Window.SetTitle("glade scaling: " + mode.String())
		log.Info("scaling mode", "mode", mode)
	}
	return nil
}

func nextScalingMode(m scaling.Mode) scaling.Mode {
	if m == scaling.Fixed {
		return scaling.Stretch
	}
	return m + 1
}

func (l *scalingLayer) OnRender(e *core.Engine, blend float64) error {
	cw, ch := e.VirtualSize()
	w, h := float32(cw), float32(ch)

	var err error
	fill := func(x, y, fw, fh float32, c colors.Color) {
		if err == nil {
			err = e.FillRect(x, y, fw, fh, c)
		}
	}

	// dot grid, so distortion and cropping show
	for y := 16; y < ch; y += 32 {
		for x := 16; x < cw; x += 32 {
			fill(float32(x)-1, float32(y)-1, 2, 2, colors.Gray)
		}
	}

	// scissored stripes in the middle
	e.SetScissor(gfx.ClipRect(int32(cw/4), int32(ch/4), int32(cw/2), int32(ch/2)))
	for x := 0; x < cw; x += 24 {
		fill(float32(x), 0, 8, h, colors.Cyan.WithAlpha(0.2))
	}
	e.ResetScissor()

	// canvas border
	fill(0, 0, w, 2, colors.Yellow)
	fill(0, h-2, w, 2, colors.Yellow)
	fill(0, 0, 2, h, colors.Yellow)
	fill(w-2, 0, 2, h, colors.Yellow)

	// center marker and mouse crosshair
	fill(w/2-3, h/2-3, 6, 6, colors.White)
	mx, my := e.Mouse()
	fill(float32(mx)-8, float32(my)-1, 16, 2, colors.Red)
	fill(float32(mx)-1, float32(my)-8, 2, 16, colors.Red)

	return err
}

func (l *scalingLayer) OnEvent(e *core.Engine, ev core.Event) bool { return false }

func (l *scalingLayer) status(e *core.Engine, b *scratch.Buffer) {
	mx, my := e.Mouse()
	b.S("mode ").S(e.ScalingPolicy().String()).S(" (space cycles)  mouse ").F(mx, 0).C(',').F(my, 0)
}
