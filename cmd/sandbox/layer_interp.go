package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/hubastard/glade/engine/clock"
	"github.com/hubastard/glade/engine/colors"
	"github.com/hubastard/glade/engine/core"
	"github.com/hubastard/glade/engine/scratch"
)

func interpCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "interpolation",
		Short: "fixed-timestep judder vs blended rendering",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := sceneConfig(cmd, "interpolation")
			if err != nil {
				return err
			}
			if flagTimestep == "" && flagTick == 0 {
				// A slow tick makes the difference unmissable.
				cfg.Timestep = clock.Fixed
				cfg.TickRate = time.Second / 20
			}
			l := &interpLayer{}
			return runScene(cfg, l, newOverlay(l.status))
		},
	}
}

const interpSquare = 32

// interpLayer bounces two squares with the same simulation. The top
// one renders at the raw tick position, the bottom one blends between
// the last two ticks.
type interpLayer struct {
	x, px float32
	vx    float32
	tick  time.Duration
}

func (l *interpLayer) OnAttach(e *core.Engine) {
	l.vx = 280
	l.tick = e.TickRate()
}

func (l *interpLayer) OnDetach(e *core.Engine) {}

func (l *interpLayer) OnUpdate(e *core.Engine, dt time.Duration) error {
	cw, _ := e.VirtualSize()
	w := float32(cw)

	l.px = l.x
	l.x += l.vx * float32(dt.Seconds())
	switch {
	case l.x < 0:
		l.x, l.vx = 0, -l.vx
	case l.x > w-interpSquare:
		l.x, l.vx = w-interpSquare, -l.vx
	}

	in := e.Input
	switch {
	case in.IsKeyPressed(core.KeyT) && e.Timestep() == clock.Fixed:
		e.SetTimestep(clock.Variable, l.tick)
	case in.IsKeyPressed(core.KeyT):
		e.SetTimestep(clock.Fixed, l.tick)
	case in.IsKeyPressed(core.Key1):
		l.tick = time.Second / 10
		e.SetTimestep(clock.Fixed, l.tick)
	case in.IsKeyPressed(core.Key2):
		l.tick = time.Second / 60
		e.SetTimestep(clock.Fixed, l.tick)
	}
	return nil
}

func (l *interpLayer) OnRender(e *core.Engine, blend float64) error {
	_, ch := e.VirtualSize()
	h := float32(ch)

	if err := e.FillRect(l.x, h/3-interpSquare/2, interpSquare, interpSquare, colors.Red); err != nil {
		return err
	}
	sx := l.px + (l.x-l.px)*float32(blend)
	return e.FillRect(sx, 2*h/3-interpSquare/2, interpSquare, interpSquare, colors.Green)
}

func (l *interpLayer) OnEvent(e *core.Engine, ev core.Event) bool { return false }

func (l *interpLayer) status(e *core.Engine, b *scratch.Buffer) {
	b.S("top raw, bottom blended  T toggles ").S(e.Timestep().String()).S("  1/2 set tick 10/60Hz")
}
