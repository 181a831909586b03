package main

import (
	"math"
	"math/rand"
	"time"

	"github.com/spf13/cobra"

	"github.com/hubastard/glade/engine/assets"
	"github.com/hubastard/glade/engine/colors"
	"github.com/hubastard/glade/engine/core"
	"github.com/hubastard/glade/engine/gfx"
	"github.com/hubastard/glade/engine/profiler"
	"github.com/hubastard/glade/engine/scratch"
)

func bunniesCmd() *cobra.Command {
	var (
		burst   int
		texPath string
	)
	cmd := &cobra.Command{
		Use:   "bunnies",
		Short: "batching stress test: hold the mouse to spawn sprites",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := sceneConfig(cmd, "bunnies")
			if err != nil {
				return err
			}
			l := &bunnyLayer{burst: burst, texPath: texPath}
			return runScene(cfg, l, newOverlay(l.status))
		},
	}
	cmd.Flags().IntVar(&burst, "burst", 100, "sprites spawned per tick while the mouse is held")
	cmd.Flags().StringVar(&texPath, "texture", "", "PNG sprite (default: built-in disc)")
	return cmd
}

const (
	bunnyGravity = 400 // canvas px/s^2
	bunnySpeed   = 250
)

type bunny struct {
	x, y   float32
	px, py float32 // previous tick, render interpolates between the two
	vx, vy float32
	tint   colors.Color
}

type bunnyLayer struct {
	burst   int
	texPath string

	tex     gfx.Texture
	size    float32
	bunnies []bunny
	blend   gfx.BlendMode
}

func (l *bunnyLayer) OnAttach(e *core.Engine) {
	var err error
	if l.texPath != "" {
		l.tex, err = assets.LoadTexture(e.Device, l.texPath)
	} else {
		l.tex, err = discTexture(e.Device, 24)
	}
	if err != nil {
		panic(err)
	}
	w, _ := l.tex.Size()
	l.size = float32(w)

	cw, ch := e.VirtualSize()
	l.spawn(float32(cw)/2, float32(ch)/3)
}

func (l *bunnyLayer) OnDetach(e *core.Engine) { l.tex.Release() }

func (l *bunnyLayer) spawn(x, y float32) {
	for i := 0; i < l.burst; i++ {
		l.bunnies = append(l.bunnies, bunny{
			x: x, y: y, px: x, py: y,
			vx: (rand.Float32()*2 - 1) * bunnySpeed,
			vy: -rand.Float32() * bunnySpeed,
			tint: colors.Color{
				0.5 + rand.Float32()*0.5,
				0.5 + rand.Float32()*0.5,
				0.5 + rand.Float32()*0.5,
				1,
			},
		})
	}
}

func (l *bunnyLayer) OnUpdate(e *core.Engine, dt time.Duration) error {
	cw, ch := e.VirtualSize()
	w, h := float32(cw), float32(ch)
	step := float32(dt.Seconds())

	for i := range l.bunnies {
		b := &l.bunnies[i]
		b.px, b.py = b.x, b.y
		b.vy += bunnyGravity * step
		b.x += b.vx * step
		b.y += b.vy * step

		switch {
		case b.x < 0:
			b.x, b.vx = 0, -b.vx
		case b.x > w-l.size:
			b.x, b.vx = w-l.size, -b.vx
		}
		if b.y > h-l.size {
			b.y = h - l.size
			b.vy = -b.vy * 0.85
		}
	}

	if e.Input.IsButtonDown(core.MouseLeft) || e.Input.IsKeyPressed(core.KeySpace) {
		mx, my := e.Mouse()
		l.spawn(float32(mx), float32(my))
	}
	if e.Input.IsKeyPressed(core.KeyB) {
		if l.blend == gfx.BlendSubtract {
			l.blend = gfx.BlendAlpha
		} else {
			l.blend++
		}
	}
	return nil
}

func (l *bunnyLayer) OnRender(e *core.Engine, blend float64) error {
	done := profiler.Start("bunnies.render")
	defer done()

	t := float32(blend)
	e.SetBlendMode(l.blend)
	p := gfx.DefaultParams()
	for i := range l.bunnies {
		b := &l.bunnies[i]
		p.X = b.px + (b.x-b.px)*t
		p.Y = b.py + (b.y-b.py)*t
		p.Color = b.tint
		if err := e.DrawTexture(l.tex, p); err != nil {
			return err
		}
	}
	e.SetBlendMode(gfx.BlendAlpha)
	return nil
}

func (l *bunnyLayer) OnEvent(e *core.Engine, ev core.Event) bool { return false }

func (l *bunnyLayer) status(e *core.Engine, b *scratch.Buffer) {
	b.S("bunnies ").I(len(l.bunnies)).S("  blend ").S(l.blend.String()).S(" (B cycles)")
}

// discTexture builds a premultiplied white disc, the stand-in sprite
// when no --texture is given.
func discTexture(d gfx.Device, size int) (gfx.Texture, error) {
	pix := make([]byte, size*size*4)
	c := (float32(size) - 1) / 2
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			dx, dy := float32(x)-c, float32(y)-c
			a := c - float32(math.Sqrt(float64(dx*dx+dy*dy))) + 0.5
			a = min(max(a, 0), 1)
			v := byte(a * 255)
			i := (y*size + x) * 4
			pix[i], pix[i+1], pix[i+2], pix[i+3] = v, v, v, v
		}
	}
	return d.NewTexture(size, size, pix)
}
