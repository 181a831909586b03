package main

import (
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/hubastard/glade/engine/colors"
	"github.com/hubastard/glade/engine/core"
	"github.com/hubastard/glade/engine/gfx/batch"
	"github.com/hubastard/glade/engine/profiler"
	"github.com/hubastard/glade/engine/scratch"
	"github.com/hubastard/glade/engine/text"
)

const overlayFontSize = 14

// overlayLayer prints frame and batching stats in the top-left corner.
// Scenes append one extra status line; Ctrl+P dumps a speedscope
// profile when built with the profile tag.
//
// The text is built in a scratch buffer so the overlay itself does not
// show up in the alloc counter it displays.
type overlayLayer struct {
	fontPath string
	status   func(*core.Engine, *scratch.Buffer)

	font  *text.Font
	stats batch.Stats
	buf   scratch.Buffer
}

func newOverlay(status func(*core.Engine, *scratch.Buffer)) *overlayLayer {
	return &overlayLayer{fontPath: flagFont, status: status}
}

func (l *overlayLayer) OnAttach(e *core.Engine) {
	var err error
	if l.fontPath != "" {
		l.font, err = text.LoadTTF(e.Device, l.fontPath, overlayFontSize)
	} else {
		l.font, err = text.New(e.Device, goregular.TTF, overlayFontSize)
	}
	if err != nil {
		panic(err)
	}
}

func (l *overlayLayer) OnDetach(e *core.Engine) { l.font.Release() }

// OnUpdate snapshots the previous frame's final counters; during
// OnRender the current frame is still accumulating.
func (l *overlayLayer) OnUpdate(e *core.Engine, dt time.Duration) error {
	l.stats = e.Stats()
	return nil
}

func (l *overlayLayer) OnRender(e *core.Engine, blend float64) error {
	done := profiler.Start("overlay.render")
	defer done()

	e.ResetTransform()

	var frameMs float64
	if fps := e.FPS(); fps > 0 {
		frameMs = 1000 / fps
	}

	b := &l.buf
	b.Reset()
	b.S("fps ").F(e.FPS(), 1).S("  frame ").F(frameMs, 2).S("ms  blend ").F(blend, 2)
	b.C('\n').S(e.Timestep().String()).S(" @ ").F(e.TickRate().Seconds()*1000, 2).S("ms")
	b.S("  draws ").I(l.stats.DrawCalls).S("  cmds ").I(l.stats.Commands).S("  verts ").I(l.stats.Vertices)
	b.C('\n').S("mem ").F(float64(profiler.MemoryUsage())/(1<<20), 1).S("MB")
	b.S("  allocs ").U(profiler.MemoryAllocs()).S("  goroutines ").I(profiler.NumGoroutine())
	if l.status != nil {
		b.C('\n')
		l.status(e, b)
	}

	s := b.View()
	tw, th := text.Measure(l.font, s)
	if err := e.FillRect(8, 8, tw+16, th+16, colors.Black.WithAlpha(0.55)); err != nil {
		return err
	}
	return text.Draw(e, l.font, s, 16, 16, colors.White)
}

func (l *overlayLayer) OnEvent(e *core.Engine, ev core.Event) bool {
	k, ok := ev.(core.EventKey)
	if !ok || !k.Down || k.Key != core.KeyP || k.Mods&core.ModCtrl == 0 {
		return false
	}
	path, err := profiler.Dump("")
	if err != nil {
		log.Error("profile dump failed", "err", err)
	} else {
		log.Info("profile written", "path", path)
	}
	return true
}
