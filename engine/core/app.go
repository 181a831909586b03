package core

import (
	"time"

	"github.com/hubastard/glade/engine/clock"
	"github.com/hubastard/glade/engine/colors"
	"github.com/hubastard/glade/engine/gfx/batch"
	"github.com/hubastard/glade/engine/gfx/scaling"
)

// App defines the game/application hooks. An error returned from
// OnStart, OnUpdate or OnRender halts the loop and propagates out of
// Run unchanged; the engine never retries a callback.
type App interface {
	OnStart(e *Engine) error                    // once, after window/device init
	OnUpdate(e *Engine, dt time.Duration) error // zero or more per frame, per the timestep
	OnRender(e *Engine, blend float64) error    // once per frame; blend interpolates ticks
	OnEvent(e *Engine, ev Event)                // input/window events
	OnShutdown(e *Engine)                       // before exit
}

// Config for an engine run. A zero-valued option means "use the
// documented default", except the colors, whose zero value is
// transparent black; start from DefaultConfig when building one by
// hand so the booleans (VSync) and colors come out right.
type Config struct {
	Title     string // default "glade"
	Width     int    // window width, default 1280
	Height    int    // window height, default 720
	VSync     bool
	Resizable bool

	// Virtual canvas size; defaults to the window size.
	CanvasWidth  int
	CanvasHeight int
	// ScalingMode maps the canvas onto the window, default Letterbox.
	ScalingMode scaling.Mode
	// Background fills the window outside the canvas (letterbox bars).
	// DefaultConfig sets opaque black; the zero value stays transparent
	// black, so explicit transparency is expressible.
	Background colors.Color
	// ClearColor wipes the canvas at the top of each frame.
	// DefaultConfig sets opaque black.
	ClearColor colors.Color

	Timestep clock.Mode
	// TickRate is the fixed-mode tick duration, default 1/60s.
	TickRate time.Duration
	// MaxAccumulation caps unconsumed simulation time, default 150ms.
	MaxAccumulation time.Duration
	// MaxBatchVertices is the per-flush vertex ceiling, default 8192.
	MaxBatchVertices int

	QuitOnEscape bool
}

// DefaultConfig returns the documented defaults.
func DefaultConfig() Config {
	return Config{
		Title:            "glade",
		Width:            1280,
		Height:           720,
		VSync:            true,
		ScalingMode:      scaling.Letterbox,
		Background:       colors.Black,
		ClearColor:       colors.Black,
		Timestep:         clock.Fixed,
		TickRate:         clock.DefaultTickRate,
		MaxAccumulation:  clock.DefaultMaxAccumulation,
		MaxBatchVertices: batch.DefaultMaxVertices,
	}
}

// withDefaults fills zero-valued options.
func (c Config) withDefaults() Config {
	if c.Title == "" {
		c.Title = "glade"
	}
	if c.Width <= 0 {
		c.Width = 1280
	}
	if c.Height <= 0 {
		c.Height = 720
	}
	if c.CanvasWidth <= 0 {
		c.CanvasWidth = c.Width
	}
	if c.CanvasHeight <= 0 {
		c.CanvasHeight = c.Height
	}
	if c.TickRate <= 0 {
		c.TickRate = clock.DefaultTickRate
	}
	if c.MaxAccumulation <= 0 {
		c.MaxAccumulation = clock.DefaultMaxAccumulation
	}
	if c.MaxBatchVertices <= 0 {
		c.MaxBatchVertices = batch.DefaultMaxVertices
	}
	return c
}
