package core

import (
	"fmt"
	"runtime"
	"time"

	"github.com/charmbracelet/log"

	"github.com/hubastard/glade/engine/gfx"
)

// Window abstraction, implemented by the platform layer.
type Window interface {
	PollEvents()
	SwapBuffers()
	ShouldClose() bool
	RequestClose()
	FramebufferSize() (int, int)
	SetTitle(title string)
	SetVSync(on bool)
	SetEventCallback(cb func(Event))
}

// Run wires the platform window and graphics device and executes the
// frame loop: poll events, run the simulation ticks the clock owes,
// render once with the current blend factor, present. The first error
// from a callback, the device, or the trailing flush halts the loop and
// is returned; teardown always runs.
func Run(app App, cfg Config, newWindow func(Config) (Window, error), newDevice func(Window, Config) (gfx.Device, error)) error {
	// Graphics contexts require the main OS thread.
	runtime.LockOSThread()

	cfg = cfg.withDefaults()

	win, err := newWindow(cfg)
	if err != nil {
		return fmt.Errorf("core: create window: %w", err)
	}

	dev, err := newDevice(win, cfg)
	if err != nil {
		return fmt.Errorf("core: create device: %w", err)
	}
	defer dev.Release()

	eng, err := newEngine(win, dev, cfg)
	if err != nil {
		return err
	}
	defer eng.teardown()

	win.SetEventCallback(func(ev Event) { eng.handleEvent(app, ev) })

	if err := app.OnStart(eng); err != nil {
		return err
	}
	defer app.OnShutdown(eng)

	log.Info("engine running",
		"timestep", eng.clock.Mode(),
		"tick", eng.clock.TickRate(),
		"canvas", fmt.Sprintf("%dx%d", cfg.CanvasWidth, cfg.CanvasHeight),
		"scaling", eng.scaler.Mode())

	for !win.ShouldClose() {
		win.PollEvents()

		eng.clock.Advance(time.Now())
		for eng.clock.Tick() {
			if err := app.OnUpdate(eng, eng.clock.Delta()); err != nil {
				return err
			}
			eng.Input.NextTick()
		}

		if err := eng.renderFrame(app); err != nil {
			return err
		}
	}

	log.Info("engine exit", "uptime", eng.Uptime().Round(time.Millisecond))
	return nil
}
