package core

import (
	"fmt"
	"time"

	"github.com/hubastard/glade/engine/clock"
	"github.com/hubastard/glade/engine/colors"
	"github.com/hubastard/glade/engine/gfx"
	"github.com/hubastard/glade/engine/gfx/batch"
	"github.com/hubastard/glade/engine/gfx/scaling"
)

// Engine exposes core services to the App. One Engine exists per Run
// and is passed into every callback; there is no package-level state.
// All methods must be called from the loop's thread.
type Engine struct {
	Window Window
	Device gfx.Device
	Input  *Input

	clock   *clock.Clock
	batcher *batch.Batcher
	scaler  *scaling.Scaler

	canvas gfx.Canvas
	white  gfx.Texture

	transform  gfx.Affine
	shader     gfx.Shader
	blend      gfx.BlendMode
	clip       gfx.Scissor
	background colors.Color
	clearColor colors.Color
	quitOnEsc  bool
	start      time.Time

	verts []gfx.Vertex
}

func newEngine(win Window, dev gfx.Device, cfg Config) (*Engine, error) {
	fw, fh := win.FramebufferSize()
	dev.SetWindowSize(fw, fh)

	canvas, err := dev.NewCanvas(cfg.CanvasWidth, cfg.CanvasHeight)
	if err != nil {
		return nil, fmt.Errorf("core: create canvas: %w", err)
	}
	white, err := dev.NewTexture(1, 1, []byte{255, 255, 255, 255})
	if err != nil {
		canvas.Release()
		return nil, fmt.Errorf("core: create white texture: %w", err)
	}

	eng := &Engine{
		Window:     win,
		Device:     dev,
		Input:      NewInput(),
		clock:      clock.New(cfg.Timestep, cfg.TickRate),
		batcher:    batch.New(dev, cfg.MaxBatchVertices),
		scaler:     scaling.New(cfg.ScalingMode, cfg.CanvasWidth, cfg.CanvasHeight, fw, fh),
		canvas:     canvas,
		white:      white,
		transform:  gfx.Identity(),
		background: cfg.Background,
		clearColor: cfg.ClearColor,
		quitOnEsc:  cfg.QuitOnEscape,
		start:      time.Now(),
	}
	eng.clock.SetMaxAccumulation(cfg.MaxAccumulation)
	return eng, nil
}

// --- drawing ---

// Draw renders src positioned by p into the current frame. Every
// source kind lowers to the same command shape before batching, so
// mixing kinds only costs a flush when the pipeline state changes.
func (e *Engine) Draw(src gfx.Source, p gfx.Params) error {
	switch src.Kind {
	case gfx.SourceSolid:
		return e.drawQuad(e.white, 0, 0, 1, 1, src.W, src.H, p)
	case gfx.SourceTexture:
		return e.drawQuad(src.Texture, 0, 0, 1, 1, src.W, src.H, p)
	case gfx.SourceRegion:
		tw, th := src.Texture.Size()
		r := src.Region
		u0 := r.X / float32(tw)
		v0 := r.Y / float32(th)
		u1 := r.Right() / float32(tw)
		v1 := r.Bottom() / float32(th)
		return e.drawQuad(src.Texture, u0, v0, u1, v1, r.W, r.H, p)
	case gfx.SourceMesh:
		return e.drawMesh(src.Mesh, p)
	}
	return fmt.Errorf("core: unknown draw source kind %d", src.Kind)
}

// FillRect draws a solid rectangle.
func (e *Engine) FillRect(x, y, w, h float32, c colors.Color) error {
	p := gfx.At(x, y)
	p.Color = c
	return e.Draw(gfx.Solid(w, h), p)
}

// DrawTexture draws t at its native size.
func (e *Engine) DrawTexture(t gfx.Texture, p gfx.Params) error {
	return e.Draw(gfx.FromTexture(t), p)
}

// DrawRegion draws a sub-rect of t, for spritesheets.
func (e *Engine) DrawRegion(t gfx.Texture, region gfx.Rect, p gfx.Params) error {
	return e.Draw(gfx.FromRegion(t, region), p)
}

func (e *Engine) drawQuad(tex gfx.Texture, u0, v0, u1, v1, w, h float32, p gfx.Params) error {
	m := e.transform.Mul(p.Affine())
	e.verts = gfx.AppendQuad(e.verts[:0], m, w, h, u0, v0, u1, v1, p.Color)
	return e.batcher.Draw(gfx.DrawCommand{
		State:    e.state(tex),
		Vertices: e.verts,
		Indices:  gfx.QuadIndices(),
	})
}

func (e *Engine) drawMesh(mesh *gfx.Mesh, p gfx.Params) error {
	tex := mesh.Texture
	if tex == nil {
		tex = e.white
	}
	m := e.transform.Mul(p.Affine())
	verts := e.verts[:0]
	for _, v := range mesh.Vertices {
		v.X, v.Y = m.Apply(v.X, v.Y)
		v.Color = v.Color.Mul(p.Color)
		verts = append(verts, v)
	}
	e.verts = verts
	return e.batcher.Draw(gfx.DrawCommand{
		State:    e.state(tex),
		Vertices: verts,
		Indices:  mesh.Indices,
	})
}

func (e *Engine) state(tex gfx.Texture) gfx.DrawState {
	return gfx.DrawState{Texture: tex, Shader: e.shader, Blend: e.blend, Clip: e.clip}
}

// --- render state ---

// SetTransform sets the global transform (e.g. a camera) composed onto
// every subsequent draw. Purely CPU-side: changing it mid-frame never
// breaks a batch.
func (e *Engine) SetTransform(m gfx.Affine) { e.transform = m }
func (e *Engine) ResetTransform()           { e.transform = gfx.Identity() }

// SetShader switches the active shader; nil restores the default
// sprite shader.
func (e *Engine) SetShader(s gfx.Shader) { e.shader = s }

func (e *Engine) SetBlendMode(b gfx.BlendMode) { e.blend = b }

// SetScissor clips subsequent draws to a canvas-pixel rectangle.
func (e *Engine) SetScissor(c gfx.Scissor) { e.clip = c }
func (e *Engine) ResetScissor()            { e.clip = gfx.Scissor{} }

// SetBackground sets the letterbox bar color.
func (e *Engine) SetBackground(c colors.Color) { e.background = c }

// SetClearColor sets the per-frame canvas wipe color.
func (e *Engine) SetClearColor(c colors.Color) { e.clearColor = c }

// Stats reports the batching counters of the most recent frame.
func (e *Engine) Stats() batch.Stats { return e.batcher.Stats() }

// --- clock ---

// SetTimestep switches between fixed and variable stepping at runtime.
// The accumulator resets, dropping ticks owed under the old timestep.
func (e *Engine) SetTimestep(mode clock.Mode, tick time.Duration) {
	e.clock.SetTimestep(mode, tick)
}

func (e *Engine) Timestep() clock.Mode { return e.clock.Mode() }

func (e *Engine) TickRate() time.Duration { return e.clock.TickRate() }

// BlendFactor reports how far rendering sits between simulation ticks.
func (e *Engine) BlendFactor() float64 { return e.clock.Blend() }

func (e *Engine) FPS() float64 { return e.clock.FPS() }

// --- canvas scaling ---

// SetScalingPolicy changes how the canvas maps onto the window.
func (e *Engine) SetScalingPolicy(m scaling.Mode) { e.scaler.SetMode(m) }
func (e *Engine) ScalingPolicy() scaling.Mode     { return e.scaler.Mode() }

// VirtualSize reports the canvas resolution.
func (e *Engine) VirtualSize() (int, int) { return e.scaler.VirtualSize() }

// SetVirtualResolution recreates the virtual canvas at w x h. Call it
// from the update callback; geometry already drawn to the old canvas
// this frame is discarded with it.
func (e *Engine) SetVirtualResolution(w, h int) error {
	if w < 1 || h < 1 {
		return fmt.Errorf("core: bad virtual resolution %dx%d", w, h)
	}
	cw, ch := e.scaler.VirtualSize()
	if w == cw && h == ch {
		return nil
	}
	canvas, err := e.Device.NewCanvas(w, h)
	if err != nil {
		return fmt.Errorf("core: create canvas: %w", err)
	}
	e.canvas.Release()
	e.canvas = canvas
	e.scaler.SetVirtualSize(w, h)
	return nil
}

// VirtualCoords maps window coordinates onto the virtual canvas.
func (e *Engine) VirtualCoords(wx, wy float64) (float64, float64) {
	return e.scaler.VirtualCoords(wx, wy)
}

// Mouse reports the pointer position in virtual-canvas coordinates.
func (e *Engine) Mouse() (float64, float64) {
	return e.scaler.VirtualCoords(e.Input.Mouse())
}

// --- lifecycle ---

// Quit asks the loop to exit after the current frame.
func (e *Engine) Quit() { e.Window.RequestClose() }

func (e *Engine) Uptime() time.Duration { return time.Since(e.start) }

func (e *Engine) handleEvent(app App, ev Event) {
	e.Input.Handle(ev)
	switch t := ev.(type) {
	case EventResize:
		if t.W > 0 && t.H > 0 {
			e.scaler.Resize(t.W, t.H)
			e.Device.SetWindowSize(t.W, t.H)
		}
	case EventKey:
		if e.quitOnEsc && t.Key == KeyEscape && t.Down {
			e.Quit()
		}
	}
	app.OnEvent(e, ev)
}

// renderFrame wipes the canvas, runs the draw callback inside a batch
// frame, then presents.
func (e *Engine) renderFrame(app App) error {
	e.Device.SetCanvas(e.canvas)
	e.Device.Clear(e.clearColor)
	e.batcher.Begin()
	if err := app.OnRender(e, e.clock.Blend()); err != nil {
		e.batcher.Abort()
		return err
	}
	if err := e.batcher.End(); err != nil {
		return err
	}
	return e.present()
}

// present blits the canvas into the scaler's viewport on the window
// framebuffer, fills the remainder with the background color, and
// swaps.
func (e *Engine) present() error {
	e.Device.SetCanvas(nil)
	e.Device.Clear(e.background)

	vp := e.scaler.Viewport()
	verts := gfx.AppendQuad(e.verts[:0], gfx.Translation(vp.X, vp.Y), vp.W, vp.H, 0, 0, 1, 1, colors.White)
	e.verts = verts
	if err := e.Device.Draw(verts, gfx.QuadIndices(), gfx.DrawState{Texture: e.canvas.Texture()}); err != nil {
		return err
	}

	e.Window.SwapBuffers()
	return nil
}

// teardown discards any open batch and releases engine-owned handles.
func (e *Engine) teardown() {
	e.batcher.Abort()
	if e.canvas != nil {
		e.canvas.Release()
		e.canvas = nil
	}
	if e.white != nil {
		e.white.Release()
		e.white = nil
	}
}
