package scaling

import (
	"fmt"
	"math"

	"github.com/hubastard/glade/engine/gfx"
)

// Mode selects how the virtual canvas maps onto the window.
type Mode uint8

const (
	// Stretch fills the window, distorting aspect ratio.
	Stretch Mode = iota
	// Letterbox scales uniformly to fit, barring the non-matching axis.
	Letterbox
	// CropLetterbox scales uniformly to cover, clipping canvas edges.
	CropLetterbox
	// ShowAllPixelPerfect letterboxes at a whole-number scale.
	ShowAllPixelPerfect
	// CropPixelPerfect crops at a whole-number scale.
	CropPixelPerfect
	// Fixed centers the canvas unscaled.
	Fixed
)

func (m Mode) String() string {
	switch m {
	case Stretch:
		return "stretch"
	case Letterbox:
		return "letterbox"
	case CropLetterbox:
		return "crop-letterbox"
	case ShowAllPixelPerfect:
		return "show-all-pixel-perfect"
	case CropPixelPerfect:
		return "crop-pixel-perfect"
	case Fixed:
		return "fixed"
	}
	return "unknown"
}

// ParseMode maps a mode name (as produced by String) back to its Mode.
func ParseMode(name string) (Mode, error) {
	for m := Stretch; m <= Fixed; m++ {
		if m.String() == name {
			return m, nil
		}
	}
	return Stretch, fmt.Errorf("scaling: unknown mode %q", name)
}

// Scaler computes where the virtual canvas lands inside the window
// under the active mode, and maps pointer coordinates back onto the
// canvas. The viewport recomputes only when its inputs change, never
// per frame.
type Scaler struct {
	mode               Mode
	virtualW, virtualH int
	windowW, windowH   int
	viewport           gfx.Rect
}

func New(mode Mode, virtualW, virtualH, windowW, windowH int) *Scaler {
	s := &Scaler{
		mode:     mode,
		virtualW: virtualW, virtualH: virtualH,
		windowW: windowW, windowH: windowH,
	}
	s.recompute()
	return s
}

func (s *Scaler) Mode() Mode { return s.mode }

func (s *Scaler) SetMode(m Mode) {
	if m == s.mode {
		return
	}
	s.mode = m
	s.recompute()
}

func (s *Scaler) VirtualSize() (int, int) { return s.virtualW, s.virtualH }

func (s *Scaler) SetVirtualSize(w, h int) {
	if w < 1 || h < 1 || (w == s.virtualW && h == s.virtualH) {
		return
	}
	s.virtualW, s.virtualH = w, h
	s.recompute()
}

func (s *Scaler) WindowSize() (int, int) { return s.windowW, s.windowH }

// Resize records a new window size. Zero sizes (minimized window) are
// ignored, keeping the last usable viewport.
func (s *Scaler) Resize(w, h int) {
	if w < 1 || h < 1 || (w == s.windowW && h == s.windowH) {
		return
	}
	s.windowW, s.windowH = w, h
	s.recompute()
}

// Viewport is the window-space rectangle the canvas is blitted into.
// Crop modes produce viewports larger than the window.
func (s *Scaler) Viewport() gfx.Rect { return s.viewport }

// VirtualCoords maps a window position (e.g. the mouse) into
// virtual-canvas coordinates, inverting the viewport transform.
func (s *Scaler) VirtualCoords(wx, wy float64) (float64, float64) {
	vp := s.viewport
	if vp.W == 0 || vp.H == 0 {
		return 0, 0
	}
	return float64(s.virtualW) * (wx - float64(vp.X)) / float64(vp.W),
		float64(s.virtualH) * (wy - float64(vp.Y)) / float64(vp.H)
}

// WindowCoords maps a virtual-canvas position into window coordinates;
// the inverse of VirtualCoords.
func (s *Scaler) WindowCoords(vx, vy float64) (float64, float64) {
	vp := s.viewport
	return float64(vp.X) + float64(vp.W)*vx/float64(s.virtualW),
		float64(vp.Y) + float64(vp.H)*vy/float64(s.virtualH)
}

func (s *Scaler) recompute() {
	vw, vh := float32(s.virtualW), float32(s.virtualH)
	ww, wh := float32(s.windowW), float32(s.windowH)

	var w, h float32
	switch s.mode {
	case Stretch:
		s.viewport = gfx.Rect{W: ww, H: wh}
		return
	case Letterbox:
		scale := min(ww/vw, wh/vh)
		w, h = vw*scale, vh*scale
	case CropLetterbox:
		scale := max(ww/vw, wh/vh)
		w, h = vw*scale, vh*scale
	case ShowAllPixelPerfect:
		scale := integerScale(min(ww/vw, wh/vh))
		w, h = vw*scale, vh*scale
	case CropPixelPerfect:
		scale := integerScale(max(ww/vw, wh/vh))
		w, h = vw*scale, vh*scale
	case Fixed:
		w, h = vw, vh
	}
	s.viewport = gfx.Rect{X: (ww - w) / 2, Y: (wh - h) / 2, W: w, H: h}
}

// integerScale floors to a whole factor, never below 1.
func integerScale(scale float32) float32 {
	if scale < 1 {
		return 1
	}
	return float32(math.Floor(float64(scale)))
}
