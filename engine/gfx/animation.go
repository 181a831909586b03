package gfx

import "time"

// Animation cycles through frame regions of a spritesheet. Advance it
// from the update callback so playback speed follows the simulation
// clock, not the render rate.
type Animation struct {
	texture     Texture
	frames      []Rect
	frameLength time.Duration
	elapsed     time.Duration
	current     int
	repeating   bool
}

// NewAnimation builds a looping animation; frameLength is how long each
// frame stays visible.
func NewAnimation(texture Texture, frames []Rect, frameLength time.Duration) *Animation {
	return &Animation{texture: texture, frames: frames, frameLength: frameLength, repeating: true}
}

// NewAnimationOnce builds an animation that stops on its last frame.
func NewAnimationOnce(texture Texture, frames []Rect, frameLength time.Duration) *Animation {
	return &Animation{texture: texture, frames: frames, frameLength: frameLength}
}

// Advance moves playback forward by dt.
func (a *Animation) Advance(dt time.Duration) {
	if len(a.frames) == 0 || a.frameLength <= 0 {
		return
	}
	a.elapsed += dt
	for a.elapsed >= a.frameLength {
		a.elapsed -= a.frameLength
		if a.current+1 < len(a.frames) {
			a.current++
		} else if a.repeating {
			a.current = 0
		}
	}
}

// Restart rewinds to the first frame.
func (a *Animation) Restart() {
	a.current = 0
	a.elapsed = 0
}

func (a *Animation) SetRepeating(r bool) { a.repeating = r }

// Current returns the active frame region.
func (a *Animation) Current() Rect {
	if len(a.frames) == 0 {
		return Rect{}
	}
	return a.frames[a.current]
}

// Source lowers the animation to its current frame's region.
func (a *Animation) Source() Source {
	return FromRegion(a.texture, a.Current())
}
