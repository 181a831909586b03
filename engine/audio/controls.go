package audio

import (
	"math"
	"sync/atomic"
)

// Controls is the shared handle for a playing sound. The mixer runs on
// its own thread: the game thread writes parameters mid-frame and the
// mixer reads them between samples, so every field is a lock-free
// atomic. A blocking lock here stalls audibly.
type Controls struct {
	playing   atomic.Bool
	repeating atomic.Bool
	rewind    atomic.Bool
	volume    atomicFloat
	speed     atomicFloat
}

// NewControls returns controls for a sound that starts playing at full
// volume and normal speed.
func NewControls() *Controls {
	c := &Controls{}
	c.playing.Store(true)
	c.volume.Store(1)
	c.speed.Store(1)
	return c
}

func (c *Controls) Play()         { c.playing.Store(true) }
func (c *Controls) Pause()        { c.playing.Store(false) }
func (c *Controls) Playing() bool { return c.playing.Load() }

// Stop pauses playback and rewinds to the start.
func (c *Controls) Stop() {
	c.playing.Store(false)
	c.rewind.Store(true)
}

// Rewind restarts the sound from the beginning on the mixer's next pass.
func (c *Controls) Rewind() { c.rewind.Store(true) }

// ConsumeRewind reports and clears a pending rewind; called by the
// mixer only.
func (c *Controls) ConsumeRewind() bool { return c.rewind.Swap(false) }

func (c *Controls) SetRepeating(r bool) { c.repeating.Store(r) }
func (c *Controls) Repeating() bool     { return c.repeating.Load() }

// SetVolume scales the sound's amplitude; 1 is as authored.
func (c *Controls) SetVolume(v float64) { c.volume.Store(v) }
func (c *Controls) Volume() float64     { return c.volume.Load() }

// SetSpeed scales the playback rate; 1 is as authored.
func (c *Controls) SetSpeed(s float64) { c.speed.Store(s) }
func (c *Controls) Speed() float64     { return c.speed.Load() }

// atomicFloat stores a float64 as its IEEE 754 bits.
type atomicFloat struct {
	bits atomic.Uint64
}

func (f *atomicFloat) Store(v float64) { f.bits.Store(math.Float64bits(v)) }
func (f *atomicFloat) Load() float64   { return math.Float64frombits(f.bits.Load()) }
