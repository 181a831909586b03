package clock

import "time"

// Mode selects how wall time converts into simulation ticks.
type Mode uint8

const (
	// Fixed runs the simulation at a constant tick duration, decoupled
	// from the render rate.
	Fixed Mode = iota
	// Variable runs exactly one tick per frame with the raw frame time.
	Variable
)

func (m Mode) String() string {
	if m == Fixed {
		return "fixed"
	}
	return "variable"
}

const (
	DefaultTickRate        = time.Second / 60
	DefaultMaxAccumulation = 150 * time.Millisecond

	fpsSamples = 200
)

// Clock converts wall-clock deltas into a stream of simulation ticks
// plus an interpolation blend factor for rendering. Feed it the current
// time once per frame with Advance, then drain ticks:
//
//	clk.Advance(time.Now())
//	for clk.Tick() {
//		update(clk.Delta())
//	}
//	render(clk.Blend())
//
// In fixed mode unconsumed time is clamped to a maximum, dropping ticks
// so a slow machine visibly slows down instead of spiraling into an
// ever-growing catch-up loop.
type Clock struct {
	mode     Mode
	tick     time.Duration
	maxAccum time.Duration

	accum   time.Duration
	elapsed time.Duration
	last    time.Time
	started bool
	pending bool

	fpsBuf [fpsSamples]float64
	fpsSum float64
	fpsLen int
	fpsIdx int
}

// New creates a clock. A tick duration <= 0 takes the 60Hz default.
func New(mode Mode, tick time.Duration) *Clock {
	if tick <= 0 {
		tick = DefaultTickRate
	}
	return &Clock{mode: mode, tick: tick, maxAccum: DefaultMaxAccumulation}
}

// Advance feeds the wall-clock time at the top of a frame. The first
// call reports zero elapsed time, so process-startup overhead never
// lands in the accumulator.
func (c *Clock) Advance(now time.Time) {
	var elapsed time.Duration
	if c.started {
		elapsed = now.Sub(c.last)
		if elapsed < 0 {
			elapsed = 0
		}
		c.trackFPS(elapsed)
	}
	c.started = true
	c.last = now
	c.elapsed = elapsed

	switch c.mode {
	case Fixed:
		c.accum += elapsed
		if c.accum > c.maxAccum {
			c.accum = c.maxAccum
		}
	case Variable:
		c.pending = true
	}
}

// Tick reports whether another simulation tick should run this frame.
// Fixed mode consumes one tick duration per call; variable mode fires
// exactly once per Advance.
func (c *Clock) Tick() bool {
	switch c.mode {
	case Fixed:
		if c.accum >= c.tick {
			c.accum -= c.tick
			return true
		}
		return false
	default:
		fire := c.pending
		c.pending = false
		return fire
	}
}

// Delta is the duration a tick simulates: the tick duration in fixed
// mode (constant, for reproducibility), the raw frame time in variable
// mode.
func (c *Clock) Delta() time.Duration {
	if c.mode == Fixed {
		return c.tick
	}
	return c.elapsed
}

// Blend is how far rendering sits between the previous and next fixed
// tick, in [0,1) once the frame's ticks are drained. Variable mode
// reports 1: the render always matches the latest tick.
func (c *Clock) Blend() float64 {
	if c.mode == Fixed {
		return float64(c.accum) / float64(c.tick)
	}
	return 1
}

func (c *Clock) Mode() Mode              { return c.mode }
func (c *Clock) TickRate() time.Duration { return c.tick }

// SetTimestep reconfigures the clock at runtime. The accumulator
// resets, dropping ticks owed under the old timestep.
func (c *Clock) SetTimestep(mode Mode, tick time.Duration) {
	if tick <= 0 {
		tick = DefaultTickRate
	}
	c.mode = mode
	c.tick = tick
	c.accum = 0
	c.pending = false
}

// SetMaxAccumulation bounds unconsumed simulation time; values <= 0 are
// ignored.
func (c *Clock) SetMaxAccumulation(d time.Duration) {
	if d > 0 {
		c.maxAccum = d
	}
}

func (c *Clock) MaxAccumulation() time.Duration { return c.maxAccum }

// FPS is the average frame rate over the last 200 frames.
func (c *Clock) FPS() float64 {
	if c.fpsSum <= 0 {
		return 0
	}
	return float64(c.fpsLen) / c.fpsSum
}

func (c *Clock) trackFPS(elapsed time.Duration) {
	sec := elapsed.Seconds()
	if c.fpsLen == fpsSamples {
		c.fpsSum -= c.fpsBuf[c.fpsIdx]
	} else {
		c.fpsLen++
	}
	c.fpsBuf[c.fpsIdx] = sec
	c.fpsSum += sec
	c.fpsIdx = (c.fpsIdx + 1) % fpsSamples
}
