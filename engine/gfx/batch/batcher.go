package batch

import "github.com/hubastard/glade/engine/gfx"

// DefaultMaxVertices is the capacity ceiling of one flush, enough for
// 2048 sprites at four vertices each.
const DefaultMaxVertices = 8192

// Stats captures the counts generated during one frame.
type Stats struct {
	DrawCalls int
	Commands  int
	Vertices  int
}

// Batcher accumulates draw commands into signature-keyed batches and
// submits each batch to the device as a single draw call. Commands
// merge as long as their (texture, shader, blend, scissor) state
// compares equal; transforms are baked into vertices upstream, so they
// never break a batch. Draw order is preserved across flushes.
//
// Single-threaded: the batcher must only be used from the render loop.
type Batcher struct {
	dev     gfx.Device
	buf     *Buffer
	tracker Tracker
	stats   Stats
	err     error
	active  bool
}

// New creates a batcher flushing through dev. maxVertices <= 0 takes
// the default ceiling.
func New(dev gfx.Device, maxVertices int) *Batcher {
	if maxVertices <= 0 {
		maxVertices = DefaultMaxVertices
	}
	return &Batcher{dev: dev, buf: NewBuffer(maxVertices)}
}

// Begin opens a frame, discarding anything left from an aborted one.
func (b *Batcher) Begin() {
	b.buf.Reset()
	b.tracker.Reset()
	b.stats = Stats{}
	b.err = nil
	b.active = true
}

// Draw appends one command to the open batch. Flush triggers, checked
// in order: the command's state differs from the open batch's state;
// the command's vertices would not fit under the capacity ceiling.
//
// A command that cannot fit even in an empty batch is rejected with
// ErrCommandTooLarge; commands are never split across flushes. The
// command's slices are copied, so the caller may reuse their backing
// arrays.
func (b *Batcher) Draw(cmd gfx.DrawCommand) error {
	if !b.active {
		return gfx.ErrNoFrame
	}
	n := len(cmd.Vertices)
	if n > b.buf.Max() {
		return gfx.ErrCommandTooLarge
	}
	if b.tracker.Differs(cmd.State) {
		b.flush()
	}
	if !b.buf.Fits(n) {
		b.flush()
	}
	b.tracker.Set(cmd.State)
	b.buf.Append(cmd.Vertices, cmd.Indices)
	b.stats.Commands++
	b.stats.Vertices += n
	return nil
}

// End flushes the trailing batch and closes the frame. It returns the
// first device error recorded since Begin; later draws that frame were
// still accepted so the error never corrupts subsequent frames.
func (b *Batcher) End() error {
	if !b.active {
		return gfx.ErrNoFrame
	}
	b.flush()
	b.active = false
	b.tracker.Reset()
	err := b.err
	b.err = nil
	return err
}

// Abort discards the open frame without flushing, for halted-loop and
// teardown paths where submitting half a frame would be wrong.
func (b *Batcher) Abort() {
	b.buf.Reset()
	b.tracker.Reset()
	b.err = nil
	b.active = false
}

// Stats returns the current frame's counters.
func (b *Batcher) Stats() Stats { return b.stats }

// flush submits the open batch as one draw call and clears it. The
// batch state resets even when the device rejects the call; the first
// error is kept for End.
func (b *Batcher) flush() {
	if b.buf.Empty() {
		return
	}
	err := b.dev.Draw(b.buf.Vertices(), b.buf.Indices(), b.tracker.State())
	b.buf.Reset()
	if err != nil {
		if b.err == nil {
			b.err = err
		}
		return
	}
	b.stats.DrawCalls++
}
