package batch

import (
	"errors"
	"testing"

	"github.com/hubastard/glade/engine/colors"
	"github.com/hubastard/glade/engine/gfx"
)

type recordedDraw struct {
	verts   []gfx.Vertex
	indices []uint32
	state   gfx.DrawState
}

// fakeDevice records every submitted batch and can be told to fail.
type fakeDevice struct {
	draws []recordedDraw
	fail  error
}

func (d *fakeDevice) Draw(verts []gfx.Vertex, indices []uint32, state gfx.DrawState) error {
	if d.fail != nil {
		return d.fail
	}
	d.draws = append(d.draws, recordedDraw{
		verts:   append([]gfx.Vertex(nil), verts...),
		indices: append([]uint32(nil), indices...),
		state:   state,
	})
	return nil
}

func (d *fakeDevice) NewTexture(w, h int, _ []byte) (gfx.Texture, error) {
	return &fakeTexture{w: w, h: h}, nil
}
func (d *fakeDevice) NewShader(_, _ string) (gfx.Shader, error) { return &fakeShader{}, nil }
func (d *fakeDevice) NewCanvas(w, h int) (gfx.Canvas, error)    { return nil, nil }
func (d *fakeDevice) SetCanvas(gfx.Canvas)                      {}
func (d *fakeDevice) SetWindowSize(int, int)                    {}
func (d *fakeDevice) Clear(colors.Color)                        {}
func (d *fakeDevice) Release()                                  {}

type fakeTexture struct{ w, h int }

func (t *fakeTexture) Size() (int, int) { return t.w, t.h }
func (t *fakeTexture) Release()         {}

type fakeShader struct{}

func (s *fakeShader) Release() {}

func texState(t gfx.Texture) gfx.DrawState { return gfx.DrawState{Texture: t} }

// quadAt builds a 16x16 quad command translated to x, so tests can
// verify submission order survives in the flushed vertex stream.
func quadAt(state gfx.DrawState, x float32) gfx.DrawCommand {
	return gfx.DrawCommand{
		State:    state,
		Vertices: gfx.AppendQuad(nil, gfx.Translation(x, 0), 16, 16, 0, 0, 1, 1, colors.White),
		Indices:  gfx.QuadIndices(),
	}
}

func TestSingleSignatureFlushesOnce(t *testing.T) {
	dev := &fakeDevice{}
	tex, _ := dev.NewTexture(2, 2, nil)
	b := New(dev, 0)

	b.Begin()
	for i := 0; i < 10; i++ {
		if err := b.Draw(quadAt(texState(tex), float32(i)*20)); err != nil {
			t.Fatalf("Draw %d: %v", i, err)
		}
	}
	if err := b.End(); err != nil {
		t.Fatalf("End: %v", err)
	}

	if len(dev.draws) != 1 {
		t.Fatalf("Expected 1 flush, got %d", len(dev.draws))
	}
	verts := dev.draws[0].verts
	if len(verts) != 40 {
		t.Fatalf("Expected 40 vertices, got %d", len(verts))
	}
	// Top-left corner of quad i sits at x = i*20; order must match submission.
	for i := 0; i < 10; i++ {
		if got := verts[i*4].X; got != float32(i)*20 {
			t.Errorf("Vertex order broken at quad %d: x=%v", i, got)
		}
	}
	if b.Stats().DrawCalls != 1 || b.Stats().Commands != 10 {
		t.Errorf("Stats mismatch: %+v", b.Stats())
	}
}

func TestSignatureChangeFlushesPerChange(t *testing.T) {
	dev := &fakeDevice{}
	texA, _ := dev.NewTexture(2, 2, nil)
	texB, _ := dev.NewTexture(2, 2, nil)
	b := New(dev, 0)

	b.Begin()
	for i := 0; i < 8; i++ {
		state := texState(texA)
		if i%2 == 1 {
			state = texState(texB)
		}
		if err := b.Draw(quadAt(state, 0)); err != nil {
			t.Fatalf("Draw %d: %v", i, err)
		}
	}
	if err := b.End(); err != nil {
		t.Fatalf("End: %v", err)
	}

	if len(dev.draws) != 8 {
		t.Fatalf("Expected 8 flushes for 8 alternating commands, got %d", len(dev.draws))
	}
	for i, d := range dev.draws {
		want := texA
		if i%2 == 1 {
			want = texB
		}
		if d.state.Texture != want {
			t.Errorf("Flush %d drawn with wrong texture", i)
		}
	}
}

func TestBlendAndScissorBreakBatches(t *testing.T) {
	dev := &fakeDevice{}
	tex, _ := dev.NewTexture(2, 2, nil)
	b := New(dev, 0)

	b.Begin()
	b.Draw(quadAt(gfx.DrawState{Texture: tex}, 0))
	b.Draw(quadAt(gfx.DrawState{Texture: tex, Blend: gfx.BlendAdd}, 0))
	b.Draw(quadAt(gfx.DrawState{Texture: tex, Blend: gfx.BlendAdd, Clip: gfx.ClipRect(0, 0, 8, 8)}, 0))
	if err := b.End(); err != nil {
		t.Fatalf("End: %v", err)
	}

	if len(dev.draws) != 3 {
		t.Fatalf("Expected 3 flushes, got %d", len(dev.draws))
	}
}

func TestTransformsNeverSplitBatches(t *testing.T) {
	dev := &fakeDevice{}
	tex, _ := dev.NewTexture(2, 2, nil)
	b := New(dev, 0)

	b.Begin()
	state := texState(tex)
	transforms := []gfx.Affine{
		gfx.Translation(5, 9),
		gfx.Rotation(1.2),
		gfx.Scaling(3, 0.5),
		gfx.Translation(-40, 12).Mul(gfx.Rotation(0.3)),
	}
	for _, m := range transforms {
		cmd := gfx.DrawCommand{
			State:    state,
			Vertices: gfx.AppendQuad(nil, m, 16, 16, 0, 0, 1, 1, colors.White),
			Indices:  gfx.QuadIndices(),
		}
		if err := b.Draw(cmd); err != nil {
			t.Fatalf("Draw: %v", err)
		}
	}
	if err := b.End(); err != nil {
		t.Fatalf("End: %v", err)
	}

	if len(dev.draws) != 1 {
		t.Fatalf("Transform differences must not flush; got %d flushes", len(dev.draws))
	}
}

func TestCapacityCeilingSplitsBatches(t *testing.T) {
	// 64-vertex ceiling = 16 quads per batch. 100 quads must produce
	// exactly 7 flushes: 6 full plus a trailing partial of 4.
	dev := &fakeDevice{}
	tex, _ := dev.NewTexture(2, 2, nil)
	b := New(dev, 64)

	b.Begin()
	for i := 0; i < 100; i++ {
		if err := b.Draw(quadAt(texState(tex), float32(i))); err != nil {
			t.Fatalf("Draw %d: %v", i, err)
		}
	}
	if err := b.End(); err != nil {
		t.Fatalf("End: %v", err)
	}

	if len(dev.draws) != 7 {
		t.Fatalf("Expected 7 flushes, got %d", len(dev.draws))
	}
	for i := 0; i < 6; i++ {
		if len(dev.draws[i].verts) != 64 {
			t.Errorf("Flush %d: expected 64 vertices, got %d", i, len(dev.draws[i].verts))
		}
	}
	if len(dev.draws[6].verts) != 16 {
		t.Errorf("Trailing flush: expected 16 vertices, got %d", len(dev.draws[6].verts))
	}
}

func TestOversizedCommandRejected(t *testing.T) {
	dev := &fakeDevice{}
	tex, _ := dev.NewTexture(2, 2, nil)
	b := New(dev, 8)

	big := gfx.DrawCommand{State: texState(tex), Vertices: make([]gfx.Vertex, 12)}

	b.Begin()
	if err := b.Draw(big); !errors.Is(err, gfx.ErrCommandTooLarge) {
		t.Fatalf("Expected ErrCommandTooLarge, got %v", err)
	}
	// The frame stays usable after the rejection.
	if err := b.Draw(quadAt(texState(tex), 0)); err != nil {
		t.Fatalf("Draw after rejection: %v", err)
	}
	if err := b.End(); err != nil {
		t.Fatalf("End: %v", err)
	}
	if len(dev.draws) != 1 {
		t.Fatalf("Expected 1 flush, got %d", len(dev.draws))
	}
}

func TestIndicesRebasedPerCommand(t *testing.T) {
	dev := &fakeDevice{}
	tex, _ := dev.NewTexture(2, 2, nil)
	b := New(dev, 0)

	b.Begin()
	b.Draw(quadAt(texState(tex), 0))
	b.Draw(quadAt(texState(tex), 32))
	if err := b.End(); err != nil {
		t.Fatalf("End: %v", err)
	}

	want := []uint32{0, 1, 2, 2, 3, 0, 4, 5, 6, 6, 7, 4}
	got := dev.draws[0].indices
	if len(got) != len(want) {
		t.Fatalf("Expected %d indices, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Index %d: expected %d, got %d", i, want[i], got[i])
		}
	}
}

func TestDeviceErrorSurfacesAtEnd(t *testing.T) {
	dev := &fakeDevice{}
	texA, _ := dev.NewTexture(2, 2, nil)
	texB, _ := dev.NewTexture(2, 2, nil)
	b := New(dev, 0)

	boom := errors.New("boom")
	dev.fail = boom

	b.Begin()
	if err := b.Draw(quadAt(texState(texA), 0)); err != nil {
		t.Fatalf("Draw: %v", err)
	}
	// Signature change forces the failing flush mid-frame.
	if err := b.Draw(quadAt(texState(texB), 0)); err != nil {
		t.Fatalf("Draw after failed flush: %v", err)
	}
	if err := b.End(); !errors.Is(err, boom) {
		t.Fatalf("End: expected boom, got %v", err)
	}

	// A failed flush must not corrupt the next frame.
	dev.fail = nil
	b.Begin()
	if err := b.Draw(quadAt(texState(texA), 0)); err != nil {
		t.Fatalf("Draw next frame: %v", err)
	}
	if err := b.End(); err != nil {
		t.Fatalf("End next frame: %v", err)
	}
	if len(dev.draws) != 1 {
		t.Fatalf("Expected exactly the recovered frame's flush, got %d", len(dev.draws))
	}
	if len(dev.draws[0].verts) != 4 {
		t.Fatalf("Stale geometry leaked into the recovered frame: %d vertices", len(dev.draws[0].verts))
	}
}

func TestFirstDeviceErrorWins(t *testing.T) {
	dev := &fakeDevice{}
	texA, _ := dev.NewTexture(2, 2, nil)
	texB, _ := dev.NewTexture(2, 2, nil)
	b := New(dev, 0)

	first := errors.New("first")
	second := errors.New("second")

	dev.fail = first
	b.Begin()
	b.Draw(quadAt(texState(texA), 0))
	b.Draw(quadAt(texState(texB), 0)) // flush -> first
	dev.fail = second
	err := b.End() // trailing flush -> second, discarded
	if !errors.Is(err, first) {
		t.Fatalf("Expected first error, got %v", err)
	}
}

func TestDrawOutsideFrame(t *testing.T) {
	dev := &fakeDevice{}
	tex, _ := dev.NewTexture(2, 2, nil)
	b := New(dev, 0)

	if err := b.Draw(quadAt(texState(tex), 0)); !errors.Is(err, gfx.ErrNoFrame) {
		t.Fatalf("Expected ErrNoFrame, got %v", err)
	}
	if err := b.End(); !errors.Is(err, gfx.ErrNoFrame) {
		t.Fatalf("Expected ErrNoFrame from End, got %v", err)
	}
}

func TestEmptyFrame(t *testing.T) {
	dev := &fakeDevice{}
	b := New(dev, 0)

	b.Begin()
	if err := b.End(); err != nil {
		t.Fatalf("End: %v", err)
	}
	if len(dev.draws) != 0 {
		t.Fatalf("Empty frame must not flush; got %d", len(dev.draws))
	}
}
