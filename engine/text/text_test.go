package text

import (
	"math"
	"testing"

	"golang.org/x/image/font/gofont/goregular"

	"github.com/hubastard/glade/engine/colors"
	"github.com/hubastard/glade/engine/gfx"
)

type fakeTexture struct{ w, h int }

func (t *fakeTexture) Size() (int, int) { return t.w, t.h }
func (t *fakeTexture) Release()         {}

type fakeDevice struct {
	texW, texH int
	pixels     []byte
}

func (d *fakeDevice) NewTexture(w, h int, pixels []byte) (gfx.Texture, error) {
	d.texW, d.texH = w, h
	d.pixels = append([]byte(nil), pixels...)
	return &fakeTexture{w: w, h: h}, nil
}

func (d *fakeDevice) NewShader(string, string) (gfx.Shader, error) { return nil, nil }
func (d *fakeDevice) NewCanvas(int, int) (gfx.Canvas, error)       { return nil, nil }
func (d *fakeDevice) SetCanvas(gfx.Canvas)                         {}
func (d *fakeDevice) SetWindowSize(int, int)                       {}
func (d *fakeDevice) Clear(colors.Color)                           {}

func (d *fakeDevice) Draw([]gfx.Vertex, []uint32, gfx.DrawState) error { return nil }
func (d *fakeDevice) Release()                                         {}

type fakeTarget struct {
	srcs []gfx.Source
	ps   []gfx.Params
}

func (f *fakeTarget) Draw(src gfx.Source, p gfx.Params) error {
	f.srcs = append(f.srcs, src)
	f.ps = append(f.ps, p)
	return nil
}

func loadTestFont(t *testing.T) (*fakeDevice, *Font) {
	t.Helper()
	dev := &fakeDevice{}
	f, err := New(dev, goregular.TTF, 24)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return dev, f
}

func TestNewBuildsAtlas(t *testing.T) {
	dev, f := loadTestFont(t)

	if dev.texW != dev.texH || dev.texW < 128 {
		t.Fatalf("atlas = %dx%d, want a square at least 128 wide", dev.texW, dev.texH)
	}
	if len(dev.pixels) != dev.texW*dev.texH*4 {
		t.Fatalf("atlas pixels = %d bytes, want %d", len(dev.pixels), dev.texW*dev.texH*4)
	}

	g, ok := f.Glyphs['A']
	if !ok {
		t.Fatal("missing glyph for 'A'")
	}
	if g.Advance <= 0 || g.W <= 0 || g.H <= 0 {
		t.Fatalf("degenerate metrics for 'A': %+v", g)
	}
	if g.Region.Right() > float32(dev.texW) || g.Region.Bottom() > float32(dev.texH) {
		t.Fatalf("region %+v escapes the atlas", g.Region)
	}
	if _, ok := f.Glyphs[' ']; !ok {
		t.Fatal("missing glyph for space")
	}
	if f.Ascent <= 0 || f.LineHeight() <= 0 {
		t.Fatalf("metrics: ascent %v, line height %v", f.Ascent, f.LineHeight())
	}

	// White glyphs with coverage alpha: premultiplied means R == A.
	ink := false
	for i := 0; i+3 < len(dev.pixels); i += 4 {
		if a := dev.pixels[i+3]; a != 0 {
			ink = true
			if dev.pixels[i] != a {
				t.Fatalf("pixel %d not premultiplied: R=%d A=%d", i/4, dev.pixels[i], a)
			}
		}
	}
	if !ink {
		t.Fatal("atlas has no ink")
	}
}

func TestGlyphRegionsDoNotOverlap(t *testing.T) {
	_, f := loadTestFont(t)

	type box struct {
		r    rune
		rect gfx.Rect
	}
	var boxes []box
	for r, g := range f.Glyphs {
		if g.W > 0 && g.H > 0 {
			boxes = append(boxes, box{r, g.Region})
		}
	}
	for i := 0; i < len(boxes); i++ {
		for j := i + 1; j < len(boxes); j++ {
			a, b := boxes[i].rect, boxes[j].rect
			if a.X < b.Right() && b.X < a.Right() && a.Y < b.Bottom() && b.Y < a.Bottom() {
				t.Fatalf("glyphs %q and %q share atlas pixels: %+v vs %+v",
					boxes[i].r, boxes[j].r, a, b)
			}
		}
	}
}

func TestMeasure(t *testing.T) {
	_, f := loadTestFont(t)

	w, h := Measure(f, "AV")
	if w <= 0 {
		t.Fatalf("width = %v", w)
	}
	sum := f.Glyphs['A'].Advance + f.Glyphs['V'].Advance
	if w > sum+0.01 {
		t.Fatalf("width %v exceeds plain advance sum %v", w, sum)
	}
	if h != f.LineHeight() {
		t.Fatalf("height = %v, want one line %v", h, f.LineHeight())
	}

	_, h2 := Measure(f, "a\nb")
	if math.Abs(float64(h2-2*f.LineHeight())) > 1e-3 {
		t.Fatalf("two-line height = %v, want %v", h2, 2*f.LineHeight())
	}
}

func TestDrawAdvancesPen(t *testing.T) {
	_, f := loadTestFont(t)
	target := &fakeTarget{}

	if err := Draw(target, f, "AB", 10, 20, colors.Yellow); err != nil {
		t.Fatalf("Draw: %v", err)
	}
	if len(target.srcs) != 2 {
		t.Fatalf("draw calls = %d, want 2", len(target.srcs))
	}
	for i, src := range target.srcs {
		if src.Kind != gfx.SourceRegion {
			t.Fatalf("draw %d kind = %v, want region", i, src.Kind)
		}
		if target.ps[i].Color != colors.Yellow {
			t.Fatalf("draw %d color = %v", i, target.ps[i].Color)
		}
	}
	if target.ps[1].X <= target.ps[0].X {
		t.Fatalf("pen did not advance: %v then %v", target.ps[0].X, target.ps[1].X)
	}
}

func TestDrawNewline(t *testing.T) {
	_, f := loadTestFont(t)
	target := &fakeTarget{}

	if err := Draw(target, f, "A\nA", 10, 20, colors.White); err != nil {
		t.Fatalf("Draw: %v", err)
	}
	if len(target.ps) != 2 {
		t.Fatalf("draw calls = %d, want 2", len(target.ps))
	}
	if target.ps[1].X != target.ps[0].X {
		t.Fatalf("newline should reset the pen: %v vs %v", target.ps[1].X, target.ps[0].X)
	}
	dy := target.ps[1].Y - target.ps[0].Y
	if math.Abs(float64(dy-f.LineHeight())) > 1e-3 {
		t.Fatalf("line step = %v, want %v", dy, f.LineHeight())
	}
}
