package assets

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func writeTestPNG(t *testing.T, img image.Image) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.png")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadPNGPremultipliesAndPacks(t *testing.T) {
	// NRGBA input: half-transparent pure red.
	img := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	for y := 0; y < 2; y++ {
		for x := 0; x < 2; x++ {
			img.SetNRGBA(x, y, color.NRGBA{R: 255, A: 128})
		}
	}
	path := writeTestPNG(t, img)

	w, h, rgba, err := LoadPNG(path)
	if err != nil {
		t.Fatalf("LoadPNG: %v", err)
	}
	if w != 2 || h != 2 {
		t.Fatalf("size = %dx%d, want 2x2", w, h)
	}
	if len(rgba) != 2*2*4 {
		t.Fatalf("len = %d, want %d", len(rgba), 2*2*4)
	}

	// Premultiplied: R scaled by alpha, G/B zero, A kept.
	r, g, b, a := rgba[0], rgba[1], rgba[2], rgba[3]
	if a != 128 {
		t.Errorf("alpha = %d, want 128", a)
	}
	if r != 128 {
		t.Errorf("red = %d, want premultiplied 128", r)
	}
	if g != 0 || b != 0 {
		t.Errorf("green/blue = %d/%d, want 0/0", g, b)
	}
}

func TestLoadPNGMissingFile(t *testing.T) {
	if _, _, _, err := LoadPNG(filepath.Join(t.TempDir(), "absent.png")); err == nil {
		t.Fatal("missing file should error")
	}
}

func TestLoadShader(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sprite.frag")
	const src = "#version 330 core\nvoid main() {}\n"
	if err := os.WriteFile(path, []byte(src), 0o644); err != nil {
		t.Fatal(err)
	}

	got, err := LoadShader(path)
	if err != nil {
		t.Fatalf("LoadShader: %v", err)
	}
	if got != src {
		t.Errorf("source mismatch: %q", got)
	}

	if _, err := LoadShader(filepath.Join(t.TempDir(), "absent.frag")); err == nil {
		t.Error("missing file should error")
	}
}
