// Package text rasterizes TTF fonts into a glyph atlas and draws
// strings through the sprite pipeline.
package text

import (
	"fmt"
	"image"
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	"github.com/hubastard/glade/engine/gfx"
)

const (
	atlasPadding = 2
	maxAtlasSize = 4096
	firstRune    = ' '
	lastRune     = '~'
)

type Glyph struct {
	Advance  float32
	BearingX float32
	BearingY float32 // baseline to glyph top
	W, H     int
	Region   gfx.Rect // atlas pixels
}

// Font is a rasterized face: one atlas texture plus per-rune metrics.
type Font struct {
	SizePx  float32
	Ascent  float32
	Descent float32
	LineGap float32
	Glyphs  map[rune]Glyph
	Texture gfx.Texture

	face font.Face
}

// LoadTTF reads a TTF file and rasterizes the printable ASCII range at
// sizePx into an atlas on the device.
func LoadTTF(d gfx.Device, path string, sizePx float32) (*Font, error) {
	ttf, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read font: %w", err)
	}
	return New(d, ttf, sizePx)
}

// New rasterizes raw TTF data at sizePx into an atlas on the device.
func New(d gfx.Device, ttf []byte, sizePx float32) (*Font, error) {
	ft, err := opentype.Parse(ttf)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}
	face, err := opentype.NewFace(ft, &opentype.FaceOptions{
		Size: float64(sizePx), DPI: 72, Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("new face: %w", err)
	}

	m := face.Metrics()
	ascent := float32(m.Ascent.Round())
	descent := float32(-m.Descent.Round())
	lineGap := float32(m.Height.Round()) - ascent + descent

	type meas struct {
		r      rune
		w, h   int
		adv    float32
		bx, by float32
	}
	measure := make([]meas, 0, lastRune-firstRune+1)
	for r := rune(firstRune); r <= lastRune; r++ {
		br, adv, ok := face.GlyphBounds(r)
		if !ok {
			continue
		}
		measure = append(measure, meas{
			r:   r,
			w:   (br.Max.X - br.Min.X).Round(),
			h:   (br.Max.Y - br.Min.Y).Round(),
			adv: float32(adv.Round()),
			bx:  float32(br.Min.X.Round()),
			by:  float32(-br.Min.Y.Round()),
		})
	}

	// Shelf packer: rows of glyphs, growing the atlas until all fit.
	atlasSize := 128
	var pos map[rune]image.Point
	for {
		x, y, rowH := atlasPadding, atlasPadding, 0
		fits := true
		pos = make(map[rune]image.Point, len(measure))

		for _, g := range measure {
			if g.w == 0 || g.h == 0 {
				continue
			}
			if x+g.w+atlasPadding > atlasSize {
				x = atlasPadding
				y += rowH + atlasPadding
				rowH = 0
			}
			if y+g.h+atlasPadding > atlasSize || g.w+2*atlasPadding > atlasSize {
				fits = false
				break
			}
			pos[g.r] = image.Pt(x, y)
			x += g.w + atlasPadding
			if g.h > rowH {
				rowH = g.h
			}
		}

		if fits {
			break
		}
		atlasSize *= 2
		if atlasSize > maxAtlasSize {
			face.Close()
			return nil, fmt.Errorf("font atlas exceeds %d px", maxAtlasSize)
		}
	}

	// White glyphs over transparent black; coverage becomes alpha, so
	// the pixels land premultiplied the way the device wants them.
	dst := image.NewRGBA(image.Rect(0, 0, atlasSize, atlasSize))
	drawer := &font.Drawer{Dst: dst, Src: image.White, Face: face}

	glyphs := make(map[rune]Glyph, len(measure))
	for _, g := range measure {
		glyph := Glyph{
			Advance:  g.adv,
			BearingX: g.bx,
			BearingY: g.by,
			W:        g.w,
			H:        g.h,
		}
		if g.w > 0 && g.h > 0 {
			p := pos[g.r]
			// The dot sits on the baseline; bearings place the
			// glyph's ink box exactly at p.
			drawer.Dot = fixed.P(p.X-int(g.bx), p.Y+int(g.by))
			drawer.DrawString(string(g.r))
			glyph.Region = gfx.NewRect(float32(p.X), float32(p.Y), float32(g.w), float32(g.h))
		}
		glyphs[g.r] = glyph
	}

	tex, err := d.NewTexture(atlasSize, atlasSize, dst.Pix)
	if err != nil {
		face.Close()
		return nil, err
	}

	return &Font{
		SizePx:  sizePx,
		Ascent:  ascent,
		Descent: descent,
		LineGap: lineGap,
		Glyphs:  glyphs,
		Texture: tex,
		face:    face,
	}, nil
}

// Release frees the atlas texture and the face.
func (f *Font) Release() {
	if f.Texture != nil {
		f.Texture.Release()
		f.Texture = nil
	}
	if f.face != nil {
		f.face.Close()
		f.face = nil
	}
}

// LineHeight is the baseline-to-baseline distance.
func (f *Font) LineHeight() float32 { return f.Ascent - f.Descent + f.LineGap }

// Kern reports the kerning adjustment between two runes in pixels.
func (f *Font) Kern(a, b rune) float32 {
	if f.face == nil {
		return 0
	}
	return float32(f.face.Kern(a, b)) / 64
}
