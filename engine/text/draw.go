package text

import (
	"github.com/hubastard/glade/engine/colors"
	"github.com/hubastard/glade/engine/gfx"
)

// Target is the draw surface text renders onto; core.Engine satisfies
// it.
type Target interface {
	Draw(src gfx.Source, p gfx.Params) error
}

// Draw renders s with its top-left corner at (x, y). Newlines advance
// the baseline by the font's line height.
func Draw(t Target, f *Font, s string, x, y float32, c colors.Color) error {
	penX := x
	baseY := y + f.Ascent
	var prev rune = -1

	for _, r := range s {
		if r == '\n' {
			penX = x
			baseY += f.LineHeight()
			prev = -1
			continue
		}

		g, ok := f.Glyphs[r]
		if !ok {
			if sp, ok := f.Glyphs[' ']; ok {
				penX += sp.Advance
			}
			prev = r
			continue
		}

		if prev >= 0 {
			penX += f.Kern(prev, r)
		}

		if g.W > 0 && g.H > 0 {
			p := gfx.At(penX+g.BearingX, baseY-g.BearingY)
			p.Color = c
			if err := t.Draw(gfx.FromRegion(f.Texture, g.Region), p); err != nil {
				return err
			}
		}

		penX += g.Advance
		prev = r
	}
	return nil
}

// Measure reports the box Draw would cover for s at the font's native
// size.
func Measure(f *Font, s string) (w, h float32) {
	var lineW float32
	var prev rune = -1
	h = f.LineHeight()

	for _, r := range s {
		if r == '\n' {
			w = max(w, lineW)
			lineW = 0
			h += f.LineHeight()
			prev = -1
			continue
		}

		g, ok := f.Glyphs[r]
		if !ok {
			if sp, ok := f.Glyphs[' ']; ok {
				lineW += sp.Advance
			}
			prev = r
			continue
		}

		if prev >= 0 {
			lineW += f.Kern(prev, r)
		}
		lineW += g.Advance
		prev = r
	}

	return max(w, lineW), h
}
