package gfx

import "github.com/hubastard/glade/engine/colors"

// Params positions a draw source on the canvas. The zero value is not
// useful (zero scale); start from DefaultParams.
type Params struct {
	X, Y             float32
	ScaleX, ScaleY   float32
	OriginX, OriginY float32 // rotation/scale pivot, in source pixels
	Rotation         float32 // radians, clockwise with Y down
	Color            colors.Color
}

func DefaultParams() Params {
	return Params{ScaleX: 1, ScaleY: 1, Color: colors.White}
}

// At is shorthand for DefaultParams moved to x,y.
func At(x, y float32) Params {
	p := DefaultParams()
	p.X, p.Y = x, y
	return p
}

// Affine bakes the params into one transform: shift by -origin, scale,
// rotate, then translate to position, applied in that order.
func (p Params) Affine() Affine {
	m := Translation(p.X, p.Y)
	if p.Rotation != 0 {
		m = m.Mul(Rotation(p.Rotation))
	}
	if p.ScaleX != 1 || p.ScaleY != 1 {
		m = m.Mul(Scaling(p.ScaleX, p.ScaleY))
	}
	if p.OriginX != 0 || p.OriginY != 0 {
		m = m.Mul(Translation(-p.OriginX, -p.OriginY))
	}
	return m
}
