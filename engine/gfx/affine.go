package gfx

import "math"

// Affine is a 2D affine transform, row-major 2x3:
//
//	x' = A*x + B*y + C
//	y' = D*x + E*y + F
type Affine struct {
	A, B, C float32
	D, E, F float32
}

func Identity() Affine {
	return Affine{A: 1, E: 1}
}

func Translation(x, y float32) Affine {
	return Affine{A: 1, C: x, E: 1, F: y}
}

func Scaling(sx, sy float32) Affine {
	return Affine{A: sx, E: sy}
}

func Rotation(radians float32) Affine {
	sin, cos := math.Sincos(float64(radians))
	s, c := float32(sin), float32(cos)
	return Affine{A: c, B: -s, D: s, E: c}
}

// Mul composes transforms: applying the result is applying n, then m.
func (m Affine) Mul(n Affine) Affine {
	return Affine{
		A: m.A*n.A + m.B*n.D,
		B: m.A*n.B + m.B*n.E,
		C: m.A*n.C + m.B*n.F + m.C,
		D: m.D*n.A + m.E*n.D,
		E: m.D*n.B + m.E*n.E,
		F: m.D*n.C + m.E*n.F + m.F,
	}
}

// Apply transforms a point.
func (m Affine) Apply(x, y float32) (float32, float32) {
	return m.A*x + m.B*y + m.C, m.D*x + m.E*y + m.F
}

func (m Affine) IsIdentity() bool {
	return m == Affine{A: 1, E: 1}
}
