package gfx

import "github.com/hubastard/glade/engine/colors"

// DrawCommand is one logical draw request: indexed triangles to append
// to the open batch, drawn under State. Indices address Vertices from
// zero; the batcher rebases them when appending. Vertex positions carry
// the final transform already.
type DrawCommand struct {
	State    DrawState
	Vertices []Vertex
	Indices  []uint32
}

// quadIndices is the two-triangle cycle shared by every quad.
var quadIndices = [6]uint32{0, 1, 2, 2, 3, 0}

// QuadIndices returns the index pattern for one quad.
func QuadIndices() []uint32 { return quadIndices[:] }

// AppendQuad transforms the corners of a w*h rectangle rooted at the
// origin through m and appends them to dst in TL, TR, BR, BL order,
// pairing them with the given UV rect and color.
func AppendQuad(dst []Vertex, m Affine, w, h float32, u0, v0, u1, v1 float32, c colors.Color) []Vertex {
	x0, y0 := m.Apply(0, 0)
	x1, y1 := m.Apply(w, 0)
	x2, y2 := m.Apply(w, h)
	x3, y3 := m.Apply(0, h)
	return append(dst,
		Vertex{X: x0, Y: y0, U: u0, V: v0, Color: c},
		Vertex{X: x1, Y: y1, U: u1, V: v0, Color: c},
		Vertex{X: x2, Y: y2, U: u1, V: v1, Color: c},
		Vertex{X: x3, Y: y3, U: u0, V: v1, Color: c},
	)
}
