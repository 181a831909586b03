package batch

import "github.com/hubastard/glade/engine/gfx"

// Buffer is the vertex/index staging area for the open batch. Pure
// data; flush policy lives in the Batcher.
type Buffer struct {
	verts   []gfx.Vertex
	indices []uint32
	max     int
}

// NewBuffer preallocates storage for maxVertices, the capacity ceiling
// of one flush.
func NewBuffer(maxVertices int) *Buffer {
	return &Buffer{
		verts:   make([]gfx.Vertex, 0, maxVertices),
		indices: make([]uint32, 0, maxVertices*6/4),
		max:     maxVertices,
	}
}

// Append copies command geometry into the batch, rebasing indices onto
// the current vertex count so submission order is preserved verbatim.
func (b *Buffer) Append(verts []gfx.Vertex, indices []uint32) {
	base := uint32(len(b.verts))
	b.verts = append(b.verts, verts...)
	for _, i := range indices {
		b.indices = append(b.indices, base+i)
	}
}

// Fits reports whether n more vertices stay within the ceiling.
func (b *Buffer) Fits(n int) bool { return len(b.verts)+n <= b.max }

func (b *Buffer) Len() int    { return len(b.verts) }
func (b *Buffer) Empty() bool { return len(b.verts) == 0 }
func (b *Buffer) Max() int    { return b.max }

func (b *Buffer) Reset() {
	b.verts = b.verts[:0]
	b.indices = b.indices[:0]
}

func (b *Buffer) Vertices() []gfx.Vertex { return b.verts }
func (b *Buffer) Indices() []uint32      { return b.indices }
