package gfx

import "github.com/hubastard/glade/engine/colors"

// Vertex layout: pos2 + uv2 + color4 => 8 floats. Shader pipelines bind
// attributes by position, so the field order is a binary contract.
const (
	VertexFloats = 8
	VertexStride = VertexFloats * 4 // bytes
)

// Vertex is one element of the packed stream uploaded to the device.
// Positions are in virtual-canvas pixels with Y growing down; transforms
// are baked in before a vertex is written, never deferred to the GPU.
type Vertex struct {
	X, Y  float32
	U, V  float32
	Color colors.Color
}
