package gfx

// SourceKind tags the draw-source variants.
type SourceKind uint8

const (
	SourceSolid SourceKind = iota
	SourceTexture
	SourceRegion
	SourceMesh
)

// Source is what a draw call renders: a solid rectangle, a whole
// texture, a texture sub-region, or an arbitrary mesh. Every variant
// lowers to the same DrawCommand shape before batching.
type Source struct {
	Kind    SourceKind
	Texture Texture
	Region  Rect  // SourceRegion: sub-rect in texture pixels
	Mesh    *Mesh // SourceMesh
	W, H    float32
}

// Solid is a w*h rectangle filled with the params color.
func Solid(w, h float32) Source {
	return Source{Kind: SourceSolid, W: w, H: h}
}

// FromTexture draws the whole texture at its native size.
func FromTexture(t Texture) Source {
	w, h := t.Size()
	return Source{Kind: SourceTexture, Texture: t, W: float32(w), H: float32(h)}
}

// FromRegion draws a sub-rect of a texture, sized to the region. Used
// for spritesheets and animation frames.
func FromRegion(t Texture, region Rect) Source {
	return Source{Kind: SourceRegion, Texture: t, Region: region, W: region.W, H: region.H}
}

// FromMesh draws caller-built geometry through the same batch path.
func FromMesh(m *Mesh) Source {
	return Source{Kind: SourceMesh, Mesh: m}
}

// Size reports the source's untransformed extent. Mesh sources report
// zero; their vertices carry their own geometry.
func (s Source) Size() (w, h float32) { return s.W, s.H }

// Mesh is indexed geometry in model space. A nil Texture renders solid
// vertex colors.
type Mesh struct {
	Vertices []Vertex
	Indices  []uint32
	Texture  Texture
}
