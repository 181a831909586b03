package gfx

// BlendMode selects how incoming fragments combine with the target.
// All modes expect premultiplied-alpha colors.
type BlendMode uint8

const (
	BlendAlpha BlendMode = iota
	BlendAdd
	BlendMultiply
	BlendSubtract
)

func (b BlendMode) String() string {
	switch b {
	case BlendAlpha:
		return "alpha"
	case BlendAdd:
		return "add"
	case BlendMultiply:
		return "multiply"
	case BlendSubtract:
		return "subtract"
	}
	return "unknown"
}

// Scissor clips rendering to a pixel rectangle of the current target.
// The zero value leaves clipping disabled; a zero-area enabled scissor
// is valid and clips everything.
type Scissor struct {
	X, Y, W, H int32
	Enabled    bool
}

func ClipRect(x, y, w, h int32) Scissor {
	return Scissor{X: x, Y: y, W: w, H: h, Enabled: true}
}

// DrawState is the pipeline signature a batch is drawn under. Two
// commands merge into one draw call iff their states compare equal;
// texture and shader handles compare by identity.
type DrawState struct {
	Texture Texture
	Shader  Shader
	Blend   BlendMode
	Clip    Scissor
}
