package gfx

// Rect is an axis-aligned rectangle, position plus size.
type Rect struct {
	X, Y, W, H float32
}

func NewRect(x, y, w, h float32) Rect { return Rect{X: x, Y: y, W: w, H: h} }

func (r Rect) Right() float32  { return r.X + r.W }
func (r Rect) Bottom() float32 { return r.Y + r.H }

func (r Rect) Contains(x, y float32) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Row builds n horizontally adjacent rects of equal size, for cutting
// animation strips out of a sheet.
func Row(x, y, w, h float32, n int) []Rect {
	out := make([]Rect, n)
	for i := range out {
		out[i] = Rect{X: x + float32(i)*w, Y: y, W: w, H: h}
	}
	return out
}
