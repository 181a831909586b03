package core

// Input is the polled input snapshot. Down states persist; pressed and
// released edges last one simulation tick, so a key press fires exactly
// one update even when several ticks run in the same frame.
type Input struct {
	down     map[Key]bool
	pressed  map[Key]bool
	released map[Key]bool

	btnDown     map[MouseButton]bool
	btnPressed  map[MouseButton]bool
	btnReleased map[MouseButton]bool

	mouseX, mouseY float64
	scrollX        float64
	scrollY        float64
	text           []rune
}

func NewInput() *Input {
	return &Input{
		down:        map[Key]bool{},
		pressed:     map[Key]bool{},
		released:    map[Key]bool{},
		btnDown:     map[MouseButton]bool{},
		btnPressed:  map[MouseButton]bool{},
		btnReleased: map[MouseButton]bool{},
	}
}

// Handle folds one event into the snapshot.
func (in *Input) Handle(ev Event) {
	switch e := ev.(type) {
	case EventKey:
		if e.Down && !in.down[e.Key] {
			in.pressed[e.Key] = true
		}
		if !e.Down && in.down[e.Key] {
			in.released[e.Key] = true
		}
		in.down[e.Key] = e.Down
	case EventMouseButton:
		if e.Down && !in.btnDown[e.Button] {
			in.btnPressed[e.Button] = true
		}
		if !e.Down && in.btnDown[e.Button] {
			in.btnReleased[e.Button] = true
		}
		in.btnDown[e.Button] = e.Down
	case EventMouseMove:
		in.mouseX, in.mouseY = e.X, e.Y
	case EventScroll:
		in.scrollX += e.Xoff
		in.scrollY += e.Yoff
	case EventText:
		in.text = append(in.text, e.Char)
	}
}

// NextTick clears the per-tick edges and accumulators. The orchestrator
// calls it after each update tick.
func (in *Input) NextTick() {
	clear(in.pressed)
	clear(in.released)
	clear(in.btnPressed)
	clear(in.btnReleased)
	in.scrollX, in.scrollY = 0, 0
	in.text = in.text[:0]
}

func (in *Input) IsKeyDown(k Key) bool     { return in.down[k] }
func (in *Input) IsKeyPressed(k Key) bool  { return in.pressed[k] }
func (in *Input) IsKeyReleased(k Key) bool { return in.released[k] }

func (in *Input) IsButtonDown(b MouseButton) bool     { return in.btnDown[b] }
func (in *Input) IsButtonPressed(b MouseButton) bool  { return in.btnPressed[b] }
func (in *Input) IsButtonReleased(b MouseButton) bool { return in.btnReleased[b] }

// Mouse reports the pointer position in window coordinates.
func (in *Input) Mouse() (float64, float64) { return in.mouseX, in.mouseY }

// Scroll reports wheel movement accumulated this tick.
func (in *Input) Scroll() (float64, float64) { return in.scrollX, in.scrollY }

// Text reports characters typed this tick.
func (in *Input) Text() string { return string(in.text) }
