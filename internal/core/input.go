package core

// InputFrame is the pointer state sampled once per frame.
// The pointer position persists between frames; Pressed is an edge and holds
// only for the frame in which the primary button went down.
type InputFrame struct {
	Pointer    Vec2 // Last known pointer position in playfield units
	HasPointer bool // Whether Pointer has ever been set
	Pressed    bool // Primary action just occurred this frame
}

// NewInputFrame creates an input frame with no pointer and no press.
func NewInputFrame() InputFrame {
	return InputFrame{}
}

// MoveTo records the pointer position.
func (f *InputFrame) MoveTo(x, y float64) {
	f.Pointer = Vec2{X: x, Y: y}
	f.HasPointer = true
}

// Press marks the primary action as just triggered.
func (f *InputFrame) Press() {
	f.Pressed = true
}

// TargetX returns the pointer's X coordinate and whether it is usable.
// A missing or non-finite pointer is not usable.
func (f InputFrame) TargetX() (float64, bool) {
	if !f.HasPointer || !IsFinite(f.Pointer.X) {
		return 0, false
	}
	return f.Pointer.X, true
}

// Clear resets the per-frame edge for the next frame. The pointer position is kept.
func (f *InputFrame) Clear() {
	f.Pressed = false
}
