package input

// Buttons is a bit set of logical controller buttons
type Buttons uint8

const (
	ButtonLeft Buttons = 1 << iota
	ButtonRight
	ButtonJump
	// ButtonSwing serves while awaiting serve and swings the racket otherwise
	ButtonSwing
	// ButtonStart begins a new match once one is decided
	ButtonStart
)

// ButtonNone is the empty set
const ButtonNone Buttons = 0

// Has reports whether all of x are set
func (b Buttons) Has(x Buttons) bool {
	return b&x == x && x != 0
}

// Frame is the pair of button snapshots one tick consumes
type Frame struct {
	Prev Buttons
	Now  Buttons
}

// Down reports whether b is held this tick
func (f Frame) Down(b Buttons) bool {
	return f.Now.Has(b)
}

// JustPressed reports a press edge: held now, not held last tick
func (f Frame) JustPressed(b Buttons) bool {
	return f.Now.Has(b) && !f.Prev.Has(b)
}

// Advance returns the frame for the next tick given the new snapshot
func (f Frame) Advance(now Buttons) Frame {
	return Frame{Prev: f.Now, Now: now}
}
