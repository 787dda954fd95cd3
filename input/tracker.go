package input

// DefaultHoldTicks covers the usual terminal auto-repeat delay at 60 ticks per second
const DefaultHoldTicks = 32

// Tracker turns terminal key presses into per-tick button snapshots
// Terminals report no releases: directions stay held for holdTicks after their last report,
// other buttons pulse for exactly one tick
type Tracker struct {
	holdTicks int
	tick      uint64

	leftSeen, rightSeen uint64
	leftHeld, rightHeld bool

	pulses Buttons
	frame  Frame
}

// NewTracker creates a tracker; holdTicks <= 0 selects DefaultHoldTicks
func NewTracker(holdTicks int) *Tracker {
	if holdTicks <= 0 {
		holdTicks = DefaultHoldTicks
	}
	return &Tracker{holdTicks: holdTicks}
}

// Press records one key report for b
// Opposite directions cancel each other
func (t *Tracker) Press(b Buttons) {
	if b.Has(ButtonLeft) {
		t.leftSeen, t.leftHeld = t.tick, true
		t.rightHeld = false
	}
	if b.Has(ButtonRight) {
		t.rightSeen, t.rightHeld = t.tick, true
		t.leftHeld = false
	}
	t.pulses |= b &^ (ButtonLeft | ButtonRight)
}

// Next closes the current tick and returns its input frame
func (t *Tracker) Next() Frame {
	now := t.pulses
	if t.leftHeld && t.tick-t.leftSeen < uint64(t.holdTicks) {
		now |= ButtonLeft
	} else {
		t.leftHeld = false
	}
	if t.rightHeld && t.tick-t.rightSeen < uint64(t.holdTicks) {
		now |= ButtonRight
	} else {
		t.rightHeld = false
	}

	t.pulses = ButtonNone
	t.tick++
	t.frame = t.frame.Advance(now)
	return t.frame
}

// Release drops all held and pending buttons
func (t *Tracker) Release() {
	t.leftHeld, t.rightHeld = false, false
	t.pulses = ButtonNone
}
