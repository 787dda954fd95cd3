package journal

import (
	"fmt"

	"github.com/lixenwraith/vi-tennis/engine"
	"github.com/lixenwraith/vi-tennis/input"
)

// Replay re-runs the engine over the recorded inputs from a fresh match
// observe, if set, sees every Step result in order
func Replay(rec Recording, observe func(tick int, res engine.Result)) engine.Result {
	res := engine.Result{State: engine.NewState()}
	var frame input.Frame
	for i, b := range rec.Inputs {
		frame = frame.Advance(input.Buttons(b))
		res = engine.Step(res.State, res.Clock, frame)
		if observe != nil {
			observe(i, res)
		}
	}
	return res
}

// Verify replays rec and compares the outcome against the recorded summary
func Verify(rec Recording) (Summary, error) {
	res := Replay(rec, nil)
	got := Summarize(res.State, len(rec.Inputs))
	if got != rec.Final {
		return got, fmt.Errorf("replay diverged: recorded %+v, replayed %+v", rec.Final, got)
	}
	return got, nil
}
