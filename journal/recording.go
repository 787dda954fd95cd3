package journal

import (
	"time"

	"github.com/google/uuid"
	"github.com/lixenwraith/vi-tennis/components"
	"github.com/lixenwraith/vi-tennis/constants"
	"github.com/lixenwraith/vi-tennis/engine"
	"github.com/lixenwraith/vi-tennis/input"
)

// FormatVersion is bumped whenever engine rules change what a given input stream produces
const FormatVersion = 1

// Header identifies a recording
type Header struct {
	ID        string `msgpack:"id"`
	Version   int    `msgpack:"version"`
	CreatedAt int64  `msgpack:"created_at"`
	TickRate  int    `msgpack:"tick_rate"`
}

// Summary is the match outcome a replay must reproduce
type Summary struct {
	Ticks         int                                     `msgpack:"ticks"`
	Player        int                                     `msgpack:"player"`
	CPU           int                                     `msgpack:"cpu"`
	SetWins       [constants.MatchLength]components.Color `msgpack:"set_wins"`
	SetsCompleted int                                     `msgpack:"sets_completed"`
	Winner        string                                  `msgpack:"winner,omitempty"`
	Phase         string                                  `msgpack:"phase"`
}

// Recording is a full input journal: one button snapshot per simulated tick
// The engine is deterministic, so the inputs alone reproduce the match
type Recording struct {
	Header Header  `msgpack:"header"`
	Inputs []byte  `msgpack:"inputs"`
	Final  Summary `msgpack:"final"`
}

// Summarize captures the outcome fields of s after ticks steps
func Summarize(s engine.State, ticks int) Summary {
	sum := Summary{
		Ticks:         ticks,
		Player:        s.Score.Player,
		CPU:           s.Score.CPU,
		SetWins:       s.Score.SetWins,
		SetsCompleted: s.Score.SetsCompleted,
		Phase:         s.Phase.String(),
	}
	if side, ok := s.MatchWinner(); ok {
		sum.Winner = side.String()
	}
	return sum
}

// Recorder accumulates the input stream of a running match
type Recorder struct {
	rec Recording
}

func NewRecorder(tickRate int, now time.Time) *Recorder {
	return &Recorder{rec: Recording{
		Header: Header{
			ID:        uuid.New().String(),
			Version:   FormatVersion,
			CreatedAt: now.Unix(),
			TickRate:  tickRate,
		},
	}}
}

// ID returns the recording identifier
func (r *Recorder) ID() string { return r.rec.Header.ID }

// Record appends the buttons fed to one Step
func (r *Recorder) Record(b input.Buttons) {
	r.rec.Inputs = append(r.rec.Inputs, byte(b))
}

func (r *Recorder) Ticks() int { return len(r.rec.Inputs) }

// Finish seals the recording with the final state
func (r *Recorder) Finish(final engine.State) Recording {
	rec := r.rec
	rec.Inputs = append([]byte(nil), r.rec.Inputs...)
	rec.Final = Summarize(final, len(rec.Inputs))
	return rec
}
