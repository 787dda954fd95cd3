package status

import (
	"sync/atomic"

	"github.com/lixenwraith/vi-tennis/engine"
)

// Metric keys published by Tally
const (
	KeyPhase       = "phase"
	KeyTicks       = "ticks"
	KeyRallies     = "rallies"
	KeyHits        = "hits"
	KeyOuts        = "outs"
	KeyPointsHuman = "pts.player"
	KeyPointsCPU   = "pts.cpu"
	KeyMatches     = "matches"
	KeyTickRate    = "tps"
)

// Tally folds per-tick engine events into registry counters
type Tally struct {
	phase   *AtomicString
	ticks   *atomic.Int64
	rallies *atomic.Int64
	hits    *atomic.Int64
	outs    *atomic.Int64
	human   *atomic.Int64
	cpu     *atomic.Int64
	matches *atomic.Int64
}

func NewTally(r *Registry) *Tally {
	return &Tally{
		phase:   r.Strings.Get(KeyPhase),
		ticks:   r.Ints.Get(KeyTicks),
		rallies: r.Ints.Get(KeyRallies),
		hits:    r.Ints.Get(KeyHits),
		outs:    r.Ints.Get(KeyOuts),
		human:   r.Ints.Get(KeyPointsHuman),
		cpu:     r.Ints.Get(KeyPointsCPU),
		matches: r.Ints.Get(KeyMatches),
	}
}

// Record accounts for one completed Step
func (t *Tally) Record(res engine.Result) {
	ev := res.Events
	t.ticks.Add(1)
	t.phase.Store(res.State.Phase.String())

	if ev.Has(engine.EventServe) {
		t.rallies.Add(1)
	}
	if ev.Has(engine.EventPlayerHit) {
		t.hits.Add(1)
	}
	if ev.Has(engine.EventCPUHit) {
		t.hits.Add(1)
	}
	if ev.Has(engine.EventOut) {
		t.outs.Add(1)
	}
	if ev.Has(engine.EventPointPlayer) {
		t.human.Add(1)
	}
	if ev.Has(engine.EventPointCPU) {
		t.cpu.Add(1)
	}
	if ev.Has(engine.EventMatchWon) {
		t.matches.Add(1)
	}
}
