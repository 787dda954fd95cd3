package main

import (
	"log"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/vi-tennis/config"
	"github.com/lixenwraith/vi-tennis/constants"
	"github.com/lixenwraith/vi-tennis/engine"
	"github.com/lixenwraith/vi-tennis/input"
	"github.com/lixenwraith/vi-tennis/journal"
	"github.com/lixenwraith/vi-tennis/render"
	"github.com/lixenwraith/vi-tennis/status"
)

// runner owns the simulation state and drives it from terminal events and a fixed-rate ticker
// Everything except event polling happens on the goroutine calling run
type runner struct {
	screen   tcell.Screen
	renderer *render.TerminalRenderer
	keys     *input.KeyMap
	tracker  *input.Tracker
	recorder *journal.Recorder

	registry *status.Registry
	tally    *status.Tally
	tps      *status.AtomicFloat

	res      engine.Result
	interval time.Duration
}

func newRunner(screen tcell.Screen, cfg config.Config, keys *input.KeyMap) *runner {
	opts := render.DefaultOptions()
	opts.Debug = cfg.Display.DebugHitboxes
	opts.LandingMarker = cfg.Display.LandingMarker
	if names := cfg.Keys["swing"]; len(names) > 0 {
		opts.ServeKey = names[0]
	}
	if names := cfg.Keys["start"]; len(names) > 0 {
		opts.StartKey = names[0]
	}

	reg := status.NewRegistry()
	r := &runner{
		screen:   screen,
		renderer: render.NewTerminalRenderer(screen, opts),
		keys:     keys,
		tracker:  input.NewTracker(cfg.Game.HoldTicks),
		registry: reg,
		tally:    status.NewTally(reg),
		tps:      reg.Floats.Get(status.KeyTickRate),
		res:      engine.Result{State: engine.NewState()},
		interval: time.Second / time.Duration(cfg.Game.TickRate),
	}
	if cfg.Record.Path != "" {
		r.recorder = journal.NewRecorder(cfg.Game.TickRate, time.Now())
		log.Printf("recording %s to %s", r.recorder.ID(), cfg.Record.Path)
	}
	return r
}

// handleKey feeds one key report to the tracker; returns false when the player quits
func (r *runner) handleKey(ev *tcell.EventKey) bool {
	b, ok := r.keys.Resolve(ev)
	if !ok {
		return true
	}
	switch b.Command {
	case input.CommandQuit:
		return false
	case input.CommandToggleDebug:
		r.renderer.SetDebug(!r.renderer.Debug())
	}
	if b.Buttons != input.ButtonNone {
		r.tracker.Press(b.Buttons)
	}
	return true
}

// handleResize redraws for the new size and drops held directions
func (r *runner) handleResize() {
	r.screen.Sync()
	r.renderer.UpdateDimensions()
	r.tracker.Release()
}

// tick advances the simulation by one step
func (r *runner) tick() {
	frame := r.tracker.Next()
	if r.recorder != nil {
		r.recorder.Record(frame.Now)
	}

	prev := r.res.State.Phase
	r.res = engine.Step(r.res.State, r.res.Clock, frame)
	r.tally.Record(r.res)

	if ev := r.res.Events; ev != 0 {
		s := r.res.State
		log.Printf("tick %d: %s score %d-%d sets %d", r.res.Clock.Tick, ev, s.Score.Player, s.Score.CPU, s.Score.SetsCompleted)
	}
	if r.res.State.Phase != prev {
		log.Printf("phase %s -> %s", prev, r.res.State.Phase)
	}
}

func (r *runner) draw() {
	var stats []status.Entry
	if r.renderer.Debug() {
		stats = r.registry.Entries()
	}
	r.renderer.RenderFrame(r.res.State, stats)
}

// run blocks until the player quits or the screen closes
func (r *runner) run() {
	events := make(chan tcell.Event, 64)
	go pollEvents(r.screen, events)

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	next := time.Now()
	windowStart, windowTicks := next, 0
	r.draw()

	for {
		select {
		case ev, ok := <-events:
			if !ok {
				return
			}
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if !r.handleKey(ev) {
					return
				}
			case *tcell.EventResize:
				r.handleResize()
			}

		case now := <-ticker.C:
			steps := 0
			for !now.Before(next) && steps < constants.MaxCatchUpTicks {
				r.tick()
				next = next.Add(r.interval)
				steps++
			}
			// Drop a backlog the catch-up limit could not absorb
			if now.Sub(next) > r.interval {
				next = now
			}

			windowTicks += steps
			if elapsed := now.Sub(windowStart); elapsed >= time.Second {
				r.tps.Set(float64(windowTicks) / elapsed.Seconds())
				windowStart, windowTicks = now, 0
			}

			r.draw()
		}
	}
}

// pollEvents forwards terminal events until the screen is finalised
func pollEvents(screen tcell.Screen, out chan<- tcell.Event) {
	defer close(out)
	for {
		ev := screen.PollEvent()
		if ev == nil {
			return
		}
		out <- ev
	}
}

// finish seals the recording, if any, and logs the session counters
func (r *runner) finish(recordPath string) error {
	for _, e := range r.registry.Entries() {
		log.Printf("stat %s=%s", e.Key, e.Value)
	}
	if r.recorder == nil {
		return nil
	}
	ticks := r.recorder.Ticks()
	rec := r.recorder.Finish(r.res.State)
	if err := journal.SaveFile(recordPath, rec); err != nil {
		return err
	}
	log.Printf("saved recording %s, %d ticks", rec.Header.ID, ticks)
	return nil
}
