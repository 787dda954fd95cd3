// tennis-replay re-runs a recorded vi-tennis session and checks it reproduces the recorded result
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/lixenwraith/vi-tennis/engine"
	"github.com/lixenwraith/vi-tennis/journal"
)

var verboseFlag = flag.Bool("v", false, "print every tick that raised events")

func main() {
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: tennis-replay [-v] recording.vtr\n")
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}

	if err := replay(os.Stdout, flag.Arg(0), *verboseFlag); err != nil {
		fmt.Fprintf(os.Stderr, "tennis-replay: %v\n", err)
		os.Exit(1)
	}
}

func replay(w io.Writer, path string, verbose bool) error {
	rec, err := journal.LoadFile(path)
	if err != nil {
		return err
	}

	h := rec.Header
	fmt.Fprintf(w, "recording %s (v%d, %s, %d ticks at %d/s)\n",
		h.ID, h.Version, time.Unix(h.CreatedAt, 0).UTC().Format(time.RFC3339), len(rec.Inputs), h.TickRate)

	var observe func(int, engine.Result)
	if verbose {
		observe = func(tick int, res engine.Result) {
			if res.Events != 0 {
				s := res.State.Score
				fmt.Fprintf(w, "%7d %-40s %d-%d\n", tick, res.Events, s.Player, s.CPU)
			}
		}
	}
	res := journal.Replay(rec, observe)
	got := journal.Summarize(res.State, len(rec.Inputs))

	fmt.Fprintf(w, "points %d-%d, sets %d, phase %s", got.Player, got.CPU, got.SetsCompleted, got.Phase)
	if got.Winner != "" {
		fmt.Fprintf(w, ", match to %s", got.Winner)
	}
	fmt.Fprintln(w)

	if got != rec.Final {
		return fmt.Errorf("replay diverged: recorded %+v, replayed %+v", rec.Final, got)
	}
	fmt.Fprintln(w, "ok")
	return nil
}
