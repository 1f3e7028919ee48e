package supervisor

import (
	"fmt"
	"io"
	"time"

	"github.com/joeycumines/logiface"
	"github.com/joeycumines/stumpy"

	"github.com/chromering/chromering/internal/diag"
	"github.com/chromering/chromering/internal/ipc"
)

// Outcome is the result of a completed run, used to pick the final
// output line and process exit code.
type Outcome struct {
	ProofFound bool
	BestSize   int  // valid when !ProofFound && BestFound
	BestFound  bool // false if no non-empty candidate was read before the loop exited
	Reads      int
}

// Core owns the shared substrate for its entire lifetime and runs the
// single-reader main loop.
type Core struct {
	cfg  Config
	log  *diag.Logger
	stop ipc.StopSignal
}

// New constructs a Core.
func New(cfg Config, log *diag.Logger, stop ipc.StopSignal) *Core {
	return &Core{cfg: cfg, log: log, stop: stop}
}

// Run executes the full supervisor lifecycle: create resources, run the
// main loop, shut down, and report the outcome. The returned error is
// non-nil only for initialization failures; a clean or signal-driven
// stop is reported via Outcome, not an error.
//
// cfg.PrintGraph is accepted and validated by ParseArgs but, like its
// counterpart in the protocol this process implements, never consulted
// here: the supervisor has no edge list of its own to print, only the
// generator parses one.
func (c *Core) Run(names ipc.Names, out io.Writer) (Outcome, error) {
	res, err := ipc.CreateResources(names)
	if err != nil {
		c.log.Err().Err(err).Str("op", "create_resources").Log("supervisor: failed to create shared resources")
		return Outcome{}, err
	}

	if c.cfg.Delay > 0 {
		time.Sleep(c.cfg.Delay)
	}

	outcome := c.mainLoop(res)

	res.DrainWriters()
	if err := res.Shutdown(); err != nil {
		c.log.Warning().Err(err).Log("supervisor: shutdown reported an error")
	}

	c.report(out, outcome)
	return outcome, nil
}

func (c *Core) mainLoop(res *ipc.Resources) Outcome {
	var outcome Outcome
	best := -1

	for {
		if c.stop.Requested() {
			break
		}
		if c.cfg.Limit > 0 && outcome.Reads >= c.cfg.Limit {
			break
		}

		err := res.UsedSlots.Wait(c.stop)
		if err != nil {
			// ErrStopRequested or any other wait failure: re-check the
			// loop head rather than treating this as fatal.
			continue
		}

		cand := res.Region.Take()
		res.FreeSlots.Post()
		outcome.Reads++

		n := cand.Len()
		if n == 0 {
			outcome.ProofFound = true
			break
		}
		if best == -1 || n < best {
			best = n
			outcome.BestFound = true
			outcome.BestSize = n
			c.log.Info().
				Int64("size", int64(n)).
				Int64("reads", int64(outcome.Reads)).
				Array().
				Call(func(a *logiface.ArrayBuilder[*stumpy.Event, *logiface.Chain[*stumpy.Event, *diag.Builder]]) {
					for _, e := range cand.Edges {
						a.Str(fmt.Sprintf("%d-%d", e.U, e.V))
					}
				}).
				As("edges").
				End().
				Log("new best candidate")
		}
	}

	return outcome
}

func (c *Core) report(out io.Writer, o Outcome) {
	switch {
	case o.ProofFound:
		fmt.Fprintln(out, "the graph is 3-colorable")
	case o.BestFound:
		fmt.Fprintf(out, "best solution removes %d edges\n", o.BestSize)
	default:
		fmt.Fprintln(out, "no candidates were observed")
	}
}
