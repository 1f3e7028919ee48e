package generator

import (
	"github.com/chromering/chromering/internal/coloring"
	"github.com/chromering/chromering/internal/diag"
	"github.com/chromering/chromering/internal/ipc"
)

// Core attaches to the shared substrate for the process's lifetime and
// runs the single-writer production loop.
type Core struct {
	graph *coloring.Graph
	log   *diag.Logger
	stop  ipc.StopSignal
}

// New constructs a Core for the given vertex/edge set.
func New(graph *coloring.Graph, log *diag.Logger, stop ipc.StopSignal) *Core {
	return &Core{graph: graph, log: log, stop: stop}
}

// Run attaches to the named shared resources and runs the production
// loop until the stop flag trips or the supervisor sets stop_generators.
// The returned error is non-nil only for attachment failures.
func (c *Core) Run(names ipc.Names) error {
	res, err := ipc.AttachResources(names)
	if err != nil {
		c.log.Err().Err(err).Str("op", "attach_resources").Log("generator: failed to attach to shared resources")
		return err
	}
	defer func() {
		if err := res.Close(); err != nil {
			c.log.Warning().Err(err).Log("generator: close reported an error")
		}
	}()

	c.productionLoop(res)
	return nil
}

func (c *Core) productionLoop(res *ipc.Resources) {
	for {
		if c.stop.Requested() || res.Region.StopRequested() {
			return
		}

		coloringAttempt := coloring.Random(c.graph)
		mono := coloring.Monochromatic(c.graph, coloringAttempt)
		if len(mono) >= ipc.MaxEdges {
			// Too large to fit a sentinel-padded slot: not interesting,
			// discard and retry.
			continue
		}

		if err := res.WriteMutex.Wait(c.stop); err != nil {
			continue
		}

		if err := res.FreeSlots.Wait(c.stop); err != nil {
			res.WriteMutex.Post()
			continue
		}

		res.Region.Publish(toCandidate(mono))
		res.UsedSlots.Post()
		res.WriteMutex.Post()
	}
}

func toCandidate(edges []coloring.Edge) ipc.Candidate {
	out := make([]ipc.Edge, len(edges))
	for i, e := range edges {
		out[i] = ipc.Edge{U: e.U, V: e.V}
	}
	return ipc.Candidate{Edges: out}
}
