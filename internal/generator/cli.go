// Package generator attaches to the shared substrate and repeatedly
// publishes candidate edge-deletion sets produced by the coloring
// heuristic.
package generator

import (
	"fmt"

	"github.com/chromering/chromering/internal/coloring"
)

const usage = `usage: generator EDGE1 EDGE2 ...
  each EDGE has the form <u>-<v> with u, v decimal integers
`

// ParseArgs parses the generator's positional edge arguments. At least
// one edge is required; the first unparseable argument rejects the
// whole invocation.
func ParseArgs(args []string) (*coloring.Graph, error) {
	for _, a := range args {
		if a == "-h" || a == "--help" {
			return nil, fmt.Errorf("%s", usage)
		}
	}

	edges, err := coloring.ParseEdges(args)
	if err != nil {
		return nil, fmt.Errorf("%w\n%s", err, usage)
	}
	return coloring.Build(edges), nil
}

// Usage returns the usage text shown on a parse failure.
func Usage() string { return usage }
