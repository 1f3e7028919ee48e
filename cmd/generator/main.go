// Command generator runs the Generator Core: it attaches to a
// supervisor's shared ring and semaphores and repeatedly submits
// candidate edge-deletion sets for the graph named on its command line.
package main

import (
	"fmt"
	"os"

	"github.com/chromering/chromering/internal/diag"
	"github.com/chromering/chromering/internal/generator"
	"github.com/chromering/chromering/internal/ipc"
	"github.com/chromering/chromering/internal/signalctl"
)

const namesEnv = "CHROMERING_PREFIX"

func main() {
	os.Exit(run(os.Args[1:], os.Stderr))
}

func run(args []string, stderr *os.File) int {
	graph, err := generator.ParseArgs(args)
	if err != nil {
		fmt.Fprintln(stderr, "generator:", err)
		return 1
	}

	names := ipc.Names{Prefix: resourcePrefix()}
	log := diag.WithRole(diag.New(stderr), diag.RoleGenerator)

	stop := signalctl.Install()
	defer stop.Stop()

	core := generator.New(graph, log, stop)
	if err := core.Run(names); err != nil {
		return 1
	}
	return 0
}

func resourcePrefix() string {
	if p := os.Getenv(namesEnv); p != "" {
		return p
	}
	return fmt.Sprintf("chromering_%d_", os.Getuid())
}
