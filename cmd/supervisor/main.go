// Command supervisor runs the Supervisor Core: it owns the shared ring
// and semaphores, drains candidates submitted by generator processes,
// and reports the smallest edge-deletion set found.
package main

import (
	"errors"
	"fmt"
	"os"

	flag "github.com/spf13/pflag"

	"github.com/chromering/chromering/internal/diag"
	"github.com/chromering/chromering/internal/ipc"
	"github.com/chromering/chromering/internal/signalctl"
	"github.com/chromering/chromering/internal/supervisor"
)

const namesEnv = "CHROMERING_PREFIX"

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr *os.File) int {
	cfg, err := supervisor.ParseArgs(args)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			fmt.Fprint(stdout, supervisor.Usage())
			return 0
		}
		fmt.Fprintln(stderr, "supervisor:", err)
		return 1
	}

	names := ipc.Names{Prefix: resourcePrefix()}
	log := diag.WithRole(diag.New(stderr), diag.RoleSupervisor)

	stop := signalctl.Install()
	defer stop.Stop()

	core := supervisor.New(cfg, log, stop)
	if _, err := core.Run(names, stdout); err != nil {
		return 1
	}
	return 0
}

// resourcePrefix derives the shared-resource name prefix: a token unique
// per deployment (e.g. a user id), defaulting to the effective uid so
// concurrent users on one host don't collide, and overridable for tests
// or multi-instance setups via CHROMERING_PREFIX.
func resourcePrefix() string {
	if p := os.Getenv(namesEnv); p != "" {
		return p
	}
	return fmt.Sprintf("chromering_%d_", os.Getuid())
}
