// Package supervisor implements the Supervisor Core: it owns creation
// and shutdown of the shared substrate, drains the ring, tracks the best
// candidate seen, and decides when to stop.
package supervisor

import (
	"fmt"
	"io"
	"time"

	flag "github.com/spf13/pflag"
)

// Config is the parsed form of the supervisor CLI:
// "supervisor [-n LIMIT] [-w DELAY] [-p]".
type Config struct {
	Limit      int           // 0 means unbounded
	Delay      time.Duration // sleep between init and loop start
	PrintGraph bool          // -p: accepted and validated, never consulted (reserved)
}

const usage = `usage: supervisor [-n LIMIT] [-w DELAY] [-p]
  -n LIMIT   non-negative integer; stop after consuming LIMIT candidates (0 = unbounded)
  -w DELAY   non-negative integer seconds to sleep before the main loop starts
  -p         reserved; parsed and rejected if repeated, otherwise has no effect
`

// ParseArgs parses the supervisor's command-line arguments. It rejects a
// repeated option before handing off to pflag.Parse, since pflag itself
// silently lets a later occurrence of a flag win; every flag token is
// counted by hand first.
func ParseArgs(args []string) (Config, error) {
	for _, a := range args {
		if a == "-h" || a == "--help" {
			return Config{}, flag.ErrHelp
		}
	}

	if err := rejectRepeats(args); err != nil {
		return Config{}, err
	}

	flagSet := flag.NewFlagSet("supervisor", flag.ContinueOnError)
	flagSet.SetOutput(io.Discard)

	limit := flagSet.IntP("limit", "n", 0, "stop after consuming LIMIT candidates (0 = unbounded)")
	delaySeconds := flagSet.IntP("delay", "w", 0, "seconds to sleep before the main loop starts")
	printGraph := flagSet.BoolP("print", "p", false, "reserved; has no effect")

	if err := flagSet.Parse(args); err != nil {
		return Config{}, fmt.Errorf("%w\n%s", err, usage)
	}

	if flagSet.NArg() > 0 {
		return Config{}, fmt.Errorf("unexpected argument %q\n%s", flagSet.Arg(0), usage)
	}
	if *limit < 0 {
		return Config{}, fmt.Errorf("-n must be non-negative\n%s", usage)
	}
	if *delaySeconds < 0 {
		return Config{}, fmt.Errorf("-w must be non-negative\n%s", usage)
	}

	return Config{
		Limit:      *limit,
		Delay:      time.Duration(*delaySeconds) * time.Second,
		PrintGraph: *printGraph,
	}, nil
}

// Usage returns the usage text shown on -h/--help or a parse failure.
func Usage() string { return usage }

var flagsWithValue = map[string]bool{
	"-n": true, "--limit": true,
	"-w": true, "--delay": true,
}

// rejectRepeats scans raw argv for any flag token (value-taking or not)
// appearing more than once, skipping over the value token of value-taking
// flags. Unknown flags are left for pflag.Parse to reject.
func rejectRepeats(args []string) error {
	seen := make(map[string]bool, len(args))
	for i := 0; i < len(args); i++ {
		a := args[i]
		if len(a) == 0 || a[0] != '-' {
			continue
		}
		if seen[a] {
			return fmt.Errorf("option %q specified more than once\n%s", a, usage)
		}
		seen[a] = true
		if flagsWithValue[a] {
			i++
		}
	}
	return nil
}
