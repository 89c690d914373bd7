// Command invdp solves the stochastic inventory problem and checks the two
// dynamic-programming solvers against each other.
//
//	invdp compare                     # both solvers, PASS/FAIL verdict
//	invdp solve --method bottomup     # one solver
//	invdp simulate --runs 20000       # replay the optimal policy
//
// Scenarios come from --preset (calibration, field), an optional --config
// YAML file, INVDP_* environment variables and the override flags, in
// increasing order of precedence.
//
// Exit status: 0 on success, 1 on error, 2 when compare finds the solvers
// disagree.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
)

const (
	exitOK       = 0
	exitError    = 1
	exitMismatch = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the CLI with args and returns the process exit status.
func run(args []string, stdout, stderr io.Writer) int {
	a := &app{}
	cmd := a.rootCommand()
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	err := cmd.Execute()
	if a.recorder != nil {
		if werr := a.recorder.WriteText(stderr); werr != nil {
			fmt.Fprintln(stderr, "error:", werr)
		}
	}

	switch {
	case err == nil:
		return exitOK
	case errors.Is(err, errMismatch):
		fmt.Fprintln(stderr, "error:", err)
		return exitMismatch
	default:
		fmt.Fprintln(stderr, "error:", err)
		return exitError
	}
}
