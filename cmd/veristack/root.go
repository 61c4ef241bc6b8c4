package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// -----------------------------------------------------------------------------
// ROOT COMMAND — CLI ENTRY POINT
//
// The CLI is a THIN orchestration layer over the seven-stage decision
// core. It MUST NOT:
// - execute browser actions
// - implement new policy
// - mutate audit state outside the engine functions it calls
//
// It MAY:
// - load a capability catalog
// - construct inputs for each stage from flags
// - invoke stage functions in the fixed pipeline order and print results
// -----------------------------------------------------------------------------

var rootCmd = &cobra.Command{
	Use:   "veristack",
	Short: "veristack — human-in-the-loop execution authorization core",
	Long: `
veristack is an execution-authorization core for a human-in-the-loop
autonomous agent. It never executes a browser action itself; it only
produces the permission data (authorizations, sealed intents, and
instruction envelopes) an external executor would need.

This CLI is an orchestration layer only.
`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}
}
