package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"tinyjava/internal/version"
)

// errReported marks failures whose diagnostics were already printed.
var errReported = errors.New("compilation failed")

// main builds the command tree and runs it. Any error exits with status 1.
func main() {
	root, a := newRootCmd()
	err := root.Execute()
	a.close()
	if err != nil {
		if !errors.Is(err, errReported) {
			fmt.Fprintf(os.Stderr, "tjc: %v\n", err)
		}
		os.Exit(1)
	}
}

func newRootCmd() (*cobra.Command, *app) {
	a := &app{}
	root := &cobra.Command{
		Use:   "tjc",
		Short: "tinyjava compiler front end",
		Long: `tjc scans, parses and type checks tinyjava programs and lowers them
to three-address code`,
		Version:           version.Pretty(isTerminal(os.Stdout)),
		SilenceErrors:     true,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
	}

	pf := root.PersistentFlags()
	pf.String("color", "auto", "colorize output (auto|on|off)")
	pf.Bool("quiet", false, "suppress non-essential output")
	pf.Bool("timings", false, "show timing information")
	pf.BoolP("verbose", "v", false, "log pipeline phases to stderr")
	pf.Int("max-diagnostics", 100, "maximum number of diagnostics to show")
	pf.String("diagnostics-format", "pretty", "diagnostics output format (pretty|json)")
	pf.String("config", "", "path to tinyjava.toml (default: search upward from the working directory)")
	pf.String("trace", "", "trace output file (- for stderr, *.ndjson selects NDJSON)")
	pf.String("trace-level", "off", "trace level (off|error|phase|detail|debug)")
	pf.String("cpu-profile", "", "write a CPU profile to this file")
	pf.String("mem-profile", "", "write a heap profile to this file on exit")
	pf.String("runtime-trace", "", "write a Go runtime execution trace to this file")

	root.AddCommand(
		a.tokenizeCmd(),
		a.parseCmd(),
		a.checkCmd(),
		a.irCmd(),
		a.fmtCmd(),
		a.versionCmd(),
	)
	return root, a
}

// isTerminal reports whether f is attached to a terminal.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
