package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"tinyjava/internal/diagfmt"
	"tinyjava/internal/driver"
	"tinyjava/internal/prof"
	"tinyjava/internal/project"
	"tinyjava/internal/trace"
)

// app is the state shared by all subcommands after flags and config have
// been merged.
type app struct {
	cfg        project.Config
	color      string
	quiet      bool
	timings    bool
	maxDiags   int
	diagFormat string
	tracer     trace.Tracer
	profiler   *prof.Session
}

func (a *app) setup(cmd *cobra.Command, _ []string) error {
	flags := cmd.Root().PersistentFlags()

	configPath, _ := flags.GetString("config")
	var err error
	if configPath != "" {
		a.cfg, err = project.Load(configPath)
	} else {
		a.cfg, err = project.Discover(".")
	}
	if err != nil {
		return err
	}

	a.color = a.cfg.Diagnostics.Color
	if flags.Changed("color") {
		a.color, _ = flags.GetString("color")
	}
	switch a.color {
	case "auto", "on", "off":
	default:
		return fmt.Errorf("invalid --color value %q (expected auto|on|off)", a.color)
	}

	a.maxDiags = a.cfg.Diagnostics.Max
	if flags.Changed("max-diagnostics") {
		a.maxDiags, _ = flags.GetInt("max-diagnostics")
	}

	a.quiet, _ = flags.GetBool("quiet")
	a.timings, _ = flags.GetBool("timings")
	a.diagFormat, _ = flags.GetString("diagnostics-format")
	if a.diagFormat != "pretty" && a.diagFormat != "json" {
		return fmt.Errorf("invalid --diagnostics-format value %q (expected pretty|json)", a.diagFormat)
	}

	if err := a.setupProfiling(cmd); err != nil {
		return err
	}
	return a.setupTracing(cmd)
}

func (a *app) setupProfiling(cmd *cobra.Command) error {
	flags := cmd.Root().PersistentFlags()
	var opts prof.Options
	opts.CPU, _ = flags.GetString("cpu-profile")
	opts.Mem, _ = flags.GetString("mem-profile")
	opts.Trace, _ = flags.GetString("runtime-trace")
	if !opts.Enabled() {
		return nil
	}
	session, err := prof.Start(opts)
	if err != nil {
		return err
	}
	a.profiler = session
	return nil
}

// setupTracing attaches a tracer to the command context. --verbose is a
// shorthand for phase-level text tracing on stderr.
func (a *app) setupTracing(cmd *cobra.Command) error {
	flags := cmd.Root().PersistentFlags()
	output, _ := flags.GetString("trace")
	levelStr, _ := flags.GetString("trace-level")
	verbose, _ := flags.GetBool("verbose")

	level, err := trace.ParseLevel(levelStr)
	if err != nil {
		return err
	}
	if verbose && !flags.Changed("trace-level") {
		level = trace.LevelPhase
	}
	if level == trace.LevelOff && output != "" {
		level = trace.LevelPhase
	}

	tracer, err := trace.New(trace.Config{Level: level, OutputPath: output})
	if err != nil {
		return fmt.Errorf("failed to create tracer: %w", err)
	}
	a.tracer = tracer
	cmd.SetContext(trace.WithTracer(cmd.Context(), tracer))
	return nil
}

func (a *app) close() {
	if a.profiler != nil {
		if err := a.profiler.Stop(); err != nil {
			fmt.Fprintf(os.Stderr, "prof: %v\n", err)
		}
		a.profiler = nil
	}
	if a.tracer == nil {
		return
	}
	if err := a.tracer.Flush(); err != nil {
		fmt.Fprintf(os.Stderr, "trace: flush error: %v\n", err)
	}
	if err := a.tracer.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "trace: close error: %v\n", err)
	}
	a.tracer = nil
}

func (a *app) useColor(f *os.File) bool {
	return a.color == "on" || (a.color == "auto" && isTerminal(f))
}

func (a *app) options(stage driver.Stage) driver.Options {
	return driver.Options{Stage: stage, MaxDiagnostics: a.maxDiags}
}

// report prints the diagnostics and timings of res to w.
func (a *app) report(w io.Writer, res *driver.Result) error {
	if res == nil {
		return nil
	}
	if res.Bag.Len() > 0 {
		res.Bag.Sort()
		if a.diagFormat == "json" {
			if err := diagfmt.JSON(w, res.Bag, res.FileSet, diagfmt.JSONOpts{
				IncludePositions: true,
				IncludeNotes:     true,
			}); err != nil {
				return err
			}
		} else {
			diagfmt.Pretty(w, res.Bag, res.FileSet, diagfmt.PrettyOpts{
				Color:     a.useColor(os.Stderr),
				ShowNotes: true,
			})
		}
	}
	if a.timings {
		fmt.Fprint(w, res.Timer.Summary())
	}
	return nil
}

// finish turns a pipeline error into the command result. Load failures and
// cancellation are returned as is; compile errors were already reported.
func finish(res *driver.Result, err error) error {
	if err == nil {
		return nil
	}
	if res == nil {
		return err
	}
	return errReported
}

func lower(s string) string { return strings.ToLower(strings.TrimSpace(s)) }
