package main

import (
	"context"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"tinyjava/internal/driver"
	"tinyjava/internal/tac"
	"tinyjava/internal/ui"
)

func (a *app) irCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ir [flags] file.tj|dir",
		Short: "Compile to three-address code",
		Long: `Run the whole pipeline and print the generated three-address code.
Given a directory, every *.tj file below it is compiled in parallel.`,
		Args: cobra.ExactArgs(1),
		RunE: a.runIR,
	}
	f := cmd.Flags()
	f.Int("jobs", 0, "max parallel files for a directory (0=auto)")
	f.Bool("cache", false, "reuse IR of unchanged files from the disk cache")
	f.Bool("drop-cache", false, "empty the disk cache before compiling")
	f.String("ui", "auto", "progress UI for directories (auto|on|off)")
	f.Bool("numbered", false, "prefix each instruction with its index")
	return cmd
}

func (a *app) runIR(cmd *cobra.Command, args []string) error {
	flags := cmd.Flags()
	opts := a.options(driver.StageIR)

	useCache := a.cfg.IR.Cache
	if flags.Changed("cache") {
		useCache, _ = flags.GetBool("cache")
	}
	dropCache, _ := flags.GetBool("drop-cache")
	if useCache || dropCache {
		cache, err := driver.OpenCache(a.cfg.IR.CacheDir)
		if err != nil {
			return fmt.Errorf("open cache: %w", err)
		}
		if dropCache {
			if err := cache.DropAll(); err != nil {
				return fmt.Errorf("drop cache: %w", err)
			}
		}
		if useCache {
			opts.Cache = cache
		}
	}

	numbered, _ := flags.GetBool("numbered")
	printOpts := tac.PrintOptions{Numbered: numbered}

	info, err := os.Stat(args[0])
	if err != nil {
		return err
	}
	if !info.IsDir() {
		res, err := driver.Compile(cmd.Context(), args[0], opts)
		if res == nil {
			return err
		}
		if rerr := a.report(cmd.ErrOrStderr(), res); rerr != nil {
			return rerr
		}
		if err != nil {
			return finish(res, err)
		}
		return tac.Print(cmd.OutOrStdout(), res.IR, printOpts)
	}

	jobs := a.cfg.IR.Jobs
	if flags.Changed("jobs") {
		jobs, _ = flags.GetInt("jobs")
	}
	uiValue, _ := flags.GetString("ui")
	mode, err := readUIMode(uiValue)
	if err != nil {
		return err
	}

	var results []driver.DirResult
	if shouldUseTUI(mode) && !a.quiet {
		results, err = compileDirWithUI(cmd.Context(), args[0], opts, jobs)
	} else {
		results, err = driver.CompileDir(cmd.Context(), args[0], opts, jobs)
	}
	if err != nil {
		return err
	}
	return a.printDirResults(cmd.OutOrStdout(), cmd.ErrOrStderr(), results, printOpts)
}

func (a *app) printDirResults(out, errOut io.Writer, results []driver.DirResult, printOpts tac.PrintOptions) error {
	failed := 0
	for _, r := range results {
		if r.Result == nil {
			fmt.Fprintf(errOut, "tjc: %v\n", r.Err)
			failed++
			continue
		}
		if err := a.report(errOut, r.Result); err != nil {
			return err
		}
		if r.Err != nil {
			failed++
			continue
		}
		fmt.Fprintf(out, "; %s\n", r.Path)
		if err := tac.Print(out, r.Result.IR, printOpts); err != nil {
			return err
		}
	}
	if failed > 0 {
		if !a.quiet {
			fmt.Fprintf(errOut, "%d of %d files failed\n", failed, len(results))
		}
		return errReported
	}
	return nil
}

type dirOutcome struct {
	results []driver.DirResult
	err     error
}

// runProgressUI shows the progress model until it quits.
var runProgressUI = func(ctx context.Context, model tea.Model) error {
	_, err := tea.NewProgram(model, tea.WithOutput(os.Stderr), tea.WithContext(ctx)).Run()
	return err
}

// compileDirWithUI runs CompileDir behind the progress view. The UI quits
// once the events channel is closed, or earlier on ctrl+c, which cancels
// the remaining files.
func compileDirWithUI(ctx context.Context, dir string, opts driver.Options, jobs int) ([]driver.DirResult, error) {
	files, err := driver.ListSources(dir)
	if err != nil {
		return nil, err
	}
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	events := make(chan driver.Event, 256)
	outcomeCh := make(chan dirOutcome, 1)
	opts.Events = events

	go func() {
		res, err := driver.CompileDir(ctx, dir, opts, jobs)
		outcomeCh <- dirOutcome{results: res, err: err}
		close(events)
	}()

	uiErr := runProgressUI(ctx, ui.NewProgressModel("compiling "+dir, files, events))
	// Nobody reads events once the UI is gone.
	cancel()
	go func() {
		for range events {
		}
	}()
	outcome := <-outcomeCh
	if uiErr != nil {
		return outcome.results, uiErr
	}
	return outcome.results, outcome.err
}
