package driver

import (
	"context"
	"io/fs"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"tinyjava/internal/trace"
)

// SourceExt is the extension CompileDir picks up.
const SourceExt = ".tj"

// DirResult is the outcome for one file of a directory build.
type DirResult struct {
	Path   string
	Result *Result
	Err    error
}

// ListSources returns every *.tj file under dir, sorted.
func ListSources(dir string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(path, SourceExt) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(files)
	return files, nil
}

// CompileDir compiles every source file in dir with at most jobs workers
// (GOMAXPROCS when jobs <= 0). Results follow ListSources order. Per-file
// failures are reported in DirResult.Err; the returned error is only set
// for a walk failure or cancellation.
func CompileDir(ctx context.Context, dir string, opts Options, jobs int) ([]DirResult, error) {
	files, err := ListSources(dir)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, nil
	}
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	tracer := trace.FromContext(ctx)
	dirSpan := trace.Begin(tracer, trace.ScopeDriver, "compile_dir", trace.Parent(ctx)).
		WithExtra("dir", dir)
	defer dirSpan.End("")

	if opts.Events != nil {
		for _, path := range files {
			select {
			case opts.Events <- Event{File: path, Stage: StageTokenize, Status: StatusQueued}:
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}
	}

	// Each goroutine owns its slot.
	results := make([]DirResult, len(files))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(files)))

	for i, path := range files {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			span := trace.Begin(tracer, trace.ScopeFile, "file", dirSpan.ID()).WithExtra("path", path)
			fctx := trace.WithParent(gctx, span.ID())
			res, err := Compile(fctx, path, opts)
			results[i] = DirResult{Path: path, Result: res, Err: err}
			if res == nil && opts.Events != nil {
				// Unreadable file: Compile never got far enough to report.
				select {
				case opts.Events <- Event{File: path, Stage: StageTokenize, Status: StatusError, Err: err}:
				case <-gctx.Done():
				}
			}
			span.End(statusOf(res, err))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return results, err
	}
	return results, nil
}

func statusOf(res *Result, err error) string {
	switch {
	case err != nil:
		return string(StatusError)
	case res != nil && res.Cached:
		return string(StatusCached)
	default:
		return string(StatusDone)
	}
}
