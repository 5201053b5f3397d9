package driver

import (
	"context"
	"errors"
	"fmt"
	"time"

	"tinyjava/internal/ast"
	"tinyjava/internal/diag"
	"tinyjava/internal/lexer"
	"tinyjava/internal/observ"
	"tinyjava/internal/parser"
	"tinyjava/internal/sema"
	"tinyjava/internal/source"
	"tinyjava/internal/tac"
	"tinyjava/internal/token"
	"tinyjava/internal/trace"
)

// ErrDiagnostics is returned when a stage finished but left error
// diagnostics in the bag, e.g. an illegal character the parser skipped.
var ErrDiagnostics = errors.New("compilation produced errors")

// Options controls one compilation.
type Options struct {
	// Stage is the last pass to run. Zero means StageIR.
	Stage          Stage
	MaxDiagnostics int
	// Cache, when set, short-circuits StageIR builds of unchanged sources.
	Cache *Cache
	// Events receives progress; nil disables reporting. The channel is
	// never closed by the driver.
	Events chan<- Event
}

func (o Options) stage() Stage {
	if o.Stage == 0 {
		return StageIR
	}
	return o.Stage
}

// Result holds whatever the pipeline produced before it stopped. Fields of
// passes that did not run are nil. A cache hit fills IR only.
type Result struct {
	FileSet *source.FileSet
	File    *source.File
	Tokens  []token.Token
	Program *ast.Program
	Sema    *sema.Result
	IR      *tac.Program
	Bag     *diag.Bag
	Timer   *observ.Timer
	Cached  bool
}

// Compile loads path and runs the pipeline up to opts.Stage.
//
// The returned Result is non-nil whenever the file could be read. Syntax and
// semantic failures come back as the error (wrapping *parser.Error or
// *sema.Error) and are also recorded in Result.Bag.
func Compile(ctx context.Context, path string, opts Options) (*Result, error) {
	fs := source.NewFileSet()
	id, err := fs.Load(path)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return compileFile(ctx, fs, fs.Get(id), opts)
}

// CompileSource is Compile for in-memory source.
func CompileSource(ctx context.Context, name string, src []byte, opts Options) (*Result, error) {
	fs := source.NewFileSet()
	id := fs.AddVirtual(name, src)
	return compileFile(ctx, fs, fs.Get(id), opts)
}

func compileFile(ctx context.Context, fs *source.FileSet, file *source.File, opts Options) (*Result, error) {
	res := &Result{
		FileSet: fs,
		File:    file,
		Bag:     diag.NewBag(opts.MaxDiagnostics),
		Timer:   observ.NewTimer(),
	}
	err := newRun(ctx, res, opts).exec()
	if err != nil {
		return res, fmt.Errorf("%s: %w", file.Path, err)
	}
	return res, nil
}

type run struct {
	ctx     context.Context
	res     *Result
	opts    Options
	tracer  trace.Tracer
	parent  uint64
	started time.Time
}

func newRun(ctx context.Context, res *Result, opts Options) *run {
	if ctx == nil {
		ctx = context.Background()
	}
	return &run{
		ctx:     ctx,
		res:     res,
		opts:    opts,
		tracer:  trace.FromContext(ctx),
		parent:  trace.Parent(ctx),
		started: time.Now(),
	}
}

func (r *run) exec() (err error) {
	last := r.opts.stage()
	stage := StageTokenize
	defer func() {
		if err != nil {
			r.emit(stage, StatusError, err)
			trace.Failure(r.tracer, trace.ScopePass, stage.String(), err)
		}
	}()

	if err = r.ctx.Err(); err != nil {
		return err
	}
	if last == StageIR && r.fromCache() {
		r.emit(StageIR, StatusCached, nil)
		return nil
	}

	reporter := diag.NewDedupReporter(diag.BagReporter{Bag: r.res.Bag})

	r.emit(stage, StatusWorking, nil)
	r.pass(stage, func() string {
		r.res.Tokens = lexer.Tokenize(r.res.File, lexer.Options{Reporter: reporter})
		return fmt.Sprintf("%d tokens", len(r.res.Tokens))
	})
	if last == StageTokenize {
		return r.finish(stage)
	}

	stage = StageParse
	r.emit(stage, StatusWorking, nil)
	r.pass(stage, func() string {
		r.res.Program, err = parser.ParseTokens(r.res.Tokens, r.res.File.ID, parser.Options{
			Reporter: reporter,
			Tracer:   r.tracer,
		})
		if err != nil {
			return "failed"
		}
		return fmt.Sprintf("%d statements", len(r.res.Program.Body.Stmts))
	})
	if err != nil {
		return err
	}
	if last == StageParse || r.res.Bag.HasErrors() {
		return r.finish(stage)
	}

	if err = r.ctx.Err(); err != nil {
		return err
	}
	stage = StageCheck
	r.emit(stage, StatusWorking, nil)
	r.pass(stage, func() string {
		r.res.Sema, err = sema.Check(r.res.Program, sema.Options{Reporter: reporter})
		if err != nil {
			return "failed"
		}
		return fmt.Sprintf("%d methods", len(r.res.Sema.Table.Methods()))
	})
	if err != nil {
		return err
	}
	if last == StageCheck {
		return r.finish(stage)
	}

	stage = StageIR
	r.emit(stage, StatusWorking, nil)
	r.pass(stage, func() string {
		warnGeneratedNames(reporter, r.res.Program)
		r.res.IR = tac.Generate(r.res.Program)
		return fmt.Sprintf("%d instructions", r.res.IR.Len())
	})
	r.storeCache()
	return r.finish(stage)
}

// pass times fn and wraps it in a trace span.
func (r *run) pass(stage Stage, fn func() string) {
	span := trace.Begin(r.tracer, trace.ScopePass, stage.String(), r.parent)
	var note string
	r.res.Timer.Measure(stage.String(), func() string {
		note = fn()
		return note
	})
	span.End(note)
}

func (r *run) finish(stage Stage) error {
	if r.res.Bag.HasErrors() {
		return ErrDiagnostics
	}
	r.emit(stage, StatusDone, nil)
	return nil
}

func (r *run) emit(stage Stage, status Status, err error) {
	if r.opts.Events == nil {
		return
	}
	ev := Event{
		File:    r.res.File.Path,
		Stage:   stage,
		Status:  status,
		Err:     err,
		Elapsed: time.Since(r.started),
	}
	select {
	case r.opts.Events <- ev:
	case <-r.ctx.Done():
	}
}

func (r *run) fromCache() bool {
	if r.opts.Cache == nil {
		return false
	}
	var entry CacheEntry
	ok, err := r.opts.Cache.Get(r.res.File.Hash, &entry)
	if err != nil {
		diag.ReportWarning(diag.BagReporter{Bag: r.res.Bag}, diag.IOCacheError, source.Span{File: r.res.File.ID}, "cache: "+err.Error()).Emit()
		return false
	}
	if !ok || entry.IR == nil {
		return false
	}
	r.res.IR = entry.IR
	r.res.Cached = true
	trace.Point(r.tracer, trace.ScopePass, "cache", "hit "+r.res.File.Path)
	return true
}

// storeCache keeps only compiles without any diagnostic, so a cache hit
// never hides a warning.
func (r *run) storeCache() {
	if r.opts.Cache == nil || r.res.IR == nil || r.res.Bag.Len() > 0 {
		return
	}
	entry := &CacheEntry{Path: r.res.File.Path, IR: r.res.IR}
	if err := r.opts.Cache.Put(r.res.File.Hash, entry); err != nil {
		diag.ReportWarning(diag.BagReporter{Bag: r.res.Bag}, diag.IOCacheError, source.Span{File: r.res.File.ID}, "cache: "+err.Error()).Emit()
	}
}

// warnGeneratedNames flags declared names that the printed IR could not
// tell apart from its own temporaries, labels or return register.
func warnGeneratedNames(r diag.Reporter, prog *ast.Program) {
	warn := func(name, what string, pos ast.Pos) {
		if tac.IsGeneratedName(name) {
			diag.ReportWarning(r, diag.SemaGeneratedName, pos.Span,
				fmt.Sprintf("%s %q collides with a generated IR name", what, name)).Emit()
		}
	}
	ast.Walk(prog, func(n ast.Node) bool {
		switch n := n.(type) {
		case *ast.DeclStmt:
			warn(n.Name, "variable", n.Pos)
		case *ast.Formal:
			warn(n.Name, "parameter", n.Pos)
		case *ast.MethodDecl:
			warn(n.Name, "method", n.Pos)
		}
		return true
	})
}
