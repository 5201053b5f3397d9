package driver_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"tinyjava/internal/diag"
	"tinyjava/internal/driver"
	"tinyjava/internal/parser"
	"tinyjava/internal/sema"
	"tinyjava/internal/trace"
)

func compile(t *testing.T, src string, opts driver.Options) (*driver.Result, error) {
	t.Helper()
	res, err := driver.CompileSource(context.Background(), "test.tj", []byte(src), opts)
	if res == nil {
		t.Fatalf("CompileSource returned nil result (err=%v)", err)
	}
	return res, err
}

func TestCompileStopsAtStage(t *testing.T) {
	const src = "int x = 1; x = x + 2;"
	tests := []struct {
		stage             driver.Stage
		program, sema, ir bool
	}{
		{driver.StageTokenize, false, false, false},
		{driver.StageParse, true, false, false},
		{driver.StageCheck, true, true, false},
		{driver.StageIR, true, true, true},
	}
	for _, tt := range tests {
		t.Run(tt.stage.String(), func(t *testing.T) {
			res, err := compile(t, src, driver.Options{Stage: tt.stage})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(res.Tokens) == 0 {
				t.Errorf("tokens missing")
			}
			if (res.Program != nil) != tt.program {
				t.Errorf("program present = %v", res.Program != nil)
			}
			if (res.Sema != nil) != tt.sema {
				t.Errorf("sema present = %v", res.Sema != nil)
			}
			if (res.IR != nil) != tt.ir {
				t.Errorf("ir present = %v", res.IR != nil)
			}
			if got, want := len(res.Timer.Phases()), int(tt.stage); got != want {
				t.Errorf("timed phases = %d, want %d", got, want)
			}
		})
	}
}

func TestCompileErrorsUnwrap(t *testing.T) {
	_, err := compile(t, "int x = ;", driver.Options{})
	var perr *parser.Error
	if !errors.As(err, &perr) {
		t.Fatalf("expected *parser.Error, got %v", err)
	}

	res, err := compile(t, "boolean b = 1;", driver.Options{})
	var serr *sema.Error
	if !errors.As(err, &serr) {
		t.Fatalf("expected *sema.Error, got %v", err)
	}
	if res.IR != nil {
		t.Errorf("IR must not be generated after a semantic error")
	}
	if !res.Bag.HasErrors() {
		t.Errorf("semantic error missing from the bag")
	}
}

func TestLexErrorsStopBeforeCheck(t *testing.T) {
	res, err := compile(t, "int x = 1 @;", driver.Options{})
	if !errors.Is(err, driver.ErrDiagnostics) {
		t.Fatalf("expected ErrDiagnostics, got %v", err)
	}
	if res.Program == nil {
		t.Errorf("parsing should still run after lexical errors")
	}
	if res.Sema != nil {
		t.Errorf("checking must not run after lexical errors")
	}
}

func TestCompileEmitsEvents(t *testing.T) {
	events := make(chan driver.Event, 16)
	if _, err := compile(t, "int x = 1;", driver.Options{Events: events}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	close(events)
	var got []driver.Event
	for ev := range events {
		got = append(got, ev)
	}
	// one working event per stage plus the final done
	if len(got) != 5 {
		t.Fatalf("expected 5 events, got %d: %+v", len(got), got)
	}
	last := got[len(got)-1]
	if last.Status != driver.StatusDone || last.Stage != driver.StageIR || !last.Finished() {
		t.Errorf("last event = %+v", last)
	}
}

func TestCompileFailureEvent(t *testing.T) {
	events := make(chan driver.Event, 16)
	_, _ = compile(t, "y = 1;", driver.Options{Events: events})
	close(events)
	var last driver.Event
	for ev := range events {
		last = ev
	}
	if last.Status != driver.StatusError || last.Stage != driver.StageCheck || last.Err == nil {
		t.Errorf("last event = %+v", last)
	}
}

func TestCompileCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := driver.CompileSource(ctx, "c.tj", []byte("int x = 1;"), driver.Options{})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestGeneratedNameWarning(t *testing.T) {
	cache, err := driver.OpenCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	const src = "int ret = 1; public int _L1(int _t2) { return _t2; }"
	opts := driver.Options{Cache: cache}
	res, err := compile(t, src, opts)
	if err != nil {
		t.Fatalf("warnings must not fail the compile: %v", err)
	}
	if res.IR == nil {
		t.Fatal("IR missing")
	}
	var names []string
	for _, d := range res.Bag.Items() {
		if d.Code != diag.SemaGeneratedName || d.Severity != diag.SevWarning {
			t.Errorf("unexpected diagnostic %s %v: %s", d.Code.ID(), d.Severity, d.Message)
			continue
		}
		names = append(names, d.Message)
	}
	want := []string{
		`variable "ret" collides with a generated IR name`,
		`method "_L1" collides with a generated IR name`,
		`parameter "_t2" collides with a generated IR name`,
	}
	if len(names) != len(want) {
		t.Fatalf("warnings = %q, want %q", names, want)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("warning %d = %q, want %q", i, names[i], want[i])
		}
	}

	again, err := compile(t, src, opts)
	if err != nil {
		t.Fatal(err)
	}
	if again.Cached || again.Bag.Len() != len(want) {
		t.Errorf("warned compile served from cache: cached=%v diagnostics=%d", again.Cached, again.Bag.Len())
	}
}

func TestCompileMissingFile(t *testing.T) {
	res, err := driver.Compile(context.Background(), filepath.Join(t.TempDir(), "nope.tj"), driver.Options{})
	if err == nil || res != nil {
		t.Fatalf("expected a load error, got %v %v", res, err)
	}
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
}

func TestCompileDir(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "b.tj"), "int b = 2;")
	writeFile(t, filepath.Join(dir, "a.tj"), "int a = 1;")
	writeFile(t, filepath.Join(dir, "sub", "c.tj"), "boolean c = 3;")
	writeFile(t, filepath.Join(dir, "notes.txt"), "ignored")

	events := make(chan driver.Event, 64)
	results, err := driver.CompileDir(context.Background(), dir, driver.Options{Events: events}, 2)
	if err != nil {
		t.Fatalf("CompileDir: %v", err)
	}
	close(events)

	if len(results) != 3 {
		t.Fatalf("expected 3 results, got %d", len(results))
	}
	wantOrder := []string{"a.tj", "b.tj", filepath.Join("sub", "c.tj")}
	for i, r := range results {
		rel, _ := filepath.Rel(dir, r.Path)
		if rel != wantOrder[i] {
			t.Errorf("result %d = %s, want %s", i, rel, wantOrder[i])
		}
	}
	if results[0].Err != nil || results[1].Err != nil {
		t.Errorf("unexpected errors: %v / %v", results[0].Err, results[1].Err)
	}
	var serr *sema.Error
	if !errors.As(results[2].Err, &serr) {
		t.Errorf("expected semantic error for c.tj, got %v", results[2].Err)
	}

	finished := map[string]driver.Status{}
	queued := 0
	for ev := range events {
		if ev.Status == driver.StatusQueued {
			queued++
		}
		if ev.Finished() {
			finished[ev.File] = ev.Status
		}
	}
	if queued != 3 || len(finished) != 3 {
		t.Errorf("queued=%d finished=%v", queued, finished)
	}
}

func TestCompileDirNestsPassSpans(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a.tj"), "int a = 1;")
	writeFile(t, filepath.Join(dir, "b.tj"), "int b = 2;")

	var buf bytes.Buffer
	ctx := trace.WithTracer(context.Background(), trace.NewStreamTracer(&buf, trace.LevelDetail, trace.FormatNDJSON))
	if _, err := driver.CompileDir(ctx, dir, driver.Options{}, 2); err != nil {
		t.Fatal(err)
	}

	type event struct {
		Kind     string `json:"kind"`
		Scope    string `json:"scope"`
		SpanID   uint64 `json:"span_id"`
		ParentID uint64 `json:"parent_id"`
	}
	var events []event
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		var ev event
		if err := json.Unmarshal([]byte(line), &ev); err != nil {
			t.Fatalf("bad trace line %q: %v", line, err)
		}
		events = append(events, ev)
	}
	files := map[uint64]bool{}
	for _, ev := range events {
		if ev.Scope == "file" {
			files[ev.SpanID] = true
		}
	}
	if len(files) != 2 {
		t.Fatalf("expected 2 file spans, got %d", len(files))
	}
	passes := 0
	for _, ev := range events {
		if ev.Scope != "pass" {
			continue
		}
		passes++
		if !files[ev.ParentID] {
			t.Errorf("pass span %d has parent %d, not a file span", ev.SpanID, ev.ParentID)
		}
	}
	if passes == 0 {
		t.Error("no pass spans traced")
	}
}

func TestCompileDirEmpty(t *testing.T) {
	results, err := driver.CompileDir(context.Background(), t.TempDir(), driver.Options{}, 0)
	if err != nil || len(results) != 0 {
		t.Fatalf("expected no results, got %v %v", results, err)
	}
}

func TestTokenizeAndParseHelpers(t *testing.T) {
	path := filepath.Join(t.TempDir(), "h.tj")
	writeFile(t, path, "int x = 1;\n")
	tok, err := driver.Tokenize(path, 10)
	if err != nil || len(tok.Tokens) != 6 {
		t.Fatalf("Tokenize: %v (%d tokens)", err, len(tok.Tokens))
	}
	parsed, err := driver.Parse(path, 10)
	if err != nil || parsed.Program == nil || len(parsed.Program.Body.Stmts) != 1 {
		t.Fatalf("Parse: %v", err)
	}
}
