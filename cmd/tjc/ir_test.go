package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"tinyjava/internal/driver"
)

// writeTree fills a temp dir with n small sources, enough events to
// overflow the progress channel when nobody reads it.
func writeTree(t *testing.T, n int) string {
	t.Helper()
	dir := t.TempDir()
	for i := range n {
		src := fmt.Sprintf("int x%d = %d + 1;\n", i, i)
		if err := os.WriteFile(filepath.Join(dir, fmt.Sprintf("f%03d.tj", i)), []byte(src), 0o600); err != nil {
			t.Fatal(err)
		}
	}
	return dir
}

func stubProgressUI(t *testing.T, run func(ctx context.Context, model tea.Model) error) {
	t.Helper()
	prev := runProgressUI
	runProgressUI = run
	t.Cleanup(func() { runProgressUI = prev })
}

type dirRun struct {
	results []driver.DirResult
	err     error
}

func compileDirAsync(t *testing.T, dir string) dirRun {
	t.Helper()
	done := make(chan dirRun, 1)
	go func() {
		res, err := compileDirWithUI(context.Background(), dir, driver.Options{Stage: driver.StageIR}, 2)
		done <- dirRun{res, err}
	}()
	select {
	case r := <-done:
		return r
	case <-time.After(10 * time.Second):
		t.Fatal("compileDirWithUI did not return")
		return dirRun{}
	}
}

// headlessUI runs the real progress model without a terminal. Any msgs are
// sent once the program is up.
func headlessUI(msgs ...tea.Msg) func(ctx context.Context, model tea.Model) error {
	return func(ctx context.Context, model tea.Model) error {
		p := tea.NewProgram(model,
			tea.WithContext(ctx),
			tea.WithInput(nil),
			tea.WithOutput(io.Discard),
			tea.WithoutRenderer(),
		)
		go func() {
			for _, msg := range msgs {
				p.Send(msg)
			}
		}()
		_, err := p.Run()
		return err
	}
}

func TestCompileDirWithUIQuitEarly(t *testing.T) {
	// the user quits before a single event is read
	stubProgressUI(t, func(context.Context, tea.Model) error { return nil })
	r := compileDirAsync(t, writeTree(t, 80))
	if r.err != nil && !errors.Is(r.err, context.Canceled) {
		t.Fatalf("unexpected error: %v", r.err)
	}
}

func TestCompileDirWithUICtrlC(t *testing.T) {
	stubProgressUI(t, headlessUI(tea.KeyMsg{Type: tea.KeyCtrlC}))
	r := compileDirAsync(t, writeTree(t, 80))
	if r.err != nil && !errors.Is(r.err, context.Canceled) {
		t.Fatalf("unexpected error: %v", r.err)
	}
}

func TestCompileDirWithUIError(t *testing.T) {
	boom := errors.New("no terminal")
	stubProgressUI(t, func(context.Context, tea.Model) error { return boom })
	r := compileDirAsync(t, writeTree(t, 80))
	if !errors.Is(r.err, boom) {
		t.Fatalf("expected the UI error, got %v", r.err)
	}
}

func TestCompileDirWithUICompletes(t *testing.T) {
	stubProgressUI(t, headlessUI())
	r := compileDirAsync(t, writeTree(t, 20))
	if r.err != nil {
		t.Fatalf("unexpected error: %v", r.err)
	}
	if len(r.results) != 20 {
		t.Fatalf("expected 20 results, got %d", len(r.results))
	}
	for _, res := range r.results {
		if res.Err != nil || res.Result == nil || res.Result.IR == nil {
			t.Errorf("%s: %v", res.Path, res.Err)
		}
	}
}
