package trace

import (
	"io"
	"os"
	"sync"
	"time"
)

// StreamTracer writes events immediately to an io.Writer.
type StreamTracer struct {
	mu     sync.Mutex
	w      io.Writer
	level  Level
	format Format
	start  time.Time
}

func NewStreamTracer(w io.Writer, level Level, format Format) *StreamTracer {
	return &StreamTracer{
		w:      w,
		level:  level,
		format: format,
		start:  time.Now(),
	}
}

// Emit writes an event to the output. Failure points pass at every level
// above off.
func (t *StreamTracer) Emit(ev *Event) {
	if ev == nil {
		return
	}
	if !t.level.ShouldEmit(ev.Scope) && !(t.level > LevelOff && isFailure(ev)) {
		return
	}
	ev.Seq = NextSeq()
	data := FormatEvent(ev, t.format, ev.Time.Sub(t.start))

	t.mu.Lock()
	defer t.mu.Unlock()
	// Best-effort write: a broken trace sink must not fail the compilation.
	_, _ = t.w.Write(data)
}

// Flush calls Flush or Sync on the writer when it has one.
func (t *StreamTracer) Flush() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	switch w := t.w.(type) {
	case interface{ Flush() error }:
		return w.Flush()
	case *os.File:
		if w == os.Stderr || w == os.Stdout {
			return nil
		}
		return w.Sync()
	}
	return nil
}

// Close flushes and closes the writer if it is a file other than stderr.
func (t *StreamTracer) Close() error {
	if err := t.Flush(); err != nil {
		return err
	}
	if f, ok := t.w.(*os.File); ok && (f == os.Stderr || f == os.Stdout) {
		return nil
	}
	if closer, ok := t.w.(io.Closer); ok {
		return closer.Close()
	}
	return nil
}

func (t *StreamTracer) Level() Level { return t.level }

func (t *StreamTracer) Enabled() bool { return t.level > LevelOff }
