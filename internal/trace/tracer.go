package trace

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// Tracer is the main interface for emitting trace events.
type Tracer interface {
	// Emit records a trace event. Must be goroutine-safe.
	Emit(ev *Event)
	// Flush ensures all buffered events are written.
	Flush() error
	// Close flushes and releases resources.
	Close() error
	Level() Level
	// Enabled returns true if tracing is active (Level > LevelOff).
	Enabled() bool
}

// Config holds tracer configuration.
type Config struct {
	Level      Level
	Format     Format
	Output     io.Writer // takes precedence over OutputPath
	OutputPath string    // file path, "-" or "" for stderr
}

// New creates a Tracer based on Config.
func New(cfg Config) (Tracer, error) {
	if cfg.Level == LevelOff {
		return Nop, nil
	}
	w, err := openOutput(cfg)
	if err != nil {
		return nil, err
	}
	format := cfg.Format
	if cfg.Output == nil && strings.HasSuffix(cfg.OutputPath, ".ndjson") {
		format = FormatNDJSON
	}
	return NewStreamTracer(w, cfg.Level, format), nil
}

func openOutput(cfg Config) (io.Writer, error) {
	if cfg.Output != nil {
		return cfg.Output, nil
	}
	if cfg.OutputPath == "" || cfg.OutputPath == "-" {
		return os.Stderr, nil
	}
	f, err := os.Create(cfg.OutputPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open trace output: %w", err)
	}
	return f, nil
}
