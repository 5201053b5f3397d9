package driver

import (
	"fmt"
	"time"
)

// Stage is the last pass Compile runs.
type Stage uint8

const (
	StageTokenize Stage = iota + 1
	StageParse
	StageCheck
	StageIR
)

func (s Stage) String() string {
	switch s {
	case StageTokenize:
		return "tokenize"
	case StageParse:
		return "parse"
	case StageCheck:
		return "check"
	case StageIR:
		return "ir"
	default:
		return fmt.Sprintf("Stage(%d)", uint8(s))
	}
}

// Status captures progress state of one file within a stage.
type Status string

const (
	// StatusQueued indicates the file is waiting for a worker.
	StatusQueued Status = "queued"
	// StatusWorking indicates the stage is running.
	StatusWorking Status = "working"
	// StatusDone indicates the file compiled cleanly.
	StatusDone Status = "done"
	// StatusCached indicates the IR came from the disk cache.
	StatusCached Status = "cached"
	// StatusError indicates the file failed.
	StatusError Status = "error"
)

// Event reports progress for a file.
type Event struct {
	File    string
	Stage   Stage
	Status  Status
	Err     error
	Elapsed time.Duration
}

// Finished reports whether no further events will follow for the file.
func (e Event) Finished() bool {
	return e.Status == StatusDone || e.Status == StatusCached || e.Status == StatusError
}
