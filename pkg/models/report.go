package models

import (
	"time"
)

// Report is the result of executing (or previewing) a plan.
type Report struct {
	// Plan that was executed
	Plan *Plan

	// DryRun indicates no filesystem change was made
	DryRun bool

	// Timing
	StartTime time.Time
	EndTime   time.Time
	Duration  time.Duration

	// Results of individual moves, in execution order
	Results []MoveResult

	// Errors encountered; execution continues past them
	Errors []MoveError

	// Stats aggregates execution counts
	Stats ExecStats

	// Status is the overall outcome
	Status RunStatus
}

// MoveResult records one executed (or previewed) relocation.
type MoveResult struct {
	// Source is the original absolute path
	Source string

	// Dest is the final absolute path after any collision rename
	Dest string

	// Destination is the directive category that sent it there
	Destination Destination

	// Renamed is true when a collision suffix was applied
	Renamed bool

	// SaveDest is the final path of the paired save file moved along,
	// empty when the entry had none
	SaveDest string
}

// MoveError records a failed relocation.
type MoveError struct {
	Path      string
	Dest      Destination
	Message   string
	Timestamp time.Time
}

// ExecStats aggregates execution counts for one run.
type ExecStats struct {
	// Moved counts relocated entries (each folder game counts once)
	Moved int

	// SavesMoved counts save files relocated with their ROM
	SavesMoved int

	// FoldersMoved counts folder-kind entries among Moved
	FoldersMoved int

	// Kept counts entries left in place
	Kept int

	// Errored counts failed relocations
	Errored int

	// BytesStaged totals the size of relocated entries
	BytesStaged int64
}

// RunStatus is the overall result of a run
type RunStatus string

const (
	// StatusSuccess indicates every directive was carried out
	StatusSuccess RunStatus = "success"
	// StatusPartial indicates some relocations failed
	StatusPartial RunStatus = "partial"
	// StatusFailed indicates the run could not be carried out
	StatusFailed RunStatus = "failed"
	// StatusCancelled indicates the run was interrupted
	StatusCancelled RunStatus = "cancelled"
)

// ExitCode maps the run status to a process exit code.
func (s RunStatus) ExitCode() int {
	switch s {
	case StatusSuccess:
		return 0
	case StatusPartial:
		return 1
	case StatusFailed:
		return 2
	case StatusCancelled:
		return 3
	default:
		return 2
	}
}
