package models

import (
	"fmt"
	"time"
)

// RunStatus is the lifecycle state of a recorded sync run.
type RunStatus string

const (
	RunRunning RunStatus = "running"
	RunOK      RunStatus = "ok"
	RunFailed  RunStatus = "failed"
)

// SyncRun records one playlist sync in the history database.
type SyncRun struct {
	ID           string // uuid, assigned by the repository on Create
	Playlist     string
	Status       RunStatus
	Entries      int // distinct entries in the fetched listing
	FilesScanned int
	FilesTagged  int
	FilesSkipped int
	Error        string
	StartedAt    time.Time
	FinishedAt   *time.Time
}

// NewSyncRun returns a running SyncRun for the named playlist, started now.
func NewSyncRun(playlist string) *SyncRun {
	return &SyncRun{
		Playlist:  playlist,
		Status:    RunRunning,
		StartedAt: time.Now().UTC(),
	}
}

// Finish marks the run completed, deriving the status from err.
func (r *SyncRun) Finish(err error) {
	now := time.Now().UTC()
	r.FinishedAt = &now
	if err != nil {
		r.Status = RunFailed
		r.Error = err.Error()
		return
	}
	r.Status = RunOK
}

// Validate checks if the model's data is valid and returns an error if not.
func (r *SyncRun) Validate() error {
	if r.Playlist == "" {
		return fmt.Errorf("sync run has no playlist name")
	}
	switch r.Status {
	case RunRunning, RunOK, RunFailed:
	default:
		return fmt.Errorf("unknown run status %q", r.Status)
	}
	if r.StartedAt.IsZero() {
		return fmt.Errorf("sync run has no start time")
	}
	return nil
}
