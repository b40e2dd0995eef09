// Package jobs implements the client-side waiter for server-side
// asynchronous jobs, such as bloq folder ingestion. The server owns the job
// lifecycle; this package only polls the status endpoint, reports progress,
// and classifies terminal outcomes.
package jobs

import (
	"fmt"

	"github.com/mitchellh/mapstructure"
)

// Job status values reported by the IRIS API.
const (
	StatusPending   = "pending"
	StatusRunning   = "running"
	StatusPartial   = "partial"
	StatusCompleted = "completed"
	StatusFailed    = "failed"
)

// Status is a snapshot of a server-side job. A fresh snapshot is fetched on
// every poll; snapshots are never mutated after decoding.
type Status struct {
	Status          string       `mapstructure:"status"`
	ProgressPercent float64      `mapstructure:"progress_percent"`
	CurrentFile     string       `mapstructure:"current_file"`
	TotalFiles      int          `mapstructure:"total_files"`
	ProcessedFiles  int          `mapstructure:"processed_files"`
	ErrorLog        []ErrorEntry `mapstructure:"error_log"`
}

// ErrorEntry is one per-file failure record from a job's error log.
type ErrorEntry struct {
	File  string `mapstructure:"file"`
	Error string `mapstructure:"error"`
}

// Terminal reports whether the status is one the job will never leave.
func (s *Status) Terminal() bool {
	switch s.Status {
	case StatusCompleted, StatusPartial, StatusFailed:
		return true
	}
	return false
}

// DecodeStatus converts a loose JSON status payload into a Status. Numeric
// fields arrive as float64 from encoding/json, so decoding is weakly typed.
func DecodeStatus(raw map[string]any) (*Status, error) {
	var status Status
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &status,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to build status decoder: %w", err)
	}
	if err := decoder.Decode(raw); err != nil {
		return nil, fmt.Errorf("failed to decode job status: %w", err)
	}
	return &status, nil
}
