package jobs

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/hashicorp/go-hclog"
)

const (
	// DefaultInterval between status fetches.
	DefaultInterval = 2 * time.Second
	// DefaultTimeout is the wall-clock budget for a single Wait call.
	DefaultTimeout = time.Hour
)

// FetchFunc retrieves the current status of a job. The bloqs service
// supplies one bound to its folder-ingestion status endpoint; tests supply
// scripted sequences.
type FetchFunc func(ctx context.Context, jobID string) (*Status, error)

// Poller blocks a caller until a job reaches a terminal state.
//
// A Poller holds no per-job state, so one Poller may serve concurrent Wait
// calls for different jobs; within a single Wait, status fetches are
// strictly sequential (fetch, callback, decide, sleep).
type Poller struct {
	fetch  FetchFunc
	logger hclog.Logger
}

// NewPoller creates a Poller around a status fetcher. Logger may be nil.
func NewPoller(fetch FetchFunc, logger hclog.Logger) *Poller {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	return &Poller{fetch: fetch, logger: logger.Named("job-poller")}
}

// WaitOptions tune a single Wait call. Zero values take the defaults.
type WaitOptions struct {
	// Interval between polls. Default: DefaultInterval.
	Interval time.Duration
	// Timeout is the wall-clock budget. Exceeding it while the job is
	// still non-terminal returns a *TimeoutError; the job keeps running
	// server-side. Default: DefaultTimeout.
	Timeout time.Duration
	// OnUpdate, when set, is invoked with every fresh snapshot before the
	// terminal check. Returning a non-nil error aborts the wait and
	// propagates to the caller.
	OnUpdate func(*Status) error
}

// Wait polls the job until it completes, fails, or the budget runs out.
//
// Terminal outcomes: "completed" and "partial" return the final snapshot;
// "failed" returns a *JobFailedError summarizing the job's error log.
// Context cancellation propagates as ctx.Err() from either the fetch or the
// sleep between polls — the sleep is the sole suspension point.
func (p *Poller) Wait(ctx context.Context, jobID string, opts WaitOptions) (*Status, error) {
	if opts.Interval <= 0 {
		opts.Interval = DefaultInterval
	}
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultTimeout
	}

	start := time.Now()
	for {
		status, err := p.fetch(ctx, jobID)
		if err != nil {
			return nil, err
		}

		p.logger.Debug("job status",
			"job_id", jobID,
			"status", status.Status,
			"progress_percent", status.ProgressPercent,
		)

		if opts.OnUpdate != nil {
			if err := opts.OnUpdate(status); err != nil {
				return nil, err
			}
		}

		switch status.Status {
		case StatusFailed:
			return nil, newJobFailedError(jobID, status)
		case StatusCompleted, StatusPartial:
			return status, nil
		}

		if time.Since(start) >= opts.Timeout {
			return nil, &TimeoutError{JobID: jobID, Timeout: opts.Timeout, LastStatus: status}
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(opts.Interval):
		}
	}
}

// JobFailedError reports a job that reached the "failed" terminal state.
// Summary joins every error-log entry as "<file>: <error>", comma-separated.
type JobFailedError struct {
	JobID   string
	Status  *Status
	Summary string
}

func (e *JobFailedError) Error() string {
	if e.Summary == "" {
		return fmt.Sprintf("job %s failed", e.JobID)
	}
	return fmt.Sprintf("job %s failed: %s", e.JobID, e.Summary)
}

func newJobFailedError(jobID string, status *Status) *JobFailedError {
	entries := make([]string, 0, len(status.ErrorLog))
	for _, entry := range status.ErrorLog {
		entries = append(entries, fmt.Sprintf("%s: %s", entry.File, entry.Error))
	}
	return &JobFailedError{
		JobID:   jobID,
		Status:  status,
		Summary: strings.Join(entries, ", "),
	}
}

// TimeoutError reports that the wall-clock budget elapsed while the job was
// still non-terminal. This is a client-side give-up, not a server-side
// cancellation: the job may well finish later.
type TimeoutError struct {
	JobID      string
	Timeout    time.Duration
	LastStatus *Status
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("timed out after %s waiting for job %s", e.Timeout, e.JobID)
}
