package jobs

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/hashicorp/go-hclog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scriptedFetch returns each status in order, then keeps repeating the last
// one. It counts fetches so tests can assert the exact poll count.
func scriptedFetch(statuses ...*Status) (FetchFunc, *int) {
	calls := 0
	fetch := func(ctx context.Context, jobID string) (*Status, error) {
		idx := calls
		if idx >= len(statuses) {
			idx = len(statuses) - 1
		}
		calls++
		return statuses[idx], nil
	}
	return fetch, &calls
}

func TestPoller_WaitCompletes(t *testing.T) {
	fetch, calls := scriptedFetch(
		&Status{Status: StatusRunning, ProgressPercent: 10},
		&Status{Status: StatusRunning, ProgressPercent: 60},
		&Status{Status: StatusCompleted, ProgressPercent: 100},
	)
	p := NewPoller(fetch, hclog.NewNullLogger())

	var updates []*Status
	status, err := p.Wait(context.Background(), "job-1", WaitOptions{
		Interval: time.Millisecond,
		OnUpdate: func(s *Status) error {
			updates = append(updates, s)
			return nil
		},
	})

	require.NoError(t, err)
	assert.Equal(t, StatusCompleted, status.Status)
	assert.Equal(t, 3, *calls)
	require.Len(t, updates, 3)
	assert.Equal(t, float64(10), updates[0].ProgressPercent)
	assert.Equal(t, float64(100), updates[2].ProgressPercent)
}

func TestPoller_WaitReturnsPartial(t *testing.T) {
	fetch, _ := scriptedFetch(
		&Status{Status: StatusRunning},
		&Status{Status: StatusPartial, ProcessedFiles: 8, TotalFiles: 10},
	)
	p := NewPoller(fetch, nil)

	status, err := p.Wait(context.Background(), "job-1", WaitOptions{Interval: time.Millisecond})
	require.NoError(t, err)
	assert.Equal(t, StatusPartial, status.Status)
	assert.Equal(t, 8, status.ProcessedFiles)
}

func TestPoller_WaitFailure(t *testing.T) {
	fetch, _ := scriptedFetch(
		&Status{Status: StatusRunning},
		&Status{Status: StatusFailed, ErrorLog: []ErrorEntry{
			{File: "f1.pdf", Error: "corrupt"},
			{File: "f2.pdf", Error: "too large"},
		}},
	)
	p := NewPoller(fetch, nil)

	_, err := p.Wait(context.Background(), "job-9", WaitOptions{Interval: time.Millisecond})
	require.Error(t, err)

	var failed *JobFailedError
	require.ErrorAs(t, err, &failed)
	assert.Equal(t, "job-9", failed.JobID)
	assert.Contains(t, failed.Error(), "f1.pdf: corrupt")
	assert.Contains(t, failed.Error(), "f1.pdf: corrupt, f2.pdf: too large")
}

func TestPoller_WaitTimeout(t *testing.T) {
	fetch, _ := scriptedFetch(&Status{Status: StatusRunning, ProgressPercent: 50})
	p := NewPoller(fetch, nil)

	start := time.Now()
	_, err := p.Wait(context.Background(), "job-1", WaitOptions{
		Interval: 10 * time.Millisecond,
		Timeout:  50 * time.Millisecond,
	})
	elapsed := time.Since(start)

	var timeout *TimeoutError
	require.ErrorAs(t, err, &timeout)
	assert.Equal(t, "job-1", timeout.JobID)
	require.NotNil(t, timeout.LastStatus)
	assert.Equal(t, float64(50), timeout.LastStatus.ProgressPercent)
	assert.GreaterOrEqual(t, elapsed, 50*time.Millisecond)
}

func TestPoller_CallbackErrorAbortsWait(t *testing.T) {
	fetch, calls := scriptedFetch(&Status{Status: StatusRunning})
	p := NewPoller(fetch, nil)

	callbackErr := errors.New("observer gave up")
	_, err := p.Wait(context.Background(), "job-1", WaitOptions{
		Interval: time.Millisecond,
		OnUpdate: func(*Status) error { return callbackErr },
	})

	require.ErrorIs(t, err, callbackErr)
	assert.Equal(t, 1, *calls)
}

func TestPoller_ContextCancellation(t *testing.T) {
	fetch, _ := scriptedFetch(&Status{Status: StatusPending})
	p := NewPoller(fetch, nil)

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(20 * time.Millisecond)
		cancel()
	}()

	_, err := p.Wait(ctx, "job-1", WaitOptions{Interval: time.Second})
	require.ErrorIs(t, err, context.Canceled)
}

func TestPoller_FetchErrorPropagates(t *testing.T) {
	fetchErr := errors.New("boom")
	p := NewPoller(func(ctx context.Context, jobID string) (*Status, error) {
		return nil, fetchErr
	}, nil)

	_, err := p.Wait(context.Background(), "job-1", WaitOptions{Interval: time.Millisecond})
	require.ErrorIs(t, err, fetchErr)
}

func TestDecodeStatus(t *testing.T) {
	raw := map[string]any{
		"status":           "running",
		"progress_percent": float64(42.5),
		"current_file":     "guide.pdf",
		"total_files":      float64(10),
		"processed_files":  float64(4),
		"error_log": []any{
			map[string]any{"file": "bad.pdf", "error": "unreadable"},
		},
	}

	status, err := DecodeStatus(raw)
	require.NoError(t, err)
	assert.Equal(t, StatusRunning, status.Status)
	assert.Equal(t, 42.5, status.ProgressPercent)
	assert.Equal(t, "guide.pdf", status.CurrentFile)
	assert.Equal(t, 10, status.TotalFiles)
	assert.Equal(t, 4, status.ProcessedFiles)
	require.Len(t, status.ErrorLog, 1)
	assert.Equal(t, "bad.pdf", status.ErrorLog[0].File)
	assert.False(t, status.Terminal())
}

func TestStatus_Terminal(t *testing.T) {
	tests := []struct {
		status   string
		terminal bool
	}{
		{StatusPending, false},
		{StatusRunning, false},
		{StatusPartial, true},
		{StatusCompleted, true},
		{StatusFailed, true},
	}
	for _, tt := range tests {
		t.Run(tt.status, func(t *testing.T) {
			s := &Status{Status: tt.status}
			assert.Equal(t, tt.terminal, s.Terminal())
		})
	}
}
