package jobs_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/kipkoech12/travelnest/jobs"
	"github.com/stretchr/testify/assert"
)

func waitForResult(t *testing.T, d *jobs.Dispatcher) jobs.Result {
	t.Helper()
	select {
	case res := <-d.Results():
		return res
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for job result")
		return jobs.Result{}
	}
}

func TestDispatcher_ExecutesEnqueuedJob(t *testing.T) {
	d := jobs.NewDispatcher(2, 8, jobs.NoRetry{})
	d.Start(context.Background())
	defer d.Stop()

	var ran int32
	jobID, err := d.Enqueue("test_job", func(ctx context.Context) error {
		atomic.AddInt32(&ran, 1)
		return nil
	})

	assert.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, jobID)

	res := waitForResult(t, d)
	assert.Equal(t, jobID, res.JobID)
	assert.Equal(t, "test_job", res.Name)
	assert.Equal(t, 1, res.Attempts)
	assert.NoError(t, res.Err)
	assert.Equal(t, int32(1), atomic.LoadInt32(&ran))
}

func TestDispatcher_QueueFull(t *testing.T) {
	// Not started, so nothing drains the single-slot queue.
	d := jobs.NewDispatcher(1, 1, jobs.NoRetry{})

	_, err := d.Enqueue("first", func(ctx context.Context) error { return nil })
	assert.NoError(t, err)

	_, err = d.Enqueue("second", func(ctx context.Context) error { return nil })
	assert.ErrorIs(t, err, jobs.ErrQueueFull)
}

func TestDispatcher_EnqueueAfterStop(t *testing.T) {
	d := jobs.NewDispatcher(1, 4, jobs.NoRetry{})
	d.Start(context.Background())
	d.Stop()

	_, err := d.Enqueue("late", func(ctx context.Context) error { return nil })
	assert.ErrorIs(t, err, jobs.ErrStopped)
}

func TestDispatcher_RetriesWithBackoff(t *testing.T) {
	d := jobs.NewDispatcher(1, 4, jobs.Backoff{MaxAttempts: 3, BaseDelay: time.Millisecond})
	d.Start(context.Background())
	defer d.Stop()

	var attempts int32
	_, err := d.Enqueue("flaky", func(ctx context.Context) error {
		if atomic.AddInt32(&attempts, 1) < 3 {
			return errors.New("transient failure")
		}
		return nil
	})
	assert.NoError(t, err)

	res := waitForResult(t, d)
	assert.NoError(t, res.Err)
	assert.Equal(t, 3, res.Attempts)
}

func TestDispatcher_ReportsExhaustedRetries(t *testing.T) {
	d := jobs.NewDispatcher(1, 4, jobs.Backoff{MaxAttempts: 2, BaseDelay: time.Millisecond})
	d.Start(context.Background())
	defer d.Stop()

	boom := errors.New("permanent failure")
	_, err := d.Enqueue("doomed", func(ctx context.Context) error { return boom })
	assert.NoError(t, err)

	res := waitForResult(t, d)
	assert.ErrorIs(t, res.Err, boom)
	assert.Equal(t, 2, res.Attempts)
}

func TestDispatcher_CancelDuringRetryKeepsFailureCause(t *testing.T) {
	d := jobs.NewDispatcher(1, 4, jobs.Backoff{MaxAttempts: 5, BaseDelay: time.Minute})
	ctx, cancel := context.WithCancel(context.Background())
	d.Start(ctx)
	defer d.Stop()

	boom := errors.New("send failed")
	_, err := d.Enqueue("stuck", func(ctx context.Context) error {
		cancel()
		return boom
	})
	assert.NoError(t, err)

	res := waitForResult(t, d)
	assert.ErrorIs(t, res.Err, boom)
	assert.ErrorIs(t, res.Err, context.Canceled)
	assert.Equal(t, 1, res.Attempts)
}

func TestBackoff_NextDelay(t *testing.T) {
	b := jobs.Backoff{MaxAttempts: 3, BaseDelay: time.Second}

	delay, retry := b.NextDelay(1)
	assert.True(t, retry)
	assert.Equal(t, time.Second, delay)

	delay, retry = b.NextDelay(2)
	assert.True(t, retry)
	assert.Equal(t, 2*time.Second, delay)

	_, retry = b.NextDelay(3)
	assert.False(t, retry)
}

func TestNoRetry_NextDelay(t *testing.T) {
	_, retry := jobs.NoRetry{}.NextDelay(1)
	assert.False(t, retry)
}
