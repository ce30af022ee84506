package jobs

import (
	"context"
	"errors"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"
)

var (
	ErrQueueFull = errors.New("notification queue is full")
	ErrStopped   = errors.New("dispatcher is stopped")
)

// Job is a unit of asynchronous work executed by the worker pool.
type Job struct {
	ID   uuid.UUID
	Name string
	Run  func(ctx context.Context) error
}

// Result reports the outcome of one job, including how many attempts it
// took. Results are delivered best-effort on a buffered channel.
type Result struct {
	JobID    uuid.UUID
	Name     string
	Attempts int
	Err      error
	Duration time.Duration
}

// RetryPolicy decides whether a failed job runs again. attempt is the
// number of tries already completed.
type RetryPolicy interface {
	NextDelay(attempt int) (time.Duration, bool)
}

type NoRetry struct{}

func (NoRetry) NextDelay(int) (time.Duration, bool) { return 0, false }

// Backoff retries up to MaxAttempts total tries, doubling the delay each
// time starting from BaseDelay.
type Backoff struct {
	MaxAttempts int
	BaseDelay   time.Duration
}

func (b Backoff) NextDelay(attempt int) (time.Duration, bool) {
	if attempt >= b.MaxAttempts {
		return 0, false
	}
	return b.BaseDelay << (attempt - 1), true
}

// Dispatcher is a bounded work queue drained by a fixed pool of workers.
// Enqueue never blocks the request path: it returns a job handle
// immediately, or ErrQueueFull when the queue is at capacity.
type Dispatcher struct {
	queue   chan Job
	results chan Result
	retry   RetryPolicy
	workers int

	mu      sync.Mutex
	stopped bool
	wg      sync.WaitGroup
}

func NewDispatcher(workers, queueSize int, retry RetryPolicy) *Dispatcher {
	if workers < 1 {
		workers = 1
	}
	if queueSize < 1 {
		queueSize = 1
	}
	if retry == nil {
		retry = NoRetry{}
	}

	return &Dispatcher{
		queue:   make(chan Job, queueSize),
		results: make(chan Result, queueSize),
		retry:   retry,
		workers: workers,
	}
}

func (d *Dispatcher) Start(ctx context.Context) {
	for i := 0; i < d.workers; i++ {
		d.wg.Add(1)
		go d.worker(ctx)
	}
	log.Printf("✅ Notification dispatcher started with %d workers (queue size %d)", d.workers, cap(d.queue))
}

// Enqueue submits a job and returns its handle without waiting for
// execution.
func (d *Dispatcher) Enqueue(name string, run func(ctx context.Context) error) (uuid.UUID, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.stopped {
		return uuid.Nil, ErrStopped
	}

	job := Job{ID: uuid.New(), Name: name, Run: run}
	select {
	case d.queue <- job:
		return job.ID, nil
	default:
		return uuid.Nil, ErrQueueFull
	}
}

// Results exposes job outcomes for observability. The channel is buffered;
// outcomes are dropped when nobody is reading.
func (d *Dispatcher) Results() <-chan Result {
	return d.results
}

// Stop closes the queue, waits for in-flight jobs to finish, then closes
// the results channel.
func (d *Dispatcher) Stop() {
	d.mu.Lock()
	if d.stopped {
		d.mu.Unlock()
		return
	}
	d.stopped = true
	close(d.queue)
	d.mu.Unlock()

	d.wg.Wait()
	close(d.results)
	log.Println("Notification dispatcher stopped")
}

func (d *Dispatcher) worker(ctx context.Context) {
	defer d.wg.Done()

	for job := range d.queue {
		res := d.execute(ctx, job)

		if res.Err != nil {
			log.Printf("🔥 Job %s (%s) failed after %d attempt(s): %v", job.Name, job.ID, res.Attempts, res.Err)
		}

		select {
		case d.results <- res:
		default:
		}
	}
}

func (d *Dispatcher) execute(ctx context.Context, job Job) Result {
	start := time.Now()

	var err error
	attempts := 0
	for {
		attempts++
		err = job.Run(ctx)
		if err == nil {
			break
		}

		delay, retry := d.retry.NextDelay(attempts)
		if !retry {
			break
		}

		log.Printf("Job %s (%s) attempt %d failed, retrying in %s: %v", job.Name, job.ID, attempts, delay, err)
		select {
		case <-ctx.Done():
			// Keep the job's own failure visible alongside the cancellation.
			err = errors.Join(err, ctx.Err())
			return Result{JobID: job.ID, Name: job.Name, Attempts: attempts, Err: err, Duration: time.Since(start)}
		case <-time.After(delay):
		}
	}

	return Result{JobID: job.ID, Name: job.Name, Attempts: attempts, Err: err, Duration: time.Since(start)}
}
