// Package async provides a bounded worker pool for fanning parse jobs out
// across goroutines. The parser itself is synchronous; concurrency lives
// here, at the caller.
package async

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Job is the smallest useful unit: one document to parse.
type Job struct {
	Path        string
	SubmittedAt time.Time
	TraceID     string
}

// NewJob stamps a job with a trace ID and submission time.
func NewJob(path string) Job {
	return Job{Path: path, SubmittedAt: time.Now(), TraceID: uuid.NewString()}
}

// Result pairs a job with its outcome.
type Result struct {
	Job      Job
	Err      error
	Duration time.Duration
}

// Pool runs jobs with a fixed number of workers.
type Pool struct {
	workers int
	logger  *slog.Logger
}

// NewPool builds a pool; workers <= 0 defaults to 4.
func NewPool(workers int, logger *slog.Logger) *Pool {
	if workers <= 0 {
		workers = 4
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Pool{workers: workers, logger: logger}
}

// Run processes every job with fn and returns all results. It honors ctx
// cancellation between jobs; in-flight work is allowed to finish.
func (p *Pool) Run(ctx context.Context, jobs []Job, fn func(context.Context, Job) error) []Result {
	jobCh := make(chan Job)
	resCh := make(chan Result, len(jobs))

	var wg sync.WaitGroup
	for w := 0; w < p.workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for job := range jobCh {
				start := time.Now()
				err := fn(ctx, job)
				resCh <- Result{Job: job, Err: err, Duration: time.Since(start)}
			}
		}()
	}

	go func() {
		defer close(jobCh)
		for _, job := range jobs {
			select {
			case <-ctx.Done():
				return
			case jobCh <- job:
			}
		}
	}()

	wg.Wait()
	close(resCh)

	results := make([]Result, 0, len(jobs))
	for r := range resCh {
		if r.Err != nil {
			p.logger.Error("async.job.failed", "trace_id", r.Job.TraceID, "path", r.Job.Path, "error", r.Err)
		}
		results = append(results, r)
	}
	return results
}
