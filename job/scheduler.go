package job

import (
	"context"
	"sync"
	"time"

	"extstats/utils/logger"
)

// Job defines a periodic background job.
type Job struct {
	Name     string
	Interval time.Duration
	Timeout  time.Duration
	Fn       func(ctx context.Context) error
}

// Scheduler manages periodic background jobs with context-aware shutdown.
type Scheduler struct {
	jobs []Job
	wg   sync.WaitGroup
}

func NewScheduler() *Scheduler {
	return &Scheduler{}
}

// Add registers a job to be run when Start is called.
func (s *Scheduler) Add(j Job) {
	s.jobs = append(s.jobs, j)
}

// Start launches all registered jobs as goroutines. Each job runs
// immediately on start, then repeats at its configured interval. All jobs
// stop when ctx is cancelled.
func (s *Scheduler) Start(ctx context.Context) {
	for _, j := range s.jobs {
		s.wg.Add(1)
		go s.run(ctx, j)
	}
}

func (s *Scheduler) run(ctx context.Context, j Job) {
	defer s.wg.Done()

	s.execute(ctx, j)

	ticker := time.NewTicker(j.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.SafeInfo("job stopping", "job", j.Name)
			return
		case <-ticker.C:
			s.execute(ctx, j)
		}
	}
}

func (s *Scheduler) execute(ctx context.Context, j Job) {
	if ctx.Err() != nil {
		return
	}

	jobCtx, cancel := context.WithTimeout(ctx, j.Timeout)
	defer cancel()

	if err := j.Fn(jobCtx); err != nil {
		logger.SafeError("job failed", "job", j.Name, "error", err)
	}
}

// Shutdown blocks until all running jobs complete.
func (s *Scheduler) Shutdown() {
	s.wg.Wait()
}
