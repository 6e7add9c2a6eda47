package cron

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

type job struct {
	name     string
	interval time.Duration
	run      func(ctx context.Context) error
}

// Scheduler runs registered jobs on fixed intervals until stopped. Each job
// gets its own goroutine and a per-run timeout so one slow job never blocks
// the others or a shutdown.
type Scheduler struct {
	mu      sync.Mutex
	jobs    []job
	cancel  context.CancelFunc
	wg      sync.WaitGroup
	timeout time.Duration
}

func NewScheduler() *Scheduler {
	return &Scheduler{timeout: 10 * time.Minute}
}

func (s *Scheduler) AddJob(name string, interval time.Duration, run func(ctx context.Context) error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.jobs = append(s.jobs, job{name: name, interval: interval, run: run})
	slog.Info("Cron job registered", "name", name, "interval", interval)
}

// Start launches every registered job. Each job runs once immediately and
// then on its interval.
func (s *Scheduler) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()

	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel

	for _, j := range s.jobs {
		s.wg.Add(1)
		go func(j job) {
			defer s.wg.Done()

			s.execute(ctx, j)

			ticker := time.NewTicker(j.interval)
			defer ticker.Stop()
			for {
				select {
				case <-ctx.Done():
					slog.Info("Cron job stopping", "name", j.name)
					return
				case <-ticker.C:
					s.execute(ctx, j)
				}
			}
		}(j)
	}

	slog.Info("Cron scheduler started", "job_count", len(s.jobs))
}

// Stop cancels all jobs and waits for in-flight runs to finish.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	cancel := s.cancel
	s.mu.Unlock()
	if cancel == nil {
		return
	}

	slog.Info("Stopping cron scheduler...")
	cancel()
	s.wg.Wait()
	slog.Info("Cron scheduler stopped")
}

func (s *Scheduler) execute(ctx context.Context, j job) {
	runCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	start := time.Now()
	if err := j.run(runCtx); err != nil {
		slog.Error("Cron job failed", "name", j.name, "error", err, "duration", time.Since(start))
		return
	}
	slog.Debug("Cron job completed", "name", j.name, "duration", time.Since(start))
}

// RunOnce executes every registered job once on the caller's context.
func (s *Scheduler) RunOnce(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, j := range s.jobs {
		if err := j.run(ctx); err != nil {
			slog.Error("Cron job failed", "name", j.name, "error", err)
		}
	}
}
