package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"kotoba/backend/internal/logger"
	"kotoba/backend/internal/service"
)

// runTimeout bounds a single job run so a hung upstream cannot block the next day.
const runTimeout = 15 * time.Minute

// Job is the unit of work triggered on the schedule.
type Job interface {
	Run(ctx context.Context) (service.RunResult, error)
}

type Scheduler struct {
	job        Job
	spec       string
	loc        *time.Location
	schedule   cron.Schedule
	cron       *cron.Cron
	cancelFunc context.CancelFunc // cancels the current run
	mu         sync.Mutex         // protects cancelFunc
	running    sync.WaitGroup     // in-flight ticks
}

// New parses spec, a standard 5-field cron expression evaluated in loc.
func New(job Job, spec string, loc *time.Location) (*Scheduler, error) {
	if loc == nil {
		loc = time.Local
	}
	schedule, err := cron.ParseStandard(spec)
	if err != nil {
		return nil, fmt.Errorf("parse schedule %q: %w", spec, err)
	}

	c := cron.New(
		cron.WithLocation(loc),
		cron.WithLogger(cronLogger{}),
		cron.WithChain(cron.Recover(cronLogger{}), cron.SkipIfStillRunning(cronLogger{})),
	)
	s := &Scheduler{job: job, spec: spec, loc: loc, schedule: schedule, cron: c}
	c.Schedule(schedule, cron.FuncJob(s.tick))
	return s, nil
}

// Next returns the first trigger time strictly after from.
func (s *Scheduler) Next(from time.Time) time.Time {
	return s.schedule.Next(from.In(s.loc))
}

func (s *Scheduler) Start() {
	s.cron.Start()
	logger.Info("scheduler started", "module", "scheduler", "action", "schedule", "resource", "summary", "result", "ok",
		"schedule", s.spec, "timezone", s.loc.String(), "next", s.Next(time.Now()).Format(time.RFC3339))
}

// Stop cancels the in-flight run, if any, and waits for it to return.
func (s *Scheduler) Stop() {
	// Cancel any ongoing run first
	s.mu.Lock()
	if s.cancelFunc != nil {
		s.cancelFunc()
	}
	s.mu.Unlock()

	<-s.cron.Stop().Done()
	s.running.Wait()
	logger.Info("scheduler stopped", "module", "scheduler", "action", "schedule", "resource", "summary", "result", "ok")
}

func (s *Scheduler) tick() {
	s.running.Add(1)
	defer s.running.Done()

	ctx, cancel := context.WithTimeout(context.Background(), runTimeout)

	// Store cancel function so Stop() can cancel ongoing run
	s.mu.Lock()
	s.cancelFunc = cancel
	s.mu.Unlock()

	defer func() {
		cancel()
		s.mu.Lock()
		s.cancelFunc = nil
		s.mu.Unlock()
	}()

	RunOnce(ctx, s.job)
}

// RunOnce runs the job and logs its outcome. Errors end the run and are not retried.
func RunOnce(ctx context.Context, job Job) service.RunResult {
	logger.Info("daily summary run started", "module", "scheduler", "action", "run", "resource", "summary", "result", "ok")
	res, err := job.Run(ctx)
	attrs := []any{"module", "scheduler", "action", "run", "resource", "summary", "run_id", res.RunID}
	if err != nil {
		if ctx.Err() != nil {
			logger.Warn("daily summary run cancelled", append(attrs, "result", "cancelled", "error", err)...)
			return res
		}
		logger.Error("daily summary run failed", append(attrs, "result", "failed", "error", err)...)
		return res
	}
	logger.Info("daily summary run completed", append(attrs, "result", "ok",
		"outcome", res.Outcome, "generated", res.Generated, "sent", res.Sent)...)
	return res
}

// cronLogger routes cron's internal messages through the application logger.
type cronLogger struct{}

func (cronLogger) Info(msg string, keysAndValues ...interface{}) {
	logger.Debug("cron: "+msg, append([]any{"module", "scheduler"}, keysAndValues...)...)
}

func (cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	logger.Error("cron: "+msg, append([]any{"module", "scheduler", "error", err}, keysAndValues...)...)
}
