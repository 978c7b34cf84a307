package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/osse101/CarbonScan_Go/internal/logger"
	"github.com/osse101/CarbonScan_Go/internal/worker"
)

// Scheduler turns cron ticks into worker pool jobs. It never runs a job on
// the cron goroutine itself.
type Scheduler struct {
	cron    *cron.Cron
	pool    *worker.Pool
	entries map[string]cron.EntryID
}

// New evaluates schedules in loc, UTC when nil
func New(pool *worker.Pool, loc *time.Location) *Scheduler {
	if loc == nil {
		loc = time.UTC
	}
	return &Scheduler{
		cron:    cron.New(cron.WithLocation(loc)),
		pool:    pool,
		entries: make(map[string]cron.EntryID),
	}
}

// Schedule registers job under a five-field cron line or a descriptor such
// as "@hourly" or "@every 10m". Names must be unique.
func (s *Scheduler) Schedule(name, spec string, job worker.Job) error {
	if _, dup := s.entries[name]; dup {
		return fmt.Errorf("%s: %s", ErrMsgDuplicateJob, name)
	}
	id, err := s.cron.AddFunc(spec, func() { s.dispatch(name, job) })
	if err != nil {
		return fmt.Errorf("%s %q for %s: %w", ErrMsgInvalidSchedule, spec, name, err)
	}
	s.entries[name] = id
	logger.FromContext(context.Background()).Info(LogMsgJobScheduled, "job", name, "schedule", spec)
	return nil
}

// Every registers job at a fixed interval
func (s *Scheduler) Every(name string, interval time.Duration, job worker.Job) error {
	return s.Schedule(name, "@every "+interval.String(), job)
}

// dispatch hands job to the pool without blocking; a full queue skips this tick
func (s *Scheduler) dispatch(name string, job worker.Job) bool {
	if s.pool.TryEnqueue(job) {
		return true
	}
	logger.FromContext(context.Background()).Warn(LogMsgJobDropped, "job", name)
	return false
}

// NextRun reports when the named job fires next. It is zero until Start.
func (s *Scheduler) NextRun(name string) (time.Time, bool) {
	id, ok := s.entries[name]
	if !ok {
		return time.Time{}, false
	}
	return s.cron.Entry(id).Next, true
}

func (s *Scheduler) Start() {
	s.cron.Start()
	logger.FromContext(context.Background()).Info(LogMsgSchedulerStart, "jobs", len(s.entries))
}

// Stop waits for the cron goroutine; jobs already handed to the pool keep running
func (s *Scheduler) Stop() {
	<-s.cron.Stop().Done()
	logger.FromContext(context.Background()).Info(LogMsgSchedulerStop)
}
