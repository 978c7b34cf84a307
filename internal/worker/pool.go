package worker

import (
	"context"
	"fmt"
	"sync"

	"github.com/osse101/CarbonScan_Go/internal/logger"
)

// Job is a unit of background work
type Job interface {
	Process(ctx context.Context) error
}

// JobFunc lets a plain function be queued
type JobFunc func(ctx context.Context) error

func (f JobFunc) Process(ctx context.Context) error {
	return f(ctx)
}

// Pool runs queued jobs on a fixed set of goroutines. The context handed
// to jobs is cancelled by Stop.
type Pool struct {
	size  int
	queue chan Job

	ctx    context.Context
	cancel context.CancelFunc

	running sync.WaitGroup
	once    sync.Once
}

// NewPool makes a pool of size workers with room for queueSize waiting jobs.
// Nothing runs until Start.
func NewPool(size, queueSize int) *Pool {
	ctx, cancel := context.WithCancel(context.Background())
	return &Pool{size: size, queue: make(chan Job, queueSize), ctx: ctx, cancel: cancel}
}

func (p *Pool) Start() {
	p.running.Add(p.size)
	for range p.size {
		go p.loop()
	}
}

func (p *Pool) loop() {
	defer p.running.Done()
	for {
		select {
		case <-p.ctx.Done():
			return
		case job := <-p.queue:
			if err := p.run(job); err != nil {
				logger.FromContext(p.ctx).Error(LogMsgWorkerJobFailed, "error", err)
			}
		}
	}
}

// run shields the worker from a panicking job
func (p *Pool) run(job Job) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%s: %v", ErrMsgJobPanicked, r)
		}
	}()
	return job.Process(p.ctx)
}

// Enqueue waits for queue space. It reports false when the pool is, or
// gets, stopped first.
func (p *Pool) Enqueue(job Job) bool {
	if p.ctx.Err() != nil {
		return false
	}
	select {
	case p.queue <- job:
		return true
	case <-p.ctx.Done():
		return false
	}
}

// TryEnqueue never blocks: it reports false when the queue is full or the
// pool stopped
func (p *Pool) TryEnqueue(job Job) bool {
	if p.ctx.Err() != nil {
		return false
	}
	select {
	case p.queue <- job:
		return true
	default:
		logger.FromContext(p.ctx).Warn(LogMsgWorkerQueueFull, "queue_size", cap(p.queue))
		return false
	}
}

// Stop cancels running jobs, waits for the workers and drops whatever is
// still queued. Safe to call more than once.
func (p *Pool) Stop() {
	p.once.Do(p.cancel)
	p.running.Wait()
}
