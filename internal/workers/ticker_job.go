// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"sync"
	"time"
)

// DefaultInterval is used when Start is called with a non-positive interval.
const DefaultInterval = 3 * time.Second

// TickerJob calls a function on every tick of a [time.Ticker]. Each tick runs
// the function on a fresh goroutine, so a slow call never delays or drops the
// following ticks, and calls may overlap.
type TickerJob struct {
	fn func(ctx context.Context)

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

var _ Worker = (*TickerJob)(nil)

// NewTickerJob creates a TickerJob for fn. The job is idle until Start is
// called.
func NewTickerJob(fn func(ctx context.Context)) *TickerJob {
	return &TickerJob{fn: fn}
}

// Start implements [Worker]. The first call to fn happens one interval after
// Start. fn receives a context that is not cancelled by Stop, so calls that
// are already running finish on their own.
func (j *TickerJob) Start(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = DefaultInterval
	}

	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	callCtx := context.WithoutCancel(ctx)

	go func() {
		defer j.wg.Done()
		t := time.NewTicker(interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				go j.fn(callCtx)
			}
		}
	}()
}

// Stop implements [Worker].
func (j *TickerJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}

// Running reports whether the job has been started and not stopped.
func (j *TickerJob) Running() bool {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.cancel != nil
}
