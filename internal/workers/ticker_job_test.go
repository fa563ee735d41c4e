// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTickerJob_Start_CallsFn(t *testing.T) {
	var calls atomic.Int64
	job := NewTickerJob(func(context.Context) { calls.Add(1) })

	// 10ms interval: roughly 5 ticks in 55ms
	job.Start(context.Background(), 10*time.Millisecond)
	time.Sleep(55 * time.Millisecond)
	job.Stop()

	assert.GreaterOrEqual(t, calls.Load(), int64(3))
}

func TestTickerJob_Stop_StopsTicking(t *testing.T) {
	var calls atomic.Int64
	job := NewTickerJob(func(context.Context) { calls.Add(1) })

	job.Start(context.Background(), 10*time.Millisecond)
	time.Sleep(30 * time.Millisecond)
	job.Stop()
	time.Sleep(5 * time.Millisecond)

	callsAfterStop := calls.Load()
	time.Sleep(30 * time.Millisecond)

	assert.Equal(t, callsAfterStop, calls.Load(), "no ticks after Stop")
	assert.False(t, job.Running())
}

func TestTickerJob_Stop_BeforeStart_NoPanic(t *testing.T) {
	job := NewTickerJob(func(context.Context) {})
	assert.NotPanics(t, func() { job.Stop() })
}

func TestTickerJob_SlowCallDoesNotDelayTicks(t *testing.T) {
	var started atomic.Int64
	block := make(chan struct{})
	job := NewTickerJob(func(context.Context) {
		started.Add(1)
		<-block
	})

	job.Start(context.Background(), 10*time.Millisecond)
	time.Sleep(55 * time.Millisecond)
	job.Stop()
	close(block)

	assert.GreaterOrEqual(t, started.Load(), int64(3), "ticks must keep firing while earlier calls block")
}

func TestTickerJob_CallContextSurvivesStop(t *testing.T) {
	ctxCh := make(chan context.Context, 1)
	job := NewTickerJob(func(ctx context.Context) {
		select {
		case ctxCh <- ctx:
		default:
		}
	})

	job.Start(context.Background(), 5*time.Millisecond)
	var callCtx context.Context
	select {
	case callCtx = <-ctxCh:
	case <-time.After(time.Second):
		t.Fatal("fn was not called")
	}
	job.Stop()

	require.NotNil(t, callCtx)
	assert.NoError(t, callCtx.Err())
}

func TestTickerJob_Restart(t *testing.T) {
	var calls atomic.Int64
	job := NewTickerJob(func(context.Context) { calls.Add(1) })

	job.Start(context.Background(), 10*time.Millisecond)
	job.Start(context.Background(), 10*time.Millisecond)
	assert.True(t, job.Running())
	time.Sleep(35 * time.Millisecond)
	job.Stop()

	assert.Positive(t, calls.Load())
}
