// Package workers provides the background jobs of the counter client.
//
// A [Worker] runs recurring work on its own goroutine between Start and Stop.
// The only implementation, [TickerJob], backs the poll timer.
package workers

import (
	"context"
	"time"
)

// Worker is a restartable background job.
type Worker interface {
	// Start launches the job, stopping any previous run first.
	Start(ctx context.Context, interval time.Duration)
	// Stop cancels the job and waits for its scheduling goroutine to exit.
	// Safe to call when the job is not running.
	Stop()
}
