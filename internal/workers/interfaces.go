// Package workers provides abstractions for managing and running
// background workers in the application.
// It defines the Worker interface and a Workers aggregate that allows
// running multiple workers in a unified way.
package workers

import (
	"context"
	"time"
)

// Worker is the interface that must be implemented by any background worker.
//
// Start launches the worker's loop in its own goroutine and returns
// immediately; the loop ticks every interval until ctx is cancelled or Stop
// is called. Stop blocks until the loop has exited and is safe to call on a
// worker that is not running.
//
// Example implementation:
//
//	type MyWorker struct{}
//
//	func (w *MyWorker) Start(ctx context.Context, interval time.Duration) {
//	    // start background processing
//	}
//
//	func (w *MyWorker) Stop() {}
type Worker interface {
	Start(ctx context.Context, interval time.Duration)
	Stop()
}
