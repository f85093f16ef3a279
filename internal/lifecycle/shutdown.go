// Package lifecycle coordinates a signal handler with the main goroutine's teardown.
package lifecycle

import (
	"sync"
	"time"
)

// Shutdown lets a signal handler ask a running loop to stop and then wait
// until every resource has been released.
//
// The main goroutine calls Start once the loop can be stopped, Stop when the
// loop's resources are about to be destroyed, and Finish after the last one is gone.
type Shutdown struct {
	mu      sync.Mutex
	running bool

	done     chan struct{}
	finished sync.Once
}

// NewShutdown creates a guard in the not-running state
func NewShutdown() *Shutdown {
	return &Shutdown{done: make(chan struct{})}
}

// Start marks the loop as stoppable
func (s *Shutdown) Start() {
	s.mu.Lock()
	s.running = true
	s.mu.Unlock()
}

// Stop marks the loop as gone. Requests made afterwards no longer call their stop function.
func (s *Shutdown) Stop() {
	s.mu.Lock()
	s.running = false
	s.mu.Unlock()
}

// Finish releases every pending and future Request. Safe to call more than once.
func (s *Shutdown) Finish() {
	s.finished.Do(func() { close(s.done) })
}

// Request calls stop if the loop is running, then waits for Finish or the timeout.
// It reports whether stop was called and whether teardown completed in time.
func (s *Shutdown) Request(stop func(), timeout time.Duration) (stopped, finished bool) {
	s.mu.Lock()
	if s.running {
		stop()
		stopped = true
	}
	s.mu.Unlock()

	select {
	case <-s.done:
		return stopped, true
	case <-time.After(timeout):
		return stopped, false
	}
}
