// Package mainloop schedules work on the UI event loop. All coordination
// runs single-threaded and cooperative; the Scheduler is the only way
// the core defers work, which keeps timed behavior deterministic in
// tests.
package mainloop

import "time"

// Scheduler posts callbacks onto the UI event loop, either immediately
// on the next loop turn or after a delay.
type Scheduler interface {
	// Post runs fn on the next event-loop turn.
	Post(fn func())

	// After runs fn on the event loop once d has elapsed. The returned
	// cancel function prevents the callback from firing if it has not
	// run yet; calling it afterwards is a no-op.
	After(d time.Duration, fn func()) (cancel func())
}
