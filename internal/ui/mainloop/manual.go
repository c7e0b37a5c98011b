package mainloop

import "time"

// ManualScheduler queues posted and delayed callbacks for explicit
// draining. It exists for deterministic tests: no GTK loop, no real
// clock.
type ManualScheduler struct {
	posted []func()
	timers []*manualTimer
}

type manualTimer struct {
	delay     time.Duration
	fn        func()
	cancelled bool
	fired     bool
}

// NewManualScheduler creates an empty manual scheduler.
func NewManualScheduler() *ManualScheduler {
	return &ManualScheduler{}
}

// Post queues fn for the next Drain.
func (s *ManualScheduler) Post(fn func()) {
	s.posted = append(s.posted, fn)
}

// After queues a delayed callback for FireTimers.
func (s *ManualScheduler) After(d time.Duration, fn func()) (cancel func()) {
	t := &manualTimer{delay: d, fn: fn}
	s.timers = append(s.timers, t)
	return func() { t.cancelled = true }
}

// Drain runs all posted callbacks, including ones posted while
// draining.
func (s *ManualScheduler) Drain() {
	for len(s.posted) > 0 {
		fn := s.posted[0]
		s.posted = s.posted[1:]
		fn()
	}
}

// FireTimers runs every pending non-cancelled delayed callback.
func (s *ManualScheduler) FireTimers() {
	for _, t := range s.timers {
		if t.cancelled || t.fired {
			continue
		}
		t.fired = true
		t.fn()
	}
}

// PendingTimers reports how many delayed callbacks have neither fired
// nor been cancelled.
func (s *ManualScheduler) PendingTimers() int {
	n := 0
	for _, t := range s.timers {
		if !t.cancelled && !t.fired {
			n++
		}
	}
	return n
}
