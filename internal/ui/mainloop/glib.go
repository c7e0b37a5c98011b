package mainloop

import (
	"sync"
	"time"

	"github.com/jwijenbergh/puregotk/v4/glib"
)

// GLibScheduler schedules onto the GTK main loop via GLib idle and
// timeout sources.
type GLibScheduler struct{}

// NewGLibScheduler returns the GLib-backed scheduler.
func NewGLibScheduler() *GLibScheduler {
	return &GLibScheduler{}
}

// Post dispatches fn to the GTK main thread.
func (s *GLibScheduler) Post(fn func()) {
	cb := glib.SourceFunc(func(_ uintptr) bool {
		fn()
		return false // Don't repeat
	})
	glib.IdleAdd(&cb, 0)
}

// After runs fn on the GTK main thread after d. Sub-millisecond delays
// round up to one millisecond.
func (s *GLibScheduler) After(d time.Duration, fn func()) (cancel func()) {
	ms := uint(d.Milliseconds())
	if ms == 0 && d > 0 {
		ms = 1
	}

	var mu sync.Mutex
	fired := false

	cb := glib.SourceFunc(func(_ uintptr) bool {
		mu.Lock()
		fired = true
		mu.Unlock()
		fn()
		return false // Don't repeat
	})
	source := glib.TimeoutAdd(uint32(ms), &cb, 0)

	return func() {
		mu.Lock()
		defer mu.Unlock()
		if fired || source == 0 {
			return
		}
		glib.SourceRemove(source)
		source = 0
	}
}
