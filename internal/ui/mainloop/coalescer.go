package mainloop

import "sync"

// TaskKey labels a class of coalescable main-loop work.
type TaskKey string

const (
	// TaskRender is a presentation re-render request.
	TaskRender TaskKey = "render"
	// TaskChrome is a system-chrome visibility update.
	TaskChrome TaskKey = "chrome"
)

// Coalescer merges bursts of same-key main-loop tasks: only the latest
// callback for a key runs when the posted turn arrives. Used so rapid
// viewport updates during a fullscreen transition collapse into a
// single re-render.
type Coalescer struct {
	mu        sync.Mutex
	pending   map[TaskKey]bool
	callbacks map[TaskKey]func()
	sched     Scheduler
	destroyed bool
}

// NewCoalescer creates a coalescer posting through the given scheduler.
func NewCoalescer(sched Scheduler) *Coalescer {
	if sched == nil {
		panic("mainloop.NewCoalescer: scheduler cannot be nil")
	}

	return &Coalescer{
		pending:   make(map[TaskKey]bool),
		callbacks: make(map[TaskKey]func()),
		sched:     sched,
	}
}

// Post schedules fn under key, replacing any not-yet-run callback with
// the same key.
func (c *Coalescer) Post(key TaskKey, fn func()) {
	if fn == nil || key == "" {
		return
	}

	c.mu.Lock()
	if c.destroyed {
		c.mu.Unlock()
		return
	}
	c.callbacks[key] = fn
	if c.pending[key] {
		c.mu.Unlock()
		return
	}
	c.pending[key] = true
	sched := c.sched
	c.mu.Unlock()

	sched.Post(func() {
		c.mu.Lock()
		if c.destroyed {
			delete(c.pending, key)
			delete(c.callbacks, key)
			c.mu.Unlock()
			return
		}
		fn := c.callbacks[key]
		delete(c.pending, key)
		delete(c.callbacks, key)
		c.mu.Unlock()

		if fn != nil {
			fn()
		}
	})
}

// Destroy drops all pending work; posts after Destroy are ignored.
func (c *Coalescer) Destroy() {
	c.mu.Lock()
	c.destroyed = true
	c.pending = map[TaskKey]bool{}
	c.callbacks = map[TaskKey]func(){}
	c.mu.Unlock()
}
