// Package playback provides the concrete playback-control model the
// coordinator observes. Hosts that already have their own control model
// can implement port.PlaybackControls instead.
package playback

import (
	"sort"
	"sync"

	"github.com/theater-ui/theater/internal/application/port"
)

// Compile-time interface check.
var _ port.PlaybackControls = (*Controls)(nil)

// Controls holds the fullscreen flag and a subscriber list. Mutators are
// idempotent; subscribers are notified after the flag has been updated,
// outside the internal lock, in registration order.
type Controls struct {
	mu          sync.Mutex
	fullscreen  bool
	nextSubID   int
	subscribers map[int]func()
}

// NewControls creates a control model in inline mode.
func NewControls() *Controls {
	return &Controls{
		subscribers: make(map[int]func()),
	}
}

// Fullscreen reports the current fullscreen flag.
func (c *Controls) Fullscreen() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.fullscreen
}

// EnterFullscreen sets the fullscreen flag. No-op if already set.
func (c *Controls) EnterFullscreen() {
	c.set(true)
}

// ExitFullscreen clears the fullscreen flag. No-op if already clear.
func (c *Controls) ExitFullscreen() {
	c.set(false)
}

// Toggle flips the fullscreen flag.
func (c *Controls) Toggle() {
	c.mu.Lock()
	target := !c.fullscreen
	c.mu.Unlock()
	c.set(target)
}

func (c *Controls) set(fullscreen bool) {
	c.mu.Lock()
	if c.fullscreen == fullscreen {
		c.mu.Unlock()
		return
	}
	c.fullscreen = fullscreen
	subs := make([]func(), 0, len(c.subscribers))
	ids := make([]int, 0, len(c.subscribers))
	for id := range c.subscribers {
		ids = append(ids, id)
	}
	// Map iteration order is random; notify in registration order.
	sort.Ints(ids)
	for _, id := range ids {
		subs = append(subs, c.subscribers[id])
	}
	c.mu.Unlock()

	for _, fn := range subs {
		fn()
	}
}

// Subscribe registers a change callback and returns its removal
// function. The removal function is idempotent.
func (c *Controls) Subscribe(fn func()) (unsubscribe func()) {
	c.mu.Lock()
	id := c.nextSubID
	c.nextSubID++
	c.subscribers[id] = fn
	c.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			c.mu.Lock()
			delete(c.subscribers, id)
			c.mu.Unlock()
		})
	}
}
