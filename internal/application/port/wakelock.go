package port

import "context"

// WakeLock prevents automatic screen dimming/locking during active
// playback. Set is idempotent per the contract, but enabling on an
// already-enabled lock is not guaranteed idempotent on every platform
// backend, which is why the coordinator always disables before
// re-enabling across a mode transition.
//
// All calls are best effort: an unsupported or failing backend must
// return a functional no-op implementation rather than block callers.
type WakeLock interface {
	// Set enables or disables the wake lock. Setting the current state
	// again is a no-op.
	Set(ctx context.Context, enabled bool) error

	// Enabled reports whether the lock is currently held.
	Enabled() bool

	// Close releases any held resources, dropping the lock if held.
	// Called on teardown.
	Close() error
}
