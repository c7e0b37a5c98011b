// Package port defines the boundary contracts between the coordination
// core and the platform. Implementations live under
// internal/infrastructure and internal/ui/window; tests substitute fakes.
package port

// PlaybackControls is the playback-control model the coordinator
// observes and drives. It is a black box to the core: the coordinator
// reads the fullscreen flag, flips it through the mutators, and reacts
// to change notifications.
//
// Mutators are idempotent. Change notifications fire after the internal
// state has been updated, so a callback reading Fullscreen sees the
// settled value.
type PlaybackControls interface {
	// Fullscreen reports the model's current fullscreen flag.
	Fullscreen() bool

	// EnterFullscreen requests fullscreen presentation. No-op if the
	// flag is already set.
	EnterFullscreen()

	// ExitFullscreen requests inline presentation. No-op if the flag is
	// already clear.
	ExitFullscreen()

	// Subscribe registers a change callback and returns a function that
	// removes it. The returned function is safe to call more than once.
	Subscribe(fn func()) (unsubscribe func())
}
