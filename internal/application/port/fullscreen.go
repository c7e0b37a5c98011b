package port

import (
	"context"

	"github.com/theater-ui/theater/internal/domain/entity"
)

// NativeFullscreen is the platform-native fullscreen surface available
// on web-like environments (and desktop toplevels). It exists because
// the platform can leave fullscreen behind the application's back (an
// Escape gesture, a window-manager shortcut); the coordinator subscribes
// to change notifications and reconciles the playback model against
// Fullscreened.
type NativeFullscreen interface {
	// Request asks the platform to enter native fullscreen. Best effort.
	Request(ctx context.Context) error

	// Exit asks the platform to leave native fullscreen. Best effort.
	Exit(ctx context.Context) error

	// Fullscreened reports the platform's actual fullscreen state. On
	// platforms without a direct query this may be a heuristic and is
	// treated as a best-effort approximation.
	Fullscreened() bool

	// Viewport returns the surface's current dimensions.
	Viewport() entity.Viewport

	// SubscribeChange registers a callback fired whenever the native
	// fullscreen state changes, returning a removal function.
	SubscribeChange(fn func()) (unsubscribe func())

	// SubscribeKeyDown registers a key-down callback, returning a
	// removal function. The callback returns true if it consumed the
	// event.
	SubscribeKeyDown(fn func(entity.KeyEvent) bool) (unsubscribe func())
}
