// Package lifecycle ties coordinator setup and teardown to the host
// surface's mount/unmount signals and intercepts back-navigation while
// fullscreen presentation is active.
package lifecycle

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/theater-ui/theater/internal/logging"
)

// Coordinator is the slice of the fullscreen coordinator the binder
// drives. Satisfied by *fullscreen.Coordinator.
type Coordinator interface {
	Bind(ctx context.Context)
	Unbind(ctx context.Context)
	HandleBack(ctx context.Context) bool
}

// Host delivers the surface's lifecycle signals. Mounted must fire after
// initial layout is established: coordinator setup needs a realized
// rendering context, so running it earlier is structurally prevented
// rather than handled reactively.
type Host interface {
	// OnMounted registers a callback fired once the surface is realized
	// and laid out.
	OnMounted(fn func())

	// OnUnmount registers a callback fired before the surface is torn
	// down.
	OnUnmount(fn func())

	// OnBackRequest registers the back-navigation interceptor. The
	// callback returns true to consume the request and suppress the
	// default close behavior.
	OnBackRequest(fn func() bool)
}

// Binder wires a Coordinator to a Host. Attach registers everything;
// teardown is guaranteed through the host's unmount signal on all exit
// paths.
type Binder struct {
	coord    Coordinator
	host     Host
	attached bool
	logger   zerolog.Logger
}

// NewBinder creates a binder. Call Attach to take effect.
func NewBinder(ctx context.Context, coord Coordinator, host Host) *Binder {
	log := logging.FromContext(ctx)

	return &Binder{
		coord:  coord,
		host:   host,
		logger: log.With().Str("component", "lifecycle-binder").Logger(),
	}
}

// Attach registers the mount, unmount, and back-navigation callbacks.
// Idempotent.
func (b *Binder) Attach(ctx context.Context) {
	if b.attached {
		return
	}
	b.attached = true

	b.host.OnMounted(func() {
		b.logger.Debug().Msg("surface mounted, binding coordinator")
		b.coord.Bind(ctx)
	})

	b.host.OnUnmount(func() {
		b.logger.Debug().Msg("surface unmounting, unbinding coordinator")
		b.coord.Unbind(ctx)
	})

	b.host.OnBackRequest(func() bool {
		return b.coord.HandleBack(ctx)
	})
}
