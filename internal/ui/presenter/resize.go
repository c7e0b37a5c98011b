package presenter

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/theater-ui/theater/internal/domain/entity"
	"github.com/theater-ui/theater/internal/logging"
	"github.com/theater-ui/theater/internal/ui/mainloop"
)

// ResizeHost presents fullscreen by stretching the inline container to
// captured viewport dimensions, the web-like strategy where the
// platform's native fullscreen does the actual screen takeover. Viewport
// updates are coalesced so a burst during geometry settling produces one
// re-render.
type ResizeHost struct {
	surface   Surface
	coalescer *mainloop.Coalescer
	active    bool
	viewport  *entity.Viewport
	logger    zerolog.Logger
}

// NewResizeHost creates a resize-strategy host posting re-renders
// through sched.
func NewResizeHost(ctx context.Context, surface Surface, sched mainloop.Scheduler) *ResizeHost {
	log := logging.FromContext(ctx)

	return &ResizeHost{
		surface:   surface,
		coalescer: mainloop.NewCoalescer(sched),
		logger:    log.With().Str("component", "resize-host").Logger(),
	}
}

// Enter marks the host active. The composition is ignored: the inline
// subtree stays where it is and gets stretched once viewport dimensions
// are captured and applied via SetViewport.
func (h *ResizeHost) Enter(context.Context, Composition) error {
	h.active = true
	return nil
}

// SetViewport records the captured dimensions and schedules a coalesced
// re-render of the inline container at that size. Ignored when the host
// is not active (a stale capture arriving after exit).
func (h *ResizeHost) SetViewport(ctx context.Context, vp entity.Viewport) error {
	if !h.active {
		h.logger.Debug().Msg("viewport capture after exit, ignoring")
		return nil
	}
	if !vp.Valid() {
		h.logger.Debug().Int("width", vp.Width).Int("height", vp.Height).Msg("invalid viewport, ignoring")
		return nil
	}

	h.viewport = &vp
	h.coalescer.Post(mainloop.TaskRender, func() {
		if !h.active || h.viewport == nil {
			return
		}
		if err := h.surface.ResizeInline(ctx, *h.viewport); err != nil {
			h.logger.Warn().Err(err).Msg("inline resize failed")
		}
	})
	return nil
}

// Exit clears the captured viewport and restores the inline container to
// natural bounds synchronously.
func (h *ResizeHost) Exit(ctx context.Context) error {
	h.active = false
	h.viewport = nil
	if err := h.surface.RestoreInline(ctx); err != nil {
		h.logger.Warn().Err(err).Msg("inline restore failed")
		return err
	}
	return nil
}

// Active reports whether the host is presenting fullscreen.
func (h *ResizeHost) Active() bool {
	return h.active
}

// Viewport returns the last applied dimensions, nil at natural bounds.
func (h *ResizeHost) Viewport() *entity.Viewport {
	return h.viewport
}

// Destroy drops any pending coalesced renders.
func (h *ResizeHost) Destroy() {
	h.coalescer.Destroy()
}
