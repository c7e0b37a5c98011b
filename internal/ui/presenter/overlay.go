package presenter

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/theater-ui/theater/internal/domain/entity"
	"github.com/theater-ui/theater/internal/logging"
)

// OverlayHost presents fullscreen by inserting a full-surface layer
// holding the fullscreen composition. At most one layer is ever live;
// inserting a second while one exists is a programming error and panics
// rather than silently leaking a layer.
type OverlayHost struct {
	surface Surface
	handle  entity.OverlayHandle
	logger  zerolog.Logger
}

// NewOverlayHost creates an overlay-strategy host drawing on surface.
func NewOverlayHost(ctx context.Context, surface Surface) *OverlayHost {
	log := logging.FromContext(ctx)

	return &OverlayHost{
		surface: surface,
		logger:  log.With().Str("component", "overlay-host").Logger(),
	}
}

// Enter inserts comp as the overlay layer. Panics if a layer is already
// live.
func (h *OverlayHost) Enter(ctx context.Context, comp Composition) error {
	if !h.handle.Zero() {
		panic(fmt.Sprintf("presenter: overlay layer %s already live", h.handle.ID()))
	}

	h.handle = entity.NewOverlayHandle()
	if err := h.surface.InsertOverlay(ctx, comp); err != nil {
		h.handle = entity.OverlayHandle{}
		h.logger.Warn().Err(err).Msg("overlay insertion failed")
		return err
	}

	h.logger.Debug().Str("overlay_id", h.handle.ID()).Msg("overlay inserted")
	return nil
}

// SetViewport is a no-op: the layer always covers the whole surface.
func (h *OverlayHost) SetViewport(context.Context, entity.Viewport) error {
	return nil
}

// Exit removes the overlay layer synchronously. No-op when no layer is
// live.
func (h *OverlayHost) Exit(ctx context.Context) error {
	if h.handle.Zero() {
		return nil
	}

	id := h.handle.ID()
	h.handle = entity.OverlayHandle{}
	if err := h.surface.RemoveOverlay(ctx); err != nil {
		h.logger.Warn().Err(err).Str("overlay_id", id).Msg("overlay removal failed")
		return err
	}

	h.logger.Debug().Str("overlay_id", id).Msg("overlay removed")
	return nil
}

// Active reports whether the overlay layer is live.
func (h *OverlayHost) Active() bool {
	return !h.handle.Zero()
}
