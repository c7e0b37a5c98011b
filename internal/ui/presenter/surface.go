// Package presenter renders the playback widget in one of two
// fullscreen strategies: an inserted overlay layer (OverlayHost) or an
// inline container resized to viewport dimensions (ResizeHost). Exactly
// one strategy is selected at construction; the coordinator never
// branches on the environment itself.
package presenter

import (
	"context"

	"github.com/theater-ui/theater/internal/domain/entity"
)

// Composition is an opaque rendered subtree. The GTK surface casts it to
// a widget pointer; test fakes treat it as a label.
type Composition any

// Surface is the rendering target a host draws on. Implemented by the
// GTK main window and by test fakes.
type Surface interface {
	// ShowInline places the composition in the host layout's normal
	// flow at natural bounds.
	ShowInline(ctx context.Context, c Composition) error

	// ResizeInline stretches the inline container to the given viewport
	// dimensions.
	ResizeInline(ctx context.Context, vp entity.Viewport) error

	// RestoreInline returns the inline container to natural bounds.
	RestoreInline(ctx context.Context) error

	// InsertOverlay places the composition as a layer covering the
	// whole surface.
	InsertOverlay(ctx context.Context, c Composition) error

	// RemoveOverlay removes the previously inserted layer.
	RemoveOverlay(ctx context.Context) error
}
