package entity

import "github.com/google/uuid"

// OverlayHandle identifies a live fullscreen presentation layer. At most
// one handle is live at a time; it is created on entering fullscreen in
// overlay mode and destroyed on exit. The handle is opaque to everything
// except the presenter that issued it.
type OverlayHandle struct {
	id uuid.UUID
}

// NewOverlayHandle mints a fresh overlay handle.
func NewOverlayHandle() OverlayHandle {
	return OverlayHandle{id: uuid.New()}
}

// ID returns the handle's identifier string, for logging.
func (h OverlayHandle) ID() string {
	return h.id.String()
}

// Zero reports whether the handle is the zero value (no live layer).
func (h OverlayHandle) Zero() bool {
	return h.id == uuid.Nil
}
