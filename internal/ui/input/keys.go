// Package input maps platform key events to playback-presentation
// actions. Only the hook point lives here; hosts with their own shortcut
// systems supply a custom handler through the presentation config.
package input

import (
	"github.com/theater-ui/theater/internal/application/port"
	"github.com/theater-ui/theater/internal/domain/entity"
)

// KeyHandler reacts to a key-down event, returning true if the event was
// consumed.
type KeyHandler func(controls port.PlaybackControls, ev entity.KeyEvent) bool

// Key names as delivered by the platform surface.
const (
	KeyEscape = "Escape"
	KeyF11    = "F11"
	KeyF      = "f"
)

// DefaultKeyHandler is the built-in handler: Escape exits fullscreen,
// "f" and F11 toggle it. Everything else passes through.
func DefaultKeyHandler(controls port.PlaybackControls, ev entity.KeyEvent) bool {
	switch ev.Name {
	case KeyEscape:
		if controls.Fullscreen() {
			controls.ExitFullscreen()
			return true
		}
		return false
	case KeyF, KeyF11:
		if controls.Fullscreen() {
			controls.ExitFullscreen()
		} else {
			controls.EnterFullscreen()
		}
		return true
	}
	return false
}

// NopKeyHandler ignores every event.
func NopKeyHandler(port.PlaybackControls, entity.KeyEvent) bool {
	return false
}
