// Package entity holds the core domain types for presentation-mode
// coordination: playback modes, viewport geometry, system chrome and
// orientation preferences, and overlay layer handles.
package entity

// PlaybackMode is the presentation mode of the playback widget.
type PlaybackMode string

const (
	// ModeInline renders video and controls within the host layout's
	// normal flow.
	ModeInline PlaybackMode = "inline"
	// ModeFullscreen renders video and controls occupying the entire
	// viewport, either via an overlay layer or native fullscreen.
	ModeFullscreen PlaybackMode = "fullscreen"
)

// IsFullscreen reports whether the mode is ModeFullscreen.
func (m PlaybackMode) IsFullscreen() bool {
	return m == ModeFullscreen
}

// String implements fmt.Stringer.
func (m PlaybackMode) String() string {
	return string(m)
}
