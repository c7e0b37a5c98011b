package entity

// KeyEvent is a key-down event delivered by the platform surface while
// the playback widget has focus.
type KeyEvent struct {
	// Name is the platform-independent key name ("Escape", "f", "F11").
	Name string
	// Keyval is the raw platform key value, for handlers that need it.
	Keyval uint
}
