package entity

// Orientation is a preferred device orientation. Orientation preference
// lists are part of the public configuration surface for interface
// compatibility with hosts that run on rotatable devices, but this
// variant does not act on them: the coordinator applies them through a
// no-op path. Callers may still pass them; they are carried, not dropped.
type Orientation string

const (
	OrientationPortraitUp     Orientation = "portrait_up"
	OrientationPortraitDown   Orientation = "portrait_down"
	OrientationLandscapeLeft  Orientation = "landscape_left"
	OrientationLandscapeRight Orientation = "landscape_right"
)

// AllOrientations is the unrestricted preference list.
var AllOrientations = []Orientation{
	OrientationPortraitUp,
	OrientationPortraitDown,
	OrientationLandscapeLeft,
	OrientationLandscapeRight,
}

// LandscapeOrientations is the common fullscreen-video preference list.
var LandscapeOrientations = []Orientation{
	OrientationLandscapeLeft,
	OrientationLandscapeRight,
}
