package port

import (
	"context"

	"github.com/theater-ui/theater/internal/domain/entity"
)

// SystemChrome controls the visibility of OS/window chrome around the
// playback surface and carries device-orientation preferences.
//
// Calls are idempotent and best effort; failures must not disturb a
// mode transition.
type SystemChrome interface {
	// SetVisibility shows exactly the chrome elements present (and true)
	// in the given set and hides the rest.
	SetVisibility(ctx context.Context, set entity.ChromeVisibility) error

	// SetOrientations applies a preferred-orientation list. Desktop
	// implementations treat this as a no-op; the method exists so the
	// configuration surface stays compatible with rotatable hosts.
	SetOrientations(ctx context.Context, prefs []entity.Orientation) error
}
