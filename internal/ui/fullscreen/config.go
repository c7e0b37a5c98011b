// Package fullscreen owns the inline/fullscreen transition state
// machine. The Coordinator is the single authority deciding when a mode
// transition occurs; it reconciles programmatic requests, native
// fullscreen-change notifications, and back-navigation into one strict
// side-effect order per transition.
package fullscreen

import (
	"time"

	"github.com/theater-ui/theater/internal/domain/entity"
	"github.com/theater-ui/theater/internal/ui/input"
	"github.com/theater-ui/theater/internal/ui/presenter"
)

// DefaultSettleDelay is the fixed wait after requesting native
// fullscreen before viewport dimensions are captured, allowing the
// platform's geometry to stabilize.
const DefaultSettleDelay = 100 * time.Millisecond

// PresentationConfig is supplied once at construction and immutable for
// the coordinator's lifetime.
type PresentationConfig struct {
	// InlineComposition is the subtree rendered in inline mode.
	InlineComposition presenter.Composition

	// FullscreenComposition is the subtree rendered in the fullscreen
	// overlay layer. Nil reuses InlineComposition.
	FullscreenComposition presenter.Composition

	// ChromeInline and ChromeFullscreen are the system-chrome visibility
	// sets per mode. Nil defaults to everything visible inline and
	// nothing visible in fullscreen.
	ChromeInline     entity.ChromeVisibility
	ChromeFullscreen entity.ChromeVisibility

	// OrientationsInline and OrientationsFullscreen are preferred
	// device-orientation lists per mode. Carried for interface
	// compatibility; this variant applies them through a no-op path.
	OrientationsInline     []entity.Orientation
	OrientationsFullscreen []entity.Orientation

	// WakeLockInline and WakeLockFullscreen enable the wake lock per
	// mode. Nil defaults to enabled.
	WakeLockInline     *bool
	WakeLockFullscreen *bool

	// OnEnter fires once per inline-to-fullscreen transition, after the
	// mode flag flips and before any visual change. OnExit mirrors it.
	OnEnter func()
	OnExit  func()

	// KeyHandler handles key-down events from the platform surface.
	// Nil defaults to input.DefaultKeyHandler.
	KeyHandler input.KeyHandler

	// SettleDelay overrides DefaultSettleDelay when positive.
	SettleDelay time.Duration
}

// resolved is the defaulted, frozen form of PresentationConfig.
type resolved struct {
	inlineComp      presenter.Composition
	fullscreenComp  presenter.Composition
	chromeInline    entity.ChromeVisibility
	chromeFull      entity.ChromeVisibility
	orientInline    []entity.Orientation
	orientFull      []entity.Orientation
	wakeInline      bool
	wakeFullscreen  bool
	onEnter, onExit func()
	keyHandler      input.KeyHandler
	settleDelay     time.Duration
}

func (c PresentationConfig) resolve() resolved {
	r := resolved{
		inlineComp:     c.InlineComposition,
		fullscreenComp: c.FullscreenComposition,
		chromeInline:   c.ChromeInline.Clone(),
		chromeFull:     c.ChromeFullscreen.Clone(),
		orientInline:   append([]entity.Orientation(nil), c.OrientationsInline...),
		orientFull:     append([]entity.Orientation(nil), c.OrientationsFullscreen...),
		wakeInline:     true,
		wakeFullscreen: true,
		onEnter:        c.OnEnter,
		onExit:         c.OnExit,
		keyHandler:     c.KeyHandler,
		settleDelay:    c.SettleDelay,
	}

	if r.fullscreenComp == nil {
		r.fullscreenComp = r.inlineComp
	}
	if r.chromeInline == nil {
		r.chromeInline = entity.AllChromeVisible()
	}
	if r.chromeFull == nil {
		r.chromeFull = entity.NoChromeVisible()
	}
	if c.WakeLockInline != nil {
		r.wakeInline = *c.WakeLockInline
	}
	if c.WakeLockFullscreen != nil {
		r.wakeFullscreen = *c.WakeLockFullscreen
	}
	if r.keyHandler == nil {
		r.keyHandler = input.DefaultKeyHandler
	}
	if r.settleDelay <= 0 {
		r.settleDelay = DefaultSettleDelay
	}
	return r
}
