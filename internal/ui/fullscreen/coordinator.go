package fullscreen

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/theater-ui/theater/internal/application/port"
	"github.com/theater-ui/theater/internal/domain/entity"
	"github.com/theater-ui/theater/internal/logging"
	"github.com/theater-ui/theater/internal/ui/mainloop"
	"github.com/theater-ui/theater/internal/ui/presenter"
)

// PresentationHost is the rendering strategy the coordinator drives.
// Implemented by presenter.OverlayHost and presenter.ResizeHost.
type PresentationHost interface {
	// Enter swaps presentation to fullscreen, rendering the given
	// composition where the strategy needs one.
	Enter(ctx context.Context, comp presenter.Composition) error
	// SetViewport applies captured viewport dimensions (resize strategy
	// only; a no-op for overlays).
	SetViewport(ctx context.Context, vp entity.Viewport) error
	// Exit restores inline presentation. Must take effect synchronously.
	Exit(ctx context.Context) error
	// Active reports whether fullscreen presentation is live.
	Active() bool
}

// Deps are the coordinator's collaborators. Native is nil in
// environments presenting via an overlay layer; when non-nil the
// coordinator requests platform fullscreen and runs the reconciliation
// loop against it.
type Deps struct {
	Controls  port.PlaybackControls
	WakeLock  port.WakeLock
	Chrome    port.SystemChrome
	Native    port.NativeFullscreen
	Host      PresentationHost
	Scheduler mainloop.Scheduler
}

// Coordinator owns the cached playback mode and orchestrates the side
// effects of each transition in a fixed order. It runs on the UI event
// loop; re-entrant transition requests while the state machine already
// reached the target mode are no-ops.
type Coordinator struct {
	cfg  resolved
	deps Deps

	mode         entity.PlaybackMode
	bound        bool
	cancelSettle func()
	unsubs       []func()

	logger zerolog.Logger
}

// New creates a coordinator in inline mode. Bind must be called (after
// the rendering context is realized) before the coordinator reacts to
// anything.
func New(ctx context.Context, deps Deps, cfg PresentationConfig) *Coordinator {
	log := logging.FromContext(ctx)

	return &Coordinator{
		cfg:    cfg.resolve(),
		deps:   deps,
		mode:   entity.ModeInline,
		logger: log.With().Str("component", "fullscreen-coordinator").Logger(),
	}
}

// Mode returns the coordinator's cached playback mode.
func (c *Coordinator) Mode() entity.PlaybackMode {
	return c.mode
}

// Fullscreen reports whether fullscreen presentation is active.
func (c *Coordinator) Fullscreen() bool {
	return c.mode.IsFullscreen()
}

// InlineComposition returns the configured inline subtree, for the shell
// to place in the surface's normal flow.
func (c *Coordinator) InlineComposition() presenter.Composition {
	return c.cfg.inlineComp
}

// Bind subscribes to the control model and, when a native surface is
// present, to its fullscreen-change and key-down streams. It applies the
// inline-mode wake lock and chrome, then settles against the control
// model's current state. Idempotent.
func (c *Coordinator) Bind(ctx context.Context) {
	if c.bound {
		return
	}
	c.bound = true

	c.unsubs = append(c.unsubs, c.deps.Controls.Subscribe(func() {
		c.handleControlsChange(ctx)
	}))

	if c.deps.Native != nil {
		c.unsubs = append(c.unsubs, c.deps.Native.SubscribeChange(func() {
			c.reconcileNative(ctx)
		}))
		c.unsubs = append(c.unsubs, c.deps.Native.SubscribeKeyDown(func(ev entity.KeyEvent) bool {
			return c.cfg.keyHandler(c.deps.Controls, ev)
		}))
	}

	if c.cfg.wakeInline {
		c.setWakeLock(ctx, true)
	}
	c.applyChrome(ctx, entity.ModeInline)

	c.logger.Debug().Bool("native", c.deps.Native != nil).Msg("coordinator bound")

	// The control model may already demand fullscreen at bind time.
	c.handleControlsChange(ctx)
}

// Unbind tears the coordinator down: removes subscriptions, cancels any
// pending settle capture, leaves fullscreen if active, and releases the
// wake lock. Safe on every exit path; idempotent.
func (c *Coordinator) Unbind(ctx context.Context) {
	if !c.bound {
		return
	}
	c.bound = false

	for _, unsub := range c.unsubs {
		unsub()
	}
	c.unsubs = nil

	if c.mode.IsFullscreen() {
		c.exit(ctx)
	}
	c.cancelPendingSettle()
	c.setWakeLock(ctx, false)

	c.logger.Debug().Msg("coordinator unbound")
}

// HandleBack intercepts a back-navigation request. While fullscreen it
// consumes the request and asks the control model to exit; inline it
// reports the request unconsumed so default close behavior proceeds.
func (c *Coordinator) HandleBack(ctx context.Context) bool {
	if !c.mode.IsFullscreen() {
		return false
	}

	c.logger.Debug().Msg("back navigation consumed, requesting fullscreen exit")
	c.deps.Controls.ExitFullscreen()
	return true
}

// handleControlsChange drives the state machine from the control model's
// settled flag. Signals that match the current mode are no-ops.
func (c *Coordinator) handleControlsChange(ctx context.Context) {
	want := c.deps.Controls.Fullscreen()
	switch {
	case want && c.mode == entity.ModeInline:
		c.enter(ctx)
	case !want && c.mode == entity.ModeFullscreen:
		c.exit(ctx)
	}
}

// enter runs the inline-to-fullscreen transition. Step order is strict:
// wake-lock reset, mode flag, entry hook, orientation, chrome, then the
// presentation swap.
func (c *Coordinator) enter(ctx context.Context) {
	c.logger.Info().Msg("entering fullscreen")

	// Disable then re-enable to guarantee a clean re-acquire: enabling
	// an already-enabled lock is not idempotent on every backend.
	c.resetWakeLock(ctx, c.cfg.wakeFullscreen)
	c.mode = entity.ModeFullscreen

	if c.cfg.onEnter != nil {
		c.cfg.onEnter()
		// The hook may veto by driving the control model back to inline,
		// which runs the nested exit transition before returning here.
		if c.mode != entity.ModeFullscreen {
			c.logger.Debug().Msg("entry hook vetoed transition, skipping presentation swap")
			return
		}
	}

	c.applyOrientations(ctx, c.cfg.orientFull)
	c.applyChrome(ctx, entity.ModeFullscreen)

	if c.deps.Native != nil {
		if err := c.deps.Native.Request(ctx); err != nil {
			c.logger.Warn().Err(err).Msg("native fullscreen request failed")
		}
		if err := c.deps.Host.Enter(ctx, c.cfg.fullscreenComp); err != nil {
			c.logger.Warn().Err(err).Msg("presentation enter failed")
		}
		c.scheduleViewportCapture(ctx)
		return
	}

	if err := c.deps.Host.Enter(ctx, c.cfg.fullscreenComp); err != nil {
		c.logger.Warn().Err(err).Msg("presentation enter failed")
	}
}

// exit runs the fullscreen-to-inline transition, mirroring enter: wake
// lock, mode flag, exit hook, presentation restore, then orientation and
// chrome for inline mode.
func (c *Coordinator) exit(ctx context.Context) {
	c.logger.Info().Msg("exiting fullscreen")

	c.resetWakeLock(ctx, c.cfg.wakeInline)
	c.mode = entity.ModeInline

	if c.cfg.onExit != nil {
		c.cfg.onExit()
		if c.mode != entity.ModeInline {
			c.logger.Debug().Msg("exit hook re-entered fullscreen, skipping presentation restore")
			return
		}
	}

	if c.deps.Native != nil {
		c.cancelPendingSettle()
		if err := c.deps.Native.Exit(ctx); err != nil {
			c.logger.Warn().Err(err).Msg("native fullscreen exit failed")
		}
	}
	if err := c.deps.Host.Exit(ctx); err != nil {
		c.logger.Warn().Err(err).Msg("presentation exit failed")
	}

	c.applyOrientations(ctx, c.cfg.orientInline)
	c.applyChrome(ctx, entity.ModeInline)
}

// reconcileNative keeps the control model truthful when the platform
// leaves (or enters) fullscreen through a gesture that bypasses the
// application's own control path entirely.
func (c *Coordinator) reconcileNative(ctx context.Context) {
	actual := c.deps.Native.Fullscreened()
	want := c.deps.Controls.Fullscreen()

	switch {
	case actual && !want:
		c.logger.Debug().Msg("native reports fullscreen, syncing control model")
		c.deps.Controls.EnterFullscreen()
	case !actual && want:
		c.logger.Debug().Msg("native left fullscreen, syncing control model")
		c.deps.Controls.ExitFullscreen()
	}
}

// scheduleViewportCapture waits out the settle delay, then applies the
// native surface's dimensions to the host. The callback re-checks the
// mode so a reverse transition during the wait discards the capture.
func (c *Coordinator) scheduleViewportCapture(ctx context.Context) {
	c.cancelPendingSettle()
	c.cancelSettle = c.deps.Scheduler.After(c.cfg.settleDelay, func() {
		c.cancelSettle = nil
		if c.mode != entity.ModeFullscreen {
			c.logger.Debug().Msg("mode changed during settle delay, discarding capture")
			return
		}
		vp := c.deps.Native.Viewport()
		if err := c.deps.Host.SetViewport(ctx, vp); err != nil {
			c.logger.Warn().Err(err).Msg("viewport apply failed")
		}
	})
}

func (c *Coordinator) cancelPendingSettle() {
	if c.cancelSettle != nil {
		c.cancelSettle()
		c.cancelSettle = nil
	}
}

// resetWakeLock drops the lock and re-acquires it when the target mode
// keeps it enabled. Failures never block the transition.
func (c *Coordinator) resetWakeLock(ctx context.Context, enabled bool) {
	c.setWakeLock(ctx, false)
	if enabled {
		c.setWakeLock(ctx, true)
	}
}

func (c *Coordinator) setWakeLock(ctx context.Context, enabled bool) {
	if c.deps.WakeLock == nil {
		return
	}
	if err := c.deps.WakeLock.Set(ctx, enabled); err != nil {
		c.logger.Warn().Err(err).Bool("enabled", enabled).Msg("wake lock call failed")
	}
}

func (c *Coordinator) applyChrome(ctx context.Context, mode entity.PlaybackMode) {
	if c.deps.Chrome == nil {
		return
	}
	set := c.cfg.chromeInline
	if mode.IsFullscreen() {
		set = c.cfg.chromeFull
	}
	if err := c.deps.Chrome.SetVisibility(ctx, set); err != nil {
		c.logger.Warn().Err(err).Str("mode", mode.String()).Msg("chrome visibility call failed")
	}
}

// applyOrientations forwards the preference list to the chrome port.
// Desktop backends no-op; the call is still made so the configuration
// surface stays honest.
func (c *Coordinator) applyOrientations(ctx context.Context, prefs []entity.Orientation) {
	if c.deps.Chrome == nil {
		return
	}
	if err := c.deps.Chrome.SetOrientations(ctx, prefs); err != nil {
		c.logger.Warn().Err(err).Msg("orientation call failed")
	}
}
