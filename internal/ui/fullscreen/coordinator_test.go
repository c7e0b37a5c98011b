package fullscreen

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/theater-ui/theater/internal/application/port"
	"github.com/theater-ui/theater/internal/domain/entity"
	"github.com/theater-ui/theater/internal/playback"
	"github.com/theater-ui/theater/internal/ui/mainloop"
	"github.com/theater-ui/theater/internal/ui/presenter"
)

// recorder collects adapter calls in arrival order so tests can assert
// the strict per-transition side-effect sequence.
type recorder struct {
	calls []string
}

func (r *recorder) add(call string) {
	r.calls = append(r.calls, call)
}

type fakeWakeLock struct {
	rec     *recorder
	enabled bool
}

func (w *fakeWakeLock) Set(_ context.Context, enabled bool) error {
	if enabled {
		w.rec.add("wake:on")
	} else {
		w.rec.add("wake:off")
	}
	w.enabled = enabled
	return nil
}

func (w *fakeWakeLock) Enabled() bool { return w.enabled }
func (w *fakeWakeLock) Close() error  { return nil }

type fakeChrome struct {
	rec     *recorder
	lastSet entity.ChromeVisibility
}

func (c *fakeChrome) SetVisibility(_ context.Context, set entity.ChromeVisibility) error {
	if set.Visible(entity.ChromeTitleBar) {
		c.rec.add("chrome:inline")
	} else {
		c.rec.add("chrome:fullscreen")
	}
	c.lastSet = set
	return nil
}

func (c *fakeChrome) SetOrientations(_ context.Context, _ []entity.Orientation) error {
	c.rec.add("orientations")
	return nil
}

type fakeNative struct {
	rec        *recorder
	fullscreen bool
	viewport   entity.Viewport
	changeFns  []func()
	keyDownFns []func(entity.KeyEvent) bool
}

func (n *fakeNative) Request(context.Context) error {
	n.rec.add("native:request")
	n.fullscreen = true
	return nil
}

func (n *fakeNative) Exit(context.Context) error {
	n.rec.add("native:exit")
	n.fullscreen = false
	return nil
}

func (n *fakeNative) Fullscreened() bool        { return n.fullscreen }
func (n *fakeNative) Viewport() entity.Viewport { return n.viewport }

func (n *fakeNative) SubscribeChange(fn func()) func() {
	n.changeFns = append(n.changeFns, fn)
	return func() { n.changeFns = nil }
}

func (n *fakeNative) SubscribeKeyDown(fn func(entity.KeyEvent) bool) func() {
	n.keyDownFns = append(n.keyDownFns, fn)
	return func() { n.keyDownFns = nil }
}

// fireChange simulates a platform fullscreen-change notification.
func (n *fakeNative) fireChange(fullscreen bool) {
	n.fullscreen = fullscreen
	for _, fn := range n.changeFns {
		fn()
	}
}

// pressKey simulates a platform key-down event, returning whether a
// handler consumed it.
func (n *fakeNative) pressKey(name string) bool {
	for _, fn := range n.keyDownFns {
		if fn(entity.KeyEvent{Name: name}) {
			return true
		}
	}
	return false
}

type fakeHost struct {
	rec      *recorder
	active   bool
	viewport *entity.Viewport
}

func (h *fakeHost) Enter(_ context.Context, _ presenter.Composition) error {
	h.rec.add("host:enter")
	h.active = true
	return nil
}

func (h *fakeHost) SetViewport(_ context.Context, vp entity.Viewport) error {
	h.rec.add("host:viewport")
	h.viewport = &vp
	return nil
}

func (h *fakeHost) Exit(context.Context) error {
	h.rec.add("host:exit")
	h.active = false
	h.viewport = nil
	return nil
}

func (h *fakeHost) Active() bool { return h.active }

type harness struct {
	rec      *recorder
	controls *playback.Controls
	wake     *fakeWakeLock
	chrome   *fakeChrome
	native   *fakeNative
	host     *fakeHost
	sched    *mainloop.ManualScheduler
	coord    *Coordinator
}

func newHarness(t *testing.T, cfg PresentationConfig) *harness {
	t.Helper()

	rec := &recorder{}
	h := &harness{
		rec:      rec,
		controls: playback.NewControls(),
		wake:     &fakeWakeLock{rec: rec},
		chrome:   &fakeChrome{rec: rec},
		native:   &fakeNative{rec: rec, viewport: entity.Viewport{Width: 1920, Height: 1080}},
		host:     &fakeHost{rec: rec},
		sched:    mainloop.NewManualScheduler(),
	}
	h.coord = New(context.Background(), Deps{
		Controls:  h.controls,
		WakeLock:  h.wake,
		Chrome:    h.chrome,
		Native:    h.native,
		Host:      h.host,
		Scheduler: h.sched,
	}, cfg)
	return h
}

func TestCoordinator_StartsInline(t *testing.T) {
	h := newHarness(t, PresentationConfig{})

	assert.Equal(t, entity.ModeInline, h.coord.Mode())
	assert.False(t, h.coord.Fullscreen())
	assert.Empty(t, h.rec.calls, "no side effects before Bind")
}

func TestCoordinator_BindAppliesInlinePolicy(t *testing.T) {
	h := newHarness(t, PresentationConfig{})
	h.coord.Bind(context.Background())

	assert.True(t, h.wake.Enabled())
	assert.True(t, h.chrome.lastSet.Visible(entity.ChromeTitleBar))
	assert.Equal(t, entity.ModeInline, h.coord.Mode())
}

func TestCoordinator_BindHonorsDisabledInlineWakeLock(t *testing.T) {
	off := false
	h := newHarness(t, PresentationConfig{WakeLockInline: &off})
	h.coord.Bind(context.Background())

	assert.False(t, h.wake.Enabled())
	assert.NotContains(t, h.rec.calls, "wake:on")
}

func TestCoordinator_EnterRunsStrictSideEffectOrder(t *testing.T) {
	h := newHarness(t, PresentationConfig{})
	h.coord.Bind(context.Background())
	h.rec.calls = nil

	h.controls.EnterFullscreen()

	require.Equal(t, entity.ModeFullscreen, h.coord.Mode())
	assert.Equal(t, []string{
		"wake:off",
		"wake:on",
		"orientations",
		"chrome:fullscreen",
		"native:request",
		"host:enter",
	}, h.rec.calls)
}

func TestCoordinator_EnterHookFiresAfterModeFlipBeforeVisuals(t *testing.T) {
	var hookMode entity.PlaybackMode
	var hookCalls int
	var h *harness
	h = newHarness(t, PresentationConfig{
		OnEnter: func() {
			hookCalls++
			hookMode = h.coord.Mode()
			assert.False(t, h.host.Active(), "no visual change before the hook")
		},
	})
	h.coord.Bind(context.Background())

	h.controls.EnterFullscreen()

	assert.Equal(t, 1, hookCalls)
	assert.Equal(t, entity.ModeFullscreen, hookMode)
}

func TestCoordinator_EnterHookVetoLeavesNoFullscreenArtifacts(t *testing.T) {
	var h *harness
	h = newHarness(t, PresentationConfig{
		OnEnter: func() {
			// Veto: drive the control model straight back to inline.
			h.controls.ExitFullscreen()
		},
	})
	h.coord.Bind(context.Background())
	h.rec.calls = nil

	h.controls.EnterFullscreen()

	assert.Equal(t, entity.ModeInline, h.coord.Mode())
	assert.False(t, h.host.Active())
	assert.Nil(t, h.host.viewport)
	assert.Zero(t, h.sched.PendingTimers())
	assert.NotContains(t, h.rec.calls, "native:request")
	assert.NotContains(t, h.rec.calls, "host:enter")
	assert.NotContains(t, h.rec.calls, "chrome:fullscreen")
	assert.Equal(t, "chrome:inline", h.rec.calls[len(h.rec.calls)-1],
		"the nested exit leaves inline chrome applied last")
}

func TestCoordinator_ExitHookReentryKeepsFullscreenLive(t *testing.T) {
	var h *harness
	reentered := false
	h = newHarness(t, PresentationConfig{
		OnExit: func() {
			if !reentered {
				reentered = true
				h.controls.EnterFullscreen()
			}
		},
	})
	h.coord.Bind(context.Background())
	h.controls.EnterFullscreen()
	h.rec.calls = nil

	h.controls.ExitFullscreen()

	assert.Equal(t, entity.ModeFullscreen, h.coord.Mode())
	assert.True(t, h.host.Active())
	assert.NotContains(t, h.rec.calls, "native:exit")
	assert.NotContains(t, h.rec.calls, "host:exit")
	assert.NotContains(t, h.rec.calls, "chrome:inline")
}

func TestCoordinator_ViewportCapturedAfterSettleDelay(t *testing.T) {
	h := newHarness(t, PresentationConfig{})
	h.coord.Bind(context.Background())

	h.controls.EnterFullscreen()
	require.Nil(t, h.host.viewport, "capture waits out the settle delay")
	require.Equal(t, 1, h.sched.PendingTimers())

	h.sched.FireTimers()

	require.NotNil(t, h.host.viewport)
	assert.Equal(t, entity.Viewport{Width: 1920, Height: 1080}, *h.host.viewport)
}

func TestCoordinator_ReverseTransitionDiscardsPendingCapture(t *testing.T) {
	h := newHarness(t, PresentationConfig{})
	h.coord.Bind(context.Background())

	h.controls.EnterFullscreen()
	require.Equal(t, 1, h.sched.PendingTimers())

	// Exit lands before the settle delay elapses.
	h.controls.ExitFullscreen()
	h.sched.FireTimers()

	assert.Nil(t, h.host.viewport)
	assert.Equal(t, entity.ModeInline, h.coord.Mode())
}

func TestCoordinator_ExitMirrorsEnter(t *testing.T) {
	h := newHarness(t, PresentationConfig{})
	h.coord.Bind(context.Background())
	h.controls.EnterFullscreen()
	h.rec.calls = nil

	h.controls.ExitFullscreen()

	require.Equal(t, entity.ModeInline, h.coord.Mode())
	assert.Equal(t, []string{
		"wake:off",
		"wake:on",
		"native:exit",
		"host:exit",
		"orientations",
		"chrome:inline",
	}, h.rec.calls)
}

func TestCoordinator_RedundantRequestsAreNoOps(t *testing.T) {
	h := newHarness(t, PresentationConfig{})
	h.coord.Bind(context.Background())
	h.controls.EnterFullscreen()
	h.controls.ExitFullscreen()
	h.rec.calls = nil

	// The flag is already clear: the model swallows the mutation and no
	// change notification reaches the coordinator.
	h.controls.ExitFullscreen()
	h.controls.ExitFullscreen()

	assert.Empty(t, h.rec.calls)
	assert.Equal(t, entity.ModeInline, h.coord.Mode())
}

func TestCoordinator_WakeLockResetIsDisableThenEnable(t *testing.T) {
	h := newHarness(t, PresentationConfig{})
	h.coord.Bind(context.Background())
	h.rec.calls = nil

	h.controls.EnterFullscreen()

	require.GreaterOrEqual(t, len(h.rec.calls), 2)
	assert.Equal(t, "wake:off", h.rec.calls[0])
	assert.Equal(t, "wake:on", h.rec.calls[1])
}

func TestCoordinator_FullscreenWakeLockDisabledSkipsReacquire(t *testing.T) {
	off := false
	h := newHarness(t, PresentationConfig{WakeLockFullscreen: &off})
	h.coord.Bind(context.Background())
	h.rec.calls = nil

	h.controls.EnterFullscreen()

	assert.Equal(t, "wake:off", h.rec.calls[0])
	assert.NotContains(t, h.rec.calls, "wake:on")
	assert.False(t, h.wake.Enabled())
}

func TestCoordinator_NativeEscapeGestureSyncsControlModel(t *testing.T) {
	h := newHarness(t, PresentationConfig{})
	h.coord.Bind(context.Background())
	h.controls.EnterFullscreen()
	require.True(t, h.native.fullscreen)

	// The window manager pulled the toplevel out of fullscreen without
	// going through the control model.
	h.native.fireChange(false)

	assert.False(t, h.controls.Fullscreen())
	assert.Equal(t, entity.ModeInline, h.coord.Mode())
	assert.False(t, h.host.Active())
}

func TestCoordinator_NativeEntrySyncsControlModel(t *testing.T) {
	h := newHarness(t, PresentationConfig{})
	h.coord.Bind(context.Background())

	h.native.fireChange(true)

	assert.True(t, h.controls.Fullscreen())
	assert.Equal(t, entity.ModeFullscreen, h.coord.Mode())
}

func TestCoordinator_NativeChangeMatchingModelIsNoOp(t *testing.T) {
	h := newHarness(t, PresentationConfig{})
	h.coord.Bind(context.Background())
	h.controls.EnterFullscreen()
	h.rec.calls = nil

	// The platform confirms what the model already holds.
	h.native.fireChange(true)

	assert.Empty(t, h.rec.calls)
	assert.Equal(t, entity.ModeFullscreen, h.coord.Mode())
}

func TestCoordinator_HandleBackConsumedOnlyWhileFullscreen(t *testing.T) {
	h := newHarness(t, PresentationConfig{})
	h.coord.Bind(context.Background())

	assert.False(t, h.coord.HandleBack(context.Background()), "inline: request passes through")

	h.controls.EnterFullscreen()
	assert.True(t, h.coord.HandleBack(context.Background()), "fullscreen: request consumed")
	assert.Equal(t, entity.ModeInline, h.coord.Mode())

	assert.False(t, h.coord.HandleBack(context.Background()), "a second back is not consumed")
}

func TestCoordinator_DefaultKeysDriveTransitions(t *testing.T) {
	h := newHarness(t, PresentationConfig{})
	h.coord.Bind(context.Background())

	assert.False(t, h.native.pressKey("Escape"), "escape passes through inline")

	assert.True(t, h.native.pressKey("f"))
	assert.Equal(t, entity.ModeFullscreen, h.coord.Mode())

	assert.True(t, h.native.pressKey("Escape"))
	assert.Equal(t, entity.ModeInline, h.coord.Mode())
}

func TestCoordinator_CustomKeyHandler(t *testing.T) {
	var seen []string
	h := newHarness(t, PresentationConfig{
		KeyHandler: func(_ port.PlaybackControls, ev entity.KeyEvent) bool {
			seen = append(seen, ev.Name)
			return false
		},
	})
	h.coord.Bind(context.Background())

	assert.False(t, h.native.pressKey("f"))
	assert.Equal(t, []string{"f"}, seen)
	assert.Equal(t, entity.ModeInline, h.coord.Mode())
}

func TestCoordinator_BindSettlesAgainstPreexistingDemand(t *testing.T) {
	h := newHarness(t, PresentationConfig{})
	h.controls.EnterFullscreen()

	h.coord.Bind(context.Background())

	assert.Equal(t, entity.ModeFullscreen, h.coord.Mode())
	assert.True(t, h.host.Active())
}

func TestCoordinator_UnbindExitsAndReleasesEverything(t *testing.T) {
	h := newHarness(t, PresentationConfig{})
	h.coord.Bind(context.Background())
	h.controls.EnterFullscreen()

	h.coord.Unbind(context.Background())

	assert.Equal(t, entity.ModeInline, h.coord.Mode())
	assert.False(t, h.host.Active())
	assert.False(t, h.wake.Enabled())
	assert.Zero(t, h.sched.PendingTimers())

	// Subscriptions are gone: further model changes do nothing.
	h.rec.calls = nil
	h.controls.EnterFullscreen()
	assert.Empty(t, h.rec.calls)
}

func TestCoordinator_UnbindIsIdempotent(t *testing.T) {
	h := newHarness(t, PresentationConfig{})
	h.coord.Bind(context.Background())
	h.coord.Unbind(context.Background())
	h.rec.calls = nil

	h.coord.Unbind(context.Background())

	assert.Empty(t, h.rec.calls)
}

func TestCoordinator_OverlayEnvironmentSkipsNativePath(t *testing.T) {
	rec := &recorder{}
	controls := playback.NewControls()
	wake := &fakeWakeLock{rec: rec}
	chrome := &fakeChrome{rec: rec}
	host := &fakeHost{rec: rec}
	sched := mainloop.NewManualScheduler()

	coord := New(context.Background(), Deps{
		Controls:  controls,
		WakeLock:  wake,
		Chrome:    chrome,
		Native:    nil,
		Host:      host,
		Scheduler: sched,
	}, PresentationConfig{})
	coord.Bind(context.Background())
	rec.calls = nil

	controls.EnterFullscreen()

	assert.Equal(t, []string{
		"wake:off",
		"wake:on",
		"orientations",
		"chrome:fullscreen",
		"host:enter",
	}, rec.calls)
	assert.Zero(t, sched.PendingTimers(), "no viewport capture without a native surface")
}

func TestPresentationConfig_Defaults(t *testing.T) {
	r := PresentationConfig{}.resolve()

	assert.True(t, r.chromeInline.Visible(entity.ChromeTitleBar))
	assert.False(t, r.chromeFull.Visible(entity.ChromeTitleBar))
	assert.True(t, r.wakeInline)
	assert.True(t, r.wakeFullscreen)
	assert.NotNil(t, r.keyHandler)
	assert.Equal(t, DefaultSettleDelay, r.settleDelay)
}

func TestPresentationConfig_FullscreenCompositionFallsBackToInline(t *testing.T) {
	inline := "inline-subtree"
	r := PresentationConfig{InlineComposition: inline}.resolve()

	assert.Equal(t, inline, r.fullscreenComp)
}

func TestPresentationConfig_SettleDelayOverride(t *testing.T) {
	r := PresentationConfig{SettleDelay: 250 * time.Millisecond}.resolve()

	assert.Equal(t, 250*time.Millisecond, r.settleDelay)
}
