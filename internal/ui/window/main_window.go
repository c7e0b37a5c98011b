// Package window provides the GTK4 playback window: the render surface
// the presentation hosts draw on, the native fullscreen surface the
// coordinator reconciles against, and the system-chrome backend.
package window

import (
	"context"

	"github.com/jwijenbergh/puregotk/v4/gdk"
	"github.com/jwijenbergh/puregotk/v4/gobject"
	"github.com/jwijenbergh/puregotk/v4/gtk"
	"github.com/rs/zerolog"
	"github.com/theater-ui/theater/internal/config"
	"github.com/theater-ui/theater/internal/domain/entity"
	"github.com/theater-ui/theater/internal/logging"
	"github.com/theater-ui/theater/internal/ui/presenter"
)

const (
	defaultWidth  = 1024
	defaultHeight = 576
	windowTitle   = "Theater"
)

// MainWindow is the playback window. It implements presenter.Surface,
// port.NativeFullscreen, port.SystemChrome, and lifecycle.Host against a
// real GTK toplevel.
type MainWindow struct {
	window          *gtk.ApplicationWindow
	rootBox         *gtk.Box     // Vertical: inline content flow
	contentOverlay  *gtk.Overlay // Overlay target for the fullscreen layer
	inlineArea      *gtk.Box     // Container for the inline composition
	currentInline   *gtk.Widget  // Track inline content for removal on swap
	overlayWidget   *gtk.Widget  // Live fullscreen layer, nil when inline
	overlayBorrowed bool         // Layer is the inline widget, reparented

	onMounted         func()
	onUnmount         func()
	onBack            func() bool
	changeSubs        []func()
	keySubs           []func(entity.KeyEvent) bool
	nextSubID         int
	changeSubIDs      []int
	keySubIDs         []int
	retainedCallbacks []any // GTK callbacks must outlive the connect call

	cfg    *config.Config
	logger zerolog.Logger
}

// New creates the playback window.
func New(ctx context.Context, app *gtk.Application, cfg *config.Config) (*MainWindow, error) {
	log := logging.FromContext(ctx)

	mw := &MainWindow{
		cfg:    cfg,
		logger: log.With().Str("component", "main-window").Logger(),
	}

	mw.window = gtk.NewApplicationWindow(app)
	if mw.window == nil {
		return nil, ErrWindowCreationFailed
	}

	mw.window.SetTitle(windowTitle)
	width, height := defaultWidth, defaultHeight
	if cfg != nil && cfg.Window.Width > 0 && cfg.Window.Height > 0 {
		width, height = cfg.Window.Width, cfg.Window.Height
	}
	mw.window.SetDefaultSize(int32(width), int32(height))

	mw.rootBox = gtk.NewBox(gtk.OrientationVerticalValue, 0)
	if mw.rootBox == nil {
		mw.window.Unref()
		return nil, ErrWidgetCreationFailed("rootBox")
	}
	mw.rootBox.SetHexpand(true)
	mw.rootBox.SetVexpand(true)
	mw.rootBox.SetVisible(true)

	mw.contentOverlay = gtk.NewOverlay()
	if mw.contentOverlay == nil {
		mw.rootBox.Unref()
		mw.window.Unref()
		return nil, ErrWidgetCreationFailed("contentOverlay")
	}
	mw.contentOverlay.SetHexpand(true)
	mw.contentOverlay.SetVexpand(true)
	mw.contentOverlay.SetVisible(true)

	mw.inlineArea = gtk.NewBox(gtk.OrientationVerticalValue, 0)
	if mw.inlineArea == nil {
		mw.contentOverlay.Unref()
		mw.rootBox.Unref()
		mw.window.Unref()
		return nil, ErrWidgetCreationFailed("inlineArea")
	}
	mw.inlineArea.SetHexpand(true)
	mw.inlineArea.SetVexpand(true)
	mw.inlineArea.SetVisible(true)
	mw.inlineArea.AddCssClass("inline-area")

	mw.contentOverlay.SetChild(&mw.inlineArea.Widget)
	mw.rootBox.Append(&mw.contentOverlay.Widget)
	mw.window.SetChild(&mw.rootBox.Widget)

	mw.connectLifecycle()
	mw.connectFullscreenNotify()
	mw.attachKeyController()

	return mw, nil
}

// connectLifecycle wires GTK map/destroy/close-request to the lifecycle
// callbacks. Mount fires on map, after the window has a realized
// rendering context and initial layout.
func (mw *MainWindow) connectLifecycle() {
	mapCb := func(_ gtk.Widget) {
		if mw.onMounted != nil {
			mw.onMounted()
		}
	}
	mw.retainedCallbacks = append(mw.retainedCallbacks, mapCb)
	mw.window.ConnectMap(&mapCb)

	destroyCb := func(_ gtk.Widget) {
		if mw.onUnmount != nil {
			mw.onUnmount()
		}
	}
	mw.retainedCallbacks = append(mw.retainedCallbacks, destroyCb)
	mw.window.ConnectDestroy(&destroyCb)

	// Close-request doubles as the desktop's back-navigation signal:
	// returning true consumes it and keeps the window open.
	closeCb := func(_ gtk.Window) bool {
		if mw.onBack != nil && mw.onBack() {
			mw.logger.Debug().Msg("close request consumed")
			return true
		}
		return false
	}
	mw.retainedCallbacks = append(mw.retainedCallbacks, closeCb)
	mw.window.ConnectCloseRequest(&closeCb)
}

func (mw *MainWindow) connectFullscreenNotify() {
	cb := func(_ gobject.Object, _ uintptr) {
		for _, fn := range mw.changeSubs {
			if fn != nil {
				fn()
			}
		}
	}
	mw.retainedCallbacks = append(mw.retainedCallbacks, cb)
	notify := func(clsPtr uintptr, pspecPtr uintptr) {
		obj := gobject.Object{}
		obj.Ptr = clsPtr
		cb(obj, pspecPtr)
	}
	mw.retainedCallbacks = append(mw.retainedCallbacks, notify)
	gobject.SignalConnect(mw.window.GoPointer(), "notify::fullscreened", glib.NewCallback(&notify))
}

func (mw *MainWindow) attachKeyController() {
	controller := gtk.NewEventControllerKey()
	if controller == nil {
		return
	}
	controller.SetPropagationPhase(gtk.PhaseCaptureValue)

	keyPressedCb := func(_ gtk.EventControllerKey, keyval uint, _ uint, _ gdk.ModifierType) bool {
		ev := entity.KeyEvent{Name: keyvalName(keyval), Keyval: keyval}
		for _, fn := range mw.keySubs {
			if fn != nil && fn(ev) {
				return true
			}
		}
		return false
	}
	mw.retainedCallbacks = append(mw.retainedCallbacks, keyPressedCb)
	controller.ConnectKeyPressed(&keyPressedCb)
	mw.window.AddController(&controller.EventController)
}

func keyvalName(keyval uint) string {
	switch keyval {
	case uint(gdk.KEY_Escape):
		return "Escape"
	case uint(gdk.KEY_F11):
		return "F11"
	case uint(gdk.KEY_f):
		return "f"
	case uint(gdk.KEY_space):
		return "space"
	}
	return ""
}

// Show makes the window visible.
func (mw *MainWindow) Show() {
	mw.window.Present()
}

// Close closes the window.
func (mw *MainWindow) Close() {
	mw.window.Close()
}

// Window returns the underlying GTK window.
func (mw *MainWindow) Window() *gtk.ApplicationWindow {
	return mw.window
}

// --- lifecycle.Host ---

// OnMounted registers the mount callback (fired on GTK map).
func (mw *MainWindow) OnMounted(fn func()) { mw.onMounted = fn }

// OnUnmount registers the unmount callback (fired on GTK destroy).
func (mw *MainWindow) OnUnmount(fn func()) { mw.onUnmount = fn }

// OnBackRequest registers the back-navigation interceptor (fired on
// close-request).
func (mw *MainWindow) OnBackRequest(fn func() bool) { mw.onBack = fn }

// --- presenter.Surface ---

// ShowInline places the composition in the inline flow at natural
// bounds, removing any previous inline content.
func (mw *MainWindow) ShowInline(_ context.Context, c presenter.Composition) error {
	widget, err := asWidget(c)
	if err != nil {
		return err
	}

	if mw.currentInline != nil {
		mw.inlineArea.Remove(mw.currentInline)
		mw.currentInline = nil
	}
	if widget != nil {
		widget.SetVisible(true)
		mw.inlineArea.Append(widget)
		mw.currentInline = widget
	}
	return nil
}

// ResizeInline stretches the inline container to the given dimensions.
func (mw *MainWindow) ResizeInline(_ context.Context, vp entity.Viewport) error {
	mw.inlineArea.SetSizeRequest(vp.Width, vp.Height)
	mw.logger.Debug().Int("width", vp.Width).Int("height", vp.Height).Msg("inline area resized")
	return nil
}

// RestoreInline returns the inline container to natural bounds.
func (mw *MainWindow) RestoreInline(context.Context) error {
	mw.inlineArea.SetSizeRequest(-1, -1)
	return nil
}

// InsertOverlay places the composition as a layer covering the window.
// When the composition is the live inline widget (the default when no
// separate fullscreen composition is configured), it is reparented out
// of the inline flow first: GTK refuses to add a widget that already has
// a parent.
func (mw *MainWindow) InsertOverlay(_ context.Context, c presenter.Composition) error {
	widget, err := asWidget(c)
	if err != nil {
		return err
	}
	if widget == nil {
		return ErrWidgetCreationFailed("overlay composition")
	}

	if widget == mw.currentInline {
		mw.inlineArea.Remove(widget)
		mw.overlayBorrowed = true
	}

	widget.SetHexpand(true)
	widget.SetVexpand(true)
	widget.SetVisible(true)
	mw.contentOverlay.AddOverlay(widget)
	mw.overlayWidget = widget
	return nil
}

// RemoveOverlay removes the live fullscreen layer, returning a borrowed
// inline widget to the inline flow.
func (mw *MainWindow) RemoveOverlay(context.Context) error {
	if mw.overlayWidget == nil {
		return nil
	}
	mw.contentOverlay.RemoveOverlay(mw.overlayWidget)
	if mw.overlayBorrowed {
		mw.inlineArea.Append(mw.overlayWidget)
		mw.overlayBorrowed = false
	}
	mw.overlayWidget = nil
	return nil
}

// --- port.NativeFullscreen ---

// Request asks the window manager for fullscreen.
func (mw *MainWindow) Request(context.Context) error {
	mw.window.Fullscreen()
	return nil
}

// Exit leaves window-manager fullscreen.
func (mw *MainWindow) Exit(context.Context) error {
	mw.window.Unfullscreen()
	return nil
}

// Fullscreened reports the window's actual fullscreen state. GTK exposes
// a direct query, so no geometry heuristic is needed here.
func (mw *MainWindow) Fullscreened() bool {
	return mw.window.IsFullscreen()
}

// Viewport returns the current content dimensions.
func (mw *MainWindow) Viewport() entity.Viewport {
	return entity.Viewport{
		Width:  mw.contentOverlay.GetAllocatedWidth(),
		Height: mw.contentOverlay.GetAllocatedHeight(),
	}
}

// SubscribeChange registers a fullscreen-state-change callback.
func (mw *MainWindow) SubscribeChange(fn func()) (unsubscribe func()) {
	id := mw.nextSubID
	mw.nextSubID++
	mw.changeSubs = append(mw.changeSubs, fn)
	mw.changeSubIDs = append(mw.changeSubIDs, id)
	return func() { mw.removeChangeSub(id) }
}

// SubscribeKeyDown registers a key-down callback.
func (mw *MainWindow) SubscribeKeyDown(fn func(entity.KeyEvent) bool) (unsubscribe func()) {
	id := mw.nextSubID
	mw.nextSubID++
	mw.keySubs = append(mw.keySubs, fn)
	mw.keySubIDs = append(mw.keySubIDs, id)
	return func() { mw.removeKeySub(id) }
}

func (mw *MainWindow) removeChangeSub(id int) {
	for i, subID := range mw.changeSubIDs {
		if subID == id {
			mw.changeSubs = append(mw.changeSubs[:i], mw.changeSubs[i+1:]...)
			mw.changeSubIDs = append(mw.changeSubIDs[:i], mw.changeSubIDs[i+1:]...)
			return
		}
	}
}

func (mw *MainWindow) removeKeySub(id int) {
	for i, subID := range mw.keySubIDs {
		if subID == id {
			mw.keySubs = append(mw.keySubs[:i], mw.keySubs[i+1:]...)
			mw.keySubIDs = append(mw.keySubIDs[:i], mw.keySubIDs[i+1:]...)
			return
		}
	}
}

// --- port.SystemChrome ---

// SetVisibility applies the chrome set to the window: the title bar maps
// to window decorations, the cursor to the pointer over the content
// area. Status-bar visibility has no desktop analog and is ignored.
func (mw *MainWindow) SetVisibility(_ context.Context, set entity.ChromeVisibility) error {
	mw.window.SetDecorated(set.Visible(entity.ChromeTitleBar))

	cursor := "default"
	if !set.Visible(entity.ChromeCursor) {
		cursor = "none"
	}
	mw.contentOverlay.SetCursorFromName(&cursor)

	mw.logger.Debug().
		Bool("title_bar", set.Visible(entity.ChromeTitleBar)).
		Bool("cursor", set.Visible(entity.ChromeCursor)).
		Msg("chrome visibility applied")
	return nil
}

// SetOrientations is a no-op on desktop: toplevels do not rotate. The
// preference list is accepted so hosts can pass it unconditionally.
func (mw *MainWindow) SetOrientations(_ context.Context, prefs []entity.Orientation) error {
	mw.logger.Debug().Int("count", len(prefs)).Msg("orientation preferences ignored on desktop")
	return nil
}

// Destroy cleans up window resources.
func (mw *MainWindow) Destroy() {
	if mw.inlineArea != nil {
		mw.inlineArea.Unref()
		mw.inlineArea = nil
	}
	if mw.rootBox != nil {
		mw.rootBox.Unref()
		mw.rootBox = nil
	}
	if mw.window != nil {
		mw.window.Destroy()
		mw.window = nil
	}
}

func asWidget(c presenter.Composition) (*gtk.Widget, error) {
	if c == nil {
		return nil, nil
	}
	widget, ok := c.(*gtk.Widget)
	if !ok {
		return nil, ErrNotAWidget
	}
	return widget, nil
}

// WindowError represents a window-related error.
type WindowError struct {
	Message string
}

func (e WindowError) Error() string {
	return e.Message
}

// Error constants.
var (
	ErrWindowCreationFailed = WindowError{Message: "failed to create application window"}
	ErrNotAWidget           = WindowError{Message: "composition is not a GTK widget"}
)

// ErrWidgetCreationFailed creates an error for widget creation failure.
func ErrWidgetCreationFailed(name string) error {
	return WindowError{Message: "failed to create widget: " + name}
}
