// Package ui assembles the demo playback shell: GTK application, main
// window, coordinator, and lifecycle binder.
package ui

import (
	"context"

	"github.com/jwijenbergh/puregotk/v4/gio"
	"github.com/jwijenbergh/puregotk/v4/gtk"
	"github.com/theater-ui/theater/internal/config"
	"github.com/theater-ui/theater/internal/domain/entity"
	"github.com/theater-ui/theater/internal/infrastructure/idle"
	"github.com/theater-ui/theater/internal/infrastructure/media"
	"github.com/theater-ui/theater/internal/logging"
	"github.com/theater-ui/theater/internal/playback"
	"github.com/theater-ui/theater/internal/ui/fullscreen"
	"github.com/theater-ui/theater/internal/ui/lifecycle"
	"github.com/theater-ui/theater/internal/ui/mainloop"
	"github.com/theater-ui/theater/internal/ui/presenter"
	"github.com/theater-ui/theater/internal/ui/window"
)

// Strategy selects the fullscreen presentation strategy for the shell.
type Strategy string

const (
	// StrategyResize uses window-manager fullscreen plus inline resize,
	// the natural desktop choice.
	StrategyResize Strategy = "resize"
	// StrategyOverlay inserts an overlay layer without touching the
	// window manager, the embedded-shell choice.
	StrategyOverlay Strategy = "overlay"
)

// App is the demo playback shell.
type App struct {
	cfg      *config.Config
	path     string
	strategy Strategy

	gtkApp     *gtk.Application
	mainWindow *window.MainWindow
	wakeLock   *idle.PortalWakeLock
	controls   *playback.Controls
	coord      *fullscreen.Coordinator
	binder     *lifecycle.Binder
	resizeHost *presenter.ResizeHost
}

// NewApp creates the shell for the given media file path.
func NewApp(cfg *config.Config, path string, strategy Strategy) *App {
	if strategy != StrategyOverlay {
		strategy = StrategyResize
	}
	return &App{
		cfg:      cfg,
		path:     path,
		strategy: strategy,
	}
}

// Run starts the GTK application and blocks until it exits. Returns the
// exit code.
func (a *App) Run(ctx context.Context, args []string) int {
	log := logging.FromContext(ctx)
	log.Debug().Msg("creating GTK application")

	a.gtkApp = gtk.NewApplication(nil, gio.GApplicationFlagsNoneValue)
	if a.gtkApp == nil {
		log.Error().Msg("failed to create GTK application")
		return 1
	}
	defer a.gtkApp.Unref()

	activateCb := func(_ gio.Application) {
		a.onActivate(ctx)
	}
	a.gtkApp.ConnectActivate(&activateCb)

	shutdownCb := func(_ gio.Application) {
		a.onShutdown(ctx)
	}
	a.gtkApp.ConnectShutdown(&shutdownCb)

	log.Info().Msg("starting GTK main loop")
	return a.gtkApp.Run(len(args), args)
}

func (a *App) onActivate(ctx context.Context) {
	log := logging.FromContext(ctx)
	log.Debug().Msg("GTK application activated")

	media.Probe(ctx)

	mw, err := window.New(ctx, a.gtkApp, a.cfg)
	if err != nil {
		log.Error().Err(err).Msg("failed to create main window")
		return
	}
	a.mainWindow = mw

	a.wakeLock = idle.NewPortalWakeLock(ctx)
	a.controls = playback.NewControls()
	sched := mainloop.NewGLibScheduler()

	video := gtk.NewVideo()
	if video == nil {
		log.Error().Msg("failed to create video widget")
		return
	}
	video.SetAutoplay(true)
	video.SetFilename(&a.path)

	presCfg := fullscreen.PresentationConfig{
		InlineComposition:  &video.Widget,
		ChromeFullscreen:   fullscreenChrome(a.cfg),
		WakeLockInline:     &a.cfg.Playback.WakeLockInline,
		WakeLockFullscreen: &a.cfg.Playback.WakeLockFullscreen,
		SettleDelay:        a.cfg.Playback.SettleDelay,
	}

	deps := fullscreen.Deps{
		Controls:  a.controls,
		WakeLock:  a.wakeLock,
		Chrome:    mw,
		Scheduler: sched,
	}

	switch a.strategy {
	case StrategyOverlay:
		deps.Host = presenter.NewOverlayHost(ctx, mw)
	default:
		a.resizeHost = presenter.NewResizeHost(ctx, mw, sched)
		deps.Host = a.resizeHost
		deps.Native = mw
	}

	a.coord = fullscreen.New(ctx, deps, presCfg)
	a.binder = lifecycle.NewBinder(ctx, a.coord, mw)
	a.binder.Attach(ctx)

	if err := mw.ShowInline(ctx, a.coord.InlineComposition()); err != nil {
		log.Error().Err(err).Msg("failed to render inline composition")
	}

	mw.Show()
}

// fullscreenChrome builds the fullscreen visibility set from the file
// config: chrome stays hidden, the cursor follows the config flag.
func fullscreenChrome(cfg *config.Config) entity.ChromeVisibility {
	set := entity.NoChromeVisible()
	if cfg != nil && !cfg.Playback.HideCursorFullscreen {
		set[entity.ChromeCursor] = true
	}
	return set
}

func (a *App) onShutdown(ctx context.Context) {
	log := logging.FromContext(ctx)

	if a.coord != nil {
		a.coord.Unbind(ctx)
	}
	if a.resizeHost != nil {
		a.resizeHost.Destroy()
	}
	if a.wakeLock != nil {
		if err := a.wakeLock.Close(); err != nil {
			log.Warn().Err(err).Msg("failed to close wake lock")
		}
	}
	if a.mainWindow != nil {
		a.mainWindow.Destroy()
		a.mainWindow = nil
	}

	log.Info().Msg("shell shutdown complete")
}
