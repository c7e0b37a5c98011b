// Command theater runs the demo playback shell around the fullscreen
// coordination library.
package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/theater-ui/theater/internal/config"
	"github.com/theater-ui/theater/internal/logging"
	"github.com/theater-ui/theater/internal/ui"
)

// Build-time variables (set via ldflags).
var (
	version   = "dev"
	commit    = "unknown"
	buildDate = "unknown"
)

var overlayStrategy bool

func main() {
	root := &cobra.Command{
		Use:          "theater",
		Short:        "Video playback shell with inline/fullscreen coordination",
		SilenceUsage: true,
	}

	playCmd := &cobra.Command{
		Use:   "play <file>",
		Short: "Play a media file in the demo shell",
		Args:  cobra.ExactArgs(1),
		RunE:  runPlay,
	}
	playCmd.Flags().BoolVar(&overlayStrategy, "overlay", false,
		"present fullscreen via an overlay layer instead of window-manager fullscreen")

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Printf("theater %s (%s, built %s, %s)\n", version, commit, buildDate, runtime.Version())
		},
	}

	root.AddCommand(playCmd, versionCmd)

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func runPlay(_ *cobra.Command, args []string) error {
	runtime.LockOSThread()

	cfg, err := config.Load()
	if err != nil {
		boot := logging.NewFromEnv()
		boot.Warn().Err(err).Msg("config load failed, using defaults")
		cfg = config.Default()
	}

	logger := buildLogger(cfg)
	ctx := logging.WithContext(context.Background(), logger)

	path, err := filepath.Abs(args[0])
	if err != nil {
		return fmt.Errorf("resolve media path: %w", err)
	}
	if _, err := os.Stat(path); err != nil {
		return fmt.Errorf("media file: %w", err)
	}

	startConfigWatcher(ctx)

	strategy := ui.StrategyResize
	if overlayStrategy {
		strategy = ui.StrategyOverlay
	}

	app := ui.NewApp(cfg, path, strategy)
	// GTK consumes argv; pass only the program name.
	if code := app.Run(ctx, os.Args[:1]); code != 0 {
		return fmt.Errorf("shell exited with code %d", code)
	}
	return nil
}

// buildLogger layers the file config over defaults, with environment
// variables taking final precedence.
func buildLogger(cfg *config.Config) zerolog.Logger {
	logCfg := logging.DefaultConfig()
	if level, ok := logging.ParseLevel(cfg.Logging.Level); ok {
		logCfg.Level = level
	}
	if cfg.Logging.Format == "json" || cfg.Logging.Format == "console" {
		logCfg.Format = cfg.Logging.Format
	}
	logCfg = logging.FromEnv(logCfg)

	logger := logging.New(logCfg)
	zerolog.SetGlobalLevel(logCfg.Level)
	return logger
}

// startConfigWatcher enables live log-level changes while the shell
// runs. Best effort; the shell works without it.
func startConfigWatcher(ctx context.Context) {
	log := logging.FromContext(ctx)

	path, err := config.Path()
	if err != nil {
		log.Debug().Err(err).Msg("config watcher disabled")
		return
	}

	watcher, err := config.NewWatcher(path, func(cfg *config.Config) {
		if level, ok := logging.ParseLevel(cfg.Logging.Level); ok {
			zerolog.SetGlobalLevel(level)
		}
	})
	if err != nil {
		log.Debug().Err(err).Msg("config watcher disabled")
		return
	}
	watcher.Start(ctx)
}
