package config

import (
	"context"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/theater-ui/theater/internal/logging"
)

// Watcher reloads the configuration file on change and hands the result
// to a callback. The demo shell uses it for live log-level updates;
// presentation settings only apply to coordinators constructed after the
// reload.
type Watcher struct {
	fsw      *fsnotify.Watcher
	path     string
	onReload func(*Config)
}

// NewWatcher creates a watcher for the config file at path.
func NewWatcher(path string, onReload func(*Config)) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	// Watch the directory: editors replace the file on save, which
	// drops a watch set on the file itself.
	if err := fsw.Add(filepath.Dir(path)); err != nil {
		_ = fsw.Close()
		return nil, err
	}

	return &Watcher{
		fsw:      fsw,
		path:     path,
		onReload: onReload,
	}, nil
}

// Start runs the watch loop until ctx is cancelled or the watcher is
// closed.
func (w *Watcher) Start(ctx context.Context) {
	log := logging.FromContext(ctx)

	go func() {
		for {
			select {
			case ev, ok := <-w.fsw.Events:
				if !ok {
					return
				}
				if ev.Name != w.path {
					continue
				}
				if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
					continue
				}
				cfg, err := Load()
				if err != nil {
					log.Warn().Err(err).Msg("config reload failed, keeping previous")
					continue
				}
				log.Info().Msg("config reloaded")
				if w.onReload != nil {
					w.onReload(cfg)
				}
			case err, ok := <-w.fsw.Errors:
				if !ok {
					return
				}
				log.Warn().Err(err).Msg("config watcher error")
			case <-ctx.Done():
				return
			}
		}
	}()
}

// Close stops the watcher.
func (w *Watcher) Close() error {
	return w.fsw.Close()
}
