package jsonfile

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"adboard/internal/core/feed"
	"adboard/internal/core/port"
)

// Watcher reloads a source when its data file changes on disk. Bursts of
// events, such as an editor's write-then-rename, collapse into one reload.
type Watcher struct {
	path     string
	target   port.Reloader
	logger   *slog.Logger
	debounce *feed.Debouncer
}

// NewWatcher returns a watcher for path. delay <= 0 uses feed.DefaultDebounce.
func NewWatcher(path string, target port.Reloader, logger *slog.Logger, delay time.Duration) *Watcher {
	return &Watcher{
		path:     filepath.Clean(path),
		target:   target,
		logger:   logger,
		debounce: feed.NewDebouncer(delay),
	}
}

// Run watches until ctx is done. The parent directory is watched so the
// file can be replaced by rename.
func (w *Watcher) Run(ctx context.Context) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer fw.Close()
	defer w.debounce.Stop()

	if err = fw.Add(filepath.Dir(w.path)); err != nil {
		return fmt.Errorf("watch %s: %w", filepath.Dir(w.path), err)
	}
	w.logger.Info("watching data file", slog.String("path", w.path))

	fire := make(chan struct{}, 1)
	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != w.path || !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
				continue
			}
			w.debounce.Trigger(func() {
				select {
				case fire <- struct{}{}:
				default:
				}
			})

		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			w.logger.Warn("watcher error", slog.Any("error", err))

		case <-fire:
			if err := w.target.Reload(ctx); err != nil {
				w.logger.Error("reload error", slog.String("path", w.path), slog.Any("error", err))
			}
		}
	}
}
