package menufile

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce collapses bursts of writes from editors into one reload.
const DefaultDebounce = 100 * time.Millisecond

// Watch reloads the menu file at path whenever it changes and hands the
// result to fn. Files that fail to parse are logged and skipped. Watch
// blocks until ctx is done.
func Watch(ctx context.Context, path string, debounce time.Duration, fn func(*File)) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}
	defer watcher.Close()

	absPath, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("failed to resolve menu path: %w", err)
	}

	// editors replace files on save, so the directory is watched
	dir := filepath.Dir(absPath)
	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("failed to watch menu directory %s: %w", dir, err)
	}

	if debounce <= 0 {
		debounce = DefaultDebounce
	}

	slog.Info("watching menu file", "path", absPath)

	reload := make(chan struct{}, 1)
	var timer *time.Timer
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	name := filepath.Base(absPath)
	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Base(event.Name) != name {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				if event.Has(fsnotify.Remove) {
					slog.Warn("menu file removed", "path", event.Name)
				}
				continue
			}

			slog.Debug("menu file changed", "path", event.Name, "op", event.Op.String())
			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(debounce, func() {
				select {
				case reload <- struct{}{}:
				default:
				}
			})

		case <-reload:
			f, err := LoadFile(absPath)
			if err != nil {
				slog.Error("failed to reload menu", "path", absPath, "error", err)
				continue
			}
			slog.Info("menu reloaded", "path", absPath, "items", len(f.Items))
			fn(f)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			slog.Error("menu watcher error", "error", err)
		}
	}
}
