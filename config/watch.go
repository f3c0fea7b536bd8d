package config

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// PollInterval is how often the polling fallback checks a watched file.
var PollInterval = 100 * time.Millisecond

// Watch reloads the config at path whenever it is written and passes the
// result to fn. It blocks until ctx is done.
func Watch(ctx context.Context, path string, fn func(*Config, error)) error {
	return WatchFile(ctx, path, func() {
		fn(Load(path))
	})
}

// WatchFile calls onChange each time path is written or recreated. It blocks
// until ctx is done. Uses fsnotify on the parent directory with a polling
// fallback.
func WatchFile(ctx context.Context, path string, onChange func()) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		slog.Debug("fsnotify unavailable, polling", slog.String("path", path), slog.Any("error", err))
		return pollFile(ctx, path, onChange)
	}
	defer watcher.Close()

	// The directory survives editors that replace the file on save.
	if err := watcher.Add(filepath.Dir(path)); err != nil {
		slog.Debug("watch failed, polling", slog.String("path", path), slog.Any("error", err))
		return pollFile(ctx, path, onChange)
	}

	base := filepath.Base(path)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Base(event.Name) != base {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			onChange()

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			slog.Warn("watch error", slog.String("path", path), slog.Any("error", err))
		}
	}
}

type fileStamp struct {
	size    int64
	modTime time.Time
}

func stamp(path string) fileStamp {
	info, err := os.Stat(path)
	if err != nil {
		return fileStamp{size: -1}
	}
	return fileStamp{size: info.Size(), modTime: info.ModTime()}
}

// pollFile is the fallback when fsnotify isn't available.
func pollFile(ctx context.Context, path string, onChange func()) error {
	ticker := time.NewTicker(PollInterval)
	defer ticker.Stop()

	last := stamp(path)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case <-ticker.C:
			cur := stamp(path)
			if cur == last {
				continue
			}
			last = cur
			if cur.size >= 0 {
				onChange()
			}
		}
	}
}
