package mix

import (
	"context"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/pkg/errors"
)

// Watch runs fn once, then again every time path is written, until the
// context is cancelled. Write bursts are debounced since editors emit
// several events per save. fn only ever runs on the watch goroutine,
// one calculation at a time.
func Watch(ctx context.Context, path string, debounce time.Duration, fn func()) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return errors.Wrap(err, "failed to create watcher")
	}
	defer watcher.Close()

	// watch the directory, not the file: editors replace files on
	// save and the watch would die with the old inode
	dir := filepath.Dir(path)
	if err := watcher.Add(dir); err != nil {
		return errors.Wrapf(err, "failed to watch %s", dir)
	}

	fn()

	// events arm the timer, the loop drains it
	timer := time.NewTimer(debounce)
	if !timer.Stop() {
		<-timer.C
	}
	defer timer.Stop()

	base := filepath.Base(path)
	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Base(event.Name) != base {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			stderr.Debug().Str("path", path).Msg("reaction file changed")

			if !timer.Stop() {
				select {
				case <-timer.C:
				default:
				}
			}
			timer.Reset(debounce)

		case <-timer.C:
			fn()

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			stderr.Error().Err(err).Msg("watch error")
		}
	}
}
