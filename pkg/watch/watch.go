// Package watch reports changes of a single file.
package watch

import (
	"context"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	pkgerrors "github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// DefaultDebounce is used when Watch is given a non-positive debounce.
const DefaultDebounce = 250 * time.Millisecond

// Watch calls onChange once for every burst of changes to path, after the
// burst has been quiet for debounce. It blocks until ctx is done or the
// watcher fails.
//
// The parent directory is watched instead of the file itself, so editors that
// replace the file on save are still noticed.
func Watch(ctx context.Context, path string, debounce time.Duration, onChange func()) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return pkgerrors.Wrapf(err, "failed to resolve %s", path)
	}
	abs = filepath.Clean(abs)

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return pkgerrors.Wrap(err, "failed to create watcher")
	}
	defer watcher.Close()

	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		return pkgerrors.Wrapf(err, "failed to watch %s", filepath.Dir(abs))
	}

	if debounce <= 0 {
		debounce = DefaultDebounce
	}

	timer := time.NewTimer(time.Hour)
	if !timer.Stop() {
		<-timer.C
	}
	pending := false

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != abs {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			logrus.WithFields(logrus.Fields{
				"file": abs,
				"op":   event.Op.String(),
			}).Trace("file event")

			if pending && !timer.Stop() {
				select {
				case <-timer.C:
				default:
				}
			}
			timer.Reset(debounce)
			pending = true
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			return pkgerrors.Wrap(err, "watcher failed")
		case <-timer.C:
			pending = false
			onChange()
		}
	}
}
