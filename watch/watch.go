// Package watch calls back when any of a set of files in a directory
// changes, collapsing bursts of events into one call.
package watch

import (
	"context"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/bep/debounce"
	"github.com/fsnotify/fsnotify"
	"github.com/pkg/errors"
)

type Watcher struct {
	Dir   string
	Names []string
	Delay time.Duration
}

func New(dir string, names []string, delay time.Duration) *Watcher {
	return &Watcher{Dir: dir, Names: names, Delay: delay}
}

// Relevant reports whether ev touches one of the watched names. Editors
// often save by rename, so creates and renames count as well as writes.
func (w *Watcher) Relevant(ev fsnotify.Event) bool {
	if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) {
		return false
	}
	base := filepath.Base(ev.Name)
	for _, n := range w.Names {
		if base == n {
			return true
		}
	}
	return false
}

// Run watches the directory, not the files, so a background that does not
// exist yet is picked up once it is created. It blocks until ctx is done.
// fn is only ever called from Run's own goroutine, so calls never overlap
// and none start after Run returns. Changes made while fn runs queue at
// most one more call.
func (w *Watcher) Run(ctx context.Context, fn func()) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return errors.Wrap(err, "could not start watcher")
	}
	defer fw.Close()

	if err := fw.Add(w.Dir); err != nil {
		return errors.Wrapf(err, "could not watch %v", w.Dir)
	}

	// the debounce timer only signals; fn runs below
	trigger := make(chan struct{}, 1)
	signal := func() {
		select {
		case trigger <- struct{}{}:
		default:
		}
	}

	debounced := debounce.New(w.Delay)
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-trigger:
			if ctx.Err() != nil {
				return nil
			}
			fn()
		case ev, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if w.Relevant(ev) {
				slog.Info("background changed", "file", ev.Name, "op", ev.Op.String())
				debounced(signal)
			}
		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			slog.Warn("watch error", "err", err)
		}
	}
}
