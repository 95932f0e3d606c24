// SPDX-License-Identifier: Unlicense OR MIT

package main

import (
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// reloadDelay coalesces the bursts of events editors produce on save.
const reloadDelay = 100 * time.Millisecond

// watcher reports changes to a set of files. Directories are watched
// rather than the files themselves, so that files replaced by rename
// keep being observed.
type watcher struct {
	fsw    *fsnotify.Watcher
	files  map[string]bool
	reload chan struct{}
	done   chan struct{}
	log    *slog.Logger
}

func newWatcher(log *slog.Logger, files ...string) (*watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	w := &watcher{
		fsw:    fsw,
		files:  make(map[string]bool),
		reload: make(chan struct{}, 1),
		done:   make(chan struct{}),
		log:    log,
	}
	dirs := make(map[string]bool)
	for _, f := range files {
		f = filepath.Clean(f)
		w.files[f] = true
		dir := filepath.Dir(f)
		if dirs[dir] {
			continue
		}
		dirs[dir] = true
		if err := fsw.Add(dir); err != nil {
			fsw.Close()
			return nil, err
		}
	}
	go w.loop()
	return w, nil
}

// Reload receives a value after a watched file changed.
func (w *watcher) Reload() <-chan struct{} {
	return w.reload
}

func (w *watcher) loop() {
	defer close(w.done)
	timer := time.NewTimer(reloadDelay)
	timer.Stop()
	defer timer.Stop()
	for {
		select {
		case e, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if !w.files[filepath.Clean(e.Name)] {
				continue
			}
			if e.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			w.log.Debug("glview: shader changed", "file", e.Name, "op", e.Op.String())
			timer.Reset(reloadDelay)
		case <-timer.C:
			select {
			case w.reload <- struct{}{}:
			default:
			}
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			w.log.Warn("glview: watch error", "err", err)
		}
	}
}

func (w *watcher) Close() error {
	err := w.fsw.Close()
	<-w.done
	return err
}
