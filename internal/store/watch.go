package store

import (
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Watcher reports changes to the timesheet file. Saves are atomic renames,
// so the watch is placed on the containing directory and filtered by name.
type Watcher struct {
	fs     *fsnotify.Watcher
	Events chan struct{}
	Errors chan error
	done   chan struct{}
}

// Watch starts watching the store's timesheet file for changes.
func Watch(s Store) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	path := s.Path()
	if err := fsw.Add(filepath.Dir(path)); err != nil {
		fsw.Close()
		return nil, err
	}

	w := &Watcher{
		fs:     fsw,
		Events: make(chan struct{}, 1),
		Errors: make(chan error, 1),
		done:   make(chan struct{}),
	}
	go w.loop(filepath.Base(path))
	return w, nil
}

func (w *Watcher) loop(name string) {
	for {
		select {
		case ev, ok := <-w.fs.Events:
			if !ok {
				return
			}
			if filepath.Base(ev.Name) != name {
				continue
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			// Coalesce bursts: drop the tick if one is already pending.
			select {
			case w.Events <- struct{}{}:
			default:
			}
		case err, ok := <-w.fs.Errors:
			if !ok {
				return
			}
			select {
			case w.Errors <- err:
			default:
			}
		case <-w.done:
			return
		}
	}
}

// Close stops the watcher.
func (w *Watcher) Close() error {
	close(w.done)
	return w.fs.Close()
}
