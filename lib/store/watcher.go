package store

import (
	"context"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/samber/oops"
	"github.com/spf13/afero"
)

// Watch invokes onChange with a freshly materialized document whenever
// the config file is written or recreated by another process. It
// returns after the watcher is installed; delivery happens on a
// background goroutine until ctx is cancelled.
//
// Watching requires the OS filesystem: the parent directory is watched
// (the file itself may not exist yet), so it is created here if
// missing. The synchronous read/write contract of the store is
// unaffected; this is an opt-in notification layer.
func (s *Store) Watch(ctx context.Context, onChange func(map[string]any)) error {
	if _, ok := s.fs.(*afero.OsFs); !ok {
		return oops.Errorf("watching requires the OS filesystem")
	}
	dir := filepath.Dir(s.path)
	if err := s.fs.MkdirAll(dir, 0o755); err != nil {
		return oops.Wrapf(err, "creating config directory %s", dir)
	}
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return oops.Wrapf(err, "creating watcher")
	}
	if err := w.Add(dir); err != nil {
		_ = w.Close()
		return oops.Wrapf(err, "watching %s", dir)
	}
	go func() {
		defer func() { _ = w.Close() }()
		for {
			select {
			case <-ctx.Done():
				return
			case event, ok := <-w.Events:
				if !ok {
					return
				}
				if event.Name != s.path {
					continue
				}
				if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
					continue
				}
				doc, err := s.materialize()
				if err != nil {
					log.WithError(err).WithField("path", s.path).Warn("ignoring unreadable config change")
					continue
				}
				onChange(doc)
			case err, ok := <-w.Errors:
				if !ok {
					return
				}
				log.WithError(err).WithField("path", s.path).Warn("config watch error")
			}
		}
	}()
	return nil
}
