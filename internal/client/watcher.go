package client

import (
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/relay-tools/slashcmd/internal/domain"
)

// Watcher reloads a schema file whenever it changes on disk.
type Watcher struct {
	w    *fsnotify.Watcher
	done chan struct{}
}

// Watch watches path and invokes onChange with each successfully reloaded
// document. Editors that replace files (rename-over) emit Create events, so
// the watch is placed on the directory rather than the file itself. Reload
// failures are logged and skipped; the previous document stays active.
func Watch(path string, logger domain.Logger, onChange func(*SchemaFile)) (*Watcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		w.Close()
		return nil, err
	}
	if err := w.Add(filepath.Dir(abs)); err != nil {
		w.Close()
		return nil, err
	}

	watcher := &Watcher{w: w, done: make(chan struct{})}

	go func() {
		defer close(watcher.done)
		for {
			select {
			case event, ok := <-w.Events:
				if !ok {
					return
				}
				if event.Name != abs {
					continue
				}
				if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
					continue
				}
				sf, err := LoadSchemaFile(abs)
				if err != nil {
					logger.Warn("client: schema reload skipped: %v", err)
					continue
				}
				logger.Info("client: schema reloaded from %s", abs)
				onChange(sf)
			case err, ok := <-w.Errors:
				if !ok {
					return
				}
				logger.Warn("client: schema watch error: %v", err)
			}
		}
	}()

	return watcher, nil
}

// Close stops the watch and waits for the event loop to exit.
func (watcher *Watcher) Close() error {
	err := watcher.w.Close()
	<-watcher.done
	return err
}
