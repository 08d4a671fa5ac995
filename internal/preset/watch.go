package preset

import (
	"context"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/xtding233/packsim/internal/logger"
)

// FileWatcher calls onChange whenever the catalog file is written, created,
// renamed or removed. The parent directory is watched so editors that save
// by rename are still seen.
type FileWatcher struct {
	path     string
	onChange func(string)
	log      *logger.Logger

	watcher *fsnotify.Watcher
	stopCh  chan struct{}
	doneCh  chan struct{}
	once    sync.Once
	started bool
}

// NewFileWatcher creates a watcher for path. It does nothing until Start.
func NewFileWatcher(path string, log *logger.Logger, onChange func(string)) (*FileWatcher, error) {
	if log == nil {
		log = logger.Nop()
	}
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	return &FileWatcher{
		path:     filepath.Clean(path),
		onChange: onChange,
		log:      log,
		watcher:  w,
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
	}, nil
}

// Start subscribes to the file's directory and runs the event loop until ctx
// is done or Stop is called.
func (w *FileWatcher) Start(ctx context.Context) error {
	if err := w.watcher.Add(filepath.Dir(w.path)); err != nil {
		return err
	}
	w.started = true
	go w.run(ctx)
	return nil
}

// Stop ends the event loop and releases the underlying watcher.
func (w *FileWatcher) Stop() {
	w.once.Do(func() {
		close(w.stopCh)
		if w.started {
			<-w.doneCh
		}
		if err := w.watcher.Close(); err != nil {
			w.log.Warn("preset watcher close failed", "error", err)
		}
	})
}

// Done is closed once the event loop has exited.
func (w *FileWatcher) Done() <-chan struct{} { return w.doneCh }

func (w *FileWatcher) run(ctx context.Context) {
	defer close(w.doneCh)
	for {
		select {
		case <-ctx.Done():
			return
		case <-w.stopCh:
			return
		case ev, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != w.path {
				continue
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) &&
				!ev.Has(fsnotify.Rename) && !ev.Has(fsnotify.Remove) {
				continue // chmod
			}
			w.log.Debug("preset file changed", "path", ev.Name, "op", ev.Op.String())
			if w.onChange != nil {
				w.onChange(w.path)
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.log.Warn("preset watcher error", "error", err)
		}
	}
}
