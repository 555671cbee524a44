package storage

import (
	"context"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// ChangeHandler is called with the base name of a data file that changed.
type ChangeHandler func(name string)

// Watcher watches the data directory for edits made outside the service
// (hand-edited JSON, files copied in) and reports them after a debounce.
type Watcher struct {
	mu          sync.Mutex
	watcher     *fsnotify.Watcher
	dir         string
	logger      *zap.Logger
	handlers    []ChangeHandler
	pending     map[string]time.Time
	debounceDur time.Duration
}

// NewWatcher creates a watcher for dir. Call Run to start receiving events.
func NewWatcher(dir string, logger *zap.Logger) (*Watcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Watcher{
		watcher:     w,
		dir:         dir,
		logger:      logger,
		pending:     make(map[string]time.Time),
		debounceDur: 300 * time.Millisecond,
	}, nil
}

// OnChange registers a handler. Handlers run on the watcher goroutine.
func (w *Watcher) OnChange(h ChangeHandler) {
	w.mu.Lock()
	w.handlers = append(w.handlers, h)
	w.mu.Unlock()
}

// Run blocks until ctx is cancelled, then closes the underlying watcher.
func (w *Watcher) Run(ctx context.Context) error {
	defer w.watcher.Close()

	if err := w.watcher.Add(w.dir); err != nil {
		return err
	}
	w.logger.Info("watching data directory", zap.String("dir", w.dir))

	ticker := time.NewTicker(100 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			w.logger.Info("data watcher stopped")
			return nil

		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			w.handleEvent(event)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			w.logger.Warn("data watcher error", zap.Error(err))

		case <-ticker.C:
			w.flush(time.Now())
		}
	}
}

func (w *Watcher) handleEvent(event fsnotify.Event) {
	name := filepath.Base(event.Name)
	// temp files from atomic writes start with a dot
	if strings.HasPrefix(name, ".") || !strings.HasSuffix(name, ".json") {
		return
	}
	if event.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Remove|fsnotify.Rename) == 0 {
		return
	}

	w.mu.Lock()
	w.pending[name] = time.Now()
	w.mu.Unlock()
}

// flush dispatches every pending name whose last event is older than the
// debounce window.
func (w *Watcher) flush(now time.Time) {
	w.mu.Lock()
	var ready []string
	for name, at := range w.pending {
		if now.Sub(at) >= w.debounceDur {
			ready = append(ready, name)
			delete(w.pending, name)
		}
	}
	handlers := append([]ChangeHandler(nil), w.handlers...)
	w.mu.Unlock()

	for _, name := range ready {
		w.logger.Debug("data file changed", zap.String("file", name))
		for _, h := range handlers {
			h(name)
		}
	}
}
