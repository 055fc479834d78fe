// Package watcher feeds local filesystem changes into the discovery
// engine. Each watched directory behaves like a persisted key/value
// store: the file path is the key and the file contents are the value,
// so a change flows through the same observer callback as any other
// storage capture.
package watcher

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
	"golang.org/x/time/rate"

	"github.com/probe-labs/scout-cli/internal/core/ports/driving"
	"github.com/probe-labs/scout-cli/internal/logger"
)

// storeKind reported to the engine for filesystem captures.
const storeKind = "file"

// maxFileBytes caps how much of a changed file is ingested. Larger
// files are truncated, not skipped; the head usually carries the
// identifying text.
const maxFileBytes = 64 * 1024

// ingestRate throttles bursty directories (editor save storms, log
// rotation) to a sustainable ingest pace.
var ingestRate = rate.Limit(20)

// Watcher observes directories and forwards file changes to the engine.
type Watcher struct {
	engine  driving.DiscoveryEngine
	paths   []string
	limiter *rate.Limiter

	mu      sync.Mutex
	running bool
	stopCh  chan struct{}
	wg      sync.WaitGroup
}

// New creates a watcher over the given directories.
func New(engine driving.DiscoveryEngine, paths []string) *Watcher {
	return &Watcher{
		engine:  engine,
		paths:   paths,
		limiter: rate.NewLimiter(ingestRate, 5),
	}
}

// Start begins watching. It returns once the watch loop is running;
// events are delivered on a background goroutine until Stop.
// With no configured paths Start is a no-op.
func (w *Watcher) Start(ctx context.Context) error {
	if len(w.paths) == 0 {
		return nil
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	if w.running {
		return nil
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating filesystem watcher: %w", err)
	}
	for _, path := range w.paths {
		if err := fsw.Add(path); err != nil {
			fsw.Close()
			return fmt.Errorf("watching %s: %w", path, err)
		}
	}

	w.running = true
	w.stopCh = make(chan struct{})
	w.wg.Add(1)
	go w.run(ctx, fsw)

	logger.Info("Watching %d directories for content changes", len(w.paths))
	return nil
}

// Scan ingests every file currently under the watched directories.
// One-shot commands use it to build the same view a running watcher
// would accumulate, without waiting for change events. The event rate
// limiter does not apply; a scan is bounded by the directory contents.
func (w *Watcher) Scan(ctx context.Context) error {
	for _, root := range w.paths {
		err := filepath.WalkDir(root, func(path string, entry fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if entry.IsDir() {
				return nil
			}
			if err := ctx.Err(); err != nil {
				return err
			}
			w.deliver(ctx, path)
			return nil
		})
		if err != nil {
			return fmt.Errorf("scanning %s: %w", root, err)
		}
	}
	return nil
}

// Stop ends the watch loop and waits for it to drain.
func (w *Watcher) Stop() {
	w.mu.Lock()
	if !w.running {
		w.mu.Unlock()
		return
	}
	w.running = false
	close(w.stopCh)
	w.mu.Unlock()

	w.wg.Wait()
}

func (w *Watcher) run(ctx context.Context, fsw *fsnotify.Watcher) {
	defer w.wg.Done()
	defer fsw.Close()

	for {
		select {
		case <-ctx.Done():
			return
		case <-w.stopCh:
			return
		case event, ok := <-fsw.Events:
			if !ok {
				return
			}
			if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Write) {
				continue
			}
			w.ingest(ctx, event.Name)
		case err, ok := <-fsw.Errors:
			if !ok {
				return
			}
			logger.Warn("Filesystem watcher error: %v", err)
		}
	}
}

// ingest reads one changed file and hands it to the engine. Failures
// are logged and dropped; a file that vanished between the event and
// the read is routine.
func (w *Watcher) ingest(ctx context.Context, path string) {
	if err := w.limiter.Wait(ctx); err != nil {
		return
	}
	w.deliver(ctx, path)
}

func (w *Watcher) deliver(ctx context.Context, path string) {
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		logger.Debug("Skipping unreadable file %s: %v", path, err)
		return
	}
	if len(data) > maxFileBytes {
		data = data[:maxFileBytes]
	}

	w.engine.OnPersistedValueChanged(ctx, path, string(data), storeKind)
}
