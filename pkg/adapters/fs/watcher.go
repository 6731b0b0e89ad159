package fs

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"runtime/debug"
	"strings"
	"sync"
	"time"

	"github.com/aretw0/lifecycle/pkg/core/worker"
	"github.com/bmatcuk/doublestar/v4"
	"github.com/fsnotify/fsnotify"

	"github.com/aretw0/patina/pkg/core"
)

// WatchConfig holds the configuration for the filesystem watcher.
type WatchConfig struct {
	Root         string
	Include      []string // doublestar patterns relative to Root, e.g. "**/*.md"
	Ignore       []string // doublestar patterns relative to Root
	Debounce     time.Duration
	Logger       *slog.Logger
	ErrorHandler func(error)
}

// Watcher observes a note tree and emits core.Events for files matching
// the include patterns. It runs as a lifecycle worker so callers can
// manage it alongside other goroutines.
type Watcher struct {
	*worker.BaseWorker
	config    WatchConfig
	events    chan<- core.Event
	watcher   *fsnotify.Watcher
	debouncer *debouncer
	cancel    context.CancelFunc

	mu     sync.RWMutex
	skip   map[string]struct{} // paths currently being written by us
	active bool
}

// NewWatcher creates a watcher rooted at config.Root that delivers events
// on the given channel.
func NewWatcher(config WatchConfig, events chan<- core.Event) *Watcher {
	if len(config.Include) == 0 {
		config.Include = []string{"**/*.md"}
	}
	if config.Debounce <= 0 {
		config.Debounce = 50 * time.Millisecond
	}
	return &Watcher{
		BaseWorker: worker.NewBaseWorker("fs-watcher"),
		config:     config,
		events:     events,
		skip:       make(map[string]struct{}),
	}
}

func (w *Watcher) Start(ctx context.Context) error {
	if ctx.Err() != nil {
		return ctx.Err()
	}

	status := w.State().Status
	if status != worker.StatusCreated && status != worker.StatusPending {
		return fmt.Errorf("watcher already started (status: %s)", status)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}

	if err := w.recursiveAdd(watcher); err != nil {
		_ = watcher.Close()
		return err
	}

	w.watcher = watcher
	w.debouncer = newDebouncer(w.config.Debounce)
	w.setActive(true)

	runCtx, cancel := context.WithCancel(ctx)
	w.cancel = cancel

	w.SetStatus(worker.StatusRunning)
	return w.StartFunc(runCtx, w.run)
}

func (w *Watcher) Stop(ctx context.Context) error {
	if w.cancel != nil {
		w.StopRequested = true
		w.cancel()
	}

	return w.BaseWorker.Stop(ctx)
}

func (w *Watcher) State() worker.State {
	return w.ExportState(func(s *worker.State) {
		s.Metadata = map[string]string{
			worker.MetadataType: string(worker.TypeGoroutine),
		}
	})
}

// Suppress marks path as being written by us; events for it are dropped
// until the returned release function is called. This is the re-entrancy
// guard that keeps the stamper's own writes from triggering another stamp.
func (w *Watcher) Suppress(path string) func() {
	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}
	w.mu.Lock()
	w.skip[abs] = struct{}{}
	w.mu.Unlock()

	return func() {
		w.mu.Lock()
		delete(w.skip, abs)
		w.mu.Unlock()
	}
}

func (w *Watcher) suppressed(name string) bool {
	abs, err := filepath.Abs(name)
	if err != nil {
		abs = name
	}
	w.mu.RLock()
	defer w.mu.RUnlock()
	_, ok := w.skip[abs]
	return ok
}

func (w *Watcher) setActive(active bool) {
	w.mu.Lock()
	w.active = active
	w.mu.Unlock()
}

// recursiveAdd registers the root and every subdirectory with the fsnotify
// watcher. fsnotify does not watch recursively on its own.
func (w *Watcher) recursiveAdd(watcher *fsnotify.Watcher) error {
	return filepath.WalkDir(w.config.Root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if name := d.Name(); strings.HasPrefix(name, ".") && path != w.config.Root {
			return filepath.SkipDir
		}
		if err := watcher.Add(path); err != nil {
			return fmt.Errorf("failed to watch %s: %w", path, err)
		}
		return nil
	})
}

// relPath converts an absolute event path into the slash-separated form
// used for pattern matching and event IDs.
func (w *Watcher) relPath(name string) (string, error) {
	rel, err := filepath.Rel(w.config.Root, name)
	if err != nil {
		return "", err
	}
	return filepath.ToSlash(rel), nil
}

// shouldIgnore filters out our own temp files, hidden files, suppressed
// paths, and anything excluded by the include/ignore patterns.
func (w *Watcher) shouldIgnore(event fsnotify.Event) bool {
	base := filepath.Base(event.Name)
	if strings.HasPrefix(base, TempFilePrefix) {
		return true
	}
	if strings.HasPrefix(base, ".") {
		return true
	}
	if w.suppressed(event.Name) {
		return true
	}

	rel, err := w.relPath(event.Name)
	if err != nil || strings.HasPrefix(rel, "..") {
		return true
	}

	for _, pattern := range w.config.Ignore {
		if ok, _ := doublestar.Match(pattern, rel); ok {
			return true
		}
	}

	included := false
	for _, pattern := range w.config.Include {
		if ok, _ := doublestar.Match(pattern, rel); ok {
			included = true
			break
		}
	}
	return !included
}

func (w *Watcher) mapEventType(event fsnotify.Event) core.EventType {
	switch {
	case event.Has(fsnotify.Create):
		return core.EventCreate
	case event.Has(fsnotify.Write):
		return core.EventModify
	case event.Has(fsnotify.Remove) || event.Has(fsnotify.Rename):
		return core.EventDelete
	default:
		return ""
	}
}

// processFilesystemEvent handles filtering, mapping, and debouncing of
// filesystem events. Returns true if the event was accepted.
func (w *Watcher) processFilesystemEvent(ctx context.Context, event fsnotify.Event) bool {
	if w.config.Logger != nil {
		w.config.Logger.Debug("event received", "name", event.Name, "op", event.Op.String())
	}

	// New directories must be registered so their contents are watched too.
	if event.Has(fsnotify.Create) {
		w.maybeWatchDir(event.Name)
	}

	if w.shouldIgnore(event) {
		return false
	}

	eType := w.mapEventType(event)
	if eType == "" {
		return false
	}

	rel, err := w.relPath(event.Name)
	if err != nil {
		if w.config.ErrorHandler != nil {
			w.config.ErrorHandler(fmt.Errorf("failed to resolve path for %s: %w", event.Name, err))
		} else if w.config.Logger != nil {
			w.config.Logger.Debug("relPath failed", "path", event.Name, "err", err)
		}
		return false
	}

	w.sendEvent(ctx, core.Event{
		Type:      eType,
		Path:      rel,
		Timestamp: time.Now().Unix(),
	})

	return true
}

func (w *Watcher) maybeWatchDir(name string) {
	info, err := os.Stat(name)
	if err != nil || !info.IsDir() {
		return
	}
	if strings.HasPrefix(filepath.Base(name), ".") {
		return
	}
	if err := w.watcher.Add(name); err != nil && w.config.Logger != nil {
		w.config.Logger.Debug("failed to watch new directory", "path", name, "err", err)
	}
}

// sendEvent enqueues an event via the debouncer, protecting against channel
// closure during shutdown.
func (w *Watcher) sendEvent(ctx context.Context, event core.Event) {
	w.debouncer.add(event, func(e core.Event) {
		defer func() {
			// Recover from panic if channel was closed (worker stopping)
			_ = recover()
		}()
		select {
		case w.events <- e:
		case <-ctx.Done():
		}
	})
}

// handleWatcherError processes errors from the fsnotify watcher.
func (w *Watcher) handleWatcherError(err error) {
	if w.config.Logger != nil {
		w.config.Logger.Error("fsnotify error", "error", err)
	}
	if w.config.ErrorHandler != nil {
		w.config.ErrorHandler(err)
	}
}

// run is the main event loop for the watcher worker.
func (w *Watcher) run(ctx context.Context) (err error) {
	defer func() {
		if recovered := recover(); recovered != nil {
			panicErr := fmt.Errorf("watcher panic: %v", recovered)

			// Stack traces only under debug logging; production logs stay lean.
			var stack string
			if w.config.Logger != nil && w.config.Logger.Enabled(ctx, slog.LevelDebug) {
				stack = string(debug.Stack())
			}

			if w.config.Logger != nil {
				if stack != "" {
					w.config.Logger.Error("watcher panic", "error", panicErr, "stack", stack)
				} else {
					w.config.Logger.Error("watcher panic", "error", panicErr)
				}
			}
		}
	}()
	defer w.setActive(false)
	defer w.watcher.Close()

	err = w.mainEventLoop(ctx)

	// Shutdown debouncer: stop accepting new events and wait for all
	// in-flight timers to complete before the events channel goes away.
	w.debouncer.stopAndWait(5 * time.Second)

	return err
}

// mainEventLoop is the core select loop that processes filesystem and
// watcher events.
func (w *Watcher) mainEventLoop(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-w.watcher.Events:
			if !ok {
				if w.StopRequested || ctx.Err() != nil {
					return nil
				}
				return fmt.Errorf("watcher events channel closed")
			}
			w.processFilesystemEvent(ctx, event)

		case wErr, ok := <-w.watcher.Errors:
			if !ok {
				if w.StopRequested || ctx.Err() != nil {
					return nil
				}
				return fmt.Errorf("watcher errors channel closed")
			}
			w.handleWatcherError(wErr)
		}
	}
}
