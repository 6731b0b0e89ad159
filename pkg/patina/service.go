package patina

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/aretw0/patina/pkg/adapters/fs"
	lifecycleadapter "github.com/aretw0/patina/pkg/adapters/lifecycle"
	"github.com/aretw0/patina/pkg/core"
)

// Service owns a note root and keeps the timestamp headers of its notes
// current. It wires the pure header engine to the filesystem: one-shot
// stamping via StampFile/StampAll, continuous stamping via Run.
type Service struct {
	root     string
	settings Settings
	stamper  *Stamper
	clock    core.Clock
	logger   *slog.Logger

	eventBuffer int

	mu       sync.RWMutex
	watching bool
	stamped  int
}

// NewService creates a service rooted at path. Settings are read from the
// settings file at the root unless injected via WithSettings.
func NewService(path string, opts ...Option) (*Service, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	useTemp := o.forceTemp || IsDevRun()
	root := ResolveRootPath(path, useTemp)

	if o.logger != nil && useTemp && root != path {
		o.logger.Warn("running in SAFE MODE (Dev/Test)", "original_path", path, "resolved_path", root)
	}

	// Only a re-rooted dev path is created implicitly; a root the caller
	// named explicitly must already exist.
	if useTemp && root != path {
		if err := os.MkdirAll(root, 0755); err != nil {
			return nil, fmt.Errorf("failed to create root directory: %w", err)
		}
	}

	info, err := os.Stat(root)
	if os.IsNotExist(err) {
		return nil, fmt.Errorf("note root does not exist: %s", root)
	}
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("note root is not a directory: %s", root)
	}

	var settings Settings
	if o.settings != nil {
		settings = *o.settings
		backfill(&settings)
	} else {
		settings, err = NewSettingsStore(SettingsPath(root)).Load()
		if err != nil {
			return nil, err
		}
	}

	return &Service{
		root:        root,
		settings:    settings,
		stamper:     NewStamper(settings),
		clock:       o.clock,
		logger:      o.logger,
		eventBuffer: o.eventBuffer,
	}, nil
}

// Root returns the resolved note root.
func (s *Service) Root() string {
	return s.root
}

// Settings returns the effective settings.
func (s *Service) Settings() Settings {
	return s.settings
}

// fileTimes retrieves the clock values used to stamp path. An injected
// clock overrides the file's modification time.
func (s *Service) fileTimes(path string) (core.FileTimes, error) {
	times, err := fs.Times(path)
	if err != nil {
		return core.FileTimes{}, err
	}
	if s.clock != nil {
		now := s.clock()
		times.Created = now
		times.Modified = now
	}
	return times, nil
}

// StampFile brings the timestamp header of the note at path up to date.
// It reports whether the file was rewritten. The write is atomic; the note
// is never left partially written.
func (s *Service) StampFile(path string) (bool, error) {
	info, err := os.Stat(path)
	if err != nil {
		return false, err
	}
	if !info.Mode().IsRegular() {
		return false, fmt.Errorf("%s: %w", path, core.ErrNotRegularFile)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return false, err
	}

	times, err := s.fileTimes(path)
	if err != nil {
		return false, err
	}

	text := string(data)
	stamped := s.stamper.StampText(text, times)
	if stamped == text {
		return false, nil
	}

	if err := fs.WriteFileAtomic(path, []byte(stamped), info.Mode().Perm()); err != nil {
		return false, fmt.Errorf("failed to write note: %w", err)
	}

	s.recordStamp()
	return true, nil
}

// matches reports whether the slash-separated relative path is covered by
// the include patterns and not excluded by the ignore patterns.
func (s *Service) matches(rel string) bool {
	for _, pattern := range s.settings.Ignore {
		if ok, _ := doublestar.Match(pattern, rel); ok {
			return false
		}
	}
	for _, pattern := range s.settings.Include {
		if ok, _ := doublestar.Match(pattern, rel); ok {
			return true
		}
	}
	return false
}

// StampAll walks the root and stamps every matching note once.
// It returns the number of files rewritten.
func (s *Service) StampAll(ctx context.Context) (int, error) {
	count := 0

	err := filepath.WalkDir(s.root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if d.IsDir() {
			if name := d.Name(); strings.HasPrefix(name, ".") && path != s.root {
				return filepath.SkipDir
			}
			return nil
		}

		rel, err := filepath.Rel(s.root, path)
		if err != nil {
			return err
		}
		if !s.matches(filepath.ToSlash(rel)) {
			return nil
		}

		changed, err := s.StampFile(path)
		if err != nil {
			if s.logger != nil {
				s.logger.Warn("failed to stamp note", "path", rel, "error", err)
			}
			return nil // keep walking
		}
		if changed {
			count++
			if s.logger != nil {
				s.logger.Debug("note stamped", "path", rel)
			}
		}
		return nil
	})

	if err != nil {
		return count, fmt.Errorf("failed to walk note root: %w", err)
	}
	return count, nil
}

// Run watches the root and stamps notes as they are created or modified,
// until ctx is cancelled. Events are handled sequentially: two stamps never
// race on the same note.
func (s *Service) Run(ctx context.Context) error {
	events := make(chan core.Event, s.eventBuffer)

	watcher := fs.NewWatcher(fs.WatchConfig{
		Root:     s.root,
		Include:  s.settings.Include,
		Ignore:   s.settings.Ignore,
		Debounce: time.Duration(s.settings.DebounceMs) * time.Millisecond,
		Logger:   s.logger,
	}, events)

	if err := watcher.Start(ctx); err != nil {
		return fmt.Errorf("failed to start watcher: %w", err)
	}
	defer func() {
		stopCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = watcher.Stop(stopCtx)
	}()

	source := lifecycleadapter.NewSource(events)
	if err := source.Start(ctx); err != nil {
		return fmt.Errorf("failed to start event source: %w", err)
	}

	s.setWatching(true)
	defer s.setWatching(false)

	if s.logger != nil {
		s.logger.Info("watching note root", "path", s.root)
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-source.Events():
			if !ok {
				return nil
			}
			e, ok := ev.(core.Event)
			if !ok {
				continue
			}
			s.handleEvent(e, watcher)
		}
	}
}

// handleEvent stamps the note behind a single watch event. The watcher is
// told to suppress our own write so it does not come back as a new event.
func (s *Service) handleEvent(e core.Event, watcher *fs.Watcher) {
	if e.Type == core.EventDelete {
		return
	}

	path := filepath.Join(s.root, filepath.FromSlash(e.Path))
	release := watcher.Suppress(path)
	defer release()

	changed, err := s.StampFile(path)
	if err != nil {
		// The note may have been deleted between the event and the stamp.
		if os.IsNotExist(err) {
			return
		}
		if s.logger != nil {
			s.logger.Error("failed to stamp note", "path", e.Path, "error", err)
		}
		return
	}

	if changed && s.logger != nil {
		s.logger.Info("note stamped", "path", e.Path, "event", string(e.Type))
	}
}

func (s *Service) setWatching(watching bool) {
	s.mu.Lock()
	s.watching = watching
	s.mu.Unlock()
}

func (s *Service) recordStamp() {
	s.mu.Lock()
	s.stamped++
	s.mu.Unlock()
}
