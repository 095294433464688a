// Package watch reports changes to layout files under a set of roots.
package watch

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	"github.com/grindlemire/go-autolayout/pkg/layoutfile"
)

// Config tunes a Watcher.
type Config struct {
	Debounce     time.Duration
	MaxBatchSize int
	// Exclude holds doublestar patterns matched against slash-separated paths.
	Exclude     []string
	WatchHidden bool
}

// DefaultConfig returns the settings used by alc watch.
func DefaultConfig() Config {
	return Config{
		Debounce:     200 * time.Millisecond,
		MaxBatchSize: 100,
		Exclude:      []string{"**/.git/**", "**/node_modules/**", "**/vendor/**"},
	}
}

// Watcher watches directories for layout file changes and hands debounced
// batches of events to a callback.
type Watcher struct {
	config    Config
	fsWatcher *fsnotify.Watcher
	debouncer *Debouncer
	log       *zap.Logger

	mu    sync.Mutex
	roots []string
}

// New creates a watcher calling onChange with each debounced batch. The
// callback runs on a timer goroutine and must not block for long.
func New(config Config, log *zap.Logger, onChange func([]FileEvent)) (*Watcher, error) {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating file watcher: %w", err)
	}
	if log == nil {
		log = zap.NewNop()
	}
	w := &Watcher{config: config, fsWatcher: fsWatcher, log: log}
	w.debouncer = NewDebouncer(config.Debounce, config.MaxBatchSize, onChange)
	return w, nil
}

// Add watches path. A directory is watched with all its subdirectories when
// recursive is set; a file is watched through its directory.
func (w *Watcher) Add(path string, recursive bool) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("watching %s: %w", path, err)
	}
	if !info.IsDir() {
		path = filepath.Dir(path)
		recursive = false
	}

	w.mu.Lock()
	w.roots = append(w.roots, path)
	w.mu.Unlock()

	if !recursive {
		return w.fsWatcher.Add(path)
	}
	return filepath.WalkDir(path, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if p != path && w.ignored(p) {
			return filepath.SkipDir
		}
		w.log.Debug("watching directory", zap.String("path", p))
		return w.fsWatcher.Add(p)
	})
}

// Roots returns the watched roots.
func (w *Watcher) Roots() []string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return append([]string(nil), w.roots...)
}

// Run handles file events until ctx is done, then flushes pending events and
// releases the watcher.
func (w *Watcher) Run(ctx context.Context) error {
	defer func() {
		w.debouncer.Stop()
		_ = w.fsWatcher.Close()
	}()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return nil
			}
			w.handle(event)

		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				return nil
			}
			w.log.Warn("file watcher error", zap.Error(err))
		}
	}
}

func (w *Watcher) handle(event fsnotify.Event) {
	w.log.Debug("file event", zap.String("path", event.Name), zap.String("op", event.Op.String()))

	if event.Has(fsnotify.Create) {
		if info, err := os.Stat(event.Name); err == nil && info.IsDir() && !w.ignored(event.Name) {
			if err := w.fsWatcher.Add(event.Name); err != nil {
				w.log.Warn("failed to watch directory", zap.String("path", event.Name), zap.Error(err))
			}
			return
		}
	}

	if !layoutfile.IsLayoutFile(event.Name) || w.ignored(event.Name) {
		return
	}
	if fe, ok := convertEvent(event); ok {
		w.debouncer.Add(fe)
	}
}

func (w *Watcher) ignored(path string) bool {
	if !w.config.WatchHidden && strings.HasPrefix(filepath.Base(path), ".") && filepath.Base(path) != "." {
		return true
	}
	return Excluded(w.config.Exclude, path)
}

// Excluded reports whether path matches any of the doublestar patterns.
func Excluded(patterns []string, path string) bool {
	slashed := filepath.ToSlash(path)
	for _, pattern := range patterns {
		if match, _ := doublestar.Match(pattern, slashed); match {
			return true
		}
	}
	return false
}
