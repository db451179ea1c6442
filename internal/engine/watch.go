package engine

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"golang.org/x/sync/errgroup"
)

// DefaultDebounce is how long Watch waits for changes to settle.
const DefaultDebounce = 100 * time.Millisecond

// WatchOptions configures Watch.
type WatchOptions struct {
	// Paths are directories (watched recursively) or single files.
	Paths []string
	// Extensions selects the files under watched directories that matter.
	Extensions []string
	// Ignore lists files whose changes are ignored, typically the outputs.
	Ignore []string
	// Debounce defaults to DefaultDebounce.
	Debounce time.Duration
	Logger   *slog.Logger
}

// Watch calls onChange after relevant files change, until ctx is done.
// Changes arriving while onChange runs are coalesced into one more call.
// A failing onChange is logged and watching continues.
func Watch(ctx context.Context, opts WatchOptions, onChange func(context.Context) error) error {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	debounce := opts.Debounce
	if debounce <= 0 {
		debounce = DefaultDebounce
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer func() { _ = watcher.Close() }()

	f := newEventFilter(opts)
	for _, p := range opts.Paths {
		info, err := os.Stat(p)
		if err != nil {
			return fmt.Errorf("failed to watch %s: %w", p, err)
		}
		if info.IsDir() {
			err = watchDirRecursive(watcher, p)
		} else {
			err = watcher.Add(filepath.Dir(p))
		}
		if err != nil {
			return fmt.Errorf("failed to watch %s: %w", p, err)
		}
		logger.Debug("watching", "path", p)
	}

	trigger := make(chan struct{}, 1)
	eg, egctx := errgroup.WithContext(ctx)

	eg.Go(func() error {
		var debounceTimer *time.Timer
		defer func() {
			if debounceTimer != nil {
				debounceTimer.Stop()
			}
		}()

		for {
			select {
			case <-egctx.Done():
				return nil
			case event, ok := <-watcher.Events:
				if !ok {
					return nil
				}
				if event.Has(fsnotify.Create) {
					if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
						if err := watchDirRecursive(watcher, event.Name); err != nil {
							logger.Warn("failed to watch new directory", "path", event.Name, "error", err)
						}
						continue
					}
				}
				if !f.relevant(event) {
					continue
				}
				logger.Debug("change detected", "file", event.Name, "op", event.Op.String())

				if debounceTimer != nil {
					debounceTimer.Stop()
				}
				debounceTimer = time.AfterFunc(debounce, func() {
					select {
					case trigger <- struct{}{}:
					default:
					}
				})
			case err, ok := <-watcher.Errors:
				if !ok {
					return nil
				}
				logger.Error("watcher error", "error", err)
			}
		}
	})

	eg.Go(func() error {
		for {
			select {
			case <-egctx.Done():
				return nil
			case <-trigger:
				if err := onChange(egctx); err != nil {
					logger.Error("regeneration failed", "error", err)
				}
			}
		}
	})

	return eg.Wait()
}

type eventFilter struct {
	files      map[string]bool
	ignore     map[string]bool
	extensions []string
}

func newEventFilter(opts WatchOptions) *eventFilter {
	f := &eventFilter{
		files:      make(map[string]bool),
		ignore:     make(map[string]bool),
		extensions: opts.Extensions,
	}
	for _, p := range opts.Paths {
		if info, err := os.Stat(p); err == nil && !info.IsDir() {
			f.files[absClean(p)] = true
		}
	}
	for _, p := range opts.Ignore {
		f.ignore[absClean(p)] = true
	}
	return f
}

func (f *eventFilter) relevant(event fsnotify.Event) bool {
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
		return false
	}
	name := absClean(event.Name)
	if f.ignore[name] || strings.HasPrefix(filepath.Base(name), ".") {
		return false
	}
	return f.files[name] || slices.Contains(f.extensions, filepath.Ext(name))
}

func absClean(p string) string {
	if abs, err := filepath.Abs(p); err == nil {
		return abs
	}
	return filepath.Clean(p)
}

// watchDirRecursive adds a directory and all subdirectories to the watcher.
func watchDirRecursive(watcher *fsnotify.Watcher, dir string) error {
	return filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if path != dir && strings.HasPrefix(d.Name(), ".") {
				return filepath.SkipDir
			}
			return watcher.Add(path)
		}
		return nil
	})
}
