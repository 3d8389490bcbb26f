package serve

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"

	"pages-generator/internal/common"
)

// DefaultDebounce is how long source changes must settle before a
// rebuild fires. Editors often write a file several times per save.
const DefaultDebounce = 250 * time.Millisecond

// RebuildFunc regenerates the site. The watcher calls it after a burst
// of source changes has settled.
type RebuildFunc func(ctx context.Context) error

// WatcherConfig configures a Watcher. Source and Rebuild are required.
type WatcherConfig struct {
	// Source is the root of the watched documentation tree.
	Source string

	// Rebuild regenerates the site after changes settle.
	Rebuild RebuildFunc

	// SkipDir reports directories (slash relative path plus base name)
	// that are not watched. Defaults to skipping dot prefixed names.
	SkipDir func(rel, name string) bool

	// Debounce overrides DefaultDebounce when positive.
	Debounce time.Duration

	// Logger receives watch progress. Defaults to a no-op logger.
	Logger Logger
}

// Watcher rebuilds the site when files under the source tree change.
// Directories created while watching are picked up automatically.
type Watcher struct {
	source   string
	rebuild  RebuildFunc
	skip     func(rel, name string) bool
	debounce time.Duration
	logger   Logger

	// rebuilt, when not nil, receives the error of every rebuild run.
	// Tests use it to observe the watcher without polling.
	rebuilt chan<- error
}

// NewWatcher validates the configuration and returns a Watcher.
func NewWatcher(cfg WatcherConfig) (*Watcher, error) {
	if cfg.Source == "" {
		return nil, errors.New("watch source must not be empty")
	}
	if cfg.Rebuild == nil {
		return nil, errors.New("rebuild callback must not be nil")
	}

	w := &Watcher{
		source:   cfg.Source,
		rebuild:  cfg.Rebuild,
		skip:     cfg.SkipDir,
		debounce: cfg.Debounce,
		logger:   cfg.Logger,
	}

	if w.skip == nil {
		w.skip = func(_, name string) bool { return strings.HasPrefix(name, ".") }
	}
	if w.debounce <= 0 {
		w.debounce = DefaultDebounce
	}
	if w.logger == nil {
		w.logger = nopLogger{}
	}

	return w, nil
}

// Run watches until the context is canceled. Rebuild failures are logged
// and do not stop the watch; the previously generated output stays up.
func (w *Watcher) Run(ctx context.Context) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("starting file watcher: %w", err)
	}
	defer fw.Close()

	err = w.watchTree(fw, w.source, ".")
	if err != nil {
		return err
	}

	w.logger.Info("watching for changes", "source", w.source)

	// A single timer batches event bursts; it re-arms on every event and
	// fires once the tree has been quiet for the debounce window.
	var timer *time.Timer
	var settled <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			if timer != nil {
				timer.Stop()
			}

			return nil

		case ev, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if w.ignores(ev) {
				continue
			}

			if ev.Op.Has(fsnotify.Create) {
				w.watchIfDir(fw, ev.Name)
			}

			w.logger.Debug("source changed", "path", ev.Name, "op", ev.Op.String())

			if timer == nil {
				timer = time.NewTimer(w.debounce)
				settled = timer.C
			} else {
				if !timer.Stop() {
					select {
					case <-timer.C:
					default:
					}
				}
				timer.Reset(w.debounce)
			}

		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}

			w.logger.Warn("watch error", "error", err)

		case <-settled:
			timer = nil
			settled = nil

			w.runRebuild(ctx)
		}
	}
}

// watchTree registers dir and every kept directory below it.
func (w *Watcher) watchTree(fw *fsnotify.Watcher, dir, rel string) error {
	err := fw.Add(dir)
	if err != nil {
		return fmt.Errorf("watching %s: %w", dir, err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("reading %s: %w", dir, err)
	}

	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		name := entry.Name()
		childRel := common.JoinRel(rel, name)
		if w.skip(childRel, name) {
			continue
		}

		err := w.watchTree(fw, filepath.Join(dir, name), childRel)
		if err != nil {
			return err
		}
	}

	return nil
}

// watchIfDir arms the watcher for a freshly created directory. The
// directory may already hold files, so the whole subtree is added.
func (w *Watcher) watchIfDir(fw *fsnotify.Watcher, path string) {
	info, err := os.Stat(path)
	if err != nil || !info.IsDir() {
		return
	}

	rel := w.relPath(path)
	if w.skip(rel, filepath.Base(path)) {
		return
	}

	err = w.watchTree(fw, path, rel)
	if err != nil {
		w.logger.Warn("cannot watch new directory", "path", path, "error", err)
	}
}

// ignores filters events that must not trigger a rebuild: permission
// churn, dot files, and anything inside a skipped directory.
func (w *Watcher) ignores(ev fsnotify.Event) bool {
	if ev.Op == fsnotify.Chmod {
		return true
	}

	name := filepath.Base(ev.Name)
	if strings.HasPrefix(name, ".") {
		return true
	}

	return w.skip(w.relPath(ev.Name), name)
}

// relPath maps an event path back onto the slash relative form the skip
// rules expect.
func (w *Watcher) relPath(path string) string {
	rel, err := filepath.Rel(w.source, path)
	if err != nil {
		return filepath.ToSlash(path)
	}

	return filepath.ToSlash(rel)
}

func (w *Watcher) runRebuild(ctx context.Context) {
	w.logger.Info("source changed, rebuilding")

	err := w.rebuild(ctx)

	if w.rebuilt != nil {
		w.rebuilt <- err
	}

	if err != nil {
		w.logger.Error("rebuild failed, keeping previous output", "error", err)

		return
	}

	w.logger.Info("rebuild complete")
}
