// Package watch reruns a callback when the Go sources of a directory change.
package watch

import (
	"context"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// DefaultDebounce is the quiet period after the last change before the
// callback runs.
const DefaultDebounce = 200 * time.Millisecond

type (
	// Watcher watches a single directory.
	Watcher struct {
		dir      string
		onChange func(context.Context) error
		debounce time.Duration
		filter   func(string) bool
		log      *zap.Logger
	}

	// Option configures a Watcher.
	Option func(*Watcher)
)

// WithDebounce sets the quiet period before the callback runs.
func WithDebounce(d time.Duration) Option {
	return func(w *Watcher) {
		if d > 0 {
			w.debounce = d
		}
	}
}

// WithFilter sets the predicate selecting the paths that trigger the
// callback. Defaults to SourceFile.
func WithFilter(fn func(string) bool) Option {
	return func(w *Watcher) {
		if fn != nil {
			w.filter = fn
		}
	}
}

// WithLogger sets the logger of the watcher.
func WithLogger(l *zap.Logger) Option {
	return func(w *Watcher) {
		if l != nil {
			w.log = l
		}
	}
}

// New returns a watcher calling onChange after the sources of dir change.
func New(dir string, onChange func(context.Context) error, opts ...Option) *Watcher {
	w := &Watcher{
		dir:      dir,
		onChange: onChange,
		debounce: DefaultDebounce,
		filter:   SourceFile,
		log:      zap.NewNop(),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// SourceFile reports whether path is a hand-written, non-test Go file.
// Generated statement files are excluded so that writing them does not
// trigger another run.
func SourceFile(path string) bool {
	base := filepath.Base(path)
	switch {
	case !strings.HasSuffix(base, ".go"),
		strings.HasSuffix(base, "_test.go"),
		strings.HasSuffix(base, "_sqlcrud.go"),
		base == "sqlcrud_assert.go",
		strings.HasPrefix(base, "."):
		return false
	}
	return true
}

// Run watches the directory until ctx is done. Callback errors are logged
// and do not stop the watcher. Run returns nil when ctx is canceled.
func (w *Watcher) Run(ctx context.Context) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer fw.Close()
	if err := fw.Add(w.dir); err != nil {
		return err
	}
	w.log.Info("watching", zap.String("dir", w.dir))

	timer := time.NewTimer(w.debounce)
	if !timer.Stop() {
		<-timer.C
	}
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if event.Op == fsnotify.Chmod || !w.filter(event.Name) {
				continue
			}
			w.log.Debug("change", zap.String("path", event.Name), zap.Stringer("op", event.Op))
			timer.Reset(w.debounce)
		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			w.log.Warn("watch error", zap.Error(err))
		case <-timer.C:
			if err := w.onChange(ctx); err != nil {
				w.log.Error("regenerate", zap.Error(err))
			}
		}
	}
}
