package cli

import (
	"context"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/kettlegym/zenithgen/internal/errors"
	"github.com/kettlegym/zenithgen/internal/utils"
	"github.com/kettlegym/zenithgen/internal/utils/fileops"
)

// DefaultDebounce groups bursts of editor writes into one regeneration
const DefaultDebounce = 200 * time.Millisecond

// Watcher regenerates a component's sample when its Swift sources change.
// Events, the debounce timer and regeneration all run on the goroutine
// calling Run, so regenerations never overlap and none is left running once
// Run returns.
type Watcher struct {
	dir         string
	debounce    time.Duration
	files       *fileops.FileOps
	regenerate  func() error
	diagnostics *utils.DiagnosticSystem

	changed map[string]struct{}
}

// NewWatcher creates a watcher for dir. regenerate runs after the debounce
// window once the changed files were dropped from the cache.
func NewWatcher(dir string, files *fileops.FileOps, regenerate func() error, diagnostics *utils.DiagnosticSystem) *Watcher {
	return &Watcher{
		dir:         dir,
		debounce:    DefaultDebounce,
		files:       files,
		regenerate:  regenerate,
		diagnostics: diagnostics,
		changed:     make(map[string]struct{}),
	}
}

// SetDebounce overrides the debounce window
func (w *Watcher) SetDebounce(d time.Duration) {
	w.debounce = d
}

// Run watches until ctx is cancelled
func (w *Watcher) Run(ctx context.Context) error {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return errors.Wrap(errors.FileSystemErrorCode, "cannot create file watcher", err)
	}
	defer fsw.Close()

	if err := fsw.Add(w.dir); err != nil {
		return errors.WrapFileSystemError("watch", w.dir, err)
	}

	w.diagnostics.Info("Watching %s (Ctrl-C to stop)", w.dir)

	// Armed by the first relevant event
	timer := time.NewTimer(w.debounce)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-fsw.Events:
			if !ok {
				return nil
			}
			if w.record(event) {
				timer.Reset(w.debounce)
			}

		case <-timer.C:
			w.flush()

		case err, ok := <-fsw.Errors:
			if !ok {
				return nil
			}
			w.diagnostics.Warn("File watcher error: %v", err)
		}
	}
}

// record notes a relevant event and reports whether the debounce window
// should restart
func (w *Watcher) record(event fsnotify.Event) bool {
	if filepath.Ext(event.Name) != ".swift" {
		return false
	}
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) &&
		!event.Has(fsnotify.Remove) && !event.Has(fsnotify.Rename) {
		return false
	}

	w.diagnostics.Debug("File event %s on %s", event.Op, event.Name)
	w.changed[event.Name] = struct{}{}
	return true
}

// flush invalidates every changed file and regenerates once
func (w *Watcher) flush() {
	if len(w.changed) == 0 {
		return
	}
	changed := w.changed
	w.changed = make(map[string]struct{})

	for path := range changed {
		w.files.Invalidate(path)
	}

	w.diagnostics.Verbose("%d files changed", len(changed))
	if err := w.regenerate(); err != nil {
		w.diagnostics.Warn("Regeneration failed: %v", err)
	}
}
