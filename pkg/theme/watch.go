package theme

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/go-drift/rui/pkg/errors"
)

// reloadDelay coalesces the bursts of events editors produce when saving.
const reloadDelay = 50 * time.Millisecond

// Watch reloads the configuration file at path whenever it changes and
// passes the new theme to fn. It blocks until ctx is cancelled.
//
// The parent directory is watched so that editors replacing the file are
// seen. Files that fail to load are reported to the error handler and the
// previous theme stays in effect. fn runs on the watcher goroutine; callers
// driving a toolkit must hand the theme over to their event loop.
func Watch(ctx context.Context, path string, fn func(*Theme)) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("failed to resolve %s: %w", path, err)
	}
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to start watcher: %w", err)
	}
	defer w.Close()
	if err := w.Add(filepath.Dir(abs)); err != nil {
		return fmt.Errorf("failed to watch %s: %w", filepath.Dir(abs), err)
	}

	timer := time.NewTimer(reloadDelay)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != abs {
				continue
			}
			if ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create) {
				timer.Reset(reloadDelay)
			}
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			errors.Report(&errors.RuiError{Op: "theme.Watch", Kind: errors.KindConfig, Err: err})
		case <-timer.C:
			t, err := reload(abs)
			if err != nil {
				errors.Report(&errors.RuiError{Op: "theme.Watch", Kind: errors.KindConfig, Err: err})
				continue
			}
			fn(t)
		}
	}
}

func reload(path string) (*Theme, error) {
	cfg, err := Load(path)
	if err != nil {
		return nil, err
	}
	return New(cfg)
}
