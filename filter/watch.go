package filter

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	"github.com/KyussCaesar/bq"
)

// Watcher re-evaluates a compiled query against files as they change.
type Watcher struct {
	matcher    *bq.Matcher
	logger     *zap.Logger
	watcher    *fsnotify.Watcher
	watchDirs  []string
	isWatching bool

	// OnResult is called for every re-evaluated file. Defaults to
	// logging via the watcher's logger.
	OnResult func(Result)
}

// NewWatcher creates a Watcher over the given files and directories.
func NewWatcher(m *bq.Matcher, logger *zap.Logger, paths []string) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating fsnotify watcher: %w", err)
	}

	return &Watcher{
		matcher:   m,
		logger:    logger,
		watcher:   fsw,
		watchDirs: paths,
	}, nil
}

// StartWatching registers the watch paths and starts the event loop.
func (w *Watcher) StartWatching() error {
	if w.isWatching {
		return fmt.Errorf("already watching")
	}

	for _, dir := range w.watchDirs {
		err := filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
			if err != nil {
				return err
			}
			if info.IsDir() {
				return w.watcher.Add(path)
			}
			return nil
		})
		if err != nil {
			return fmt.Errorf("error adding directory to watcher: %w", err)
		}
	}

	w.isWatching = true
	go w.watchLoop()
	return nil
}

// StopWatching stops the event loop and releases the underlying watcher.
func (w *Watcher) StopWatching() error {
	if !w.isWatching {
		w.logger.Warn("not watching")
	}

	w.isWatching = false
	return w.watcher.Close()
}

func (w *Watcher) watchLoop() {
	for w.isWatching {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			w.handleFileEvent(event)
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Error("Watcher error", zap.Error(err))
		}
	}
}

func (w *Watcher) handleFileEvent(event fsnotify.Event) {
	if event.Op&fsnotify.Write != fsnotify.Write {
		return
	}

	// wait for a while after file change to consider multiple changes as one
	time.Sleep(100 * time.Millisecond)

	matched, err := ProcessFile(w.matcher, event.Name)
	if err != nil {
		w.logger.Error("Error re-evaluating file", zap.String("file", event.Name), zap.Error(err))
		return
	}

	result := Result{Path: event.Name, Matched: matched}
	if w.OnResult != nil {
		w.OnResult(result)
		return
	}
	w.logger.Info("File changed",
		zap.String("file", result.Path),
		zap.Bool("matched", result.Matched),
	)
}
