package veil

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/veilang/veil/internal/backend"
	"github.com/veilang/veil/internal/types"
)

// Watcher re-checks rendered program files whenever they change on disk.
type Watcher struct {
	runner     backend.Runner
	opts       []string
	watchPaths []string
	watcher    *fsnotify.Watcher
	isWatching bool
}

// NewWatcher prepares a watcher over the given files or directories.
func NewWatcher(runner backend.Runner, opts []string, paths []string) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("error creating watcher: %w", err)
	}
	return &Watcher{
		runner:     runner,
		opts:       opts,
		watchPaths: paths,
		watcher:    fsw,
	}, nil
}

func (w *Watcher) StartWatching(ctx context.Context) error {
	if w.isWatching {
		return fmt.Errorf("already watching")
	}

	for _, path := range w.watchPaths {
		err := filepath.Walk(path, func(p string, info os.FileInfo, err error) error {
			if err != nil {
				return err
			}
			if info.IsDir() {
				return w.watcher.Add(p)
			}
			return nil
		})
		if err != nil {
			return fmt.Errorf("error adding directory to watcher: %w", err)
		}
	}

	w.isWatching = true
	go w.watchLoop(ctx)
	return nil
}

func (w *Watcher) StopWatching() error {
	if !w.isWatching {
		log.Println("not watching")
	}

	w.isWatching = false
	return w.watcher.Close()
}

func (w *Watcher) watchLoop(ctx context.Context) {
	for w.isWatching {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			w.handleFileEvent(ctx, event)
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			log.Printf("error: %v", err)
		}
	}
}

func (w *Watcher) handleFileEvent(ctx context.Context, event fsnotify.Event) {
	if event.Op&fsnotify.Write != fsnotify.Write {
		return
	}
	if !hasDesiredExtension(event.Name) {
		return
	}

	// wait for a while after file change to consider multiple changes as one
	time.Sleep(100 * time.Millisecond)
	result, err := checkFile(ctx, w.runner, event.Name, w.opts)
	if err != nil {
		log.Printf("error: %v", err)
		return
	}
	w.reportResult(event.Name, result)
}

func (w *Watcher) reportResult(filename string, result *types.Result) {
	if result.Success() {
		log.Printf("verified %s", filename)
		return
	}

	log.Printf("found %d errors in %s", len(result.Errors), filename)
	for _, e := range result.Errors {
		log.Printf("- %s", e)
	}
}
